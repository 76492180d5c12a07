package pkg

import (
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildOrderID_Format(t *testing.T) {
	now := time.UnixMilli(1724400000000)
	orderID := BuildOrderID(3, "9f8b6c1a-2d3e-4f50-a1b2-c3d4e5f60718", now)

	assert.Regexp(t, regexp.MustCompile(`^KAS-3-[0-9a-f]{8}-[0-9a-z]+$`), orderID)
	assert.Contains(t, orderID, "9f8b6c1a")
}

func TestBuildOrderID_FitsProviderLimit(t *testing.T) {
	now := time.Now()
	orderID := BuildOrderID(999, "9f8b6c1a-2d3e-4f50-a1b2-c3d4e5f60718", now)

	require.LessOrEqual(t, len(orderID), 50)
}

func TestBuildOrderID_DistinctAcrossTimestamps(t *testing.T) {
	studentID := "9f8b6c1a-2d3e-4f50-a1b2-c3d4e5f60718"
	first := BuildOrderID(3, studentID, time.UnixMilli(1724400000000))
	second := BuildOrderID(3, studentID, time.UnixMilli(1724400000001))

	assert.NotEqual(t, first, second)
}

func TestBuildOrderID_ShortStudentID(t *testing.T) {
	orderID := BuildOrderID(1, "abc", time.UnixMilli(1724400000000))

	assert.Regexp(t, regexp.MustCompile(`^KAS-1-abc-[0-9a-z]+$`), orderID)
}
