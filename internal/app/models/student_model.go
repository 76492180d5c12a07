package models

import (
	"time"

	"github.com/google/uuid"
)

// Student is the class roster entry. Rows are seeded once and looked up by NIM
// for sign-in and payment attribution.
type Student struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	NIM       string    `json:"nim" gorm:"type:varchar(20);not null;uniqueIndex"`
	Name      string    `json:"name" gorm:"type:varchar(255);not null"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
}

type StudentCreateRequest struct {
	NIM  string `json:"nim" validate:"required,max=20"`
	Name string `json:"name" validate:"required,max=255"`
}
