package models

import (
	"time"

	"github.com/google/uuid"
)

type ScheduleEntry struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Day       string    `json:"day" gorm:"type:varchar(10);not null"`
	StartTime string    `json:"start_time" gorm:"type:varchar(5);not null"`
	EndTime   string    `json:"end_time" gorm:"type:varchar(5);not null"`
	Course    string    `json:"course" gorm:"type:varchar(255);not null"`
	Room      string    `json:"room" gorm:"type:varchar(50)"`
	Lecturer  string    `json:"lecturer" gorm:"type:varchar(255)"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
}

type ScheduleCreateRequest struct {
	Day       string `json:"day" validate:"required,oneof=senin selasa rabu kamis jumat sabtu minggu"`
	StartTime string `json:"start_time" validate:"required,len=5"`
	EndTime   string `json:"end_time" validate:"required,len=5"`
	Course    string `json:"course" validate:"required,max=255"`
	Room      string `json:"room" validate:"omitempty,max=50"`
	Lecturer  string `json:"lecturer" validate:"omitempty,max=255"`
}

type ScheduleUpdateRequest struct {
	Day       *string `json:"day,omitempty" validate:"omitempty,oneof=senin selasa rabu kamis jumat sabtu minggu"`
	StartTime *string `json:"start_time,omitempty" validate:"omitempty,len=5"`
	EndTime   *string `json:"end_time,omitempty" validate:"omitempty,len=5"`
	Course    *string `json:"course,omitempty" validate:"omitempty,max=255"`
	Room      *string `json:"room,omitempty" validate:"omitempty,max=50"`
	Lecturer  *string `json:"lecturer,omitempty" validate:"omitempty,max=255"`
}
