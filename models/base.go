package models

import "time"

// BaseModel holds the columns shared by every table. Timestamps are
// maintained by GORM on create/save.
type BaseModel struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
