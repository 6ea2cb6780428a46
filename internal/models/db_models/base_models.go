package db_models

import "time"

// BaseModel carries the surrogate integer key and the automatic
// created/updated timestamps shared by every table.
type BaseModel struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
