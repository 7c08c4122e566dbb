package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// FamilyMemory is a dated anecdote attached to one member
type FamilyMemory struct {
	ID         string     `gorm:"column:id;primaryKey;size:36" json:"id"`
	MemberID   string     `gorm:"column:member_id;size:36;not null;index" json:"member_id"`
	Title      string     `gorm:"column:title;size:200;not null" json:"title"`
	Content    string     `gorm:"column:content;type:text;not null" json:"content"`
	MemoryDate *time.Time `gorm:"column:memory_date;type:date" json:"memory_date,omitempty"`
	Location   *string    `gorm:"column:location;size:255" json:"location,omitempty"`
	IsFavorite bool       `gorm:"column:is_favorite;default:false" json:"is_favorite"`
	CreatedAt  time.Time  `gorm:"column:created_at" json:"created_at"`
	UpdatedAt  time.Time  `gorm:"column:updated_at" json:"updated_at"`
}

// TableName returns the table name
func (FamilyMemory) TableName() string {
	return "family_memories"
}

// BeforeCreate assigns a UUID when none was supplied
func (m *FamilyMemory) BeforeCreate(*gorm.DB) error {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	return nil
}

// MemoryFields are the editable attributes of a memory
type MemoryFields struct {
	Title      string
	Content    string
	MemoryDate *time.Time
	Location   *string
	IsFavorite bool
}

// Columns returns the full column map for an update. Every field is written so
// clearing a date or location works.
func (f MemoryFields) Columns() map[string]interface{} {
	return map[string]interface{}{
		"title":       f.Title,
		"content":     f.Content,
		"memory_date": f.MemoryDate,
		"location":    f.Location,
		"is_favorite": f.IsFavorite,
	}
}
