package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// FamilyPost is a short family news entry
type FamilyPost struct {
	ID          string    `gorm:"column:id;primaryKey;size:36" json:"id"`
	AuthorID    *string   `gorm:"column:author_id;size:36;index" json:"author_id,omitempty"`
	Title       string    `gorm:"column:title;size:200;not null" json:"title"`
	Content     string    `gorm:"column:content;type:text;not null" json:"content"`
	Images      []string  `gorm:"column:images;type:text;serializer:json" json:"images"`
	IsMilestone bool      `gorm:"column:is_milestone;default:false" json:"is_milestone"`
	PostDate    time.Time `gorm:"column:post_date;index" json:"post_date"`
	Tags        []string  `gorm:"column:tags;type:text;serializer:json" json:"tags"`
	CreatedAt   time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt   time.Time `gorm:"column:updated_at" json:"updated_at"`
}

// TableName returns the table name
func (FamilyPost) TableName() string {
	return "family_posts"
}

// BeforeCreate assigns a UUID and defaults the post date
func (p *FamilyPost) BeforeCreate(*gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	if p.PostDate.IsZero() {
		p.PostDate = time.Now()
	}
	return nil
}
