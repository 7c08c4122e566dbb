package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PhotoCategory is read-only reference data used to group photos
type PhotoCategory struct {
	ID          string    `gorm:"column:id;primaryKey;size:36" json:"id"`
	Name        string    `gorm:"column:name;size:100;not null;uniqueIndex" json:"name"`
	Description *string   `gorm:"column:description;type:text" json:"description,omitempty"`
	Color       *string   `gorm:"column:color;size:20" json:"color,omitempty"`
	CreatedAt   time.Time `gorm:"column:created_at" json:"created_at"`
}

// TableName returns the table name
func (PhotoCategory) TableName() string {
	return "photo_categories"
}

// BeforeCreate assigns a UUID when none was supplied
func (c *PhotoCategory) BeforeCreate(*gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	return nil
}

// FamilyPhoto is the metadata record for an uploaded image
type FamilyPhoto struct {
	ID          string         `gorm:"column:id;primaryKey;size:36" json:"id"`
	Title       string         `gorm:"column:title;size:200;not null" json:"title"`
	Description *string        `gorm:"column:description;type:text" json:"description,omitempty"`
	ImageURL    string         `gorm:"column:image_url;size:1024;not null" json:"image_url"`
	Location    *string        `gorm:"column:location;size:255" json:"location,omitempty"`
	TakenDate   *time.Time     `gorm:"column:taken_date;index" json:"taken_date,omitempty"`
	Tags        []string       `gorm:"column:tags;type:text;serializer:json" json:"tags"` // people in the photo
	CategoryID  *string        `gorm:"column:category_id;size:36;index" json:"category_id,omitempty"`
	Category    *PhotoCategory `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
	Featured    bool           `gorm:"column:featured;default:false" json:"featured"`
	CreatedAt   time.Time      `gorm:"column:created_at" json:"created_at"`
	UpdatedAt   time.Time      `gorm:"column:updated_at" json:"updated_at"`
}

// TableName returns the table name
func (FamilyPhoto) TableName() string {
	return "family_photos"
}

// BeforeCreate assigns a UUID when none was supplied
func (p *FamilyPhoto) BeforeCreate(*gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}

// PhotoMember links a photo to a family member who appears in it
type PhotoMember struct {
	PhotoID   string    `gorm:"column:photo_id;primaryKey;size:36" json:"photo_id"`
	MemberID  string    `gorm:"column:member_id;primaryKey;size:36;index" json:"member_id"`
	CreatedAt time.Time `gorm:"column:created_at" json:"created_at"`
}

// TableName returns the table name
func (PhotoMember) TableName() string {
	return "photo_members"
}
