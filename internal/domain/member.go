package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// FamilyMember represents a person in the family tree
type FamilyMember struct {
	ID           string     `gorm:"column:id;primaryKey;size:36" json:"id"`
	Name         string     `gorm:"column:name;size:120;not null;index" json:"name"`
	Nickname     *string    `gorm:"column:nickname;size:120" json:"nickname,omitempty"`
	Relationship *string    `gorm:"column:relationship;size:80" json:"relationship,omitempty"`
	Birthday     *time.Time `gorm:"column:birthday;type:date" json:"birthday,omitempty"`
	Bio          *string    `gorm:"column:bio;type:text" json:"bio,omitempty"`
	FunFacts     []string   `gorm:"column:fun_facts;type:text;serializer:json" json:"fun_facts"`
	AvatarURL    *string    `gorm:"column:avatar_url;size:1024" json:"avatar_url,omitempty"`
	CreatedAt    time.Time  `gorm:"column:created_at" json:"created_at"`
	UpdatedAt    time.Time  `gorm:"column:updated_at" json:"updated_at"`
}

// TableName returns the table name
func (FamilyMember) TableName() string {
	return "family_members"
}

// BeforeCreate assigns a UUID when none was supplied
func (m *FamilyMember) BeforeCreate(*gorm.DB) error {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	return nil
}

// MemberUpdate is a partial update; nil fields are left untouched
type MemberUpdate struct {
	Name         *string
	Nickname     *string
	Relationship *string
	Birthday     *time.Time
	Bio          *string
	FunFacts     []string
	AvatarURL    *string
}

// Apply copies the set fields onto m and returns the changed column names,
// suitable for a gorm Select(...).Updates(m) call
func (u MemberUpdate) Apply(m *FamilyMember) []string {
	var cols []string
	if u.Name != nil {
		m.Name = *u.Name
		cols = append(cols, "name")
	}
	if u.Nickname != nil {
		m.Nickname = u.Nickname
		cols = append(cols, "nickname")
	}
	if u.Relationship != nil {
		m.Relationship = u.Relationship
		cols = append(cols, "relationship")
	}
	if u.Birthday != nil {
		m.Birthday = u.Birthday
		cols = append(cols, "birthday")
	}
	if u.Bio != nil {
		m.Bio = u.Bio
		cols = append(cols, "bio")
	}
	if u.FunFacts != nil {
		m.FunFacts = u.FunFacts
		cols = append(cols, "fun_facts")
	}
	if u.AvatarURL != nil {
		m.AvatarURL = u.AvatarURL
		cols = append(cols, "avatar_url")
	}
	return cols
}

// IsEmpty reports whether the update changes nothing
func (u MemberUpdate) IsEmpty() bool {
	return len(u.Apply(&FamilyMember{})) == 0
}
