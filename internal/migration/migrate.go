package migration

import (
	"fmt"

	"github.com/familyalbum/album-backend/internal/domain"
	"gorm.io/gorm"
)

// Models lists every table the album owns, in creation order
func Models() []interface{} {
	return []interface{}{
		&domain.User{},
		&domain.FamilyMember{},
		&domain.FamilyEvent{},
		&domain.PhotoCategory{},
		&domain.FamilyPhoto{},
		&domain.PhotoMember{},
		&domain.FamilyPost{},
		&domain.FamilyMemory{},
	}
}

// Run executes AutoMigrate for the album tables and seeds the default photo
// categories if none exist. Safe to run repeatedly.
func Run(db *gorm.DB) error {
	// 1. AutoMigrate - 테이블 없으면 생성, 있으면 skip
	if err := db.AutoMigrate(Models()...); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}

	// 2. Seed - photo_categories 테이블이 비어있을 때만 기본 카테고리 삽입
	var count int64
	if err := db.Model(&domain.PhotoCategory{}).Count(&count).Error; err != nil {
		return fmt.Errorf("count categories: %w", err)
	}
	if count == 0 {
		return seedCategories(db)
	}
	return nil
}

// DefaultCategories is the reference data a fresh album starts with
func DefaultCategories() []domain.PhotoCategory {
	strPtr := func(s string) *string { return &s }

	return []domain.PhotoCategory{
		{Name: "holidays", Description: strPtr("Holiday celebrations"), Color: strPtr("#ef4444")},
		{Name: "birthdays", Description: strPtr("Birthday parties"), Color: strPtr("#f59e0b")},
		{Name: "vacations", Description: strPtr("Trips and vacations"), Color: strPtr("#3b82f6")},
		{Name: "gatherings", Description: strPtr("Family gatherings and reunions"), Color: strPtr("#8b5cf6")},
		{Name: "everyday", Description: strPtr("Everyday moments"), Color: strPtr("#10b981")},
		{Name: "milestones", Description: strPtr("Graduations, weddings and firsts"), Color: strPtr("#ec4899")},
	}
}

func seedCategories(db *gorm.DB) error {
	categories := DefaultCategories()
	if err := db.Create(&categories).Error; err != nil {
		return fmt.Errorf("seed categories: %w", err)
	}
	return nil
}
