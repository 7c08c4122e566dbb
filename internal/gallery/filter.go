// Package gallery holds the photo gallery state: the filter over the photo list,
// the lightbox navigation state machine and per-user viewer sessions.
package gallery

import (
	"strings"

	"github.com/familyalbum/album-backend/internal/domain"
)

// AllCategories is the category selector that matches every photo
const AllCategories = "all"

// Criteria is what the gallery page is filtered by
type Criteria struct {
	Query    string `json:"query"`
	Category string `json:"category"`
}

// matchesQuery is a case-insensitive substring match on title, location or description.
// The query is used as given; surrounding whitespace is significant.
func matchesQuery(p *domain.FamilyPhoto, q string) bool {
	if q == "" {
		return true
	}
	q = strings.ToLower(q)
	if strings.Contains(strings.ToLower(p.Title), q) {
		return true
	}
	if p.Location != nil && strings.Contains(strings.ToLower(*p.Location), q) {
		return true
	}
	return p.Description != nil && strings.Contains(strings.ToLower(*p.Description), q)
}

func matchesCategory(p *domain.FamilyPhoto, category string) bool {
	if category == "" || category == AllCategories {
		return true
	}
	return p.CategoryID != nil && *p.CategoryID == category
}

// Matches reports whether p passes c
func Matches(p *domain.FamilyPhoto, c Criteria) bool {
	if p == nil {
		return false
	}
	return matchesQuery(p, c.Query) && matchesCategory(p, c.Category)
}

// Filter returns the photos that pass c, in their original order. The result is
// never nil and the input is not modified.
func Filter(photos []*domain.FamilyPhoto, c Criteria) []*domain.FamilyPhoto {
	out := make([]*domain.FamilyPhoto, 0, len(photos))
	for _, p := range photos {
		if Matches(p, c) {
			out = append(out, p)
		}
	}
	return out
}

// CountByCategory counts photos per category id; uncategorized photos are not counted
func CountByCategory(photos []*domain.FamilyPhoto) map[string]int {
	counts := make(map[string]int)
	for _, p := range photos {
		if p != nil && p.CategoryID != nil {
			counts[*p.CategoryID]++
		}
	}
	return counts
}

// Paginate returns the 1-based page of items. Out-of-range pages are empty.
func Paginate[T any](items []T, page, perPage int) []T {
	if page < 1 {
		page = 1
	}
	if perPage < 1 {
		return []T{}
	}
	start := (page - 1) * perPage
	if start >= len(items) {
		return []T{}
	}
	end := start + perPage
	if end > len(items) {
		end = len(items)
	}
	return items[start:end]
}
