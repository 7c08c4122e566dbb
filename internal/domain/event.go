package domain

import (
	"sort"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// EventType is the small fixed vocabulary of event tags
type EventType string

const (
	EventTypeBirthday  EventType = "birthday"
	EventTypeHoliday   EventType = "holiday"
	EventTypeVacation  EventType = "vacation"
	EventTypeMilestone EventType = "milestone"
	EventTypeOther     EventType = "other"
)

// FamilyEvent represents a dated family gathering
type FamilyEvent struct {
	ID                string     `gorm:"column:id;primaryKey;size:36" json:"id"`
	Title             string     `gorm:"column:title;size:200;not null" json:"title"`
	EventDate         time.Time  `gorm:"column:event_date;not null;index" json:"event_date"`
	Location          *string    `gorm:"column:location;size:255" json:"location,omitempty"`
	Description       *string    `gorm:"column:description;type:text" json:"description,omitempty"`
	Attendees         []string   `gorm:"column:attendees;type:text;serializer:json" json:"attendees"`
	EventType         *EventType `gorm:"column:event_type;size:20" json:"event_type,omitempty"`
	Photos            []string   `gorm:"column:photos;type:text;serializer:json" json:"photos"`
	IsRecurring       bool       `gorm:"column:is_recurring;default:false" json:"is_recurring"`
	RecurrencePattern *string    `gorm:"column:recurrence_pattern;size:50" json:"recurrence_pattern,omitempty"`
	CreatedAt         time.Time  `gorm:"column:created_at" json:"created_at"`
	UpdatedAt         time.Time  `gorm:"column:updated_at" json:"updated_at"`
}

// TableName returns the table name
func (FamilyEvent) TableName() string {
	return "family_events"
}

// BeforeCreate assigns a UUID when none was supplied
func (e *FamilyEvent) BeforeCreate(*gorm.DB) error {
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	return nil
}

// EventPartition splits events around a reference time
type EventPartition struct {
	Upcoming []*FamilyEvent `json:"upcoming"`
	Past     []*FamilyEvent `json:"past"`
}

// PartitionEvents puts events at or after now into Upcoming (soonest first) and the
// rest into Past (most recent first). The input slice is not modified.
func PartitionEvents(events []*FamilyEvent, now time.Time) EventPartition {
	p := EventPartition{Upcoming: []*FamilyEvent{}, Past: []*FamilyEvent{}}
	for _, e := range events {
		if e == nil {
			continue
		}
		if e.EventDate.Before(now) {
			p.Past = append(p.Past, e)
		} else {
			p.Upcoming = append(p.Upcoming, e)
		}
	}

	sort.SliceStable(p.Upcoming, func(i, j int) bool {
		return p.Upcoming[i].EventDate.Before(p.Upcoming[j].EventDate)
	})
	sort.SliceStable(p.Past, func(i, j int) bool {
		return p.Past[i].EventDate.After(p.Past[j].EventDate)
	})
	return p
}
