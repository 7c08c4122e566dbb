package viewmodel

import (
	"context"
	"encoding/json"

	"github.com/familyalbum/album-backend/internal/common"
	"github.com/familyalbum/album-backend/internal/domain"
)

// EventReader loads an event
type EventReader interface {
	GetEvent(ctx context.Context, id string) common.Result[*domain.FamilyEvent]
}

// EventPhotoReader resolves an event's photo references
type EventPhotoReader interface {
	ListPhotosForEvent(ctx context.Context, event *domain.FamilyEvent) common.Result[[]*domain.FamilyPhoto]
}

// EventDetail is the event detail page
type EventDetail struct {
	Event     *domain.FamilyEvent   `json:"event"`
	Tabs      []Tab                 `json:"tabs"`
	ActiveTab Tab                   `json:"active_tab"`
	Photos    []*domain.FamilyPhoto `json:"photos,omitempty"`

	LoadErr error `json:"-"`
}

// EventDetailBuilder assembles event pages
type EventDetailBuilder struct {
	events EventReader
	photos EventPhotoReader
}

// NewEventDetailBuilder creates a builder
func NewEventDetailBuilder(events EventReader, photos EventPhotoReader) *EventDetailBuilder {
	return &EventDetailBuilder{events: events, photos: photos}
}

// Build loads the event and, on the photos tab, its photos
func (b *EventDetailBuilder) Build(ctx context.Context, eventID, tab string) (*EventDetail, error) {
	tabs := NewTabState(EventTabs)
	if err := tabs.Select(tab); err != nil {
		return nil, err
	}

	event := b.events.GetEvent(ctx, eventID)
	if !event.OK() {
		return nil, event.Err
	}

	page := &EventDetail{Event: event.Data, Tabs: tabs.Tabs(), ActiveTab: tabs.Active()}
	if tabs.Active() == TabPhotos {
		res := b.photos.ListPhotosForEvent(ctx, event.Data)
		page.Photos, page.LoadErr = res.Data, res.Err
	}
	return page, nil
}

// MarshalJSON writes photos only on the photos tab, as [] when there are none
func (d EventDetail) MarshalJSON() ([]byte, error) {
	type page EventDetail
	out := struct {
		page
		Photos *[]*domain.FamilyPhoto `json:"photos,omitempty"`
	}{page: page(d)}
	if d.ActiveTab == TabPhotos {
		out.Photos = present(d.Photos)
	}
	return json.Marshal(out)
}
