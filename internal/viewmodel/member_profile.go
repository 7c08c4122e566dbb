package viewmodel

import (
	"context"
	"encoding/json"

	"github.com/familyalbum/album-backend/internal/common"
	"github.com/familyalbum/album-backend/internal/domain"
)

// MemberReader loads a member
type MemberReader interface {
	GetMember(ctx context.Context, id string) common.Result[*domain.FamilyMember]
}

// MemberPhotoReader loads the photos a member appears in
type MemberPhotoReader interface {
	ListPhotosForMember(ctx context.Context, memberID string) common.Result[[]*domain.FamilyPhoto]
}

// MemoryReader loads a member's memories
type MemoryReader interface {
	ListForMember(ctx context.Context, memberID string) common.Result[[]*domain.FamilyMemory]
}

// MemberProfile is the member detail page. Photos and Memories are set only when
// their tab is active; the active one is always written, as [] when empty.
type MemberProfile struct {
	Member    *domain.FamilyMember   `json:"member"`
	Tabs      []Tab                  `json:"tabs"`
	ActiveTab Tab                    `json:"active_tab"`
	Photos    []*domain.FamilyPhoto  `json:"photos,omitempty"`
	Memories  []*domain.FamilyMemory `json:"memories,omitempty"`

	// LoadErr is set when the active tab's content failed to load
	LoadErr error `json:"-"`
}

// MemberProfileBuilder assembles member profile pages
type MemberProfileBuilder struct {
	members  MemberReader
	photos   MemberPhotoReader
	memories MemoryReader
}

// NewMemberProfileBuilder creates a builder
func NewMemberProfileBuilder(members MemberReader, photos MemberPhotoReader, memories MemoryReader) *MemberProfileBuilder {
	return &MemberProfileBuilder{members: members, photos: photos, memories: memories}
}

// Build loads the member and the content of tab. The member lookup error
// (not-found or failure) is returned as is.
func (b *MemberProfileBuilder) Build(ctx context.Context, memberID, tab string) (*MemberProfile, error) {
	tabs := NewTabState(MemberTabs)
	if err := tabs.Select(tab); err != nil {
		return nil, err
	}

	member := b.members.GetMember(ctx, memberID)
	if !member.OK() {
		return nil, member.Err
	}

	page := &MemberProfile{Member: member.Data, Tabs: tabs.Tabs(), ActiveTab: tabs.Active()}
	switch tabs.Active() {
	case TabPhotos:
		res := b.photos.ListPhotosForMember(ctx, memberID)
		page.Photos, page.LoadErr = res.Data, res.Err
	case TabMemories:
		res := b.memories.ListForMember(ctx, memberID)
		page.Memories, page.LoadErr = res.Data, res.Err
	}
	return page, nil
}

// MarshalJSON writes the active tab's collection even when empty and leaves the
// inactive ones out
func (p MemberProfile) MarshalJSON() ([]byte, error) {
	type page MemberProfile
	out := struct {
		page
		Photos   *[]*domain.FamilyPhoto  `json:"photos,omitempty"`
		Memories *[]*domain.FamilyMemory `json:"memories,omitempty"`
	}{page: page(p)}
	switch p.ActiveTab {
	case TabPhotos:
		out.Photos = present(p.Photos)
	case TabMemories:
		out.Memories = present(p.Memories)
	}
	return json.Marshal(out)
}

// present returns a pointer to items, never to a nil slice
func present[T any](items []T) *[]T {
	if items == nil {
		items = []T{}
	}
	return &items
}
