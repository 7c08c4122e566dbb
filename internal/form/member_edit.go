package form

import (
	"context"
	"strings"
	"time"

	"github.com/familyalbum/album-backend/internal/domain"
	"github.com/familyalbum/album-backend/internal/notify"
)

// MemberUpdater is the write behind the member edit form
type MemberUpdater interface {
	UpdateMember(ctx context.Context, id string, upd domain.MemberUpdate) (*domain.FamilyMember, error)
}

// MemberEditForm edits a member's profile fields. Nil fields are not sent.
type MemberEditForm struct {
	MemberID     string
	Name         *string
	Relationship *string
	Birthday     *time.Time
	Bio          *string
	FunFacts     []string

	OnSaved func(*domain.FamilyMember)

	inFlight
	open bool
}

// NewMemberEditForm returns an open form for memberID
func NewMemberEditForm(memberID string) *MemberEditForm {
	return &MemberEditForm{MemberID: memberID, open: true}
}

// IsOpen reports whether the form is showing
func (f *MemberEditForm) IsOpen() bool { return f.open }

// Close hides the form
func (f *MemberEditForm) Close() { f.open = false }

// update builds the partial update; fun facts are trimmed and blanks dropped
func (f *MemberEditForm) update() domain.MemberUpdate {
	upd := domain.MemberUpdate{
		Name:         f.Name,
		Relationship: f.Relationship,
		Birthday:     f.Birthday,
		Bio:          f.Bio,
	}
	if f.FunFacts != nil {
		facts := make([]string, 0, len(f.FunFacts))
		for _, fact := range f.FunFacts {
			if fact = strings.TrimSpace(fact); fact != "" {
				facts = append(facts, fact)
			}
		}
		upd.FunFacts = facts
	}
	return upd
}

// Submit saves the changes
func (f *MemberEditForm) Submit(ctx context.Context, updater MemberUpdater, sink notify.Sink) (*domain.FamilyMember, error) {
	var member *domain.FamilyMember
	err := run(ctx, &f.inFlight, sink, outcome{
		successKey:   "member.update_success",
		failureTitle: "notice.error",
		failureKey:   "member.update_failed",
	}, func(ctx context.Context) error {
		var err error
		member, err = updater.UpdateMember(ctx, f.MemberID, f.update())
		return err
	})
	if err != nil {
		return nil, err
	}

	if f.OnSaved != nil {
		f.OnSaved(member)
	}
	f.Close()
	return member, nil
}
