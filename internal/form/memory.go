package form

import (
	"context"

	"github.com/familyalbum/album-backend/internal/domain"
	"github.com/familyalbum/album-backend/internal/notify"
)

// MemoryWriter is the write behind the memory form
type MemoryWriter interface {
	CreateMemory(ctx context.Context, memberID string, fields domain.MemoryFields) (*domain.FamilyMemory, error)
	UpdateMemory(ctx context.Context, id string, fields domain.MemoryFields) (*domain.FamilyMemory, error)
}

// MemoryForm creates a memory, or edits one when EditingID is set
type MemoryForm struct {
	MemberID  string
	EditingID string
	Fields    domain.MemoryFields

	OnSaved func(*domain.FamilyMemory)

	inFlight
	open bool
}

// NewMemoryForm returns an open form for a new memory of memberID
func NewMemoryForm(memberID string) *MemoryForm {
	return &MemoryForm{MemberID: memberID, open: true}
}

// EditMemoryForm returns an open form prefilled from an existing memory
func EditMemoryForm(m *domain.FamilyMemory) *MemoryForm {
	return &MemoryForm{
		MemberID:  m.MemberID,
		EditingID: m.ID,
		Fields: domain.MemoryFields{
			Title:      m.Title,
			Content:    m.Content,
			MemoryDate: m.MemoryDate,
			Location:   m.Location,
			IsFavorite: m.IsFavorite,
		},
		open: true,
	}
}

// IsOpen reports whether the form is showing
func (f *MemoryForm) IsOpen() bool { return f.open }

// Close hides the form
func (f *MemoryForm) Close() { f.open = false }

// Submit creates or updates the memory
func (f *MemoryForm) Submit(ctx context.Context, w MemoryWriter, sink notify.Sink) (*domain.FamilyMemory, error) {
	o := outcome{successKey: "memory.create_success", failureTitle: "notice.error", failureKey: "memory.save_failed"}
	if f.EditingID != "" {
		o.successKey = "memory.update_success"
	}

	var memory *domain.FamilyMemory
	err := run(ctx, &f.inFlight, sink, o, func(ctx context.Context) error {
		var err error
		if f.EditingID != "" {
			memory, err = w.UpdateMemory(ctx, f.EditingID, f.Fields)
		} else {
			memory, err = w.CreateMemory(ctx, f.MemberID, f.Fields)
		}
		return err
	})
	if err != nil {
		return nil, err
	}

	if f.OnSaved != nil {
		f.OnSaved(memory)
	}
	f.Fields = domain.MemoryFields{}
	f.EditingID = ""
	f.Close()
	return memory, nil
}
