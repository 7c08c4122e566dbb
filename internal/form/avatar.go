package form

import (
	"context"

	"github.com/familyalbum/album-backend/internal/domain"
	"github.com/familyalbum/album-backend/internal/notify"
	"github.com/familyalbum/album-backend/internal/service"
)

// AvatarUploader is the write behind the avatar form
type AvatarUploader interface {
	UploadAvatar(ctx context.Context, memberID string, file service.FileInput) (*domain.FamilyMember, error)
}

// AvatarForm replaces a member's profile picture
type AvatarForm struct {
	MemberID string

	// OnUpdated runs after the avatar was replaced
	OnUpdated func(*domain.FamilyMember)

	file fileField
	inFlight
	open bool
}

// NewAvatarForm returns an open form for memberID
func NewAvatarForm(memberID string) *AvatarForm {
	return &AvatarForm{MemberID: memberID, open: true}
}

// SelectFile picks the new picture
func (f *AvatarForm) SelectFile(file *File) error {
	return f.file.selectFile(file)
}

// Preview returns the preview of the selected picture, or nil
func (f *AvatarForm) Preview() *Preview {
	_, p := f.file.current()
	return p
}

// IsOpen reports whether the form is showing
func (f *AvatarForm) IsOpen() bool { return f.open }

// Close hides the form and releases the preview
func (f *AvatarForm) Close() {
	f.open = false
	f.file.clear()
}

// Submit uploads the picture and updates the member
func (f *AvatarForm) Submit(ctx context.Context, uploader AvatarUploader, sink notify.Sink) (*domain.FamilyMember, error) {
	file, _ := f.file.current()
	if file == nil {
		if sink != nil {
			sink.Notify(notify.Failure("notice.error", "member.avatar_no_file"))
		}
		return nil, ErrNoFileSelected
	}

	var member *domain.FamilyMember
	err := run(ctx, &f.inFlight, sink, outcome{
		successKey:   "member.avatar_success",
		failureTitle: "notice.error",
		failureKey:   "member.avatar_failed",
	}, func(ctx context.Context) error {
		var err error
		member, err = uploader.UploadAvatar(ctx, f.MemberID, file.input())
		return err
	})
	if err != nil {
		return nil, err
	}

	if f.OnUpdated != nil {
		f.OnUpdated(member)
	}
	f.Close()
	return member, nil
}
