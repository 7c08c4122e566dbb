package handler

import (
	"context"
	"net/http"
	"strings"
	"testing"

	"github.com/familyalbum/album-backend/internal/domain"
	"github.com/familyalbum/album-backend/internal/notify"
	"github.com/familyalbum/album-backend/internal/viewmodel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (s *testServer) seedMember(t *testing.T, name string) *domain.FamilyMember {
	t.Helper()
	m := &domain.FamilyMember{Name: name}
	require.NoError(t, s.members.Create(context.Background(), m))
	return m
}

func TestMemberCreateAndList(t *testing.T) {
	s := newTestServer(t)

	w, env := s.do(t, http.MethodPost, "/members", map[string]interface{}{
		"name":         "Grandma Rose",
		"relationship": "grandmother",
		"birthday":     "1941-03-02",
		"fun_facts":    []string{"bakes pies"},
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	created := decode[domain.FamilyMember](t, env.Data)
	require.NotNil(t, created.Birthday)
	assert.Equal(t, 1941, created.Birthday.Year())
	require.Len(t, env.Notices, 1)
	assert.Equal(t, "Family member added successfully.", env.Notices[0].Description)

	_, env = s.do(t, http.MethodGet, "/members", nil)
	members := decode[[]*domain.FamilyMember](t, env.Data)
	require.Len(t, members, 1)
	assert.Equal(t, "Grandma Rose", members[0].Name)

	w, _ = s.do(t, http.MethodPost, "/members", map[string]interface{}{"name": "X", "birthday": "March 2"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestMemberList_EmptyIsArray(t *testing.T) {
	s := newTestServer(t)

	w, env := s.do(t, http.MethodGet, "/members", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, string(env.Data))
}

func TestMemberGet_NotFoundCarriesNotice(t *testing.T) {
	s := newTestServer(t)

	w, env := s.do(t, http.MethodGet, "/members/nobody", nil, "Accept-Language", "ko")
	assert.Equal(t, http.StatusNotFound, w.Code)
	require.Len(t, env.Notices, 1)
	assert.Equal(t, "오류", env.Notices[0].Title)
	assert.Equal(t, "찾으시는 가족 구성원이 없습니다.", env.Notices[0].Description)
}

func TestMemberUpdate(t *testing.T) {
	s := newTestServer(t)
	m := s.seedMember(t, "Ann")

	w, env := s.do(t, http.MethodPatch, "/members/"+m.ID, map[string]interface{}{
		"bio":       "Loves hiking",
		"fun_facts": []string{" climbs ", "", "paints"},
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	updated := decode[domain.FamilyMember](t, env.Data)
	assert.Equal(t, "Ann", updated.Name)
	require.NotNil(t, updated.Bio)
	assert.Equal(t, "Loves hiking", *updated.Bio)
	assert.Equal(t, []string{"climbs", "paints"}, updated.FunFacts)
	require.Len(t, env.Notices, 1)
	assert.Equal(t, notify.VariantDefault, env.Notices[0].Variant)

	w, env = s.do(t, http.MethodPatch, "/members/"+m.ID, map[string]interface{}{"name": "  "})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	require.Len(t, env.Notices, 1)
	assert.Equal(t, "Failed to update member information. Please try again.", env.Notices[0].Description)

	w, _ = s.do(t, http.MethodPatch, "/members/missing", map[string]interface{}{"bio": "x"})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestMemberProfileTabs(t *testing.T) {
	s := newTestServer(t)
	m := s.seedMember(t, "Ann")
	s.seedPhoto(t, "Picnic", "everyday", day(5), m.ID)

	_, env := s.do(t, http.MethodGet, "/members/"+m.ID+"/profile", nil)
	page := decode[viewmodel.MemberProfile](t, env.Data)
	assert.Equal(t, viewmodel.TabAbout, page.ActiveTab)
	assert.Empty(t, page.Photos)

	_, env = s.do(t, http.MethodGet, "/members/"+m.ID+"/profile?tab=photos", nil)
	page = decode[viewmodel.MemberProfile](t, env.Data)
	assert.Equal(t, viewmodel.TabPhotos, page.ActiveTab)
	require.Len(t, page.Photos, 1)
	assert.Equal(t, "Picnic", page.Photos[0].Title)

	w, _ := s.do(t, http.MethodGet, "/members/"+m.ID+"/profile?tab=timeline", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w, _ = s.do(t, http.MethodGet, "/members/missing/profile?tab=photos", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	// 비어 있어도 활성 탭의 목록은 [] 로 내려감
	w, _ = s.do(t, http.MethodGet, "/members/"+m.ID+"/profile?tab=memories", nil)
	assert.Contains(t, w.Body.String(), `"memories":[]`)
	assert.NotContains(t, w.Body.String(), `"photos"`)
}

func TestMemberAvatarUpload(t *testing.T) {
	s := newTestServer(t)
	m := s.seedMember(t, "Ann")

	w, env := s.serve(t, multipartRequest(t, "/members/"+m.ID+"/avatar", nil, "", nil))
	assert.Equal(t, http.StatusBadRequest, w.Code)
	require.Len(t, env.Notices, 1)
	assert.Equal(t, "Please choose a picture first.", env.Notices[0].Description)

	w, env = s.serve(t, multipartRequest(t, "/members/"+m.ID+"/avatar", nil, "me.png", pngBytes))
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	updated := decode[domain.FamilyMember](t, env.Data)
	require.NotNil(t, updated.AvatarURL)
	assert.Contains(t, *updated.AvatarURL, "/uploads/avatars/profile_"+m.ID+"_")

	w, _ = s.serve(t, multipartRequest(t, "/members/"+m.ID+"/avatar", nil, "me.png", []byte("plain text, not a picture")))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestMemberAvatarUpload_ExtensionlessBlob(t *testing.T) {
	s := newTestServer(t)
	m := s.seedMember(t, "Ann")

	w, env := s.serve(t, multipartRequest(t, "/members/"+m.ID+"/avatar", nil, "blob", pngBytes))
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	updated := decode[domain.FamilyMember](t, env.Data)
	require.NotNil(t, updated.AvatarURL)
	assert.True(t, strings.HasSuffix(*updated.AvatarURL, ".png"), *updated.AvatarURL)
}

func TestMemoryLifecycle(t *testing.T) {
	s := newTestServer(t)
	m := s.seedMember(t, "Ann")

	w, env := s.do(t, http.MethodPost, "/members/"+m.ID+"/memories", map[string]interface{}{
		"title":       "First bike",
		"content":     "Rode without training wheels",
		"memory_date": "1995-06-01",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	memory := decode[domain.FamilyMemory](t, env.Data)
	assert.Equal(t, m.ID, memory.MemberID)
	assert.Equal(t, "Memory created successfully.", env.Notices[0].Description)

	w, env = s.do(t, http.MethodPut, "/memories/"+memory.ID, map[string]interface{}{
		"title":       "First bike ride",
		"content":     "Rode without training wheels",
		"is_favorite": true,
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	edited := decode[domain.FamilyMemory](t, env.Data)
	assert.Equal(t, "First bike ride", edited.Title)
	assert.True(t, edited.IsFavorite)
	assert.Nil(t, edited.MemoryDate)
	assert.Equal(t, "Memory updated successfully.", env.Notices[0].Description)

	_, env = s.do(t, http.MethodGet, "/members/"+m.ID+"/memories", nil)
	assert.Len(t, decode[[]*domain.FamilyMemory](t, env.Data), 1)

	w, env = s.do(t, http.MethodDelete, "/memories/"+memory.ID, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"deleted":true}`, string(env.Data))

	_, env = s.do(t, http.MethodDelete, "/memories/"+memory.ID, nil)
	assert.JSONEq(t, `{"deleted":false}`, string(env.Data))
	assert.Empty(t, env.Notices)

	w, _ = s.do(t, http.MethodPut, "/memories/"+memory.ID, map[string]interface{}{"title": "t", "content": "c"})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestMemoryCreate_UnknownMember(t *testing.T) {
	s := newTestServer(t)

	w, _ := s.do(t, http.MethodPost, "/members/missing/memories", map[string]interface{}{"title": "t", "content": "c"})
	assert.Equal(t, http.StatusNotFound, w.Code)
}
