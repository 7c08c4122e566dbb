package i18n

import "maps"

// DefaultMessages returns a copy of the built-in translations for all supported
// locales. These can be overridden by loading JSON files from a directory.
func DefaultMessages() map[Locale]map[string]string {
	return map[Locale]map[string]string{
		LocaleEn: maps.Clone(enMessages),
		LocaleKo: maps.Clone(koMessages),
	}
}

var enMessages = map[string]string{
	// Notice titles
	"notice.success": "Success!",
	"notice.error":   "Error",

	// Common errors
	"error.not_found":    "The requested item could not be found",
	"error.unauthorized": "Please sign in to continue",
	"error.bad_request":  "The request was invalid",
	"error.fetch_failed": "We couldn't load this right now. Please try again.",

	// Members
	"member.not_found":      "The family member you're looking for doesn't exist.",
	"member.load_failed":    "Failed to load member data. Please try again.",
	"member.update_success": "Member information updated successfully.",
	"member.update_failed":  "Failed to update member information. Please try again.",
	"member.create_success": "Family member added successfully.",
	"member.create_failed":  "Failed to add family member. Please try again.",
	"member.avatar_success": "Profile picture updated successfully.",
	"member.avatar_failed":  "Failed to update profile picture. Please try again.",
	"member.avatar_no_file": "Please choose a picture first.",

	// Events
	"event.not_found":      "The event you're looking for doesn't exist.",
	"event.load_failed":    "Failed to load event data. Please try again.",
	"event.create_success": "Event created successfully.",
	"event.create_failed":  "Failed to create event. Please try again.",

	// Photos
	"photo.upload_title":   "Upload Failed",
	"photo.upload_success": "Photo uploaded successfully.",
	"photo.upload_failed":  "Failed to upload photo. Please try again.",
	"photo.no_file":        "Please choose a photo first.",
	"photo.not_image":      "Only image files can be uploaded.",

	// Memories
	"memory.create_success": "Memory created successfully.",
	"memory.update_success": "Memory updated successfully.",
	"memory.save_failed":    "Failed to save memory. Please try again.",
	"memory.delete_success": "Memory deleted successfully.",
	"memory.delete_failed":  "Failed to delete memory. Please try again.",

	// Posts
	"post.create_success": "Post shared successfully.",
	"post.create_failed":  "Failed to share post. Please try again.",

	// Viewer
	"viewer.not_open":          "The photo viewer is not open.",
	"viewer.photo_not_in_view": "That photo is not in the current gallery view.",
	"viewer.empty_view":        "There are no photos to show.",
	"viewer.open_failed":       "Could not open the photo viewer.",
	"viewer.update_failed":     "Could not update the photo viewer.",
	"viewer.close_failed":      "Could not close the photo viewer.",

	// Auth
	"auth.login_failed":   "Incorrect email or password",
	"auth.signup_failed":  "Could not create the account",
	"auth.token_expired":  "Your session has expired. Please sign in again",
	"auth.token_invalid":  "Invalid session token",
	"auth.logout_success": "Signed out",
}

var koMessages = map[string]string{
	"notice.success": "완료!",
	"notice.error":   "오류",

	"error.not_found":    "요청한 항목을 찾을 수 없습니다",
	"error.unauthorized": "로그인이 필요합니다",
	"error.bad_request":  "잘못된 요청입니다",
	"error.fetch_failed": "지금은 불러올 수 없습니다. 잠시 후 다시 시도해주세요.",

	"member.not_found":      "찾으시는 가족 구성원이 없습니다.",
	"member.load_failed":    "구성원 정보를 불러오지 못했습니다. 다시 시도해주세요.",
	"member.update_success": "구성원 정보가 수정되었습니다.",
	"member.update_failed":  "구성원 정보 수정에 실패했습니다. 다시 시도해주세요.",
	"member.create_success": "가족 구성원이 추가되었습니다.",
	"member.create_failed":  "가족 구성원 추가에 실패했습니다. 다시 시도해주세요.",
	"member.avatar_success": "프로필 사진이 변경되었습니다.",
	"member.avatar_failed":  "프로필 사진 변경에 실패했습니다. 다시 시도해주세요.",
	"member.avatar_no_file": "먼저 사진을 선택해주세요.",

	"event.not_found":      "찾으시는 일정이 없습니다.",
	"event.load_failed":    "일정 정보를 불러오지 못했습니다. 다시 시도해주세요.",
	"event.create_success": "일정이 등록되었습니다.",
	"event.create_failed":  "일정 등록에 실패했습니다. 다시 시도해주세요.",

	"photo.upload_title":   "업로드 실패",
	"photo.upload_success": "사진이 업로드되었습니다.",
	"photo.upload_failed":  "사진 업로드에 실패했습니다. 다시 시도해주세요.",
	"photo.no_file":        "먼저 사진을 선택해주세요.",
	"photo.not_image":      "이미지 파일만 업로드할 수 있습니다.",

	"memory.create_success": "추억이 등록되었습니다.",
	"memory.update_success": "추억이 수정되었습니다.",
	"memory.save_failed":    "추억 저장에 실패했습니다. 다시 시도해주세요.",
	"memory.delete_success": "추억이 삭제되었습니다.",
	"memory.delete_failed":  "추억 삭제에 실패했습니다. 다시 시도해주세요.",

	"post.create_success": "글이 공유되었습니다.",
	"post.create_failed":  "글 공유에 실패했습니다. 다시 시도해주세요.",

	"viewer.not_open":          "사진 뷰어가 열려 있지 않습니다.",
	"viewer.photo_not_in_view": "현재 갤러리 목록에 없는 사진입니다.",
	"viewer.empty_view":        "보여줄 사진이 없습니다.",
	"viewer.open_failed":       "사진 뷰어를 열 수 없습니다.",
	"viewer.update_failed":     "사진 뷰어를 갱신할 수 없습니다.",
	"viewer.close_failed":      "사진 뷰어를 닫을 수 없습니다.",

	"auth.login_failed":   "이메일 또는 비밀번호가 올바르지 않습니다",
	"auth.signup_failed":  "계정을 만들 수 없습니다",
	"auth.token_expired":  "인증이 만료되었습니다. 다시 로그인해주세요",
	"auth.token_invalid":  "유효하지 않은 인증 토큰입니다",
	"auth.logout_success": "로그아웃 되었습니다",
}
