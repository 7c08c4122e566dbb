package middleware

import (
	"github.com/familyalbum/album-backend/internal/notify"
	"github.com/familyalbum/album-backend/pkg/i18n"
	"github.com/gin-gonic/gin"
)

const (
	localeKey  = "locale"
	noticesKey = "notices"
	bundleKey  = "i18nBundle"
)

// I18n detects the client's preferred language from Accept-Language and attaches
// a notice recorder for the request, translated with bundle.
func I18n(bundle *i18n.Bundle) gin.HandlerFunc {
	return func(c *gin.Context) {
		locale := i18n.ParseAcceptLanguage(c.GetHeader("Accept-Language"))
		c.Set(localeKey, locale)
		c.Set(bundleKey, bundle)
		c.Set(noticesKey, notify.NewRecorder(bundle, locale))
		c.Header("Content-Language", string(locale))
		c.Next()
	}
}

// GetLocale returns the locale from the gin context (set by I18n middleware)
func GetLocale(c *gin.Context) i18n.Locale {
	if v, exists := c.Get(localeKey); exists {
		if locale, ok := v.(i18n.Locale); ok {
			return locale
		}
	}
	return i18n.LocaleEn
}

// T translates key for the request locale
func T(c *gin.Context, key string, args ...interface{}) string {
	if v, ok := c.Get(bundleKey); ok {
		if b, ok := v.(*i18n.Bundle); ok && b != nil {
			return b.T(GetLocale(c), key, args...)
		}
	}
	return key
}

// Notices returns the request's notice recorder. Without the I18n middleware a
// recorder with untranslated keys is created.
func Notices(c *gin.Context) *notify.Recorder {
	if v, ok := c.Get(noticesKey); ok {
		if r, ok := v.(*notify.Recorder); ok {
			return r
		}
	}
	r := notify.NewRecorder(nil, GetLocale(c))
	c.Set(noticesKey, r)
	return r
}
