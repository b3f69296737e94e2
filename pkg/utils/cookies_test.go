package utils

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func findCookie(t *testing.T, cookies []*http.Cookie, name string) *http.Cookie {
	t.Helper()
	for _, c := range cookies {
		if c.Name == name {
			return c
		}
	}
	t.Fatalf("cookie %s not set", name)
	return nil
}

func TestSetAuthCookies(t *testing.T) {
	w := httptest.NewRecorder()
	cfg := CookieConfig{SameSite: "lax"}

	SetAuthCookies(w, cfg, "access-value", "refresh-value", 10*time.Minute, 24*time.Hour)

	cookies := w.Result().Cookies()
	require.Len(t, cookies, 2)

	access := findCookie(t, cookies, AccessTokenCookie)
	assert.Equal(t, "access-value", access.Value)
	assert.Equal(t, "/", access.Path)
	assert.Equal(t, 600, access.MaxAge)
	assert.True(t, access.HttpOnly)
	assert.Equal(t, http.SameSiteLaxMode, access.SameSite)

	refresh := findCookie(t, cookies, RefreshTokenCookie)
	assert.Equal(t, "refresh-value", refresh.Value)
	assert.Equal(t, 86400, refresh.MaxAge)
	assert.True(t, refresh.HttpOnly)
}

func TestClearAuthCookies(t *testing.T) {
	w := httptest.NewRecorder()

	ClearAuthCookies(w, CookieConfig{})

	cookies := w.Result().Cookies()
	require.Len(t, cookies, 2)

	for _, name := range []string{AccessTokenCookie, RefreshTokenCookie} {
		c := findCookie(t, cookies, name)
		assert.Empty(t, c.Value)
		assert.Equal(t, -1, c.MaxAge)
	}
}

func TestSameSiteMode(t *testing.T) {
	assert.Equal(t, http.SameSiteStrictMode, sameSiteMode("strict"))
	assert.Equal(t, http.SameSiteStrictMode, sameSiteMode("Strict"))
	assert.Equal(t, http.SameSiteNoneMode, sameSiteMode("none"))
	assert.Equal(t, http.SameSiteLaxMode, sameSiteMode("lax"))
	assert.Equal(t, http.SameSiteLaxMode, sameSiteMode(""))
}
