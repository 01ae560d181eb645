package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCookieManager_Set(t *testing.T) {
	manager := NewCookieManager(false)
	recorder := httptest.NewRecorder()

	manager.Set(recorder, "token-value", 24*time.Hour)

	cookies := recorder.Result().Cookies()
	require.Len(t, cookies, 1)

	cookie := cookies[0]
	assert.Equal(t, CookieName, cookie.Name)
	assert.Equal(t, "token-value", cookie.Value)
	assert.Equal(t, "/", cookie.Path)
	assert.True(t, cookie.HttpOnly)
	assert.False(t, cookie.Secure)
	assert.Equal(t, http.SameSiteLaxMode, cookie.SameSite)
	assert.Equal(t, int((24 * time.Hour).Seconds()), cookie.MaxAge)
}

func TestCookieManager_SecureInProduction(t *testing.T) {
	manager := NewCookieManager(true)
	recorder := httptest.NewRecorder()

	manager.Set(recorder, "token-value", time.Hour)

	cookies := recorder.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.True(t, cookies[0].Secure)
}

func TestCookieManager_Read(t *testing.T) {
	manager := NewCookieManager(false)

	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.AddCookie(&http.Cookie{Name: CookieName, Value: "token-value"})

	token, err := manager.Read(r)
	require.NoError(t, err)
	assert.Equal(t, "token-value", token)
}

func TestCookieManager_ReadMissing(t *testing.T) {
	manager := NewCookieManager(false)

	r := httptest.NewRequest(http.MethodGet, "/", nil)

	_, err := manager.Read(r)
	assert.ErrorIs(t, err, http.ErrNoCookie)
}

func TestCookieManager_Clear(t *testing.T) {
	manager := NewCookieManager(false)
	recorder := httptest.NewRecorder()

	manager.Clear(recorder)

	cookies := recorder.Result().Cookies()
	require.Len(t, cookies, 1)

	cookie := cookies[0]
	assert.Equal(t, CookieName, cookie.Name)
	assert.Empty(t, cookie.Value)
	assert.Equal(t, -1, cookie.MaxAge)
}
