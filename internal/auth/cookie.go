package auth

import (
	"net/http"
	"time"
)

// CookieName is the session cookie carrying the signed token.
const CookieName = "auth_token"

// CookieManager writes and reads the http-only session cookie. Secure is set
// in production so the cookie only travels over TLS.
type CookieManager struct {
	secure bool
}

// NewCookieManager creates a new CookieManager instance.
func NewCookieManager(secure bool) CookieManager {
	return CookieManager{secure: secure}
}

// Set writes the session cookie with an expiry matching the token TTL.
func (m CookieManager) Set(w http.ResponseWriter, token string, ttl time.Duration) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    token,
		Path:     "/",
		Expires:  time.Now().Add(ttl),
		MaxAge:   int(ttl.Seconds()),
		HttpOnly: true,
		Secure:   m.secure,
		SameSite: http.SameSiteLaxMode,
	})
}

// Read returns the raw token from the request cookie. http.ErrNoCookie is
// returned when the cookie is absent.
func (m CookieManager) Read(r *http.Request) (string, error) {
	cookie, err := r.Cookie(CookieName)
	if err != nil {
		return "", err
	}

	return cookie.Value, nil
}

// Clear expires the session cookie client-side. Tokens are stateless, so
// there is nothing to revoke server-side.
func (m CookieManager) Clear(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   m.secure,
		SameSite: http.SameSiteLaxMode,
	})
}
