package auth

import (
	"errors"
	"net/http"

	"github.com/nafisnihal/product-management-backend/internal/config"
)

// CookieName is the session cookie the frontend expects
const CookieName = "token"

// CookieTransport carries session tokens between client and server as an
// httpOnly cookie. All attribute decisions come from the deployment
// policy resolved at startup.
type CookieTransport struct {
	policy config.CookiePolicy
}

// NewCookieTransport creates a transport for the given cookie policy
func NewCookieTransport(policy config.CookiePolicy) *CookieTransport {
	return &CookieTransport{policy: policy}
}

// Attach writes the session cookie to a response
func (t *CookieTransport) Attach(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    token,
		Path:     t.policy.Path,
		Domain:   t.policy.Domain,
		MaxAge:   int(t.policy.MaxAge.Seconds()),
		HttpOnly: true,
		Secure:   t.policy.Secure,
		SameSite: t.policy.SameSite,
	})
}

// Read extracts the session token from a request. Returns ErrNoToken
// when the cookie is absent or empty.
func (t *CookieTransport) Read(r *http.Request) (string, error) {
	cookie, err := r.Cookie(CookieName)
	if err != nil {
		if errors.Is(err, http.ErrNoCookie) {
			return "", ErrNoToken
		}
		return "", err
	}
	if cookie.Value == "" {
		return "", ErrNoToken
	}
	return cookie.Value, nil
}

// Clear instructs the client to drop the session cookie. Attributes must
// match the ones used by Attach or browsers will not remove it.
func (t *CookieTransport) Clear(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     t.policy.Path,
		Domain:   t.policy.Domain,
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   t.policy.Secure,
		SameSite: t.policy.SameSite,
	})
}
