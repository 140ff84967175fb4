package config

import (
	"fmt"
	"net/http"
	"strings"
	"time"
)

// Cookies describes the pair of cookies an issued token is split into: "auth"
// carries header.payload and stays readable from JS, "sign" carries the
// signature and is HttpOnly. Neither half verifies on its own.
type Cookies struct {
	Domain       string `env:"COOKIES_DOMAIN"`
	Secure       bool   `env:"COOKIES_SECURE" envDefault:"true"`
	SameSiteName string `env:"COOKIES_SAMESITE" envDefault:"STRICT"`

	sameSite http.SameSite
}

func (c *Cookies) parseSameSite() error {
	switch strings.ToUpper(c.SameSiteName) {
	case "DEFAULT":
		c.sameSite = http.SameSiteDefaultMode
	case "LAX":
		c.sameSite = http.SameSiteLaxMode
	case "STRICT":
		c.sameSite = http.SameSiteStrictMode
	case "NONE":
		c.sameSite = http.SameSiteNoneMode
	default:
		return fmt.Errorf("unknown COOKIES_SAMESITE value %q", c.SameSiteName)
	}
	return nil
}

func (c *Cookies) Clear(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     "auth",
		Path:     "/",
		Value:    "delete",
		MaxAge:   -1,
		Domain:   c.Domain,
		Secure:   c.Secure,
		SameSite: c.sameSite,
	})
	http.SetCookie(w, &http.Cookie{
		Name:     "sign",
		Path:     "/",
		Value:    "delete",
		MaxAge:   -1,
		HttpOnly: true,
		Domain:   c.Domain,
		Secure:   c.Secure,
		SameSite: c.sameSite,
	})
}

func (c *Cookies) Refresh(w http.ResponseWriter, token string, lifetime time.Duration) error {
	parts := strings.Split(token, ".")
	if len(parts) != 3 {
		return fmt.Errorf("malformed JWT token generated")
	}
	header, payload, signature := parts[0], parts[1], parts[2]
	expires := time.Now().Add(lifetime)
	http.SetCookie(w, &http.Cookie{
		Name:     "auth",
		Path:     "/",
		Value:    header + "." + payload,
		Expires:  expires,
		Domain:   c.Domain,
		Secure:   c.Secure,
		SameSite: c.sameSite,
	})
	http.SetCookie(w, &http.Cookie{
		Name:     "sign",
		Path:     "/",
		Value:    signature,
		Expires:  expires,
		HttpOnly: true,
		Domain:   c.Domain,
		Secure:   c.Secure,
		SameSite: c.sameSite,
	})
	return nil
}

// Token reassembles the full JWT from the split cookie pair.
func (c *Cookies) Token(r *http.Request) (string, error) {
	authCookie, err := r.Cookie("auth")
	if err != nil {
		return "", err
	}
	signCookie, err := r.Cookie("sign")
	if err != nil {
		return "", err
	}
	return authCookie.Value + "." + signCookie.Value, nil
}
