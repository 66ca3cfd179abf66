package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// storedCookie is the on-disk shape of one cookie.
type storedCookie struct {
	Name     string    `json:"name"`
	Value    string    `json:"value"`
	Path     string    `json:"path,omitempty"`
	Domain   string    `json:"domain,omitempty"`
	Expires  time.Time `json:"expires,omitempty"`
	Secure   bool      `json:"secure,omitempty"`
	HttpOnly bool      `json:"http_only,omitempty"`
}

// PersistentJar is a cookie jar that mirrors its cookies to a JSON file so
// the server's session cookies survive across process runs. It wraps the
// standard jar for matching semantics and only adds the file mirror.
type PersistentJar struct {
	mu   sync.Mutex
	path string
	jar  *cookiejar.Jar
	// cookies as last set, keyed by URL string
	saved map[string][]storedCookie
}

var _ http.CookieJar = (*PersistentJar)(nil)

// NewPersistentJar creates a jar backed by the file at path. An existing
// file is loaded; a missing one is created on the first write.
func NewPersistentJar(path string) (*PersistentJar, error) {
	inner, err := cookiejar.New(nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create cookie jar: %w", err)
	}

	p := &PersistentJar{path: path, jar: inner, saved: map[string][]storedCookie{}}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return p, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read cookie file: %w", err)
	}
	if err := json.Unmarshal(data, &p.saved); err != nil {
		// corrupt cookie file, start over
		p.saved = map[string][]storedCookie{}
		return p, nil
	}

	now := time.Now()
	for rawURL, cookies := range p.saved {
		u, err := url.Parse(rawURL)
		if err != nil {
			continue
		}
		restored := make([]*http.Cookie, 0, len(cookies))
		for _, c := range cookies {
			if !c.Expires.IsZero() && c.Expires.Before(now) {
				continue
			}
			restored = append(restored, &http.Cookie{
				Name:     c.Name,
				Value:    c.Value,
				Path:     c.Path,
				Domain:   c.Domain,
				Expires:  c.Expires,
				Secure:   c.Secure,
				HttpOnly: c.HttpOnly,
			})
		}
		p.jar.SetCookies(u, restored)
	}

	return p, nil
}

// SetCookies stores cookies for the URL and flushes the mirror file.
func (p *PersistentJar) SetCookies(u *url.URL, cookies []*http.Cookie) {
	p.jar.SetCookies(u, cookies)

	p.mu.Lock()
	defer p.mu.Unlock()

	stored := make([]storedCookie, 0, len(cookies))
	for _, c := range cookies {
		if c.MaxAge < 0 {
			continue
		}
		stored = append(stored, storedCookie{
			Name:     c.Name,
			Value:    c.Value,
			Path:     c.Path,
			Domain:   c.Domain,
			Expires:  c.Expires,
			Secure:   c.Secure,
			HttpOnly: c.HttpOnly,
		})
	}
	key := (&url.URL{Scheme: u.Scheme, Host: u.Host}).String()
	if len(stored) == 0 {
		delete(p.saved, key)
	} else {
		p.saved[key] = stored
	}
	p.flush()
}

// Cookies returns the cookies to send with a request to the URL.
func (p *PersistentJar) Cookies(u *url.URL) []*http.Cookie {
	return p.jar.Cookies(u)
}

// flush must be called with the mutex held.
func (p *PersistentJar) flush() {
	data, err := json.MarshalIndent(p.saved, "", "  ")
	if err != nil {
		return
	}
	if dir := filepath.Dir(p.path); dir != "." {
		_ = os.MkdirAll(dir, 0755)
	}
	_ = os.WriteFile(p.path, data, 0600)
}
