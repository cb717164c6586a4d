// Package cookies parses raw Cookie headers and builds Set-Cookie directives.
//
// Parsing is lenient: fragments that are not name=value pairs are dropped and
// parsing carries on, so a single bad pair never hides the rest of the header.
package cookies

import (
	"net/http"
	"sort"
	"strings"
	"time"

	apperrors "github.com/jrsteele09/go-session-server/internal/errors"
)

// Jar maps a cookie name to its raw value. On duplicate names the last one wins.
type Jar map[string]string

// Get returns the raw value of the named cookie.
func (j Jar) Get(name string) (string, bool) {
	v, ok := j[name]
	return v, ok
}

// Names returns the cookie names in sorted order.
func (j Jar) Names() []string {
	names := make([]string, 0, len(j))
	for name := range j {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Parse splits a raw Cookie header on ';' and each fragment on its first '='.
// Malformed fragments are dropped silently.
func Parse(rawHeader string) Jar {
	jar := make(Jar)
	for _, fragment := range strings.Split(rawHeader, ";") {
		name, value, err := parsePair(fragment)
		if err != nil {
			continue
		}
		jar[name] = value
	}
	return jar
}

// FromRequest parses every Cookie header line on the request as one header.
func FromRequest(r *http.Request) Jar {
	return Parse(strings.Join(r.Header.Values("Cookie"), "; "))
}

func parsePair(fragment string) (name, value string, err error) {
	fragment = strings.TrimSpace(fragment)
	name, value, found := strings.Cut(fragment, "=")
	if !found {
		return "", "", apperrors.ErrMalformedCookie
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return "", "", apperrors.ErrMalformedCookie
	}
	return name, value, nil
}

// Options are the attributes of a single Set-Cookie directive.
type Options struct {
	Path     string
	Domain   string
	HttpOnly bool
	Secure   bool
	SameSite http.SameSite
	// MaxAge > 0 sets Max-Age in seconds, < 0 sends Max-Age=0, 0 omits it.
	MaxAge  int
	Expires time.Time
}

// epoch is what expiring directives send as their Expires attribute.
var epoch = time.Unix(0, 0).UTC()

// Serialize builds one Set-Cookie directive. It returns "" if name is not a
// valid cookie name.
func Serialize(name, value string, opts Options) string {
	c := &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     opts.Path,
		Domain:   opts.Domain,
		Expires:  opts.Expires,
		MaxAge:   opts.MaxAge,
		HttpOnly: opts.HttpOnly,
		Secure:   opts.Secure,
		SameSite: opts.SameSite,
	}
	return c.String()
}

// Expire builds a directive that tells the client to drop the named cookie.
func Expire(name string, opts Options) string {
	opts.Expires = epoch
	opts.MaxAge = -1
	return Serialize(name, "", opts)
}

// Write adds each directive as its own Set-Cookie header entry.
// Set-Cookie values must never be comma-joined into a single line.
func Write(h http.Header, directives ...string) {
	for _, d := range directives {
		if d == "" {
			continue
		}
		h.Add("Set-Cookie", d)
	}
}
