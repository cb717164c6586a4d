package cookies_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/jrsteele09/go-session-server/cookies"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want cookies.Jar
	}{
		{"empty header", "", cookies.Jar{}},
		{"single pair", "session_id=abc", cookies.Jar{"session_id": "abc"}},
		{"two pairs with spaces", "session_id=abc; session_user=admin", cookies.Jar{"session_id": "abc", "session_user": "admin"}},
		{"split on first equals", "token=a=b=c", cookies.Jar{"token": "a=b=c"}},
		{"empty value kept", "a=; b=2", cookies.Jar{"a": "", "b": "2"}},
		{"fragment without equals dropped", "a=1; garbage; b=2", cookies.Jar{"a": "1", "b": "2"}},
		{"empty name dropped", "=orphan; a=1", cookies.Jar{"a": "1"}},
		{"trailing separators", ";;a=1;; ;", cookies.Jar{"a": "1"}},
		{"last duplicate wins", "a=1; a=2", cookies.Jar{"a": "2"}},
		{"surrounding whitespace trimmed", "  a=1  ;\tb=2\t", cookies.Jar{"a": "1", "b": "2"}},
		{"value kept raw", "session_user=john%40example.com", cookies.Jar{"session_user": "john%40example.com"}},
		{"only garbage", "nothing here", cookies.Jar{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, cookies.Parse(tt.raw))
		})
	}
}

func TestParseNeverPanics(t *testing.T) {
	inputs := []string{
		";", "=", "==", ";=;", "\x00=\x00", "a=\"quoted\"", "\xff\xfe=bad-utf8",
		"a;b;c", "   ", "a=1;" + string(make([]byte, 1024)),
	}
	for _, in := range inputs {
		require.NotPanics(t, func() { cookies.Parse(in) }, "input %q", in)
	}
}

func TestJar(t *testing.T) {
	jar := cookies.Parse("b=2; a=1; c=3")

	v, ok := jar.Get("a")
	require.True(t, ok)
	require.Equal(t, "1", v)

	_, ok = jar.Get("missing")
	require.False(t, ok)

	require.Equal(t, []string{"a", "b", "c"}, jar.Names())
	require.Empty(t, cookies.Jar{}.Names())
}

func TestFromRequest(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.Header.Add("Cookie", "a=1; b=2")
	r.Header.Add("Cookie", "c=3")

	require.Equal(t, cookies.Jar{"a": "1", "b": "2", "c": "3"}, cookies.FromRequest(r))

	empty := httptest.NewRequest(http.MethodGet, "/", nil)
	require.Empty(t, cookies.FromRequest(empty))
}

func TestSerialize(t *testing.T) {
	t.Run("http only session cookie", func(t *testing.T) {
		got := cookies.Serialize("session_id", "abc", cookies.Options{Path: "/", HttpOnly: true})
		require.Equal(t, "session_id=abc; Path=/; HttpOnly", got)
	})

	t.Run("max age", func(t *testing.T) {
		got := cookies.Serialize("session_user", "admin", cookies.Options{Path: "/", MaxAge: 1800})
		require.Equal(t, "session_user=admin; Path=/; Max-Age=1800", got)
	})

	t.Run("expires", func(t *testing.T) {
		exp := time.Date(2030, time.March, 4, 5, 6, 7, 0, time.UTC)
		got := cookies.Serialize("a", "1", cookies.Options{Expires: exp})
		require.Equal(t, "a=1; Expires=Mon, 04 Mar 2030 05:06:07 GMT", got)
	})

	t.Run("secure and same site", func(t *testing.T) {
		got := cookies.Serialize("a", "1", cookies.Options{Path: "/", Secure: true, SameSite: http.SameSiteLaxMode})
		require.Equal(t, "a=1; Path=/; Secure; SameSite=Lax", got)
	})

	t.Run("invalid name", func(t *testing.T) {
		require.Empty(t, cookies.Serialize("bad name", "1", cookies.Options{}))
	})
}

func TestExpire(t *testing.T) {
	got := cookies.Expire("session_id", cookies.Options{Path: "/", HttpOnly: true})
	require.Equal(t, "session_id=; Path=/; Expires=Thu, 01 Jan 1970 00:00:00 GMT; Max-Age=0; HttpOnly", got)
}

func TestWrite(t *testing.T) {
	h := http.Header{}
	cookies.Write(h,
		cookies.Serialize("session_id", "abc", cookies.Options{Path: "/", HttpOnly: true}),
		"",
		cookies.Serialize("session_user", "admin", cookies.Options{Path: "/"}),
	)

	values := h.Values("Set-Cookie")
	require.Len(t, values, 2)
	require.Equal(t, "session_id=abc; Path=/; HttpOnly", values[0])
	require.Equal(t, "session_user=admin; Path=/", values[1])
	for _, v := range values {
		require.NotContains(t, v, ",")
	}
}
