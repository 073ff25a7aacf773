package session

import (
	"encoding/base64"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sufield/prdash/internal/domain"
)

var testSecret = []byte("0123456789abcdef0123456789abcdef")

type fakeClock struct{ t time.Time }

func (c *fakeClock) Now() time.Time          { return c.t }
func (c *fakeClock) Advance(d time.Duration) { c.t = c.t.Add(d) }

func newClock() *fakeClock {
	return &fakeClock{t: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)}
}

func newTestCodec(t *testing.T, clock *fakeClock) *Codec {
	t.Helper()
	c, err := NewCodec(testSecret, 0, WithClock(clock.Now))
	require.NoError(t, err)
	return c
}

func TestNewCodec_RejectsShortSecret(t *testing.T) {
	_, err := NewCodec([]byte("short"), time.Hour)
	assert.Error(t, err)
}

func TestCodec_RoundTrip(t *testing.T) {
	codec := newTestCodec(t, newClock())

	tests := []struct {
		name    string
		session domain.Session
	}{
		{"full", domain.Session{AccessToken: "gho_abc", Login: "octocat", AvatarURL: "https://avatars.example/u/1"}},
		{"token only", domain.Session{AccessToken: "gho_abc"}},
		{"anonymous", domain.Session{}},
		{"unicode login", domain.Session{AccessToken: "t", Login: "ünïcødé"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raw, err := codec.Encode(tt.session)
			require.NoError(t, err)
			assert.NotContains(t, raw, "=")
			assert.NotContains(t, raw, "+")
			assert.NotContains(t, raw, "/")
			assert.Equal(t, tt.session, codec.Decode(raw))
		})
	}
}

func TestCodec_DecodeDemotesToAnonymous(t *testing.T) {
	clock := newClock()
	codec := newTestCodec(t, clock)

	valid, err := codec.Encode(domain.Session{AccessToken: "gho_abc", Login: "octocat"})
	require.NoError(t, err)

	other, err := NewCodec([]byte("ffffffffffffffffffffffffffffffff"), 0, WithClock(clock.Now))
	require.NoError(t, err)
	foreign, err := other.Encode(domain.Session{AccessToken: "gho_evil"})
	require.NoError(t, err)

	parts := strings.Split(valid, ".")
	require.Len(t, parts, 3)
	forgedPayload := base64.RawURLEncoding.EncodeToString([]byte(`{"access_token":"gho_evil","iss":"prdash","exp":9999999999}`))
	tampered := parts[0] + "." + forgedPayload + "." + parts[2]

	unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{
		"access_token": "gho_evil", "iss": Issuer, "exp": clock.Now().Add(time.Hour).Unix(),
	}).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	wrongIssuer, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"access_token": "gho_abc", "iss": "someone-else", "exp": clock.Now().Add(time.Hour).Unix(),
	}).SignedString(testSecret)
	require.NoError(t, err)

	noExpiry, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"access_token": "gho_abc", "iss": Issuer,
	}).SignedString(testSecret)
	require.NoError(t, err)

	inputs := map[string]string{
		"empty":        "",
		"garbage":      "not-a-token",
		"three dots":   "a.b.c",
		"truncated":    valid[:len(valid)/2],
		"wrong key":    foreign,
		"tampered":     tampered,
		"alg none":     unsigned,
		"wrong issuer": wrongIssuer,
		"no expiry":    noExpiry,
	}

	for name, raw := range inputs {
		t.Run(name, func(t *testing.T) {
			s := codec.Decode(raw)
			assert.True(t, s.IsAnonymous())
			assert.Equal(t, domain.Anonymous(), s)
		})
	}
}

func TestCodec_DecodeErrorWrapsSentinel(t *testing.T) {
	codec := newTestCodec(t, newClock())

	_, err := codec.decode("garbage")
	assert.ErrorIs(t, err, domain.ErrSessionDecode)

	s, err := codec.decode("")
	assert.NoError(t, err)
	assert.True(t, s.IsAnonymous())
}

func TestCodec_Expiry(t *testing.T) {
	clock := newClock()
	codec := newTestCodec(t, clock)
	want := domain.Session{AccessToken: "gho_abc", Login: "octocat"}

	raw, err := codec.Encode(want)
	require.NoError(t, err)

	clock.Advance(DefaultValidity - time.Second)
	assert.Equal(t, want, codec.Decode(raw), "still inside the validity window")

	clock.Advance(2 * time.Second)
	assert.True(t, codec.Decode(raw).IsAnonymous(), "past the validity window")
}

func TestCodec_CustomValidity(t *testing.T) {
	clock := newClock()
	codec, err := NewCodec(testSecret, time.Minute, WithClock(clock.Now))
	require.NoError(t, err)
	assert.Equal(t, time.Minute, codec.Validity())

	raw, err := codec.Encode(domain.Session{AccessToken: "gho_abc"})
	require.NoError(t, err)

	clock.Advance(time.Minute + time.Second)
	assert.True(t, codec.Decode(raw).IsAnonymous())
}
