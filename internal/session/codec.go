package session

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/sufield/prdash/internal/debug"
	"github.com/sufield/prdash/internal/domain"
	"github.com/sufield/prdash/internal/ports"
)

const (
	// Issuer is stamped into, and required from, every token prdash signs.
	Issuer = "prdash"

	// DefaultValidity is the session lifetime attached at encode time.
	DefaultValidity = 24 * time.Hour

	// MinSecretLength is the shortest accepted signing secret, in bytes.
	MinSecretLength = 32
)

var errShortSecret = fmt.Errorf("signing secret must be at least %d bytes", MinSecretLength)

type sessionClaims struct {
	AccessToken string `json:"access_token,omitempty"`
	Login       string `json:"login,omitempty"`
	AvatarURL   string `json:"avatar_url,omitempty"`
	jwt.RegisteredClaims
}

// Option configures a Codec or StateSigner.
type Option func(*options)

type options struct {
	now func() time.Time
}

// WithClock overrides the time source used for iat/exp.
func WithClock(now func() time.Time) Option {
	return func(o *options) {
		o.now = now
	}
}

func buildOptions(opts []Option) options {
	o := options{now: time.Now}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// Codec implements ports.SessionCodec.
type Codec struct {
	secret   []byte
	validity time.Duration
	now      func() time.Time
}

// NewCodec creates a codec signing with secret. A zero validity means
// DefaultValidity.
func NewCodec(secret []byte, validity time.Duration, opts ...Option) (*Codec, error) {
	if len(secret) < MinSecretLength {
		return nil, errShortSecret
	}
	if validity <= 0 {
		validity = DefaultValidity
	}
	o := buildOptions(opts)
	return &Codec{
		secret:   append([]byte(nil), secret...),
		validity: validity,
		now:      o.now,
	}, nil
}

// Validity returns the lifetime attached to encoded sessions.
func (c *Codec) Validity() time.Duration { return c.validity }

// Encode signs s into a URL-safe compact JWS.
func (c *Codec) Encode(s domain.Session) (string, error) {
	now := c.now()
	claims := sessionClaims{
		AccessToken: s.AccessToken,
		Login:       s.Login,
		AvatarURL:   s.AvatarURL,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    Issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(c.validity)),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(c.secret)
	if err != nil {
		return "", fmt.Errorf("sign session: %w", err)
	}
	return signed, nil
}

// Decode verifies raw and returns the session it carries. Malformed,
// tampered, foreign or expired input yields the anonymous session.
func (c *Codec) Decode(raw string) domain.Session {
	s, err := c.decode(raw)
	if err != nil {
		debug.GetLogger().Debugf("session cookie demoted to anonymous: %v", err)
		return domain.Anonymous()
	}
	return s
}

func (c *Codec) decode(raw string) (domain.Session, error) {
	if raw == "" {
		return domain.Anonymous(), nil
	}

	var claims sessionClaims
	_, err := jwt.ParseWithClaims(raw, &claims, c.keyFunc,
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(Issuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(c.now),
	)
	if err != nil {
		return domain.Session{}, fmt.Errorf("%w: %w", domain.ErrSessionDecode, err)
	}

	return domain.Session{
		AccessToken: claims.AccessToken,
		Login:       claims.Login,
		AvatarURL:   claims.AvatarURL,
	}, nil
}

func (c *Codec) keyFunc(*jwt.Token) (any, error) {
	return c.secret, nil
}

// isExpired reports whether err stems from an expired token.
func isExpired(err error) bool {
	return errors.Is(err, jwt.ErrTokenExpired)
}

var _ ports.SessionCodec = (*Codec)(nil)
