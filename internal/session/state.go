package session

import (
	"crypto/subtle"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/sufield/prdash/internal/domain"
	"github.com/sufield/prdash/internal/ports"
)

// DefaultStateTTL bounds how long a user may sit on the provider's consent page.
const DefaultStateTTL = 10 * time.Minute

const stateSubject = "oauth-state"

type stateClaims struct {
	Nonce string `json:"nonce"`
	jwt.RegisteredClaims
}

// StateSigner implements ports.StateSigner.
type StateSigner struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewStateSigner creates a signer. A zero ttl means DefaultStateTTL.
func NewStateSigner(secret []byte, ttl time.Duration, opts ...Option) (*StateSigner, error) {
	if len(secret) < MinSecretLength {
		return nil, errShortSecret
	}
	if ttl <= 0 {
		ttl = DefaultStateTTL
	}
	o := buildOptions(opts)
	return &StateSigner{
		secret: append([]byte(nil), secret...),
		ttl:    ttl,
		now:    o.now,
	}, nil
}

// TTL returns the lifetime of issued state cookies.
func (s *StateSigner) TTL() time.Duration { return s.ttl }

// Issue creates a fresh nonce and the signed cookie value that binds it.
func (s *StateSigner) Issue() (string, string, error) {
	nonce := uuid.NewString()
	now := s.now()

	claims := stateClaims{
		Nonce: nonce,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    Issuer,
			Subject:   stateSubject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}

	cookie, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", "", fmt.Errorf("sign state: %w", err)
	}
	return nonce, cookie, nil
}

// Verify checks that cookie is a live state token binding exactly state.
// Every failure wraps domain.ErrStateMismatch.
func (s *StateSigner) Verify(cookie, state string) error {
	if cookie == "" || state == "" {
		return fmt.Errorf("%w: missing state or state cookie", domain.ErrStateMismatch)
	}

	var claims stateClaims
	_, err := jwt.ParseWithClaims(cookie, &claims, func(*jwt.Token) (any, error) { return s.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(Issuer),
		jwt.WithSubject(stateSubject),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		if isExpired(err) {
			return fmt.Errorf("%w: state cookie expired", domain.ErrStateMismatch)
		}
		return fmt.Errorf("%w: %w", domain.ErrStateMismatch, err)
	}

	if subtle.ConstantTimeCompare([]byte(claims.Nonce), []byte(state)) != 1 {
		return fmt.Errorf("%w: nonce differs", domain.ErrStateMismatch)
	}
	return nil
}

var _ ports.StateSigner = (*StateSigner)(nil)
