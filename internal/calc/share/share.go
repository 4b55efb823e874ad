// Package share issues signed, self-contained tokens carrying an exchange
// record, so a result can be handed to someone else without storing it.
package share

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"Metrica/internal/calc/export"
)

const issuer = "metrica"

var ErrNoKey = errors.New("share: signing key is empty")

type claims struct {
	Record export.Record `json:"rec"`
	jwt.RegisteredClaims
}

type Signer struct {
	key []byte
	now func() time.Time
}

func NewSigner(key []byte) (*Signer, error) {
	if len(key) == 0 {
		return nil, ErrNoKey
	}
	return &Signer{key: key, now: time.Now}, nil
}

// Sign returns an HS256 token for rec valid for ttl, and its expiry.
func (s *Signer) Sign(rec export.Record, ttl time.Duration) (string, time.Time, error) {
	now := s.now()
	exp := now.Add(ttl)
	c := claims{
		Record: rec,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Issuer:    issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(exp),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, c).SignedString(s.key)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("sign share token: %w", err)
	}
	return token, exp, nil
}

// Parse verifies the token and returns the record it carries. Every failure
// wraps export.ErrSerialization together with the jwt cause.
func (s *Signer) Parse(token string) (export.Record, error) {
	var c claims
	_, err := jwt.ParseWithClaims(token, &c, func(*jwt.Token) (any, error) {
		return s.key, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(issuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		return export.Record{}, fmt.Errorf("%w: %w", export.ErrSerialization, err)
	}
	if !c.Record.Category.Valid() {
		return export.Record{}, fmt.Errorf("%w: token carries no category", export.ErrSerialization)
	}
	return c.Record, nil
}
