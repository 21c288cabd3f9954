// internal/challenge/challenge.go
//
// Challenge codes let one player hand a target word to another.
// A code is an HS256 JWT; the word travels in the claims, so codes are
// tamper-evident but not secret.

package challenge

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const issuer = "wordle-tui"

// ErrInvalidCode wraps every decoding failure (bad signature, expired, malformed).
var ErrInvalidCode = errors.New("challenge: invalid code")

// Challenge is what a code carries.
type Challenge struct {
	Word        string
	MaxAttempts int // 0 means "use the player's setting"
}

type claims struct {
	Word        string `json:"w"`
	MaxAttempts int    `json:"n,omitempty"`
	jwt.RegisteredClaims
}

// Encode signs c with secret. ttl <= 0 produces a code that never expires.
func Encode(secret string, c Challenge, ttl time.Duration) (string, error) {
	if secret == "" {
		return "", errors.New("challenge: empty secret")
	}
	word := strings.ToLower(strings.TrimSpace(c.Word))
	if word == "" {
		return "", errors.New("challenge: empty word")
	}
	now := time.Now()
	cl := claims{
		Word:        word,
		MaxAttempts: c.MaxAttempts,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:   issuer,
			IssuedAt: jwt.NewNumericDate(now),
		},
	}
	if ttl > 0 {
		cl.ExpiresAt = jwt.NewNumericDate(now.Add(ttl))
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, cl)
	return t.SignedString([]byte(secret))
}

// Decode verifies code and returns its challenge.
func Decode(secret, code string) (Challenge, error) {
	var cl claims
	_, err := jwt.ParseWithClaims(strings.TrimSpace(code), &cl, func(t *jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(issuer),
	)
	if err != nil {
		return Challenge{}, fmt.Errorf("%w: %v", ErrInvalidCode, err)
	}
	if cl.Word == "" {
		return Challenge{}, fmt.Errorf("%w: missing word", ErrInvalidCode)
	}
	return Challenge{Word: cl.Word, MaxAttempts: cl.MaxAttempts}, nil
}
