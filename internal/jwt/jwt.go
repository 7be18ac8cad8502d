package jwt

import (
	"crypto/rand"
	"errors"
	"fmt"
	"time"

	"tarneeb-server/internal/config"

	jwtgo "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Issuer issues the JWT
const Issuer = "tarneeb-server"

// Audience is the intended JWT audience
const Audience = "tarneeb-table"

const defaultTicketTTL = time.Minute

var secret []byte
var ticketTTL = defaultTicketTTL

// Ticket is a validated seat ticket
type Ticket struct {
	ID      string
	Name    string
	Expires time.Time
}

type ticketClaims struct {
	Name string `json:"name"`
	jwtgo.RegisteredClaims
}

// LoadKeys will load the signing secret from the configuration
// A random secret is used when none is configured. Tickets then do not survive a restart
// this method should only be called once.
func LoadKeys() {
	cfg := config.Instance()
	if ttl := cfg.TicketTTL(); ttl > 0 {
		ticketTTL = ttl
	}

	if cfg.JWT.Secret != "" {
		secret = []byte(cfg.JWT.Secret)
		return
	}

	logrus.Warn("no jwt secret configured, using a random secret")
	secret = make([]byte, 32)
	if _, err := rand.Read(secret); err != nil {
		logrus.WithError(err).Fatal("could not generate a jwt secret")
	}
}

// Sign will sign a seat ticket for the display name
func Sign(name string) (string, time.Time, error) {
	if secret == nil {
		panic("LoadKeys() not called")
	}

	now := time.Now()
	expires := now.Add(ticketTTL)
	token := jwtgo.NewWithClaims(jwtgo.SigningMethodHS256, ticketClaims{
		Name: name,
		RegisteredClaims: jwtgo.RegisteredClaims{
			Audience:  jwtgo.ClaimStrings{Audience},
			ID:        uuid.New().String(),
			IssuedAt:  jwtgo.NewNumericDate(now),
			ExpiresAt: jwtgo.NewNumericDate(expires),
			Issuer:    Issuer,
		},
	})

	signed, err := token.SignedString(secret)
	if err != nil {
		return "", time.Time{}, err
	}

	return signed, expires, nil
}

// ValidTicket will validate a signed seat ticket
func ValidTicket(signedString string) (*Ticket, error) {
	if secret == nil {
		panic("LoadKeys() not called")
	}

	token, err := jwtgo.ParseWithClaims(signedString, &ticketClaims{}, func(token *jwtgo.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwtgo.SigningMethodHMAC); !ok {
			return nil, errors.New("expected HS256 signing method")
		}

		return secret, nil
	})

	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*ticketClaims)
	if !ok {
		return nil, fmt.Errorf("expected ticketClaims, got %T", token.Claims)
	}

	if !containsAudience(claims.Audience, Audience) {
		return nil, errors.New("invalid audience")
	}

	if claims.Issuer != Issuer {
		return nil, errors.New("invalid issuer")
	}

	if claims.ExpiresAt == nil {
		return nil, errors.New("ticket does not expire")
	}

	return &Ticket{
		ID:      claims.ID,
		Name:    claims.Name,
		Expires: claims.ExpiresAt.Time,
	}, nil
}

func containsAudience(audiences jwtgo.ClaimStrings, target string) bool {
	for _, aud := range audiences {
		if aud == target {
			return true
		}
	}
	return false
}
