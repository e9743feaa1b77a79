package http

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"havenpos/internal/core/domain/model/access"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

var (
	ErrMissingToken = errors.New("missing token")
	ErrInvalidToken = errors.New("invalid token")
)

const sessionKey = "session"

// Claims are the staff claims carried by an access token.
type Claims struct {
	Name string `json:"name"`
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// Tokens signs and verifies HS256 staff tokens.
type Tokens struct {
	secret []byte
	now    func() time.Time
}

func NewTokens(secret string, now func() time.Time) (*Tokens, error) {
	secret = strings.TrimSpace(secret)
	if secret == "" {
		return nil, fmt.Errorf("%w: jwt secret not configured", ErrInvalidToken)
	}
	if now == nil {
		now = time.Now
	}
	return &Tokens{secret: []byte(secret), now: now}, nil
}

// Sign issues a token for the session valid for ttl.
func (t *Tokens) Sign(s access.Session, ttl time.Duration) (string, error) {
	issued := t.now()
	claims := Claims{
		Name: s.Name,
		Role: s.Role.String(),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   s.UserID,
			IssuedAt:  jwt.NewNumericDate(issued),
			ExpiresAt: jwt.NewNumericDate(issued.Add(ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(t.secret)
}

// Verify checks the signature and expiry and maps the claims onto a session.
func (t *Tokens) Verify(raw string) (access.Session, error) {
	if strings.TrimSpace(raw) == "" {
		return access.Session{}, ErrMissingToken
	}

	claims := &Claims{}
	parsed, err := jwt.ParseWithClaims(raw, claims, func(tok *jwt.Token) (any, error) {
		if _, ok := tok.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", tok.Header["alg"])
		}
		return t.secret, nil
	}, jwt.WithLeeway(5*time.Second), jwt.WithTimeFunc(t.now))
	if err != nil {
		return access.Session{}, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if !parsed.Valid {
		return access.Session{}, ErrInvalidToken
	}
	if claims.Subject == "" {
		return access.Session{}, fmt.Errorf("%w: missing subject", ErrInvalidToken)
	}

	role, err := access.ParseRole(claims.Role)
	if err != nil {
		return access.Session{}, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	return access.Session{UserID: claims.Subject, Name: claims.Name, Role: role}, nil
}

// bearerToken extracts the token from an Authorization header value.
func bearerToken(header string) string {
	header = strings.TrimSpace(header)
	const prefix = "bearer "
	if len(header) > len(prefix) && strings.EqualFold(header[:len(prefix)], prefix) {
		return strings.TrimSpace(header[len(prefix):])
	}
	return ""
}

func authenticate(tokens *Tokens) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			s, err := tokens.Verify(bearerToken(c.Request().Header.Get(echo.HeaderAuthorization)))
			if err != nil {
				return err
			}
			c.Set(sessionKey, s)
			return next(c)
		}
	}
}

// requirePermission must run after authenticate.
func requirePermission(p access.Permission) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if err := access.Require(sessionFrom(c), p); err != nil {
				return err
			}
			return next(c)
		}
	}
}

func sessionFrom(c echo.Context) access.Session {
	s, _ := c.Get(sessionKey).(access.Session)
	return s
}
