package api

import (
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrInvalidSession = errors.New("invalid session")
	ErrSessionExpired = errors.New("session expired")
)

// Session is the admin credential forwarded to the remote API.
type Session struct {
	Token     string
	Subject   string
	Email     string
	Name      string
	ExpiresAt time.Time
}

// Actor names the session owner for audit entries.
func (s *Session) Actor() string {
	if s == nil {
		return "system"
	}
	if s.Email != "" {
		return s.Email
	}
	if s.Subject != "" {
		return s.Subject
	}
	return "unknown"
}

// ParseSession inspects a bearer token locally. The signature is not
// verified here: the remote API owns verification, the console only needs
// the expiry and display claims.
func ParseSession(token string, now time.Time) (*Session, error) {
	token = strings.TrimSpace(token)
	if len(token) > 7 && strings.EqualFold(token[:7], "bearer ") {
		token = strings.TrimSpace(token[7:])
	}
	if token == "" {
		return nil, ErrInvalidSession
	}

	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return nil, ErrInvalidSession
	}

	exp, err := claims.GetExpirationTime()
	if err != nil {
		return nil, ErrInvalidSession
	}
	if exp == nil || !now.Before(exp.Time) {
		return nil, ErrSessionExpired
	}

	sub, _ := claims.GetSubject()
	sess := &Session{
		Token:     token,
		Subject:   sub,
		ExpiresAt: exp.Time,
	}
	if email, ok := claims["email"].(string); ok {
		sess.Email = email
	}
	if name, ok := claims["name"].(string); ok {
		sess.Name = name
	}
	return sess, nil
}
