package service

import (
	"crypto/subtle"
	"errors"

	"golang.org/x/crypto/bcrypt"

	"github.com/salgadostudio/booking-site/internal/auth"
)

// ErrInvalidCredentials deliberately reveals nothing about which of the two
// values was wrong.
var ErrInvalidCredentials = errors.New("invalid credentials")

// AuthService checks the single configured admin credential pair and manages
// the admin session lifecycle. There are no per-user accounts.
type AuthService struct {
	adminUser    string
	adminPass    string
	adminPassBcr string // bcrypt hash; wins over adminPass when set
	jwtSecret    string
	sessions     *auth.SessionStore
}

func NewAuthService(adminUser, adminPass, adminPassHash, jwtSecret string, sessions *auth.SessionStore) *AuthService {
	return &AuthService{
		adminUser:    adminUser,
		adminPass:    adminPass,
		adminPassBcr: adminPassHash,
		jwtSecret:    jwtSecret,
		sessions:     sessions,
	}
}

// LoginResult carries the signed cookie token for a fresh session.
type LoginResult struct {
	SessionID string
	Token     string
}

// Login validates the credential pair, creates a session, and signs its
// cookie token.
func (s *AuthService) Login(username, password string) (*LoginResult, error) {
	if !s.checkCredentials(username, password) {
		return nil, ErrInvalidCredentials
	}
	sess := s.sessions.Create()
	token, err := auth.GenerateToken(s.jwtSecret, sess.ID, s.sessions.TTL())
	if err != nil {
		s.sessions.Destroy(sess.ID)
		return nil, err
	}
	return &LoginResult{SessionID: sess.ID, Token: token}, nil
}

// Logout destroys the session so a replayed cookie stops working.
func (s *AuthService) Logout(sessionID string) {
	s.sessions.Destroy(sessionID)
}

// Secret exposes the signing secret for cookie token validation outside the
// middleware (the logout path).
func (s *AuthService) Secret() string {
	return s.jwtSecret
}

func (s *AuthService) checkCredentials(username, password string) bool {
	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(s.adminUser)) == 1
	if s.adminPassBcr != "" {
		return userOK && bcrypt.CompareHashAndPassword([]byte(s.adminPassBcr), []byte(password)) == nil
	}
	passOK := subtle.ConstantTimeCompare([]byte(password), []byte(s.adminPass)) == 1
	return userOK && passOK
}
