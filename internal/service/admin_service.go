package service

import (
	"crypto/subtle"
	"fmt"
	"time"

	"github.com/benson/poolbuilder/internal/config"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

const adminTokenTTL = time.Hour

// AdminService verifies the shared moderation secret and optionally
// exchanges it for a short-lived token, so moderation UIs need not retain
// the raw secret.
type AdminService struct {
	cfg *config.Config
}

func NewAdminService(cfg *config.Config) *AdminService {
	return &AdminService{cfg: cfg}
}

// VerifySecret checks a presented secret against the configured credential.
// A bcrypt hash takes precedence; otherwise the plain secret is compared in
// constant time.
func (s *AdminService) VerifySecret(secret string) bool {
	if secret == "" {
		return false
	}
	if s.cfg.AdminSecretHash != "" {
		return bcrypt.CompareHashAndPassword([]byte(s.cfg.AdminSecretHash), []byte(secret)) == nil
	}
	return subtle.ConstantTimeCompare([]byte(s.cfg.AdminSecret), []byte(secret)) == 1
}

// IssueToken mints a short-lived admin session token.
func (s *AdminService) IssueToken() (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "admin",
		"iat": now.Unix(),
		"exp": now.Add(adminTokenTTL).Unix(),
	})
	return token.SignedString(s.signingKey())
}

// VerifyCredential accepts either the raw shared secret or a token
// previously issued by IssueToken.
func (s *AdminService) VerifyCredential(credential string) bool {
	if s.VerifySecret(credential) {
		return true
	}
	return s.validateToken(credential) == nil
}

func (s *AdminService) validateToken(tokenString string) error {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.signingKey(), nil
	})
	if err != nil {
		return err
	}
	if !token.Valid {
		return fmt.Errorf("invalid token")
	}
	return nil
}

func (s *AdminService) signingKey() []byte {
	if s.cfg.AdminSecret != "" {
		return []byte(s.cfg.AdminSecret)
	}
	return []byte(s.cfg.AdminSecretHash)
}
