package service

import (
	"crypto/sha256"
	"crypto/subtle"
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

const (
	AdminUserID = "admin"
	AdminRole   = "admin"

	tokenIssuer    = "studiofolio"
	maxBcryptInput = 72
)

var (
	ErrUnauthenticated  = errors.New("invalid token")
	ErrMissingToken     = errors.New("missing token")
	ErrInvalidPassword  = errors.New("invalid password")
	ErrAdminSecretUnset = errors.New("admin secret is not configured")
)

// Identity describes the caller behind an accepted credential.
type Identity struct {
	UserID string `json:"user_id"`
	Role   string `json:"role"`
}

// AdminToken is issued by Login.
type AdminToken struct {
	Token     string
	ExpiresAt time.Time
}

// AuthConfig configures the admin gate. Either Password or PasswordHash
// (bcrypt) must be set; SigningKey defaults to whichever is present. A
// plaintext Password is compared byte for byte and has no length limit.
type AuthConfig struct {
	Password     string
	PasswordHash string
	SigningKey   string
	TokenTTL     time.Duration
}

// AuthService guards admin operations with a single shared secret.
type AuthService struct {
	secretDigest []byte
	secretHash   []byte
	signingKey   []byte
	ttl          time.Duration
	now          func() time.Time
}

type adminClaims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// NewAuthService keeps a SHA-256 digest of a plaintext secret, or the bcrypt
// hash when only PasswordHash is configured.
func NewAuthService(cfg AuthConfig) (*AuthService, error) {
	password := cfg.Password
	hash := strings.TrimSpace(cfg.PasswordHash)
	if password == "" && hash == "" {
		return nil, ErrAdminSecretUnset
	}

	svc := &AuthService{ttl: cfg.TokenTTL, now: time.Now}
	if password != "" {
		digest := sha256.Sum256([]byte(password))
		svc.secretDigest = digest[:]
	} else {
		if _, err := bcrypt.Cost([]byte(hash)); err != nil {
			return nil, err
		}
		svc.secretHash = []byte(hash)
	}

	key := cfg.SigningKey
	if key == "" {
		key = password
	}
	if key == "" {
		key = hash
	}
	svc.signingKey = []byte(key)

	if svc.ttl <= 0 {
		svc.ttl = 72 * time.Hour
	}
	return svc, nil
}

// Login checks the password and issues a signed admin token.
func (s *AuthService) Login(password string) (*AdminToken, error) {
	if !s.matchesSecret(password) {
		return nil, ErrInvalidPassword
	}

	issuedAt := s.now()
	expiresAt := issuedAt.Add(s.ttl)
	claims := adminClaims{
		Role: AdminRole,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   AdminUserID,
			Issuer:    tokenIssuer,
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.signingKey)
	if err != nil {
		return nil, err
	}
	return &AdminToken{Token: signed, ExpiresAt: expiresAt}, nil
}

// Authenticate accepts a token issued by Login or the raw shared secret.
func (s *AuthService) Authenticate(token string) (*Identity, error) {
	if strings.TrimSpace(token) == "" {
		return nil, ErrMissingToken
	}

	if s.validToken(token) || s.matchesSecret(token) {
		return &Identity{UserID: AdminUserID, Role: AdminRole}, nil
	}
	return nil, ErrUnauthenticated
}

func (s *AuthService) validToken(token string) bool {
	if strings.Count(token, ".") != 2 {
		return false
	}

	claims := &adminClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		return s.signingKey, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(tokenIssuer),
		jwt.WithSubject(AdminUserID),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil || !parsed.Valid {
		return false
	}
	return claims.Role == AdminRole
}

// matchesSecret compares candidate with the configured secret. bcrypt only
// reads 72 bytes, so longer candidates never match a hash.
func (s *AuthService) matchesSecret(candidate string) bool {
	if candidate == "" {
		return false
	}
	if s.secretDigest != nil {
		digest := sha256.Sum256([]byte(candidate))
		return subtle.ConstantTimeCompare(digest[:], s.secretDigest) == 1
	}
	if len(candidate) > maxBcryptInput {
		return false
	}
	return bcrypt.CompareHashAndPassword(s.secretHash, []byte(candidate)) == nil
}
