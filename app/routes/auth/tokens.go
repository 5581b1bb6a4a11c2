package auth

import (
	"errors"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"school-records/app/apperr"
	"school-records/app/config"
	"school-records/app/models"
)

// Identity is the verified result of a session token: who the caller is,
// what role they hold, and which student record (if any) they own.
type Identity struct {
	AccountID string
	Role      models.Role
	StudentID *string
}

type Claims struct {
	Role      models.Role `json:"role"`
	StudentID *string     `json:"student_id,omitempty"`
	jwt.RegisteredClaims
}

// TokenService issues and verifies signed session tokens. Tokens are
// self-contained: verification needs no store lookup, at the documented cost
// of no server-side revocation before expiry.
type TokenService struct {
	secret []byte
	ttl    time.Duration
}

func NewTokenService(secret string, ttl time.Duration) *TokenService {
	return &TokenService{secret: []byte(secret), ttl: ttl}
}

// Issue signs a token for the account. Lifetime is fixed at issuance; a new
// login is the only way to extend a session.
func (s *TokenService) Issue(user *models.User) (string, error) {
	now := time.Now()
	claims := Claims{
		Role:      user.Role,
		StudentID: user.StudentID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
			Issuer:    "school-records",
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// Verify checks the signature first, then expiry, and returns the embedded
// identity. Any tampering or signing-method confusion yields TokenInvalid;
// a stale token yields TokenExpired.
func (s *TokenService) Verify(tokenString string) (*Identity, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return s.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, apperr.ErrTokenExpired
		}
		return nil, apperr.ErrTokenInvalid
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid || claims.Subject == "" || !claims.Role.Valid() {
		return nil, apperr.ErrTokenInvalid
	}

	return &Identity{
		AccountID: claims.Subject,
		Role:      claims.Role,
		StudentID: claims.StudentID,
	}, nil
}

var (
	defaultService *TokenService
	serviceOnce    sync.Once
)

// service returns the process-wide token service, built once from the
// immutable startup configuration.
func service() *TokenService {
	serviceOnce.Do(func() {
		defaultService = NewTokenService(config.AppConfig.JWTSecret, config.AppConfig.TokenTTL)
	})
	return defaultService
}

func GenerateToken(user *models.User) (string, error) {
	return service().Issue(user)
}

func VerifyToken(tokenString string) (*Identity, error) {
	return service().Verify(tokenString)
}
