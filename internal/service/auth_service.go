package service

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"gstr1/internal/config"
	"gstr1/internal/domain"
)

// Claims represents the JWT claims with the caller's reporting scope.
type Claims struct {
	jwt.RegisteredClaims
	UserID uuid.UUID       `json:"user_id"`
	Role   domain.UserRole `json:"role"`
	GSTINs []string        `json:"gstins,omitempty"`
}

// CanAccessGSTIN reports whether the caller may run reports for gstin.
// Admins may report on any GSTIN.
func (c *Claims) CanAccessGSTIN(gstin string) bool {
	if c.Role == domain.RoleAdmin {
		return true
	}
	for _, g := range c.GSTINs {
		if g == gstin {
			return true
		}
	}
	return false
}

// IssuedToken is a signed access token and its expiry.
type IssuedToken struct {
	AccessToken string    `json:"access_token"`
	ExpiresAt   time.Time `json:"expires_at"`
}

// AuthService defines the authentication contract.
type AuthService interface {
	IssueToken(subject string, role domain.UserRole, gstins []string) (*IssuedToken, error)
	ValidateToken(tokenString string) (*Claims, error)
}

type authService struct {
	cfg config.JWTConfig
}

// NewAuthService creates a new AuthService implementation.
func NewAuthService(cfg config.JWTConfig) AuthService {
	return &authService{cfg: cfg}
}

// IssueToken signs an access token for subject. The subject is parsed as a
// UUID when possible; otherwise a name-based UUID is derived from it so the
// same subject always maps to the same user ID.
func (s *authService) IssueToken(subject string, role domain.UserRole, gstins []string) (*IssuedToken, error) {
	if !domain.ValidRoles[role] {
		return nil, fmt.Errorf("auth.IssueToken: unknown role %q", role)
	}
	userID, err := uuid.Parse(subject)
	if err != nil {
		userID = uuid.NewSHA1(uuid.NameSpaceURL, []byte(subject))
	}

	now := time.Now()
	expiry := now.Add(s.cfg.AccessTokenExpiry)
	claims := &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			Issuer:    s.cfg.Issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiry),
			ID:        uuid.New().String(),
			Audience:  jwt.ClaimStrings{"access"},
		},
		UserID: userID,
		Role:   role,
		GSTINs: gstins,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.cfg.Secret))
	if err != nil {
		return nil, fmt.Errorf("signing access token: %w", err)
	}
	return &IssuedToken{AccessToken: signed, ExpiresAt: expiry}, nil
}

func (s *authService) ValidateToken(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.cfg.Secret), nil
	}, jwt.WithAudience("access"), jwt.WithIssuer(s.cfg.Issuer))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrUnauthorized, err)
	}
	if !token.Valid {
		return nil, domain.ErrUnauthorized
	}
	if !domain.ValidRoles[claims.Role] {
		return nil, domain.ErrUnauthorized
	}
	return claims, nil
}
