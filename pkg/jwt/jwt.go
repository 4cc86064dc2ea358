package jwt

import (
	"errors"
	"time"

	"doctor-scheduler/config"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

type TokenType string

const (
	AccessToken  TokenType = "access"
	RefreshToken TokenType = "refresh"
)

// Claims carried by every token. Role is set on access tokens only,
// refresh tokens identify the account and nothing more.
type Claims struct {
	UserID    uint      `json:"user_id"`
	Role      string    `json:"role,omitempty"`
	TokenType TokenType `json:"token_type"`
	TokenID   string    `json:"token_id"`
	jwt.RegisteredClaims
}

type JWTService struct {
	config config.JWTConfig
}

func NewJWTService(cfg config.JWTConfig) *JWTService {
	return &JWTService{config: cfg}
}

// GenerateAccessToken issues a short-lived access token carrying the
// account id and role.
func (s *JWTService) GenerateAccessToken(userID uint, role string) (string, string, error) {
	return s.sign(userID, role, AccessToken, s.config.AccessExpiry)
}

// GenerateRegisterToken issues the access token returned right after
// registration, which lives longer than a regular access token.
func (s *JWTService) GenerateRegisterToken(userID uint, role string) (string, string, error) {
	return s.sign(userID, role, AccessToken, s.config.RegisterExpiry)
}

// GenerateRefreshToken issues a long-lived refresh token carrying the
// account id only.
func (s *JWTService) GenerateRefreshToken(userID uint) (string, string, error) {
	return s.sign(userID, "", RefreshToken, s.config.RefreshExpiry)
}

func (s *JWTService) sign(userID uint, role string, tokenType TokenType, expiry time.Duration) (string, string, error) {
	tokenID := uuid.New().String()
	claims := Claims{
		UserID:    userID,
		Role:      role,
		TokenType: tokenType,
		TokenID:   tokenID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(expiry)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			NotBefore: jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signedToken, err := token.SignedString([]byte(s.config.Secret))
	if err != nil {
		return "", "", err
	}

	return signedToken, tokenID, nil
}

func (s *JWTService) ValidateToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("invalid signing method")
		}
		return []byte(s.config.Secret), nil
	})

	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token")
	}

	return claims, nil
}

func (s *JWTService) GetAccessExpiry() time.Duration {
	return s.config.AccessExpiry
}

func (s *JWTService) GetRefreshExpiry() time.Duration {
	return s.config.RefreshExpiry
}

func (s *JWTService) GetRegisterExpiry() time.Duration {
	return s.config.RegisterExpiry
}
