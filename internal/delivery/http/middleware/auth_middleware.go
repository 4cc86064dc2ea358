package middleware

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"doctor-scheduler/internal/domain/entity"
	"doctor-scheduler/internal/domain/repository"
	"doctor-scheduler/pkg/jwt"
	"doctor-scheduler/pkg/response"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type contextKey string

const (
	UserKey    contextKey = "user"
	TokenIDKey contextKey = "token_id"
)

type AuthMiddleware struct {
	jwtService  *jwt.JWTService
	redisClient *redis.Client
	db          *gorm.DB
	userRepo    repository.UserRepository
}

func NewAuthMiddleware(jwtService *jwt.JWTService, redisClient *redis.Client, db *gorm.DB, userRepo repository.UserRepository) *AuthMiddleware {
	return &AuthMiddleware{
		jwtService:  jwtService,
		redisClient: redisClient,
		db:          db,
		userRepo:    userRepo,
	}
}

// Authenticate verifies the bearer token and resolves the account it
// names. The loaded user is attached to the request context so handlers
// can authorize against the current role, not a stale claim.
func (m *AuthMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			response.Unauthorized(w, "access denied")
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			response.Unauthorized(w, "access denied")
			return
		}

		claims, err := m.jwtService.ValidateToken(parts[1])
		if err != nil {
			response.Unauthorized(w, "invalid token")
			return
		}

		if claims.TokenType != jwt.AccessToken {
			response.Unauthorized(w, "invalid token")
			return
		}

		// Revoked tokens disappear from Redis before they expire.
		tokenKey := fmt.Sprintf("access_token:%d:%s", claims.UserID, claims.TokenID)
		exists, err := m.redisClient.Exists(r.Context(), tokenKey).Result()
		if err != nil {
			response.InternalServerError(w, "failed to validate token")
			return
		}
		if exists == 0 {
			response.Unauthorized(w, "invalid token")
			return
		}

		user, err := m.userRepo.FindByID(m.db.WithContext(r.Context()), claims.UserID)
		if err != nil {
			response.InternalServerError(w, "failed to load account")
			return
		}
		if user == nil {
			response.Unauthorized(w, "invalid token")
			return
		}

		ctx := context.WithValue(r.Context(), UserKey, user)
		ctx = context.WithValue(ctx, TokenIDKey, claims.TokenID)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetUserFromContext extracts the authenticated user from context.
func GetUserFromContext(ctx context.Context) (*entity.User, bool) {
	user, ok := ctx.Value(UserKey).(*entity.User)
	return user, ok
}

// GetTokenIDFromContext extracts the access token ID from context.
func GetTokenIDFromContext(ctx context.Context) (string, bool) {
	tokenID, ok := ctx.Value(TokenIDKey).(string)
	return tokenID, ok
}
