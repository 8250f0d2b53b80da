package jwt

import (
	"time"

	"github.com/tuiter/tuiter/internal/domain/entity"
	"github.com/tuiter/tuiter/internal/usecase"
)

// JWTServiceAdapter adapts JWTManager to the usecase.JWTService interface.
type JWTServiceAdapter struct {
	mgr *JWTManager
}

// NewJWTService creates a new usecase.JWTService from JWTManager
func NewJWTService(mgr *JWTManager) usecase.JWTService {
	return &JWTServiceAdapter{mgr: mgr}
}

// GenerateAccessToken issues an access token for a user.
func (a *JWTServiceAdapter) GenerateAccessToken(user *entity.User) (string, string, error) {
	return a.mgr.GenerateAccessToken(user.ID, user.Username)
}

// ParseAccessToken validates an access token and returns Claims.
func (a *JWTServiceAdapter) ParseAccessToken(tokenStr string) (*entity.Claims, error) {
	c, err := a.mgr.VerifyToken(tokenStr)
	if err != nil {
		return nil, err
	}
	return &entity.Claims{
		UserID:           c.Subject,
		Username:         c.Username,
		RegisteredClaims: c.RegisteredClaims,
	}, nil
}

func (a *JWTServiceAdapter) AccessTokenTTL() time.Duration {
	return a.mgr.TTL()
}
