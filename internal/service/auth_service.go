package service

import (
	"context"
	"time"

	"journal/internal/model"
	appErr "journal/internal/pkg/errors"
	"journal/internal/pkg/jwt"
	"journal/internal/pkg/password"
	"journal/internal/repo"
)

type AuthService struct {
	users      *repo.UserRepo
	jwtSecret  []byte
	jwtTTL     time.Duration
	bcryptCost int
}

func NewAuthService(users *repo.UserRepo, secret []byte, ttl time.Duration, bcryptCost int) *AuthService {
	return &AuthService{users: users, jwtSecret: secret, jwtTTL: ttl, bcryptCost: bcryptCost}
}

func (s *AuthService) Register(ctx context.Context, username, plainPassword string) (*model.User, error) {
	hash, err := password.Hash(plainPassword, s.bcryptCost)
	if err != nil {
		return nil, err
	}
	user, err := s.users.Create(ctx, username, hash)
	if err != nil {
		return nil, err
	}
	return user, nil
}

// Login collapses every failure (unknown username, wrong password) into
// ErrUnauthorized so the response never reveals which part was wrong.
func (s *AuthService) Login(ctx context.Context, username, plainPassword string) (*model.User, string, error) {
	user, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		return nil, "", appErr.ErrUnauthorized
	}
	if err := password.Compare(user.HashedPassword, plainPassword); err != nil {
		return nil, "", appErr.ErrUnauthorized
	}
	token, err := jwt.GenerateToken(user.UserID, user.Username, s.jwtSecret, s.jwtTTL)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}
