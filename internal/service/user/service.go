package user

import (
	"context"
	"errors"
	"fmt"

	"github.com/bizpulse/bizpulse-backend-go/internal/domain/user"
	"github.com/jackc/pgx/v5"
)

type UserServiceImpl struct {
	userRepo user.UserRepository
}

func NewUserService(userRepository user.UserRepository) user.UserService {
	return &UserServiceImpl{userRepo: userRepository}
}

// GetProfile implements user.UserService.
func (s *UserServiceImpl) GetProfile(ctx context.Context, id string) (user.User, error) {
	found, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return user.User{}, user.ErrUserNotFound
		}
		return user.User{}, fmt.Errorf("failed to get user: %w", err)
	}
	return found, nil
}

// UpdateProfile implements user.UserService.
func (s *UserServiceImpl) UpdateProfile(ctx context.Context, id string, req user.UpdateProfileRequest) (user.User, error) {
	updated, err := s.userRepo.UpdateProfile(ctx, id, req.Name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return user.User{}, user.ErrUserNotFound
		}
		return user.User{}, fmt.Errorf("failed to update profile: %w", err)
	}
	return updated, nil
}
