package user

import "context"

type UserService interface {
	GetProfile(ctx context.Context, id string) (User, error)
	UpdateProfile(ctx context.Context, id string, req UpdateProfileRequest) (User, error)
}
