package user

import "context"

type UserRepository interface {
	Create(ctx context.Context, newUser User) (User, error)
	GetByID(ctx context.Context, id string) (User, error)
	GetByEmail(ctx context.Context, email string) (User, error)
	UpdateProfile(ctx context.Context, id string, name string) (User, error)
	LinkGoogleAccount(ctx context.Context, googleID string, email string) (User, error)
	LinkPasswordAccount(ctx context.Context, id string, passwordHash string) (User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
}
