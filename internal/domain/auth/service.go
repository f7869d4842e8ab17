package auth

import "context"

type AuthService interface {
	Register(ctx context.Context, req RegisterRequest, track SessionTrackingRequest) (TokenResponse, error)
	Login(ctx context.Context, req LoginRequest, track SessionTrackingRequest) (TokenResponse, error)
	LoginWithGoogle(ctx context.Context, email, googleID, name string, track SessionTrackingRequest) (TokenResponse, error)
	RefreshToken(ctx context.Context, req RefreshTokenRequest) (AccessTokenResponse, error)
	Logout(ctx context.Context, refreshToken string) (userID string, err error)
}
