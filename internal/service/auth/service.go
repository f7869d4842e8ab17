package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/bizpulse/bizpulse-backend-go/internal/domain/auth"
	"github.com/bizpulse/bizpulse-backend-go/internal/domain/user"
	"github.com/bizpulse/bizpulse-backend-go/internal/pkg/database"
	"github.com/bizpulse/bizpulse-backend-go/internal/pkg/jwt"
	"github.com/bizpulse/bizpulse-backend-go/internal/repository/postgresql"
	"github.com/jackc/pgx/v5"
	"golang.org/x/crypto/bcrypt"
)

type AuthServiceImpl struct {
	db *database.DB
	user.UserRepository
	jwt.Service
	postgresql.JWTRepository
}

func NewAuthService(db *database.DB, userRepository user.UserRepository, jwtService jwt.Service, jwtRepository postgresql.JWTRepository) auth.AuthService {
	return &AuthServiceImpl{
		db:             db,
		UserRepository: userRepository,
		Service:        jwtService,
		JWTRepository:  jwtRepository,
	}
}

func (a *AuthServiceImpl) hashPassword(password string) (*string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	hashed := string(hash)
	return &hashed, nil
}

// issueTokens generates both tokens and persists the refresh token, all
// inside one transaction. Access tokens carry no business claim at login;
// the client exchanges them after business selection.
func (a *AuthServiceImpl) issueTokens(ctx context.Context, userData user.User, track auth.SessionTrackingRequest) (auth.TokenResponse, error) {
	tokenResponse := auth.TokenResponse{UserID: userData.ID}

	err := postgresql.WithTransaction(ctx, a.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		var err error
		tokenResponse.AccessToken, tokenResponse.AccessTokenExpiresIn, err = a.Service.GenerateAccessToken(userData.ID, userData.Email, nil, "")
		if err != nil {
			return fmt.Errorf("failed to create access token: %w", err)
		}
		tokenResponse.RefreshToken, tokenResponse.RefreshTokenExpiresIn, err = a.Service.GenerateRefreshToken(userData.ID)
		if err != nil {
			return fmt.Errorf("failed to create refresh token: %w", err)
		}

		if err := a.CreateRefreshToken(txCtx, userData.ID, tokenResponse.RefreshToken, tokenResponse.RefreshTokenExpiresIn, track); err != nil {
			return fmt.Errorf("failed to save refresh token to database: %w", err)
		}
		return nil
	})
	if err != nil {
		return auth.TokenResponse{}, err
	}

	return tokenResponse, nil
}

// Register implements auth.AuthService.
func (a *AuthServiceImpl) Register(ctx context.Context, req auth.RegisterRequest, track auth.SessionTrackingRequest) (auth.TokenResponse, error) {
	exists, err := a.UserRepository.ExistsByEmail(ctx, req.Email)
	if err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to check existing email: %w", err)
	}
	if exists {
		return auth.TokenResponse{}, auth.ErrEmailAlreadyExists
	}

	passwordHash, err := a.hashPassword(req.Password)
	if err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to hash password: %w", err)
	}

	created, err := a.UserRepository.Create(ctx, user.User{
		Email:        req.Email,
		Name:         req.Name,
		PasswordHash: passwordHash,
	})
	if err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to create user: %w", err)
	}

	return a.issueTokens(ctx, created, track)
}

// Login implements auth.AuthService.
func (a *AuthServiceImpl) Login(ctx context.Context, req auth.LoginRequest, track auth.SessionTrackingRequest) (auth.TokenResponse, error) {
	userData, err := a.UserRepository.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return auth.TokenResponse{}, auth.ErrInvalidCredentials
		}
		return auth.TokenResponse{}, fmt.Errorf("failed to get user by email: %w", err)
	}

	if userData.PasswordHash == nil {
		return auth.TokenResponse{}, auth.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(*userData.PasswordHash), []byte(req.Password)); err != nil {
		return auth.TokenResponse{}, auth.ErrInvalidCredentials
	}

	return a.issueTokens(ctx, userData, track)
}

// LoginWithGoogle implements auth.AuthService. Creates the account on first
// login, links the Google identity on subsequent password-account logins.
func (a *AuthServiceImpl) LoginWithGoogle(ctx context.Context, email, googleID, name string, track auth.SessionTrackingRequest) (auth.TokenResponse, error) {
	userData, err := a.UserRepository.GetByEmail(ctx, email)
	switch {
	case errors.Is(err, pgx.ErrNoRows):
		provider := "google"
		userData, err = a.UserRepository.Create(ctx, user.User{
			Email:           email,
			Name:            name,
			OAuthProvider:   &provider,
			OAuthProviderID: &googleID,
			EmailVerified:   true,
		})
		if err != nil {
			return auth.TokenResponse{}, fmt.Errorf("failed to create user from google profile: %w", err)
		}
	case err != nil:
		return auth.TokenResponse{}, fmt.Errorf("failed to get user by email: %w", err)
	case userData.OAuthProviderID == nil:
		userData, err = a.UserRepository.LinkGoogleAccount(ctx, googleID, email)
		if err != nil {
			return auth.TokenResponse{}, fmt.Errorf("failed to link google account: %w", err)
		}
	}

	return a.issueTokens(ctx, userData, track)
}

// RefreshToken implements auth.AuthService.
func (a *AuthServiceImpl) RefreshToken(ctx context.Context, req auth.RefreshTokenRequest) (auth.AccessTokenResponse, error) {
	revoked, err := a.IsRefreshTokenRevoked(ctx, req.RefreshToken)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return auth.AccessTokenResponse{}, auth.ErrInvalidToken
		}
		return auth.AccessTokenResponse{}, fmt.Errorf("failed to check refresh token: %w", err)
	}
	if revoked {
		return auth.AccessTokenResponse{}, auth.ErrRefreshTokenRevoked
	}

	userID, err := a.GetRefreshTokenUser(ctx, req.RefreshToken)
	if err != nil {
		return auth.AccessTokenResponse{}, fmt.Errorf("failed to resolve refresh token owner: %w", err)
	}

	userData, err := a.UserRepository.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return auth.AccessTokenResponse{}, auth.ErrUserNotFound
		}
		return auth.AccessTokenResponse{}, fmt.Errorf("failed to get user: %w", err)
	}

	var response auth.AccessTokenResponse
	response.AccessToken, response.AccessTokenExpiresIn, err = a.Service.GenerateAccessToken(userData.ID, userData.Email, nil, "")
	if err != nil {
		return auth.AccessTokenResponse{}, fmt.Errorf("failed to create access token: %w", err)
	}
	return response, nil
}

// Logout implements auth.AuthService. Returns the owning user ID so the
// handler can tear down the user's navigation machine.
func (a *AuthServiceImpl) Logout(ctx context.Context, refreshToken string) (string, error) {
	userID, err := a.GetRefreshTokenUser(ctx, refreshToken)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", auth.ErrInvalidToken
		}
		return "", fmt.Errorf("failed to resolve refresh token owner: %w", err)
	}

	if err := a.RevokeRefreshToken(ctx, refreshToken); err != nil {
		return "", fmt.Errorf("failed to revoke refresh token: %w", err)
	}
	return userID, nil
}
