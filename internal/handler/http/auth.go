package http

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/bizpulse/bizpulse-backend-go/internal/domain/auth"
	"github.com/bizpulse/bizpulse-backend-go/internal/handler/http/response"
	"github.com/bizpulse/bizpulse-backend-go/internal/pkg/jwt"
	"github.com/bizpulse/bizpulse-backend-go/internal/pkg/oauth"
	"github.com/bizpulse/bizpulse-backend-go/internal/service/navigation"
)

type AuthHandler interface {
	Register(w http.ResponseWriter, r *http.Request)
	Login(w http.ResponseWriter, r *http.Request)
	LoginWithGoogle(w http.ResponseWriter, r *http.Request)
	OAuthCallbackGoogle(w http.ResponseWriter, r *http.Request)
	RefreshToken(w http.ResponseWriter, r *http.Request)
	Logout(w http.ResponseWriter, r *http.Request)
}

type AuthHandlerImpl struct {
	jwtService    jwt.Service
	authService   auth.AuthService
	googleService oauth.GoogleService
	registry      *navigation.Registry
	frontendURL   string
}

func NewAuthHandler(jwtService jwt.Service, authService auth.AuthService, googleService oauth.GoogleService, registry *navigation.Registry, frontendURL string) AuthHandler {
	return &AuthHandlerImpl{
		jwtService:    jwtService,
		authService:   authService,
		googleService: googleService,
		registry:      registry,
		frontendURL:   frontendURL,
	}
}

func sessionTracking(r *http.Request) auth.SessionTrackingRequest {
	return auth.SessionTrackingRequest{
		UserAgent: r.UserAgent(),
		IPAddress: r.RemoteAddr,
	}
}

// startNavigation replaces any machine left from a previous session. The
// login already succeeded, so a resolution failure only logs; the machine
// itself has landed on a retryable error state.
func (a *AuthHandlerImpl) startNavigation(r *http.Request, userID string) {
	if _, err := a.registry.OnLogin(r.Context(), userID); err != nil {
		slog.Warn("Navigation start after login failed", "error", err)
	}
}

// Register implements AuthHandler.
func (a *AuthHandlerImpl) Register(w http.ResponseWriter, r *http.Request) {
	var registerReq auth.RegisterRequest

	if err := json.NewDecoder(r.Body).Decode(&registerReq); err != nil {
		slog.Error("Register decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := registerReq.Validate(); err != nil {
		slog.Error("Register validate error", "error", err)
		response.HandleError(w, err)
		return
	}

	tokenResponse, err := a.authService.Register(r.Context(), registerReq, sessionTracking(r))
	if err != nil {
		slog.Error("Register service error", "error", err)
		response.HandleError(w, err)
		return
	}

	http.SetCookie(w, a.jwtService.RefreshTokenCookie(tokenResponse.RefreshToken, tokenResponse.RefreshTokenExpiresIn))
	a.startNavigation(r, tokenResponse.UserID)

	slog.Info("User registered successfully")
	response.Created(w, "User registered successfully", tokenResponse)
}

// Login implements AuthHandler.
func (a *AuthHandlerImpl) Login(w http.ResponseWriter, r *http.Request) {
	var loginReq auth.LoginRequest

	if err := json.NewDecoder(r.Body).Decode(&loginReq); err != nil {
		slog.Error("Login decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := loginReq.Validate(); err != nil {
		slog.Error("Login validate error", "error", err)
		response.HandleError(w, err)
		return
	}

	tokenResponse, err := a.authService.Login(r.Context(), loginReq, sessionTracking(r))
	if err != nil {
		slog.Error("Login service error", "error", err)
		response.HandleError(w, err)
		return
	}

	http.SetCookie(w, a.jwtService.RefreshTokenCookie(tokenResponse.RefreshToken, tokenResponse.RefreshTokenExpiresIn))
	a.startNavigation(r, tokenResponse.UserID)

	slog.Info("User logged in successfully")
	response.SuccessWithMessage(w, "User logged in successfully", tokenResponse)
}

// LoginWithGoogle implements AuthHandler. Redirects the client to Google's
// consent screen.
func (a *AuthHandlerImpl) LoginWithGoogle(w http.ResponseWriter, r *http.Request) {
	state := a.googleService.GenerateState(r.UserAgent())
	if state == "" {
		response.InternalServerError(w, "Failed to start OAuth flow")
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     "oauth_state",
		Value:    state,
		Path:     "/api/v1/auth",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	http.Redirect(w, r, a.googleService.RedirectURL(state), http.StatusTemporaryRedirect)
}

// OAuthCallbackGoogle implements AuthHandler.
func (a *AuthHandlerImpl) OAuthCallbackGoogle(w http.ResponseWriter, r *http.Request) {
	stateCookie, err := r.Cookie("oauth_state")
	if err != nil || stateCookie.Value != r.URL.Query().Get("state") {
		slog.Error("OAuthCallbackGoogle state mismatch")
		response.HandleError(w, auth.ErrOAuthStateMismatch)
		return
	}

	oauthToken, err := a.googleService.VerifyToken(r.Context(), r.URL.Query().Get("code"))
	if err != nil {
		slog.Error("OAuthCallbackGoogle token exchange error", "error", err)
		response.HandleError(w, auth.ErrInvalidToken)
		return
	}

	info, err := a.googleService.VerifyUser(r.Context(), oauthToken)
	if err != nil {
		slog.Error("OAuthCallbackGoogle user info error", "error", err)
		response.HandleError(w, auth.ErrInvalidToken)
		return
	}

	tokenResponse, err := a.authService.LoginWithGoogle(r.Context(), info.Email, info.GoogleID, info.Name, sessionTracking(r))
	if err != nil {
		slog.Error("OAuthCallbackGoogle service error", "error", err)
		response.HandleError(w, err)
		return
	}

	http.SetCookie(w, a.jwtService.RefreshTokenCookie(tokenResponse.RefreshToken, tokenResponse.RefreshTokenExpiresIn))
	a.startNavigation(r, tokenResponse.UserID)

	redirect := fmt.Sprintf("%s/oauth/done?access_token=%s", a.frontendURL, url.QueryEscape(tokenResponse.AccessToken))
	http.Redirect(w, r, redirect, http.StatusTemporaryRedirect)
}

// RefreshToken implements AuthHandler. The refresh token comes from the
// HttpOnly cookie; the request body is a fallback for mobile clients.
func (a *AuthHandlerImpl) RefreshToken(w http.ResponseWriter, r *http.Request) {
	refreshReq := auth.RefreshTokenRequest{}
	if cookie, err := r.Cookie("refresh_token"); err == nil {
		refreshReq.RefreshToken = cookie.Value
	} else {
		if err := json.NewDecoder(r.Body).Decode(&refreshReq); err != nil {
			response.BadRequest(w, "Invalid request format", nil)
			return
		}
	}

	if err := refreshReq.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	accessTokenResponse, err := a.authService.RefreshToken(r.Context(), refreshReq)
	if err != nil {
		slog.Error("RefreshToken service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, accessTokenResponse)
}

// Logout implements AuthHandler. Revokes the refresh token and tears down the
// user's navigation machine so the next login starts clean.
func (a *AuthHandlerImpl) Logout(w http.ResponseWriter, r *http.Request) {
	refreshReq := auth.RefreshTokenRequest{}
	if cookie, err := r.Cookie("refresh_token"); err == nil {
		refreshReq.RefreshToken = cookie.Value
	} else {
		if err := json.NewDecoder(r.Body).Decode(&refreshReq); err != nil {
			response.BadRequest(w, "Invalid request format", nil)
			return
		}
	}

	if err := refreshReq.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	userID, err := a.authService.Logout(r.Context(), refreshReq.RefreshToken)
	if err != nil {
		slog.Error("Logout service error", "error", err)
		response.HandleError(w, err)
		return
	}

	a.registry.OnLogout(userID)

	expired := a.jwtService.RefreshTokenCookie("", 0)
	expired.MaxAge = -1
	http.SetCookie(w, expired)

	slog.Info("User logged out successfully")
	response.SuccessWithMessage(w, "User logged out successfully", nil)
}
