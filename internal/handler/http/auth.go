package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/jwtauth/v5"

	"github.com/pontoseguro/ponto-backend-go/internal/domain/auth"
	"github.com/pontoseguro/ponto-backend-go/internal/handler/http/response"
	"github.com/pontoseguro/ponto-backend-go/internal/pkg/jwt"
)

const refreshTokenCookieName = "refresh_token"

type AuthHandler interface {
	Login(w http.ResponseWriter, r *http.Request)
	RefreshToken(w http.ResponseWriter, r *http.Request)
	Logout(w http.ResponseWriter, r *http.Request)
	Me(w http.ResponseWriter, r *http.Request)
}

type AuthHandlerImpl struct {
	jwtService  jwt.Service
	authService auth.AuthService
}

func NewAuthHandler(jwtService jwt.Service, authService auth.AuthService) AuthHandler {
	return &AuthHandlerImpl{
		jwtService:  jwtService,
		authService: authService,
	}
}

// refreshTokenFromRequest prefers the JSON body and falls back to the cookie.
func refreshTokenFromRequest(r *http.Request, body auth.RefreshTokenRequest) string {
	if body.RefreshToken != "" {
		return body.RefreshToken
	}
	if cookie, err := r.Cookie(refreshTokenCookieName); err == nil {
		return cookie.Value
	}
	return ""
}

// Login implements AuthHandler.
func (a *AuthHandlerImpl) Login(w http.ResponseWriter, r *http.Request) {
	var loginReq auth.LoginRequest
	if !decodeJSON(w, r, &loginReq, "Login") {
		return
	}

	sessionTrackReq := auth.SessionTrackingRequest{
		IPAddress: r.RemoteAddr,
		UserAgent: r.UserAgent(),
	}
	tokenResponse, err := a.authService.Login(r.Context(), loginReq, sessionTrackReq)
	if err != nil {
		slog.Warn("Login failed", "error", err)
		response.HandleError(w, err)
		return
	}

	http.SetCookie(w, a.jwtService.RefreshTokenCookie(tokenResponse.RefreshToken, tokenResponse.RefreshTokenExpiresIn))
	slog.Info("User logged in", "user_id", tokenResponse.User.ID, "role", tokenResponse.User.Role)
	response.SuccessWithMessage(w, "Logged in successfully", tokenResponse)
}

// RefreshToken implements AuthHandler.
func (a *AuthHandlerImpl) RefreshToken(w http.ResponseWriter, r *http.Request) {
	var req auth.RefreshTokenRequest
	if r.ContentLength != 0 && !decodeJSON(w, r, &req, "RefreshToken") {
		return
	}
	req.RefreshToken = refreshTokenFromRequest(r, req)

	resp, err := a.authService.RefreshToken(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, resp)
}

// Logout implements AuthHandler. The refresh token is revoked in the store
// and a valid bearer access token, if sent, is blocked until it expires.
func (a *AuthHandlerImpl) Logout(w http.ResponseWriter, r *http.Request) {
	var req auth.RefreshTokenRequest
	if r.ContentLength != 0 && !decodeJSON(w, r, &req, "Logout") {
		return
	}

	if err := a.authService.Logout(r.Context(), refreshTokenFromRequest(r, req)); err != nil {
		response.HandleError(w, err)
		return
	}

	if raw := jwtauth.TokenFromHeader(r); raw != "" {
		if token, err := jwtauth.VerifyToken(a.jwtService.JWTAuth(), raw); err == nil {
			a.jwtService.RevokeToken(raw, token.Expiration())
		}
	}

	expired := a.jwtService.RefreshTokenCookie("", 0)
	expired.Expires = time.Unix(0, 0)
	expired.MaxAge = -1
	http.SetCookie(w, expired)

	response.SuccessWithMessage(w, "Logged out successfully", nil)
}

// Me implements AuthHandler.
func (a *AuthHandlerImpl) Me(w http.ResponseWriter, r *http.Request) {
	p, ok := principal(w, r)
	if !ok {
		return
	}

	me, err := a.authService.Me(r.Context(), p)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, me)
}
