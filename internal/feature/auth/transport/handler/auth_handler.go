// Package handler provides the HTTP handlers for the auth feature.
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"cafe_backend/internal/app/middleware"
	"cafe_backend/internal/feature/auth/domain/entity"
	"cafe_backend/internal/feature/auth/transport/http/dto"
	"cafe_backend/internal/feature/auth/usecase"
	"cafe_backend/internal/platform/flash"
	"cafe_backend/internal/platform/forms"
)

// sessionCookieTTL matches the lifetime of the persisted session.
const sessionCookieTTL = 7 * 24 * time.Hour

// AuthUsecase defines the authentication flows the handler drives.
// Following Go convention: interfaces are defined by the consumer (handler), not the provider (usecase).
type AuthUsecase interface {
	// SignUp registers a user and establishes a session.
	SignUp(ctx context.Context, name, email, password string, meta entity.SessionMeta) (*entity.User, *entity.Session, error)
	// Login authenticates a user and establishes a session.
	Login(ctx context.Context, email, password string, meta entity.SessionMeta) (*entity.User, *entity.Session, error)
	// Logout revokes the session.
	Logout(ctx context.Context, sessionID string) error
}

// TokenSigner turns a session id into the signed cookie value.
type TokenSigner interface {
	Sign(sessionID string) (string, error)
}

// AuthHandler handles the sign-up, login and logout pages.
type AuthHandler struct {
	auth   AuthUsecase
	signer TokenSigner
}

// NewAuthHandler creates a new instance of AuthHandler.
func NewAuthHandler(auth AuthUsecase, signer TokenSigner) *AuthHandler {
	return &AuthHandler{auth: auth, signer: signer}
}

// ShowSignUp renders the empty registration form.
func (h *AuthHandler) ShowSignUp(c *gin.Context) {
	c.HTML(http.StatusOK, "sign-up.html", gin.H{
		"Form":   dto.SignUpForm{},
		"Errors": map[string]string{},
		"Flash":  flash.Pop(c),
	})
}

// SignUp handles the registration form submission.
// - invalid form: re-render with field messages
// - email already registered: flash a notice and send to the login page
// - success: create the user, establish a session, redirect home
func (h *AuthHandler) SignUp(c *gin.Context) {
	var form dto.SignUpForm
	if res := forms.Validate(c.ShouldBind(&form)); !res.Valid {
		c.HTML(http.StatusOK, "sign-up.html", gin.H{
			"Form":   form,
			"Errors": res.Errors,
			"Flash":  "",
		})
		return
	}

	user, session, err := h.auth.SignUp(c.Request.Context(), form.Name, form.Email, form.Password, sessionMeta(c))
	if err != nil {
		if errors.Is(err, usecase.ErrEmailAlreadyExists) {
			flash.Set(c, "This email is already registered, try to log in.")
			c.Redirect(http.StatusSeeOther, "/login")
			return
		}
		slog.Error("sign-up failed", "error", err, "email", form.Email, "remote_addr", c.ClientIP())
		h.internalError(c)
		return
	}

	if !h.setSession(c, session.ID) {
		return
	}
	slog.Info("user signed up", "user_id", user.ID, "email", user.Email, "role", user.Role)
	c.Redirect(http.StatusSeeOther, "/")
}

// ShowLogin renders the login form.
func (h *AuthHandler) ShowLogin(c *gin.Context) {
	c.HTML(http.StatusOK, "login.html", gin.H{
		"Form":   dto.LoginForm{},
		"Errors": map[string]string{},
		"Flash":  flash.Pop(c),
	})
}

// Login handles the login form submission.
// Unknown email and wrong password each flash their own notice and
// return to the login page; success establishes a session.
func (h *AuthHandler) Login(c *gin.Context) {
	var form dto.LoginForm
	if res := forms.Validate(c.ShouldBind(&form)); !res.Valid {
		c.HTML(http.StatusOK, "login.html", gin.H{
			"Form":   form,
			"Errors": res.Errors,
			"Flash":  "",
		})
		return
	}

	user, session, err := h.auth.Login(c.Request.Context(), form.Email, form.Password, sessionMeta(c))
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrUserNotFound):
			flash.Set(c, "That email doesn't exist, please try again.")
		case errors.Is(err, usecase.ErrInvalidCredentials):
			flash.Set(c, "Password incorrect, please try again.")
		default:
			slog.Error("login failed", "error", err, "email", form.Email, "remote_addr", c.ClientIP())
			h.internalError(c)
			return
		}
		slog.Warn("login rejected", "email", form.Email, "remote_addr", c.ClientIP())
		c.Redirect(http.StatusSeeOther, "/login")
		return
	}

	if !h.setSession(c, session.ID) {
		return
	}
	slog.Info("user logged in", "user_id", user.ID, "email", user.Email)
	c.Redirect(http.StatusSeeOther, "/")
}

// Logout revokes the current session, clears the cookie and goes home.
// Works unconditionally: an anonymous request just gets the redirect.
func (h *AuthHandler) Logout(c *gin.Context) {
	if sid := middleware.SessionIDFrom(c); sid != "" {
		if err := h.auth.Logout(c.Request.Context(), sid); err != nil {
			slog.Warn("logout: revoke failed", "error", err)
		}
	}
	middleware.ClearSessionCookie(c)
	c.Redirect(http.StatusFound, "/")
}

// setSession signs the session id into the cookie. Returns false after
// rendering an error page when signing fails.
func (h *AuthHandler) setSession(c *gin.Context, sessionID string) bool {
	token, err := h.signer.Sign(sessionID)
	if err != nil {
		slog.Error("session cookie signing failed", "error", err)
		h.internalError(c)
		return false
	}
	middleware.SetSessionCookie(c, token, sessionCookieTTL)
	return true
}

func (h *AuthHandler) internalError(c *gin.Context) {
	c.HTML(http.StatusInternalServerError, "error.html", gin.H{
		"Title":       "Something went wrong",
		"Description": "An unexpected error occurred. Please try again.",
	})
}

func sessionMeta(c *gin.Context) entity.SessionMeta {
	return entity.SessionMeta{
		UserAgent: c.Request.UserAgent(),
		IPAddress: c.ClientIP(),
	}
}
