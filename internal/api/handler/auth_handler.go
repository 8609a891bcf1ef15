package handler

import (
	"fmt"
	"io"
	"mime/multipart"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/buy01/storefront-gateway/internal/api/metrics"
	"github.com/buy01/storefront-gateway/internal/api/middleware"
	"github.com/buy01/storefront-gateway/internal/core/domain"
	"github.com/buy01/storefront-gateway/internal/core/ports"
	"github.com/buy01/storefront-gateway/internal/core/service"
)

const maxAvatarBytes = 5 << 20

// CookieConfig controls the session cookie the gateway issues.
type CookieConfig struct {
	Name   string
	Secure bool
}

// AuthHandler owns the login, signup, and logout surface.
type AuthHandler struct {
	creds  ports.CredentialExchange
	flow   ports.SignupFlow
	cookie CookieConfig
	log    zerolog.Logger
}

func NewAuthHandler(creds ports.CredentialExchange, flow ports.SignupFlow, cookie CookieConfig, log zerolog.Logger) *AuthHandler {
	return &AuthHandler{creds: creds, flow: flow, cookie: cookie, log: log}
}

// Login authenticates against the remote API and issues a session cookie.
//
// @Summary      Log in
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Credentials"
// @Success      200   {object}  userResponse
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      502   {object}  map[string]string
// @Router       /login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	sid := uuid.NewString()
	sess, err := h.creds.Login(c.Request().Context(), sid, req.Email, req.Password)
	if err != nil {
		metrics.LoginsTotal.WithLabelValues("failure").Inc()
		return err
	}
	metrics.LoginsTotal.WithLabelValues("success").Inc()

	h.setSessionCookie(c, sid)
	return c.JSON(http.StatusOK, userResponse{User: sess.Identity})
}

// Signup runs the signup orchestration: register, auto-login, optional
// best-effort avatar upload.
//
// @Summary      Sign up
// @Tags         auth
// @Accept       multipart/form-data
// @Produce      json
// @Param        firstname         formData  string  true   "First name"
// @Param        lastname          formData  string  true   "Last name"
// @Param        email             formData  string  true   "Email"
// @Param        password          formData  string  true   "Password"
// @Param        confirm_password  formData  string  true   "Password confirmation"
// @Param        role              formData  string  true   "CLIENT or SELLER"
// @Param        avatar            formData  file    false  "Profile image"
// @Success     303
// @Failure     400  {object}  map[string]string
// @Failure     409  {object}  map[string]string
// @Router      /signup [post]
func (h *AuthHandler) Signup(c echo.Context) error {
	var req signupRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	avatar, err := h.readAvatar(c)
	if err != nil {
		return err
	}

	domainReq := domain.SignupRequest{
		Firstname:       req.Firstname,
		Lastname:        req.Lastname,
		Email:           req.Email,
		Password:        req.Password,
		ConfirmPassword: req.ConfirmPassword,
		Role:            domain.Role(req.Role),
		Avatar:          avatar,
	}

	sid := uuid.NewString()
	outcome := h.flow.Run(c.Request().Context(), sid, domainReq)

	metrics.SignupRunsTotal.WithLabelValues(string(outcome.Stage)).Inc()
	if outcome.AvatarAttempted {
		result := "success"
		if outcome.AvatarFailed {
			result = "failure"
		}
		metrics.AvatarUploadsTotal.WithLabelValues(result).Inc()
	}

	switch outcome.Stage {
	case domain.StageComplete:
		// The SPA reloaded the whole application here; the gateway
		// equivalent is a redirect so every view re-renders against the
		// authenticated session.
		h.setSessionCookie(c, sid)
		return c.Redirect(http.StatusSeeOther, "/")
	case domain.StageLoginFailed:
		// Account exists server-side but auto-login failed: hand the user
		// to the login view rather than retrying silently.
		return c.Redirect(http.StatusSeeOther, service.LoginPath)
	default:
		return outcome.Err
	}
}

// Logout clears the session and expires the cookie.
//
// @Summary      Log out
// @Tags         auth
// @Success      303
// @Router       /logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	if sid := middleware.SIDFromContext(c); sid != "" {
		h.creds.Logout(c.Request().Context(), sid)
	}
	h.expireSessionCookie(c)
	return c.Redirect(http.StatusSeeOther, service.LoginPath)
}

// Me returns the current user from the session store. No remote call: the
// session is the single source for "who am I" on the client side.
//
// @Summary      Current user
// @Tags         auth
// @Produce      json
// @Success      200  {object}  userResponse
// @Failure      401  {object}  map[string]string
// @Router       /me [get]
func (h *AuthHandler) Me(c echo.Context) error {
	sess := middleware.SessionFromContext(c)
	if !sess.Authenticated() {
		return echo.NewHTTPError(http.StatusUnauthorized, "not authenticated")
	}
	return c.JSON(http.StatusOK, userResponse{User: sess.Identity})
}

// readAvatar extracts the optional avatar file from the multipart form.
func (h *AuthHandler) readAvatar(c echo.Context) (*domain.Avatar, error) {
	fileHeader, err := c.FormFile("avatar")
	if err != nil {
		return nil, nil // no avatar selected
	}
	if fileHeader.Size > maxAvatarBytes {
		return nil, fmt.Errorf("%w: avatar exceeds %d bytes", domain.ErrValidationRejected, maxAvatarBytes)
	}

	return readAvatarFile(fileHeader)
}

func readAvatarFile(fh *multipart.FileHeader) (*domain.Avatar, error) {
	file, err := fh.Open()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrValidationRejected, err)
	}
	defer func() { _ = file.Close() }()

	data, err := io.ReadAll(io.LimitReader(file, maxAvatarBytes+1))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrValidationRejected, err)
	}

	return &domain.Avatar{
		Filename:    fh.Filename,
		ContentType: fh.Header.Get("Content-Type"),
		Data:        data,
	}, nil
}

func (h *AuthHandler) setSessionCookie(c echo.Context, sid string) {
	c.SetCookie(&http.Cookie{
		Name:     h.cookie.Name,
		Value:    sid,
		Path:     "/",
		HttpOnly: true,
		Secure:   h.cookie.Secure,
		SameSite: http.SameSiteLaxMode,
	})
}

func (h *AuthHandler) expireSessionCookie(c echo.Context) {
	c.SetCookie(&http.Cookie{
		Name:     h.cookie.Name,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.cookie.Secure,
		SameSite: http.SameSiteLaxMode,
	})
}
