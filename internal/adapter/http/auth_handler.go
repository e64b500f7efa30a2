package http

import (
	"net/http"

	"compass-backend/internal/adapter/middleware"
	"compass-backend/internal/usecase/auth"

	"github.com/labstack/echo/v4"
)

type AuthHandler struct {
	uc       *auth.Usecase
	sessions *middleware.Store
}

func NewAuthHandler(uc *auth.Usecase, sessions *middleware.Store) *AuthHandler {
	return &AuthHandler{uc: uc, sessions: sessions}
}

type signupReq struct {
	Name     string `json:"name"     validate:"required,max=50"`
	Email    string `json:"email"    validate:"required,email,max=100"`
	Password string `json:"password" validate:"required,min=8,max=72"`
}

type loginReq struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

func (h *AuthHandler) Signup(c echo.Context) error {
	var req signupReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}

	dto, err := h.uc.Signup(c.Request().Context(), auth.SignupInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return domainError(c, err)
	}
	if err := h.startSession(c, dto); err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, dto)
}

func (h *AuthHandler) Login(c echo.Context) error {
	var req loginReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}

	dto, err := h.uc.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return domainError(c, err)
	}
	if err := h.startSession(c, dto); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *AuthHandler) Logout(c echo.Context) error {
	if cookie, err := c.Cookie(middleware.CookieName); err == nil && cookie.Value != "" {
		_ = h.sessions.Destroy(c.Request().Context(), cookie.Value)
	}
	c.SetCookie(middleware.Cookie("", 0))
	return c.NoContent(http.StatusNoContent)
}

// Me returns the session user, or null when anonymous.
func (h *AuthHandler) Me(c echo.Context) error {
	sess := middleware.CurrentSession(c)
	if sess == nil {
		return c.JSON(http.StatusOK, nil)
	}
	return c.JSON(http.StatusOK, auth.UserDTO{
		ID:    sess.UserID,
		Name:  sess.Name,
		Email: sess.Email,
		Role:  sess.Role,
	})
}

func (h *AuthHandler) startSession(c echo.Context, dto *auth.UserDTO) error {
	token, err := h.sessions.Issue(c.Request().Context(), middleware.Session{
		UserID: dto.ID,
		Name:   dto.Name,
		Email:  dto.Email,
		Role:   dto.Role,
	})
	if err != nil {
		return c.JSON(http.StatusServiceUnavailable, ErrorResponse{Error: "session store unavailable"})
	}
	c.SetCookie(middleware.Cookie(token, h.sessions.TTL()))
	return nil
}
