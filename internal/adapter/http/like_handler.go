package http

import (
	"net/http"

	"compass-backend/internal/adapter/middleware"
	"compass-backend/internal/usecase/like"

	"github.com/labstack/echo/v4"
)

type LikeHandler struct{ uc *like.Usecase }

func NewLikeHandler(uc *like.Usecase) *LikeHandler { return &LikeHandler{uc: uc} }

func (h *LikeHandler) Like(c echo.Context) error {
	toolID, err := pathID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid tool id"})
	}
	sess := middleware.CurrentSession(c)
	dto, err := h.uc.Like(c.Request().Context(), sess.UserID, toolID)
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *LikeHandler) Unlike(c echo.Context) error {
	toolID, err := pathID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid tool id"})
	}
	sess := middleware.CurrentSession(c)
	dto, err := h.uc.Unlike(c.Request().Context(), sess.UserID, toolID)
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

// Status works for anonymous callers too: liked is always false without
// a session.
func (h *LikeHandler) Status(c echo.Context) error {
	toolID, err := pathID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid tool id"})
	}
	var userID *uint64
	if sess := middleware.CurrentSession(c); sess != nil {
		userID = &sess.UserID
	}
	dto, err := h.uc.Status(c.Request().Context(), userID, toolID)
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *LikeHandler) MyLikes(c echo.Context) error {
	sess := middleware.CurrentSession(c)
	list, err := h.uc.ListLiked(c.Request().Context(), sess.UserID)
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(http.StatusOK, list)
}
