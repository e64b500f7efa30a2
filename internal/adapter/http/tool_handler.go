package http

import (
	"net/http"

	"compass-backend/internal/usecase/tool"

	"github.com/labstack/echo/v4"
)

type ToolHandler struct{ uc *tool.Usecase }

func NewToolHandler(uc *tool.Usecase) *ToolHandler { return &ToolHandler{uc: uc} }

func (h *ToolHandler) List(c echo.Context) error {
	dto, err := h.uc.List(c.Request().Context(), tool.ListInput{
		Category: c.QueryParam("category"),
		Origin:   c.QueryParam("origin"),
		Query:    c.QueryParam("q"),
		Page:     queryInt(c, "page", 0),
		Size:     queryInt(c, "size", 0),
	})
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *ToolHandler) Get(c echo.Context) error {
	toolID, err := pathID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid tool id"})
	}
	dto, err := h.uc.Get(c.Request().Context(), toolID)
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}
