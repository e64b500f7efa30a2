package http

import (
	"net/http"

	"compass-backend/internal/adapter/middleware"
	"compass-backend/internal/usecase/application"

	"github.com/labstack/echo/v4"
)

// AdminHandler fronts the moderation queue; RequireAdmin guards its
// routes.
type AdminHandler struct{ uc *application.Usecase }

func NewAdminHandler(uc *application.Usecase) *AdminHandler { return &AdminHandler{uc: uc} }

type updateStatusReq struct {
	Status       string `json:"status"        validate:"required,oneof=PENDING APPROVED REJECTED"`
	RejectReason string `json:"reject_reason"`
}

func (h *AdminHandler) ListApplications(c echo.Context) error {
	list, err := h.uc.ListForAdmin(c.Request().Context())
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(http.StatusOK, list)
}

func (h *AdminHandler) UpdateStatus(c echo.Context) error {
	appID, err := pathID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid application id"})
	}

	var req updateStatusReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}

	sess := middleware.CurrentSession(c)
	err = h.uc.UpdateStatus(c.Request().Context(), application.UpdateStatusInput{
		ApplicationID: appID,
		Status:        req.Status,
		RejectReason:  req.RejectReason,
		AdminID:       sess.UserID,
	})
	if err != nil {
		return domainError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
