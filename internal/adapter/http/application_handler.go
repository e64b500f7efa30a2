package http

import (
	"net/http"

	"compass-backend/internal/adapter/middleware"
	"compass-backend/internal/usecase/application"

	"github.com/labstack/echo/v4"
)

type ApplicationHandler struct{ uc *application.Usecase }

func NewApplicationHandler(uc *application.Usecase) *ApplicationHandler {
	return &ApplicationHandler{uc: uc}
}

type createApplicationReq struct {
	Name        string   `json:"name"       validate:"required,max=120"`
	SubTitle    string   `json:"sub_title"  validate:"max=200"`
	Categories  []string `json:"categories"`
	Origin      string   `json:"origin"     validate:"max=30"`
	URL         string   `json:"url"        validate:"max=300"`
	Logo        string   `json:"logo"       validate:"max=300"`
	Description string   `json:"description"`
}

type createApplicationResp struct {
	ApplicationID uint64 `json:"application_id"`
}

// Create submits a new-tool application for the logged-in user.
func (h *ApplicationHandler) Create(c echo.Context) error {
	sess := middleware.CurrentSession(c)

	var req createApplicationReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}

	appID, err := h.uc.Submit(c.Request().Context(), sess.UserID, application.SubmitInput{
		Name:        req.Name,
		SubTitle:    req.SubTitle,
		Categories:  req.Categories,
		Origin:      req.Origin,
		URL:         req.URL,
		Logo:        req.Logo,
		Description: req.Description,
	})
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(http.StatusCreated, createApplicationResp{ApplicationID: appID})
}

// My lists the caller's own applications.
func (h *ApplicationHandler) My(c echo.Context) error {
	sess := middleware.CurrentSession(c)
	list, err := h.uc.ListForUser(c.Request().Context(), sess.UserID)
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(http.StatusOK, list)
}
