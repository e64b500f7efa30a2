package http

import (
	"errors"
	"net/http"
	"strconv"

	"compass-backend/internal/domain/application"
	"compass-backend/internal/domain/catalog"
	"compass-backend/internal/domain/user"

	"github.com/labstack/echo/v4"
)

// domainError maps the usecases' failure kinds onto HTTP status codes;
// anything unrecognized is a 500.
func domainError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, user.ErrNotFound),
		errors.Is(err, application.ErrNotFound),
		errors.Is(err, catalog.ErrNotFound):
		return c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
	case errors.Is(err, user.ErrEmailTaken):
		return c.JSON(http.StatusConflict, ErrorResponse{Error: err.Error()})
	case errors.Is(err, user.ErrInvalidCredentials):
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: err.Error()})
	case errors.Is(err, application.ErrInvalidStatus):
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	}
	return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
}

func pathID(c echo.Context, name string) (uint64, error) {
	return strconv.ParseUint(c.Param(name), 10, 64)
}

func queryInt(c echo.Context, name string, def int) int {
	v := c.QueryParam(name)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}
