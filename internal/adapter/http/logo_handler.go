package http

import (
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// LogoHandler stores uploaded logo images on disk; only the public
// "/logos/<name>" path ends up in the database.
type LogoHandler struct{ dir string }

func NewLogoHandler(dir string) *LogoHandler { return &LogoHandler{dir: dir} }

type logoUploadResp struct {
	URL string `json:"url"`
}

func (h *LogoHandler) Upload(c echo.Context) error {
	fh, err := c.FormFile("file")
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "missing file"})
	}
	if fh.Size == 0 {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "empty file"})
	}

	ext := strings.ToLower(filepath.Ext(fh.Filename))
	if ext == "" {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "file has no extension"})
	}

	if err := os.MkdirAll(h.dir, 0o755); err != nil {
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "cannot store file"})
	}

	name := uuid.NewString() + ext
	src, err := fh.Open()
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "unreadable file"})
	}
	defer src.Close()

	dst, err := os.Create(filepath.Join(h.dir, name))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "cannot store file"})
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "cannot store file"})
	}

	return c.JSON(http.StatusCreated, logoUploadResp{URL: "/logos/" + name})
}
