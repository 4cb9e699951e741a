package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/careeragentpro/backend/api/http/presenter"
	"github.com/careeragentpro/backend/pkg/export"
	"github.com/careeragentpro/backend/pkg/resume"
)

// ExportHandler renders a resume profile as a downloadable document.
type ExportHandler struct{}

func NewExportHandler() *ExportHandler {
	return &ExportHandler{}
}

type exportRequest struct {
	Resume *resume.Profile `json:"resume"`
}

// HTML renders a print-ready HTML page.
// @Summary Export resume as HTML
// @Tags    export
// @Accept  json
// @Produce html
// @Param   input body exportRequest true "resume profile"
// @Success 200 {string} string "HTML document"
// @Failure 400 {object} presenter.ErrorResponse
// @Router  /export/html [post]
func (h *ExportHandler) HTML(c *fiber.Ctx) error {
	var req exportRequest
	if err := c.BodyParser(&req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid JSON payload")
	}
	if req.Resume == nil {
		return presenter.Error(c, http.StatusBadRequest, "resume is required")
	}
	doc, err := export.HTML(*req.Resume)
	if err != nil {
		return exportError(c, err, "HTML")
	}
	c.Type("html", "utf-8")
	return c.Status(http.StatusOK).SendString(doc)
}

// RTF renders an RTF document and offers it as a download.
// @Summary Export resume as RTF
// @Tags    export
// @Accept  json
// @Produce plain
// @Param   input body exportRequest true "resume profile"
// @Success 200 {string} string "RTF document"
// @Failure 400 {object} presenter.ErrorResponse
// @Router  /export/rtf [post]
func (h *ExportHandler) RTF(c *fiber.Ctx) error {
	var req exportRequest
	if err := c.BodyParser(&req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid JSON payload")
	}
	if req.Resume == nil {
		return presenter.Error(c, http.StatusBadRequest, "resume is required")
	}
	doc, err := export.RTF(*req.Resume)
	if err != nil {
		return exportError(c, err, "RTF")
	}
	filename := strings.ReplaceAll(req.Resume.Name, " ", "_") + "_resume.rtf"
	c.Set(fiber.HeaderContentType, "application/rtf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Status(http.StatusOK).SendString(doc)
}

// LaTeX renders a moderncv LaTeX source file.
// @Summary Export resume as LaTeX
// @Tags    export
// @Accept  json
// @Produce plain
// @Param   input body exportRequest true "resume profile"
// @Success 200 {string} string "LaTeX source"
// @Failure 400 {object} presenter.ErrorResponse
// @Router  /export/latex [post]
func (h *ExportHandler) LaTeX(c *fiber.Ctx) error {
	var req exportRequest
	if err := c.BodyParser(&req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid JSON payload")
	}
	if req.Resume == nil {
		return presenter.Error(c, http.StatusBadRequest, "resume is required")
	}
	doc, err := export.LaTeX(*req.Resume)
	if err != nil {
		return exportError(c, err, "LaTeX")
	}
	c.Type("txt", "utf-8")
	return c.Status(http.StatusOK).SendString(doc)
}

func exportError(c *fiber.Ctx, err error, format string) error {
	if errors.Is(err, export.ErrNameRequired) {
		return presenter.Error(c, http.StatusBadRequest, "resume name is required")
	}
	return presenter.Error(c, http.StatusInternalServerError, "Failed to export resume as "+format)
}
