package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/careeragentpro/backend/api/http/presenter"
	"github.com/careeragentpro/backend/pkg/job"
	"github.com/careeragentpro/backend/pkg/letter"
	"github.com/careeragentpro/backend/pkg/resume"
)

// LettersHandler serves cover letter and outreach message generation.
type LettersHandler struct {
	svc     letter.Service
	history *job.History
}

func NewLettersHandler(svc letter.Service, history *job.History) *LettersHandler {
	return &LettersHandler{svc: svc, history: history}
}

type coverRequest struct {
	Resume   *resume.Profile `json:"resume"`
	Job      *job.Posting    `json:"job"`
	Template string          `json:"template"` // accepted, letters do not vary by template yet
}

type communicationRequest struct {
	Resume *resume.Profile `json:"resume"`
	Job    *job.Posting    `json:"job"`
	Type   string          `json:"type"`
}

type letterResponse struct {
	Content string        `json:"content"`
	Source  letter.Source `json:"source"`
	Model   string        `json:"model,omitempty"`
}

// Cover writes a cover letter for the resume and posting.
// @Summary Generate a cover letter
// @Description Writes a 4-paragraph letter with the model when configured, falling back to a fixed template.
// @Tags    letters
// @Accept  json
// @Produce json
// @Param   input body coverRequest true "resume profile and job posting"
// @Success 200 {object} letterResponse
// @Failure 400 {object} presenter.ErrorResponse
// @Router  /letters/cover [post]
func (h *LettersHandler) Cover(c *fiber.Ctx) error {
	var req coverRequest
	if err := c.BodyParser(&req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid JSON payload")
	}
	if req.Resume == nil {
		return presenter.Error(c, http.StatusBadRequest, "resume is required")
	}
	posting, ok := postingOr(c, h.history, req.Job)
	if !ok {
		return presenter.Error(c, http.StatusBadRequest, "job is required")
	}

	out := h.svc.Cover(c.Context(), *req.Resume, posting)
	return presenter.JSON(c, http.StatusOK, letterResponse{
		Content: out.Text,
		Source:  out.Source,
		Model:   out.Model,
	})
}

// Communication writes a short outreach message of the given type.
// @Summary Generate an outreach message
// @Tags    letters
// @Accept  json
// @Produce json
// @Param   input body communicationRequest true "resume profile, job posting and message type"
// @Success 200 {object} map[string]string
// @Failure 400 {object} presenter.ErrorResponse
// @Router  /letters/communication [post]
func (h *LettersHandler) Communication(c *fiber.Ctx) error {
	var req communicationRequest
	if err := c.BodyParser(&req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid JSON payload")
	}
	if req.Resume == nil {
		return presenter.Error(c, http.StatusBadRequest, "resume is required")
	}
	switch req.Type {
	case letter.KindEmail, letter.KindLinkedIn, letter.KindFollowUp:
	default:
		return presenter.Error(c, http.StatusBadRequest, "Invalid communication type. Must be: email, linkedin_message, or follow_up")
	}
	posting, ok := postingOr(c, h.history, req.Job)
	if !ok {
		return presenter.Error(c, http.StatusBadRequest, "job is required")
	}

	text := h.svc.Communication(*req.Resume, posting, req.Type)
	return presenter.JSON(c, http.StatusOK, fiber.Map{"content": text})
}
