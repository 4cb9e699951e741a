package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/careeragentpro/backend/api/http/presenter"
	"github.com/careeragentpro/backend/pkg/fit"
	"github.com/careeragentpro/backend/pkg/job"
	"github.com/careeragentpro/backend/pkg/resume"
)

// JobsHandler serves job posting extraction and analysis.
type JobsHandler struct {
	svc     job.Service
	history *job.History
}

func NewJobsHandler(svc job.Service, history *job.History) *JobsHandler {
	return &JobsHandler{svc: svc, history: history}
}

type extractJobRequest struct {
	URL string `json:"url"`
}

type analyzeJobRequest struct {
	Content string `json:"content"`
}

// Extract downloads a job posting and returns its structured form.
// @Summary Extract job posting from URL
// @Description Downloads the page, strips it to text and extracts structured fields. Falls back to a placeholder posting when the page cannot be fetched.
// @Tags    jobs
// @Accept  json
// @Produce json
// @Param   input body extractJobRequest true "posting URL"
// @Success 200 {object} job.Posting
// @Failure 400 {object} presenter.ErrorResponse
// @Router  /jobs/extract [post]
func (h *JobsHandler) Extract(c *fiber.Ctx) error {
	var req extractJobRequest
	if err := c.BodyParser(&req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid JSON payload")
	}
	if strings.TrimSpace(req.URL) == "" {
		return presenter.Error(c, http.StatusBadRequest, "URL is required")
	}

	posting, err := h.svc.ExtractFromURL(c.Context(), req.URL)
	if err != nil {
		if errors.Is(err, job.ErrInvalidURL) {
			return presenter.Error(c, http.StatusBadRequest, "Invalid URL format")
		}
		return presenter.Error(c, http.StatusInternalServerError, "Failed to extract job description from URL")
	}
	h.remember(c, posting)
	return presenter.JSON(c, http.StatusOK, posting)
}

// Analyze extracts structured fields from pasted posting text.
// @Summary Analyze pasted job posting text
// @Tags    jobs
// @Accept  json
// @Produce json
// @Param   input body analyzeJobRequest true "posting text"
// @Success 200 {object} job.Posting
// @Failure 400 {object} presenter.ErrorResponse
// @Router  /jobs/analyze [post]
func (h *JobsHandler) Analyze(c *fiber.Ctx) error {
	var req analyzeJobRequest
	if err := c.BodyParser(&req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid JSON payload")
	}
	if strings.TrimSpace(req.Content) == "" {
		return presenter.Error(c, http.StatusBadRequest, "Job content is required")
	}

	posting, err := h.svc.AnalyzeText(c.Context(), req.Content)
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, "Job content is required")
	}
	h.remember(c, posting)
	return presenter.JSON(c, http.StatusOK, posting)
}

type assessFitRequest struct {
	JobDescription string          `json:"job_description"`
	Resume         *resume.Profile `json:"resume"`
}

// AssessFit scores a candidate profile against a job description.
// @Summary Assess candidate fit for a job description
// @Description Scores the profile across weighted competency areas and returns strengths, gaps, language advice for the company stage and a bullet distribution plan.
// @Tags    jobs
// @Accept  json
// @Produce json
// @Param   input body assessFitRequest true "job description and candidate profile"
// @Success 200 {object} fit.Assessment
// @Failure 400 {object} presenter.ErrorResponse
// @Router  /jobs/assess-fit [post]
func (h *JobsHandler) AssessFit(c *fiber.Ctx) error {
	var req assessFitRequest
	if err := c.BodyParser(&req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid JSON payload")
	}
	if strings.TrimSpace(req.JobDescription) == "" {
		return presenter.Error(c, http.StatusBadRequest, "job_description is required")
	}
	profile := resume.Profile{}
	if req.Resume != nil {
		profile = *req.Resume
	}
	return presenter.JSON(c, http.StatusOK, fit.Assess(req.JobDescription, profile))
}

// Recent lists the caller's analyzed postings, oldest first.
// @Summary Analyzed postings history
// @Tags    jobs
// @Produce json
// @Security BearerAuth
// @Success 200 {array} job.Posting
// @Failure 401 {object} presenter.ErrorResponse
// @Router  /jobs/history [get]
func (h *JobsHandler) Recent(c *fiber.Ctx) error {
	uid, err := currentUserID(c)
	if err != nil {
		return presenter.Error(c, http.StatusUnauthorized, "could not identify user")
	}
	return presenter.JSON(c, http.StatusOK, h.history.Recent(c.Context(), uid.String()))
}

// remember records the posting for the caller when the request carried
// a valid token. Extraction itself stays public.
func (h *JobsHandler) remember(c *fiber.Ctx, posting job.Posting) {
	if h.history == nil {
		return
	}
	if uid, err := currentUserID(c); err == nil {
		h.history.Record(c.Context(), uid.String(), posting)
	}
}
