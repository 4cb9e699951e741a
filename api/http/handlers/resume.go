package handlers

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/careeragentpro/backend/api/http/presenter"
	"github.com/careeragentpro/backend/pkg/ats"
	"github.com/careeragentpro/backend/pkg/bullet"
	"github.com/careeragentpro/backend/pkg/enhance"
	"github.com/careeragentpro/backend/pkg/job"
	"github.com/careeragentpro/backend/pkg/resume"
)

// ResumeHandler serves resume parsing, ATS scoring and enhancement.
type ResumeHandler struct {
	parser   resume.Service
	enhancer enhance.Service
	history  *job.History
	// Limit uploaded file size read into memory (bytes)
	maxBytes int64
}

func NewResumeHandler(parser resume.Service, enhancer enhance.Service, history *job.History) *ResumeHandler {
	return &ResumeHandler{parser: parser, enhancer: enhancer, history: history, maxBytes: 10 << 20} // 10MB
}

type scoreRequest struct {
	Resume *resume.Profile `json:"resume"`
	Job    *job.Posting    `json:"job"`
}

// Parse extracts a structured profile from an uploaded resume file.
// @Summary Parse an uploaded resume
// @Description Accepts a PDF, DOCX or TXT file, extracts its text and returns a structured profile with the raw text and provenance.
// @Tags    resumes
// @Accept  multipart/form-data
// @Produce json
// @Param   file formData file true "resume file (PDF, DOCX or TXT)"
// @Success 200 {object} resume.ParseResult
// @Failure 400 {object} presenter.ErrorResponse
// @Router  /resumes/parse [post]
func (h *ResumeHandler) Parse(c *fiber.Ctx) error {
	fh, err := c.FormFile("file")
	if err != nil || fh == nil {
		return presenter.Error(c, http.StatusBadRequest, "file is required (pdf, docx or txt)")
	}
	file, err := fh.Open()
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, "failed to open uploaded file")
	}
	defer file.Close()

	data, err := readAtMost(file, h.maxBytes)
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, err.Error())
	}

	result, err := h.parser.ParseUpload(c.Context(), fh.Filename, data)
	if err != nil {
		switch {
		case errors.Is(err, resume.ErrUnsupportedFormat):
			return presenter.Error(c, http.StatusBadRequest, "unsupported file format: only pdf, docx and txt are allowed")
		case errors.Is(err, resume.ErrEmptyResume):
			return presenter.Error(c, http.StatusBadRequest, "Could not extract text from resume. Please ensure the file contains readable text.")
		default:
			return presenter.Error(c, http.StatusBadRequest, "Could not read file. Supported formats: PDF, DOCX, TXT.")
		}
	}
	return presenter.JSON(c, http.StatusOK, result)
}

// Score rates a resume against a posting without calling the model.
// @Summary ATS score for a resume against a job
// @Tags    resumes
// @Accept  json
// @Produce json
// @Param   input body scoreRequest true "resume profile and job posting"
// @Success 200 {object} ats.Result
// @Failure 400 {object} presenter.ErrorResponse
// @Router  /resumes/score [post]
func (h *ResumeHandler) Score(c *fiber.Ctx) error {
	var req scoreRequest
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
	return presenter.JSON(c, http.StatusOK, ats.Score(*req.Resume, posting))
}

// Enhance analyzes a resume against a posting and suggests rewrites.
// @Summary Enhance a resume for a job
// @Description Returns the ATS breakdown together with a tailored summary, bullet suggestions and tips. Uses the model when configured, local analysis otherwise.
// @Tags    resumes
// @Accept  json
// @Produce json
// @Param   input body scoreRequest true "resume profile and job posting"
// @Success 200 {object} enhance.Enhancement
// @Failure 400 {object} presenter.ErrorResponse
// @Router  /resumes/enhance [post]
func (h *ResumeHandler) Enhance(c *fiber.Ctx) error {
	var req scoreRequest
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
	return presenter.JSON(c, http.StatusOK, h.enhancer.Enhance(c.Context(), *req.Resume, posting))
}

type validateBulletRequest struct {
	Bullet *bullet.SixPoint `json:"bullet"`
}

// ValidateBullet checks one six-point achievement bullet.
// @Summary Validate a six-point resume bullet
// @Description Checks structure, length window, metrics, verb strength and generic language, and returns a quality score with fix suggestions.
// @Tags    resumes
// @Accept  json
// @Produce json
// @Param   input body validateBulletRequest true "bullet split into its six parts"
// @Success 200 {object} bullet.Report
// @Failure 400 {object} presenter.ErrorResponse
// @Router  /resumes/validate-bullet [post]
func (h *ResumeHandler) ValidateBullet(c *fiber.Ctx) error {
	var req validateBulletRequest
	if err := c.BodyParser(&req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid JSON payload")
	}
	if req.Bullet == nil {
		return presenter.Error(c, http.StatusBadRequest, "bullet object is required")
	}
	return presenter.JSON(c, http.StatusOK, bullet.Validate(*req.Bullet))
}
