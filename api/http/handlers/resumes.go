package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/careeragentpro/backend/api/http/presenter"
	"github.com/careeragentpro/backend/pkg/resume"
)

// ResumesHandler manages the caller's saved resumes.
type ResumesHandler struct {
	repo resume.Repository
}

func NewResumesHandler(repo resume.Repository) *ResumesHandler {
	return &ResumesHandler{repo: repo}
}

type saveResumeRequest struct {
	Title   string          `json:"title"`
	Profile *resume.Profile `json:"profile"`
}

// Save stores a resume profile under the caller's account.
// @Summary Save a resume
// @Tags    resumes
// @Accept  json
// @Produce json
// @Param   input body saveResumeRequest true "title and profile"
// @Security BearerAuth
// @Success 201 {object} resume.Stored
// @Failure 400 {object} presenter.ErrorResponse
// @Failure 401 {object} presenter.ErrorResponse
// @Router  /resumes [post]
func (h *ResumesHandler) Save(c *fiber.Ctx) error {
	uid, err := currentUserID(c)
	if err != nil {
		return presenter.Error(c, http.StatusUnauthorized, "could not identify user")
	}
	var req saveResumeRequest
	if err := c.BodyParser(&req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid JSON payload")
	}
	if req.Profile == nil {
		return presenter.Error(c, http.StatusBadRequest, "profile is required")
	}

	stored := resume.Stored{
		UserID:  uid,
		Title:   resumeTitle(req.Title, *req.Profile),
		Profile: *req.Profile,
	}
	if err := h.repo.Create(c.Context(), &stored); err != nil {
		return presenter.Error(c, http.StatusInternalServerError, "failed to save resume")
	}
	return presenter.JSON(c, http.StatusCreated, stored)
}

// List returns the caller's saved resumes, most recently updated first.
// @Summary List saved resumes
// @Tags    resumes
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resume.Stored
// @Failure 401 {object} presenter.ErrorResponse
// @Router  /resumes [get]
func (h *ResumesHandler) List(c *fiber.Ctx) error {
	uid, err := currentUserID(c)
	if err != nil {
		return presenter.Error(c, http.StatusUnauthorized, "could not identify user")
	}
	items, err := h.repo.ListByUser(c.Context(), uid)
	if err != nil {
		return presenter.Error(c, http.StatusInternalServerError, "failed to list resumes")
	}
	return presenter.JSON(c, http.StatusOK, items)
}

// Get returns one saved resume.
// @Summary Get a saved resume
// @Tags    resumes
// @Produce json
// @Param   id path string true "resume ID (UUID)"
// @Security BearerAuth
// @Success 200 {object} resume.Stored
// @Failure 401 {object} presenter.ErrorResponse
// @Failure 404 {object} presenter.ErrorResponse
// @Router  /resumes/{id} [get]
func (h *ResumesHandler) Get(c *fiber.Ctx) error {
	uid, err := currentUserID(c)
	if err != nil {
		return presenter.Error(c, http.StatusUnauthorized, "could not identify user")
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid id")
	}
	stored, err := h.repo.GetByID(c.Context(), uid, id)
	if err != nil {
		if errors.Is(err, resume.ErrNotFound) {
			return presenter.Error(c, http.StatusNotFound, "resume not found")
		}
		return presenter.Error(c, http.StatusInternalServerError, "failed to load resume")
	}
	return presenter.JSON(c, http.StatusOK, stored)
}

// Update replaces the title and profile of a saved resume.
// @Summary Update a saved resume
// @Tags    resumes
// @Accept  json
// @Produce json
// @Param   id path string true "resume ID (UUID)"
// @Param   input body saveResumeRequest true "title and profile"
// @Security BearerAuth
// @Success 200 {object} resume.Stored
// @Failure 400 {object} presenter.ErrorResponse
// @Failure 401 {object} presenter.ErrorResponse
// @Failure 404 {object} presenter.ErrorResponse
// @Router  /resumes/{id} [put]
func (h *ResumesHandler) Update(c *fiber.Ctx) error {
	uid, err := currentUserID(c)
	if err != nil {
		return presenter.Error(c, http.StatusUnauthorized, "could not identify user")
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid id")
	}
	var req saveResumeRequest
	if err := c.BodyParser(&req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid JSON payload")
	}
	if req.Profile == nil {
		return presenter.Error(c, http.StatusBadRequest, "profile is required")
	}

	stored := resume.Stored{
		ID:      id,
		UserID:  uid,
		Title:   resumeTitle(req.Title, *req.Profile),
		Profile: *req.Profile,
	}
	if err := h.repo.Update(c.Context(), &stored); err != nil {
		if errors.Is(err, resume.ErrNotFound) {
			return presenter.Error(c, http.StatusNotFound, "resume not found")
		}
		return presenter.Error(c, http.StatusInternalServerError, "failed to update resume")
	}
	fresh, err := h.repo.GetByID(c.Context(), uid, id)
	if err != nil {
		return presenter.Error(c, http.StatusInternalServerError, "failed to load resume")
	}
	return presenter.JSON(c, http.StatusOK, fresh)
}

// Delete removes a saved resume.
// @Summary Delete a saved resume
// @Tags    resumes
// @Param   id path string true "resume ID (UUID)"
// @Security BearerAuth
// @Success 204 {object} nil
// @Failure 401 {object} presenter.ErrorResponse
// @Failure 404 {object} presenter.ErrorResponse
// @Router  /resumes/{id} [delete]
func (h *ResumesHandler) Delete(c *fiber.Ctx) error {
	uid, err := currentUserID(c)
	if err != nil {
		return presenter.Error(c, http.StatusUnauthorized, "could not identify user")
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid id")
	}
	if err := h.repo.Delete(c.Context(), uid, id); err != nil {
		if errors.Is(err, resume.ErrNotFound) {
			return presenter.Error(c, http.StatusNotFound, "resume not found")
		}
		return presenter.Error(c, http.StatusInternalServerError, "failed to delete resume")
	}
	return c.SendStatus(http.StatusNoContent)
}

// resumeTitle picks a title for a saved resume: the explicit one, the
// profile's name, or a placeholder.
func resumeTitle(title string, p resume.Profile) string {
	if t := strings.TrimSpace(title); t != "" {
		return t
	}
	if p.Name != "" {
		return p.Name + " resume"
	}
	return "Untitled resume"
}
