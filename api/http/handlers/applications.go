package handlers

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/careeragentpro/backend/api/http/presenter"
	"github.com/careeragentpro/backend/pkg/tracker"
)

// ApplicationsHandler manages the caller's job application tracker.
type ApplicationsHandler struct {
	uc tracker.UseCase
}

func NewApplicationsHandler(uc tracker.UseCase) *ApplicationsHandler {
	return &ApplicationsHandler{uc: uc}
}

type createApplicationRequest struct {
	JobTitle    string     `json:"jobTitle"`
	Company     string     `json:"company"`
	Status      string     `json:"status"`
	DateApplied string     `json:"dateApplied"`
	ResumeID    *uuid.UUID `json:"resumeId"`
	JobURL      string     `json:"jobUrl"`
}

type updateStatusRequest struct {
	Status string `json:"status"`
}

// Create records a new tracked application.
// @Summary Track a job application
// @Tags    applications
// @Accept  json
// @Produce json
// @Param   input body createApplicationRequest true "application details"
// @Security BearerAuth
// @Success 201 {object} tracker.Application
// @Failure 400 {object} presenter.ErrorResponse
// @Failure 401 {object} presenter.ErrorResponse
// @Router  /applications [post]
func (h *ApplicationsHandler) Create(c *fiber.Ctx) error {
	uid, err := currentUserID(c)
	if err != nil {
		return presenter.Error(c, http.StatusUnauthorized, "could not identify user")
	}
	var req createApplicationRequest
	if err := c.BodyParser(&req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid JSON payload")
	}

	app, err := h.uc.Create(c.Context(), tracker.Application{
		OwnerID:     uid,
		JobTitle:    req.JobTitle,
		Company:     req.Company,
		Status:      req.Status,
		DateApplied: req.DateApplied,
		ResumeID:    req.ResumeID,
		JobURL:      req.JobURL,
	})
	if err != nil {
		var verr tracker.ErrValidation
		if errors.As(err, &verr) {
			return presenter.Error(c, http.StatusBadRequest, verr.Error())
		}
		return presenter.Error(c, http.StatusInternalServerError, "failed to track application")
	}
	return presenter.JSON(c, http.StatusCreated, app)
}

// List returns the caller's tracked applications, newest first.
// @Summary List tracked applications
// @Tags    applications
// @Produce json
// @Param   limit  query int false "page size (default 50, max 200)"
// @Param   offset query int false "page offset"
// @Security BearerAuth
// @Success 200 {array} tracker.Application
// @Failure 401 {object} presenter.ErrorResponse
// @Router  /applications [get]
func (h *ApplicationsHandler) List(c *fiber.Ctx) error {
	uid, err := currentUserID(c)
	if err != nil {
		return presenter.Error(c, http.StatusUnauthorized, "could not identify user")
	}
	limit, offset := parseLimitOffset(c, 50)
	items, err := h.uc.List(c.Context(), uid, limit, offset)
	if err != nil {
		return presenter.Error(c, http.StatusInternalServerError, "failed to list applications")
	}
	return presenter.JSON(c, http.StatusOK, items)
}

// UpdateStatus moves a tracked application to a new status.
// @Summary Update application status
// @Tags    applications
// @Accept  json
// @Produce json
// @Param   id path string true "application ID (UUID)"
// @Param   input body updateStatusRequest true "new status"
// @Security BearerAuth
// @Success 204 {object} nil
// @Failure 400 {object} presenter.ErrorResponse
// @Failure 401 {object} presenter.ErrorResponse
// @Failure 404 {object} presenter.ErrorResponse
// @Router  /applications/{id}/status [patch]
func (h *ApplicationsHandler) UpdateStatus(c *fiber.Ctx) error {
	uid, err := currentUserID(c)
	if err != nil {
		return presenter.Error(c, http.StatusUnauthorized, "could not identify user")
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid id")
	}
	var req updateStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid JSON payload")
	}

	if err := h.uc.UpdateStatus(c.Context(), uid, id, req.Status); err != nil {
		var verr tracker.ErrValidation
		switch {
		case errors.As(err, &verr):
			return presenter.Error(c, http.StatusBadRequest, verr.Error())
		case errors.Is(err, tracker.ErrNotFound):
			return presenter.Error(c, http.StatusNotFound, "application not found")
		default:
			return presenter.Error(c, http.StatusInternalServerError, "failed to update application")
		}
	}
	return c.SendStatus(http.StatusNoContent)
}

// Delete removes a tracked application.
// @Summary Delete a tracked application
// @Tags    applications
// @Param   id path string true "application ID (UUID)"
// @Security BearerAuth
// @Success 204 {object} nil
// @Failure 401 {object} presenter.ErrorResponse
// @Failure 404 {object} presenter.ErrorResponse
// @Router  /applications/{id} [delete]
func (h *ApplicationsHandler) Delete(c *fiber.Ctx) error {
	uid, err := currentUserID(c)
	if err != nil {
		return presenter.Error(c, http.StatusUnauthorized, "could not identify user")
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid id")
	}
	if err := h.uc.Delete(c.Context(), uid, id); err != nil {
		if errors.Is(err, tracker.ErrNotFound) {
			return presenter.Error(c, http.StatusNotFound, "application not found")
		}
		return presenter.Error(c, http.StatusInternalServerError, "failed to delete application")
	}
	return c.SendStatus(http.StatusNoContent)
}
