package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/careeragentpro/backend/api/http/presenter"
	"github.com/careeragentpro/backend/pkg/vault"
)

// StateHandler exposes the per-user state vault over HTTP so the UI
// can sync its local state across devices. Only the fixed key set is
// accepted; values are opaque JSON documents.
type StateHandler struct {
	vault *vault.Vault
	// analyzed postings expire, the other keys do not
	jobsTTL time.Duration
}

func NewStateHandler(v *vault.Vault, jobsTTL time.Duration) *StateHandler {
	return &StateHandler{vault: v, jobsTTL: jobsTTL}
}

func stateKey(key string) (string, bool) {
	switch key {
	case vault.KeyProfile, vault.KeyAnalyzedJobs, vault.KeyCurrentJob:
		return key, true
	}
	return "", false
}

func (h *StateHandler) ttlFor(key string) time.Duration {
	if key == vault.KeyAnalyzedJobs {
		return h.jobsTTL
	}
	return 0
}

// Put stores a state document under the given key.
// @Summary Store a state document
// @Description Stores an opaque JSON document under one of the fixed keys: profile, analyzedJobs, currentJobForResume.
// @Tags    state
// @Accept  json
// @Param   key path string true "state key"
// @Param   input body object true "JSON document"
// @Security BearerAuth
// @Success 204 {object} nil
// @Failure 400 {object} presenter.ErrorResponse
// @Failure 401 {object} presenter.ErrorResponse
// @Router  /state/{key} [put]
func (h *StateHandler) Put(c *fiber.Ctx) error {
	uid, err := currentUserID(c)
	if err != nil {
		return presenter.Error(c, http.StatusUnauthorized, "could not identify user")
	}
	key, ok := stateKey(c.Params("key"))
	if !ok {
		return presenter.Error(c, http.StatusBadRequest, "Invalid state key. Must be: profile, analyzedJobs, or currentJobForResume")
	}
	body := c.Body()
	if !json.Valid(body) {
		return presenter.Error(c, http.StatusBadRequest, "invalid JSON payload")
	}

	if !h.vault.Scoped(uid.String()).Set(c.Context(), key, json.RawMessage(body), h.ttlFor(key)) {
		return presenter.Error(c, http.StatusInternalServerError, "failed to store state")
	}
	return c.SendStatus(http.StatusNoContent)
}

// Get returns the state document stored under the given key.
// @Summary Load a state document
// @Tags    state
// @Produce json
// @Param   key path string true "state key"
// @Security BearerAuth
// @Success 200 {object} object
// @Failure 400 {object} presenter.ErrorResponse
// @Failure 401 {object} presenter.ErrorResponse
// @Failure 404 {object} presenter.ErrorResponse
// @Router  /state/{key} [get]
func (h *StateHandler) Get(c *fiber.Ctx) error {
	uid, err := currentUserID(c)
	if err != nil {
		return presenter.Error(c, http.StatusUnauthorized, "could not identify user")
	}
	key, ok := stateKey(c.Params("key"))
	if !ok {
		return presenter.Error(c, http.StatusBadRequest, "Invalid state key. Must be: profile, analyzedJobs, or currentJobForResume")
	}

	var doc json.RawMessage
	if !h.vault.Scoped(uid.String()).Get(c.Context(), key, &doc) {
		return presenter.Error(c, http.StatusNotFound, "state not found")
	}
	c.Type("json", "utf-8")
	return c.Status(http.StatusOK).Send(doc)
}

// Delete removes the state document stored under the given key.
// @Summary Delete a state document
// @Tags    state
// @Param   key path string true "state key"
// @Security BearerAuth
// @Success 204 {object} nil
// @Failure 400 {object} presenter.ErrorResponse
// @Failure 401 {object} presenter.ErrorResponse
// @Router  /state/{key} [delete]
func (h *StateHandler) Delete(c *fiber.Ctx) error {
	uid, err := currentUserID(c)
	if err != nil {
		return presenter.Error(c, http.StatusUnauthorized, "could not identify user")
	}
	key, ok := stateKey(c.Params("key"))
	if !ok {
		return presenter.Error(c, http.StatusBadRequest, "Invalid state key. Must be: profile, analyzedJobs, or currentJobForResume")
	}
	h.vault.Scoped(uid.String()).Remove(c.Context(), key)
	return c.SendStatus(http.StatusNoContent)
}

// Clear removes every state document of the caller.
// @Summary Clear all state
// @Tags    state
// @Security BearerAuth
// @Success 204 {object} nil
// @Failure 401 {object} presenter.ErrorResponse
// @Router  /state [delete]
func (h *StateHandler) Clear(c *fiber.Ctx) error {
	uid, err := currentUserID(c)
	if err != nil {
		return presenter.Error(c, http.StatusUnauthorized, "could not identify user")
	}
	h.vault.Scoped(uid.String()).Clear(c.Context())
	return c.SendStatus(http.StatusNoContent)
}
