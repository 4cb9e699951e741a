package handlers

import (
	"fmt"
	"io"
	"mime/multipart"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/careeragentpro/backend/pkg/job"
)

func parseLimitOffset(c *fiber.Ctx, defLimit int) (limit, offset int) {
	limit = defLimit
	offset = 0
	if v := strings.TrimSpace(c.Query("limit")); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 && n <= 200 {
			limit = n
		}
	}
	if v := strings.TrimSpace(c.Query("offset")); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			offset = n
		}
	}
	return limit, offset
}

// currentUserID reads the user id set by the auth middleware.
func currentUserID(c *fiber.Ctx) (uuid.UUID, error) {
	idStr, _ := c.Locals("userId").(string)
	return uuid.Parse(idStr)
}

// postingOr returns the posting from the request, or the caller's
// current posting when the request omits it and the caller is
// authenticated.
func postingOr(c *fiber.Ctx, history *job.History, posting *job.Posting) (job.Posting, bool) {
	if posting != nil {
		return *posting, true
	}
	if history != nil {
		if uid, err := currentUserID(c); err == nil {
			return history.Current(c.Context(), uid.String())
		}
	}
	return job.Posting{}, false
}

func readAtMost(f multipart.File, max int64) ([]byte, error) {
	limited := io.LimitReader(f, max+1)
	b, err := io.ReadAll(limited)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}
	if int64(len(b)) > max {
		return nil, fmt.Errorf("file too large: limit is %d bytes", max)
	}
	return b, nil
}
