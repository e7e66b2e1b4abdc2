package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/nonnle/chatrelay/internal/store"
)

// AdminHandlers provides HTTP handlers for admin-only operations.
type AdminHandlers struct {
	store store.UserStore
	log   *zerolog.Logger
}

// NewAdminHandlers creates a new admin handlers instance.
func NewAdminHandlers(st store.UserStore, logger *zerolog.Logger) *AdminHandlers {
	return &AdminHandlers{store: st, log: logger}
}

// UserResponse represents an account in admin API responses.
type UserResponse struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

// ListUsers returns every registered account.
// GET /api/admin/users
func (h *AdminHandlers) ListUsers(c *gin.Context) {
	users, err := h.store.ListUsers(c.Request.Context())
	if err != nil {
		h.log.Error().Err(err).Msg("failed to list users")
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal server error"})
		return
	}

	response := make([]UserResponse, 0, len(users))
	for _, u := range users {
		response = append(response, UserResponse{
			ID:       u.ID,
			Username: u.Username,
			Role:     string(u.Role),
		})
	}
	c.JSON(http.StatusOK, response)
}

// RemoveUser deletes an account.
// DELETE /api/admin/users/:id
func (h *AdminHandlers) RemoveUser(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid user id"})
		return
	}

	deleted, err := h.store.DeleteUser(c.Request.Context(), id)
	if err != nil {
		h.log.Error().Err(err).Int64("user_id", id).Msg("failed to delete user")
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal server error"})
		return
	}
	if !deleted {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "user not found"})
		return
	}

	h.log.Info().Int64("user_id", id).Msg("user removed")
	c.JSON(http.StatusOK, gin.H{"message": "user removed"})
}
