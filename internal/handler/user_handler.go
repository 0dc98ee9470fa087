package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/study-notes-api/internal/models"
	"github.com/noah-isme/study-notes-api/pkg/response"
)

type userService interface {
	Count(ctx context.Context) (int64, error)
	DeleteAll(ctx context.Context) error
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	Create(ctx context.Context, username, email string) (*models.User, error)
	Delete(ctx context.Context, username string) error
}

// UserHandler handles user endpoints.
type UserHandler struct {
	service userService
}

// NewUserHandler constructs a user handler.
func NewUserHandler(svc userService) *UserHandler {
	return &UserHandler{service: svc}
}

// Count godoc
// @Summary Count users
// @Tags Users
// @Produce json
// @Success 200 {integer} integer
// @Router /api/v1/users [get]
func (h *UserHandler) Count(c *gin.Context) {
	n, err := h.service.Count(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, n)
}

// DeleteAll godoc
// @Summary Delete every user
// @Tags Users
// @Success 200
// @Router /api/v1/users/all [delete]
func (h *UserHandler) DeleteAll(c *gin.Context) {
	if err := h.service.DeleteAll(c.Request.Context()); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c)
}

// Get godoc
// @Summary Get user by username
// @Tags Users
// @Produce json
// @Param username path string true "Username"
// @Success 200 {object} models.User
// @Failure 404
// @Router /api/v1/users/{username} [get]
func (h *UserHandler) Get(c *gin.Context) {
	user, err := h.service.GetByUsername(c.Request.Context(), c.Param("username"))
	if err != nil {
		response.ErrorNoBody(c, err)
		return
	}
	response.JSON(c, http.StatusOK, user)
}

// Create godoc
// @Summary Create user
// @Tags Users
// @Produce plain
// @Param username path string true "Unique username"
// @Param email path string true "Unique email"
// @Success 200
// @Failure 400 {string} string "Username already taken."
// @Router /api/v1/users/{username}/{email} [post]
func (h *UserHandler) Create(c *gin.Context) {
	if _, err := h.service.Create(c.Request.Context(), c.Param("username"), c.Param("email")); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c)
}

// Delete godoc
// @Summary Delete user
// @Tags Users
// @Produce plain
// @Param username path string true "Username"
// @Success 200
// @Failure 404 {string} string "Username <username> does not exist"
// @Router /api/v1/users/{username} [delete]
func (h *UserHandler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("username")); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c)
}
