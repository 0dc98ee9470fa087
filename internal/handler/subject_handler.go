package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/study-notes-api/internal/models"
	"github.com/noah-isme/study-notes-api/pkg/response"
)

type subjectService interface {
	Create(ctx context.Context, username, subjectName string) error
	Delete(ctx context.Context, username, subjectName string) error
	Rename(ctx context.Context, username, subjectName, newSubjectName string) error
	List(ctx context.Context, username string) ([]models.Subject, error)
}

// SubjectHandler handles subject endpoints nested under a user.
type SubjectHandler struct {
	service subjectService
}

// NewSubjectHandler constructs a subject handler.
func NewSubjectHandler(svc subjectService) *SubjectHandler {
	return &SubjectHandler{service: svc}
}

// List godoc
// @Summary List subjects of a user
// @Tags Subjects
// @Produce json
// @Param username path string true "Username"
// @Success 200 {array} models.Subject
// @Failure 400
// @Router /api/v1/users/{username}/subjects [get]
func (h *SubjectHandler) List(c *gin.Context) {
	subjects, err := h.service.List(c.Request.Context(), c.Param("username"))
	if err != nil {
		response.ErrorNoBody(c, err)
		return
	}
	response.JSON(c, http.StatusOK, subjects)
}

// Create godoc
// @Summary Create subject
// @Tags Subjects
// @Produce plain
// @Param username path string true "Username"
// @Param subjectName path string true "Subject name"
// @Success 200
// @Failure 400 {string} string "Subject name already exists."
// @Router /api/v1/users/{username}/subjects/{subjectName} [post]
func (h *SubjectHandler) Create(c *gin.Context) {
	if err := h.service.Create(c.Request.Context(), c.Param("username"), c.Param("subjectName")); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c)
}

// Rename godoc
// @Summary Rename subject
// @Tags Subjects
// @Produce plain
// @Param username path string true "Username"
// @Param subjectName path string true "Current subject name"
// @Param newSubjectName path string true "New subject name"
// @Success 200
// @Failure 400 {string} string "New subject name already exists."
// @Router /api/v1/users/{username}/subjects/{subjectName}/{newSubjectName} [put]
func (h *SubjectHandler) Rename(c *gin.Context) {
	err := h.service.Rename(c.Request.Context(), c.Param("username"), c.Param("subjectName"), c.Param("newSubjectName"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c)
}

// Delete godoc
// @Summary Delete subject
// @Tags Subjects
// @Produce plain
// @Param username path string true "Username"
// @Param subjectName path string true "Subject name"
// @Success 200
// @Failure 400 {string} string "Subject does not exist."
// @Router /api/v1/users/{username}/subjects/{subjectName} [delete]
func (h *SubjectHandler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("username"), c.Param("subjectName")); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c)
}
