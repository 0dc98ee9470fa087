package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/study-notes-api/internal/models"
	"github.com/noah-isme/study-notes-api/internal/service"
	appErrors "github.com/noah-isme/study-notes-api/pkg/errors"
	"github.com/noah-isme/study-notes-api/pkg/response"
)

type studyNoteService interface {
	Create(ctx context.Context, username, subjectName string, req service.CreateStudyNoteRequest) (*models.StudyNote, error)
	List(ctx context.Context, username, subjectName string) ([]models.StudyNote, error)
}

type exportService interface {
	ExportNotes(ctx context.Context, username, subjectName, format string) (*service.ExportFile, error)
}

// StudyNoteHandler handles note endpoints nested under a subject.
type StudyNoteHandler struct {
	service studyNoteService
	exports exportService
}

// NewStudyNoteHandler constructs a study note handler. exports may be nil to disable downloads.
func NewStudyNoteHandler(svc studyNoteService, exports exportService) *StudyNoteHandler {
	return &StudyNoteHandler{service: svc, exports: exports}
}

// Create godoc
// @Summary Append study note
// @Tags Study Notes
// @Accept json
// @Produce plain
// @Param username path string true "Username"
// @Param subjectName path string true "Subject name"
// @Param payload body service.CreateStudyNoteRequest true "Study note"
// @Success 200
// @Failure 400 {string} string "Username does not exist"
// @Router /api/v1/users/{username}/subjects/{subjectName}/notes [post]
func (h *StudyNoteHandler) Create(c *gin.Context) {
	var req service.CreateStudyNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrInvalidStudyNote.Code, appErrors.ErrInvalidStudyNote.Status, appErrors.ErrInvalidStudyNote.Message))
		return
	}
	if _, err := h.service.Create(c.Request.Context(), c.Param("username"), c.Param("subjectName"), req); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c)
}

// List godoc
// @Summary List study notes
// @Tags Study Notes
// @Produce json
// @Param username path string true "Username"
// @Param subjectName path string true "Subject name"
// @Success 200 {array} models.StudyNote
// @Failure 400
// @Router /api/v1/users/{username}/subjects/{subjectName}/notes [get]
func (h *StudyNoteHandler) List(c *gin.Context) {
	notes, err := h.service.List(c.Request.Context(), c.Param("username"), c.Param("subjectName"))
	if err != nil {
		response.ErrorNoBody(c, err)
		return
	}
	response.JSON(c, http.StatusOK, notes)
}

// Export godoc
// @Summary Download study notes
// @Tags Study Notes
// @Produce text/csv,application/pdf
// @Param username path string true "Username"
// @Param subjectName path string true "Subject name"
// @Param format query string false "csv or pdf" default(csv)
// @Success 200 {file} file
// @Failure 400 {string} string "Unsupported export format."
// @Router /api/v1/users/{username}/subjects/{subjectName}/notes/export [get]
func (h *StudyNoteHandler) Export(c *gin.Context) {
	if h.exports == nil {
		response.Status(c, http.StatusNotFound)
		return
	}
	file, err := h.exports.ExportNotes(c.Request.Context(), c.Param("username"), c.Param("subjectName"), c.DefaultQuery("format", "csv"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Attachment(c, file.Filename, file.ContentType, file.Payload)
}
