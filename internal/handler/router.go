package handler

import (
	"github.com/gin-gonic/gin"
)

// Handlers groups everything RegisterRoutes mounts.
type Handlers struct {
	Users      *UserHandler
	Subjects   *SubjectHandler
	StudyNotes *StudyNoteHandler
	Metrics    *MetricsHandler
}

// RegisterRoutes mounts the API under prefix (e.g. /api/v1) and the
// operational endpoints at the root. metricsPath is skipped when empty.
func RegisterRoutes(r *gin.Engine, prefix, metricsPath string, h Handlers) {
	if h.Metrics != nil {
		r.GET("/health", h.Metrics.Health)
		r.GET("/ready", h.Metrics.Ready)
		if metricsPath != "" {
			r.GET(metricsPath, h.Metrics.Prometheus)
		}
	}

	users := r.Group(prefix + "/users")
	users.GET("", h.Users.Count)
	users.GET("/", h.Users.Count)
	users.DELETE("/all", h.Users.DeleteAll)
	users.GET("/:username", h.Users.Get)
	users.POST("/:username/:email", h.Users.Create)
	users.DELETE("/:username", h.Users.Delete)

	users.GET("/:username/subjects", h.Subjects.List)
	users.POST("/:username/subjects/:subjectName", h.Subjects.Create)
	users.DELETE("/:username/subjects/:subjectName", h.Subjects.Delete)
	users.PUT("/:username/subjects/:subjectName/:newSubjectName", h.Subjects.Rename)

	users.POST("/:username/subjects/:subjectName/notes", h.StudyNotes.Create)
	users.GET("/:username/subjects/:subjectName/notes", h.StudyNotes.List)
	users.GET("/:username/subjects/:subjectName/notes/export", h.StudyNotes.Export)
}
