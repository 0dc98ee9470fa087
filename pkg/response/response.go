package response

import (
	"net/http"

	"github.com/gin-gonic/gin"

	appErrors "github.com/noah-isme/study-notes-api/pkg/errors"
)

func noStore(c *gin.Context) {
	c.Header("Cache-Control", "no-store")
	c.Header("Pragma", "no-cache")
}

// JSON writes the entity as the raw response body, without an envelope.
func JSON(c *gin.Context, status int, data interface{}) {
	noStore(c)
	c.JSON(status, data)
}

// OK sends an empty 200.
func OK(c *gin.Context) {
	Status(c, http.StatusOK)
}

// Status sends an empty body with the given status and flushes the header.
func Status(c *gin.Context, status int) {
	noStore(c)
	c.Status(status)
	c.Writer.WriteHeaderNow()
}

// Attachment streams a generated file as a download.
func Attachment(c *gin.Context, filename, contentType string, payload []byte) {
	noStore(c)
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, contentType, payload)
}

// Error maps err to its status and writes its message as plain text.
// Errors with an empty message produce an empty body. Server errors always
// answer with the generic internal message; the detail stays in c.Errors.
func Error(c *gin.Context, err error) {
	appErr := appErrors.FromError(err)
	_ = c.Error(err)
	message := appErr.Message
	if appErr.Status >= http.StatusInternalServerError {
		message = appErrors.ErrInternal.Message
	}
	if message == "" {
		Status(c, appErr.Status)
		return
	}
	noStore(c)
	c.String(appErr.Status, message)
}

// ErrorNoBody maps err to its status and drops the message for client
// errors. Server errors keep their plain-text body.
func ErrorNoBody(c *gin.Context, err error) {
	appErr := appErrors.FromError(err)
	if appErr.Status >= http.StatusInternalServerError {
		Error(c, err)
		return
	}
	_ = c.Error(err)
	Status(c, appErr.Status)
}
