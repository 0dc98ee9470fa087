package service

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/noah-isme/study-notes-api/internal/models"
	appErrors "github.com/noah-isme/study-notes-api/pkg/errors"
	"github.com/noah-isme/study-notes-api/pkg/export"
)

type noteLister interface {
	List(ctx context.Context, username, subjectName string) ([]models.StudyNote, error)
}

// ExportFile is a rendered download.
type ExportFile struct {
	Filename    string
	ContentType string
	Payload     []byte
}

// NoteExportHeaders is the column order of exported note tables.
var NoteExportHeaders = []string{"content", "colour", "creationDate", "isFavourite"}

// ExportService renders a subject's notes as CSV or PDF.
type ExportService struct {
	notes  noteLister
	logger *zap.Logger
}

// NewExportService constructs an export service.
func NewExportService(notes noteLister, logger *zap.Logger) *ExportService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ExportService{notes: notes, logger: logger}
}

// ExportNotes renders the notes of one subject in the requested format.
func (s *ExportService) ExportNotes(ctx context.Context, username, subjectName, format string) (*ExportFile, error) {
	renderer, err := export.ForFormat(strings.ToLower(strings.TrimSpace(format)))
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "Unsupported export format.")
	}

	notes, err := s.notes.List(ctx, username, subjectName)
	if err != nil {
		return nil, err
	}

	data := export.Dataset{
		Title:   fmt.Sprintf("%s / %s", username, subjectName),
		Headers: NoteExportHeaders,
		Rows:    make([][]string, 0, len(notes)),
	}
	for _, n := range notes {
		data.Rows = append(data.Rows, []string{
			n.Content,
			n.Colour,
			n.CreationDate.Format(time.DateOnly),
			strconv.FormatBool(n.IsFavourite),
		})
	}

	payload, err := renderer.Render(data)
	if err != nil {
		return nil, appErrors.Internal(err, "failed to render export")
	}

	s.logger.Debug("notes exported",
		zap.String("username", username),
		zap.String("subject", subjectName),
		zap.String("format", renderer.Extension()),
		zap.Int("notes", len(notes)))

	return &ExportFile{
		Filename:    fmt.Sprintf("%s-%s-notes.%s", fileSafe(username), fileSafe(subjectName), renderer.Extension()),
		ContentType: renderer.ContentType(),
		Payload:     payload,
	}, nil
}

func fileSafe(s string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
			return r
		default:
			return '_'
		}
	}, s)
}
