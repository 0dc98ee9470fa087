package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/noah-isme/study-notes-api/internal/models"
	appErrors "github.com/noah-isme/study-notes-api/pkg/errors"
)

// CreateStudyNoteRequest is the body accepted when appending a note.
type CreateStudyNoteRequest struct {
	Content      string    `json:"content" validate:"required"`
	Colour       string    `json:"colour"`
	IsFavourite  bool      `json:"isFavourite"`
	CreationDate *NoteDate `json:"creationDate,omitempty"`
}

// NoteDate accepts either a plain date (2006-01-02) or an RFC 3339 timestamp.
type NoteDate struct {
	time.Time
}

// UnmarshalJSON implements json.Unmarshaler.
func (d *NoteDate) UnmarshalJSON(b []byte) error {
	raw := strings.Trim(string(b), `"`)
	if raw == "" || raw == "null" {
		d.Time = time.Time{}
		return nil
	}
	for _, layout := range []string{time.DateOnly, time.RFC3339Nano} {
		if t, err := time.Parse(layout, raw); err == nil {
			d.Time = t
			return nil
		}
	}
	return fmt.Errorf("creationDate %q is neither a date nor an RFC 3339 timestamp", raw)
}

// StudyNoteService appends and lists notes inside a user's subject.
type StudyNoteService struct {
	repo      userRepository
	locker    *UserLocker
	validator *validator.Validate
	logger    *zap.Logger
	now       func() time.Time
}

// NewStudyNoteService creates a study note service. locker may be nil.
func NewStudyNoteService(repo userRepository, locker *UserLocker, validate *validator.Validate, logger *zap.Logger) *StudyNoteService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &StudyNoteService{repo: repo, locker: locker, validator: validate, logger: logger, now: time.Now}
}

var errUsernameUnknownNote = appErrors.Clone(appErrors.ErrUsernameUnknown, "Username does not exist")

func missingSubject(subjectName string) *appErrors.Error {
	return appErrors.Clone(appErrors.ErrSubjectNotFound, fmt.Sprintf("Username does not have a subject with the name '%s'", subjectName))
}

// Create appends the note to the end of the subject's note list.
func (s *StudyNoteService) Create(ctx context.Context, username, subjectName string, req CreateStudyNoteRequest) (*models.StudyNote, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInvalidStudyNote.Code, appErrors.ErrInvalidStudyNote.Status, appErrors.ErrInvalidStudyNote.Message)
	}

	note := models.StudyNote{
		Content:      req.Content,
		Colour:       req.Colour,
		IsFavourite:  req.IsFavourite,
		CreationDate: s.now().UTC(),
	}
	if req.CreationDate != nil && !req.CreationDate.IsZero() {
		note.CreationDate = req.CreationDate.UTC()
	}

	err := s.locker.WithLock(ctx, username, func(ctx context.Context) error {
		user, err := loadOwner(ctx, s.repo, username, errUsernameUnknownNote)
		if err != nil {
			return err
		}
		subject := user.Subject(subjectName)
		if subject == nil {
			return missingSubject(subjectName)
		}

		subject.Notes = append(subject.Notes, note)
		if err := s.repo.Save(ctx, user); err != nil {
			return appErrors.Internal(err, "failed to save study note")
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("study note created", zap.String("username", username), zap.String("subject", subjectName))
	return &note, nil
}

// List returns the subject's notes in insertion order.
func (s *StudyNoteService) List(ctx context.Context, username, subjectName string) ([]models.StudyNote, error) {
	user, err := loadOwner(ctx, s.repo, username, errUsernameUnknownNote)
	if err != nil {
		return nil, err
	}
	subject := user.Subject(subjectName)
	if subject == nil {
		return nil, missingSubject(subjectName)
	}
	return subject.Notes, nil
}
