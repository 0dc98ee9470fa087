package service

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/noah-isme/study-notes-api/internal/models"
	appErrors "github.com/noah-isme/study-notes-api/pkg/errors"
)

func newNoteService(repo *mockUserRepo) *StudyNoteService {
	svc := NewStudyNoteService(repo, nil, validator.New(), zap.NewNop())
	svc.now = func() time.Time { return time.Date(2024, 5, 4, 12, 0, 0, 0, time.UTC) }
	return svc
}

func TestStudyNoteServiceCreateAppends(t *testing.T) {
	repo := newMockUserRepo(userWithSubjects("alice", "Math", "Art"))
	svc := newNoteService(repo)
	ctx := context.Background()

	first, err := svc.Create(ctx, "alice", "Math", CreateStudyNoteRequest{Content: "first", Colour: "red"})
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 5, 4, 12, 0, 0, 0, time.UTC), first.CreationDate)
	assert.False(t, first.IsFavourite)

	_, err = svc.Create(ctx, "alice", "Math", CreateStudyNoteRequest{Content: "second", Colour: "blue", IsFavourite: true})
	require.NoError(t, err)

	notes, err := svc.List(ctx, "alice", "Math")
	require.NoError(t, err)
	require.Len(t, notes, 2)
	assert.Equal(t, "first", notes[0].Content)
	assert.Equal(t, "second", notes[1].Content)
	assert.True(t, notes[1].IsFavourite)

	art, err := svc.List(ctx, "alice", "Art")
	require.NoError(t, err)
	assert.Empty(t, art)
}

func TestStudyNoteServiceKeepsProvidedCreationDate(t *testing.T) {
	repo := newMockUserRepo(userWithSubjects("alice", "Math"))
	svc := newNoteService(repo)
	when := time.Date(2023, 1, 2, 0, 0, 0, 0, time.FixedZone("CET", 3600))

	note, err := svc.Create(context.Background(), "alice", "Math", CreateStudyNoteRequest{Content: "x", CreationDate: &NoteDate{Time: when}})
	require.NoError(t, err)
	assert.True(t, note.CreationDate.Equal(when))
	assert.Equal(t, time.UTC, note.CreationDate.Location())
}

func TestStudyNoteServicePreconditions(t *testing.T) {
	repo := newMockUserRepo(userWithSubjects("alice", "Math"))
	svc := newNoteService(repo)
	ctx := context.Background()

	_, err := svc.Create(ctx, "ghost", "Math", CreateStudyNoteRequest{Content: "x"})
	require.ErrorIs(t, err, appErrors.ErrUsernameUnknown)
	assert.Equal(t, "Username does not exist", appErrors.FromError(err).Message)

	_, err = svc.Create(ctx, "alice", "Physics", CreateStudyNoteRequest{Content: "x"})
	require.ErrorIs(t, err, appErrors.ErrSubjectNotFound)
	assert.Equal(t, "Username does not have a subject with the name 'Physics'", appErrors.FromError(err).Message)

	_, err = svc.Create(ctx, "alice", "Math", CreateStudyNoteRequest{Colour: "red"})
	require.ErrorIs(t, err, appErrors.ErrValidation)
	assert.Equal(t, http.StatusBadRequest, appErrors.FromError(err).Status)
	assert.Equal(t, "Invalid study note payload.", appErrors.FromError(err).Message)

	assert.Empty(t, repo.stored("alice").Subjects[0].Notes)
	assert.Zero(t, repo.saves)

	_, err = svc.List(ctx, "ghost", "Math")
	assert.ErrorIs(t, err, appErrors.ErrUsernameUnknown)
	_, err = svc.List(ctx, "alice", "Physics")
	assert.ErrorIs(t, err, appErrors.ErrSubjectNotFound)
}

func TestStudyNoteServiceDoesNotTouchOtherSubjects(t *testing.T) {
	u := userWithSubjects("alice", "Math", "Art")
	u.Subjects[1].Notes = []models.StudyNote{{Content: "colour wheel"}}
	repo := newMockUserRepo(u)
	svc := newNoteService(repo)

	_, err := svc.Create(context.Background(), "alice", "Math", CreateStudyNoteRequest{Content: "x"})
	require.NoError(t, err)

	stored := repo.stored("alice")
	assert.Len(t, stored.Subjects[0].Notes, 1)
	assert.Equal(t, []models.StudyNote{{Content: "colour wheel"}}, stored.Subjects[1].Notes)
}

func TestStudyNoteServiceAcceptsAnyColour(t *testing.T) {
	repo := newMockUserRepo(userWithSubjects("alice", "Math"))
	svc := newNoteService(repo)
	colour := strings.Repeat("c", 40)

	note, err := svc.Create(context.Background(), "alice", "Math", CreateStudyNoteRequest{Content: "x", Colour: colour})
	require.NoError(t, err)
	assert.Equal(t, colour, note.Colour)
	assert.Equal(t, colour, repo.stored("alice").Subjects[0].Notes[0].Colour)
}

func TestNoteDateUnmarshal(t *testing.T) {
	cases := []struct {
		name string
		body string
		want time.Time
	}{
		{"date only", `{"content":"x","creationDate":"2024-01-01"}`, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)},
		{"timestamp", `{"content":"x","creationDate":"2024-01-01T10:30:00+02:00"}`, time.Date(2024, 1, 1, 8, 30, 0, 0, time.UTC)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var req CreateStudyNoteRequest
			require.NoError(t, json.Unmarshal([]byte(tc.body), &req))
			require.NotNil(t, req.CreationDate)
			assert.True(t, req.CreationDate.Equal(tc.want))
		})
	}

	var req CreateStudyNoteRequest
	require.NoError(t, json.Unmarshal([]byte(`{"content":"x"}`), &req))
	assert.Nil(t, req.CreationDate)

	assert.Error(t, json.Unmarshal([]byte(`{"content":"x","creationDate":"01/02/2024"}`), &req))
}
