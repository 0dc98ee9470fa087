package export

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var sample = Dataset{
	Title:   "alice / Math",
	Headers: []string{"content", "colour"},
	Rows: [][]string{
		{"pythagoras, a^2 + b^2 = c^2", "red"},
		{"euler", "blue"},
	},
}

func TestCSVRender(t *testing.T) {
	out, err := NewCSVExporter().Render(sample)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(out)), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "content,colour", lines[0])
	assert.Equal(t, `"pythagoras, a^2 + b^2 = c^2",red`, lines[1])
	assert.Equal(t, "euler,blue", lines[2])
}

func TestPDFRender(t *testing.T) {
	out, err := NewPDFExporter().Render(sample)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF-")))
}

func TestRenderRejectsBadDatasets(t *testing.T) {
	_, err := NewCSVExporter().Render(Dataset{})
	assert.Error(t, err)

	_, err = NewPDFExporter().Render(Dataset{Headers: []string{"a"}, Rows: [][]string{{"1", "2"}}})
	assert.Error(t, err)
}

func TestForFormat(t *testing.T) {
	r, err := ForFormat("")
	require.NoError(t, err)
	assert.Equal(t, "csv", r.Extension())

	r, err = ForFormat(FormatPDF)
	require.NoError(t, err)
	assert.Equal(t, "application/pdf", r.ContentType())

	_, err = ForFormat("xlsx")
	assert.Error(t, err)
}
