package editor

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bethropolis/scribe/internal/event"
)

func TestEditor_OpenSetsPathAndReports(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	ed := New(&out)

	ed.Open("a.txt")

	assert.Equal(t, "a.txt", ed.Path())
	assert.Equal(t, "opened a.txt\n", out.String())
}

func TestEditor_SaveAsBecomesCurrentPath(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	ed := New(&out)
	ed.Open("a.txt")
	out.Reset()

	ed.SaveAs("b.txt")

	assert.Equal(t, "b.txt", ed.Path())
	assert.Equal(t, "saved as b.txt\n", out.String())
}

func TestEditor_UnnamedBufferDisplay(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	ed := New(&out)

	ed.Save()
	ed.Print()

	assert.Equal(t, "saved [No Name]\nprinting [No Name]\n", out.String())
}

func TestEditor_CloseKeepsPath(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	ed := New(&out)
	ed.Open("a.txt")

	// Close does not clear the path; a later reopen relies on it.
	ed.Close()

	assert.Equal(t, "a.txt", ed.Path())
}

func TestEditor_PathChangedEvents(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	ed := New(&out)

	var changes []event.PathChangedData
	events := event.NewManager()
	events.Subscribe(event.TypePathChanged, func(e event.Event) bool {
		if data, ok := e.Data.(event.PathChangedData); ok {
			changes = append(changes, data)
		}
		return false
	})
	ed.SetEventManager(events)

	ed.Open("a.txt")
	ed.SetPath("b.txt")
	ed.SetPath("b.txt") // no-op, same path

	require.Len(t, changes, 2)
	assert.Equal(t, event.PathChangedData{OldPath: "", NewPath: "a.txt"}, changes[0])
	assert.Equal(t, event.PathChangedData{OldPath: "a.txt", NewPath: "b.txt"}, changes[1])
}

func TestEditor_StubOperationsAlwaysSucceed(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	ed := New(&out)
	ed.Open("a.txt")
	out.Reset()

	ed.Revert()
	ed.CreateNew()
	ed.CloneRepository("https://example.com/r.git")

	assert.Equal(t,
		"reverted last change to a.txt\ncreated new file\ncloned https://example.com/r.git\n",
		out.String())
}
