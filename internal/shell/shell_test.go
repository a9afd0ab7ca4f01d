package shell

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bethropolis/scribe/internal/clipboard"
	"github.com/bethropolis/scribe/internal/command"
	"github.com/bethropolis/scribe/internal/editor"
	"github.com/bethropolis/scribe/internal/event"
	"github.com/bethropolis/scribe/internal/history"
)

// newTestShell wires a shell whose editor and loop share one output buffer.
func newTestShell(input string) (*Shell, *bytes.Buffer) {
	var out bytes.Buffer
	events := event.NewManager()
	ed := editor.New(&out)
	ed.SetEventManager(events)

	s := New(Config{
		Editor: ed,
		Events: events,
		Input:  strings.NewReader(input),
		Output: &out,
	})
	return s, &out
}

func TestShell_ExecuteRecordsOnlySuccessfulDispatches(t *testing.T) {
	t.Parallel()

	s, out := newTestShell("")

	s.execute("open a.txt")
	require.Equal(t, 1, s.history.Len())
	tail, err := s.history.Peek()
	require.NoError(t, err)
	assert.Equal(t, command.KindOpen, tail.Kind())
	assert.Equal(t, "open a.txt", tail.String())

	// Missing argument: diagnostic printed, history untouched.
	s.execute("saveas")
	assert.Equal(t, 1, s.history.Len())
	assert.Contains(t, out.String(), "missing argument: newpath")

	// Unknown command: diagnostic printed, history untouched.
	s.execute("bogus")
	assert.Equal(t, 1, s.history.Len())
	assert.Contains(t, out.String(), "unrecognized command: bogus")

	// Blank line: diagnostic printed, history untouched.
	s.execute("   ")
	assert.Equal(t, 1, s.history.Len())
	assert.Contains(t, out.String(), "empty input")

	s.execute("save")
	require.Equal(t, 2, s.history.Len())
	tail, err = s.history.Peek()
	require.NoError(t, err)
	assert.Equal(t, command.KindSave, tail.Kind())
}

func TestShell_UndoBuiltin(t *testing.T) {
	t.Parallel()

	s, out := newTestShell("")

	s.undo()
	assert.Contains(t, out.String(), "nothing to undo")

	s.execute("open a.txt")
	out.Reset()

	s.undo()

	assert.Equal(t, 0, s.history.Len())
	assert.Contains(t, out.String(), "closed a.txt")
	assert.Contains(t, out.String(), "undid: open a.txt")
}

func TestShell_UndoIsLIFO(t *testing.T) {
	t.Parallel()

	s, out := newTestShell("")

	s.execute("open a.txt")
	s.execute("save")
	out.Reset()

	s.undo()
	assert.Contains(t, out.String(), "undid: save")
	assert.Contains(t, out.String(), "reverted last change")

	out.Reset()
	s.undo()
	assert.Contains(t, out.String(), "undid: open a.txt")
	assert.Equal(t, 0, s.history.Len())
}

func TestShell_Run_Scenario(t *testing.T) {
	t.Parallel()

	input := strings.Join([]string{
		"open a.txt",
		"saveas",
		"bogus",
		"save",
		"history",
		"undo",
		"quit",
	}, "\n") + "\n"

	s, out := newTestShell(input)

	err := s.Run(context.Background())
	require.NoError(t, err)

	got := out.String()
	assert.Contains(t, got, "opened a.txt")
	assert.Contains(t, got, "missing argument: newpath")
	assert.Contains(t, got, "unrecognized command: bogus")
	assert.Contains(t, got, "saved a.txt")
	assert.Contains(t, got, "  1  open a.txt")
	assert.Contains(t, got, "  2  save")
	assert.Contains(t, got, "undid: save")

	// The save was undone; only the open remains recorded.
	require.Equal(t, 1, s.history.Len())
	tail, err := s.history.Peek()
	require.NoError(t, err)
	assert.Equal(t, command.KindOpen, tail.Kind())
}

func TestShell_Run_EndsOnEOF(t *testing.T) {
	t.Parallel()

	s, _ := newTestShell("print\n")

	err := s.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, s.history.Len())
}

func TestShell_Run_ObservesCancelledContext(t *testing.T) {
	t.Parallel()

	s, _ := newTestShell("print\nprint\n")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := s.Run(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, s.history.Len())
}

func TestShell_HistoryBuiltinOnEmptyStack(t *testing.T) {
	t.Parallel()

	s, out := newTestShell("")

	s.listHistory()
	assert.Contains(t, out.String(), "history is empty")
}

func TestShell_HelpListsVocabulary(t *testing.T) {
	t.Parallel()

	s, out := newTestShell("")

	s.printHelp()

	got := out.String()
	for _, usage := range []string{"save", "saveas <newpath>", "open <filepath>", "print", "close", "new", "clone <url>", "undo", "history", "quit"} {
		assert.Contains(t, got, usage)
	}
}

func TestShell_PromptFollowsPath(t *testing.T) {
	t.Parallel()

	s, _ := newTestShell("")

	assert.Equal(t, "> ", s.renderPrompt())

	s.execute("open a.txt")
	assert.Equal(t, "a.txt > ", s.renderPrompt())
}

func TestShell_YankCommand(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	events := event.NewManager()
	ed := editor.New(&out)
	ed.SetEventManager(events)
	clip := clipboard.NewManager(false)

	s := New(Config{
		Editor:    ed,
		Events:    events,
		History:   history.NewStack(0),
		Clipboard: clip,
		Input:     strings.NewReader(""),
		Output:    &out,
	})

	clip.Write("seed")
	s.execute("open a.txt")
	s.execute("yank")

	assert.Equal(t, "a.txt", clip.Read())
	require.Equal(t, 2, s.history.Len())

	s.undo()
	assert.Equal(t, "seed", clip.Read())
}

func TestTruncatePath(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "short.txt", truncatePath("short.txt", 24))

	got := truncatePath("a/very/long/path/to/some/deep/file.txt", 10)
	assert.True(t, strings.HasPrefix(got, "…"))
	assert.True(t, strings.HasSuffix(got, "file.txt"))
}
