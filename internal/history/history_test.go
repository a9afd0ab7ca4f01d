package history

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bethropolis/scribe/internal/command"
	"github.com/bethropolis/scribe/internal/event"
)

type stubCommand struct {
	name string
}

func (c *stubCommand) Kind() command.Kind { return command.KindSave }
func (c *stubCommand) Execute() {}
func (c *stubCommand) Undo() {}
func (c *stubCommand) String() string { return c.name }

func TestStack_PopIsLIFO(t *testing.T) {
	t.Parallel()

	s := NewStack(0)
	first := &stubCommand{name: "first"}
	second := &stubCommand{name: "second"}

	s.Push(first)
	s.Push(second)
	require.Equal(t, 2, s.Len())

	popped, err := s.Pop()
	require.NoError(t, err)
	assert.Same(t, command.Command(second), popped)

	popped, err = s.Pop()
	require.NoError(t, err)
	assert.Same(t, command.Command(first), popped)

	assert.Equal(t, 0, s.Len())
}

func TestStack_PopEmpty(t *testing.T) {
	t.Parallel()

	s := NewStack(0)

	cmd, err := s.Pop()
	assert.Nil(t, cmd)
	assert.ErrorIs(t, err, ErrEmptyHistory)
}

func TestStack_PeekKeepsEntry(t *testing.T) {
	t.Parallel()

	s := NewStack(0)
	cmd := &stubCommand{name: "only"}
	s.Push(cmd)

	peeked, err := s.Peek()
	require.NoError(t, err)
	assert.Same(t, command.Command(cmd), peeked)
	assert.Equal(t, 1, s.Len())

	_, err = s.Peek()
	require.NoError(t, err)
}

func TestStack_EvictsOldestWhenBounded(t *testing.T) {
	t.Parallel()

	s := NewStack(2)

	var trimmed int
	events := event.NewManager()
	events.Subscribe(event.TypeHistoryTrimmed, func(e event.Event) bool {
		if data, ok := e.Data.(event.HistoryTrimmedData); ok {
			trimmed += data.Dropped
		}
		return false
	})
	s.SetEventManager(events)

	s.Push(&stubCommand{name: "a"})
	s.Push(&stubCommand{name: "b"})
	s.Push(&stubCommand{name: "c"})

	require.Equal(t, 2, s.Len())
	assert.Equal(t, 1, trimmed)

	entries := s.Entries()
	require.Len(t, entries, 2)
	assert.Equal(t, "b", entries[0].String())
	assert.Equal(t, "c", entries[1].String())
}

func TestStack_TrimSubscriberMayReadTheStack(t *testing.T) {
	t.Parallel()

	s := NewStack(2)

	var lenAtTrim int
	var entriesAtTrim []command.Command
	events := event.NewManager()
	events.Subscribe(event.TypeHistoryTrimmed, func(e event.Event) bool {
		lenAtTrim = s.Len()
		entriesAtTrim = s.Entries()
		return false
	})
	s.SetEventManager(events)

	s.Push(&stubCommand{name: "a"})
	s.Push(&stubCommand{name: "b"})
	s.Push(&stubCommand{name: "c"})

	assert.Equal(t, 2, lenAtTrim)
	require.Len(t, entriesAtTrim, 2)
	assert.Equal(t, "b", entriesAtTrim[0].String())
}

func TestStack_NegativeDepthFallsBackToDefault(t *testing.T) {
	t.Parallel()

	s := NewStack(-1)
	for i := 0; i < DefaultMaxHistory+10; i++ {
		s.Push(&stubCommand{name: "x"})
	}
	assert.Equal(t, DefaultMaxHistory, s.Len())
}

func TestStack_EntriesReturnsCopy(t *testing.T) {
	t.Parallel()

	s := NewStack(0)
	s.Push(&stubCommand{name: "a"})

	entries := s.Entries()
	entries[0] = &stubCommand{name: "tampered"}

	kept, err := s.Peek()
	require.NoError(t, err)
	assert.Equal(t, "a", kept.String())
}

func TestStack_ClearAndCanUndo(t *testing.T) {
	t.Parallel()

	s := NewStack(0)
	assert.False(t, s.CanUndo())

	s.Push(&stubCommand{name: "a"})
	assert.True(t, s.CanUndo())

	s.Clear()
	assert.False(t, s.CanUndo())
	assert.Equal(t, 0, s.Len())
}
