// Package history provides the undo stack of executed commands.
package history

import (
	"errors"
	"sync"

	"github.com/bethropolis/scribe/internal/command"
	"github.com/bethropolis/scribe/internal/event"
	"github.com/bethropolis/scribe/internal/logger"
)

const DefaultMaxHistory = 100

// ErrEmptyHistory is returned by Pop and Peek when nothing has been recorded.
var ErrEmptyHistory = errors.New("history is empty")

// Stack records executed commands in order. Entries are appended at the tail
// and consumed from the tail; they are never mutated after insertion. Only
// commands that fully executed may be pushed.
type Stack struct {
	commands []command.Command
	maxDepth int // 0 means unbounded
	events   *event.Manager
	mutex    sync.Mutex
}

// NewStack creates a history stack. maxDepth bounds the number of retained
// entries (oldest evicted first); maxDepth < 0 falls back to the default,
// 0 keeps everything.
func NewStack(maxDepth int) *Stack {
	if maxDepth < 0 {
		maxDepth = DefaultMaxHistory
	}
	return &Stack{
		commands: make([]command.Command, 0, DefaultMaxHistory),
		maxDepth: maxDepth,
	}
}

// SetEventManager wires the stack to the event bus so eviction is observable.
func (s *Stack) SetEventManager(mgr *event.Manager) {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	s.events = mgr
}

// Push appends an executed command to the tail, evicting the oldest entries
// if the stack is bounded. The trim event is dispatched after the lock is
// released so subscribers may call back into the stack.
func (s *Stack) Push(cmd command.Command) {
	s.mutex.Lock()
	s.commands = append(s.commands, cmd)

	dropped := 0
	if s.maxDepth > 0 && len(s.commands) > s.maxDepth {
		dropped = len(s.commands) - s.maxDepth
		s.commands = s.commands[dropped:]
	}
	count := len(s.commands)
	events := s.events
	s.mutex.Unlock()

	if dropped > 0 {
		if events != nil {
			events.Dispatch(event.TypeHistoryTrimmed, event.HistoryTrimmedData{Dropped: dropped})
		}
		logger.Debugf("History: Trimmed %d entries. Count: %d", dropped, count)
	}
	logger.Debugf("History: Recorded %q. Count: %d", cmd.String(), count)
}

// Pop removes and returns the most recently pushed command.
func (s *Stack) Pop() (command.Command, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if len(s.commands) == 0 {
		return nil, ErrEmptyHistory
	}

	cmd := s.commands[len(s.commands)-1]
	s.commands = s.commands[:len(s.commands)-1]
	logger.Debugf("History: Popped %q. Count: %d", cmd.String(), len(s.commands))
	return cmd, nil
}

// Peek returns the most recently pushed command without removing it.
func (s *Stack) Peek() (command.Command, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if len(s.commands) == 0 {
		return nil, ErrEmptyHistory
	}
	return s.commands[len(s.commands)-1], nil
}

// Len returns the number of recorded commands.
func (s *Stack) Len() int {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	return len(s.commands)
}

// Entries returns the recorded commands oldest first. The returned slice is
// a copy; the stack's own entries stay untouched.
func (s *Stack) Entries() []command.Command {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	entries := make([]command.Command, len(s.commands))
	copy(entries, s.commands)
	return entries
}

// CanUndo returns true if at least one command can be undone.
func (s *Stack) CanUndo() bool {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	return len(s.commands) > 0
}

// Clear drops all recorded commands.
func (s *Stack) Clear() {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	s.commands = s.commands[:0]
	logger.Debugf("History: Cleared.")
}
