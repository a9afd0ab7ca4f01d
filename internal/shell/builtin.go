package shell

import (
	"errors"
	"fmt"
	"strings"

	"github.com/bethropolis/scribe/internal/event"
	"github.com/bethropolis/scribe/internal/history"
	"github.com/bethropolis/scribe/internal/logger"
)

// handleBuiltin intercepts loop-control commands before dispatch. Builtins
// act on the loop or the history itself and are never recorded.
func (s *Shell) handleBuiltin(line string) (quit bool, handled bool) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return false, false
	}

	switch fields[0] {
	case "undo":
		s.undo()
		return false, true
	case "history":
		s.listHistory()
		return false, true
	case "help":
		s.printHelp()
		return false, true
	case "quit", "exit":
		return true, true
	}
	return false, false
}

// undo pops the most recent command and reverses it.
func (s *Shell) undo() {
	cmd, err := s.history.Pop()
	if err != nil {
		if errors.Is(err, history.ErrEmptyHistory) {
			fmt.Fprintln(s.out, "nothing to undo")
			return
		}
		fmt.Fprintf(s.out, "undo failed: %v\n", err)
		return
	}

	cmd.Undo()
	s.events.Dispatch(event.TypeCommandUndone, event.CommandUndoneData{Name: cmd.Kind().String()})
	logger.DebugTagf("shell", "Undid %q, history depth %d", cmd.String(), s.history.Len())
	fmt.Fprintf(s.out, "undid: %s\n", cmd.String())
}

// listHistory prints the recorded commands, oldest first.
func (s *Shell) listHistory() {
	entries := s.history.Entries()
	if len(entries) == 0 {
		fmt.Fprintln(s.out, "history is empty")
		return
	}
	for i, cmd := range entries {
		fmt.Fprintf(s.out, "%3d  %s\n", i+1, cmd.String())
	}
}

// printHelp lists registered commands in registration order, then the
// builtins.
func (s *Shell) printHelp() {
	for _, e := range s.registry.Entries() {
		usage := e.Name
		if e.Arg != "" {
			usage += " <" + e.Arg + ">"
		}
		fmt.Fprintf(s.out, "  %-18s %s\n", usage, e.Info)
	}
	fmt.Fprintf(s.out, "  %-18s %s\n", "undo", "reverse the last executed command")
	fmt.Fprintf(s.out, "  %-18s %s\n", "history", "list executed commands")
	fmt.Fprintf(s.out, "  %-18s %s\n", "help", "show this list")
	fmt.Fprintf(s.out, "  %-18s %s\n", "quit", "leave the shell")
}
