// Package shell implements the interactive command loop: it reads one line
// at a time, resolves it through the command registry, executes the result
// against the editor receiver and records it on the history stack.
package shell

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/rivo/uniseg"

	"github.com/bethropolis/scribe/internal/clipboard"
	"github.com/bethropolis/scribe/internal/command"
	"github.com/bethropolis/scribe/internal/editor"
	"github.com/bethropolis/scribe/internal/event"
	"github.com/bethropolis/scribe/internal/history"
	"github.com/bethropolis/scribe/internal/logger"
)

// Maximum width of the path shown in the prompt, in terminal cells.
const promptPathWidth = 24

// Config holds dependencies for the Shell. Zero fields get defaults, so
// tests can inject only what they need.
type Config struct {
	Editor    command.Editor
	Registry  *command.Registry
	History   *history.Stack
	Events    *event.Manager
	Clipboard *clipboard.Manager // nil disables the yank command
	Input     io.Reader
	Output    io.Writer
	Prompt    string
}

// Shell owns the receiver, the registry and the history stack for one
// interactive session. It is single-threaded: every line is read, parsed,
// executed and recorded before the next read.
type Shell struct {
	editor   command.Editor
	registry *command.Registry
	history  *history.Stack
	events   *event.Manager
	clip     *clipboard.Manager
	in       io.Reader
	out      io.Writer
	prompt   string

	// Path shown in the prompt, maintained via PathChanged events.
	promptPath string
}

// New creates a shell, filling in defaults for any dependency not provided.
func New(cfg Config) *Shell {
	if cfg.Output == nil {
		cfg.Output = os.Stdout
	}
	if cfg.Input == nil {
		cfg.Input = os.Stdin
	}
	if cfg.Events == nil {
		cfg.Events = event.NewManager()
	}
	if cfg.Registry == nil {
		cfg.Registry = command.DefaultRegistry()
	}
	if cfg.History == nil {
		cfg.History = history.NewStack(-1)
	}
	if cfg.Editor == nil {
		ed := editor.New(cfg.Output)
		ed.SetEventManager(cfg.Events)
		cfg.Editor = ed
	}
	if cfg.Prompt == "" {
		cfg.Prompt = "> "
	}

	s := &Shell{
		editor:   cfg.Editor,
		registry: cfg.Registry,
		history:  cfg.History,
		events:   cfg.Events,
		clip:     cfg.Clipboard,
		in:       cfg.Input,
		out:      cfg.Output,
		prompt:   cfg.Prompt,
	}

	s.history.SetEventManager(s.events)
	s.promptPath = s.editor.Path()
	s.events.Subscribe(event.TypePathChanged, func(e event.Event) bool {
		if data, ok := e.Data.(event.PathChangedData); ok {
			s.promptPath = data.NewPath
		}
		return false
	})

	if s.clip != nil {
		err := s.registry.Register("yank", "", "copy the current path to the clipboard", func(ed command.Editor, args []string) command.Command {
			return newYankCommand(ed, s.clip)
		})
		if err != nil {
			logger.Warnf("Failed to register 'yank' command: %v", err)
		}
	}

	return s
}

// Run executes the read loop until EOF, a quit builtin, or context
// cancellation. Cancellation is observed between iterations; the line read
// itself blocks.
func (s *Shell) Run(ctx context.Context) error {
	s.events.Dispatch(event.TypeShellReady, event.ShellReadyData{})
	fmt.Fprintln(s.out, "Enter a command: open, save, saveas, print, close, new. 'help' lists everything.")

	scanner := bufio.NewScanner(s.in)
	for {
		select {
		case <-ctx.Done():
			logger.Infof("Shell: context cancelled, leaving loop")
			s.events.Dispatch(event.TypeShellQuit, event.ShellQuitData{})
			return nil
		default:
		}

		fmt.Fprint(s.out, s.renderPrompt())
		if !scanner.Scan() {
			s.events.Dispatch(event.TypeShellQuit, event.ShellQuitData{})
			if err := scanner.Err(); err != nil {
				return fmt.Errorf("reading input: %w", err)
			}
			fmt.Fprintln(s.out)
			return nil // EOF
		}
		line := scanner.Text()

		quit, handled := s.handleBuiltin(line)
		if quit {
			s.events.Dispatch(event.TypeShellQuit, event.ShellQuitData{})
			return nil
		}
		if handled {
			continue
		}

		s.execute(line)
	}
}

// execute dispatches one input line. Parse failures are printed and the
// loop carries on; only a command that fully executed is recorded.
func (s *Shell) execute(line string) {
	cmd, err := s.registry.Dispatch(s.editor, line)
	if err != nil {
		fmt.Fprintln(s.out, err)
		logger.DebugTagf("shell", "Dispatch failed for %q: %v", line, err)
		return
	}

	cmd.Execute()
	s.history.Push(cmd)
	s.events.Dispatch(event.TypeCommandExecuted, event.CommandExecutedData{Name: cmd.Kind().String()})
	logger.DebugTagf("shell", "Executed %q, history depth %d", cmd.String(), s.history.Len())
}

// renderPrompt prefixes the prompt marker with the current path, width
// trimmed so long paths keep the input column stable.
func (s *Shell) renderPrompt() string {
	if s.promptPath == "" {
		return s.prompt
	}
	return truncatePath(s.promptPath, promptPathWidth) + " " + s.prompt
}

// truncatePath shortens p to at most maxWidth terminal cells, dropping
// leading grapheme clusters and marking the cut with an ellipsis. Widths are
// measured with uniseg so wide and combining characters count correctly.
func truncatePath(p string, maxWidth int) string {
	if uniseg.StringWidth(p) <= maxWidth {
		return p
	}
	rest := p
	for rest != "" && uniseg.StringWidth(rest)+1 > maxWidth {
		_, rest, _, _ = uniseg.FirstGraphemeClusterInString(rest, -1)
	}
	return "…" + rest
}
