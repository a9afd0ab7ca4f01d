package command

import (
	"errors"
	"fmt"
	"strings"

	orderedmap "github.com/wk8/go-ordered-map"
)

// ErrEmptyInput is returned when a dispatched line contains no tokens.
var ErrEmptyInput = errors.New("empty input")

// UnknownCommandError reports a command name missing from the registry.
type UnknownCommandError struct {
	Name string
}

func (e *UnknownCommandError) Error() string {
	return fmt.Sprintf("unrecognized command: %s", e.Name)
}

// MissingArgumentError reports a command invoked without its required argument.
type MissingArgumentError struct {
	Command string
	Arg     string
}

func (e *MissingArgumentError) Error() string {
	return fmt.Sprintf("missing argument: %s", e.Arg)
}

// Constructor builds a command bound to the receiver from positional
// arguments. Constructors may read receiver state but must not mutate it.
type Constructor func(ed Editor, args []string) Command

// Entry describes one registered command for listings.
type Entry struct {
	Name string
	Arg  string // required argument name, "" if none
	Info string
}

type registration struct {
	arg   string
	info  string
	build Constructor
}

// Registry maps command names to constructors, preserving registration
// order for listings.
type Registry struct {
	cmds *orderedmap.OrderedMap
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{cmds: orderedmap.New()}
}

// Register adds a named command. arg names the required positional argument
// ("" for none). Registering a duplicate or empty name is an error.
func (r *Registry) Register(name, arg, info string, build Constructor) error {
	if name == "" {
		return errors.New("cannot register command with empty name")
	}
	if build == nil {
		return fmt.Errorf("cannot register command '%s' with nil constructor", name)
	}
	if _, exists := r.cmds.Get(name); exists {
		return fmt.Errorf("command '%s' already registered", name)
	}
	r.cmds.Set(name, registration{arg: arg, info: info, build: build})
	return nil
}

// Entries returns the registered commands in registration order.
func (r *Registry) Entries() []Entry {
	entries := make([]Entry, 0, r.cmds.Len())
	for pair := r.cmds.Oldest(); pair != nil; pair = pair.Next() {
		sp := pair.Value.(registration)
		entries = append(entries, Entry{Name: pair.Key.(string), Arg: sp.arg, Info: sp.info})
	}
	return entries
}

// Dispatch tokenizes line and resolves it to a command bound to ed.
// It is a pure parse: the only receiver access is the read a constructor
// performs (the saveas old-path snapshot). Tokens beyond the first argument
// are ignored.
func (r *Registry) Dispatch(ed Editor, line string) (Command, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil, ErrEmptyInput
	}

	name := fields[0]
	args := fields[1:]

	v, exists := r.cmds.Get(name)
	if !exists {
		return nil, &UnknownCommandError{Name: name}
	}
	sp := v.(registration)

	if sp.arg != "" && len(args) == 0 {
		return nil, &MissingArgumentError{Command: name, Arg: sp.arg}
	}

	return sp.build(ed, args), nil
}

// DefaultRegistry returns a registry with the built-in editor vocabulary.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	must := func(err error) {
		if err != nil {
			// Registration of the fixed vocabulary cannot collide.
			panic(err)
		}
	}
	must(r.Register("save", "", "save the current file", func(ed Editor, args []string) Command {
		return NewSaveCommand(ed)
	}))
	must(r.Register("saveas", "newpath", "save the current file under a new path", func(ed Editor, args []string) Command {
		return NewSaveAsCommand(ed, args[0])
	}))
	must(r.Register("open", "filepath", "open a file", func(ed Editor, args []string) Command {
		return NewOpenCommand(ed, args[0])
	}))
	must(r.Register("print", "", "print the current file", func(ed Editor, args []string) Command {
		return NewPrintCommand(ed)
	}))
	must(r.Register("close", "", "close the current file", func(ed Editor, args []string) Command {
		return NewCloseCommand(ed)
	}))
	must(r.Register("new", "", "create a new file", func(ed Editor, args []string) Command {
		return NewNewFileCommand(ed)
	}))
	must(r.Register("clone", "url", "clone a repository", func(ed Editor, args []string) Command {
		return NewCloneCommand(ed, args[0])
	}))
	return r
}
