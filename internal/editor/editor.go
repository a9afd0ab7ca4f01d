// Package editor provides the receiver that commands delegate to. The
// operations here are printing stubs: each writes a one-line description of
// the work a real backend would do and always succeeds. Only the current
// path is modeled; there is no content buffer.
package editor

import (
	"fmt"
	"io"
	"os"

	"github.com/bethropolis/scribe/internal/event"
	"github.com/bethropolis/scribe/internal/logger"
)

// Editor holds the single piece of mutable receiver state: the current
// file path.
type Editor struct {
	path   string
	out    io.Writer
	events *event.Manager
}

// New creates an editor writing its operation descriptions to out
// (os.Stdout if nil).
func New(out io.Writer) *Editor {
	if out == nil {
		out = os.Stdout
	}
	return &Editor{out: out}
}

// SetEventManager wires the editor to the event bus so path changes are
// observable.
func (e *Editor) SetEventManager(mgr *event.Manager) {
	e.events = mgr
}

// Path returns the current file path ("" if none).
func (e *Editor) Path() string {
	return e.path
}

// SetPath replaces the current file path without any save or open.
func (e *Editor) SetPath(path string) {
	e.changePath(path)
}

// Save pretends to write the current file to disk.
func (e *Editor) Save() {
	fmt.Fprintf(e.out, "saved %s\n", e.displayName())
}

// SaveAs pretends to write the current file under newPath and makes it the
// current path.
func (e *Editor) SaveAs(newPath string) {
	fmt.Fprintf(e.out, "saved as %s\n", newPath)
	e.changePath(newPath)
}

// Open pretends to load path and makes it the current path.
func (e *Editor) Open(path string) {
	fmt.Fprintf(e.out, "opened %s\n", path)
	e.changePath(path)
}

// Print pretends to print the current file.
func (e *Editor) Print() {
	fmt.Fprintf(e.out, "printing %s\n", e.displayName())
}

// Close pretends to close the current file. The path is kept so a later
// reopen knows what to open.
func (e *Editor) Close() {
	fmt.Fprintf(e.out, "closed %s\n", e.displayName())
}

// Revert pretends to roll back the last change to the current file.
func (e *Editor) Revert() {
	fmt.Fprintf(e.out, "reverted last change to %s\n", e.displayName())
}

// CreateNew pretends to create a fresh, unnamed buffer. The current path is
// kept untouched.
func (e *Editor) CreateNew() {
	fmt.Fprintln(e.out, "created new file")
}

// CloneRepository pretends to clone the repository at url.
func (e *Editor) CloneRepository(url string) {
	fmt.Fprintf(e.out, "cloned %s\n", url)
}

func (e *Editor) changePath(path string) {
	if path == e.path {
		return
	}
	old := e.path
	e.path = path
	logger.DebugTagf("editor", "Path changed: %q -> %q", old, path)
	if e.events != nil {
		e.events.Dispatch(event.TypePathChanged, event.PathChangedData{OldPath: old, NewPath: path})
	}
}

func (e *Editor) displayName() string {
	if e.path == "" {
		return "[No Name]"
	}
	return e.path
}
