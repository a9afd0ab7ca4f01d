package shell

import (
	"github.com/bethropolis/scribe/internal/clipboard"
	"github.com/bethropolis/scribe/internal/command"
)

// yankCommand copies the receiver's current path into the clipboard
// register. The previous register contents are captured at construction so
// undo can restore them.
type yankCommand struct {
	editor command.Editor
	clip   *clipboard.Manager
	prev   string
}

func newYankCommand(ed command.Editor, clip *clipboard.Manager) *yankCommand {
	return &yankCommand{editor: ed, clip: clip, prev: clip.Read()}
}

func (c *yankCommand) Kind() command.Kind { return command.KindYank }
func (c *yankCommand) Execute() { c.clip.Write(c.editor.Path()) }
func (c *yankCommand) Undo() { c.clip.Write(c.prev) }
func (c *yankCommand) String() string { return "yank" }
