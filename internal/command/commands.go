package command

import "fmt"

// SaveCommand saves the current buffer. Undo delegates to the receiver's
// revert operation.
type SaveCommand struct {
	editor Editor
}

// NewSaveCommand binds a save command to the receiver.
func NewSaveCommand(ed Editor) *SaveCommand {
	return &SaveCommand{editor: ed}
}

func (c *SaveCommand) Kind() Kind { return KindSave }
func (c *SaveCommand) Execute() { c.editor.Save() }
func (c *SaveCommand) Undo() { c.editor.Revert() }
func (c *SaveCommand) String() string { return "save" }

// SaveAsCommand saves under a new path. The previous path is captured at
// construction time, before Execute changes it; Undo restores the path field
// only and does not re-invoke save.
type SaveAsCommand struct {
	editor  Editor
	newPath string
	oldPath string
}

// NewSaveAsCommand binds a saveas command, snapshotting the receiver's
// current path for later reversal.
func NewSaveAsCommand(ed Editor, newPath string) *SaveAsCommand {
	return &SaveAsCommand{editor: ed, newPath: newPath, oldPath: ed.Path()}
}

func (c *SaveAsCommand) Kind() Kind { return KindSaveAs }
func (c *SaveAsCommand) Execute() { c.editor.SaveAs(c.newPath) }
func (c *SaveAsCommand) Undo() { c.editor.SetPath(c.oldPath) }

// NewPath returns the destination path the command saves to.
func (c *SaveAsCommand) NewPath() string { return c.newPath }

// OldPath returns the path snapshot taken at construction.
func (c *SaveAsCommand) OldPath() string { return c.oldPath }

func (c *SaveAsCommand) String() string { return fmt.Sprintf("saveas %s", c.newPath) }

// OpenCommand opens a file. Undo closes it.
type OpenCommand struct {
	editor Editor
	path   string
}

// NewOpenCommand binds an open command to the given path.
func NewOpenCommand(ed Editor, path string) *OpenCommand {
	return &OpenCommand{editor: ed, path: path}
}

func (c *OpenCommand) Kind() Kind { return KindOpen }
func (c *OpenCommand) Execute() { c.editor.Open(c.path) }
func (c *OpenCommand) Undo() { c.editor.Close() }

// TargetPath returns the path the command opens.
func (c *OpenCommand) TargetPath() string { return c.path }

func (c *OpenCommand) String() string { return fmt.Sprintf("open %s", c.path) }

// PrintCommand prints the current buffer. It has nothing to reverse.
type PrintCommand struct {
	editor Editor
}

// NewPrintCommand binds a print command to the receiver.
func NewPrintCommand(ed Editor) *PrintCommand {
	return &PrintCommand{editor: ed}
}

func (c *PrintCommand) Kind() Kind { return KindPrint }
func (c *PrintCommand) Execute() { c.editor.Print() }
func (c *PrintCommand) Undo() {}
func (c *PrintCommand) String() string { return "print" }

// CloseCommand closes the current file. Undo reopens whatever path the
// receiver reports at undo time, not the path that was open at close time;
// if the path changed in between, undo reopens the newer one.
type CloseCommand struct {
	editor Editor
}

// NewCloseCommand binds a close command to the receiver.
func NewCloseCommand(ed Editor) *CloseCommand {
	return &CloseCommand{editor: ed}
}

func (c *CloseCommand) Kind() Kind { return KindClose }
func (c *CloseCommand) Execute() { c.editor.Close() }
func (c *CloseCommand) Undo() { c.editor.Open(c.editor.Path()) }
func (c *CloseCommand) String() string { return "close" }

// NewFileCommand creates a fresh buffer. Undo closes it.
type NewFileCommand struct {
	editor Editor
}

// NewNewFileCommand binds a new-file command to the receiver.
func NewNewFileCommand(ed Editor) *NewFileCommand {
	return &NewFileCommand{editor: ed}
}

func (c *NewFileCommand) Kind() Kind { return KindNew }
func (c *NewFileCommand) Execute() { c.editor.CreateNew() }
func (c *NewFileCommand) Undo() { c.editor.Close() }
func (c *NewFileCommand) String() string { return "new" }

// CloneCommand clones a repository. Undo closes the working file.
type CloneCommand struct {
	editor Editor
	url    string
}

// NewCloneCommand binds a clone command to the given repository URL.
func NewCloneCommand(ed Editor, url string) *CloneCommand {
	return &CloneCommand{editor: ed, url: url}
}

func (c *CloneCommand) Kind() Kind { return KindClone }
func (c *CloneCommand) Execute() { c.editor.CloneRepository(c.url) }
func (c *CloneCommand) Undo() { c.editor.Close() }

// URL returns the repository URL the command clones.
func (c *CloneCommand) URL() string { return c.url }

func (c *CloneCommand) String() string { return fmt.Sprintf("clone %s", c.url) }
