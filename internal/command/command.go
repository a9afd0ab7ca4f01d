// Package command implements the reversible editor command set and the
// registry that resolves input lines into command instances.
package command

// Kind identifies a command variant.
type Kind int

const (
	KindUnknown Kind = iota
	KindSave
	KindSaveAs
	KindOpen
	KindPrint
	KindClose
	KindNew
	KindClone
	KindYank
)

// String returns the user-facing command name for the kind.
func (k Kind) String() string {
	switch k {
	case KindSave:
		return "save"
	case KindSaveAs:
		return "saveas"
	case KindOpen:
		return "open"
	case KindPrint:
		return "print"
	case KindClose:
		return "close"
	case KindNew:
		return "new"
	case KindClone:
		return "clone"
	case KindYank:
		return "yank"
	default:
		return "unknown"
	}
}

// Editor is the capability surface commands delegate to. The shell's default
// receiver is a printing stub; a real backend can substitute its own
// implementation as long as these operations cannot fail.
type Editor interface {
	Save()
	SaveAs(newPath string)
	Open(path string)
	Print()
	Close()
	Revert()
	CreateNew()
	CloneRepository(url string)
	Path() string
	SetPath(path string)
}

// Command encapsulates one user-requested operation plus the state needed
// to reverse it. Any state Undo depends on must be captured when the command
// is constructed, before Execute mutates the receiver.
type Command interface {
	Kind() Kind
	Execute()
	Undo()
	String() string
}
