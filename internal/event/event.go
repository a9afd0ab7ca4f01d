// internal/event/event.go
package event

// Type identifies the kind of event.
type Type int

// Define specific event types.
const (
	TypeUnknown Type = iota

	TypeCommandExecuted // Fired after a command was executed and recorded
	TypeCommandUndone   // Fired after a command was popped and undone
	TypePathChanged     // Fired when the editor's current path changes
	TypeHistoryTrimmed  // Fired when the history stack evicts old entries

	TypeShellReady // Fired when the shell enters its read loop
	TypeShellQuit  // Fired just before the shell loop returns
)

// Event is the structure passed through the event bus.
type Event struct {
	Type Type        // The kind of event
	Data interface{} // Payload carrying event-specific data
}

// --- Specific Event Data Structures ---

// CommandExecutedData carries the name of the executed command.
type CommandExecutedData struct {
	Name string
}

// CommandUndoneData carries the name of the undone command.
type CommandUndoneData struct {
	Name string
}

// PathChangedData carries the path transition on the editor.
type PathChangedData struct {
	OldPath string
	NewPath string
}

// HistoryTrimmedData carries how many entries were evicted.
type HistoryTrimmedData struct {
	Dropped int
}

// ShellReadyData could carry initial state later.
type ShellReadyData struct{}

// ShellQuitData could carry an exit reason later.
type ShellQuitData struct{}
