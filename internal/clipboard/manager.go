// Package clipboard manages the yank register, optionally mirrored to the
// system clipboard.
package clipboard

import (
	"github.com/atotto/clipboard"

	"github.com/bethropolis/scribe/internal/logger"
)

// Manager holds an internal register and, when enabled, keeps the system
// clipboard in sync with it. System clipboard failures degrade to the
// internal register rather than failing the operation.
type Manager struct {
	system   bool
	register string
}

// NewManager creates a clipboard manager. system enables the OS clipboard
// passthrough.
func NewManager(system bool) *Manager {
	return &Manager{system: system}
}

// Write stores text in the register and mirrors it to the system clipboard
// when enabled.
func (m *Manager) Write(text string) {
	m.register = text
	if m.system {
		if err := clipboard.WriteAll(text); err != nil {
			logger.Warnf("Clipboard: system write failed, keeping internal register: %v", err)
		}
	}
	logger.DebugTagf("clipboard", "Wrote %d bytes to register", len(text))
}

// Read returns the register contents. When the system clipboard is enabled
// it is the source of truth, so edits made outside the shell are seen.
func (m *Manager) Read() string {
	if m.system {
		if text, err := clipboard.ReadAll(); err == nil {
			return text
		} else {
			logger.Warnf("Clipboard: system read failed, falling back to internal register: %v", err)
		}
	}
	return m.register
}
