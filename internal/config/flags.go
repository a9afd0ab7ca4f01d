// internal/config/flags.go
package config

import (
	"flag"
	"fmt"
	"strings"

	"github.com/bethropolis/scribe/internal/logger"
)

// Flags holds values parsed from command-line flags.
// Use pointers to distinguish between unset flags and zero-value flags.
type Flags struct {
	ConfigFilePath  *string
	Version         *bool
	LogLevel        *string
	LogFilePath     *string
	Prompt          *string
	HistoryLimit    *int
	SystemClipboard *bool
	EnableTags      *string
	DisableTags     *string

	fs *flag.FlagSet
}

// DefineFlags registers the command-line flags on fs and associates them
// with the Flags struct fields.
func (f *Flags) DefineFlags(fs *flag.FlagSet) {
	f.fs = fs
	f.ConfigFilePath = fs.String("config", "", fmt.Sprintf("Path to TOML configuration file (default ~/.config/%s/%s)", ConfigDirName, DefaultConfigFileName))
	f.Version = fs.Bool("version", false, "Show version information and exit")
	f.LogLevel = fs.String("loglevel", "", "Log level (debug, info, warn, error) - Overrides config file")
	f.LogFilePath = fs.String("logfile", "", fmt.Sprintf("Path to write log file ('-' for stderr, 'auto' for %s in the config dir) - Overrides config file", DefaultLogFileName))
	f.Prompt = fs.String("prompt", "", "Prompt marker shown before input - Overrides config file")
	f.HistoryLimit = fs.Int("history-limit", -1, "Maximum undo history entries, 0 for unlimited - Overrides config file") // -1 indicates unset
	f.SystemClipboard = fs.Bool("system-clipboard", false, "Mirror the yank register to the system clipboard")
	f.EnableTags = fs.String("log-tags", "", "Comma-separated list of log tags to enable - Overrides config file")
	f.DisableTags = fs.String("log-disable-tags", "", "Comma-separated list of log tags to disable - Overrides config file")
}

// ParseFlags parses the process command line into the Flags struct.
// It returns the remaining non-flag arguments (e.g., the initial file path).
func (f *Flags) ParseFlags() []string {
	f.DefineFlags(flag.CommandLine)
	flag.Parse()
	return flag.Args()
}

// ApplyOverrides updates the Config struct with values from flags *if* they
// were set.
func (f *Flags) ApplyOverrides(cfg *Config) {
	if f.fs == nil {
		return
	}
	// Visit only processes flags that were actually set
	f.fs.Visit(func(fl *flag.Flag) {
		logger.DebugTagf("config", "Applying flag override: %s", fl.Name)
		switch fl.Name {
		case "loglevel":
			if f.LogLevel != nil && *f.LogLevel != "" {
				cfg.Logger.LogLevel = *f.LogLevel
			}
		case "logfile":
			if f.LogFilePath != nil { // Empty string is valid ("-")
				cfg.Logger.LogFilePath = *f.LogFilePath
			}
		case "prompt":
			if f.Prompt != nil && *f.Prompt != "" {
				cfg.Shell.Prompt = *f.Prompt
			}
		case "history-limit":
			if f.HistoryLimit != nil && *f.HistoryLimit >= 0 {
				cfg.Shell.HistoryLimit = *f.HistoryLimit
			}
		case "system-clipboard":
			if f.SystemClipboard != nil {
				cfg.Shell.SystemClipboard = *f.SystemClipboard
			}
		case "log-tags":
			if f.EnableTags != nil && *f.EnableTags != "" {
				cfg.Logger.EnabledTags = splitCommaList(*f.EnableTags)
			}
		case "log-disable-tags":
			if f.DisableTags != nil && *f.DisableTags != "" {
				cfg.Logger.DisabledTags = splitCommaList(*f.DisableTags)
			}
		}
	})
}

// Helper function to split comma-separated list
func splitCommaList(list string) []string {
	if list == "" {
		return nil
	}
	items := strings.Split(list, ",")
	result := make([]string, 0, len(items))
	for _, item := range items {
		trimmed := strings.TrimSpace(item)
		if trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}
