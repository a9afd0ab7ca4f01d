// cmd/scribe/main.go
package main

import (
	"context"
	"fmt"
	"io"
	stlog "log" // Standard log for fatal errors before the logger is ready
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/bethropolis/scribe/internal/clipboard"
	"github.com/bethropolis/scribe/internal/config"
	"github.com/bethropolis/scribe/internal/editor"
	"github.com/bethropolis/scribe/internal/event"
	"github.com/bethropolis/scribe/internal/history"
	"github.com/bethropolis/scribe/internal/logger"
	"github.com/bethropolis/scribe/internal/shell"
)

var version = "0.1.0"

func main() {
	// --- Argument & Flag Parsing ---
	flags := &config.Flags{}
	args := flags.ParseFlags()

	if flags.Version != nil && *flags.Version {
		fmt.Printf("%s %s\n", config.AppName, version)
		os.Exit(0)
	}

	cfg, err := config.LoadConfig(*flags.ConfigFilePath, flags)
	if err != nil {
		stlog.Fatalf("Failed to load configuration: %v", err)
	}

	// --- Logger Initialization ---
	var logOutput io.Writer // nil discards
	switch cfg.Logger.LogFilePath {
	case "":
	case "-":
		logOutput = os.Stderr
	case "auto":
		configDir, err := os.UserConfigDir()
		if err != nil {
			stlog.Fatalf("Cannot resolve default log location: %v", err)
		}
		logDir := filepath.Join(configDir, config.ConfigDirName)
		if err := os.MkdirAll(logDir, 0o755); err != nil {
			stlog.Fatalf("Cannot create log directory '%s': %v", logDir, err)
		}
		cfg.Logger.LogFilePath = filepath.Join(logDir, config.DefaultLogFileName)
		fallthrough
	default:
		logFile, err := os.OpenFile(cfg.Logger.LogFilePath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
		if err != nil {
			stlog.Fatalf("Failed to open log file '%s': %v", cfg.Logger.LogFilePath, err)
		}
		defer logFile.Close()
		logOutput = logFile
	}
	logger.Init(cfg.Logger, logOutput)

	logger.Infof("Starting %s %s...", config.AppName, version)

	// --- Assemble Components ---
	events := event.NewManager()

	ed := editor.New(os.Stdout)
	ed.SetEventManager(events)

	hist := history.NewStack(cfg.Shell.HistoryLimit)
	clip := clipboard.NewManager(cfg.Shell.SystemClipboard)

	// Audit trail of executed and undone commands in the log.
	events.Subscribe(event.TypeCommandExecuted, func(e event.Event) bool {
		if data, ok := e.Data.(event.CommandExecutedData); ok {
			logger.InfoTagf("audit", "executed %s", data.Name)
		}
		return false
	})
	events.Subscribe(event.TypeCommandUndone, func(e event.Event) bool {
		if data, ok := e.Data.(event.CommandUndoneData); ok {
			logger.InfoTagf("audit", "undone %s", data.Name)
		}
		return false
	})

	sh := shell.New(shell.Config{
		Editor:    ed,
		History:   hist,
		Events:    events,
		Clipboard: clip,
		Prompt:    cfg.Shell.Prompt,
	})

	// An initial file argument is opened before the loop starts; it is not
	// a dispatched command, so it is not recorded on the history.
	if len(args) > 0 {
		ed.Open(args[0])
	}

	// --- Run ---
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := sh.Run(ctx); err != nil {
		logger.Fatalf("Shell exited with error: %v", err)
	}

	logger.Infof("%s finished.", config.AppName)
}
