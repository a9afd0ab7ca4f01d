package config

// Base application details
const AppName = "scribe"
const ConfigDirName = "scribe"
const DefaultConfigFileName = "config.toml" // Main config file
const DefaultLogFileName = "scribe.log"

// Shell behavior
const DefaultPrompt = "> "
const DefaultHistoryLimit = 100
const SystemClipboard = false
