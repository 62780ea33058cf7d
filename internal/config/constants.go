package config

const (
	// ConfigPathEnvVar names the environment variable holding a config path
	ConfigPathEnvVar = "SIFTVIEW_CONFIG_PATH"

	// MaxConfigFileSize bounds the size of a config file
	MaxConfigFileSize = 1024 * 1024

	// Log Defaults
	DefaultLogLevel      = "info"
	DefaultLogFormat     = "console"
	DefaultLogFile       = ""
	DefaultMaxLogSizeMB  = 100
	DefaultMaxLogBackups = 3

	// Storage Defaults
	DefaultStorageReadTimeoutSecs  = 30
	DefaultStorageWriteTimeoutSecs = 30
	DefaultStorageCreateDirs       = false
	DefaultStorageBufferSizeKB     = 64

	// Diff Defaults
	DefaultDiffContextLines = 3
)

// defaultConfigFiles are searched, in order, in the working directory and
// then next to the executable.
var defaultConfigFiles = []string{"siftview.yaml", "siftview.yml", "siftview.json"}
