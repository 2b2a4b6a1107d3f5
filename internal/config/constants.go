package config

const (
	// Log Defaults
	DefaultLogLevel      = "info"
	DefaultLogFormat     = "console"
	DefaultLogFile       = ""
	DefaultMaxLogSizeMB  = 100
	DefaultMaxLogBackups = 3

	// HTTP Client Defaults
	DefaultHTTPTimeoutSecs      = 30
	DefaultHTTPMaxRedirects     = 5
	DefaultHTTPMaxErrorBodySize = 1024

	// ConfigPathEnv names the environment variable consulted by GetConfigPath.
	ConfigPathEnv = "DISCORDHOOK_CONFIG_PATH"

	maxConfigFileSize = 10 * 1024 * 1024
)
