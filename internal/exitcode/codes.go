package exitcode

// Exit codes for the datasetd process.
const (
	// Success - clean shutdown
	Success = 0

	// ConfigError - missing or invalid configuration
	// Don't retry: fix the config first
	ConfigError = 1

	// StorageError - storage backend could not be initialized
	// Retry once the backend is reachable
	StorageError = 2

	// ServerError - HTTP server failed to start or shut down cleanly
	ServerError = 3
)
