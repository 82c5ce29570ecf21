package log

const (
	ModeProduction  = "production"
	ModeDevelopment = "debug"

	EncodingJSON    = "json"
	EncodingConsole = "console"
)

// RequestIDKey is the context key under which delivery layers store a request id.
type RequestIDKey struct{}
