package config

const (
	DefaultHost        = "0.0.0.0"
	DefaultPort        = 8000
	DefaultEnvironment = "development"
	DefaultAPIPrefix   = "/api/v1"
	DefaultLogLevel    = "info"

	// DefaultTransport is how the MCP server talks to the agent.
	// "stdio" is the usual attachment mode; "http" serves SSE; "both" runs
	// the two side by side.
	DefaultTransport = "stdio"

	DefaultRateLimitPerMinute = 60

	DefaultCORSMaxAge = 300
)

var DefaultCORSOrigins = []string{
	"http://localhost:3000",
	"http://localhost:8080",
}

// DefaultAllowedExtensions are the file extensions the path validator
// accepts for presentation files.
var DefaultAllowedExtensions = []string{".pptx"}
