package observability

// Logger interface for operational messages, warnings, and error reporting.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

// Log attribute keys shared by all components.
const (
	LogAttrVehicleID = "vehicle_id"
	LogAttrKind      = "kind"
	LogAttrRegion    = "region"
	LogAttrTitle     = "title"
	LogAttrAuthor    = "author"
	LogAttrYear      = "year"
	LogAttrCount     = "count"
	LogAttrError     = "error"
)
