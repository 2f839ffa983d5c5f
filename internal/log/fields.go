package log

// Common field names for structured logging.
const (
	FieldComponent  = "component"
	FieldRequestID  = "request_id"
	FieldMethod     = "method"
	FieldPath       = "path"
	FieldStatusCode = "status_code"
	FieldDuration   = "duration_ms"
	FieldError      = "error"
	FieldOwner      = "owner"
	FieldTxID       = "transaction_id"
	FieldCategory   = "category"
	FieldAmount     = "amount_cents"
)

// Standard component names.
const (
	ComponentApp        = "app"
	ComponentHTTP       = "http"
	ComponentStorage    = "storage"
	ComponentDashboard  = "dashboard"
	ComponentBulk       = "bulk"
	ComponentPrefs      = "prefs"
	ComponentVisibility = "visibility"
)
