package metrics

// Common metric attribute keys to keep telemetry consistent/searchable.
const (
	AttrMethod    = "method"
	AttrPath      = "path"
	AttrStatus    = "status"
	AttrProvider  = "provider"
	AttrEndpoint  = "endpoint"
	AttrOutcome   = "outcome"
	AttrComponent = "component"
	AttrPolicy    = "policy"
	AttrErrorKind = "error_kind"
)
