package models

// Operation identifies a single path+method operation in an OpenAPI document.
type Operation struct {
	Path        string
	Method      string
	OperationID string
	Tags        []string
	Deprecated  bool
}
