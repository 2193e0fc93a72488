package handler

// Request/response schema types for the analyzer endpoints. Responses reuse
// the domain artifact types directly; their JSON tags are the wire contract
// the model is prompted to fill.

// auditReportRequest is the shared body of every analyzer endpoint. The
// report text must be present and non-empty; enforced before any model call.
type auditReportRequest struct {
	AuditReport string `json:"auditReport"`
}

// parseFailureResponse is returned when the model's reply, after code-fence
// stripping, is not valid JSON. Raw carries the cleaned text verbatim for
// diagnosis.
type parseFailureResponse struct {
	Error string `json:"error"`
	Raw   string `json:"raw"`
}

// uploadResponse carries the extracted plain text back to the client, which
// owns it from here on.
type uploadResponse struct {
	Text string `json:"text"`
}
