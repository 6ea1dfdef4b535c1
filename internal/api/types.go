package api

type UpdateRequest struct {
	Content string `json:"content"`
}

type UpdateResponse struct {
	Message string `json:"message"`
	Commit  string `json:"commit,omitempty"`
}

// WebhookEvent is the subset of a GitHub workflow_run event the relay cares
// about. All other payload fields are ignored.
type WebhookEvent struct {
	Action      string       `json:"action"`
	WorkflowRun *WorkflowRun `json:"workflow_run"`
}

type WorkflowRun struct {
	Name       string `json:"name"`
	Status     string `json:"status"`
	Conclusion string `json:"conclusion"`
	HeadSHA    string `json:"head_sha"`
}

// RunSummary relays a completed workflow run. The fields are copied verbatim
// from the payload; the relay does not interpret them.
type RunSummary struct {
	Workflow   string `json:"workflow"`
	Status     string `json:"status"`
	Conclusion string `json:"conclusion"`
	Commit     string `json:"commit"`
}

type ignoredResponse struct {
	Message string `json:"message"`
}

type errorResponse struct {
	Error string `json:"error"`
}
