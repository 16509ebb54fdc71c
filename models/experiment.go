package models

// ExperimentsResponse lists every experiment known to the server.
type ExperimentsResponse struct {
	ExpIDs []string `json:"exp_ids"`
}

// ExperimentResponse lists the runs of a single experiment.
type ExperimentResponse struct {
	ExpID  string   `json:"exp_id"`
	RunIDs []string `json:"run_ids"`
}
