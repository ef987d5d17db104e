package types

// Analytics summarizes board activity for the admin panel.
type Analytics struct {
	Students           int        `json:"students"`
	Recruiters         int        `json:"recruiters"`
	JobsApproved       int        `json:"jobsApproved"`
	JobsPending        int        `json:"jobsPending"`
	Applications       int        `json:"applications"`
	Shortlisted        int        `json:"shortlisted"`
	ApplicationsPerJob []JobCount `json:"applicationsPerJob"`
}

// JobCount is one bar of the applications-per-job chart.
type JobCount struct {
	JobID string `json:"jobId"`
	Label string `json:"label"`
	Count int    `json:"count"`
}
