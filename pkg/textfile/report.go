package textfile

// FileStatus is the per-file outcome of a batch run.
type FileStatus string

const (
	StatusChanged   FileStatus = "changed"
	StatusUnchanged FileStatus = "unchanged"
	StatusFailed    FileStatus = "failed"
)

// FileResult records the outcome for one file.
type FileResult struct {
	Path   string     `json:"path"`
	Status FileStatus `json:"status"`
	Error  string     `json:"error,omitempty"`
}

// ReportSummary aggregates a run over a batch of files.
type ReportSummary struct {
	Total           int     `json:"total"`
	Changed         int     `json:"changed"`
	Unchanged       int     `json:"unchanged"`
	Failed          int     `json:"failed"`
	CheckMode       bool    `json:"checkMode"`
	DurationSeconds float64 `json:"durationSeconds"`
}

// Report is the machine-readable result of a batch run.
type Report struct {
	Summary ReportSummary `json:"summary"`
	Files   []FileResult  `json:"files"`
}

// Add appends a file result and updates the summary counters.
func (r *Report) Add(res FileResult) {
	r.Files = append(r.Files, res)
	r.Summary.Total++
	switch res.Status {
	case StatusChanged:
		r.Summary.Changed++
	case StatusUnchanged:
		r.Summary.Unchanged++
	case StatusFailed:
		r.Summary.Failed++
	}
}
