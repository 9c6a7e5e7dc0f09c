package recorder

// RunRecord captures the operational outcome of one analysis run. Scores
// and recommendations are deliberately not persisted; the journal exists
// for monitoring delivery and data coverage.
type RunRecord struct {
	Trigger    string // "DAILY", "WEEKLY", "MANUAL"
	Analyzed   int
	Excluded   int
	DurationMS int64
	Delivered  bool
}

// ExclusionRecord captures one ticker dropped from a run for lack of data.
type ExclusionRecord struct {
	Trigger string
	Ticker  string
	Reason  string
}

// Recorder persists the operational run journal.
type Recorder interface {
	RecordRun(run *RunRecord) error
	RecordExclusion(evt *ExclusionRecord) error
	Close() error
}
