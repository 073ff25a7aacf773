package debug

// Snapshot is what we expose over /_debug/aggregator.
// MUST NOT put secrets here (e.g., tokens, cookie values).
type Snapshot struct {
	Mode       string         `json:"mode"`    // "debug" or "production"
	Queries    []string       `json:"queries"` // configured search queries
	Aggregator AggregatorView `json:"aggregator"`
}

// AggregatorView summarizes aggregation runs since process start.
type AggregatorView struct {
	Concurrency        int   `json:"concurrency"`
	Runs               int64 `json:"runs"`
	Failures           int64 `json:"failures"`
	LastDurationMillis int64 `json:"lastDurationMillis"`
	LastResultSize     int64 `json:"lastResultSize"`
}
