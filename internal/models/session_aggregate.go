package models

// SessionAggregate is the derived per-session summary: one per distinct
// session id inside the analyzed date range, created once by the aggregator
// and never mutated afterwards.
//
// SearchKeywords and ClickCategoryIDs are comma-joined, deduplicated,
// first-seen order preserved. VisitLength is last action time minus first
// action time in whole seconds; StepLength is the action count, so
// VisitLength >= 0 and StepLength >= 1 always hold.
type SessionAggregate struct {
	SessionID        string `json:"sessionId"`
	SearchKeywords   string `json:"searchKeywords"`
	ClickCategoryIDs string `json:"clickCategoryIds"`
	VisitLength      int64  `json:"visitLength"`
	StepLength       int64  `json:"stepLength"`
	StartTime        string `json:"startTime"`

	Age          int    `json:"age"`
	Professional string `json:"professional"`
	City         string `json:"city"`
	Sex          string `json:"sex"`
}
