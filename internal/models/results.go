package models

// Output-only projections written to the persistence sinks. They have no
// in-process lifecycle beyond construction.

// SessionDetail is one original action row of a selected session.
type SessionDetail struct {
	TaskID           int64
	UserID           int64
	SessionID        string
	PageID           int64
	ActionTime       string
	SearchKeyword    string
	ClickCategoryID  *int64
	ClickProductID   *int64
	OrderCategoryIDs string
	OrderProductIDs  string
	PayCategoryIDs   string
	PayProductIDs    string
}

// SessionDetailFromAction projects one action row into a detail record.
func SessionDetailFromAction(taskID int64, action *ActionRecord) *SessionDetail {
	return &SessionDetail{
		TaskID:           taskID,
		UserID:           action.UserID,
		SessionID:        action.SessionID,
		PageID:           action.PageID,
		ActionTime:       action.ActionTime,
		SearchKeyword:    action.SearchKeyword,
		ClickCategoryID:  action.ClickCategoryID,
		ClickProductID:   action.ClickProductID,
		OrderCategoryIDs: action.OrderCategoryIDs,
		OrderProductIDs:  action.OrderProductIDs,
		PayCategoryIDs:   action.PayCategoryIDs,
		PayProductIDs:    action.PayProductIDs,
	}
}

// SessionRandomExtract is one session picked by the stratified sampler.
type SessionRandomExtract struct {
	TaskID           int64
	SessionID        string
	StartTime        string
	SearchKeywords   string
	ClickCategoryIDs string
}

// SessionAggrStat is the bucketed statistics record of one run. Each ratio is
// the bucket count divided by the total, rounded half-up to 2 decimal places.
type SessionAggrStat struct {
	TaskID       int64
	SessionCount int64

	VisitLength1s3sRatio   float64
	VisitLength4s6sRatio   float64
	VisitLength7s9sRatio   float64
	VisitLength10s30sRatio float64
	VisitLength30s60sRatio float64
	VisitLength1m3mRatio   float64
	VisitLength3m10mRatio  float64
	VisitLength10m30mRatio float64
	VisitLength30mRatio    float64

	StepLength13Ratio   float64
	StepLength46Ratio   float64
	StepLength79Ratio   float64
	StepLength1030Ratio float64
	StepLength3060Ratio float64
	StepLength60Ratio   float64
}

// TopCategory is one of the 10 most engaged categories of a run.
type TopCategory struct {
	TaskID     int64
	CategoryID int64
	ClickCount int64
	OrderCount int64
	PayCount   int64
}

// TopSession is one of the most active sessions of a top category.
type TopSession struct {
	TaskID     int64
	CategoryID int64
	SessionID  string
	ClickCount int64
}
