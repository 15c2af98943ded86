package models

import "time"

const (
	// DateLayout is the day granularity used by task date ranges and warehouse partitions.
	DateLayout = "2006-01-02"
	// TimeLayout is the second granularity carried by action records and session start times.
	TimeLayout = "2006-01-02 15:04:05"
)

// ActionRecord is one logged user interaction, read-only once sourced from the
// warehouse. Exactly one of SearchKeyword and the click fields is populated per
// record; the order/pay fields are independently optional. Optional ids are nil
// pointers, optional comma-joined id lists are empty strings.
type ActionRecord struct {
	Date             string `json:"date"`
	UserID           int64  `json:"userId"`
	SessionID        string `json:"sessionId"`
	PageID           int64  `json:"pageId"`
	ActionTime       string `json:"actionTime"`
	SearchKeyword    string `json:"searchKeyword,omitempty"`
	ClickCategoryID  *int64 `json:"clickCategoryId,omitempty"`
	ClickProductID   *int64 `json:"clickProductId,omitempty"`
	OrderCategoryIDs string `json:"orderCategoryIds,omitempty"`
	OrderProductIDs  string `json:"orderProductIds,omitempty"`
	PayCategoryIDs   string `json:"payCategoryIds,omitempty"`
	PayProductIDs    string `json:"payProductIds,omitempty"`
}

// ParseActionTime parses a second-granularity action timestamp.
func ParseActionTime(value string) (time.Time, error) {
	return time.Parse(TimeLayout, value)
}
