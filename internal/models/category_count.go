package models

// CategoryCount holds the click/order/pay totals of one category observed in
// the matching sessions' detail rows. A count defaults to 0 when the category
// never appeared in that role; categories never observed in any role are
// never materialized.
type CategoryCount struct {
	CategoryID int64 `json:"categoryId"`
	ClickCount int64 `json:"clickCount"`
	OrderCount int64 `json:"orderCount"`
	PayCount   int64 `json:"payCount"`
}
