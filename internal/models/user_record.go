package models

// UserRecord holds the demographic attributes joined onto session aggregates.
// A session belongs to exactly one user.
type UserRecord struct {
	UserID       int64  `json:"userId"`
	Username     string `json:"username"`
	Name         string `json:"name"`
	Age          int    `json:"age"`
	Professional string `json:"professional"`
	City         string `json:"city"`
	Sex          string `json:"sex"`
}
