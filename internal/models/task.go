package models

// Task mirrors one row of the external task table. TaskParam carries the
// filter criteria as raw JSON, decoded separately into TaskParams.
type Task struct {
	TaskID     int64  `json:"taskId"`
	TaskName   string `json:"taskName"`
	CreateTime string `json:"createTime"`
	StartTime  string `json:"startTime"`
	FinishTime string `json:"finishTime"`
	TaskType   string `json:"taskType"`
	TaskStatus string `json:"taskStatus"`
	TaskParam  string `json:"taskParam"`
}

// TaskParams is the decoded filter parameter set. Only the date range is
// required; every other criterion is optional and its absence means
// "no constraint".
type TaskParams struct {
	StartDate     string   `json:"startDate" validate:"required,datetime=2006-01-02"`
	EndDate       string   `json:"endDate" validate:"required,datetime=2006-01-02"`
	StartAge      *int     `json:"startAge,omitempty" validate:"omitempty,min=0"`
	EndAge        *int     `json:"endAge,omitempty" validate:"omitempty,min=0"`
	Professionals []string `json:"professionals,omitempty"`
	Cities        []string `json:"cities,omitempty"`
	Sex           string   `json:"sex,omitempty"`
	Keywords      []string `json:"keywords,omitempty"`
	CategoryIDs   []int64  `json:"categoryIds,omitempty"`
}
