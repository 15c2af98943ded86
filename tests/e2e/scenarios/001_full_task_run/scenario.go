package main

import (
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// ### Start - fixed configs (no change)
// These values define deterministic test data generation and must match expected results.
// DO NOT MODIFY: Changing these will break the test's deterministic behavior.
const (
	numDays         = 2  // Distinct days of action data
	sessionsPerHour = 6  // Sessions generated per day-hour bucket
	hoursPerDay     = 4  // Day-hour buckets per day (10:00 to 13:00)
	actionsPerSess  = 5  // Actions per generated session
	numUsers        = 12 // Demographic records; sessions cycle through them
)

var (
	dates         = []string{"2019-02-26", "2019-02-27"}
	cities        = []string{"hanoi", "saigon", "danang"}
	professionals = []string{"engineer", "teacher", "doctor"}
	keywords      = []string{"phone", "laptop", "tablet"}
)

// ### End - fixed configs

type actionRecord struct {
	Date            string `json:"date"`
	UserID          int64  `json:"userId"`
	SessionID       string `json:"sessionId"`
	PageID          int64  `json:"pageId"`
	ActionTime      string `json:"actionTime"`
	SearchKeyword   string `json:"searchKeyword,omitempty"`
	ClickCategoryID *int64 `json:"clickCategoryId,omitempty"`
}

type userRecord struct {
	UserID       int64  `json:"userId"`
	Username     string `json:"username"`
	Name         string `json:"name"`
	Age          int    `json:"age"`
	Professional string `json:"professional"`
	City         string `json:"city"`
	Sex          string `json:"sex"`
}

type task struct {
	TaskID    int64  `json:"taskId"`
	TaskName  string `json:"taskName"`
	TaskParam string `json:"taskParam"`
}

// main runs the e2e scenario: 001_full_task_run
//
// This scenario seeds the warehouse with deterministic action, user and task
// fixtures, then triggers one full analysis run against a running server.
//
// What it tests:
//   - Task lookup and parameter validation from the warehouse
//   - Session aggregation over a two-day action window
//   - Filtering with a city criterion and statistics accumulation
//   - Stratified extraction across both days' hour buckets
//   - Category ranking and top-session selection over the matched details
//   - The matched-session snapshot written back to the warehouse
//
// Expected results:
//   - POST /tasks/1/run returns 200
//   - snapshots/1.aggr exists and holds one encoded line per matched session
//     (sessions of users in hanoi or saigon: 2/3 of all generated sessions)
func main() {
	// these configs can be changed to run the scenario
	baseURL := "http://localhost:8080" // Base URL of the analytics server
	warehouseDir := "./data/warehouse" // Warehouse directory path relative to project root
	wantCleanWarehouse := true         // If true, clean up the warehouse directory before seeding

	projectRoot, err := os.Getwd()
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: Failed to get current working directory: %v\n", err)
		os.Exit(1)
	}
	for i := 0; i < 10; i++ {
		if _, err := os.Stat(filepath.Join(projectRoot, "go.mod")); err == nil {
			break
		}
		parent := filepath.Dir(projectRoot)
		if parent == projectRoot {
			fmt.Fprintf(os.Stderr, "ERROR: Could not find go.mod file. Run from inside the project tree\n")
			os.Exit(1)
		}
		projectRoot = parent
	}
	warehousePath, err := filepath.Abs(filepath.Join(projectRoot, warehouseDir))
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: Failed to resolve warehouse path: %v\n", err)
		os.Exit(1)
	}

	if wantCleanWarehouse {
		fmt.Printf("Cleaning warehouse directory: %s\n", warehousePath)
		if err := os.RemoveAll(warehousePath); err != nil {
			fmt.Fprintf(os.Stderr, "WARNING: Failed to clean warehouse directory: %v\n", err)
		}
	}

	fmt.Println("Starting e2e scenario: 001_full_task_run")
	fmt.Printf("BASE_URL: %s\n", baseURL)
	fmt.Printf("WAREHOUSE_PATH: %s\n", warehousePath)
	fmt.Println()

	totalSessions := numDays * hoursPerDay * sessionsPerHour
	fmt.Printf("Seeding %d sessions (%d actions) across %d days...\n",
		totalSessions, totalSessions*actionsPerSess, numDays)
	if err := seedWarehouse(warehousePath); err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: Failed to seed warehouse: %v\n", err)
		os.Exit(1)
	}
	fmt.Println("Warehouse seeded")
	fmt.Println()

	fmt.Println("Triggering analysis run for task 1...")
	client := &http.Client{Timeout: 5 * time.Minute}
	resp, err := client.Post(baseURL+"/tasks/1/run", "application/json", nil)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: HTTP request failed: %v\n", err)
		os.Exit(1)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		fmt.Fprintf(os.Stderr, "ERROR: Run failed with HTTP %d\n", resp.StatusCode)
		os.Exit(1)
	}
	fmt.Println("Run completed (status 200)")
	fmt.Println()

	// Two of three cities pass the filter; users cycle through cities evenly.
	wantMatched := totalSessions * 2 / 3
	snapshot, err := os.ReadFile(filepath.Join(warehousePath, "snapshots", "1.aggr"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: Failed to read matched-session snapshot: %v\n", err)
		os.Exit(1)
	}
	gotMatched := len(strings.Split(strings.TrimRight(string(snapshot), "\n"), "\n"))

	fmt.Println("=== Statistics ===")
	fmt.Printf("Sessions generated: %d\n", totalSessions)
	fmt.Printf("Sessions matched (snapshot): %d\n", gotMatched)
	fmt.Printf("Sessions matched (expected): %d\n", wantMatched)
	if gotMatched != wantMatched {
		fmt.Fprintf(os.Stderr, "ERROR: Snapshot session count mismatch\n")
		os.Exit(1)
	}
	fmt.Println("Scenario completed successfully")
}

func seedWarehouse(warehousePath string) error {
	users := make([]userRecord, numUsers)
	for i := range users {
		users[i] = userRecord{
			UserID:       int64(i + 1),
			Username:     fmt.Sprintf("user%d", i+1),
			Name:         fmt.Sprintf("User %d", i+1),
			Age:          20 + i,
			Professional: professionals[i%len(professionals)],
			City:         cities[i%len(cities)],
			Sex:          []string{"female", "male"}[i%2],
		}
	}
	if err := writeJSON(filepath.Join(warehousePath, "users", "users.json"), users); err != nil {
		return err
	}

	sessionSeq := 0
	for _, date := range dates {
		var actions []actionRecord
		for hour := 10; hour < 10+hoursPerDay; hour++ {
			for s := 0; s < sessionsPerHour; s++ {
				sessionSeq++
				sessionID := fmt.Sprintf("session-%04d", sessionSeq)
				userID := int64(sessionSeq%numUsers + 1)
				for a := 0; a < actionsPerSess; a++ {
					action := actionRecord{
						Date:       date,
						UserID:     userID,
						SessionID:  sessionID,
						PageID:     int64(a + 1),
						ActionTime: fmt.Sprintf("%s %02d:%02d:%02d", date, hour, s, a*3),
					}
					if a%2 == 0 {
						categoryID := int64(sessionSeq%5 + 1)
						action.ClickCategoryID = &categoryID
					} else {
						action.SearchKeyword = keywords[sessionSeq%len(keywords)]
					}
					actions = append(actions, action)
				}
			}
		}
		if err := writeJSON(filepath.Join(warehousePath, "actions", date+".json"), actions); err != nil {
			return err
		}
	}

	params := map[string]any{
		"startDate": dates[0],
		"endDate":   dates[len(dates)-1],
		"cities":    []string{"hanoi", "saigon"},
	}
	paramJSON, err := json.Marshal(params)
	if err != nil {
		return err
	}
	return writeJSON(filepath.Join(warehousePath, "tasks", "1.json"), task{
		TaskID:    1,
		TaskName:  "e2e full run",
		TaskParam: string(paramJSON),
	})
}

func writeJSON(path string, value any) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
