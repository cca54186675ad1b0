package state

import (
	"fmt"
	"time"

	"github.com/nishantdas/agentcoord/pkg/models"
)

// AgentSummary aggregates the persisted history for one agent.
type AgentSummary struct {
	// Name is the agent name.
	Name string `json:"name"`
	// TaskCount is the number of persisted records for the agent.
	TaskCount int `json:"task_count"`
	// TotalTime is the summed elapsed time across those records.
	TotalTime time.Duration `json:"total_time"`
}

// AppendRecord persists one task record. Records are append-only; an
// existing id is an error.
func (db *DB) AppendRecord(record *models.TaskRecord) error {
	db.mu.Lock()
	defer db.mu.Unlock()

	_, err := db.conn.Exec(`
		INSERT INTO task_records (id, description, agent_name, timestamp, elapsed_ns, success, summary)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		record.ID,
		record.Description,
		record.AgentName,
		record.Timestamp.UTC(),
		record.Elapsed.Nanoseconds(),
		boolToInt(record.Success),
		record.Summary,
	)
	if err != nil {
		return fmt.Errorf("insert task record: %w", err)
	}
	return nil
}

// Records returns all persisted task records, oldest first.
func (db *DB) Records() ([]*models.TaskRecord, error) {
	db.mu.RLock()
	defer db.mu.RUnlock()

	rows, err := db.conn.Query(`
		SELECT id, description, agent_name, timestamp, elapsed_ns, success, summary
		FROM task_records
		ORDER BY timestamp, id`)
	if err != nil {
		return nil, fmt.Errorf("query task records: %w", err)
	}
	defer rows.Close()

	var records []*models.TaskRecord
	for rows.Next() {
		var record models.TaskRecord
		var elapsedNs int64
		var success int
		if err := rows.Scan(&record.ID, &record.Description, &record.AgentName,
			&record.Timestamp, &elapsedNs, &success, &record.Summary); err != nil {
			return nil, fmt.Errorf("scan task record: %w", err)
		}
		record.Elapsed = time.Duration(elapsedNs)
		record.Success = success != 0
		records = append(records, &record)
	}
	return records, rows.Err()
}

// AgentSummaries returns per-agent task counts and total time, ordered
// by agent name.
func (db *DB) AgentSummaries() ([]AgentSummary, error) {
	db.mu.RLock()
	defer db.mu.RUnlock()

	rows, err := db.conn.Query(`
		SELECT agent_name, COUNT(*), COALESCE(SUM(elapsed_ns), 0)
		FROM task_records
		GROUP BY agent_name
		ORDER BY agent_name`)
	if err != nil {
		return nil, fmt.Errorf("query agent summaries: %w", err)
	}
	defer rows.Close()

	var summaries []AgentSummary
	for rows.Next() {
		var s AgentSummary
		var totalNs int64
		if err := rows.Scan(&s.Name, &s.TaskCount, &totalNs); err != nil {
			return nil, fmt.Errorf("scan agent summary: %w", err)
		}
		s.TotalTime = time.Duration(totalNs)
		summaries = append(summaries, s)
	}
	return summaries, rows.Err()
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
