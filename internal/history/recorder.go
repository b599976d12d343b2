package history

import (
	"fmt"

	"utr/internal/domain"
)

// Recorder persists run summaries to the history database and lists recent
// runs for the history command.
type Recorder struct {
	manager *DatabaseManager
}

// NewRecorder creates a new Recorder
func NewRecorder(manager *DatabaseManager) *Recorder {
	return &Recorder{manager: manager}
}

// Record inserts one row for the given run.
func (r *Recorder) Record(meta domain.RunMeta) error {
	db, err := r.manager.Open()
	if err != nil {
		return err
	}
	defer db.Close()

	const insert = `INSERT INTO runs
		(recorded_at, total_cases, passed_cases, failed_cases, duration_seconds, workers)
		VALUES (?, ?, ?, ?, ?, ?)`
	if _, err := db.Exec(insert,
		meta.Timestamp, meta.TotalCases, meta.PassedCases, meta.FailedCases,
		meta.DurationSeconds, meta.Workers); err != nil {
		return fmt.Errorf("failed to record run: %w", err)
	}
	return nil
}

// List returns the most recent runs, newest first.
func (r *Recorder) List(limit int) ([]domain.RunRecord, error) {
	if limit <= 0 {
		limit = 20
	}

	db, err := r.manager.Open()
	if err != nil {
		return nil, err
	}
	defer db.Close()

	rows, err := db.Query(`SELECT id, recorded_at, total_cases, passed_cases, failed_cases, duration_seconds, workers
		FROM runs ORDER BY id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query run history: %w", err)
	}
	defer rows.Close()

	var records []domain.RunRecord
	for rows.Next() {
		var rec domain.RunRecord
		if err := rows.Scan(&rec.ID, &rec.Timestamp, &rec.TotalCases, &rec.PassedCases,
			&rec.FailedCases, &rec.DurationSeconds, &rec.Workers); err != nil {
			return nil, fmt.Errorf("failed to scan run history row: %w", err)
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}
