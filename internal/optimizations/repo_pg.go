package optimizations

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"

	"resume-optimizer/internal/llm"
)

// PGRepo implements Repo using Postgres. Improvements round-trip through a
// JSONB column; match_score is kept as its own column.
type PGRepo struct {
	DB *sql.DB
}

// Create inserts a new optimization and returns it with the assigned id.
func (r *PGRepo) Create(ctx context.Context, record OptimizationRecord) (OptimizationRecord, error) {
	const query = `
INSERT INTO optimizations (resume_id, job_description_id, optimized_content, improvements, match_score)
VALUES ($1, $2, $3, $4, $5)
RETURNING id, created_at`
	improvementsPayload, err := json.Marshal(record.Improvements)
	if err != nil {
		return OptimizationRecord{}, err
	}
	err = r.DB.QueryRowContext(ctx, query,
		record.ResumeID,
		record.JobDescriptionID,
		record.OptimizedContent,
		string(improvementsPayload),
		record.MatchScore,
	).Scan(&record.ID, &record.CreatedAt)
	if err != nil {
		return OptimizationRecord{}, err
	}
	return record, nil
}

// GetByID returns an optimization by id.
func (r *PGRepo) GetByID(ctx context.Context, id int64) (OptimizationRecord, error) {
	const query = `
SELECT id, resume_id, job_description_id, optimized_content, improvements, match_score, created_at
FROM optimizations
WHERE id = $1
LIMIT 1`
	record, err := scanOptimization(r.DB.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return OptimizationRecord{}, ErrNotFound
	}
	if err != nil {
		return OptimizationRecord{}, err
	}
	return record, nil
}

// ListByResume returns all optimizations for a resume, oldest first.
func (r *PGRepo) ListByResume(ctx context.Context, resumeID int64) ([]OptimizationRecord, error) {
	const query = `
SELECT id, resume_id, job_description_id, optimized_content, improvements, match_score, created_at
FROM optimizations
WHERE resume_id = $1
ORDER BY id`
	rows, err := r.DB.QueryContext(ctx, query, resumeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	records := []OptimizationRecord{}
	for rows.Next() {
		record, err := scanOptimization(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}
	return records, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanOptimization(row rowScanner) (OptimizationRecord, error) {
	var record OptimizationRecord
	var improvementsPayload string
	err := row.Scan(
		&record.ID,
		&record.ResumeID,
		&record.JobDescriptionID,
		&record.OptimizedContent,
		&improvementsPayload,
		&record.MatchScore,
		&record.CreatedAt,
	)
	if err != nil {
		return OptimizationRecord{}, err
	}
	var improvements llm.Improvements
	if err := json.Unmarshal([]byte(improvementsPayload), &improvements); err != nil {
		return OptimizationRecord{}, err
	}
	record.Improvements = improvements
	return record, nil
}

var _ Repo = (*PGRepo)(nil)
