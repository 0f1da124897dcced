package jobdescriptions

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"

	"resume-optimizer/internal/llm"
)

// PGRepo implements Repo using Postgres. Analysis payloads round-trip
// through a JSONB column.
type PGRepo struct {
	DB *sql.DB
}

// Create inserts a new job description and returns it with the assigned id.
func (r *PGRepo) Create(ctx context.Context, record JobDescriptionRecord) (JobDescriptionRecord, error) {
	const query = `
INSERT INTO job_descriptions (content, analysis)
VALUES ($1, $2)
RETURNING id, created_at`
	analysisPayload, err := marshalAnalysis(record.Analysis)
	if err != nil {
		return JobDescriptionRecord{}, err
	}
	err = r.DB.QueryRowContext(ctx, query, record.Content, analysisPayload).
		Scan(&record.ID, &record.CreatedAt)
	if err != nil {
		return JobDescriptionRecord{}, err
	}
	return record, nil
}

// GetByID returns a job description by id.
func (r *PGRepo) GetByID(ctx context.Context, id int64) (JobDescriptionRecord, error) {
	const query = `
SELECT id, content, analysis, created_at
FROM job_descriptions
WHERE id = $1
LIMIT 1`
	var record JobDescriptionRecord
	var analysisPayload sql.NullString
	err := r.DB.QueryRowContext(ctx, query, id).Scan(
		&record.ID,
		&record.Content,
		&analysisPayload,
		&record.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return JobDescriptionRecord{}, ErrNotFound
	}
	if err != nil {
		return JobDescriptionRecord{}, err
	}
	if analysisPayload.Valid && analysisPayload.String != "" {
		var analysis llm.JobAnalysis
		if err := json.Unmarshal([]byte(analysisPayload.String), &analysis); err != nil {
			return JobDescriptionRecord{}, err
		}
		record.Analysis = &analysis
	}
	return record, nil
}

func marshalAnalysis(analysis *llm.JobAnalysis) (any, error) {
	if analysis == nil {
		return nil, nil
	}
	payload, err := json.Marshal(analysis)
	if err != nil {
		return nil, err
	}
	return string(payload), nil
}

var _ Repo = (*PGRepo)(nil)
