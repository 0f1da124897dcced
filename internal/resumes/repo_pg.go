package resumes

import (
	"context"
	"database/sql"
	"errors"
)

// PGRepo implements Repo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

// Create inserts a new resume and returns it with the assigned id.
func (r *PGRepo) Create(ctx context.Context, record ResumeRecord) (ResumeRecord, error) {
	const query = `
INSERT INTO resumes (original_filename, original_content, file_type, storage_key)
VALUES ($1, $2, $3, NULLIF($4, ''))
RETURNING id, uploaded_at`
	err := r.DB.QueryRowContext(ctx, query,
		record.OriginalFilename,
		record.OriginalContent,
		record.FileType,
		record.StorageKey,
	).Scan(&record.ID, &record.UploadedAt)
	if err != nil {
		return ResumeRecord{}, err
	}
	return record, nil
}

// GetByID returns a resume by id.
func (r *PGRepo) GetByID(ctx context.Context, id int64) (ResumeRecord, error) {
	const query = `
SELECT id, original_filename, original_content, file_type, COALESCE(storage_key, ''), uploaded_at
FROM resumes
WHERE id = $1
LIMIT 1`
	var record ResumeRecord
	err := r.DB.QueryRowContext(ctx, query, id).Scan(
		&record.ID,
		&record.OriginalFilename,
		&record.OriginalContent,
		&record.FileType,
		&record.StorageKey,
		&record.UploadedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return ResumeRecord{}, ErrNotFound
	}
	if err != nil {
		return ResumeRecord{}, err
	}
	return record, nil
}

var _ Repo = (*PGRepo)(nil)
