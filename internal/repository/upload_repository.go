package repository

import (
	"database/sql"
	"fmt"
	"time"
)

type UploadRecord struct {
	ID        string
	TaskID    string
	FileName  string
	FilePath  string
	FileSize  int64
	CreatedAt time.Time
}

// UploadRepository journals completed uploads locally, so a user can
// see what this machine pushed even before the list refetch.
type UploadRepository struct {
	db *sql.DB
}

func NewUploadRepository(db *sql.DB) *UploadRepository {
	return &UploadRepository{db: db}
}

func (r *UploadRepository) Create(record *UploadRecord) error {
	query := `
		INSERT INTO uploads (id, task_id, file_name, file_path, file_size)
        VALUES (?, ?, ?, ?, ?)
	`

	_, err := r.db.Exec(query,
		record.ID,
		record.TaskID,
		record.FileName,
		record.FilePath,
		record.FileSize,
	)

	if err != nil {
		return fmt.Errorf("Error trying to record the upload: %w", err)
	}

	return nil
}

func (r *UploadRepository) GetByTask(taskID string) ([]UploadRecord, error) {
	query := `
	SELECT id, task_id, file_name, file_path, file_size, created_at
        FROM uploads WHERE task_id = ? ORDER BY created_at DESC
	`
	rows, err := r.db.Query(query, taskID)

	if err != nil {
		return nil, fmt.Errorf("Error trying to get uploads: %w", err)
	}
	defer rows.Close()

	var records []UploadRecord

	for rows.Next() {
		var rec UploadRecord
		err := rows.Scan(
			&rec.ID,
			&rec.TaskID,
			&rec.FileName,
			&rec.FilePath,
			&rec.FileSize,
			&rec.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("Error trying to scan upload: %w", err)
		}
		records = append(records, rec)
	}

	return records, rows.Err()
}
