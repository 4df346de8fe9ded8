package models

import (
	"database/sql"
	"time"
)

type ExportHistory struct {
	ID           int       `json:"id"`
	UserID       int       `json:"user_id"`
	DocumentName string    `json:"document_name"`
	Format       string    `json:"format"`
	S3Path       string    `json:"s3_path"`
	GeneratedAt  time.Time `json:"generated_at"`
	CreatedAt    time.Time `json:"created_at"`
}

type ExportHistoryModel struct {
	DB *sql.DB
}

func NewExportHistoryModel(db *sql.DB) *ExportHistoryModel {
	return &ExportHistoryModel{DB: db}
}

func (m *ExportHistoryModel) Create(userID int, documentName, format, s3Path string) (*ExportHistory, error) {
	history := &ExportHistory{}
	query := `
		INSERT INTO export_history (user_id, document_name, format, s3_path, generated_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, user_id, document_name, format, s3_path, generated_at, created_at
	`
	err := m.DB.QueryRow(query, userID, documentName, format, s3Path, time.Now()).Scan(
		&history.ID, &history.UserID, &history.DocumentName, &history.Format,
		&history.S3Path, &history.GeneratedAt, &history.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return history, nil
}

func (m *ExportHistoryModel) GetByUserID(userID int) ([]*ExportHistory, error) {
	query := `
		SELECT id, user_id, document_name, format, s3_path, generated_at, created_at
		FROM export_history
		WHERE user_id = $1
		ORDER BY generated_at DESC
	`
	rows, err := m.DB.Query(query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var histories []*ExportHistory
	for rows.Next() {
		history := &ExportHistory{}
		err := rows.Scan(
			&history.ID, &history.UserID, &history.DocumentName, &history.Format,
			&history.S3Path, &history.GeneratedAt, &history.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		histories = append(histories, history)
	}
	return histories, rows.Err()
}

func (m *ExportHistoryModel) DeleteByID(id, userID int) error {
	query := `DELETE FROM export_history WHERE id = $1 AND user_id = $2`
	result, err := m.DB.Exec(query, id, userID)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rowsAffected == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// CleanupOldExports keeps only the most recent keepCount rows per user.
func (m *ExportHistoryModel) CleanupOldExports(userID int, keepCount int) error {
	query := `
		DELETE FROM export_history
		WHERE user_id = $1
		AND id NOT IN (
			SELECT id FROM export_history
			WHERE user_id = $1
			ORDER BY generated_at DESC
			LIMIT $2
		)
	`
	_, err := m.DB.Exec(query, userID, keepCount)
	return err
}
