package models

import (
	"database/sql"
	"time"
)

// MatchHistory records the outcome of one smart-match call. Rows are written
// after a full successful response, never for failed requests.
type MatchHistory struct {
	ID               int       `json:"id"`
	UserID           int       `json:"user_id"`
	OpportunityID    string    `json:"opportunity_id"`
	OpportunityTitle string    `json:"opportunity_title"`
	Company          string    `json:"company"`
	Score            int       `json:"score"`
	SkillGap         string    `json:"skill_gap"`
	CreatedAt        time.Time `json:"created_at"`
}

type MatchHistoryModel struct {
	DB *sql.DB
}

func NewMatchHistoryModel(db *sql.DB) *MatchHistoryModel {
	return &MatchHistoryModel{DB: db}
}

func (m *MatchHistoryModel) Create(userID int, opportunityID, title, company string, score int, skillGap string) (*MatchHistory, error) {
	history := &MatchHistory{}
	query := `
		INSERT INTO match_history (user_id, opportunity_id, opportunity_title, company, score, skill_gap)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, user_id, opportunity_id, opportunity_title, company, score, skill_gap, created_at
	`
	err := m.DB.QueryRow(query, userID, opportunityID, title, company, score, skillGap).Scan(
		&history.ID, &history.UserID, &history.OpportunityID, &history.OpportunityTitle,
		&history.Company, &history.Score, &history.SkillGap, &history.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return history, nil
}

func (m *MatchHistoryModel) GetByUserID(userID int) ([]*MatchHistory, error) {
	query := `
		SELECT id, user_id, opportunity_id, opportunity_title, company, score, skill_gap, created_at
		FROM match_history
		WHERE user_id = $1
		ORDER BY created_at DESC
	`
	rows, err := m.DB.Query(query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var histories []*MatchHistory
	for rows.Next() {
		history := &MatchHistory{}
		err := rows.Scan(
			&history.ID, &history.UserID, &history.OpportunityID, &history.OpportunityTitle,
			&history.Company, &history.Score, &history.SkillGap, &history.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		histories = append(histories, history)
	}
	return histories, rows.Err()
}
