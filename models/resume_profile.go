package models

import (
	"database/sql"
	"encoding/json"
	"time"
)

type ContactInfo struct {
	Email    string `json:"email,omitempty"`
	Phone    string `json:"phone,omitempty"`
	Location string `json:"location,omitempty"`
}

type Links struct {
	Portfolio string `json:"portfolio,omitempty"`
	LinkedIn  string `json:"linkedin,omitempty"`
	GitHub    string `json:"github,omitempty"`
}

type ExperienceEntry struct {
	Company string   `json:"company"`
	Role    string   `json:"role"`
	Dates   string   `json:"dates"`
	Bullets []string `json:"bullets"`
}

type EducationEntry struct {
	Institution string `json:"institution"`
	Degree      string `json:"degree"`
	Dates       string `json:"dates"`
}

type HackathonEntry struct {
	Name        string `json:"name"`
	Achievement string `json:"achievement"`
	Description string `json:"description"`
}

// ResumeProfile is the structured extraction of a candidate's resume. Once
// produced by analysis it is authoritative: later stages may reorganize or
// rephrase its content but never add facts to it.
type ResumeProfile struct {
	Name        string            `json:"name"`
	ContactInfo ContactInfo       `json:"contactInfo,omitempty"`
	Links       Links             `json:"links,omitempty"`
	Skills      []string          `json:"skills"`
	Projects    []string          `json:"projects"`
	Experience  []ExperienceEntry `json:"experience,omitempty"`
	Education   []EducationEntry  `json:"education,omitempty"`
	Hackathons  []HackathonEntry  `json:"hackathons,omitempty"`
	RawText     string            `json:"rawText"`
}

type SkillCategory struct {
	Category string   `json:"category"`
	Skills   []string `json:"skills"`
}

// TailoredResume is a derived view of a ResumeProfile rewritten for one
// opportunity. Projects, hackathons, education, contact info and links are
// pass-through sections and must match the source profile.
type TailoredResume struct {
	Summary         string            `json:"summary"`
	TechnicalSkills []SkillCategory   `json:"technicalSkills"`
	Experience      []ExperienceEntry `json:"experience"`
	Projects        []string          `json:"projects"`
	Hackathons      []HackathonEntry  `json:"hackathons"`
	Education       []EducationEntry  `json:"education"`
	ContactInfo     ContactInfo       `json:"contactInfo"`
	Links           Links             `json:"links"`
	Tips            string            `json:"tips"`
}

type StoredProfile struct {
	ID        int             `json:"id"`
	UserID    int             `json:"user_id"`
	FileName  string          `json:"file_name"`
	Profile   json.RawMessage `json:"profile"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

type ResumeProfileModel struct {
	DB *sql.DB
}

func NewResumeProfileModel(db *sql.DB) *ResumeProfileModel {
	return &ResumeProfileModel{DB: db}
}

func (m *ResumeProfileModel) GetByUserID(userID int) (*StoredProfile, error) {
	p := &StoredProfile{}
	query := `
		SELECT id, user_id, file_name, profile, created_at, updated_at
		FROM resume_profiles WHERE user_id = $1
	`
	err := m.DB.QueryRow(query, userID).Scan(
		&p.ID, &p.UserID, &p.FileName, &p.Profile, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (m *ResumeProfileModel) Save(userID int, fileName string, profile json.RawMessage) error {
	// One profile per user: insert or replace
	var existingID int
	err := m.DB.QueryRow("SELECT id FROM resume_profiles WHERE user_id = $1", userID).Scan(&existingID)

	if err == sql.ErrNoRows {
		_, err = m.DB.Exec(
			"INSERT INTO resume_profiles (user_id, file_name, profile, created_at, updated_at) VALUES ($1, $2, $3, NOW(), NOW())",
			userID, fileName, profile)
	} else if err == nil {
		_, err = m.DB.Exec(
			"UPDATE resume_profiles SET file_name = $1, profile = $2, updated_at = NOW() WHERE user_id = $3",
			fileName, profile, userID)
	}

	return err
}
