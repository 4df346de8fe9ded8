package services

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateToolResult_SmartMatch(t *testing.T) {
	tool := SmartMatchTool()

	good := []byte(`{
		"score": 87,
		"highlights": ["Go experience", "API focus", "Project work"],
		"skillGap": "Distributed systems",
		"resumeTips": ["Quantify impact", "Mention Postgres", "Lead with Go"]
	}`)
	assert.NoError(t, ValidateToolResult(tool, good))

	tests := []struct {
		name string
		doc  string
	}{
		{"missing score", `{"highlights":[],"skillGap":"x","resumeTips":[]}`},
		{"score is a string", `{"score":"87","highlights":[],"skillGap":"x","resumeTips":[]}`},
		{"highlights not an array", `{"score":87,"highlights":"Go","skillGap":"x","resumeTips":[]}`},
		{"extra field", `{"score":87,"highlights":[],"skillGap":"x","resumeTips":[],"verdict":"hire"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateToolResult(tool, []byte(tt.doc))
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrBadToolPayload))
		})
	}
}

func TestValidateToolResult_TailorResume(t *testing.T) {
	tool := TailorResumeTool()

	good := []byte(`{
		"summary": "Engineer.",
		"technicalSkills": [{"category": "Languages", "skills": ["Go"]}],
		"experience": [{"company": "Acme", "role": "Dev", "dates": "2024", "bullets": ["Shipped APIs"]}],
		"projects": ["Widget"],
		"hackathons": [],
		"education": [],
		"contactInfo": {"email": "a@b.c"},
		"links": {},
		"tips": "Reorder skills."
	}`)
	assert.NoError(t, ValidateToolResult(tool, good))

	// Experience entry missing bullets
	bad := []byte(`{
		"summary": "Engineer.",
		"technicalSkills": [],
		"experience": [{"company": "Acme", "role": "Dev", "dates": "2024"}],
		"projects": [],
		"hackathons": [],
		"education": [],
		"contactInfo": {},
		"links": {},
		"tips": ""
	}`)
	err := ValidateToolResult(tool, bad)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrBadToolPayload))
}

func TestValidateToolResult_Outreach(t *testing.T) {
	tool := OutreachTool()

	good := []byte(`{
		"pitch": "Builder.",
		"linkedinMessage": "Hi!",
		"email": {"subject": "Hello", "body": "Body text."}
	}`)
	assert.NoError(t, ValidateToolResult(tool, good))

	// Nested email missing body
	bad := []byte(`{"pitch": "Builder.", "linkedinMessage": "Hi!", "email": {"subject": "Hello"}}`)
	err := ValidateToolResult(tool, bad)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrBadToolPayload))
}

func TestValidateToolResult_CoverLetter(t *testing.T) {
	tool := CoverLetterTool()

	assert.NoError(t, ValidateToolResult(tool, []byte(`{"coverLetter": "Dear team,", "subject": "Application"}`)))

	err := ValidateToolResult(tool, []byte(`{"coverLetter": "Dear team,"}`))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrBadToolPayload))
}
