package services

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"careermatch/models"
)

func sampleTailored() models.TailoredResume {
	return models.TailoredResume{
		Summary: "Backend engineer focused on APIs.",
		TechnicalSkills: []models.SkillCategory{
			{Category: "Languages", Skills: []string{"Go", "SQL"}},
		},
		Experience: []models.ExperienceEntry{
			{Company: "Acme", Role: "Dev", Dates: "2024", Bullets: []string{"Shipped APIs", "Cut latency 30%"}},
		},
		Projects: []string{"Widget"},
		Education: []models.EducationEntry{
			{Institution: "State University", Degree: "BSc CS", Dates: "2020-2024"},
		},
		ContactInfo: models.ContactInfo{Email: "ada@example.com", Location: "Remote"},
		Links:       models.Links{GitHub: "github.com/ada"},
	}
}

func TestBuildResumeHTML(t *testing.T) {
	html, err := BuildResumeHTML("Ada Lovelace", sampleTailored())
	require.NoError(t, err)

	assert.Contains(t, html, "Ada Lovelace")
	assert.Contains(t, html, "ada@example.com | Remote | github.com/ada")
	assert.Contains(t, html, "Languages:")
	assert.Contains(t, html, "Go, SQL")
	assert.Contains(t, html, "Dev, Acme (2024)")
	assert.Contains(t, html, "Widget")
	assert.Contains(t, html, "State University")
}

func TestBuildResumeHTML_EscapesMarkup(t *testing.T) {
	tailored := sampleTailored()
	tailored.Summary = `<script>alert("x")</script>`

	html, err := BuildResumeHTML("Ada", tailored)
	require.NoError(t, err)
	assert.NotContains(t, html, "<script>")
}

func TestBuildResumeHTML_SkipsEmptySections(t *testing.T) {
	html, err := BuildResumeHTML("Ada", models.TailoredResume{Summary: "Engineer."})
	require.NoError(t, err)

	assert.Contains(t, html, "Summary")
	assert.NotContains(t, html, "Technical Skills")
	assert.NotContains(t, html, "Hackathons")
}

func TestBuildCoverLetterHTML(t *testing.T) {
	html, err := BuildCoverLetterHTML("Application: Backend Engineer",
		"Dear Acme Team,\n\nI build APIs.\n\nSincerely,\nAda")
	require.NoError(t, err)

	assert.Contains(t, html, "Application: Backend Engineer")
	assert.Contains(t, html, "<p>Dear Acme Team,</p>")
	assert.Contains(t, html, "I build APIs.")
}

func TestRenderTailoredResumeDocx(t *testing.T) {
	var buf bytes.Buffer
	err := RenderTailoredResumeDocx("Ada Lovelace", sampleTailored(), &buf)
	require.NoError(t, err)

	// DOCX files are zip archives
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("PK")))
	assert.Greater(t, buf.Len(), 1000)
}

func TestRenderCoverLetterDocx(t *testing.T) {
	var buf bytes.Buffer
	err := RenderCoverLetterDocx("Application", "Dear Acme Team,\n\nI build APIs.", &buf)
	require.NoError(t, err)

	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("PK")))
}
