package handlers

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func setupExportRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)

	// No S3 configured, no database: validation and the storage failure path
	// are exercised without external services.
	h := NewExportHandler(nil, nil, nil)

	r := gin.New()
	r.POST("/api/export/resume", h.ExportResume)
	r.POST("/api/export/cover-letter", h.ExportCoverLetter)
	return r
}

func TestExportResume_Validation(t *testing.T) {
	router := setupExportRouter()

	tests := []struct {
		name string
		body map[string]interface{}
	}{
		{"missing name", map[string]interface{}{"format": "pdf"}},
		{"missing format", map[string]interface{}{"name": "Ada"}},
		{"unsupported format", map[string]interface{}{"name": "Ada", "format": "odt"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := postJSON(router, "/api/export/resume", "", tt.body)
			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
}

func TestExportCoverLetter_Validation(t *testing.T) {
	router := setupExportRouter()

	tests := []struct {
		name string
		body map[string]interface{}
	}{
		{"missing coverLetter", map[string]interface{}{"name": "Ada", "format": "pdf"}},
		{"unsupported format", map[string]interface{}{"name": "Ada", "format": "txt", "coverLetter": "Dear team,"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := postJSON(router, "/api/export/cover-letter", "", tt.body)
			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
}

func TestExportResume_StorageUnavailable(t *testing.T) {
	router := setupExportRouter()

	// docx renders locally, then fails at the storage step
	w := postJSON(router, "/api/export/resume", "", map[string]interface{}{
		"name":   "Ada",
		"format": "docx",
		"tailoredResume": map[string]interface{}{
			"summary":  "Engineer.",
			"projects": []string{"Widget"},
		},
	})

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "Storage service unavailable")
}

func TestDocumentName(t *testing.T) {
	assert.Equal(t, "ada-lovelace-resume", documentName("Ada Lovelace", "resume"))
	assert.Equal(t, "cover-letter", documentName("  ", "cover-letter"))
}
