package handlers

import (
	"bytes"
	"database/sql"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"careermatch/models"
	"careermatch/services"
	"careermatch/utils"
)

const exportKeepCount = 20

// ExportHandler renders generated documents to PDF or DOCX, uploads them and
// records the export.
type ExportHandler struct {
	s3       *services.S3Service
	pdf      *services.PDFRenderer
	exports  *models.ExportHistoryModel
	s3Status error
}

func NewExportHandler(s3 *services.S3Service, s3Err error, db *sql.DB) *ExportHandler {
	h := &ExportHandler{
		s3:       s3,
		pdf:      services.NewPDFRenderer(),
		s3Status: s3Err,
	}
	if db != nil {
		h.exports = models.NewExportHistoryModel(db)
	}
	return h
}

type ExportResumeRequest struct {
	Name           string                `json:"name"`
	Format         string                `json:"format"`
	TailoredResume models.TailoredResume `json:"tailoredResume"`
}

func (h *ExportHandler) ExportResume(c *gin.Context) {
	var req ExportResumeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestError(c, "Invalid request format", err)
		return
	}

	var errs ValidationErrors
	errs = requireText(errs, "name", req.Name)
	if req.Format != "pdf" && req.Format != "docx" {
		errs = append(errs, "format must be pdf or docx")
	}
	if len(errs) > 0 {
		utils.BadRequestError(c, "Validation failed", errs)
		return
	}

	var content []byte
	var contentType string

	switch req.Format {
	case "docx":
		var buf bytes.Buffer
		if err := services.RenderTailoredResumeDocx(req.Name, req.TailoredResume, &buf); err != nil {
			utils.LogError("docx render failed", err)
			utils.InternalServerError(c, "Document generation failed")
			return
		}
		content = buf.Bytes()
		contentType = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	case "pdf":
		html, err := services.BuildResumeHTML(req.Name, req.TailoredResume)
		if err != nil {
			utils.LogError("resume html build failed", err)
			utils.InternalServerError(c, "Document generation failed")
			return
		}
		content, err = h.pdf.RenderHTMLToPDF(c.Request.Context(), html)
		if err != nil {
			utils.LogError("pdf render failed", err)
			utils.InternalServerError(c, "Document generation failed")
			return
		}
		contentType = "application/pdf"
	}

	h.finishExport(c, documentName(req.Name, "resume"), req.Format, content, contentType)
}

type ExportCoverLetterRequest struct {
	Name        string `json:"name"`
	Format      string `json:"format"`
	Subject     string `json:"subject"`
	CoverLetter string `json:"coverLetter"`
}

func (h *ExportHandler) ExportCoverLetter(c *gin.Context) {
	var req ExportCoverLetterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestError(c, "Invalid request format", err)
		return
	}

	var errs ValidationErrors
	errs = requireText(errs, "coverLetter", req.CoverLetter)
	if req.Format != "pdf" && req.Format != "docx" {
		errs = append(errs, "format must be pdf or docx")
	}
	if len(errs) > 0 {
		utils.BadRequestError(c, "Validation failed", errs)
		return
	}

	var content []byte
	var contentType string

	switch req.Format {
	case "docx":
		var buf bytes.Buffer
		if err := services.RenderCoverLetterDocx(req.Subject, req.CoverLetter, &buf); err != nil {
			utils.LogError("docx render failed", err)
			utils.InternalServerError(c, "Document generation failed")
			return
		}
		content = buf.Bytes()
		contentType = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	case "pdf":
		html, err := services.BuildCoverLetterHTML(req.Subject, req.CoverLetter)
		if err != nil {
			utils.LogError("cover letter html build failed", err)
			utils.InternalServerError(c, "Document generation failed")
			return
		}
		content, err = h.pdf.RenderHTMLToPDF(c.Request.Context(), html)
		if err != nil {
			utils.LogError("pdf render failed", err)
			utils.InternalServerError(c, "Document generation failed")
			return
		}
		contentType = "application/pdf"
	}

	h.finishExport(c, documentName(req.Name, "cover-letter"), req.Format, content, contentType)
}

func (h *ExportHandler) finishExport(c *gin.Context, name, format string, content []byte, contentType string) {
	if h.s3 == nil {
		utils.LogError("export requested without storage configured", h.s3Status)
		utils.InternalServerError(c, "Storage service unavailable")
		return
	}

	key := "exports/" + uuid.New().String() + "." + format
	url, err := h.s3.Upload(key, content, contentType)
	if err != nil {
		utils.LogError("export upload failed", err)
		utils.InternalServerError(c, "Storage service unavailable")
		return
	}

	if h.exports != nil {
		if userID, ok := currentUserID(c); ok {
			if _, err := h.exports.Create(userID, name, format, url); err != nil {
				utils.LogWarn("failed to record export history", map[string]interface{}{"user_id": userID, "error": err.Error()})
			} else if err := h.exports.CleanupOldExports(userID, exportKeepCount); err != nil {
				utils.LogWarn("failed to prune export history", map[string]interface{}{"user_id": userID, "error": err.Error()})
			}
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"url":     url,
		"format":  format,
	})
}

func documentName(name, kind string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return kind
	}
	return strings.ReplaceAll(strings.ToLower(name), " ", "-") + "-" + kind
}
