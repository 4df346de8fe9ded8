package handlers

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"careermatch/models"
	"careermatch/services"
	"careermatch/utils"
)

const (
	maxResumeTextChars = 50000
	maxFileNameChars   = 255
)

// AIHandler hosts the five proxy endpoints. Every request follows the same
// pipeline: validate shape, bound the text, build the prompt plus a strict
// tool schema, make one gateway call, validate the decoded result, relay it.
// History and profile rows are written only after a full success; their
// failure downgrades to a logged warning.
type AIHandler struct {
	gateway  *services.Gateway
	profiles *models.ResumeProfileModel
	matches  *models.MatchHistoryModel
	logger   *utils.Logger
}

func NewAIHandler(gateway *services.Gateway, db *sql.DB) *AIHandler {
	h := &AIHandler{
		gateway: gateway,
		logger:  utils.NewLogger(),
	}
	if db != nil {
		h.profiles = models.NewResumeProfileModel(db)
		h.matches = models.NewMatchHistoryModel(db)
	}
	return h
}

// aiFailure maps every upstream/internal failure to the same generic caller
// message. The taxonomy distinction lives in the server log only.
func (h *AIHandler) aiFailure(c *gin.Context, endpoint string, err error) {
	h.logger.Error(endpoint+" failed", err)
	utils.InternalServerError(c, "AI request failed")
}

type AnalyzeResumeRequest struct {
	ResumeText string `json:"resumeText"`
	FileName   string `json:"fileName"`
}

// AnalyzeResume extracts a structured Resume Profile from raw resume text and
// stores it as the caller's profile.
func (h *AIHandler) AnalyzeResume(c *gin.Context) {
	var req AnalyzeResumeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestError(c, "Invalid request format", err)
		return
	}

	var errs ValidationErrors
	errs = requireText(errs, "resumeText", req.ResumeText)
	errs = requireText(errs, "fileName", req.FileName)
	if len(req.ResumeText) > maxResumeTextChars {
		errs = append(errs, fmt.Sprintf("resumeText exceeds %d characters", maxResumeTextChars))
	}
	if len(req.FileName) > maxFileNameChars {
		errs = append(errs, fmt.Sprintf("fileName exceeds %d characters", maxFileNameChars))
	}
	if len(errs) > 0 {
		utils.BadRequestError(c, "Validation failed", errs)
		return
	}

	fileName := services.CleanText(req.FileName, maxFileNameChars)

	tool := services.AnalyzeResumeTool()
	result, err := h.gateway.CallTool(c.Request.Context(), services.AnalyzeResumeMessages(req.ResumeText, fileName), tool)
	if err != nil {
		h.aiFailure(c, "analyze-resume", err)
		return
	}

	if err := services.ValidateToolResult(tool, result); err != nil {
		h.aiFailure(c, "analyze-resume", err)
		return
	}

	if h.profiles != nil {
		if userID, ok := currentUserID(c); ok {
			if err := h.profiles.Save(userID, fileName, json.RawMessage(result)); err != nil {
				h.logger.Warn("failed to persist resume profile", map[string]interface{}{"user_id": userID, "error": err.Error()})
			}
		}
	}

	c.Data(http.StatusOK, "application/json; charset=utf-8", result)
}

type SmartMatchRequest struct {
	Resume      models.ResumeProfile      `json:"resume"`
	Opportunity services.OpportunityInput `json:"opportunity"`
}

// SmartMatch scores a resume against one opportunity.
func (h *AIHandler) SmartMatch(c *gin.Context) {
	var req SmartMatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestError(c, "Invalid request format", err)
		return
	}

	errs := ValidateOpportunity(req.Opportunity, true)
	errs = append(errs, ValidateResumeForMatch(req.Resume)...)
	if len(errs) > 0 {
		utils.BadRequestError(c, "Validation failed", errs)
		return
	}

	req.Opportunity.Clean()
	services.CleanResume(&req.Resume)

	tool := services.SmartMatchTool()
	result, err := h.gateway.CallTool(c.Request.Context(), services.SmartMatchMessages(req.Resume, req.Opportunity), tool)
	if err != nil {
		h.aiFailure(c, "smart-match", err)
		return
	}

	if err := services.ValidateToolResult(tool, result); err != nil {
		h.aiFailure(c, "smart-match", err)
		return
	}

	if h.matches != nil {
		if userID, ok := currentUserID(c); ok {
			var parsed struct {
				Score    float64 `json:"score"`
				SkillGap string  `json:"skillGap"`
			}
			if err := json.Unmarshal(result, &parsed); err == nil {
				_, err = h.matches.Create(userID, req.Opportunity.ID, req.Opportunity.Title,
					req.Opportunity.Company, int(parsed.Score), parsed.SkillGap)
			}
			if err != nil {
				h.logger.Warn("failed to persist match history", map[string]interface{}{"user_id": userID, "error": err.Error()})
			}
		}
	}

	c.Data(http.StatusOK, "application/json; charset=utf-8", result)
}

type GenerateOutreachRequest struct {
	Resume      *models.ResumeProfile     `json:"resume"`
	Opportunity services.OpportunityInput `json:"opportunity"`
}

// GenerateOutreach drafts a pitch, a LinkedIn message and a cold email.
// The resume is optional; without one the draft is generic.
func (h *AIHandler) GenerateOutreach(c *gin.Context) {
	var req GenerateOutreachRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestError(c, "Invalid request format", err)
		return
	}

	if errs := ValidateOpportunity(req.Opportunity, false); len(errs) > 0 {
		utils.BadRequestError(c, "Validation failed", errs)
		return
	}

	req.Opportunity.Clean()
	if req.Resume != nil {
		services.CleanResume(req.Resume)
	}

	tool := services.OutreachTool()
	result, err := h.gateway.CallTool(c.Request.Context(), services.OutreachMessages(req.Resume, req.Opportunity), tool)
	if err != nil {
		h.aiFailure(c, "generate-outreach", err)
		return
	}

	if err := services.ValidateToolResult(tool, result); err != nil {
		h.aiFailure(c, "generate-outreach", err)
		return
	}

	c.Data(http.StatusOK, "application/json; charset=utf-8", result)
}

type TailorResumeRequest struct {
	Resume      models.ResumeProfile      `json:"resume"`
	Opportunity services.OpportunityInput `json:"opportunity"`
}

// TailorResume rewrites the summary, skill grouping and experience bullets
// for one opportunity. Projects, hackathons, education, contact info and
// links must round-trip from the request unchanged; the handler enforces
// that rather than trusting the model.
func (h *AIHandler) TailorResume(c *gin.Context) {
	var req TailorResumeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestError(c, "Invalid request format", err)
		return
	}

	errs := ValidateOpportunity(req.Opportunity, false)
	errs = append(errs, ValidateResumeForTailor(req.Resume)...)
	if len(errs) > 0 {
		utils.BadRequestError(c, "Validation failed", errs)
		return
	}

	req.Opportunity.Clean()
	services.CleanResume(&req.Resume)

	tool := services.TailorResumeTool()
	result, err := h.gateway.CallTool(c.Request.Context(), services.TailorResumeMessages(req.Resume, req.Opportunity), tool)
	if err != nil {
		h.aiFailure(c, "tailor-resume", err)
		return
	}

	if err := services.ValidateToolResult(tool, result); err != nil {
		h.aiFailure(c, "tailor-resume", err)
		return
	}

	var tailored models.TailoredResume
	if err := json.Unmarshal(result, &tailored); err != nil {
		h.aiFailure(c, "tailor-resume", err)
		return
	}

	if !equalStringSlices(tailored.Projects, req.Resume.Projects) {
		h.aiFailure(c, "tailor-resume", errors.New("model altered pass-through projects"))
		return
	}

	// Pass-through sections come from the request, not the model.
	tailored.Projects = req.Resume.Projects
	tailored.Hackathons = req.Resume.Hackathons
	tailored.Education = req.Resume.Education
	tailored.ContactInfo = req.Resume.ContactInfo
	tailored.Links = req.Resume.Links
	if tailored.Hackathons == nil {
		tailored.Hackathons = []models.HackathonEntry{}
	}
	if tailored.Education == nil {
		tailored.Education = []models.EducationEntry{}
	}

	c.JSON(http.StatusOK, tailored)
}

type GenerateCoverLetterRequest struct {
	Resume         models.ResumeProfile      `json:"resume"`
	Opportunity    services.OpportunityInput `json:"opportunity"`
	TailoredResume *models.TailoredResume    `json:"tailoredResume"`
}

// GenerateCoverLetter writes a cover letter, preferring tailored content
// when the caller supplies it.
func (h *AIHandler) GenerateCoverLetter(c *gin.Context) {
	var req GenerateCoverLetterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestError(c, "Invalid request format", err)
		return
	}

	if errs := ValidateOpportunity(req.Opportunity, false); len(errs) > 0 {
		utils.BadRequestError(c, "Validation failed", errs)
		return
	}

	req.Opportunity.Clean()
	services.CleanResume(&req.Resume)

	tool := services.CoverLetterTool()
	result, err := h.gateway.CallTool(c.Request.Context(),
		services.CoverLetterMessages(req.Resume, req.Opportunity, req.TailoredResume), tool)
	if err != nil {
		h.aiFailure(c, "generate-cover-letter", err)
		return
	}

	if err := services.ValidateToolResult(tool, result); err != nil {
		h.aiFailure(c, "generate-cover-letter", err)
		return
	}

	c.Data(http.StatusOK, "application/json; charset=utf-8", result)
}

func currentUserID(c *gin.Context) (int, bool) {
	v, exists := c.Get("user_id")
	if !exists {
		return 0, false
	}
	id, ok := v.(int)
	return id, ok
}

func equalStringSlices(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
