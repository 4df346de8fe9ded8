package services

import (
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// Tool declarations for the five AI endpoints. The same schema is sent to the
// gateway as the tool's parameters and used afterwards to validate the
// decoded arguments, so a malformed model response never reaches the caller.

func obj(properties map[string]interface{}, required ...string) map[string]interface{} {
	schema := map[string]interface{}{
		"type":                 "object",
		"properties":           properties,
		"additionalProperties": false,
	}
	if len(required) > 0 {
		schema["required"] = required
	}
	return schema
}

func str(description string) map[string]interface{} {
	s := map[string]interface{}{"type": "string"}
	if description != "" {
		s["description"] = description
	}
	return s
}

func strArray(description string) map[string]interface{} {
	s := map[string]interface{}{
		"type":  "array",
		"items": map[string]interface{}{"type": "string"},
	}
	if description != "" {
		s["description"] = description
	}
	return s
}

func AnalyzeResumeTool() ToolFunction {
	return ToolFunction{
		Name:        "parse_resume",
		Description: "Return structured resume data",
		Parameters: obj(map[string]interface{}{
			"name":     str(""),
			"skills":   strArray(""),
			"projects": strArray(""),
			"rawText":  str(""),
		}, "name", "skills", "projects", "rawText"),
	}
}

func SmartMatchTool() ToolFunction {
	return ToolFunction{
		Name:        "match_result",
		Description: "Return compatibility analysis",
		Parameters: obj(map[string]interface{}{
			"score":      map[string]interface{}{"type": "number", "description": "Compatibility score 0-100"},
			"highlights": strArray("Top 3 reasons they match"),
			"skillGap":   str("One specific area to bridge"),
			"resumeTips": strArray("3 actionable tips to tailor the resume and improve the match score for this specific role"),
		}, "score", "highlights", "skillGap", "resumeTips"),
	}
}

func OutreachTool() ToolFunction {
	return ToolFunction{
		Name:        "outreach_draft",
		Description: "Return outreach materials",
		Parameters: obj(map[string]interface{}{
			"pitch":           str("3-sentence high-impact intro pitch with a hook"),
			"linkedinMessage": str("200-character LinkedIn connection request"),
			"email": obj(map[string]interface{}{
				"subject": str(""),
				"body":    str("Professional cold email body, 3-4 paragraphs"),
			}, "subject", "body"),
		}, "pitch", "linkedinMessage", "email"),
	}
}

func TailorResumeTool() ToolFunction {
	experienceItem := obj(map[string]interface{}{
		"company": str(""),
		"role":    str(""),
		"dates":   str(""),
		"bullets": strArray(""),
	}, "company", "role", "dates", "bullets")

	hackathonItem := obj(map[string]interface{}{
		"name":        str(""),
		"achievement": str(""),
		"description": str(""),
	}, "name", "achievement", "description")

	educationItem := obj(map[string]interface{}{
		"institution": str(""),
		"degree":      str(""),
		"dates":       str(""),
	}, "institution", "degree", "dates")

	skillCategory := obj(map[string]interface{}{
		"category": str(""),
		"skills":   strArray(""),
	}, "category", "skills")

	return ToolFunction{
		Name:        "tailor_resume",
		Description: "Return the tailored resume data preserving all original sections",
		Parameters: obj(map[string]interface{}{
			"summary":         str("Tailored professional summary (2-3 sentences)"),
			"technicalSkills": map[string]interface{}{"type": "array", "items": skillCategory},
			"experience":      map[string]interface{}{"type": "array", "items": experienceItem},
			"projects":        strArray(""),
			"hackathons":      map[string]interface{}{"type": "array", "items": hackathonItem},
			"education":       map[string]interface{}{"type": "array", "items": educationItem},
			"contactInfo": obj(map[string]interface{}{
				"email":    str(""),
				"phone":    str(""),
				"location": str(""),
			}),
			"links": obj(map[string]interface{}{
				"portfolio": str(""),
				"linkedin":  str(""),
				"github":    str(""),
			}),
			"tips": str(""),
		}, "summary", "technicalSkills", "experience", "projects", "hackathons", "education", "contactInfo", "links", "tips"),
	}
}

func CoverLetterTool() ToolFunction {
	return ToolFunction{
		Name:        "generate_cover_letter",
		Description: "Return the generated cover letter",
		Parameters: obj(map[string]interface{}{
			"coverLetter": str("The full cover letter text"),
			"subject":     str("Suggested email subject line for submitting this cover letter"),
		}, "coverLetter", "subject"),
	}
}

// ValidateToolResult checks the decoded tool arguments against the tool's
// declared schema.
func ValidateToolResult(tool ToolFunction, doc []byte) error {
	schemaLoader := gojsonschema.NewGoLoader(tool.Parameters)
	docLoader := gojsonschema.NewBytesLoader(doc)

	res, err := gojsonschema.Validate(schemaLoader, docLoader)
	if err != nil {
		return err
	}
	if res.Valid() {
		return nil
	}

	var msgs []string
	for _, e := range res.Errors() {
		msgs = append(msgs, e.String())
	}
	return fmt.Errorf("%w: %s", ErrBadToolPayload, strings.Join(msgs, "; "))
}
