package handlers

import (
	"strings"

	"careermatch/models"
	"careermatch/services"
)

// ValidationErrors collects field-level problems found before any AI call.
type ValidationErrors []string

func (e ValidationErrors) Error() string {
	return strings.Join(e, "; ")
}

func requireText(errs ValidationErrors, field, value string) ValidationErrors {
	if strings.TrimSpace(value) == "" {
		errs = append(errs, field+" is required")
	}
	return errs
}

// ValidateOpportunity checks the minimal opportunity shape shared by every
// AI endpoint. requireSkills is set for smart-match, which needs the posting's
// skill list to score against.
func ValidateOpportunity(op services.OpportunityInput, requireSkills bool) ValidationErrors {
	var errs ValidationErrors
	errs = requireText(errs, "opportunity.title", op.Title)
	errs = requireText(errs, "opportunity.company", op.Company)
	errs = requireText(errs, "opportunity.description", op.Description)
	if requireSkills && op.Skills == nil {
		errs = append(errs, "opportunity.skills must be a list")
	}
	return errs
}

// ValidateResumeForMatch checks the resume shape smart-match needs.
func ValidateResumeForMatch(r models.ResumeProfile) ValidationErrors {
	var errs ValidationErrors
	errs = requireText(errs, "resume.name", r.Name)
	if r.Skills == nil {
		errs = append(errs, "resume.skills must be a list")
	}
	if r.Projects == nil {
		errs = append(errs, "resume.projects must be a list")
	}
	return errs
}

// ValidateResumeForTailor checks the resume shape tailoring needs.
func ValidateResumeForTailor(r models.ResumeProfile) ValidationErrors {
	var errs ValidationErrors
	errs = requireText(errs, "resume.name", r.Name)
	return errs
}
