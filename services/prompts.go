package services

import (
	"fmt"
	"strings"

	"careermatch/models"
)

// OpportunityInput is the caller-supplied posting an AI endpoint works
// against. It is not required to exist in the static catalog.
type OpportunityInput struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Company     string   `json:"company"`
	Type        string   `json:"type"`
	Location    string   `json:"location"`
	Description string   `json:"description"`
	Skills      []string `json:"skills"`
}

// Clean applies the prompt-side field caps in place.
func (o *OpportunityInput) Clean() {
	o.Title = CleanText(o.Title, MaxListItemChars)
	o.Company = CleanText(o.Company, MaxListItemChars)
	o.Type = CleanText(o.Type, MaxListItemChars)
	o.Location = CleanText(o.Location, MaxListItemChars)
	o.Description = CleanText(o.Description, MaxDescriptionChars)
	o.Skills = CleanList(o.Skills, MaxSkillItems)
}

func CleanResume(r *models.ResumeProfile) {
	r.Name = CleanText(r.Name, MaxListItemChars)
	r.Skills = CleanList(r.Skills, MaxSkillItems)
	r.Projects = CleanList(r.Projects, MaxProjectItems)
	r.RawText = CleanText(r.RawText, MaxRawTextChars)
}

func AnalyzeResumeMessages(resumeText, fileName string) []ChatMessage {
	return []ChatMessage{
		{
			Role: "system",
			Content: `You are a resume parser. Extract structured information from resume text. Return JSON with exactly these fields:
- name: the person's full name
- skills: array of technical skills (max 10)
- projects: array of project names/titles (max 5)
- rawText: brief 2-sentence summary of the candidate

Be concise and accurate. Only return valid JSON, no markdown.`,
		},
		{
			Role:    "user",
			Content: fmt.Sprintf("Parse this resume (file: %s):\n\n%s", fileName, CleanText(resumeText, MaxResumeTextPrompt)),
		},
	}
}

func SmartMatchMessages(resume models.ResumeProfile, op OpportunityInput) []ChatMessage {
	return []ChatMessage{
		{
			Role: "system",
			Content: "You are a career matching expert. Compare a candidate's resume profile against an opportunity " +
				"and provide a compatibility analysis. Be specific and actionable. Adapt tone: more creative for " +
				"hackathons, more professional for corporate roles. Also provide concrete, actionable tips for how " +
				"the candidate can tailor their resume to improve their match score for this specific opportunity.",
		},
		{
			Role: "user",
			Content: fmt.Sprintf(`CANDIDATE PROFILE:
Name: %s
Skills: %s
Projects: %s
Summary: %s

OPPORTUNITY:
Title: %s
Company: %s
Type: %s
Location: %s
Description: %s
Required Skills: %s

Analyze the match. Provide a compatibility score, top highlights, a specific skill gap to bridge, and 3 actionable resume tips to improve the match score for this role.`,
				resume.Name, strings.Join(resume.Skills, ", "), strings.Join(resume.Projects, ", "), resume.RawText,
				op.Title, op.Company, op.Type, op.Location, op.Description, strings.Join(op.Skills, ", ")),
		},
	}
}

func OutreachMessages(resume *models.ResumeProfile, op OpportunityInput) []ChatMessage {
	candidateInfo := "No resume provided - write generic but compelling outreach."
	if resume != nil && resume.Name != "" {
		candidateInfo = fmt.Sprintf("Candidate: %s, Skills: %s, Projects: %s",
			resume.Name, strings.Join(resume.Skills, ", "), strings.Join(resume.Projects, ", "))
	}

	toneGuide := "Use a professional, concise tone. Emphasize value and results."
	if op.Type == string(models.OpportunityHackathon) {
		toneGuide = "Use an energetic, creative tone. Show passion for building and hacking."
	}

	return []ChatMessage{
		{
			Role: "system",
			Content: fmt.Sprintf("You are an expert career coach who writes compelling outreach. %s Avoid "+
				`"AI-speak" - no "leveraging", "synergies", "passionate about". Be human, specific, and memorable. `+
				"Use a hook from the candidate's background when available.", toneGuide),
		},
		{
			Role: "user",
			Content: fmt.Sprintf(`%s

Opportunity: %s at %s
Type: %s
Description: %s

Generate outreach materials.`, candidateInfo, op.Title, op.Company, op.Type, op.Description),
		},
	}
}

func TailorResumeMessages(resume models.ResumeProfile, op OpportunityInput) []ChatMessage {
	var experienceLines []string
	for _, e := range resume.Experience {
		experienceLines = append(experienceLines,
			fmt.Sprintf("%s at %s (%s): %s", e.Role, e.Company, e.Dates, strings.Join(e.Bullets, "; ")))
	}
	var educationLines []string
	for _, e := range resume.Education {
		educationLines = append(educationLines, fmt.Sprintf("%s - %s (%s)", e.Institution, e.Degree, e.Dates))
	}
	var hackathonLines []string
	for _, h := range resume.Hackathons {
		hackathonLines = append(hackathonLines, fmt.Sprintf("%s - %s: %s", h.Name, h.Achievement, h.Description))
	}

	orNone := func(s string) string {
		if s == "" {
			return "None"
		}
		return s
	}
	orListed := func(items []string, sep string) string {
		if len(items) == 0 {
			return "None listed"
		}
		return strings.Join(items, sep)
	}

	prompt := fmt.Sprintf(`You are a professional resume consultant. Given a candidate's REAL resume data and a target opportunity, tailor ONLY the summary and technical skills to match the role. PRESERVE all other sections EXACTLY as they are.

CANDIDATE RESUME:
Name: %s
Contact: %s | %s | %s
Links: Portfolio: %s | LinkedIn: %s | GitHub: %s
Skills: %s
Experience:
%s
Education:
%s
Hackathons:
%s
Projects: %s
Raw Text: %s

TARGET OPPORTUNITY:
Title: %s
Company: %s
Type: %s
Description: %s
Required Skills: %s

INSTRUCTIONS:
1. SUMMARY: Write a tailored 2-3 sentence professional summary for this specific role.
2. TECHNICAL SKILLS: Reorganize the candidate's EXISTING skills into 2-3 categories, prioritizing those matching the opportunity. Do NOT invent new skills.
3. EXPERIENCE: Rewrite ONLY the bullet points for each experience entry using Google's X,Y,Z method: "Accomplished [X] as measured by [Y], by doing [Z]." Start each bullet with a strong action verb (e.g., Engineered, Spearheaded, Optimized, Architected, Delivered, Automated, Reduced, Increased). Include quantifiable metrics where appropriate (percentages, numbers, time saved, users impacted). PRESERVE the company, role, and dates EXACTLY. Do NOT add or remove any experience entries.
4. PROJECTS: Return the candidate's projects EXACTLY as provided. Do NOT modify, add, or remove any projects.
5. HACKATHONS: Return the candidate's hackathon entries EXACTLY as provided.
6. EDUCATION: Return the candidate's education EXACTLY as provided.
7. CONTACT INFO & LINKS: Pass through exactly as provided.
8. TIPS: Brief explanation of what you tailored and why.

CRITICAL: Do NOT fabricate any projects, experience, hackathons, or education. Only tailor the summary, skill categorization, and rewrite experience bullets using the X,Y,Z format with real information from the candidate's resume.

You MUST respond using the tailor_resume tool.`,
		resume.Name,
		resume.ContactInfo.Email, resume.ContactInfo.Phone, resume.ContactInfo.Location,
		valueOr(resume.Links.Portfolio, "N/A"), valueOr(resume.Links.LinkedIn, "N/A"), valueOr(resume.Links.GitHub, "N/A"),
		orListed(resume.Skills, ", "),
		orNone(strings.Join(experienceLines, "\n")),
		orNone(strings.Join(educationLines, "\n")),
		orNone(strings.Join(hackathonLines, "\n")),
		orListed(resume.Projects, "; "),
		valueOr(CleanText(resume.RawText, MaxRawTextChars), "N/A"),
		op.Title, op.Company, op.Type, op.Description,
		valueOr(strings.Join(op.Skills, ", "), "Not specified"))

	return []ChatMessage{{Role: "user", Content: prompt}}
}

func CoverLetterMessages(resume models.ResumeProfile, op OpportunityInput, tailored *models.TailoredResume) []ChatMessage {
	skillsInfo := valueOr(strings.Join(resume.Skills, ", "), "Not provided")
	projectsInfo := valueOr(strings.Join(resume.Projects, ", "), "Not provided")
	summaryInfo := valueOr(resume.RawText, "Not provided")

	if tailored != nil {
		if len(tailored.TechnicalSkills) > 0 {
			var cats []string
			for _, cat := range tailored.TechnicalSkills {
				cats = append(cats, fmt.Sprintf("%s: %s", cat.Category, strings.Join(cat.Skills, ", ")))
			}
			skillsInfo = strings.Join(cats, "\n")
		}
		if len(tailored.Projects) > 0 {
			projectsInfo = strings.Join(tailored.Projects, "\n")
		}
		if tailored.Summary != "" {
			summaryInfo = tailored.Summary
		}
	}

	prompt := fmt.Sprintf(`You are a professional career coach. Write a compelling, personalized cover letter for the following candidate and job opportunity.

CANDIDATE INFO:
Name: %s
Summary: %s
Skills: %s
Projects/Achievements: %s

TARGET OPPORTUNITY:
Title: %s
Company: %s
Type: %s
Description: %s
Required Skills: %s

INSTRUCTIONS:
- Write a professional cover letter (3-4 paragraphs)
- Opening: Hook with a specific achievement or passion relevant to the role
- Body: Connect candidate's skills and projects to the job requirements
- Closing: Express enthusiasm and call to action
- Tone: Professional but authentic, no clichés
- Do NOT use "Dear Hiring Manager" - use "Dear %s Team"
- Keep it under 400 words

You MUST respond using the generate_cover_letter tool.`,
		valueOr(resume.Name, "Candidate"), summaryInfo, skillsInfo, projectsInfo,
		op.Title, op.Company, op.Type, op.Description,
		valueOr(strings.Join(op.Skills, ", "), "Not specified"),
		op.Company)

	return []ChatMessage{{Role: "user", Content: prompt}}
}

func valueOr(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}
