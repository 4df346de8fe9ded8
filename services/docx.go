package services

import (
	"io"
	"strings"

	"baliance.com/gooxml/document"
	"baliance.com/gooxml/measurement"

	"careermatch/models"
)

func docxHeading(doc *document.Document, text string) {
	para := doc.AddParagraph()
	run := para.AddRun()
	run.Properties().SetBold(true)
	run.Properties().SetSize(13 * measurement.Point)
	run.AddText(text)
}

func docxLine(doc *document.Document, text string) {
	doc.AddParagraph().AddRun().AddText(text)
}

func docxBullet(doc *document.Document, text string) {
	doc.AddParagraph().AddRun().AddText("• " + text)
}

// RenderTailoredResumeDocx writes a Word document for a tailored resume.
func RenderTailoredResumeDocx(name string, t models.TailoredResume, w io.Writer) error {
	doc := document.New()

	title := doc.AddParagraph()
	titleRun := title.AddRun()
	titleRun.Properties().SetBold(true)
	titleRun.Properties().SetSize(18 * measurement.Point)
	titleRun.AddText(name)

	var contactParts []string
	for _, part := range []string{t.ContactInfo.Email, t.ContactInfo.Phone, t.ContactInfo.Location} {
		if part != "" {
			contactParts = append(contactParts, part)
		}
	}
	for _, link := range []string{t.Links.Portfolio, t.Links.LinkedIn, t.Links.GitHub} {
		if link != "" {
			contactParts = append(contactParts, link)
		}
	}
	if len(contactParts) > 0 {
		docxLine(doc, strings.Join(contactParts, " | "))
	}

	if t.Summary != "" {
		docxHeading(doc, "Summary")
		docxLine(doc, t.Summary)
	}

	if len(t.TechnicalSkills) > 0 {
		docxHeading(doc, "Technical Skills")
		for _, cat := range t.TechnicalSkills {
			docxLine(doc, cat.Category+": "+strings.Join(cat.Skills, ", "))
		}
	}

	if len(t.Experience) > 0 {
		docxHeading(doc, "Experience")
		for _, e := range t.Experience {
			entry := doc.AddParagraph()
			run := entry.AddRun()
			run.Properties().SetBold(true)
			run.AddText(e.Role + ", " + e.Company + " (" + e.Dates + ")")
			for _, b := range e.Bullets {
				docxBullet(doc, b)
			}
		}
	}

	if len(t.Projects) > 0 {
		docxHeading(doc, "Projects")
		for _, p := range t.Projects {
			docxBullet(doc, p)
		}
	}

	if len(t.Hackathons) > 0 {
		docxHeading(doc, "Hackathons")
		for _, h := range t.Hackathons {
			docxBullet(doc, h.Name+" - "+h.Achievement+": "+h.Description)
		}
	}

	if len(t.Education) > 0 {
		docxHeading(doc, "Education")
		for _, e := range t.Education {
			docxLine(doc, e.Institution+" - "+e.Degree+" ("+e.Dates+")")
		}
	}

	return doc.Save(w)
}

// RenderCoverLetterDocx writes a Word document for a cover letter.
func RenderCoverLetterDocx(subject, body string, w io.Writer) error {
	doc := document.New()

	if subject != "" {
		heading := doc.AddParagraph()
		run := heading.AddRun()
		run.Properties().SetBold(true)
		run.Properties().SetSize(14 * measurement.Point)
		run.AddText(subject)
	}

	for _, para := range strings.Split(body, "\n\n") {
		para = strings.TrimSpace(para)
		if para == "" {
			continue
		}
		docxLine(doc, para)
	}

	return doc.Save(w)
}
