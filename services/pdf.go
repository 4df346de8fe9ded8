package services

import (
	"context"
	"html/template"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"

	"careermatch/models"
)

var resumeTemplate = template.Must(template.New("resume").
	Funcs(template.FuncMap{"join": strings.Join}).
	Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<style>
body { font-family: Georgia, serif; margin: 40px; color: #222; }
h1 { margin-bottom: 2px; font-size: 26px; }
h2 { font-size: 15px; border-bottom: 1px solid #999; padding-bottom: 2px; margin-top: 18px; }
p, li { font-size: 12px; line-height: 1.45; }
.contact { font-size: 11px; color: #555; }
.entry-head { font-weight: bold; margin-bottom: 2px; }
ul { margin: 4px 0 8px 18px; padding: 0; }
</style>
</head>
<body>
<h1>{{.Name}}</h1>
<p class="contact">{{.Contact}}</p>
{{if .Resume.Summary}}<h2>Summary</h2><p>{{.Resume.Summary}}</p>{{end}}
{{if .Resume.TechnicalSkills}}<h2>Technical Skills</h2>
{{range .Resume.TechnicalSkills}}<p><b>{{.Category}}:</b> {{join .Skills ", "}}</p>{{end}}{{end}}
{{if .Resume.Experience}}<h2>Experience</h2>
{{range .Resume.Experience}}<p class="entry-head">{{.Role}}, {{.Company}} ({{.Dates}})</p>
<ul>{{range .Bullets}}<li>{{.}}</li>{{end}}</ul>{{end}}{{end}}
{{if .Resume.Projects}}<h2>Projects</h2><ul>{{range .Resume.Projects}}<li>{{.}}</li>{{end}}</ul>{{end}}
{{if .Resume.Hackathons}}<h2>Hackathons</h2>
<ul>{{range .Resume.Hackathons}}<li>{{.Name}} - {{.Achievement}}: {{.Description}}</li>{{end}}</ul>{{end}}
{{if .Resume.Education}}<h2>Education</h2>
{{range .Resume.Education}}<p>{{.Institution}} - {{.Degree}} ({{.Dates}})</p>{{end}}{{end}}
</body>
</html>`))

var coverLetterTemplate = template.Must(template.New("letter").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<style>
body { font-family: Georgia, serif; margin: 50px; color: #222; }
h1 { font-size: 16px; }
p { font-size: 12px; line-height: 1.5; }
</style>
</head>
<body>
{{if .Subject}}<h1>{{.Subject}}</h1>{{end}}
{{range .Paragraphs}}<p>{{.}}</p>{{end}}
</body>
</html>`))

// BuildResumeHTML renders a tailored resume into the export HTML layout.
func BuildResumeHTML(name string, t models.TailoredResume) (string, error) {
	var contactParts []string
	for _, part := range []string{t.ContactInfo.Email, t.ContactInfo.Phone, t.ContactInfo.Location,
		t.Links.Portfolio, t.Links.LinkedIn, t.Links.GitHub} {
		if part != "" {
			contactParts = append(contactParts, part)
		}
	}

	var sb strings.Builder
	err := resumeTemplate.Execute(&sb, struct {
		Name    string
		Contact string
		Resume  models.TailoredResume
	}{Name: name, Contact: strings.Join(contactParts, " | "), Resume: t})
	if err != nil {
		return "", err
	}
	return sb.String(), nil
}

// BuildCoverLetterHTML renders a cover letter into the export HTML layout.
func BuildCoverLetterHTML(subject, body string) (string, error) {
	var paragraphs []string
	for _, para := range strings.Split(body, "\n\n") {
		para = strings.TrimSpace(para)
		if para != "" {
			paragraphs = append(paragraphs, para)
		}
	}

	var sb strings.Builder
	err := coverLetterTemplate.Execute(&sb, struct {
		Subject    string
		Paragraphs []string
	}{Subject: subject, Paragraphs: paragraphs})
	if err != nil {
		return "", err
	}
	return sb.String(), nil
}

// PDFRenderer prints HTML to A4 PDF through headless Chrome.
type PDFRenderer struct{}

func NewPDFRenderer() *PDFRenderer { return &PDFRenderer{} }

func (r *PDFRenderer) RenderHTMLToPDF(ctx context.Context, html string) ([]byte, error) {
	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", true),
		chromedp.Flag("no-sandbox", true),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("disable-dev-shm-usage", true),
	)
	if p := os.Getenv("CHROME_PATH"); p != "" {
		opts = append(opts, chromedp.ExecPath(p))
	}

	allocCtx, cancel := chromedp.NewExecAllocator(ctx, opts...)
	defer cancel()

	cctx, cancelCtx := chromedp.NewContext(allocCtx)
	defer cancelCtx()

	ctx2, cancel2 := context.WithTimeout(cctx, 60*time.Second)
	defer cancel2()

	tmpDir, err := os.MkdirTemp("", "export-")
	if err != nil {
		return nil, err
	}
	defer os.RemoveAll(tmpDir)

	htmlPath := filepath.Join(tmpDir, "index.html")
	if err := os.WriteFile(htmlPath, []byte(html), 0o644); err != nil {
		return nil, err
	}

	var pdfBuf []byte
	err = chromedp.Run(ctx2,
		chromedp.Navigate("file://"+htmlPath),
		chromedp.WaitReady("body", chromedp.ByQuery),
		chromedp.ActionFunc(func(ctx context.Context) error {
			var err error
			// A4: 210mm x 297mm
			pdfBuf, _, err = page.PrintToPDF().WithPrintBackground(true).
				WithPaperWidth(8.27).
				WithPaperHeight(11.69).
				WithPreferCSSPageSize(true).
				Do(ctx)
			return err
		}),
	)
	if err != nil {
		return nil, err
	}
	return pdfBuf, nil
}
