// Package generation produces the templated resume and cover letter returned for an upload.
// The documents are fixed templates filled with the parsed contact details; no content is
// derived from the job description beyond its headline.
package generation

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/jonathan/resume-optimizer/internal/ingestion"
	"github.com/jonathan/resume-optimizer/internal/rendering"
	"github.com/jonathan/resume-optimizer/internal/resume"
)

// TimestampLayout is the format of the "Generated on" line.
const TimestampLayout = "2006-01-02 15:04:05"

// Placeholders used when the parsed record has no value for a contact field.
const (
	DefaultName  = "John Doe"
	DefaultEmail = "john.doe@email.com"
	DefaultPhone = "+1 (555) 123-4567"
)

const professionalSummary = "Experienced professional with strong background in the requirements mentioned in the job posting.\n" +
	"Optimized based on job description keywords and requirements."

// resumeSections are the fixed bullet lists of the optimized resume, in print order.
var resumeSections = []rendering.TemplateSection{
	{Title: "EXPERIENCE", Bullets: []string{
		"Enhanced experience descriptions based on job requirements",
		"Quantified achievements with relevant metrics",
		"Highlighted skills that match the job posting",
	}},
	{Title: "SKILLS", Bullets: []string{
		"Technical skills aligned with job requirements",
		"Soft skills relevant to the position",
		"Industry-specific competencies",
	}},
	{Title: "EDUCATION", Bullets: []string{
		"Relevant educational background",
		"Certifications that match job requirements",
	}},
}

// Resume renders the plain-text optimized resume.
func Resume(rec *resume.Record, jobDescription string, now time.Time) string {
	personal := contactOf(rec)

	var sb strings.Builder
	sb.WriteString("\nOPTIMIZED RESUME\n\n")
	sb.WriteString(personal.Name + "\n")
	sb.WriteString(personal.Email + "\n")
	sb.WriteString(personal.Phone + "\n")
	if headline := ingestion.Headline(jobDescription); headline != "" {
		sb.WriteString("\nTarget position: " + headline + "\n")
	}

	sb.WriteString("\nPROFESSIONAL SUMMARY\n")
	sb.WriteString(professionalSummary + "\n")

	for _, section := range resumeSections {
		sb.WriteString("\n" + section.Title + "\n")
		for _, bullet := range section.Bullets {
			sb.WriteString("• " + bullet + "\n")
		}
	}

	sb.WriteString("\nThis resume has been optimized using AI to match the job description provided.\n")
	sb.WriteString(fmt.Sprintf("Generated on: %s\n", now.Format(TimestampLayout)))
	return sb.String()
}

// CoverLetter renders the plain-text cover letter signed with the candidate's name.
func CoverLetter(rec *resume.Record, jobDescription string, now time.Time) string {
	personal := contactOf(rec)

	opening := "I am writing to express my strong interest in the position described in your job posting."
	if headline := ingestion.Headline(jobDescription); headline != "" {
		opening = fmt.Sprintf("I am writing to express my strong interest in the %s position described in your job posting.", headline)
	}

	return fmt.Sprintf(`
COVER LETTER

Dear Hiring Manager,

%s
Based on my background and the requirements outlined, I believe I would be an excellent
fit for this role.

My experience includes:
• Relevant skills that match your job requirements
• Proven track record of success in similar roles
• Strong technical and interpersonal abilities

I am particularly excited about this opportunity because it aligns perfectly with my
career goals and expertise. The job description highlights several areas where my
background would be valuable.

I would welcome the opportunity to discuss how my skills and experience can contribute
to your team's success. Thank you for considering my application.

Sincerely,
%s

Generated on: %s
`, opening, personal.Name, now.Format(TimestampLayout))
}

// ResumeLaTeX renders the optimized resume as a LaTeX document. Every value taken from
// the record or the job description is escaped before it reaches the template.
func ResumeLaTeX(rec *resume.Record, jobDescription string, now time.Time) (string, error) {
	escaped, err := escapeRecord(withDefaults(rec))
	if err != nil {
		return "", err
	}

	sections := make([]rendering.TemplateSection, len(resumeSections))
	for i, section := range resumeSections {
		bullets := make([]string, len(section.Bullets))
		for j, bullet := range section.Bullets {
			bullets[j] = rendering.EscapeLaTeX(bullet)
		}
		sections[i] = rendering.TemplateSection{Title: titleCase(section.Title), Bullets: bullets}
	}

	data := &rendering.TemplateData{
		Name:           escaped.Personal.Name,
		Email:          escaped.Personal.Email,
		Phone:          escaped.Personal.Phone,
		TargetPosition: rendering.EscapeLaTeX(ingestion.Headline(jobDescription)),
		Summary:        rendering.EscapeLaTeX(strings.ReplaceAll(professionalSummary, "\n", " ")),
		Sections:       sections,
		GeneratedOn:    rendering.EscapeLaTeX(now.Format(TimestampLayout)),
	}

	return rendering.RenderResume(data)
}

// escapeRecord runs the whole record through rendering.Escape and decodes the result
// back into a Record.
func escapeRecord(rec *resume.Record) (*resume.Record, error) {
	value, err := rendering.ValueOf(rec)
	if err != nil {
		return nil, &rendering.RenderError{Message: "failed to convert record", Cause: err}
	}

	data, err := rendering.Escape(value).MarshalJSON()
	if err != nil {
		return nil, &rendering.RenderError{Message: "failed to encode escaped record", Cause: err}
	}

	escaped := resume.NewRecord()
	if err := json.Unmarshal(data, escaped); err != nil {
		return nil, &rendering.RenderError{Message: "failed to decode escaped record", Cause: err}
	}
	return escaped, nil
}

// contactOf returns the record's contact block with placeholders for empty fields.
func contactOf(rec *resume.Record) resume.Personal {
	return withDefaults(rec).Personal
}

func withDefaults(rec *resume.Record) *resume.Record {
	out := resume.NewRecord()
	if rec != nil {
		copied := *rec
		out = &copied
	}
	if out.Personal.Name == "" {
		out.Personal.Name = DefaultName
	}
	if out.Personal.Email == "" {
		out.Personal.Email = DefaultEmail
	}
	if out.Personal.Phone == "" {
		out.Personal.Phone = DefaultPhone
	}
	return out
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return s[:1] + strings.ToLower(s[1:])
}
