// Package rendering provides functionality to render LaTeX resumes from templates.
package rendering

import (
	"embed"
	"fmt"
	"os"
	"strings"
	"text/template"
)

//go:embed templates/resume.tex.tmpl
var templateFS embed.FS

const defaultTemplate = "templates/resume.tex.tmpl"

// TemplateData represents the data structure passed to the LaTeX template.
// Every field must already be LaTeX-escaped; the template inserts values verbatim.
type TemplateData struct {
	Name           string
	Email          string
	Phone          string
	TargetPosition string
	Summary        string
	Sections       []TemplateSection
	GeneratedOn    string
}

// TemplateSection is a titled bullet list in the rendered resume.
type TemplateSection struct {
	Title   string
	Bullets []string
}

// RenderResume renders data with the built-in resume template.
func RenderResume(data *TemplateData) (string, error) {
	return RenderResumeWithTemplate(data, "")
}

// RenderResumeWithTemplate renders data with the template at templatePath,
// or the built-in template when templatePath is empty.
func RenderResumeWithTemplate(data *TemplateData, templatePath string) (string, error) {
	if data == nil {
		return "", &RenderError{Message: "template data is nil"}
	}

	tmpl, err := parseTemplate(templatePath)
	if err != nil {
		return "", err
	}

	var result strings.Builder
	if err := tmpl.Execute(&result, data); err != nil {
		return "", &TemplateError{
			Message: "failed to execute template",
			Cause:   err,
		}
	}

	return result.String(), nil
}

// parseTemplate reads and parses a LaTeX template file
func parseTemplate(templatePath string) (*template.Template, error) {
	var (
		content []byte
		err     error
	)
	if templatePath == "" {
		content, err = templateFS.ReadFile(defaultTemplate)
	} else {
		content, err = os.ReadFile(templatePath)
	}
	if err != nil {
		if os.IsNotExist(err) {
			return nil, &TemplateError{
				Message: fmt.Sprintf("template file not found: %s", templatePath),
				Cause:   err,
			}
		}
		return nil, &TemplateError{
			Message: fmt.Sprintf("failed to read template file: %s", templatePath),
			Cause:   err,
		}
	}

	// escape is available for templates that interpolate raw text
	tmpl, err := template.New("resume").Funcs(template.FuncMap{
		"escape": EscapeLaTeX,
	}).Parse(string(content))
	if err != nil {
		return nil, &TemplateError{
			Message: "failed to parse template",
			Cause:   err,
		}
	}

	return tmpl, nil
}
