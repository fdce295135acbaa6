package site

import (
	"embed"
	"errors"
	"fmt"
	"html/template"
	"time"

	"gopkg.in/yaml.v3"

	"aquaflow/pkg/form"
)

// TemplateName is the name the landing page is rendered under
const TemplateName = "index.html.tmpl"

// CallbackEndpoint is the path the page form posts to
const CallbackEndpoint = "/api/callback"

//go:embed content.yaml templates/*.tmpl
var files embed.FS

// Feature is one "why choose us" card
type Feature struct {
	Title  string `yaml:"title"`
	Body   string `yaml:"body"`
	Accent string `yaml:"accent"`
}

// Content is the marketing copy loaded from content.yaml
type Content struct {
	BusinessName     string    `yaml:"business_name"`
	CTA              string    `yaml:"cta"`
	Headline         string    `yaml:"headline"`
	Lede             string    `yaml:"lede"`
	HeroImage        string    `yaml:"hero_image"`
	PhonePlaceholder string    `yaml:"phone_placeholder"`
	WhyTitle         string    `yaml:"why_title"`
	Features         []Feature `yaml:"features"`
	ServicesTitle    string    `yaml:"services_title"`
	Services         []string  `yaml:"services"`
	Footer           string    `yaml:"footer"`
}

// FormCopy carries the form state machine's labels into the page script
type FormCopy struct {
	Endpoint       string
	LabelIdle      string
	LabelLoading   string
	LabelSuccess   string
	SuccessMessage string
	ErrorMessage   string
	ResetDelayMs   int64
}

// Page is the template data for the landing page
type Page struct {
	Content
	Form FormCopy
	Year int
}

// LoadPage reads the embedded copy and combines it with the form labels
func LoadPage() (*Page, error) {
	data, err := files.ReadFile("content.yaml")
	if err != nil {
		return nil, fmt.Errorf("error reading page content: %w", err)
	}

	content, err := parseContent(data)
	if err != nil {
		return nil, err
	}

	return &Page{
		Content: *content,
		Form: FormCopy{
			Endpoint:       CallbackEndpoint,
			LabelIdle:      form.LabelIdle,
			LabelLoading:   form.LabelLoading,
			LabelSuccess:   form.LabelSuccess,
			SuccessMessage: form.SuccessMessage,
			ErrorMessage:   form.ErrorMessage,
			ResetDelayMs:   form.ResetDelay.Milliseconds(),
		},
		Year: time.Now().Year(),
	}, nil
}

func parseContent(data []byte) (*Content, error) {
	var content Content
	if err := yaml.Unmarshal(data, &content); err != nil {
		return nil, fmt.Errorf("error parsing page content: %w", err)
	}
	if content.BusinessName == "" {
		return nil, errors.New("page content: business_name is required")
	}
	if content.Headline == "" {
		return nil, errors.New("page content: headline is required")
	}
	return &content, nil
}

// Template parses the embedded landing page template
func Template() (*template.Template, error) {
	tmpl, err := template.ParseFS(files, "templates/*.tmpl")
	if err != nil {
		return nil, fmt.Errorf("error parsing page template: %w", err)
	}
	return tmpl, nil
}
