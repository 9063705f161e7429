package share

import (
	"bytes"
	"fmt"
	"text/template"

	"principles/internal/card"
)

const (
	// DefaultPrincipleTemplate is the cast text for a single principle.
	DefaultPrincipleTemplate = "\"{{.Text}}\"\n\n#{{.ID}} of {{.Total}} Builder Principles\n\nView all at:"
	// DefaultEndTemplate is the cast text from the end card.
	DefaultEndTemplate = "I just read all {{.Total}} Builder Principles by {{.Author}}\n\nView them all at:"
)

// Templates renders share requests for cards.
type Templates struct {
	principle *template.Template
	end       *template.Template

	appURL         string
	author         string
	mentionFriends bool
}

// TemplateConfig configures NewTemplates. Empty templates use the defaults.
type TemplateConfig struct {
	Principle      string
	End            string
	AppURL         string
	Author         string
	MentionFriends bool
}

type templateData struct {
	ID     int
	Text   string
	Total  int
	Author string
}

// NewTemplates parses the configured templates.
func NewTemplates(cfg TemplateConfig) (*Templates, error) {
	if cfg.Principle == "" {
		cfg.Principle = DefaultPrincipleTemplate
	}
	if cfg.End == "" {
		cfg.End = DefaultEndTemplate
	}
	p, err := template.New("principle").Option("missingkey=error").Parse(cfg.Principle)
	if err != nil {
		return nil, fmt.Errorf("parse principle share template: %w", err)
	}
	e, err := template.New("end").Option("missingkey=error").Parse(cfg.End)
	if err != nil {
		return nil, fmt.Errorf("parse end share template: %w", err)
	}
	return &Templates{
		principle:      p,
		end:            e,
		appURL:         cfg.AppURL,
		author:         cfg.Author,
		mentionFriends: cfg.MentionFriends,
	}, nil
}

// ForUnit returns the share request for the card the user is looking at.
func (t *Templates) ForUnit(u card.Unit) (Request, error) {
	data := templateData{Total: u.Total, Author: t.author}
	tmpl := t.end
	embeds := []Embed{{URL: t.appURL}}
	if u.Kind == card.KindPrinciple {
		data.ID = u.Principle.ID
		data.Text = u.Principle.Text
		tmpl = t.principle
		embeds = []Embed{{Path: fmt.Sprintf("/share/%d", u.Principle.ID)}}
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return Request{}, fmt.Errorf("render %s share template: %w", tmpl.Name(), err)
	}
	return Request{
		Text:           buf.String(),
		Embeds:         embeds,
		MentionFriends: t.mentionFriends,
	}, nil
}
