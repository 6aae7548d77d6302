package notification

import (
	"bytes"
	"embed"
	htmltemplate "html/template"
	"strings"
	texttemplate "text/template"

	"event-checkout/internal/domain/checkout"
	"event-checkout/internal/pkg/errs"
)

//go:embed templates/*
var templateFS embed.FS

// Email is one rendered message.
type Email struct {
	Subject string
	HTML    string
	Text    string
}

// EmailData is what a confirmation template sees: the order plus the
// participant the message is addressed to.
type EmailData struct {
	Payload
	Recipient ParticipantPayload
}

// Renderer loads templates named confirmation_<locale>{.html,.txt,_subject.txt}.
type Renderer struct{}

func NewRenderer() *Renderer {
	return &Renderer{}
}

// Render falls back to the primary locale when a locale has no templates.
func (r *Renderer) Render(locale checkout.Locale, data EmailData) (Email, error) {
	base := "confirmation_" + string(locale)
	if _, err := templateFS.ReadFile("templates/" + base + ".html"); err != nil {
		base = "confirmation_" + string(checkout.PrimaryLocale)
	}

	subject, err := r.renderFile(base+"_subject.txt", data, false)
	if err != nil {
		return Email{}, errs.Wrap(err, "render subject")
	}
	html, err := r.renderFile(base+".html", data, true)
	if err != nil {
		return Email{}, errs.Wrap(err, "render html")
	}
	text, err := r.renderFile(base+".txt", data, false)
	if err != nil {
		return Email{}, errs.Wrap(err, "render text")
	}
	return Email{Subject: strings.TrimSpace(subject), HTML: html, Text: text}, nil
}

func (r *Renderer) renderFile(name string, data EmailData, html bool) (string, error) {
	raw, err := templateFS.ReadFile("templates/" + name)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if html {
		t, err := htmltemplate.New(name).Parse(string(raw))
		if err != nil {
			return "", err
		}
		if err := t.Execute(&buf, data); err != nil {
			return "", err
		}
	} else {
		t, err := texttemplate.New(name).Parse(string(raw))
		if err != nil {
			return "", err
		}
		if err := t.Execute(&buf, data); err != nil {
			return "", err
		}
	}
	return buf.String(), nil
}
