package page

import (
	"bytes"
	_ "embed"
	"fmt"
	"html/template"
)

//go:embed index.html.tmpl
var indexTemplate string

// Event is the fixed event information shown in the page header and footer.
type Event struct {
	Title    string
	Location string
	Date     string
	Hours    string
	Year     string
}

type data struct {
	Event   Event
	Message string
}

// Renderer produces the registration page. It holds no per-request state and is safe
// for concurrent use.
type Renderer struct {
	tmpl  *template.Template
	event Event
}

func New(event Event) (*Renderer, error) {
	tmpl, err := template.New("index").Parse(indexTemplate)
	if err != nil {
		return nil, fmt.Errorf("parse page template: %w", err)
	}

	return &Renderer{tmpl: tmpl, event: event}, nil
}

// Render returns the full HTML document. The message is embedded in the page script as a
// JS string literal; an empty message renders the bare form.
func (r *Renderer) Render(message string) ([]byte, error) {
	var buf bytes.Buffer

	if err := r.tmpl.Execute(&buf, data{Event: r.event, Message: message}); err != nil {
		return nil, fmt.Errorf("render page: %w", err)
	}

	return buf.Bytes(), nil
}
