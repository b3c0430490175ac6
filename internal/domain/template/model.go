// Package template holds reusable reply templates for whatsapp and email.
package template

import (
	"strings"
	"time"

	"propdesk/inbox-api/internal/domain/message"
)

// Template is a canned reply the manager can insert into a conversation.
// Placeholders use {{name}} syntax and are substituted at render time.
type Template struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Channel   message.Channel `json:"channel"`
	Subject   *string         `json:"subject,omitempty"`
	Body      string          `json:"body"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// Render substitutes {{key}} placeholders in the body with the given values.
// Unknown placeholders are left verbatim so missing data stays visible.
func (t *Template) Render(values map[string]string) string {
	out := t.Body
	for key, value := range values {
		out = strings.ReplaceAll(out, "{{"+key+"}}", value)
	}
	return out
}
