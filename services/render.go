package services

import "github.com/microcosm-cc/bluemonday"

// Color tags understood by the outbound renderer
const (
	ColorGreen = "green"
	ColorBlue  = "blue"
	ColorRed   = "red"
	ColorGrey  = "grey"
)

// Fixed response prefixes, one per outcome kind
const (
	PrefixOK           = "✅"
	PrefixDeleted      = "🗑️"
	PrefixNotFound     = "❌"
	PrefixDuplicate    = "⚠️"
	PrefixUnauthorized = "⛔"
)

// Field is one labeled value in a rendered result
type Field struct {
	Name   string `json:"name"`
	Value  string `json:"value"`
	Inline bool   `json:"inline,omitempty"`
}

// Render is the render-ready structure handed to the outbound message
// renderer: a title, ordered labeled fields, an optional color/severity tag
// and footer, and a private flag for responses only the invoking user
// should see.
type Render struct {
	Title       string  `json:"title"`
	Description string  `json:"description,omitempty"`
	Fields      []Field `json:"fields,omitempty"`
	Color       string  `json:"color,omitempty"`
	Footer      string  `json:"footer,omitempty"`
	Private     bool    `json:"private,omitempty"`
}

var sanitizer = bluemonday.StrictPolicy()

// Clean strips any markup from user-entered free text before it reaches
// the renderer
func Clean(text string) string {
	return sanitizer.Sanitize(text)
}
