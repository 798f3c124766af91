package cards

import "strings"

// Card is the text content laid out beneath the card image.
type Card struct {
	Title     string   `json:"title"`
	Text      string   `json:"text"`
	Breakdown []string `json:"breakdown"`
	Examples  []string `json:"examples"`
}

// Heading returns the title, falling back to the flat text field.
func (c Card) Heading() string {
	if strings.TrimSpace(c.Title) != "" {
		return c.Title
	}
	return c.Text
}
