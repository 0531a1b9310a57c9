package converter

import "github.com/rgonek/markwp/gutenberg"

// Result holds the output of a conversion.
type Result struct {
	Content  string              `json:"content"`
	Warnings []gutenberg.Warning `json:"warnings,omitempty"`
}
