package gutenberg

// WarningType categorizes conversion warnings.
type WarningType string

const (
	WarningUnclosedFence   WarningType = "unclosed_fence"
	WarningNestingLimit    WarningType = "nesting_limit"
	WarningUnresolvedFence WarningType = "unresolved_fence"
	WarningUnknownBlock    WarningType = "unknown_block"
	WarningDroppedToken    WarningType = "dropped_token"
)

// Warning represents a non-fatal issue encountered during conversion.
// Conversion output is still produced; the affected region is passed through
// or omitted as described by Type.
type Warning struct {
	Type     WarningType `json:"type"`
	NodeType string      `json:"nodeType,omitempty"`
	Line     int         `json:"line,omitempty"`
	Message  string      `json:"message"`
}
