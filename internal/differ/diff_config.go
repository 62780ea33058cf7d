package differ

import "github.com/aleister1102/siftview/internal/models"

// DefaultContextLines is the number of unchanged lines shown around each
// change in a unified diff.
const DefaultContextLines = 3

// DiffConfig holds configuration for content diffing
type DiffConfig struct {
	ContextLines int
	LeftLabel    string
	RightLabel   string
}

// DefaultDiffConfig returns default configuration
func DefaultDiffConfig() DiffConfig {
	return DiffConfig{
		ContextLines: DefaultContextLines,
		LeftLabel:    models.DiffLeftLabel,
		RightLabel:   models.DiffRightLabel,
	}
}
