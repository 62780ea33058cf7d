package config

// DiffConfig controls the unified diff presentation
type DiffConfig struct {
	ContextLines int `json:"context_lines" yaml:"context_lines" validate:"min=0,max=100"`
}

// NewDefaultDiffConfig creates default diff configuration
func NewDefaultDiffConfig() DiffConfig {
	return DiffConfig{
		ContextLines: DefaultDiffContextLines,
	}
}
