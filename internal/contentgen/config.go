package contentgen

// Config controls the behavior of the LLMGenerator.
type Config struct {
	// Validators run in order on every generated artifact; the first
	// failure stops the pipeline.
	Validators []Validator `mapstructure:"-"`

	MaxTokens   int     `mapstructure:"max_tokens"`
	Temperature float64 `mapstructure:"temperature"`

	// ItemsPerArtifact is how many cards, questions or rounds to request.
	ItemsPerArtifact int `mapstructure:"items_per_artifact"`

	// MaxAvoid caps the prior prompts listed for deduplication.
	MaxAvoid int `mapstructure:"max_avoid"`

	// MaxMisconceptions caps the misconception labels sent as context.
	MaxMisconceptions int `mapstructure:"max_misconceptions"`
}

// DefaultConfig returns a Config with the standard validator chain.
func DefaultConfig() Config {
	return Config{
		Validators: []Validator{
			&StructuralValidator{},
			&CoverageValidator{},
			&DedupValidator{},
		},
		MaxTokens:         2048,
		Temperature:       0.7,
		ItemsPerArtifact:  5,
		MaxAvoid:          8,
		MaxMisconceptions: 5,
	}
}

func (c Config) withDefaults() Config {
	d := DefaultConfig()
	if c.Validators == nil {
		c.Validators = d.Validators
	}
	if c.MaxTokens <= 0 {
		c.MaxTokens = d.MaxTokens
	}
	if c.ItemsPerArtifact <= 0 {
		c.ItemsPerArtifact = d.ItemsPerArtifact
	}
	if c.MaxAvoid <= 0 {
		c.MaxAvoid = d.MaxAvoid
	}
	if c.MaxMisconceptions <= 0 {
		c.MaxMisconceptions = d.MaxMisconceptions
	}
	return c
}
