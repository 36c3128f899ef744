package contentgen

import (
	"time"

	"github.com/abhisek/focusloop/internal/llm"
	"github.com/sirupsen/logrus"
)

// NewGenerator assembles the generator used by the engine: the LLM when a
// provider is configured, with templates behind it.
func NewGenerator(provider llm.Provider, cfg Config, timeout time.Duration, log logrus.FieldLogger) Generator {
	cfg = cfg.withDefaults()
	var primary Generator
	if provider != nil {
		primary = New(provider, cfg)
	}
	return WithFallback(primary, NewTemplate(cfg.ItemsPerArtifact), timeout, log)
}
