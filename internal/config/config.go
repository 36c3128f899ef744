// Package config loads focusloop settings from defaults, an optional config
// file and FOCUSLOOP_ environment variables.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/abhisek/focusloop/internal/contentgen"
	"github.com/abhisek/focusloop/internal/curriculum"
	"github.com/abhisek/focusloop/internal/diagnosis"
	"github.com/abhisek/focusloop/internal/engine"
	"github.com/abhisek/focusloop/internal/httpapi"
	"github.com/abhisek/focusloop/internal/llm"
	"github.com/abhisek/focusloop/internal/logging"
	"github.com/abhisek/focusloop/internal/redisx"
	"github.com/abhisek/focusloop/internal/scaffold"
	"github.com/abhisek/focusloop/internal/session"
	"github.com/abhisek/focusloop/internal/spacedrep"
	"github.com/abhisek/focusloop/internal/store"
	"github.com/abhisek/focusloop/internal/telemetry"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment override, e.g. FOCUSLOOP_LOG_LEVEL.
const EnvPrefix = "FOCUSLOOP"

// Config holds all configuration for focusloop.
type Config struct {
	Database  DatabaseConfig            `mapstructure:"database"`
	Log       logging.Config            `mapstructure:"log"`
	Server    httpapi.Config            `mapstructure:"server"`
	Redis     redisx.Config             `mapstructure:"redis"`
	LLM       llm.Config                `mapstructure:"llm"`
	Generator contentgen.Config         `mapstructure:"generator"`
	Evaluator diagnosis.EvaluatorConfig `mapstructure:"evaluator"`
	Session   session.Config            `mapstructure:"session"`
	Review    spacedrep.Config          `mapstructure:"review"`
	Scaffold  scaffold.Config           `mapstructure:"scaffold"`
	Retry     store.RetryConfig         `mapstructure:"retry"`
	Engine    engine.Config             `mapstructure:"engine"`
	Telemetry telemetry.Config          `mapstructure:"telemetry"`

	// Curriculum replaces the built-in curriculum when non-empty.
	Curriculum []curriculum.Entry `mapstructure:"curriculum"`
}

// DatabaseConfig selects the SQL backend.
type DatabaseConfig struct {
	Driver string `mapstructure:"driver"`
	// DSN is a file path for sqlite or a connection URL for postgres. An
	// empty sqlite DSN uses the default data directory.
	DSN string `mapstructure:"dsn"`
}

// Load reads configuration. path may be empty, in which case
// focusloop.yaml is looked up in the working directory and
// $HOME/.config/focusloop; a missing file is not an error.
func Load(path string) (*Config, error) {
	v := viper.New()
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("focusloop")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.config/focusloop")
	}

	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	cfg.LLM.Discover()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the settings that cannot be defaulted.
func (c *Config) Validate() error {
	switch c.Database.Driver {
	case store.DriverSQLite, store.DriverPostgres:
	default:
		return fmt.Errorf("database.driver: unknown driver %q", c.Database.Driver)
	}
	if c.Database.Driver == store.DriverPostgres && c.Database.DSN == "" {
		return fmt.Errorf("database.dsn is required for postgres")
	}
	if err := c.LLM.Validate(); err != nil {
		return fmt.Errorf("llm: %w", err)
	}
	if c.Session.MinLoops > c.Session.MaxLoops {
		return fmt.Errorf("session: min_loops %d exceeds max_loops %d", c.Session.MinLoops, c.Session.MaxLoops)
	}
	if len(c.Curriculum) > 0 {
		if _, err := curriculum.New(c.Curriculum); err != nil {
			return fmt.Errorf("curriculum: %w", err)
		}
	}
	return nil
}

// LoadCurriculum returns the configured curriculum or the built-in one.
func (c *Config) LoadCurriculum() (*curriculum.Curriculum, error) {
	if len(c.Curriculum) == 0 {
		return curriculum.Default(), nil
	}
	return curriculum.New(c.Curriculum)
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("database.driver", store.DriverSQLite)
	v.SetDefault("database.dsn", "")

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")

	srv := httpapi.DefaultConfig()
	v.SetDefault("server.addr", srv.Addr)
	v.SetDefault("server.allowed_origins", srv.AllowedOrigins)
	v.SetDefault("server.read_timeout", srv.ReadTimeout)
	v.SetDefault("server.write_timeout", srv.WriteTimeout)

	rd := redisx.DefaultConfig()
	v.SetDefault("redis.addr", "")
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("redis.channel", rd.Channel)
	v.SetDefault("redis.key_prefix", rd.KeyPrefix)
	v.SetDefault("redis.cache_ttl", rd.CacheTTL)

	l := llm.DefaultConfig()
	v.SetDefault("llm.provider", "")
	v.SetDefault("llm.timeout", l.Timeout)
	v.SetDefault("llm.anthropic.api_key", "")
	v.SetDefault("llm.anthropic.model", l.Anthropic.Model)
	v.SetDefault("llm.anthropic.base_url", "")
	v.SetDefault("llm.openai.api_key", "")
	v.SetDefault("llm.openai.model", l.OpenAI.Model)
	v.SetDefault("llm.openai.base_url", "")
	v.SetDefault("llm.gemini.api_key", "")
	v.SetDefault("llm.gemini.model", l.Gemini.Model)
	v.SetDefault("llm.openrouter.api_key", "")
	v.SetDefault("llm.openrouter.model", l.OpenRouter.Model)
	v.SetDefault("llm.openrouter.base_url", "")
	v.SetDefault("llm.retry.max_attempts", l.Retry.MaxAttempts)
	v.SetDefault("llm.retry.initial_wait", l.Retry.InitialWait)
	v.SetDefault("llm.retry.max_wait", l.Retry.MaxWait)
	v.SetDefault("llm.retry.multiplier", l.Retry.Multiplier)

	g := contentgen.DefaultConfig()
	v.SetDefault("generator.max_tokens", g.MaxTokens)
	v.SetDefault("generator.temperature", g.Temperature)
	v.SetDefault("generator.items_per_artifact", g.ItemsPerArtifact)
	v.SetDefault("generator.max_avoid", g.MaxAvoid)
	v.SetDefault("generator.max_misconceptions", g.MaxMisconceptions)

	e := diagnosis.DefaultEvaluatorConfig()
	v.SetDefault("evaluator.max_tokens", e.MaxTokens)
	v.SetDefault("evaluator.temperature", e.Temperature)

	s := session.DefaultConfig()
	v.SetDefault("session.mastery_threshold", s.MasteryThreshold)
	v.SetDefault("session.rolling_weight", s.RollingWeight)
	v.SetDefault("session.subtopics_per_loop", s.SubtopicsPerLoop)
	v.SetDefault("session.min_loops", s.MinLoops)
	v.SetDefault("session.max_loops", s.MaxLoops)
	v.SetDefault("session.default_duration_seconds", s.DefaultDurationSeconds)
	v.SetDefault("session.sweep_grace", s.SweepGrace)
	v.SetDefault("session.sweep_interval", s.SweepInterval)
	v.SetDefault("session.retention", s.Retention)
	v.SetDefault("session.raise_at", s.RaiseAt)
	v.SetDefault("session.lower_at", s.LowerAt)
	v.SetDefault("session.frustration_lower_at", s.FrustrationLowerAt)
	v.SetDefault("session.max_hints", s.MaxHints)

	r := spacedrep.DefaultConfig()
	v.SetDefault("review.mastery_threshold", r.MasteryThreshold)
	v.SetDefault("review.max_new_subtopics", r.MaxNewSubtopics)
	v.SetDefault("review.gain_per_minute", r.GainPerMinute)
	v.SetDefault("review.max_gain", r.MaxGain)

	sc := scaffold.DefaultConfig()
	v.SetDefault("scaffold.max_hints", sc.MaxHints)
	v.SetDefault("scaffold.struggle.window", sc.Struggle.Window)
	v.SetDefault("scaffold.struggle.avg_hints", sc.Struggle.AvgHints)
	v.SetDefault("scaffold.struggle.avg_secs", sc.Struggle.AvgSecs)
	v.SetDefault("scaffold.high_below", sc.HighBelow)
	v.SetDefault("scaffold.medium_below", sc.MediumBelow)

	rt := store.DefaultRetryConfig()
	v.SetDefault("retry.max_attempts", rt.MaxAttempts)
	v.SetDefault("retry.initial_wait", rt.InitialWait)
	v.SetDefault("retry.max_wait", rt.MaxWait)
	v.SetDefault("retry.multiplier", rt.Multiplier)

	en := engine.DefaultConfig()
	v.SetDefault("engine.answer_window", en.AnswerWindow)
	v.SetDefault("engine.snapshot_every", en.SnapshotEvery)
	v.SetDefault("engine.snapshot_keep", en.SnapshotKeep)
	v.SetDefault("engine.mastery_threshold", en.MasteryThreshold)
	v.SetDefault("engine.mission_ttl", en.MissionTTL)

	t := telemetry.DefaultConfig()
	v.SetDefault("telemetry.enabled", t.Enabled)
	v.SetDefault("telemetry.service_name", t.ServiceName)
	v.SetDefault("telemetry.environment", "")
	v.SetDefault("telemetry.sample_ratio", t.SampleRatio)
	v.SetDefault("telemetry.endpoint", "")
	v.SetDefault("telemetry.insecure", false)
}
