package config

import "time"

// Config is the root configuration of the citext check tool.
type Config struct {
	Database DatabaseConfig `yaml:"database"`
	Log      LogConfig      `yaml:"log"`
	Check    CheckConfig    `yaml:"check"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"                env-required:"true"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"4"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"1"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// CheckConfig holds the round-trip check settings.
type CheckConfig struct {
	SamplesRaw string        `yaml:"samples" env:"CHECK_SAMPLES" env-default:"CaFeBaBe,Straße,ÀÉÎÕÜ"`
	Timeout    time.Duration `yaml:"timeout" env:"CHECK_TIMEOUT" env-default:"30s"`

	// Samples is populated by Validate from SamplesRaw.
	Samples []string `yaml:"-"`
}
