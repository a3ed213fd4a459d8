package config

import "time"

// Config is the root application configuration.
type Config struct {
	Database   DatabaseConfig   `yaml:"database"`
	Log        LogConfig        `yaml:"log"`
	Events     EventsConfig     `yaml:"events"`
	Reputation ReputationConfig `yaml:"reputation"`
	Scheduler  SchedulerConfig  `yaml:"scheduler"`
	Migrations MigrationsConfig `yaml:"migrations"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"                env-required:"true"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"25"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"5"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
	ApplicationName string        `yaml:"application_name"   env:"DATABASE_APPLICATION_NAME"   env-default:"groupbuy-core"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// EventsConfig holds event bus settings.
type EventsConfig struct {
	// HandlerTimeout bounds a single handler invocation for one event.
	HandlerTimeout time.Duration `yaml:"handler_timeout" env:"EVENTS_HANDLER_TIMEOUT" env-default:"5s"`
}

// ReputationConfig holds reputation adjuster settings.
type ReputationConfig struct {
	MaxRetries int `yaml:"max_retries" env:"REPUTATION_MAX_RETRIES" env-default:"3"`
}

// SchedulerConfig holds the deadline scanner and retention sweep schedules.
// Specs use the standard five-field cron format.
type SchedulerConfig struct {
	Enabled        bool          `yaml:"enabled"         env:"SCHEDULER_ENABLED"         env-default:"true"`
	Timezone       string        `yaml:"timezone"        env:"SCHEDULER_TIMEZONE"        env-default:"Asia/Seoul"`
	DeadlineSpec   string        `yaml:"deadline_spec"   env:"SCHEDULER_DEADLINE_SPEC"   env-default:"0 9,18 * * *"`
	RetentionSpec  string        `yaml:"retention_spec"  env:"SCHEDULER_RETENTION_SPEC"  env-default:"0 2 * * *"`
	DeadlineWindow time.Duration `yaml:"deadline_window" env:"SCHEDULER_DEADLINE_WINDOW" env-default:"24h"`
	RetentionDays  int           `yaml:"retention_days"  env:"SCHEDULER_RETENTION_DAYS"  env-default:"30"`
	JobTimeout     time.Duration `yaml:"job_timeout"     env:"SCHEDULER_JOB_TIMEOUT"     env-default:"5m"`

	// Location is resolved from Timezone during validation.
	Location *time.Location `yaml:"-" env:"-"`
}

// MigrationsConfig controls schema migrations at startup.
type MigrationsConfig struct {
	AutoApply bool `yaml:"auto_apply" env:"MIGRATIONS_AUTO_APPLY" env-default:"true"`
}
