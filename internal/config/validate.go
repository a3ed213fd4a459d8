package config

import (
	"fmt"
	"time"
	_ "time/tzdata" // scheduler timezones must resolve in minimal images

	"github.com/robfig/cron/v3"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if c.Events.HandlerTimeout <= 0 {
		return fmt.Errorf("events.handler_timeout must be > 0 (got %s)", c.Events.HandlerTimeout)
	}

	if c.Reputation.MaxRetries < 1 {
		return fmt.Errorf("reputation.max_retries must be >= 1 (got %d)", c.Reputation.MaxRetries)
	}

	if err := c.Scheduler.validate(); err != nil {
		return fmt.Errorf("scheduler: %w", err)
	}

	return nil
}

func (s *SchedulerConfig) validate() error {
	loc, err := time.LoadLocation(s.Timezone)
	if err != nil {
		return fmt.Errorf("timezone %q: %w", s.Timezone, err)
	}
	s.Location = loc

	if _, err := cron.ParseStandard(s.DeadlineSpec); err != nil {
		return fmt.Errorf("deadline_spec %q: %w", s.DeadlineSpec, err)
	}
	if _, err := cron.ParseStandard(s.RetentionSpec); err != nil {
		return fmt.Errorf("retention_spec %q: %w", s.RetentionSpec, err)
	}
	if s.DeadlineWindow <= 0 {
		return fmt.Errorf("deadline_window must be > 0 (got %s)", s.DeadlineWindow)
	}
	if s.RetentionDays <= 0 {
		return fmt.Errorf("retention_days must be > 0 (got %d)", s.RetentionDays)
	}
	if s.JobTimeout <= 0 {
		return fmt.Errorf("job_timeout must be > 0 (got %s)", s.JobTimeout)
	}

	return nil
}
