package spotlight

import "github.com/dkoosis/spotlight/pkg/host"

// Config is a runner configuration that answers every query from its base
// but hands the runner a spotlight logger in place of the console logger.
type Config struct {
	host.Config
	logger host.Logger
}

// NewConfig wraps base, substituting logger for its console logger.
func NewConfig(base host.Config, logger host.Logger) *Config {
	return &Config{Config: base, logger: logger}
}

// Loggers returns the base loggers with each console logger replaced.
func (c *Config) Loggers() []host.Logger {
	base := c.Config.Loggers()
	loggers := make([]host.Logger, 0, len(base))
	for _, l := range base {
		if _, ok := l.(*host.ConsoleLogger); ok {
			loggers = append(loggers, c.logger)
			continue
		}
		loggers = append(loggers, l)
	}
	return loggers
}
