package config

// LoggingConfig configures logging.
type LoggingConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // console, json
}

// EffectiveLevel returns the level to log at; verbose forces debug.
func (c *LoggingConfig) EffectiveLevel(verbose bool) string {
	if verbose {
		return "debug"
	}
	return c.Level
}
