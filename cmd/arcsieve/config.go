package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/cwbudde/algo-arcsieve/dsp/pipeline"
	"github.com/jedisct1/dlog"
)

// Config is the on-disk TOML configuration. Keys that are absent keep the
// values from newConfig.
type Config struct {
	LogLevel  int    `toml:"log_level"`
	LogFile   string `toml:"log_file"`
	UseSyslog bool   `toml:"use_syslog"`

	ReportLog     string `toml:"report_log"`
	LogMaxSize    int    `toml:"log_files_max_size"`
	LogMaxAge     int    `toml:"log_files_max_age"`
	LogMaxBackups int    `toml:"log_files_max_backups"`

	SummaryFile string  `toml:"summary_file"`
	MonitorAge  float64 `toml:"monitor_age"`

	Pipeline pipeline.Config `toml:"pipeline"`
}

func newConfig() Config {
	return Config{
		LogLevel:      int(dlog.SeverityNotice),
		LogMaxSize:    10,
		LogMaxAge:     7,
		LogMaxBackups: 1,
		Pipeline:      pipeline.DefaultConfig(),
	}
}

// loadConfig decodes path over the defaults. An empty path returns the
// defaults unchanged.
func loadConfig(path string) (Config, error) {
	config := newConfig()
	if path == "" {
		return config, nil
	}

	md, err := toml.DecodeFile(path, &config)
	if err != nil {
		return Config{}, fmt.Errorf("arcsieve: unable to load [%s]: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Config{}, fmt.Errorf("arcsieve: unsupported keys in [%s]: %s", path, strings.Join(keys, ", "))
	}

	if err := config.validate(); err != nil {
		return Config{}, err
	}
	return config, nil
}

func (c Config) validate() error {
	if c.LogLevel < 0 || c.LogLevel >= int(dlog.SeverityLast) {
		return fmt.Errorf("arcsieve: log level must be in [%d,%d]: %d", dlog.SeverityDebug, dlog.SeverityLast-1, c.LogLevel)
	}
	if c.LogMaxSize <= 0 || c.LogMaxAge < 0 || c.LogMaxBackups < 0 {
		return errors.New("arcsieve: log rotation settings must not be negative and max size must be > 0")
	}
	return c.Pipeline.Validate()
}

// configureLogging applies the logging section. It runs after flags so the
// command line overrides the file.
func configureLogging(c Config, debug bool) {
	dlog.SetLogLevel(dlog.Severity(c.LogLevel))
	if debug {
		dlog.SetLogLevel(dlog.SeverityDebug)
	}

	if c.UseSyslog {
		dlog.UseSyslog(true)
	} else if c.LogFile != "" {
		if st, err := os.Stat(c.LogFile); err == nil && st.IsDir() {
			dlog.Fatalf("[%v] is a directory", c.LogFile)
		}
		dlog.UseLogFile(c.LogFile)
	}
}
