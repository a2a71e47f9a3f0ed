package cmd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/bnema/cgx-claimer/internal/adapters/api/rest"
	"github.com/bnema/cgx-claimer/internal/application"
	"github.com/bnema/cgx-claimer/internal/logging"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	configName = "cgx"
	envPrefix  = "CGX"

	keyConfigFile     = "config"
	keyBaseURL        = "base_url"
	keyAuthFile       = "auth_file"
	keySleepInterval  = "sleep_interval"
	keyStepDelay      = "step_delay"
	keyJitterMin      = "jitter.min"
	keyJitterMax      = "jitter.max"
	keyRequestTimeout = "request_timeout"
	keyDelayPolicy    = "delay_policy"
	keyLogLevel       = "log.level"
	keyLogFormat      = "log.format"

	defaultBaseURL        = "https://api.chillguyxmas.com"
	defaultAuthFile       = "auth.txt"
	defaultRequestTimeout = 30 * time.Second
)

type settings struct {
	BaseURL        string
	AuthFile       string
	RequestTimeout time.Duration
	LogLevel       string
	LogFormat      string
	Schedule       application.Config
}

var flagKeys = map[string]string{
	"config":       keyConfigFile,
	"base-url":     keyBaseURL,
	"auth-file":    keyAuthFile,
	"delay-policy": keyDelayPolicy,
	"log-level":    keyLogLevel,
	"log-format":   keyLogFormat,
}

func bindFlags(flags *pflag.FlagSet, v *viper.Viper) error {
	flags.String("config", "", "Config file (default: ./cgx.{toml,yaml} or $HOME/.config/cgx/cgx.{toml,yaml})")
	flags.String("base-url", defaultBaseURL, "Rewards API base URL")
	flags.String("auth-file", defaultAuthFile, "Credential file (.txt one token per line, .yaml or .toml)")
	flags.String("delay-policy", string(application.DelayPolicyLast), "How account timers set the next pass delay (last|min)")
	flags.String("log-level", "info", "Log level (debug|info|warn|error)")
	flags.String("log-format", logging.FormatConsole, "Log format (console|json)")

	for name, key := range flagKeys {
		if err := v.BindPFlag(key, flags.Lookup(name)); err != nil {
			return fmt.Errorf("bind flag %q: %w", name, err)
		}
	}

	return nil
}

func loadSettings(v *viper.Viper) (settings, error) {
	v.SetDefault(keyBaseURL, defaultBaseURL)
	v.SetDefault(keyAuthFile, defaultAuthFile)
	v.SetDefault(keySleepInterval, application.DefaultSleepInterval)
	v.SetDefault(keyStepDelay, application.DefaultStepDelay)
	v.SetDefault(keyJitterMin, application.DefaultJitterMin)
	v.SetDefault(keyJitterMax, application.DefaultJitterMax)
	v.SetDefault(keyRequestTimeout, defaultRequestTimeout)
	v.SetDefault(keyDelayPolicy, string(application.DelayPolicyLast))
	v.SetDefault(keyLogLevel, "info")
	v.SetDefault(keyLogFormat, logging.FormatConsole)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := readConfigFile(v); err != nil {
		return settings{}, err
	}

	policy, err := application.ParseDelayPolicy(strings.TrimSpace(v.GetString(keyDelayPolicy)))
	if err != nil {
		return settings{}, err
	}

	s := settings{
		BaseURL:        strings.TrimSpace(v.GetString(keyBaseURL)),
		AuthFile:       strings.TrimSpace(v.GetString(keyAuthFile)),
		RequestTimeout: v.GetDuration(keyRequestTimeout),
		LogLevel:       v.GetString(keyLogLevel),
		LogFormat:      v.GetString(keyLogFormat),
		Schedule: application.Config{
			SleepInterval: v.GetDuration(keySleepInterval),
			StepDelay:     v.GetDuration(keyStepDelay),
			JitterMin:     v.GetDuration(keyJitterMin),
			JitterMax:     v.GetDuration(keyJitterMax),
			DelayPolicy:   policy,
		},
	}

	if err := rest.ValidateBaseURL(s.BaseURL); err != nil {
		return settings{}, err
	}
	if s.AuthFile == "" {
		return settings{}, errors.New("auth file path is empty")
	}
	if err := s.Schedule.Validate(); err != nil {
		return settings{}, fmt.Errorf("invalid schedule: %w", err)
	}

	return s, nil
}

func readConfigFile(v *viper.Viper) error {
	if path := v.GetString(keyConfigFile); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("read config file: %w", err)
		}
		return nil
	}

	v.SetConfigName(configName)
	v.AddConfigPath(".")
	if homeDir, err := os.UserHomeDir(); err == nil {
		v.AddConfigPath(filepath.Join(homeDir, ".config", configName))
	}

	if err := v.ReadInConfig(); err != nil {
		var configNotFound viper.ConfigFileNotFoundError
		if !errors.As(err, &configNotFound) {
			return fmt.Errorf("read config file: %w", err)
		}
	}

	return nil
}
