package config

import (
	"errors"
	"time"

	"github.com/cloudmig/fieldsync/internal/cloud"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// OrgSettings holds the credentials of one organization.
type OrgSettings struct {
	OrgID       string `mapstructure:"org_id"`
	AccessToken string `mapstructure:"access_token"`
}

// Settings application settings
type Settings struct {
	Environment string        `mapstructure:"environment"`
	Timeout     time.Duration `mapstructure:"timeout"`
	DryRun      bool          `mapstructure:"dry_run"`
	V1          OrgSettings   `mapstructure:"v1"`
	V2          OrgSettings   `mapstructure:"v2"`
}

// LoadSettings loads settings from environment variables only.
func LoadSettings() (*Settings, error) {
	return LoadSettingsWithFlags(nil)
}

// LoadSettingsWithFlags loads settings with optional CLI flag overrides.
// Priority: CLI flags > environment variables > defaults. The process
// environment may itself have been populated from a .env file by main.
// If flags is nil, only env vars and defaults are used.
func LoadSettingsWithFlags(flags *pflag.FlagSet) (*Settings, error) {
	v := viper.New()

	// Default values
	v.SetDefault("environment", "")
	v.SetDefault("timeout", 30*time.Second)
	v.SetDefault("dry_run", false)

	// Environment variables
	v.SetEnvPrefix("FIELDSYNC")
	v.AutomaticEnv()

	// Bind specific env vars for nested config
	_ = v.BindEnv("environment", "FIELDSYNC_ENVIRONMENT")
	_ = v.BindEnv("timeout", "FIELDSYNC_TIMEOUT")
	_ = v.BindEnv("dry_run", "FIELDSYNC_DRY_RUN")
	_ = v.BindEnv("v1.org_id", "FIELDSYNC_V1_ORG_ID")
	_ = v.BindEnv("v1.access_token", "FIELDSYNC_V1_ACCESS_TOKEN")
	_ = v.BindEnv("v2.org_id", "FIELDSYNC_V2_ORG_ID")
	_ = v.BindEnv("v2.access_token", "FIELDSYNC_V2_ACCESS_TOKEN")

	// Bind CLI flags if provided (highest priority)
	if flags != nil {
		_ = v.BindPFlag("environment", flags.Lookup("environment"))
		_ = v.BindPFlag("timeout", flags.Lookup("timeout"))
		_ = v.BindPFlag("dry_run", flags.Lookup("dry-run"))
		_ = v.BindPFlag("v1.org_id", flags.Lookup("v1-org-id"))
		_ = v.BindPFlag("v1.access_token", flags.Lookup("v1-access-token"))
		_ = v.BindPFlag("v2.org_id", flags.Lookup("v2-org-id"))
		_ = v.BindPFlag("v2.access_token", flags.Lookup("v2-access-token"))
	}

	var settings Settings
	if err := v.Unmarshal(&settings); err != nil {
		return nil, err
	}

	return &settings, nil
}

// ValidateSettings checks for missing or inconsistent configuration.
// Returns an error if the environment is unknown or either organization's
// credentials are incomplete.
func ValidateSettings(s *Settings) error {
	if _, _, err := cloud.BaseURLs(cloud.Environment(s.Environment)); err != nil {
		return errors.New("environment must be one of dev, qa, prod, hipaa, got: '" + s.Environment + "'")
	}

	if s.V1.OrgID == "" {
		return errors.New("v1-org-id is required")
	}
	if s.V1.AccessToken == "" {
		return errors.New("v1-access-token is required")
	}
	if s.V2.OrgID == "" {
		return errors.New("v2-org-id is required")
	}
	if s.V2.AccessToken == "" {
		return errors.New("v2-access-token is required")
	}

	if s.Timeout <= 0 {
		return errors.New("timeout must be positive")
	}

	return nil
}
