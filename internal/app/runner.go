package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/cloudmig/fieldsync/internal/cloud"
	"github.com/cloudmig/fieldsync/internal/config"
	"github.com/cloudmig/fieldsync/internal/migrate"
	"github.com/google/uuid"
	"github.com/spf13/pflag"
)

// RunParams contains dependencies for the run function
type RunParams struct {
	LoadSettings  func(*pflag.FlagSet) (*config.Settings, error)
	ValidSettings func(*config.Settings) error
	BuildClients  func(*config.Settings) (cloud.SourceClient, cloud.TargetClient, error)
	ReportOut     io.Writer // Optional: defaults to stdout
}

// DefaultRunParams returns production dependencies
func DefaultRunParams() RunParams {
	return RunParams{
		LoadSettings:  config.LoadSettingsWithFlags,
		ValidSettings: config.ValidateSettings,
		BuildClients:  BuildClients,
	}
}

// RunWithDeps executes a migration with the provided dependencies
func RunWithDeps(ctx context.Context, params RunParams, flags *pflag.FlagSet, version string) error {
	// Load settings
	settings, err := params.LoadSettings(flags)
	if err != nil {
		return fmt.Errorf("failed to load settings: %w", err)
	}

	// Validate settings for missing or inconsistent configuration
	if err := params.ValidSettings(settings); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	// Configure logging - stderr, keeping stdout for the audit trail
	handler := slog.NewTextHandler(os.Stderr, nil)
	slog.SetDefault(slog.New(handler))

	slog.Info("Starting field migration", "version", version, "run_id", uuid.NewString())
	config.Log(settings)

	source, target, err := params.BuildClients(settings)
	if err != nil {
		return err
	}

	out := params.ReportOut
	if out == nil {
		out = os.Stdout
	}

	service, err := migrate.NewService(source, target, migrate.NewReporter(out), settings.DryRun)
	if err != nil {
		return err
	}

	if err := service.Run(ctx); err != nil {
		return err
	}

	slog.Info("Migration finished")
	return nil
}

// BuildClients constructs the HTTP clients for both organizations from
// the resolved settings.
func BuildClients(settings *config.Settings) (cloud.SourceClient, cloud.TargetClient, error) {
	v1URL, v2URL, err := cloud.BaseURLs(cloud.Environment(settings.Environment))
	if err != nil {
		return nil, nil, fmt.Errorf("failed to resolve environment '%s': %w", settings.Environment, err)
	}

	source := cloud.NewV1Client(v1URL, settings.V1.OrgID, settings.V1.AccessToken, settings.Timeout)
	target := cloud.NewV2Client(v2URL, settings.V2.OrgID, settings.V2.AccessToken, settings.Timeout)
	return source, target, nil
}
