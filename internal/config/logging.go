package config

import (
	"context"
	"log/slog"
)

// Log logs the resolved settings in a granular way, masking credentials
func Log(s *Settings) {
	LogWithLogger(s, slog.Default())
}

// LogWithLogger logs the resolved settings using the provided logger
func LogWithLogger(s *Settings, logger *slog.Logger) {
	ctx := context.Background()
	logger.InfoContext(ctx, "Config: environment", "value", s.Environment)
	logger.InfoContext(ctx, "Config: timeout", "value", s.Timeout)
	logger.InfoContext(ctx, "Config: dry_run", "value", s.DryRun)
	logger.InfoContext(ctx, "Config: v1.org_id", "value", s.V1.OrgID)
	logger.InfoContext(ctx, "Config: v1.access_token", "value", "****")
	logger.InfoContext(ctx, "Config: v2.org_id", "value", s.V2.OrgID)
	logger.InfoContext(ctx, "Config: v2.access_token", "value", "****")
}

// OrgSettingsLogValue returns a slog.Value for OrgSettings with masked data
func OrgSettingsLogValue(s OrgSettings) slog.Value {
	return slog.GroupValue(
		slog.String("org_id", s.OrgID),
		slog.String("access_token", "****"),
	)
}

// SettingsLogValue returns a slog.Value for Settings with masked data
func SettingsLogValue(s Settings) slog.Value {
	return slog.GroupValue(
		slog.String("environment", s.Environment),
		slog.Duration("timeout", s.Timeout),
		slog.Bool("dry_run", s.DryRun),
		slog.Any("v1", OrgSettingsLogValue(s.V1)),
		slog.Any("v2", OrgSettingsLogValue(s.V2)),
	)
}
