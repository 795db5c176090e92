package config

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
	"time"
)

func TestLog(t *testing.T) {
	// Just verify it doesn't panic
	s := &Settings{
		Environment: "prod",
		Timeout:     30 * time.Second,
	}
	Log(s) // Should not panic
}

func TestLogWithLogger_MasksTokens(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	s := &Settings{
		Environment: "qa",
		Timeout:     30 * time.Second,
		V1:          OrgSettings{OrgID: "org-v1", AccessToken: "secret-v1"},
		V2:          OrgSettings{OrgID: "org-v2", AccessToken: "secret-v2"},
	}

	LogWithLogger(s, logger)

	output := buf.String()
	if !strings.Contains(output, "org-v1") || !strings.Contains(output, "org-v2") {
		t.Error("Expected org ids in log output")
	}
	if !strings.Contains(output, "****") {
		t.Error("Expected masked tokens in log output")
	}
	if strings.Contains(output, "secret-v1") || strings.Contains(output, "secret-v2") {
		t.Error("Access tokens should be masked, not shown in plain text")
	}
	if !strings.Contains(output, "qa") {
		t.Error("Expected environment in log output")
	}
}

func TestSettingsLogValue(t *testing.T) {
	s := Settings{
		Environment: "prod",
		Timeout:     30 * time.Second,
		V1:          OrgSettings{OrgID: "org-v1", AccessToken: "secret"},
	}

	val := SettingsLogValue(s)
	if val.Kind() != slog.KindGroup {
		t.Errorf("Expected group kind, got %v", val.Kind())
	}
}

func TestOrgSettingsLogValue(t *testing.T) {
	val := OrgSettingsLogValue(OrgSettings{OrgID: "org-v1", AccessToken: "secret"})
	if val.Kind() != slog.KindGroup {
		t.Errorf("Expected group kind, got %v", val.Kind())
	}
	if strings.Contains(val.String(), "secret") {
		t.Error("Expected token masked in log value")
	}
}
