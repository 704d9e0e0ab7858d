package config

import (
	"testing"
	"time"
)

func TestApplyAlertDefaults_MissingSection(t *testing.T) {
	cfg := &Config{}

	applyAlertDefaults(cfg)

	if cfg.Alert == nil {
		t.Fatal("alert section not created")
	}
	if !cfg.Alert.DedupeEnabled() {
		t.Error("dedupePerDay should default to true")
	}
	if cfg.Alert.DefaultFireAt != "21:00" {
		t.Errorf("defaultFireAt = %q, want 21:00", cfg.Alert.DefaultFireAt)
	}
	if cfg.Alert.MailMaxAttempts != 3 {
		t.Errorf("mailMaxAttempts = %d, want 3", cfg.Alert.MailMaxAttempts)
	}
	if cfg.Dashboard == nil || cfg.Dashboard.OverviewTTL != 5*time.Minute {
		t.Error("dashboard overviewTTL not defaulted")
	}
}

func TestApplyAlertDefaults_PartialSectionKeepsDedupeOn(t *testing.T) {
	// An alert section that sets some keys but omits dedupePerDay must not
	// silently turn dedupe off.
	cfg := &Config{Alert: &AlertConfig{DefaultFireAt: "06:30"}}

	applyAlertDefaults(cfg)

	if !cfg.Alert.DedupeEnabled() {
		t.Error("dedupePerDay should default to true when the key is omitted")
	}
	if cfg.Alert.DefaultFireAt != "06:30" {
		t.Errorf("defaultFireAt = %q, want the configured 06:30", cfg.Alert.DefaultFireAt)
	}
}

func TestApplyAlertDefaults_ExplicitFalseSurvives(t *testing.T) {
	dedupe := false
	cfg := &Config{Alert: &AlertConfig{DedupePerDay: &dedupe}}

	applyAlertDefaults(cfg)

	if cfg.Alert.DedupeEnabled() {
		t.Error("an explicit dedupePerDay: false must be kept")
	}
}
