package config

import "testing"

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"postgres": map[string]any{
			"sslMode": "disable",
			"master": map[string]any{
				"userName": "user",
			},
		},
		"alert": map[string]any{
			"dedupePerDay": true,
			"defaultFireAt": "21:00",
		},
		"secretKey": map[string]any{
			"access": "",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "POSTGRES_SSLMODE", want: "postgres.sslMode"},
		{envKey: "POSTGRES_MASTER_USERNAME", want: "postgres.master.userName"},
		{envKey: "ALERT_DEDUPEPERDAY", want: "alert.dedupePerDay"},
		{envKey: "ALERT_DEFAULTFIREAT", want: "alert.defaultFireAt"},
		{envKey: "SECRETKEY_ACCESS", want: "secretKey.access"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			if got := canonicalizeEnvKey(tt.envKey, existing); got != tt.want {
				t.Fatalf("canonicalizeEnvKey(%q) = %q, want %q", tt.envKey, got, tt.want)
			}
		})
	}
}

func TestApplyAlertDefaults(t *testing.T) {
	cfg := &Config{}
	applyAlertDefaults(cfg)

	if cfg.Alert.DefaultFireAt != "21:00" {
		t.Fatalf("DefaultFireAt = %q, want 21:00", cfg.Alert.DefaultFireAt)
	}
	if cfg.Alert.MailMaxAttempts != 3 {
		t.Fatalf("MailMaxAttempts = %d, want 3", cfg.Alert.MailMaxAttempts)
	}
	if cfg.Dashboard.OverviewTTL <= 0 {
		t.Fatal("OverviewTTL must default to a positive TTL")
	}
}
