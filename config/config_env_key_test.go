package config

import (
	"testing"
	"time"
)

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"postgres": map[string]any{
			"sslMode": "disable",
			"master": map[string]any{
				"userName": "user",
			},
		},
		"scheduling": map[string]any{
			"poolName":           "Office",
			"historicWindowDays": 30,
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "POSTGRES_SSLMODE", want: "postgres.sslMode"},
		{envKey: "POSTGRES_MASTER_USERNAME", want: "postgres.master.userName"},
		{envKey: "SCHEDULING_POOLNAME", want: "scheduling.poolName"},
		{envKey: "SCHEDULING_HISTORICWINDOWDAYS", want: "scheduling.historicWindowDays"},
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

func TestSchedulingConfig_ApplyDefaults(t *testing.T) {
	cfg := &SchedulingConfig{}
	cfg.applyDefaults()

	if cfg.PoolName != "Office" {
		t.Fatalf("PoolName = %q, want Office", cfg.PoolName)
	}
	if cfg.HistoricWindowDays != 30 {
		t.Fatalf("HistoricWindowDays = %d, want 30", cfg.HistoricWindowDays)
	}
	if cfg.Retry.Attempts != 3 {
		t.Fatalf("Retry.Attempts = %d, want 3", cfg.Retry.Attempts)
	}
	if cfg.Retry.Backoff != 100*time.Millisecond {
		t.Fatalf("Retry.Backoff = %s, want 100ms", cfg.Retry.Backoff)
	}

	// Explicit values must survive.
	cfg = &SchedulingConfig{PoolName: "Warehouse", HistoricWindowDays: 7}
	cfg.applyDefaults()
	if cfg.PoolName != "Warehouse" || cfg.HistoricWindowDays != 7 {
		t.Fatalf("explicit values overwritten: %+v", cfg)
	}
}
