package stress

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "stress.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadConfigOverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
writers = 2
readers = 3
iterations = 1000
values = [17, 34]
`)

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("load config: %v", err)
	}

	want := Config{
		Writers:    2,
		Readers:    3,
		Iterations: 1000,
		Values:     []byte{17, 34},
	}
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Errorf("config mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadConfigKeepsDefaultsForAbsentKeys(t *testing.T) {
	path := writeConfig(t, `
iterations = 42
`)

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("load config: %v", err)
	}

	want := DefaultConfig()
	want.Iterations = 42
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Errorf("config mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadConfigRejectsOversizedValue(t *testing.T) {
	path := writeConfig(t, `
values = [1, 300]
`)

	if _, err := LoadConfig(path); err == nil {
		t.Fatal("expected error for value 300, got nil")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{
			name:   "defaults are valid",
			mutate: func(*Config) {},
		},
		{
			name:    "zero writers",
			mutate:  func(c *Config) { c.Writers = 0 },
			wantErr: true,
		},
		{
			name:    "zero readers",
			mutate:  func(c *Config) { c.Readers = 0 },
			wantErr: true,
		},
		{
			name:    "zero iterations",
			mutate:  func(c *Config) { c.Iterations = 0 },
			wantErr: true,
		},
		{
			name:    "more writers than values",
			mutate:  func(c *Config) { c.Writers = len(c.Values) + 1 },
			wantErr: true,
		},
		{
			name:    "duplicate writer values",
			mutate:  func(c *Config) { c.Values[1] = c.Values[0] },
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
