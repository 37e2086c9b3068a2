package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultIsValid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Fatalf("Default().Validate() = %v", err)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "field.json")

	cfg := Default()
	cfg.Field.Nodes = 40
	cfg.Field.Seed = 7
	cfg.Field.ResizePolicy = ResizeFixed
	if err := Save(path, cfg); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got != cfg {
		t.Errorf("Load = %+v, want %+v", got, cfg)
	}
}

func TestLoadPartialKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "partial.json")
	if err := os.WriteFile(path, []byte(`{"field":{"nodes":10}}`), 0644); err != nil {
		t.Fatal(err)
	}

	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got.Field.Nodes != 10 {
		t.Errorf("Field.Nodes = %d, want 10", got.Field.Nodes)
	}
	if got.Field.LinkDistance != 120 {
		t.Errorf("Field.LinkDistance = %g, want default 120", got.Field.LinkDistance)
	}
	if got.Window.TPS != 60 {
		t.Errorf("Window.TPS = %d, want default 60", got.Window.TPS)
	}
}

func TestLoadRejectsInvalid(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name string
		body string
		want string
	}{
		{"probability", `{"field":{"link_probability":1.5}}`, "link_probability"},
		{"policy", `{"field":{"resize_policy":"stretch"}}`, "resize_policy"},
		{"nodes", `{"field":{"nodes":-1}}`, "field.nodes"},
		{"syntax", `{"field":`, "parse config"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(dir, tt.name+".json")
			if err := os.WriteFile(path, []byte(tt.body), 0644); err != nil {
				t.Fatal(err)
			}
			_, err := Load(path)
			if err == nil {
				t.Fatal("Load succeeded, want error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error = %q, want it to mention %q", err, tt.want)
			}
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.json")); err == nil {
		t.Error("Load of missing file succeeded, want error")
	}
}
