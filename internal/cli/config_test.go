package cli

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "rcsmt.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadConfig(t *testing.T) {
	path := writeConfig(t, "[camera]\nfocal-length = 900.0\nplane-distance = 0.8\n")

	cfg, err := loadConfig(path)
	if err != nil {
		t.Fatalf("loadConfig() error = %v", err)
	}
	if cfg.Camera.FocalLength != 900 {
		t.Errorf("FocalLength = %g, want 900", cfg.Camera.FocalLength)
	}
	if cfg.Camera.PlaneDistance != 0.8 {
		t.Errorf("PlaneDistance = %g, want 0.8", cfg.Camera.PlaneDistance)
	}
}

func TestLoadConfigPartial(t *testing.T) {
	path := writeConfig(t, "[camera]\nfocal-length = 900.0\n")

	cfg, err := loadConfig(path)
	if err != nil {
		t.Fatalf("loadConfig() error = %v", err)
	}
	if cfg.Camera.FocalLength != 900 {
		t.Errorf("FocalLength = %g, want 900", cfg.Camera.FocalLength)
	}
	if cfg.Camera.PlaneDistance != 0 {
		t.Errorf("PlaneDistance = %g, want 0 (unset)", cfg.Camera.PlaneDistance)
	}
}

func TestLoadConfigErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		missing bool
	}{
		{"malformed toml", "[camera\nfocal-length = ", false},
		{"missing file", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "nope.toml")
			if !tt.missing {
				path = writeConfig(t, tt.content)
			}
			if _, err := loadConfig(path); err == nil {
				t.Error("loadConfig() error = nil, want error")
			}
		})
	}
}

func TestApplyCameraConfig(t *testing.T) {
	cfg := &fileConfig{Camera: cameraConfig{FocalLength: 900, PlaneDistance: 0.8}}

	cmd := newGenerateCmd()
	focal := defaultFocalLength
	plane := defaultPlaneDistance

	// No flags set: config values win.
	applyCameraConfig(cmd, cfg, &focal, &plane)
	if focal != 900 || plane != 0.8 {
		t.Errorf("got (%g, %g), want config values (900, 0.8)", focal, plane)
	}

	// Explicit flag wins over config.
	cmd = newGenerateCmd()
	if err := cmd.Flags().Set("focal-length", "1200"); err != nil {
		t.Fatal(err)
	}
	focal = 1200
	plane = defaultPlaneDistance
	applyCameraConfig(cmd, cfg, &focal, &plane)
	if focal != 1200 {
		t.Errorf("focal = %g, want flag value 1200", focal)
	}
	if plane != 0.8 {
		t.Errorf("plane = %g, want config value 0.8", plane)
	}
}
