package cli

import (
	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"

	"github.com/roboception/rcsilhouette-template-from-primitive/pkg/errors"
)

// fileConfig is the optional TOML configuration file with persistent
// camera defaults:
//
//	[camera]
//	focal-length = 1100.0
//	plane-distance = 0.5
//
// Values from the file fill in any camera flag the user did not set
// explicitly; flags always win.
type fileConfig struct {
	Camera cameraConfig `toml:"camera"`
}

type cameraConfig struct {
	FocalLength   float64 `toml:"focal-length"`
	PlaneDistance float64 `toml:"plane-distance"`
}

// loadConfig parses the TOML config file at path.
func loadConfig(path string) (*fileConfig, error) {
	var cfg fileConfig
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "read config '%s'", path)
	}
	return &cfg, nil
}

// applyCameraConfig overrides the camera options with config-file values
// for every flag the user left at its default.
func applyCameraConfig(cmd *cobra.Command, cfg *fileConfig, focalLength, planeDistance *float64) {
	if cfg.Camera.FocalLength != 0 && !cmd.Flags().Changed("focal-length") {
		*focalLength = cfg.Camera.FocalLength
	}
	if cfg.Camera.PlaneDistance != 0 && !cmd.Flags().Changed("plane-distance") {
		*planeDistance = cfg.Camera.PlaneDistance
	}
}
