package cli

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/yaklabco/doctags/pkg/config"
)

// defaultConfigName is the global config file searched for in the working
// directory when --config is not given.
const defaultConfigName = ".doctags.yaml"

// loadGlobalSettings resolves global settings from the persistent --config
// flag. Without the flag, a .doctags.yaml in the working directory is used
// when present; otherwise defaults apply. An explicit --config path that
// does not exist is an error.
func loadGlobalSettings(cmd *cobra.Command) (*config.Settings, error) {
	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		configPath = ""
	}

	if configPath != "" {
		if _, statErr := os.Stat(configPath); statErr != nil {
			return nil, errors.Join(errors.New("config file not found"), statErr)
		}
		return config.LoadFile(configPath)
	}

	workDir, err := os.Getwd()
	if err != nil {
		return config.NewSettings(), nil
	}
	return config.LoadFile(filepath.Join(workDir, defaultConfigName))
}
