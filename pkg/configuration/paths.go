package configuration

import (
	"os"
	"path/filepath"

	"github.com/pkg/errors"
)

// globalConfigurationName is the name of the global configuration file inside
// the user's home directory.
const globalConfigurationName = ".ups.yaml"

// Path returns the path of the YAML-based global configuration file. It does
// not verify that the file exists.
func Path() (string, error) {
	// Compute the path to the user's home directory.
	homeDirectoryPath, err := os.UserHomeDir()
	if err != nil {
		return "", errors.Wrap(err, "unable to compute path to home directory")
	}

	// Success.
	return filepath.Join(homeDirectoryPath, globalConfigurationName), nil
}
