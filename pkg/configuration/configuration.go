// Package configuration provides the global YAML-based configuration file
// used to set default behaviors for the command line interface.
package configuration

import (
	"github.com/bryceberger/ups/pkg/encoding"
)

// Configuration is the global YAML configuration object type.
type Configuration struct {
	// Apply contains defaults for patch application.
	Apply struct {
		// SkipCRC indicates whether or not checksum verification should be
		// skipped by default.
		SkipCRC bool `yaml:"skipCRC"`
	} `yaml:"apply"`
}

// Load attempts to load a YAML-based global configuration file from the
// specified path. os.IsNotExist errors are passed through untouched so that
// callers can treat a missing file as non-fatal.
func Load(path string) (*Configuration, error) {
	// Create the target configuration object.
	result := &Configuration{}

	// Attempt to load.
	if err := encoding.LoadAndUnmarshalYAML(path, result); err != nil {
		return nil, err
	}

	// Success.
	return result, nil
}
