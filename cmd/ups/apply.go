package main

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/dustin/go-humanize"

	"github.com/bryceberger/ups/cmd"
	"github.com/bryceberger/ups/pkg/configuration"
	"github.com/bryceberger/ups/pkg/filesystem"
	"github.com/bryceberger/ups/pkg/ups"
)

// applyConfigurationDefaults merges defaults from the global configuration
// file into any flags that weren't explicitly set on the command line.
// Explicit flags always win over configuration file values.
func applyConfigurationDefaults(flags *pflag.FlagSet, global *configuration.Configuration) {
	if !flags.Changed("skip-crc") {
		applyConfiguration.skipCRC = global.Apply.SkipCRC
	}
}

// applyMain is the entry point for the apply command.
func applyMain(command *cobra.Command, arguments []string) error {
	// Validate arguments.
	if len(arguments) != 3 {
		return errors.New("invalid number of paths provided")
	}
	sourcePath := arguments[0]
	patchPath := arguments[1]
	outputPath := arguments[2]

	// Unless disabled, attempt to load the global configuration file and use
	// it to default any flags not explicitly set. We allow the file to not
	// exist.
	if !applyConfiguration.noGlobalConfiguration {
		globalConfigurationPath, err := configuration.Path()
		if err != nil {
			return fmt.Errorf("unable to compute path to global configuration file: %w", err)
		}
		global, err := configuration.Load(globalConfigurationPath)
		if err != nil {
			if !os.IsNotExist(err) {
				return fmt.Errorf("unable to load global configuration: %w", err)
			}
		} else {
			applyConfigurationDefaults(command.Flags(), global)
		}
	}

	// Read the source and patch files into memory.
	source, err := os.ReadFile(sourcePath)
	if err != nil {
		return fmt.Errorf("unable to read source file: %w", err)
	}
	patch, err := os.ReadFile(patchPath)
	if err != nil {
		return fmt.Errorf("unable to read patch file: %w", err)
	}

	// Warn if checksum verification is disabled.
	if applyConfiguration.skipCRC {
		cmd.Warning("checksum verification disabled")
	}

	// Apply the patch, tracking elapsed wall-clock time.
	start := time.Now()
	target, err := ups.ApplyPatchWith(
		ups.Options{SkipCRC: applyConfiguration.skipCRC},
		source, patch,
	)
	if err != nil {
		return fmt.Errorf("unable to apply patch: %w", err)
	}
	elapsed := time.Since(start)

	// Write the target file atomically so that a failed write can't leave a
	// partially patched file at the output path.
	if err := filesystem.WriteFileAtomic(outputPath, target, 0644); err != nil {
		return fmt.Errorf("unable to write output file: %w", err)
	}

	// Print a summary.
	fmt.Printf("Patched %s (%s) to %s (%s) in %v\n",
		sourcePath, humanize.Bytes(uint64(len(source))),
		outputPath, humanize.Bytes(uint64(len(target))),
		elapsed.Round(time.Microsecond),
	)

	// Success.
	return nil
}

// applyCommand is the apply command.
var applyCommand = &cobra.Command{
	Use:   "apply <source> <patch> <output>",
	Short: "Apply a UPS patch to a source file",
	Run:   cmd.Mainify(applyMain),
}

// applyConfiguration stores configuration for the apply command.
var applyConfiguration struct {
	// help indicates whether or not to show help information and exit.
	help bool
	// skipCRC disables checksum verification of the source, patch, and
	// target buffers.
	skipCRC bool
	// noGlobalConfiguration disables loading of the global configuration
	// file.
	noGlobalConfiguration bool
}

func init() {
	// Grab a handle for the command line flags.
	flags := applyCommand.Flags()

	// Disable alphabetical sorting of flags in help output.
	flags.SortFlags = false

	// Manually add a help flag to override the default message. Cobra will
	// still implement its logic automatically.
	flags.BoolVarP(&applyConfiguration.help, "help", "h", false, "Show help information")

	// Wire up apply flags.
	flags.BoolVar(&applyConfiguration.skipCRC, "skip-crc", false, "Skip checksum verification")
	flags.BoolVar(&applyConfiguration.noGlobalConfiguration, "no-global-configuration", false, "Ignore the global configuration file")
}
