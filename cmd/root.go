package cmd

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/ethanolivertroy/scan2manifest/internal/convert"
	"github.com/ethanolivertroy/scan2manifest/internal/emitter"
	"github.com/ethanolivertroy/scan2manifest/internal/log"
	"github.com/ethanolivertroy/scan2manifest/internal/models"
	"github.com/spf13/cobra"
)

var (
	flagConfig    string
	flagVerbose   bool
	flagSBOM      bool
	flagVerify    bool
	flagOutputDir string

	config *models.Config
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "scan2manifest <npm | nuget | pypi | maven2 | go> <file path>",
	Short: "Convert a JFrog Artifactory scan report into a package manifest",
	Long: `scan2manifest reads a JSON artifact report exported from JFrog Artifactory
and writes the package manifest of one ecosystem next to it:

  - npm:    package.json      (npm.name / npm.version props)
  - nuget:  nuget.csproj      (nuget.title / nuget.version props)
  - pypi:   requirements.txt  (pypi.name / pypi.version props)
  - maven2: pom.xml           (parsed from <name>-<version>.jar paths)
  - go:     go.mod            (parsed from <module>/@v/<version> paths)

Examples:
  # Generate package.json next to the report
  scan2manifest npm ./reports/npm-scan.json

  # Write requirements.txt into another directory
  scan2manifest pypi scan.json --output-dir ./out

  # Also write a CycloneDX SBOM and check the manifest reads back
  scan2manifest maven2 scan.json --sbom --verify

  # Override property names and project metadata
  scan2manifest nuget scan.json --config scan2manifest.toml`,
	Args:              rootArgs,
	PersistentPreRunE: initRun,
	RunE:              runConvert,
	SilenceUsage:      true,
	SilenceErrors:     true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(exitCode(err))
	}
}

func exitCode(err error) int {
	if errors.Is(err, models.ErrUsage) {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	slog.Error("scan2manifest failed", "err", err)
	return 2
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Config file (.toml, .yaml or .yml)")
	rootCmd.PersistentFlags().BoolVar(&flagVerbose, "verbose", false, "verbose logging")

	rootCmd.Flags().BoolVar(&flagSBOM, "sbom", false, "Also write a CycloneDX bom.json next to the manifest")
	rootCmd.Flags().BoolVar(&flagVerify, "verify", false, "Parse the written manifest back and check it lists every dependency")
	rootCmd.Flags().StringVarP(&flagOutputDir, "output-dir", "o", "", "Output directory (default: directory of the report)")

	rootCmd.AddCommand(verifyCmd)
	rootCmd.AddCommand(versionCmd)
}

func rootArgs(_ *cobra.Command, args []string) error {
	if len(args) < 2 {
		return models.ErrUsage
	}
	return nil
}

// initRun loads the config and sets up logging; flags take precedence over the file
func initRun(cmd *cobra.Command, _ []string) error {
	config = models.DefaultConfig()
	if flagConfig != "" {
		var err error
		config, err = models.LoadConfig(flagConfig)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
	}

	if flagVerbose {
		config.Verbose = true
	}
	if cmd.Flags().Changed("sbom") {
		config.SBOM = flagSBOM
	}
	if cmd.Flags().Changed("verify") {
		config.Verify = flagVerify
	}
	if flagOutputDir != "" {
		config.OutputDir = flagOutputDir
	}

	slog.SetDefault(log.New(config.Verbose, os.Stderr))
	slog.Debug("scan2manifest run", "configPath", flagConfig)
	return nil
}

func runConvert(cmd *cobra.Command, args []string) error {
	eco, err := models.ParseEcosystem(args[0])
	if err != nil {
		return err
	}

	res, err := convert.New(config).Run(cmd.Context(), eco, args[1])
	if err != nil {
		if emitter.IsWriteError(err) {
			return fmt.Errorf("manifest not written: %w", err)
		}
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), res.Path)
	return nil
}
