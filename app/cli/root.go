package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"cargoline/app"
)

// Package cli is the thin serving shell over the cargoline core: each
// subcommand loads a manifest, runs one query surface and prints the
// result. No business logic lives here.

// Flags holds the flag values shared across subcommands.
type Flags struct {
	File    string
	Dir     string
	Pattern string
}

var flgs = &Flags{}

var rootCmd = &cobra.Command{
	Use:   "cargoline",
	Short: "cargoline answers consignee analytics queries over shipment manifests",
	Long: `cargoline ingests a bulk shipment manifest (csv, optionally gzip/bzip2/xz
compressed, zip archived, xlsx or json), indexes it by consignee and
answers filtered listings, searches and aggregate reports.`,
	SilenceUsage: true,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// loadApp builds an App and loads the manifest selected by the shared
// flags. Exactly one of --file or --dir must be set.
func loadApp() (*app.App, error) {
	a := app.NewApp()
	switch {
	case flgs.File != "" && flgs.Dir != "":
		return nil, fmt.Errorf("--file and --dir are mutually exclusive")
	case flgs.File != "":
		if _, err := a.LoadManifest(flgs.File); err != nil {
			return nil, err
		}
	case flgs.Dir != "":
		if _, err := a.LoadManifestDir(flgs.Dir, flgs.Pattern); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("a manifest is required: pass --file or --dir")
	}
	return a, nil
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flgs.File, "file", "", "path to the manifest file")
	rootCmd.PersistentFlags().StringVar(&flgs.Dir, "dir", "", "directory of manifest shards to merge")
	rootCmd.PersistentFlags().StringVar(&flgs.Pattern, "pattern", "*.csv", "glob pattern for --dir shards")
}
