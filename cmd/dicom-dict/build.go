// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/dicom-dict/internal/emit"
	"github.com/pdiddy/dicom-dict/internal/extract"
	"github.com/pdiddy/dicom-dict/internal/fetch"
	"github.com/pdiddy/dicom-dict/internal/logging"
	"github.com/pdiddy/dicom-dict/pkg/types"
)

var buildCmd = &cobra.Command{
	Use:   "build [FROM]",
	Short: "Build a dictionary artifact from the PS3.6 DocBook source",
	Long: `Build streams the Registry of DICOM Data Elements table out of the PS3.6
DocBook document, classifies each row and writes the kept entries.

FROM is a local file or an http(s) URL; it defaults to the current edition
published by NEMA. Rows without a keyword and rows whose tag is not a single,
group-wildcard or element-wildcard form are dropped. The output file is only
replaced once the whole table has been read.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runBuild,
}

func init() {
	f := buildCmd.Flags()
	f.StringP("output", "o", "", "output path (default entries.<ext> by format)")
	f.StringP("format", "f", "", "output format: go, json, yaml, sqlite (default go)")
	f.Bool("no-retired", false, "drop attributes marked retired")
	f.String("table-id", "", "xml:id of the registry table (default table_6-1)")
	f.String("cell-element", "", "element counted as one table column (default td)")
	f.String("package", "", "package name of a generated Go table (default std)")
	f.String("var-name", "", "variable name of a generated Go table (default entries)")

	bindFlags(f, map[string]string{
		"build.output":       "output",
		"build.format":       "format",
		"build.table_id":     "table-id",
		"build.cell_element": "cell-element",
		"build.package":      "package",
		"build.var_name":     "var-name",
	})

	rootCmd.AddCommand(buildCmd)
}

// buildConfig resolves the build.* keys, the FROM argument and the
// --no-retired switch.
func buildConfig(cmd *cobra.Command, args []string) (types.BuildConfig, error) {
	cfg := types.BuildConfig{
		Source:         viper.GetString("build.source"),
		Output:         viper.GetString("build.output"),
		Format:         types.OutputFormat(viper.GetString("build.format")),
		IncludeRetired: viper.GetBool("build.include_retired"),
		TableID:        viper.GetString("build.table_id"),
		CellElement:    viper.GetString("build.cell_element"),
		Package:        viper.GetString("build.package"),
		VarName:        viper.GetString("build.var_name"),
	}
	if len(args) == 1 {
		cfg.Source = args[0]
	}
	if noRetired, _ := cmd.Flags().GetBool("no-retired"); noRetired {
		cfg.IncludeRetired = false
	}
	if cfg.Format == "" {
		cfg.Format = types.FormatGo
	}
	if !cfg.Format.Valid() {
		return cfg, fmt.Errorf("unsupported format %q (want one of %v)", cfg.Format, types.Formats)
	}
	if cfg.Output == "" {
		cfg.Output = cfg.Format.DefaultOutput()
	}
	return cfg, nil
}

func runBuild(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd, args)
	if err != nil {
		return err
	}
	httpCfg := httpConfig()

	ctx := cmd.Context()
	logger := logging.WithFields(ctx, "source", cfg.Source, "format", string(cfg.Format))
	ctx = logging.NewContext(ctx, logger)
	logger.Info("build started", "output", cfg.Output, "include_retired", cfg.IncludeRetired)

	src, err := fetch.Open(ctx, fetch.NewClient(httpCfg), cfg.Source, httpCfg)
	if err != nil {
		return err
	}
	defer src.Close()

	records := extract.Records(src, extract.Options{TableID: cfg.TableID, CellElement: cfg.CellElement})
	sum, err := emit.Emit(ctx, records, cfg.Output, emit.Options{
		Format:         cfg.Format,
		IncludeRetired: cfg.IncludeRetired,
		Package:        cfg.Package,
		VarName:        cfg.VarName,
	})
	if err != nil {
		return fmt.Errorf("building %s: %w", cfg.Output, err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %d entries to %s (%d rows read, %d skipped: %d without keyword, %d retired, %d unsupported tag)\n",
		sum.Emitted, cfg.Output, sum.Read, sum.Skipped(), sum.NoAlias, sum.Retired, sum.Unsupported)
	return nil
}
