// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/dicom-dict/internal/fetch"
)

var fetchCmd = &cobra.Command{
	Use:   "fetch [URL]",
	Short: "Download the PS3.6 DocBook source to a local file",
	Long: `Fetch downloads the standard document so later builds can run offline.
URL defaults to the configured build source. The file is written next to
its destination and renamed into place when complete.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runFetch,
}

func init() {
	fetchCmd.Flags().StringP("output", "o", "", "destination file (default part06.xml)")
	bindFlags(fetchCmd.Flags(), map[string]string{"fetch.output": "output"})

	rootCmd.AddCommand(fetchCmd)
}

func runFetch(cmd *cobra.Command, args []string) error {
	url := viper.GetString("build.source")
	if len(args) == 1 {
		url = args[0]
	}
	if !fetch.IsURL(url) {
		return fmt.Errorf("%q is not an http(s) URL", url)
	}
	dest := viper.GetString("fetch.output")

	cfg := httpConfig()
	n, err := fetch.Download(cmd.Context(), fetch.NewClient(cfg), url, dest, cfg)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Saved %s (%d bytes)\n", dest, n)
	return nil
}
