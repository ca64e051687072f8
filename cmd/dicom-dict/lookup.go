// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/dicom-dict/internal/store"
	"github.com/pdiddy/dicom-dict/pkg/dictionary"
	"github.com/pdiddy/dicom-dict/pkg/dictionary/std"
)

var lookupCmd = &cobra.Command{
	Use:   "lookup <keyword|tag>...",
	Short: "Look up attributes by keyword or tag",
	Long: `Lookup resolves each argument against the standard dictionary. An argument
that parses as a tag, such as (0010,0010), 0010,0010 or (60xx,3000), is looked
up by tag; anything else is treated as a keyword.

With --db the entries of a dictionary built with --format sqlite are consulted
first and the standard dictionary is the fallback.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runLookup,
}

func init() {
	lookupCmd.Flags().String("db", "", "SQLite dictionary consulted before the standard one")
	lookupCmd.Flags().Bool("json", false, "output results as JSON")

	rootCmd.AddCommand(lookupCmd)
}

// lookupResult is the outcome of one query.
type lookupResult struct {
	Query string            `json:"query"`
	Found bool              `json:"found"`
	Entry *dictionary.Entry `json:"entry,omitempty"`
}

func runLookup(cmd *cobra.Command, args []string) error {
	var dict dictionary.DataDictionary = std.StandardDictionary{}

	if dbPath, _ := cmd.Flags().GetString("db"); dbPath != "" {
		s, err := store.Open(dbPath)
		if err != nil {
			return err
		}
		reg, err := s.Registry(cmd.Context())
		s.Close()
		if err != nil {
			return err
		}
		dict = dictionary.Chain(reg, dict)
	}

	results := lookup(dict, args)

	jsonOutput, _ := cmd.Flags().GetBool("json")
	if err := writeLookup(cmd.OutOrStdout(), results, jsonOutput); err != nil {
		return err
	}

	missing := 0
	for _, r := range results {
		if !r.Found {
			missing++
		}
	}
	if missing > 0 {
		return fmt.Errorf("%d of %d queries not found", missing, len(results))
	}
	return nil
}

// lookup resolves each query by tag when it parses as one, by keyword
// otherwise. Wildcard tags are looked up by their stored inner tag.
func lookup(d dictionary.DataDictionary, queries []string) []lookupResult {
	results := make([]lookupResult, 0, len(queries))
	for _, q := range queries {
		var (
			e  dictionary.Entry
			ok bool
		)
		if r, err := dictionary.ParseTagRange(q); err == nil {
			e, ok = d.ByTag(r.Inner())
		} else {
			e, ok = d.ByName(q)
		}
		res := lookupResult{Query: q, Found: ok}
		if ok {
			res.Entry = &e
		}
		results = append(results, res)
	}
	return results
}

func writeLookup(w io.Writer, results []lookupResult, jsonOutput bool) error {
	if jsonOutput {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(results)
	}

	fmt.Fprintf(w, "%-20s  %-12s  %-40s  %s\n", "Query", "Tag", "Keyword", "VR")
	fmt.Fprintln(w, strings.Repeat("-", 82))
	for _, r := range results {
		if !r.Found {
			fmt.Fprintf(w, "%-20s  %s\n", r.Query, "not found")
			continue
		}
		fmt.Fprintf(w, "%-20s  %-12s  %-40s  %s\n", r.Query, r.Entry.Tag, r.Entry.Alias, r.Entry.VR)
	}
	return nil
}
