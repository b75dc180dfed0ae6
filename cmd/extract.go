package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
)

var extractCmd = &cobra.Command{
	Use:   "extract <url>",
	Short: "Run a one-shot brand DNA extraction and print the result as JSON",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		rawURL := strings.TrimSpace(args[0])
		if !strings.HasPrefix(rawURL, "http://") && !strings.HasPrefix(rawURL, "https://") {
			return eris.New("url must start with http:// or https://")
		}

		result, err := buildPipeline(cfg).Run(cmd.Context(), rawURL)
		if err != nil {
			return eris.Wrap(err, "extraction failed")
		}

		out, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return eris.Wrap(err, "marshal result")
		}
		fmt.Println(string(out))

		return nil
	},
}

func init() {
	rootCmd.AddCommand(extractCmd)
}
