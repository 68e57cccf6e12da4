package main

import (
	"fmt"
	"os"
	"path"

	"github.com/spf13/cobra"
	"github.com/ukaji3/dagrooster-go/pkg/dagrooster"
	"github.com/ukaji3/dagrooster-go/pkg/dagrooster/output"
)

var (
	fieldsOutput string
	fieldsPretty bool
)

var fieldsCmd = &cobra.Command{
	Use:   "fields",
	Short: "Print the fields found in the template as JSON",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		opts, err := extractOptions()
		if err != nil {
			return err
		}

		loader := newLoader()
		wb, err := loader.Load(cmd.Context())
		if err != nil {
			return err
		}
		defer wb.Close()

		fc, err := dagrooster.Extract(wb, opts)
		if err != nil {
			return fmt.Errorf("extraction failed: %w", err)
		}
		fc.BookName = path.Base(loader.Source)

		jsonData, err := output.ToJSON(fc, fieldsPretty)
		if err != nil {
			return fmt.Errorf("serialization failed: %w", err)
		}

		if fieldsOutput != "" {
			if err := os.WriteFile(fieldsOutput, jsonData, 0644); err != nil {
				return fmt.Errorf("failed to write output: %w", err)
			}
			return nil
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(jsonData))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(fieldsCmd)

	fieldsCmd.Flags().StringVarP(&fieldsOutput, "output", "o", "", "Output file path (default: stdout)")
	fieldsCmd.Flags().BoolVar(&fieldsPretty, "pretty", false, "Pretty-print JSON output")
}
