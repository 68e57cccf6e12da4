package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
	"github.com/ukaji3/dagrooster-go/internal/utils"
	"github.com/ukaji3/dagrooster-go/pkg/dagrooster"
	"github.com/ukaji3/dagrooster-go/pkg/dagrooster/store"
)

var (
	exportDate   string
	exportValues string
	exportDir    string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write the filled template for a date",
	Long: `Write Dagrooster_<date>.xlsx with the date and the entered values filled in.
Values come from the values database unless --values names a JSON file
mapping cell addresses to text.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if exportDate == "" {
			exportDate = time.Now().Format(store.DateLayout)
		}

		opts, err := extractOptions()
		if err != nil {
			return err
		}

		values, err := loadExportValues(cmd, exportDate)
		if err != nil {
			return err
		}

		res, err := dagrooster.Export(cmd.Context(), newLoader(), exportDate, values, opts)
		if err != nil {
			return err
		}

		if err := os.MkdirAll(exportDir, 0755); err != nil {
			return err
		}
		out := filepath.Join(exportDir, res.Filename)
		if err := os.WriteFile(out, res.Data, 0644); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
		utils.Log.Infof("wrote %s", out)
		return nil
	},
}

func loadExportValues(cmd *cobra.Command, date string) (store.Values, error) {
	if exportValues != "" {
		data, err := os.ReadFile(exportValues)
		if err != nil {
			return nil, err
		}
		var values store.Values
		if err := json.Unmarshal(data, &values); err != nil {
			return nil, fmt.Errorf("values file %s: %w", exportValues, err)
		}
		return values, nil
	}

	vs, closeValues, err := openValues()
	if err != nil {
		return nil, err
	}
	defer closeValues()
	return vs.Load(cmd.Context(), date)
}

func init() {
	rootCmd.AddCommand(exportCmd)

	exportCmd.Flags().StringVarP(&exportDate, "date", "d", "", "Roster date, YYYY-MM-DD (default: today)")
	exportCmd.Flags().StringVar(&exportValues, "values", "", "JSON file with values by cell address")
	exportCmd.Flags().StringVarP(&exportDir, "output", "o", ".", "Output directory")
}
