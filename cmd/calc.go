package main

import (
	"encoding/json"
	"io"
	"os"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"

	"github.com/sattva-energy/geotabs/internal/engine"
	"github.com/sattva-energy/geotabs/internal/model"
	"github.com/sattva-energy/geotabs/internal/tables"
)

var (
	calcInput string
	calcOut   string
)

var calcCmd = &cobra.Command{
	Use:   "calc",
	Short: "Run a single feasibility calculation",
	Long:  "Reads an inputs JSON object from a file (or stdin with -) and prints the feasibility report JSON.",
	RunE: func(cmd *cobra.Command, args []string) error {
		var raw []byte
		var err error
		if calcInput == "-" {
			raw, err = io.ReadAll(cmd.InOrStdin())
		} else {
			raw, err = os.ReadFile(calcInput)
		}
		if err != nil {
			return eris.Wrap(err, "read inputs")
		}

		var in model.Inputs
		if err := json.Unmarshal(raw, &in); err != nil {
			return eris.Wrap(err, "parse inputs")
		}

		t, err := tables.Load(cfg.Tables.OverridesFile)
		if err != nil {
			return err
		}

		result, err := engine.New(t, cfg.Engine).Run(in)
		if err != nil {
			return err
		}

		out, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return eris.Wrap(err, "marshal result")
		}
		out = append(out, '\n')

		if calcOut != "" {
			return os.WriteFile(calcOut, out, 0o644)
		}
		_, err = cmd.OutOrStdout().Write(out)
		return err
	},
}

func init() {
	calcCmd.Flags().StringVar(&calcInput, "input", "-", "inputs JSON file, or - for stdin")
	calcCmd.Flags().StringVar(&calcOut, "out", "", "write the report to this file instead of stdout")
	rootCmd.AddCommand(calcCmd)
}
