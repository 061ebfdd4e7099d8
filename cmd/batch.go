/*
Copyright © 2020 NAME HERE <EMAIL ADDRESS>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/notargets/gospecial/InputParameters"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

// BatchCmd evaluates every request listed in a YAML file
var BatchCmd = &cobra.Command{
	Use:   "batch",
	Short: "Evaluate a YAML list of requests",
	Long: `
Reads a YAML file of the form

Title: symmetric integrals
Format: "%.12g"
Requests:
  - Function: RF
    Args: [1, 2, 0]
  - Label: complex p
    Function: RJ
    Args: [2, 3, 4, -1]
    Imag: [0, 0, 0, 1]

and prints one table row per request.

gospecial batch -I requests.yaml`,
	RunE: func(cmd *cobra.Command, args []string) (err error) {
		var (
			fileName string
			data     []byte
			bp       InputParameters.BatchParameters
		)
		logger := newLogger()
		defer func() { _ = logger.Sync() }()
		if fileName, err = cmd.Flags().GetString("inputFile"); err != nil {
			return
		}
		if fileName == "" {
			return fmt.Errorf("an input file is required, use -I")
		}
		if data, err = os.ReadFile(fileName); err != nil {
			return
		}
		if err = bp.Parse(data); err != nil {
			return fmt.Errorf("%s: %w", fileName, err)
		}
		if cmd.Flags().Changed("format") {
			bp.Format = viper.GetString("format")
		}
		if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
			bp.Print()
		}
		rows, failures := runBatch(&bp, logger.With(zap.String("file", fileName)))
		fmt.Fprintln(cmd.OutOrStdout(), renderTable(bp.Title, []string{"Label", "Function", "Args", "Value"}, rows))
		if failures != 0 {
			return fmt.Errorf("%d of %d requests failed", failures, len(bp.Requests))
		}
		return
	},
}

func init() {
	rootCmd.AddCommand(BatchCmd)
	BatchCmd.Flags().StringP("inputFile", "I", "", "YAML file listing the requests")
	BatchCmd.Flags().BoolP("verbose", "v", false, "print the parsed input before evaluating")
}

func runBatch(bp *InputParameters.BatchParameters, logger *zap.Logger) (rows [][]string, failures int) {
	rows = make([][]string, len(bp.Requests))
	for i, r := range bp.Requests {
		value, err := evaluate(r, bp.Format)
		if err != nil {
			failures++
			value = "error: " + err.Error()
			logger.Warn("request failed", zap.String("label", r.Label), zap.Error(err))
		}
		rows[i] = []string{r.Label, r.Function, formatArgs(r), value}
	}
	return
}

func formatArgs(r InputParameters.Request) string {
	parts := make([]string, len(r.Args))
	for i, a := range r.Args {
		if r.IsComplex() {
			parts[i] = fmt.Sprintf("%g%+gi", a, r.Imag[i])
		} else {
			parts[i] = fmt.Sprintf("%g", a)
		}
	}
	return strings.Join(parts, ", ")
}

func renderTable(title string, headers []string, rows [][]string) string {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers(headers...).
		Rows(rows...)
	if title == "" {
		return t.String()
	}
	return lipgloss.JoinVertical(lipgloss.Left, lipgloss.NewStyle().Bold(true).Render(title), t.String())
}
