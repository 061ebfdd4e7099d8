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
	"strings"

	"github.com/notargets/gospecial/InputParameters"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

// EvalCmd evaluates a single function from the command line
var EvalCmd = &cobra.Command{
	Use:   "eval <function> args...",
	Short: "Evaluate one integral or function",
	Long: `
Evaluates one of RF RC RJ RD RG K KPRIME E D PI NOME F EPHI DPHI PIPHI JACOBI.
Complex arguments for RF RC RJ RD RG are written re,im, negative values
need a -- separator.

gospecial eval rf 1 2 0
gospecial eval rj -- 2 3 4 -1,1`,
	Args: cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := newLogger()
		defer func() { _ = logger.Sync() }()
		forceComplex, _ := cmd.Flags().GetBool("complex")

		r, err := parseArgs(strings.ToUpper(args[0]), args[1:])
		if err != nil {
			return err
		}
		if forceComplex && !r.IsComplex() {
			r.Imag = make([]float64, len(r.Args))
		}
		bp := &InputParameters.BatchParameters{Requests: []InputParameters.Request{r}}
		if err = bp.Validate(); err != nil {
			return err
		}
		r = bp.Requests[0]
		logger.Debug("evaluating", zap.String("function", r.Function),
			zap.Float64s("args", r.Args), zap.Float64s("imag", r.Imag))
		out, err := evaluate(r, viper.GetString("format"))
		if err != nil {
			logger.Error("evaluation failed", zap.String("function", r.Function), zap.Error(err))
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), out)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(EvalCmd)
	EvalCmd.Flags().BoolP("complex", "c", false, "evaluate on the complex path even for real arguments")
}
