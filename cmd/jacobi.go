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

	"github.com/notargets/gospecial/jacobi"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

// JacobiCmd prints the twelve Jacobi elliptic functions at one point
var JacobiCmd = &cobra.Command{
	Use:   "jacobi",
	Short: "Jacobi elliptic functions for parameter m at argument u",
	Long: `
Prints the four copolar trios (sn cn dn), (cs ds ns), (dc nc sc), (nd sd cd).

gospecial jacobi --m 0.5 --u 0.3`,
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := newLogger()
		defer func() { _ = logger.Sync() }()
		m, _ := cmd.Flags().GetFloat64("m")
		u, _ := cmd.Flags().GetFloat64("u")
		je := jacobi.Build(m)
		logger.Debug("jacobi", zap.Float64("m", je.M()), zap.Float64("u", u))
		fmt.Fprintln(cmd.OutOrStdout(), renderTable(
			fmt.Sprintf("m = %g, u = %g", m, u),
			[]string{"Trio", "1", "2", "3"},
			jacobiRows(je, u, viper.GetString("format"))))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(JacobiCmd)
	JacobiCmd.Flags().Float64("m", 0.5, "parameter m = k^2")
	JacobiCmd.Flags().Float64("u", 0, "argument u")
}

func jacobiRows(je *jacobi.Elliptic, u float64, format string) [][]string {
	var (
		n = je.ValuesN(u)
		s = n.S()
		c = n.C()
		d = n.D()
		f = func(v float64) string { return fmt.Sprintf(format, v) }
	)
	return [][]string{
		{"sn cn dn", f(n.Sn), f(n.Cn), f(n.Dn)},
		{"cs ds ns", f(s.Cs), f(s.Ds), f(s.Ns)},
		{"dc nc sc", f(c.Dc), f(c.Nc), f(c.Sc)},
		{"nd sd cd", f(d.Nd), f(d.Sd), f(d.Cd)},
	}
}
