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

	homedir "github.com/mitchellh/go-homedir"
	"github.com/notargets/gospecial/logging"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

var cfgFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "gospecial",
	Short: "Carlson symmetric elliptic integrals and Jacobi elliptic functions",
	Long: `
Evaluates the Carlson symmetric elliptic integrals RF, RC, RJ, RD and RG for
real and complex arguments, the Legendre complete and incomplete integrals
built on them, and the Jacobi elliptic functions.

gospecial eval rf 1 2 0
gospecial batch -I requests.yaml`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.gospecial.yaml)")
	rootCmd.PersistentFlags().String("format", "%.15g", "printf verb used for real results")
	rootCmd.PersistentFlags().String("logLevel", "warn", "log level: debug, info, warn, error")
	rootCmd.PersistentFlags().Bool("devLog", false, "human readable log output")
	for _, key := range []string{"format", "logLevel", "devLog"} {
		_ = viper.BindPFlag(key, rootCmd.PersistentFlags().Lookup(key))
	}
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory.
		home, err := homedir.Dir()
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
		// Search config in home directory with name ".gospecial" (without extension).
		viper.AddConfigPath(home)
		viper.SetConfigName(".gospecial")
	}
	viper.SetEnvPrefix("GOSPECIAL")
	viper.AutomaticEnv() // read in environment variables that match

	// If a config file is found, read it in.
	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func newLogger() *zap.Logger {
	logger, err := logging.New(viper.GetString("logLevel"), viper.GetBool("devLog"))
	if err != nil {
		return zap.NewNop()
	}
	return logger
}
