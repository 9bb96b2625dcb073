/*
Copyright (c) YugabyteDB, Inc.

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

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/awslite/tablexport/src/config"
	"github.com/awslite/tablexport/src/export"
	"github.com/awslite/tablexport/src/utils"
)

var (
	cfgFile string
	workDir string

	// registry keeps every export started by this process queryable until exit.
	registry = export.NewRegistry()
)

var rootCmd = &cobra.Command{
	Use:   "tablexport",
	Short: "Snapshot-export engine for DynamoDB-compatible tables.",
	Long: `tablexport snapshots the contents of a DynamoDB-compatible table into an
object-storage bucket as a single gzipped JSON document and reports the export
status the way the DescribeExport API shapes it.`,

	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if err := config.ValidateLogLevel(); err != nil {
			utils.ErrExit("%v", err)
		}
		if workDir == "" {
			workDir = "."
		}
		InitLogging(workDir, cmd.Use == "version", cmd.Use)
	},

	Run: func(cmd *cobra.Command, args []string) {
		if len(args) == 0 {
			cmd.Help()
			os.Exit(0)
		}
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "",
		"config file (default is $HOME/.tablexport.yaml)")

	rootCmd.PersistentFlags().StringVarP(&workDir, "work-dir", "w", ".",
		"work directory used for logs and the default local object store")

	rootCmd.PersistentFlags().StringVar(&config.LogLevel, "log-level", "info",
		"log level for the log file (trace, debug, info, warn, error, fatal, panic)")
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		viper.AddConfigPath(home)
		viper.SetConfigType("yaml")
		viper.SetConfigName(".tablexport")
	}

	viper.SetEnvPrefix("TABLEXPORT")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}
