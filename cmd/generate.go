/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>

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
	"go.uber.org/zap"

	"github.com/VirtualBrainLab/probe-library/logger"
	"github.com/VirtualBrainLab/probe-library/mesher"
)

// generateCmd represents the generate command
var generateCmd = &cobra.Command{
	Use:   "generate <spec-file>",
	Short: "Process one probeinterface document into OBJ, CSV and metadata files",
	Long: `Reads a probeinterface specification (JSON or YAML) and writes, for
each probe it contains, a 3D OBJ mesh, a CSV electrode table and a JSON
metadata document under the output directory.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		startType, _ := cmd.Flags().GetInt("type")
		gen := mesher.New(logger.L)
		done, skipped := processDocument(gen, args[0], startType, viper.GetString("out"), meshOptions())
		logger.L.Info("generate finished", zap.Int("processed", done), zap.Int("skipped", skipped))
		if done == 0 {
			fmt.Fprintf(os.Stderr, "error: no probes processed from %s\n", args[0])
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(generateCmd)
	generateCmd.Flags().Int("type", 1, "integer probe type id assigned to the first probe in the document")
}
