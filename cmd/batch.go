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
	"io/fs"
	"path/filepath"
	"sort"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/VirtualBrainLab/probe-library/logger"
	"github.com/VirtualBrainLab/probe-library/mesher"
)

// batchCmd represents the batch command
var batchCmd = &cobra.Command{
	Use:   "batch <library-dir>",
	Short: "Process every probe specification under a directory tree",
	Long: `Walks a probeinterface-library style tree (manufacturer/probe/probe.json)
and processes every specification document found. A probe that fails is
reported and skipped; the rest of the batch continues.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		docs, err := findDocuments(args[0])
		if err != nil {
			logger.L.Fatal("scanning library", zap.String("dir", args[0]), zap.Error(err))
		}
		if len(docs) == 0 {
			logger.L.Warn("no probe specifications found", zap.String("dir", args[0]))
			return
		}

		gen := mesher.New(logger.L)
		opts := meshOptions()
		outDir := viper.GetString("out")

		var done, skipped int
		typeID := 1
		for _, doc := range docs {
			d, s := processDocument(gen, doc, typeID, outDir, opts)
			done += d
			skipped += s
			typeID += d + s
		}
		logger.L.Info("batch finished",
			zap.Int("documents", len(docs)),
			zap.Int("processed", done),
			zap.Int("skipped", skipped),
			zap.String("out", outDir))
	},
}

// findDocuments collects specification files under root, sorted for a
// stable processing (and type numbering) order.
func findDocuments(root string) ([]string, error) {
	var docs []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		switch filepath.Ext(path) {
		case ".json", ".yaml", ".yml":
			docs = append(docs, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(docs)
	return docs, nil
}

func init() {
	rootCmd.AddCommand(batchCmd)
}
