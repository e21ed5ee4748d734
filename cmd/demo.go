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
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/VirtualBrainLab/probe-library/logger"
	"github.com/VirtualBrainLab/probe-library/mesher"
	"github.com/VirtualBrainLab/probe-library/probe"
)

// demoCmd represents the demo command
var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Generate and process the built-in demo probes",
	Long: `Synthesizes the built-in demo probes (linear 32-channel, 4x8
multi-column and a small dummy grid), gives each an automatic planar
contour, and processes them like library probes.`,
	Run: func(cmd *cobra.Command, args []string) {
		linear := probe.GenerateLinearProbe(32, 25.0)
		linear.CreateAutoShape("tip", probe.AutoShapeMargin)

		multi := probe.GenerateMultiColumnsProbe(4, 8, 20.0, 25.0)
		multi.CreateAutoShape("rect", probe.AutoShapeMargin)

		dummy := probe.GenerateDummyProbe()
		dummy.CreateAutoShape("tip", probe.AutoShapeMargin)

		gen := mesher.New(logger.L)
		opts := meshOptions()
		outDir := viper.GetString("out")

		var done int
		for i, p := range []*probe.Probe{linear, multi, dummy} {
			name := p.Name("demo")
			if err := processProbe(gen, p, name, i+1, outDir, opts); err != nil {
				logger.L.Error("skipping demo probe", zap.String("name", name), zap.Error(err))
				continue
			}
			done++
		}
		logger.L.Info("demo finished", zap.Int("processed", done), zap.String("out", outDir))
	},
}

func init() {
	rootCmd.AddCommand(demoCmd)
}
