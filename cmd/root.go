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

	homedir "github.com/mitchellh/go-homedir"
	"github.com/pkg/profile"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/VirtualBrainLab/probe-library/logger"
)

var (
	cfgFile    string
	cpuProfile bool
	profiler   interface{ Stop() }
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "probe-library",
	Short: "Generate 3D probe meshes and electrode tables from probe specifications",
	Long: `probe-library converts neural probe specifications (probeinterface
JSON or YAML documents) into the files a 3D viewer needs: an OBJ mesh of
the probe body, a CSV electrode table, and a JSON metadata document.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logger.Init(logger.Options{
			Level:   viper.GetString("log-level"),
			File:    viper.GetString("log-file"),
			Console: true,
		})
		if cpuProfile {
			profiler = profile.Start(profile.CPUProfile, profile.ProfilePath("."))
		}
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if profiler != nil {
			profiler.Stop()
		}
		logger.Sync()
	},
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

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.probe-library.yaml)")
	rootCmd.PersistentFlags().BoolVar(&cpuProfile, "cpuprofile", false, "write a CPU profile to the working directory")
	rootCmd.PersistentFlags().String("log-level", "info", "log level: debug, info, warn, error")
	rootCmd.PersistentFlags().String("log-file", "", "duplicate logs to this file, size-rotated")

	rootCmd.PersistentFlags().StringP("out", "o", "probe_outputs", "output directory")
	rootCmd.PersistentFlags().Float64P("thickness", "t", 20.0, "probe shank thickness in micrometers")
	rootCmd.PersistentFlags().Float64("contact-height", 2.0, "per-contact pad height in micrometers")
	rootCmd.PersistentFlags().Bool("contacts", false, "add individual contact pad geometry to the mesh")
	rootCmd.PersistentFlags().Bool("triangulate-caps", false, "triangulate cap faces for viewers that cannot render concave polygons")

	for _, key := range []string{"log-level", "log-file", "out", "thickness", "contact-height", "contacts", "triangulate-caps"} {
		if err := viper.BindPFlag(key, rootCmd.PersistentFlags().Lookup(key)); err != nil {
			panic(err)
		}
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

		// Search config in home directory with name ".probe-library" (without extension).
		viper.AddConfigPath(home)
		viper.SetConfigName(".probe-library")
	}

	viper.AutomaticEnv() // read in environment variables that match

	// If a config file is found, read it in.
	if err := viper.ReadInConfig(); err == nil {
		fmt.Println("Using config file:", viper.ConfigFileUsed())
	}
}
