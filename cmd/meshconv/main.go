// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the meshconv CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the meshconv CLI.
var rootCmd = &cobra.Command{
	Use:   "meshconv",
	Short: "Convert STL surface meshes to glTF binary containers",
	Long: `meshconv loads a triangulated surface mesh from an STL file (ASCII or
binary) into a transient scene and writes that scene as a single-file glTF 2.0
binary (.glb). Only geometry is carried over; the container's material and
scene-graph features are left empty.`,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./meshconv.yaml or ~/.config/meshconv/meshconv.yaml)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("meshconv")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "meshconv"))
		}
	}

	viper.SetEnvPrefix("MESHCONV")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
