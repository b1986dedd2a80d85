// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/meshconv/internal/convert"
	"github.com/pdiddy/meshconv/internal/gltfio"
	"github.com/pdiddy/meshconv/internal/logging"
	"github.com/pdiddy/meshconv/internal/metrics"
	"github.com/pdiddy/meshconv/internal/stlio"
	"github.com/pdiddy/meshconv/pkg/types"
)

var convertCmd = &cobra.Command{
	Use:   "convert [flags] -- <source.stl> <destination.glb>",
	Short: "Convert an STL mesh into a GLB file",
	Long: `Convert clears the scene, imports the STL source, and exports the scene
to the destination as a glTF binary. It then prints the size of the written
file in megabytes, or "Output file not found!" if the destination is absent.

The destination's parent directory must exist. Import and export failures end
the command with a non-zero exit status.`,
	Args:         cobra.ExactArgs(2),
	SilenceUsage: true,
	RunE:         runConvert,
}

func init() {
	convertCmd.Flags().String("log-level", "warn", "diagnostic log level: debug, info, warn, or error")
	convertCmd.Flags().String("log-format", "text", "diagnostic log format: text or json")
	convertCmd.Flags().String("metrics-file", "", "write Prometheus metrics for the run to this textfile")
	convertCmd.Flags().String("report", string(types.ReportText), "summary after the status lines: text or yaml")
	convertCmd.Flags().String("generator", gltfio.Generator, "asset generator string written into the GLB")

	_ = viper.BindPFlag("log.level", convertCmd.Flags().Lookup("log-level"))
	_ = viper.BindPFlag("log.format", convertCmd.Flags().Lookup("log-format"))
	_ = viper.BindPFlag("metrics_file", convertCmd.Flags().Lookup("metrics-file"))
	_ = viper.BindPFlag("report", convertCmd.Flags().Lookup("report"))
	_ = viper.BindPFlag("generator", convertCmd.Flags().Lookup("generator"))

	rootCmd.AddCommand(convertCmd)
}

// convertConfig resolves flags, environment, and config file into a
// ConvertConfig.
func convertConfig() (types.ConvertConfig, error) {
	var cfg types.ConvertConfig
	if err := viper.Unmarshal(&cfg); err != nil {
		return cfg, fmt.Errorf("reading configuration: %w", err)
	}
	switch cfg.Report {
	case types.ReportText, types.ReportYAML:
	case "":
		cfg.Report = types.ReportText
	default:
		return cfg, fmt.Errorf("invalid report format %q: want text or yaml", cfg.Report)
	}
	return cfg, nil
}

func runConvert(cmd *cobra.Command, args []string) error {
	cfg, err := convertConfig()
	if err != nil {
		return err
	}

	logger, err := logging.New(cmd.ErrOrStderr(), cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		return err
	}

	var rec *metrics.Recorder
	if cfg.MetricsFile != "" {
		rec = metrics.NewRecorder()
	}

	c := convert.NewConverter(
		stlio.NewImporter(),
		gltfio.NewExporter(cfg.Generator),
		cmd.OutOrStdout(),
		convert.WithLogger(logger),
		convert.WithMetrics(rec),
	)

	res, convErr := c.Convert(args[0], args[1])

	if err := rec.WriteTextfile(cfg.MetricsFile); err != nil {
		logger.Warn("writing metrics textfile", "path", cfg.MetricsFile, "err", err)
	}
	if convErr != nil {
		return convErr
	}

	return convert.WriteReport(cmd.OutOrStdout(), res, cfg.Report)
}
