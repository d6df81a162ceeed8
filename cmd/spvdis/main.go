// spvdis prints SPIR-V binaries as text or as msgpack-encoded instruction lists.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"tlog.app/go/errors"
	"tlog.app/go/tlog"
)

var version = "0.1.0-dev"

var rootCmd = &cobra.Command{
	Use:   "spvdis [flags] file.spv...",
	Short: "Disassemble SPIR-V modules",
	Long:  `spvdis parses SPIR-V binaries in either byte order and prints their instructions`,
	Args:  cobra.MinimumNArgs(1),
	RunE:  runDisassemble,

	SilenceUsage: true,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the spvdis version",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), "spvdis", color.New(color.FgGreen, color.Bold).Sprint(version))
	},
}

func init() {
	rootCmd.Version = version

	rootCmd.AddCommand(versionCmd)

	rootCmd.PersistentFlags().String("config", "", "path to a spvdis.toml file")
	rootCmd.PersistentFlags().String("color", "auto", "colorize output (auto|on|off)")

	rootCmd.Flags().String("format", "text", "output format (text|msgpack)")
	rootCmd.Flags().Int("jobs", 0, "files disassembled in parallel (0 means GOMAXPROCS)")
	rootCmd.Flags().Bool("header", true, "print the module header as comments")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// resolveConfig layers defaults, the config file and explicit flags.
func resolveConfig(cmd *cobra.Command) (config, error) {
	cfg := defaultConfig()

	path, err := cmd.Flags().GetString("config")
	if err != nil {
		return cfg, errors.Wrap(err, "config flag")
	}

	if path != "" {
		if err := loadConfig(path, &cfg); err != nil {
			return cfg, err
		}
	}

	flags := cmd.Flags()

	if flags.Changed("format") {
		cfg.Format, _ = flags.GetString("format")
	}
	if flags.Changed("color") {
		cfg.Color, _ = flags.GetString("color")
	}
	if flags.Changed("jobs") {
		cfg.Jobs, _ = flags.GetInt("jobs")
	}
	if flags.Changed("header") {
		cfg.Header, _ = flags.GetBool("header")
	}

	return cfg, cfg.validate()
}

func runDisassemble(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	ctx = tlog.ContextWithSpan(ctx, tlog.Root())

	outs, err := disassembleFiles(ctx, args, cfg, cfg.Format == "text" && cfg.useColor(os.Stdout))
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()

	for i, out := range outs {
		if len(outs) > 1 && cfg.Format == "text" {
			if i != 0 {
				fmt.Fprintln(w)
			}

			fmt.Fprintf(w, "; %s\n", args[i])
		}

		if _, err := w.Write(out); err != nil {
			return errors.Wrap(err, "write")
		}
	}

	return nil
}
