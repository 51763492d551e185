// statsview — animated ring chart of a value series.
//
// Main CLI entrypoint using cobra command framework.
package main

import (
	"fmt"
	"io"
	"log"
	"math/rand"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/iburimskiy/statsview/internal/chart"
	"github.com/iburimskiy/statsview/internal/config"
	"github.com/iburimskiy/statsview/internal/game"
	"github.com/iburimskiy/statsview/internal/style"
)

// Build-time variables (set via -ldflags).
var (
	version = "dev"
	commit  = "unknown"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "statsview",
	Short: "Animated ring chart of a value series",
	Long: `statsview draws one arc per value, proportional to its share of the
total, and reveals the ring with a 2.5 second sweep. Values come from the
config file, --data, or a YAML file opened from the window.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return run(cmd, "")
	},
}

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Play the animation once and save the final frame as PNG",
	RunE: func(cmd *cobra.Command, args []string) error {
		out, _ := cmd.Flags().GetString("out")
		if out == "" {
			return fmt.Errorf("--out is required")
		}
		return run(cmd, out)
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("statsview %s\n", version)
		fmt.Printf("  commit:  %s\n", commit)
	},
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.String("config", "", "config file path (default: ./statsview.yaml)")
	flags.Float64Slice("data", nil, "comma separated values, e.g. 500,500,500,500")
	flags.String("style", "", "YAML style resource (text_size, stroke_width, color1..color4)")
	flags.Int64("seed", 0, "random seed for fallback colors (0: time based)")
	flags.Float64("density", 0, "density multiplier for style sizes (0: 1)")
	flags.Bool("sound", false, "play a chime when the animation ends")
	flags.String("log-level", "", "log level (debug, info, quiet)")

	renderCmd.Flags().String("out", "", "PNG output path")

	rootCmd.AddCommand(renderCmd)
	rootCmd.AddCommand(versionCmd)
}

func run(cmd *cobra.Command, snapshot string) error {
	configFile, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(configFile, cmd.Flags())
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if cmd.Flags().Changed("data") {
		cfg.Data, _ = cmd.Flags().GetFloat64Slice("data")
	}
	setupLogging(cfg.Logging.Level)

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))
	log.Printf("seed %d", seed)

	st, err := loadStyle(cfg, rng)
	if err != nil {
		return err
	}

	g, err := game.New(game.Options{
		Config:   cfg,
		Style:    st,
		Rand:     rng,
		Snapshot: snapshot,
	})
	if err != nil {
		return err
	}
	return game.Run(g)
}

func loadStyle(cfg *config.Config, rng *rand.Rand) (chart.Style, error) {
	var attrs style.Attributes
	if cfg.StyleFile != "" {
		var err error
		attrs, err = style.Load(cfg.StyleFile)
		if err != nil {
			return chart.Style{}, err
		}
	}
	st, err := style.Resolve(attrs, cfg.Density, rng)
	if err != nil {
		return chart.Style{}, fmt.Errorf("style %s: %w", cfg.StyleFile, err)
	}
	return st, nil
}

func setupLogging(level string) {
	log.SetPrefix("statsview: ")
	switch level {
	case "quiet":
		log.SetOutput(io.Discard)
	case "debug":
		log.SetFlags(log.LstdFlags | log.Lmicroseconds | log.Lshortfile)
	}
}
