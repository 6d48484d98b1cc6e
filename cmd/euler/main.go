package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/san-kum/euler/internal/browse"
	"github.com/san-kum/euler/internal/config"
	"github.com/san-kum/euler/internal/dataset"
	"github.com/san-kum/euler/internal/identity"
	"github.com/san-kum/euler/internal/logging"
	"github.com/san-kum/euler/internal/numtheory"
	"github.com/san-kum/euler/internal/powerplot"
)

var (
	configFile string
	verbose    bool
	log        *logrus.Logger

	// powerplot
	input      string
	plotOutput string
	dpi        int
	preview    bool

	// digitpowers
	power        uint64
	maxVal       uint64
	workers      int
	valuesOutput string
	preset       string

	// pentagonal
	showTable bool

	// pentpair, tripent
	maxIndex int
	hexStart uint64

	// browse
	startN int
)

// main registers the subcommands and runs the root command, exiting with
// status 1 when it returns an error.
func main() {
	rootCmd := &cobra.Command{
		Use:          "euler",
		Short:        "digit power plots and pentagonal number identities",
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			log = logging.New(os.Stderr, verbose)
		},
	}

	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")

	powerplotCmd := &cobra.Command{
		Use:   "powerplot",
		Short: "plot precomputed values against their index",
		Args:  cobra.NoArgs,
		RunE:  runPowerPlot,
	}
	powerplotCmd.Flags().StringVar(&input, "input", config.DefaultInput, "value file, one integer per line")
	powerplotCmd.Flags().StringVar(&plotOutput, "output", config.DefaultOutput, "png output path")
	powerplotCmd.Flags().IntVar(&dpi, "dpi", config.DefaultDPI, "output resolution")
	powerplotCmd.Flags().BoolVar(&preview, "preview", false, "also draw a terminal chart")

	digitpowersCmd := &cobra.Command{
		Use:   "digitpowers",
		Short: "write digit power sums for 2..max and sum the fixed points",
		Args:  cobra.NoArgs,
		RunE:  runDigitPowers,
	}
	digitpowersCmd.Flags().Uint64Var(&power, "power", config.DefaultPower, "digit exponent")
	digitpowersCmd.Flags().Uint64Var(&maxVal, "max", config.DefaultMax, "largest number to evaluate")
	digitpowersCmd.Flags().IntVar(&workers, "workers", 0, "parallel workers (0 = GOMAXPROCS)")
	digitpowersCmd.Flags().StringVar(&valuesOutput, "output", config.DefaultInput, "value file to write")
	digitpowersCmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")

	pentagonalCmd := &cobra.Command{
		Use:   "pentagonal",
		Short: "print identities of the pentagonal numbers",
		Args:  cobra.NoArgs,
		RunE:  runPentagonal,
	}
	pentagonalCmd.Flags().BoolVar(&showTable, "table", false, "also print P(1..10)")

	pentpairCmd := &cobra.Command{
		Use:   "pentpair",
		Short: "find the pentagonal pair with pentagonal sum and minimal pentagonal difference",
		Args:  cobra.NoArgs,
		RunE:  runPentPair,
	}
	pentpairCmd.Flags().IntVar(&maxIndex, "max-index", config.DefaultPairIndex, "number of pentagonal numbers to search")

	tripentCmd := &cobra.Command{
		Use:   "tripent",
		Short: "find the next triangular number that is also pentagonal and hexagonal",
		Args:  cobra.NoArgs,
		RunE:  runTriPent,
	}
	tripentCmd.Flags().Uint64Var(&hexStart, "start", config.DefaultHexStart, "first hexagonal index to test")

	browseCmd := &cobra.Command{
		Use:   "browse",
		Short: "browse pentagonal numbers interactively",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return browse.Run(startN)
		},
	}
	browseCmd.Flags().IntVar(&startN, "start", 1, "initial n")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list digit power presets",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			for _, name := range config.ListPresets() {
				p := config.GetPreset(name)
				fmt.Printf("  %-8s power=%d max=%d\n", name, p.Power, p.Max)
			}
		},
	}

	rootCmd.AddCommand(powerplotCmd, digitpowersCmd, pentagonalCmd, pentpairCmd, tripentCmd, browseCmd, presetsCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func loadConfig() (*config.Config, error) {
	if configFile == "" {
		return config.DefaultConfig(), nil
	}
	cfg, err := config.Load(configFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	log.WithField("path", configFile).Debug("config loaded")
	return cfg, nil
}

func runPowerPlot(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	// CLI flags override config
	pp := cfg.PowerPlot
	if cmd.Flags().Changed("input") {
		pp.Input = input
	}
	if cmd.Flags().Changed("output") {
		pp.Output = plotOutput
	}
	if cmd.Flags().Changed("dpi") {
		pp.DPI = dpi
	}
	if cmd.Flags().Changed("preview") {
		pp.Preview = preview
	}

	return powerplot.Run(pp, os.Stdout, log)
}

func runDigitPowers(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	dp := cfg.DigitPowers
	if preset != "" {
		p := config.GetPreset(preset)
		if p == nil {
			return fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
		dp = *p
	}
	if cmd.Flags().Changed("power") {
		dp.Power = power
	}
	if cmd.Flags().Changed("max") {
		dp.Max = maxVal
	}
	if cmd.Flags().Changed("workers") {
		dp.Workers = workers
	}
	if cmd.Flags().Changed("output") {
		dp.Output = valuesOutput
	}

	start := time.Now()
	values := numtheory.DigitPowerValues(dp.Max, dp.Power, dp.Workers)
	log.WithFields(logrus.Fields{"count": len(values), "elapsed": time.Since(start)}).Debug("digit powers computed")

	if err := dataset.Save(dp.Output, values); err != nil {
		return fmt.Errorf("write %s: %w", dp.Output, err)
	}
	log.WithField("path", dp.Output).Info("values written")

	sum, fixed := numtheory.DigitPowerFixedPoints(values)
	fmt.Printf("Power %d values: %d\n", dp.Power, sum)
	if len(fixed) > 0 {
		parts := make([]string, len(fixed))
		for i, f := range fixed {
			parts[i] = fmt.Sprint(f)
		}
		fmt.Printf("fixed points: %s\n", strings.Join(parts, ", "))
	}
	return nil
}

func runPentagonal(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	table := identity.Table(cfg.Pentagonal.TableSize)
	if showTable || cfg.Pentagonal.ShowTable {
		if err := identity.PrintTable(os.Stdout, table); err != nil {
			return err
		}
	}
	return identity.Print(os.Stdout, identity.Derive())
}

func runPentPair(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("max-index") {
		cfg.PairSearch.MaxIndex = maxIndex
	}

	start := time.Now()
	pair, ok := numtheory.MinPentagonalPair(cfg.PairSearch.MaxIndex)
	log.WithField("elapsed", time.Since(start)).Debug("pair search finished")
	if !ok {
		return fmt.Errorf("no pentagonal pair among the first %d pentagonal numbers", cfg.PairSearch.MaxIndex)
	}

	fmt.Printf("P(%d) = %d, P(%d) = %d\n", pair.J, pair.PJ, pair.K, pair.PK)
	fmt.Printf("min_diff: %d\n", pair.D)
	return nil
}

func runTriPent(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("start") {
		cfg.PairSearch.HexStart = hexStart
	}

	start := time.Now()
	k, h := numtheory.NextHexPentagonal(cfg.PairSearch.HexStart)
	log.WithFields(logrus.Fields{"k": k, "elapsed": time.Since(start)}).Debug("hexagonal search finished")

	fmt.Println(h)
	return nil
}
