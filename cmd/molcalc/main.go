package main

import (
	"fmt"
	"io"
	"os"
	"text/tabwriter"
	"time"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/san-kum/molcalc/internal/calc"
	"github.com/san-kum/molcalc/internal/config"
	"github.com/san-kum/molcalc/internal/export"
	"github.com/san-kum/molcalc/internal/observability"
	"github.com/san-kum/molcalc/internal/units"
	"github.com/san-kum/molcalc/internal/viz"
)

var (
	concentration float64
	concUnit      string
	molarMass     float64
	volume        float64
	volUnit       string
	preset        string
	configFile    string
	seed          int64
	theme         string
	logLevel      string
	logFormat     string
	// calc
	verbose bool
	// render
	standalone bool
	label      bool
	outFile    string
	indent     int
	// curve
	curveFrom  float64
	curveTo    float64
	curveSteps int
	curveRows  int
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// newRootCmd registers the commands and flags. With no subcommand the
// calculator TUI starts.
func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:          "molcalc",
		Short:        "molarity to mass calculator with beaker rendering",
		SilenceUsage: true,
		RunE:         runTUI,
	}

	pf := rootCmd.PersistentFlags()
	pf.Float64Var(&concentration, "conc", config.DefaultConcentration, "target concentration")
	pf.StringVar(&concUnit, "conc-unit", units.Molar.String(), "concentration unit (M, mM, uM)")
	pf.Float64Var(&molarMass, "mw", config.DefaultMolarMass, "molar mass in g/mol")
	pf.Float64Var(&volume, "vol", config.DefaultVolume, "solution volume")
	pf.StringVar(&volUnit, "vol-unit", units.Milliliter.String(), "volume unit (mL, L, uL)")
	pf.StringVar(&preset, "preset", "", "start from a solute preset")
	pf.StringVar(&configFile, "config", "", "config file path (yaml)")
	pf.Int64Var(&seed, "seed", time.Now().UnixNano(), "random seed for particle placement")
	pf.StringVar(&theme, "theme", config.DefaultTheme, "tui color theme")
	pf.StringVar(&logLevel, "log-level", "warn", "log level (debug, info, warn, error)")
	pf.StringVar(&logFormat, "log-format", "console", "log format (console, json)")

	calcCmd := &cobra.Command{
		Use:   "calc",
		Short: "print the mass required for the solution",
		Args:  cobra.NoArgs,
		RunE:  runCalc,
	}
	calcCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "print moles, grams and normalized inputs")

	renderCmd := &cobra.Command{
		Use:   "render",
		Short: "render the beaker scene as svg",
		Args:  cobra.NoArgs,
		RunE:  runRender,
	}
	renderCmd.Flags().BoolVar(&standalone, "standalone", false, "write a standalone .svg document instead of an html fragment")
	renderCmd.Flags().BoolVar(&label, "label", false, "append the mass label to the fragment")
	renderCmd.Flags().StringVarP(&outFile, "out", "o", "", "output file (default stdout)")
	renderCmd.Flags().IntVar(&indent, "indent", 2, "indent width, 0 for compact output")

	curveCmd := &cobra.Command{
		Use:   "curve",
		Short: "plot required grams across a volume range",
		Args:  cobra.NoArgs,
		RunE:  runCurve,
	}
	curveCmd.Flags().Float64Var(&curveFrom, "from", 0, "start volume (default 0)")
	curveCmd.Flags().Float64Var(&curveTo, "to", 0, "end volume (default twice --vol)")
	curveCmd.Flags().IntVar(&curveSteps, "steps", 60, "number of samples")
	curveCmd.Flags().IntVar(&curveRows, "height", 12, "plot height in rows")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list solute presets",
		Args:  cobra.NoArgs,
		RunE:  listPresets,
	}

	tuiCmd := &cobra.Command{
		Use:   "tui",
		Short: "interactive calculator",
		Args:  cobra.NoArgs,
		RunE:  runTUI,
	}

	initCmd := &cobra.Command{
		Use:   "init-config [path]",
		Short: "write the resolved settings to a yaml config file",
		Args:  cobra.ExactArgs(1),
		RunE:  initConfig,
	}

	rootCmd.AddCommand(calcCmd, renderCmd, curveCmd, presetsCmd, tuiCmd, initCmd)
	return rootCmd
}

// resolveConfig layers defaults, preset, config file and flags, in that order.
func resolveConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		p := config.GetPreset(preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
		cfg.Input = p.Input
	}

	if configFile != "" {
		if err := config.Merge(configFile, cfg); err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
	}

	flags := cmd.Flags()
	if flags.Changed("conc") {
		cfg.Input.Concentration = concentration
	}
	if flags.Changed("conc-unit") {
		u, err := units.ParseConcentration(concUnit)
		if err != nil {
			return nil, err
		}
		cfg.Input.ConcentrationUnit = u
	}
	if flags.Changed("mw") {
		cfg.Input.MolarMass = molarMass
	}
	if flags.Changed("vol") {
		cfg.Input.Volume = volume
	}
	if flags.Changed("vol-unit") {
		u, err := units.ParseVolume(volUnit)
		if err != nil {
			return nil, err
		}
		cfg.Input.VolumeUnit = u
	}
	if cfg.Seed == 0 || flags.Changed("seed") {
		cfg.Seed = seed
	}
	if flags.Changed("theme") {
		cfg.Theme = theme
	}
	if flags.Changed("log-level") {
		cfg.Logger.Level = logLevel
	}
	if flags.Changed("log-format") {
		cfg.Logger.Format = logFormat
	}

	if err := calc.Validate(cfg.Input); err != nil {
		return nil, err
	}
	return cfg, nil
}

// setup resolves the config, starts logging on stderr and evaluates once.
func setup(cmd *cobra.Command) (*config.Config, *calc.Result, error) {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return nil, nil, err
	}
	observability.InitializeLogger(cfg.Logger)
	logger := observability.GetLogger()

	res, err := calc.NewSeeded(logger, cfg.Seed).Evaluate(cfg.Input)
	if err != nil {
		return nil, nil, err
	}
	return cfg, res, nil
}

func runCalc(cmd *cobra.Command, args []string) error {
	defer observability.Sync()
	_, res, err := setup(cmd)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if !verbose {
		_, err := fmt.Fprintln(out, res.Breakdown.Label)
		return err
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "input\t%s\n", res.Input)
	fmt.Fprintf(w, "concentration\t%g mol/L\n", res.MolPerLiter)
	fmt.Fprintf(w, "volume\t%g L\n", res.Liters)
	fmt.Fprintf(w, "moles\t%g mol\n", res.Moles)
	fmt.Fprintf(w, "grams\t%g g\n", res.Grams)
	fmt.Fprintf(w, "mass\t%s\n", res.Breakdown.Label)
	fmt.Fprintf(w, "id\t%s\n", res.ID)
	return w.Flush()
}

func runRender(cmd *cobra.Command, args []string) error {
	defer observability.Sync()
	_, res, err := setup(cmd)
	if err != nil {
		return err
	}

	opts := export.Options{Standalone: standalone, Indent: indent}
	if label && !standalone {
		opts.Label = res.Breakdown.Label
	}
	svg, err := export.SceneToSVG(res.Scene, opts)
	if err != nil {
		return err
	}

	if outFile == "" {
		_, err := io.WriteString(cmd.OutOrStdout(), svg)
		return err
	}
	if err := os.WriteFile(outFile, []byte(svg), 0644); err != nil {
		return err
	}
	observability.GetLogger().Info("wrote svg", zap.String("path", outFile), zap.String("mass", res.Breakdown.Label))
	fmt.Fprintf(cmd.ErrOrStderr(), "wrote %s (%s)\n", outFile, res.Breakdown.Label)
	return nil
}

func runCurve(cmd *cobra.Command, args []string) error {
	defer observability.Sync()
	cfg, res, err := setup(cmd)
	if err != nil {
		return err
	}

	to := curveTo
	if !cmd.Flags().Changed("to") {
		to = 2 * cfg.Input.Volume
	}
	if to <= curveFrom {
		return fmt.Errorf("%w: --to (%g) must be greater than --from (%g)", calc.ErrInvalidInput, to, curveFrom)
	}
	if curveSteps < 2 {
		return fmt.Errorf("%w: --steps must be at least 2", calc.ErrInvalidInput)
	}

	data := calc.Sweep(cfg.Input, curveFrom, to, curveSteps)
	caption := fmt.Sprintf("grams of solute, %g to %g %s at %g %s (current: %s)",
		curveFrom, to, cfg.Input.VolumeUnit,
		cfg.Input.Concentration, cfg.Input.ConcentrationUnit,
		res.Breakdown.Label)

	graph := asciigraph.Plot(data,
		asciigraph.Height(curveRows),
		asciigraph.Width(80),
		asciigraph.Caption(caption),
	)
	_, err = fmt.Fprintln(cmd.OutOrStdout(), graph)
	return err
}

func listPresets(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tSOLUTE\tMW\tSTOCK")
	for _, name := range config.ListPresets() {
		p := config.GetPreset(name)
		fmt.Fprintf(w, "%s\t%s\t%g g/mol\t%g %s in %g %s\n",
			p.Name,
			p.Description,
			p.Input.MolarMass,
			p.Input.Concentration, p.Input.ConcentrationUnit,
			p.Input.Volume, p.Input.VolumeUnit,
		)
	}
	return w.Flush()
}

func runTUI(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	// the TUI owns the terminal, so only the rotated file sink gets log lines
	observability.InitializeWriter(cfg.Logger, io.Discard)
	defer observability.Sync()

	return viz.RunInteractive(cfg, observability.GetLogger())
}

func initConfig(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	if !cmd.Flags().Changed("seed") {
		cfg.Seed = 0
	}
	if err := config.Save(args[0], cfg); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", args[0])
	return nil
}
