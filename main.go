package main

import (
	"errors"
	"fmt"
	"io"
	"math/rand"
	"os"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/iburimskiy/pixelswarm/internal/config"
	"github.com/iburimskiy/pixelswarm/internal/game"
	"github.com/iburimskiy/pixelswarm/internal/log"
	"github.com/iburimskiy/pixelswarm/internal/scene"
	"github.com/iburimskiy/pixelswarm/internal/snapshot"
	"github.com/iburimskiy/pixelswarm/internal/swarm"
	"github.com/iburimskiy/pixelswarm/internal/term"
)

const maxSettleFrames = 10000

var (
	configFile string
	particles  int
	seed       int64
	mute       bool
	logLevel   string

	snapPattern   string
	snapFrames    int
	outPath       string
	settlePattern string
	settleFrames  int
	cols          int
	rows          int
	force         bool
)

var (
	titleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#008080")).Bold(true)
	labelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(14)
	valueStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#ffb703"))
)

func main() {
	rootCmd := &cobra.Command{
		Use:          "pixelswarm",
		Short:        "particles that gather into shapes and scatter back",
		SilenceUsage: true,
		RunE:         runWindow,
	}
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")
	rootCmd.PersistentFlags().IntVar(&particles, "particles", config.ParticleCount, "number of particles")
	rootCmd.PersistentFlags().Int64Var(&seed, "seed", 0, "random seed (0 picks one)")
	rootCmd.PersistentFlags().BoolVar(&mute, "mute", false, "start with audio muted")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "debug, info, warn, error or none")

	snapshotCmd := &cobra.Command{
		Use:   "snapshot",
		Short: "render a frame to SVG without opening a window",
		Args:  cobra.NoArgs,
		RunE:  runSnapshot,
	}
	snapshotCmd.Flags().StringVar(&snapPattern, "pattern", "", "circle, square or triangle (default: stay idle)")
	snapshotCmd.Flags().IntVar(&snapFrames, "frames", 120, "frames to simulate before rendering")
	snapshotCmd.Flags().StringVarP(&outPath, "out", "o", "-", "output file, - for stdout")

	previewCmd := &cobra.Command{
		Use:   "preview",
		Short: "run the swarm in the terminal",
		Args:  cobra.NoArgs,
		RunE:  runPreview,
	}
	previewCmd.Flags().IntVar(&cols, "cols", 80, "canvas width in cells")
	previewCmd.Flags().IntVar(&rows, "rows", 40, "canvas height in cells")

	settleCmd := &cobra.Command{
		Use:   "settle",
		Short: "congregate, release and plot how the swarm settles",
		Args:  cobra.NoArgs,
		RunE:  runSettle,
	}
	settleCmd.Flags().StringVar(&settlePattern, "pattern", "circle", "circle, square or triangle")
	settleCmd.Flags().IntVar(&settleFrames, "frames", 120, "frames to hold the pattern before release")

	configCmd := &cobra.Command{
		Use:   "config",
		Short: "manage config files",
	}
	initCmd := &cobra.Command{
		Use:   "init [path]",
		Short: "write the default config",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runConfigInit,
	}
	initCmd.Flags().BoolVar(&force, "force", false, "overwrite an existing file")
	configCmd.AddCommand(initCmd)

	rootCmd.AddCommand(snapshotCmd, previewCmd, settleCmd, configCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// loadConfig reads the config file, if any, and applies explicit flags on
// top of it.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()
	if configFile != "" {
		var err error
		if cfg, err = config.Load(configFile); err != nil {
			return nil, err
		}
	}
	flags := cmd.Flags()
	if flags.Changed("particles") {
		cfg.Particles = particles
	}
	if flags.Changed("seed") {
		cfg.Seed = seed
	}
	if flags.Changed("mute") {
		cfg.Mute = mute
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = logLevel
	}
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func newScene(cmd *cobra.Command) (*scene.Scene, *config.Config, *log.Logger, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, nil, nil, err
	}
	logger := log.New(os.Stderr, log.LevelFromString(cfg.LogLevel))
	opts, err := scene.OptionsFromConfig(cfg, rand.New(rand.NewSource(cfg.Seed)), logger)
	if err != nil {
		return nil, nil, nil, err
	}
	logger.Debugf("seed %d", cfg.Seed)
	return scene.New(opts), cfg, logger, nil
}

func runWindow(cmd *cobra.Command, args []string) error {
	s, cfg, logger, err := newScene(cmd)
	if err != nil {
		return err
	}
	player := game.StartAudio(logger, cfg.Mute)
	return game.Run(game.New(s, player, logger))
}

func runSnapshot(cmd *cobra.Command, args []string) error {
	s, _, logger, err := newScene(cmd)
	if err != nil {
		return err
	}
	if snapPattern != "" {
		shape, err := swarm.ParseShape(snapPattern)
		if err != nil {
			return err
		}
		s.Activate(shape)
	}
	for i := 0; i < snapFrames; i++ {
		s.Tick()
	}

	if outPath == "-" {
		return snapshot.Write(os.Stdout, s)
	}
	if err := game.SaveSnapshot(outPath, s); err != nil {
		return err
	}
	logger.Infof("wrote frame %d (%s) to %s", s.Frame(), s.State().Name(), outPath)
	return nil
}

func runPreview(cmd *cobra.Command, args []string) error {
	s, _, _, err := newScene(cmd)
	if err != nil {
		return err
	}
	return term.Run(s, cols, rows)
}

func runSettle(cmd *cobra.Command, args []string) error {
	shape, err := swarm.ParseShape(settlePattern)
	if err != nil {
		return err
	}
	s, _, _, err := newScene(cmd)
	if err != nil {
		return err
	}
	trace, ok := s.Settle(shape, settleFrames, maxSettleFrames)
	printSettle(cmd.OutOrStdout(), shape, trace, ok)
	if !ok {
		return fmt.Errorf("swarm did not settle within %d frames", maxSettleFrames)
	}
	return nil
}

func printSettle(w io.Writer, shape swarm.Shape, trace []float64, ok bool) {
	fmt.Fprintln(w, titleStyle.Render("settle: "+shape.String()))
	if len(trace) > 1 {
		fmt.Fprintln(w, asciigraph.Plot(trace,
			asciigraph.Height(10),
			asciigraph.Width(60),
			asciigraph.Caption("mean distance from rest per frame"),
		))
	}
	row := func(label, value string) {
		fmt.Fprintln(w, lipgloss.JoinHorizontal(lipgloss.Top, labelStyle.Render(label), valueStyle.Render(value)))
	}
	row("start", fmt.Sprintf("%.2f", trace[0]))
	row("frames", fmt.Sprintf("%d", len(trace)-1))
	row("settled", fmt.Sprintf("%v", ok))
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	path := "pixelswarm.yaml"
	if len(args) == 1 {
		path = args[0]
	}
	if _, err := os.Stat(path); err == nil && !force {
		return fmt.Errorf("%s already exists (use --force)", path)
	} else if err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	if err := config.Save(path, config.DefaultConfig()); err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), "wrote", path)
	return nil
}
