// Package main provides the CLI entrypoint for flick.
package main

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/verte-zerg/flick/internal/animate"
	"github.com/verte-zerg/flick/internal/behavior"
	"github.com/verte-zerg/flick/internal/config"
	"github.com/verte-zerg/flick/internal/generator"
	"github.com/verte-zerg/flick/internal/log"
	"github.com/verte-zerg/flick/internal/model"
	"github.com/verte-zerg/flick/internal/stats"
	"github.com/verte-zerg/flick/internal/statsui"
	"github.com/verte-zerg/flick/internal/store"
	"github.com/verte-zerg/flick/internal/tui"
	"github.com/verte-zerg/flick/internal/wordlist"
)

// Distances are terminal cells, times are milliseconds.
const (
	defaultLockThreshold   = 2.0
	defaultLimitTimeMs     = 300
	defaultLimitDistance   = 3.0
	defaultDeceleration    = 0.0015
	defaultSwipeTimeMs     = 2500
	defaultSwipeBounceMs   = 500
	defaultBounceTimeMs    = 800
	defaultLines           = 200
	defaultMinWords        = 4
	defaultMaxWords        = 16
	defaultSettle          = "ease"
	defaultFPS             = 60
	defaultCurveWindow     = 20
	defaultLogLevel        = "info"
	defaultLogFormat       = "text"
	defaultSimulateWrapper = 300.0
	defaultSimulateContent = 500.0
)

var (
	scrollX         bool
	scrollY         bool
	freeScroll      bool
	lockThreshold   float64
	momentum        bool
	limitTimeMs     int
	limitDistance   float64
	deceleration    float64
	swipeTimeMs     int
	swipeBounceMs   int
	bounceTimeMs    int
	bounceTop       bool
	bounceBottom    bool
	bounceLeft      bool
	bounceRight     bool
	playLines       int
	playMinWords    int
	playMaxWords    int
	playSeed        int64
	playFile        string
	playSettle      string
	playFPS         int
	logLevel        string
	logFormat       string
	logFile         string
	statsSince      string
	statsLast       int
	statsCurve      int
	statsAxis       string
	statsPlain      bool
	simulateWrapper float64
	simulateContent float64
	simulateFrom    float64
	simulateTo      float64
	simulateMs      int
	simulateAxis    string
)

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "flick",
		Short:         "Terminal scroll physics playground",
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE:          runPlaygroundCmd,
	}

	addScrollFlags(rootCmd)
	rootCmd.Flags().IntVar(&playLines, "lines", defaultLines, "number of generated lines")
	rootCmd.Flags().IntVar(&playMinWords, "min-words", defaultMinWords, "minimum words per generated line")
	rootCmd.Flags().IntVar(&playMaxWords, "max-words", defaultMaxWords, "maximum words per generated line")
	rootCmd.Flags().Int64Var(&playSeed, "seed", 0, "generator seed (0 = time based)")
	rootCmd.Flags().StringVar(&playFile, "file", "", "scroll through this file instead of generated text")
	rootCmd.Flags().StringVar(&playSettle, "settle", defaultSettle, "settle animation (ease or spring)")
	rootCmd.Flags().IntVar(&playFPS, "fps", defaultFPS, "animation frames per second")
	rootCmd.Flags().StringVar(&logLevel, "log-level", defaultLogLevel, "log level (debug, info, warn, error)")
	rootCmd.Flags().StringVar(&logFormat, "log-format", defaultLogFormat, "log format (text or json)")
	rootCmd.Flags().StringVar(&logFile, "log-file", "", "log file (default: XDG state dir)")

	rootCmd.AddCommand(newConfigCmd())
	rootCmd.AddCommand(newSimulateCmd())
	rootCmd.AddCommand(newStatsCmd())

	return rootCmd
}

func addScrollFlags(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&scrollX, "scroll-x", true, "enable horizontal scrolling")
	cmd.Flags().BoolVar(&scrollY, "scroll-y", true, "enable vertical scrolling")
	cmd.Flags().BoolVar(&freeScroll, "free-scroll", false, "scroll both axes at once")
	cmd.Flags().Float64Var(&lockThreshold, "direction-lock-threshold", defaultLockThreshold, "distance before the direction lock is decided")
	cmd.Flags().BoolVar(&momentum, "momentum", true, "enable momentum after a flick")
	cmd.Flags().IntVar(&limitTimeMs, "momentum-limit-time", defaultLimitTimeMs, "max flick duration in ms")
	cmd.Flags().Float64Var(&limitDistance, "momentum-limit-distance", defaultLimitDistance, "min flick distance")
	cmd.Flags().Float64Var(&deceleration, "deceleration", defaultDeceleration, "momentum deceleration")
	cmd.Flags().IntVar(&swipeTimeMs, "swipe-time", defaultSwipeTimeMs, "momentum duration in ms")
	cmd.Flags().IntVar(&swipeBounceMs, "swipe-bounce-time", defaultSwipeBounceMs, "momentum duration past an edge in ms")
	cmd.Flags().IntVar(&bounceTimeMs, "bounce-time", defaultBounceTimeMs, "rebound duration in ms")
	cmd.Flags().BoolVar(&bounceTop, "bounce-top", true, "elastic top edge")
	cmd.Flags().BoolVar(&bounceBottom, "bounce-bottom", true, "elastic bottom edge")
	cmd.Flags().BoolVar(&bounceLeft, "bounce-left", true, "elastic left edge")
	cmd.Flags().BoolVar(&bounceRight, "bounce-right", true, "elastic right edge")
}

func applyScrollConfig(cmd *cobra.Command, fileCfg config.ScrollConfig) {
	applyBoolConfig(cmd, "scroll-x", &scrollX, fileCfg.ScrollX)
	applyBoolConfig(cmd, "scroll-y", &scrollY, fileCfg.ScrollY)
	applyBoolConfig(cmd, "free-scroll", &freeScroll, fileCfg.FreeScroll)
	applyFloatConfig(cmd, "direction-lock-threshold", &lockThreshold, fileCfg.DirectionLockThreshold)
	applyBoolConfig(cmd, "momentum", &momentum, fileCfg.Momentum)
	applyIntConfig(cmd, "momentum-limit-time", &limitTimeMs, fileCfg.MomentumLimitTime)
	applyFloatConfig(cmd, "momentum-limit-distance", &limitDistance, fileCfg.MomentumLimitDistance)
	applyFloatConfig(cmd, "deceleration", &deceleration, fileCfg.Deceleration)
	applyIntConfig(cmd, "swipe-time", &swipeTimeMs, fileCfg.SwipeTime)
	applyIntConfig(cmd, "swipe-bounce-time", &swipeBounceMs, fileCfg.SwipeBounceTime)
	applyIntConfig(cmd, "bounce-time", &bounceTimeMs, fileCfg.BounceTime)
	applyBoolConfig(cmd, "bounce-top", &bounceTop, fileCfg.BounceTop)
	applyBoolConfig(cmd, "bounce-bottom", &bounceBottom, fileCfg.BounceBottom)
	applyBoolConfig(cmd, "bounce-left", &bounceLeft, fileCfg.BounceLeft)
	applyBoolConfig(cmd, "bounce-right", &bounceRight, fileCfg.BounceRight)
}

func scrollConfigFromFlags() model.ScrollConfig {
	return model.ScrollConfig{
		ScrollX:                scrollX,
		ScrollY:                scrollY,
		FreeScroll:             freeScroll,
		DirectionLockThreshold: lockThreshold,
		Momentum:               momentum,
		MomentumLimitTime:      millis(limitTimeMs),
		MomentumLimitDistance:  limitDistance,
		Deceleration:           deceleration,
		SwipeTime:              millis(swipeTimeMs),
		SwipeBounceTime:        millis(swipeBounceMs),
		BounceTime:             millis(bounceTimeMs),
		Bounce: model.Bounce{
			Top:    bounceTop,
			Bottom: bounceBottom,
			Left:   bounceLeft,
			Right:  bounceRight,
		},
	}
}

func runPlaygroundCmd(cmd *cobra.Command, _ []string) error {
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	applyScrollConfig(cmd, fileCfg.Scroll)
	applyIntConfig(cmd, "lines", &playLines, fileCfg.Playground.Lines)
	applyIntConfig(cmd, "min-words", &playMinWords, fileCfg.Playground.MinWords)
	applyIntConfig(cmd, "max-words", &playMaxWords, fileCfg.Playground.MaxWords)
	applyInt64Config(cmd, "seed", &playSeed, fileCfg.Playground.Seed)
	applyStringConfig(cmd, "file", &playFile, fileCfg.Playground.File)
	applyStringConfig(cmd, "settle", &playSettle, fileCfg.Playground.Settle)
	applyIntConfig(cmd, "fps", &playFPS, fileCfg.Playground.FPS)
	applyStringConfig(cmd, "log-level", &logLevel, fileCfg.Log.Level)
	applyStringConfig(cmd, "log-format", &logFormat, fileCfg.Log.Format)
	applyStringConfig(cmd, "log-file", &logFile, fileCfg.Log.File)

	scrollCfg := scrollConfigFromFlags()
	playCfg := model.PlaygroundConfig{
		Lines:    playLines,
		MinWords: playMinWords,
		MaxWords: playMaxWords,
		Seed:     playSeed,
		File:     playFile,
		Settle:   playSettle,
		FPS:      playFPS,
	}
	if err := validateConfig(scrollCfg, playCfg); err != nil {
		return err
	}
	settle, err := animate.ParseMode(playCfg.Settle)
	if err != nil {
		return fmt.Errorf("invalid --settle value: %w", err)
	}
	format, err := log.ParseFormat(logFormat)
	if err != nil {
		return fmt.Errorf("invalid --log-format value: %w", err)
	}

	logPath := logFile
	if logPath == "" {
		logPath = config.DefaultLogPath()
	}
	logger, logCloser, err := log.Open(logPath, format, logLevel)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := logCloser.Close(); cerr != nil {
			logErrf("failed to close log: %v\n", cerr)
		}
	}()

	opts := tui.Options{
		Scroll:     scrollCfg,
		Playground: playCfg,
		Settle:     settle,
		Logger:     logger,
	}
	if playCfg.File != "" {
		lines, err := wordlist.LoadLines(playCfg.File)
		if err != nil {
			return err
		}
		opts.Lines = lines
	} else {
		words, err := wordlist.LoadWordsOrDefault(config.DefaultWordListPath())
		if err != nil {
			return err
		}
		opts.Words = words
		opts.Generator = generator.New(playCfg.Seed)
	}

	st, err := store.Open(config.DefaultDBPath())
	if err != nil {
		return fmt.Errorf("failed to open db: %w", err)
	}
	defer func() {
		if cerr := st.Close(); cerr != nil {
			logErrf("failed to close db: %v\n", cerr)
		}
	}()
	opts.Store = st

	logger.Info("playground started", "settle", settle.String(), "fps", playCfg.FPS, "file", playCfg.File)
	program := tea.NewProgram(tui.NewModel(opts), tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	return nil
}

func newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Create/open config file",
		Args:  cobra.NoArgs,
		RunE:  runConfigCmd,
	}
}

func runConfigCmd(_ *cobra.Command, _ []string) error {
	path := config.DefaultConfigPath()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if _, err := os.Stat(path); err != nil {
		if !os.IsNotExist(err) {
			return fmt.Errorf("failed to stat config: %w", err)
		}
		if err := os.WriteFile(path, []byte(defaultConfigTemplate()), 0o644); err != nil {
			return fmt.Errorf("failed to write config: %w", err)
		}
	}

	editor := strings.TrimSpace(os.Getenv("EDITOR"))
	if editor == "" {
		editor = "vi"
	}
	parts := strings.Fields(editor)
	if len(parts) == 0 {
		return fmt.Errorf("editor command is empty")
	}
	cmd := exec.Command(parts[0], append(parts[1:], path)...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("failed to open editor: %w", err)
	}
	return nil
}

func newSimulateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Run one drag through the axis engine and print the result",
		Args:  cobra.NoArgs,
		RunE:  runSimulateCmd,
	}
	addScrollFlags(cmd)
	cmd.Flags().Float64Var(&simulateWrapper, "wrapper", defaultSimulateWrapper, "wrapper size")
	cmd.Flags().Float64Var(&simulateContent, "content", defaultSimulateContent, "content size")
	cmd.Flags().Float64Var(&simulateFrom, "from", 0, "pointer position at press")
	cmd.Flags().Float64Var(&simulateTo, "to", 0, "pointer position at release")
	cmd.Flags().IntVar(&simulateMs, "duration", 100, "gesture duration in ms")
	cmd.Flags().StringVar(&simulateAxis, "axis", "y", "axis (x or y)")
	return cmd
}

func runSimulateCmd(cmd *cobra.Command, _ []string) error {
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	applyScrollConfig(cmd, fileCfg.Scroll)

	axis, err := parseAxis(simulateAxis)
	if err != nil {
		return err
	}
	if simulateWrapper < 0 || simulateContent < 0 {
		return fmt.Errorf("--wrapper and --content must be >= 0")
	}
	if simulateMs < 0 {
		return fmt.Errorf("--duration must be >= 0")
	}
	res := simulate(scrollConfigFromFlags(), axis, simulateWrapper, simulateContent, simulateFrom, simulateTo, millis(simulateMs))
	return writeSimulation(cmd.OutOrStdout(), res)
}

type simulation struct {
	Axis         behavior.Axis
	HasScroll    bool
	MinScrollPos float64
	MaxScrollPos float64
	Position     float64
	Direction    behavior.Direction
	Info         behavior.MomentumInfo
	Settle       behavior.CheckResult
}

// simulate drags the content of one axis by to-from over elapsed, starting
// at rest at the origin.
func simulate(cfg model.ScrollConfig, axis behavior.Axis, wrapperSize, contentSize, from, to float64, elapsed time.Duration) simulation {
	b := behavior.New(behavior.NewOptions(cfg, axis, behavior.BouncesFor(cfg.Bounce, axis)))
	wrapper, content := behavior.Rect{Height: wrapperSize}, behavior.Rect{Height: contentSize}
	if axis == behavior.Horizontal {
		wrapper, content = behavior.Rect{Width: wrapperSize}, behavior.Rect{Width: contentSize}
	}
	b.SetDimensions(wrapper, content)

	b.Start()
	b.UpdatePosition(b.Move(to - from))
	b.UpdateDirection()
	res := simulation{
		Axis:         axis,
		HasScroll:    b.HasScroll(),
		MinScrollPos: b.MinScrollPos(),
		MaxScrollPos: b.MaxScrollPos(),
		Position:     b.CurrentPos(),
		Direction:    b.Direction(),
		Info:         b.End(elapsed),
	}
	if res.Info.HasDestination {
		b.UpdatePosition(res.Info.Destination)
	}
	res.Settle = b.CheckInBoundary()
	return res
}

func writeSimulation(w io.Writer, res simulation) error {
	lines := []string{
		fmt.Sprintf("Axis: %s", res.Axis),
		fmt.Sprintf("Scrollable: %s", yesNo(res.HasScroll)),
		fmt.Sprintf("Range: %.0f .. %.0f", res.MaxScrollPos, res.MinScrollPos),
		fmt.Sprintf("Release position: %.2f", res.Position),
		fmt.Sprintf("Direction: %s", res.Direction),
	}
	if res.Info.HasDestination {
		lines = append(lines,
			fmt.Sprintf("Momentum: %.0f in %d ms", res.Info.Destination, res.Info.Duration.Milliseconds()))
	} else {
		lines = append(lines, "Momentum: none")
	}
	if res.Settle.InBoundary {
		lines = append(lines, "Bounce: none")
	} else {
		lines = append(lines, fmt.Sprintf("Bounce: back to %.0f", res.Settle.Position))
	}
	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	}
	return nil
}

func parseAxis(value string) (behavior.Axis, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "", "y":
		return behavior.Vertical, nil
	case "x":
		return behavior.Horizontal, nil
	default:
		return behavior.Vertical, fmt.Errorf("invalid --axis value %q (use x or y)", value)
	}
}

func newStatsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show gesture stats",
		RunE:  runStatsCmd,
	}
	cmd.Flags().StringVar(&statsSince, "since", "", "start date (YYYY-MM-DD)")
	cmd.Flags().IntVar(&statsLast, "last", 0, "limit to last N gestures")
	cmd.Flags().IntVar(&statsCurve, "curve-window", defaultCurveWindow, "moving average window")
	cmd.Flags().StringVar(&statsAxis, "axis", "", "axis filter (x or y)")
	cmd.Flags().BoolVar(&statsPlain, "plain", false, "print a text report instead of the TUI")
	return cmd
}

func runStatsCmd(cmd *cobra.Command, _ []string) error {
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	applyIntConfig(cmd, "last", &statsLast, fileCfg.Stats.Last)
	applyIntConfig(cmd, "curve-window", &statsCurve, fileCfg.Stats.CurveWindow)

	var sinceTime *time.Time
	if statsSince != "" {
		parsed, err := time.ParseInLocation("2006-01-02", statsSince, time.Local)
		if err != nil {
			return fmt.Errorf("invalid --since value: %w", err)
		}
		sinceTime = &parsed
	}
	if statsLast < 0 {
		return fmt.Errorf("--last must be >= 0")
	}
	if statsCurve < 1 {
		return fmt.Errorf("--curve-window must be >= 1")
	}
	axis := strings.ToLower(strings.TrimSpace(statsAxis))
	if axis != "" && axis != "x" && axis != "y" {
		return fmt.Errorf("invalid --axis value %q (use x or y)", statsAxis)
	}

	cfg := model.StatsConfig{
		Since:       sinceTime,
		Last:        statsLast,
		CurveWindow: statsCurve,
		Axis:        axis,
	}

	st, err := store.Open(config.DefaultDBPath())
	if err != nil {
		return fmt.Errorf("failed to open db: %w", err)
	}
	defer func() {
		if cerr := st.Close(); cerr != nil {
			logErrf("failed to close db: %v\n", cerr)
		}
	}()

	if statsPlain {
		report, err := stats.BuildReport(cmd.Context(), st, cfg)
		if err != nil {
			return err
		}
		return stats.RenderText(cmd.OutOrStdout(), report, cfg.CurveWindow, stats.OutputWidth(os.Stdout))
	}

	program := tea.NewProgram(statsui.NewModel(st, cfg), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run stats TUI: %w", err)
	}
	return nil
}

func applyStringConfig(cmd *cobra.Command, name string, target, value *string) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyIntConfig(cmd *cobra.Command, name string, target, value *int) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyInt64Config(cmd *cobra.Command, name string, target, value *int64) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyFloatConfig(cmd *cobra.Command, name string, target, value *float64) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyBoolConfig(cmd *cobra.Command, name string, target, value *bool) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func defaultConfigTemplate() string {
	return fmt.Sprintf(`# flick configuration
# Uncomment a value to enable it. CLI flags override config values.
# Distances are terminal cells, times are milliseconds.

[scroll]
# scroll-x = true                 # Enable horizontal scrolling
# scroll-y = true                 # Enable vertical scrolling
# free-scroll = false             # Scroll both axes at once
# direction-lock-threshold = %.0f  # Distance before the direction lock is decided
# momentum = true                 # Enable momentum after a flick
# momentum-limit-time = %d       # Max flick duration
# momentum-limit-distance = %.0f   # Min flick distance
# deceleration = %.4f          # Momentum deceleration
# swipe-time = %d               # Momentum duration
# swipe-bounce-time = %d         # Momentum duration past an edge
# bounce-time = %d               # Rebound duration
# bounce-top = true
# bounce-bottom = true
# bounce-left = true
# bounce-right = true

[playground]
# lines = %d                     # Generated lines
# min-words = %d                   # Minimum words per line
# max-words = %d                  # Maximum words per line
# seed = 0                        # Generator seed (0 = time based)
# file = ""                       # Scroll through a file instead
# settle = %q                 # Settle animation (ease or spring)
# fps = %d                        # Animation frames per second

[stats]
# last = 0                        # Limit to last N gestures
# curve-window = %d               # Moving average window

[log]
# file = ""                       # Log file (default: XDG state dir)
# format = %q                 # text or json
# level = %q                  # debug, info, warn, error
`,
		defaultLockThreshold,
		defaultLimitTimeMs,
		defaultLimitDistance,
		defaultDeceleration,
		defaultSwipeTimeMs,
		defaultSwipeBounceMs,
		defaultBounceTimeMs,
		defaultLines,
		defaultMinWords,
		defaultMaxWords,
		defaultSettle,
		defaultFPS,
		defaultCurveWindow,
		defaultLogFormat,
		defaultLogLevel,
	)
}

func validateConfig(scroll model.ScrollConfig, play model.PlaygroundConfig) error {
	if !scroll.ScrollX && !scroll.ScrollY {
		return fmt.Errorf("at least one of --scroll-x and --scroll-y must be enabled")
	}
	if scroll.DirectionLockThreshold < 0 {
		return fmt.Errorf("--direction-lock-threshold must be >= 0")
	}
	if scroll.MomentumLimitTime < 0 {
		return fmt.Errorf("--momentum-limit-time must be >= 0")
	}
	if scroll.MomentumLimitDistance < 0 {
		return fmt.Errorf("--momentum-limit-distance must be >= 0")
	}
	if scroll.Deceleration <= 0 {
		return fmt.Errorf("--deceleration must be > 0")
	}
	if scroll.SwipeTime < 0 || scroll.SwipeBounceTime < 0 || scroll.BounceTime < 0 {
		return fmt.Errorf("animation times must be >= 0")
	}
	if play.File == "" && play.Lines <= 0 {
		return fmt.Errorf("--lines must be > 0")
	}
	if play.MinWords <= 0 {
		return fmt.Errorf("--min-words must be > 0")
	}
	if play.MaxWords < play.MinWords {
		return fmt.Errorf("--max-words must be >= --min-words")
	}
	if play.FPS <= 0 || play.FPS > 240 {
		return fmt.Errorf("--fps must be between 1 and 240")
	}
	return nil
}

func millis(ms int) time.Duration {
	return time.Duration(ms) * time.Millisecond
}

func yesNo(v bool) string {
	if v {
		return "yes"
	}
	return "no"
}

func logErrf(format string, args ...any) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}
