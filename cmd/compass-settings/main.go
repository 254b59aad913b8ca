package main

import (
	"errors"
	"fmt"
	"os"

	log "github.com/go-pkgz/lgr"
	"github.com/jessevdk/go-flags"

	"github.com/phanxgames/toggle"
	"github.com/phanxgames/toggle/prefs"
	"github.com/phanxgames/toggle/settings"
)

var opts struct {
	Prefs string `short:"p" long:"prefs" env:"COMPASS_PREFS" default:"compass-settings.toml" description:"preferences (*.toml file, sqlite path or :memory:)"`

	Decoration string  `long:"decoration" env:"COMPASS_DECORATION" choice:"none" choice:"checkmark" default:"none" description:"switch thumb decoration"`
	Density    float64 `long:"density" env:"COMPASS_DENSITY" default:"1" description:"pixels per density-independent unit"`
	Width      int     `long:"width" default:"360" description:"window width in pixels"`
	Height     int     `long:"height" description:"window height in pixels (default: fit the form)"`
	SystemDark bool    `long:"system-dark" env:"COMPASS_SYSTEM_DARK" description:"treat the platform appearance as dark for follow_system"`

	Script      string `long:"script" description:"JSON input script to replay, exits when done"`
	Screenshots string `long:"screenshots" default:"screenshots" description:"directory for script screenshots"`
	Snapshot    string `long:"snapshot" description:"render the form to this PNG without opening a window and exit"`

	FPS     bool `long:"fps" description:"show FPS overlay"`
	Debug   bool `long:"dbg" env:"DEBUG" description:"debug mode"`
	Version bool `long:"version" description:"show version and exit"`
}

var revision = "unknown"

func main() {
	fmt.Printf("compass-settings %s\n", revision)

	p := flags.NewParser(&opts, flags.PassDoubleDash|flags.HelpFlag)
	if _, err := p.Parse(); err != nil {
		var flagsErr *flags.Error
		if errors.As(err, &flagsErr) && flagsErr.Type == flags.ErrHelp {
			p.WriteHelp(os.Stderr)
			os.Exit(2)
		}
		fmt.Printf("%v\n", err)
		os.Exit(1)
	}

	if opts.Version {
		os.Exit(0)
	}

	setupLogs()

	defer func() {
		if x := recover(); x != nil {
			log.Printf("[WARN] run time panic:\n%v", x)
			panic(x)
		}
	}()

	if err := run(); err != nil {
		log.Printf("[ERROR] failed: %v", err)
		os.Exit(1)
	}
}

func run() error {
	deco, err := toggle.ParseDecoration(opts.Decoration)
	if err != nil {
		return err
	}
	style := toggle.ClassicStyle()
	if deco == toggle.DecorationCheckmark {
		style = toggle.CheckmarkStyle()
	}

	store, err := prefs.Open(opts.Prefs, log.Default())
	if err != nil {
		return fmt.Errorf("failed to open preferences: %w", err)
	}
	defer store.Close()

	var screen *settings.Screen
	applyNightMode := func(m settings.NightMode) {
		theme := settings.LightTheme
		if m.Dark(opts.SystemDark) {
			theme = settings.DarkTheme
		}
		log.Printf("[INFO] night mode %s", m)
		screen.SetTheme(theme)
	}

	screen = settings.NewScreen(store, settings.Options{
		Width:      opts.Width,
		Style:      style,
		Density:    opts.Density,
		Appearance: applyNightMode,
		Version:    revision,
		Logger:     log.Default(),
	})
	defer screen.Close()
	applyNightMode(screen.NightMode())

	if opts.Snapshot != "" {
		if err := toggle.SavePNG(opts.Snapshot, screen.Snapshot()); err != nil {
			return fmt.Errorf("failed to write snapshot: %w", err)
		}
		log.Printf("[INFO] snapshot written to %s", opts.Snapshot)
		return nil
	}

	panel := screen.Panel()
	panel.ScreenshotDir = opts.Screenshots
	panel.SetDebugMode(opts.Debug)

	if opts.Script != "" {
		data, err := os.ReadFile(opts.Script)
		if err != nil {
			return fmt.Errorf("failed to read script: %w", err)
		}
		runner, err := toggle.LoadTestScript(data)
		if err != nil {
			return err
		}
		panel.SetTestRunner(runner)
	}

	w, h := screen.Size()
	if opts.Height > 0 {
		h = opts.Height
	}
	log.Printf("[INFO] preferences from %s, %dx%d window", opts.Prefs, w, h)
	return toggle.Run(panel, toggle.RunConfig{
		Title:              "Compass settings",
		Width:              w,
		Height:             h,
		ShowFPS:            opts.FPS,
		ExitWhenScriptDone: opts.Script != "",
	})
}

func setupLogs() {
	log.Setup(log.Msec)
	if opts.Debug {
		log.Setup(log.Debug, log.CallerFunc)
	}
}
