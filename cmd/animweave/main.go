// Package main is a terminal demo host for the animweave lifecycle: it
// embeds a Banner component, drives its visibility and disposal, and
// renders the shared timeline's progress.
package main

import (
	"context"
	"embed"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/animweave/animweave/internal/component"
	"github.com/animweave/animweave/internal/config"
	"github.com/animweave/animweave/internal/logging"
	"github.com/animweave/animweave/internal/runtime"
)

//go:embed demo
var demoFiles embed.FS

func main() {
	os.Exit(run())
}

func run() int {
	var cfgPath, text string
	flag.StringVar(&cfgPath, "config", "animweave.toml", "path to configuration file")
	flag.StringVar(&text, "text", "animweave: lifecycle-bound animations", "banner text")
	flag.Parse()

	cfg, err := config.Load(cfgPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	// Logs go to a file; stderr belongs to the terminal screen.
	logFile, err := os.OpenFile("animweave.log", os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	defer logFile.Close()
	logging.SetDefault(logging.New(logFile, logging.ParseLevel(cfg.LogLevel)))

	dir, err := materializeDemo()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	defer os.RemoveAll(dir)

	banner := &Banner{Text: text}
	rt := runtime.New(runtime.WithSource(runtime.DirSource(dir)))
	ctrl := component.New(banner,
		component.WithRuntime(rt),
		component.WithScriptDir(dir),
	)
	banner.ctrl = ctrl
	defer ctrl.Dispose()

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	defer screen.Fini()

	if cfg.Disabled {
		// Render without animations; the lifecycle never starts.
		banner.clusters = append(banner.clusters, text)
	}

	events := make(chan tcell.Event, 8)
	quit := make(chan struct{})
	go screen.ChannelEvents(events, quit)

	ticker := time.NewTicker(33 * time.Millisecond)
	defer ticker.Stop()

	last := time.Now()
	visible := false
	for {
		select {
		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC || ev.Rune() == 'q' {
					close(quit)
					return 0
				}
			case *tcell.EventResize:
				screen.Sync()
			}
		case now := <-ticker.C:
			if !visible && !cfg.Disabled {
				// First frame: the component just became visible.
				ctrl.OnVisible(context.Background())
				visible = true
			}
			rt.Engine().Timeline().Step(now.Sub(last).Seconds())
			last = now
			draw(screen, banner, rt.Engine().Timeline())
		}
	}
}

// materializeDemo writes the embedded demo script and asset to a temp
// directory so both the script-dir convention and the asset source read
// from real files.
func materializeDemo() (string, error) {
	dir, err := os.MkdirTemp("", "animweave-demo-")
	if err != nil {
		return "", err
	}
	for _, name := range []string{"Banner.lua", "SplitText.min.js"} {
		data, err := demoFiles.ReadFile("demo/" + name)
		if err != nil {
			os.RemoveAll(dir)
			return "", err
		}
		if err := os.WriteFile(filepath.Join(dir, name), data, 0644); err != nil {
			os.RemoveAll(dir)
			return "", err
		}
	}
	return dir, nil
}

var (
	hiddenColor = colorful.Color{R: 0.15, G: 0.17, B: 0.30}
	shownColor  = colorful.Color{R: 0.95, G: 0.95, B: 0.98}
)

// draw renders the banner, blending each grapheme from hidden to shown by
// its tween's progress on the global timeline.
func draw(screen tcell.Screen, b *Banner, tl *runtime.Timeline) {
	screen.Clear()

	w, h := screen.Size()
	row := h / 2
	col := (w - len(b.clusters)) / 2
	if col < 0 {
		col = 0
	}

	for i, cluster := range b.clusters {
		p := 1.0 // completed tweens are off the timeline: fully shown
		if i < len(b.tweenIDs) {
			if prog, ok := tl.Progress(b.tweenIDs[i]); ok {
				p = prog
			}
		}

		c := hiddenColor.BlendLuv(shownColor, p)
		r, g, bb := c.RGB255()
		style := tcell.StyleDefault.Foreground(tcell.NewRGBColor(int32(r), int32(g), int32(bb)))

		runes := []rune(cluster)
		if len(runes) == 0 {
			continue
		}
		screen.SetContent(col+i, row, runes[0], runes[1:], style)
	}

	status := fmt.Sprintf("phase=%s active=%d  (q to quit)", b.ctrl.Phase(), tl.Active())
	for i, r := range status {
		screen.SetContent(i, h-1, r, nil, tcell.StyleDefault.Foreground(tcell.ColorGray))
	}

	screen.Show()
}
