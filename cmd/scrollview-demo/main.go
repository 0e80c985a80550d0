// Command scrollview-demo shows two independently scrollable text panes in
// the terminal. Drag with the left button, flick for momentum, use the
// wheel over a pane, or PgUp/PgDn/Home/End. Escape or Ctrl+C exits.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/scrollview/config"
	"github.com/lixenwraith/scrollview/core"
	"github.com/lixenwraith/scrollview/terminal"
)

func main() {
	configPath := flag.String("config", "", "path to a TOML tuning file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "scrollview-demo: %v\n", err)
		os.Exit(1)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "scrollview-demo: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "scrollview-demo: %v\n", err)
		os.Exit(1)
	}
	screen.EnableMouse()

	host := terminal.NewHost(screen, cfg)
	defer host.Close()

	width, height := screen.Size()
	paneW := float64(width)/2 - 3
	paneH := float64(height) - 4

	host.AddViewport(
		core.Rect{X: 2, Y: 2, W: paneW, H: paneH},
		sampleLines("alpha", 120),
		tcell.StyleDefault.Foreground(tcell.ColorGreen),
	)
	host.AddViewport(
		core.Rect{X: float64(width)/2 + 1, Y: 2, W: paneW, H: paneH},
		sampleLines("beta", 80),
		tcell.StyleDefault.Foreground(tcell.ColorBlue),
	)

	host.Run()
}

func sampleLines(name string, n int) []string {
	lines := make([]string, n)
	for i := range lines {
		lines[i] = fmt.Sprintf("%s %03d ................", name, i)
	}
	return lines
}
