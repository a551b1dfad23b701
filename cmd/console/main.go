package main

import (
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"beacon-guard/cmd/console/ui"
)

func main() {
	panelURL := flag.String("panel", "http://127.0.0.1:9500", "Panel base URL")
	flag.Parse()

	p := tea.NewProgram(ui.NewRootModel(*panelURL), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "console: %v\n", err)
		os.Exit(1)
	}
}
