package logging

import (
	"fmt"
	"io"
)

// ANSI color codes.
const (
	reset = "\033[0m"
	bold  = "\033[1m"
	cyan  = "\033[36m"
	dim   = "\033[2m"
)

var logoLines = [6]string{
	`  _     _                  `,
	` (_) __| | __ _  ___ _ __  `,
	` | |/ _` + "`" + ` |/ _` + "`" + ` |/ _ \ '_ \ `,
	` | | (_| | (_| |  __/ | | |`,
	` |_|\__,_|\__, |\___|_| |_|`,
	`          |___/            `,
}

// PrintBanner writes the idgen logo followed by the version, listen
// address and batch worker count. Colors are used only when color is set.
func PrintBanner(w io.Writer, color bool, ver, addr string, workers int) {
	for _, line := range logoLines {
		if color {
			fmt.Fprintf(w, "%s%s%s\n", bold+cyan, line, reset)
		} else {
			fmt.Fprintln(w, line)
		}
	}

	if color {
		fmt.Fprintf(w, "\n  %sversion%s %s   %saddr%s %s   %sworkers%s %d\n\n",
			dim, reset, ver, dim, reset, addr, dim, reset, workers)
	} else {
		fmt.Fprintf(w, "\n  version %s   addr %s   workers %d\n\n", ver, addr, workers)
	}
}
