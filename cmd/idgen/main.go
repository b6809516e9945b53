package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/leapmux/idgen/internal/logging"
)

var version = "dev"

const usage = "usage: idgen [short|short16|uuid1|uuid4|uuid7|nanoid|inspect|serve|version] [flags]"

func main() {
	logging.Setup()

	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, usage)
		os.Exit(2)
	}

	var err error
	switch cmd := os.Args[1]; cmd {
	case "short", "short16", "uuid1", "uuid4", "uuid7", "nanoid":
		err = runGenerate(cmd, os.Args[2:], os.Stdout)
	case "inspect":
		err = runInspect(os.Args[2:], os.Stdout)
	case "serve":
		err = runServe(os.Args[2:])
	case "version":
		fmt.Println(version)
	default:
		fmt.Fprintf(os.Stderr, "unknown command: %s\n", cmd)
		fmt.Fprintln(os.Stderr, usage)
		os.Exit(2)
	}
	if err != nil {
		slog.Error("fatal", "error", err)
		os.Exit(1)
	}
}
