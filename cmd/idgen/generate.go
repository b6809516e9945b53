package main

import (
	"bufio"
	"encoding/json"
	"flag"
	"fmt"
	"io"

	"github.com/leapmux/idgen/idgen"
	"github.com/leapmux/idgen/internal/validate"
)

// runGenerate prints n identifiers of the given kind, one per line.
func runGenerate(kind string, args []string, out io.Writer) error {
	fs := flag.NewFlagSet(kind, flag.ContinueOnError)
	n := fs.Int("n", 1, "number of ids to generate")
	size := fs.Int("size", idgen.DefaultNanoIDSize, "nano id length (nanoid only)")
	node := fs.String("node", "01:02:03:04:05:06", "node as 12 hex digits (uuid1 only)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *n < 0 {
		return fmt.Errorf("n must not be negative")
	}
	nodeID, err := validate.ParseNode("node", *node)
	if err != nil {
		return err
	}

	c := idgen.New(idgen.WithNode(nodeID))

	var ids []string
	switch kind {
	case "short":
		ids = c.ShortIDBatch(*n)
	case "short16":
		ids = c.ShortID16Batch(*n)
	case "uuid1":
		ids = hexStrings(c.UUID1Batch(*n))
	case "uuid4":
		ids = hexStrings(c.UUID4Batch(*n))
	case "uuid7":
		ids = hexStrings(c.UUID7Batch(*n))
	case "nanoid":
		ids = c.NanoIDBatch(*n, *size)
	default:
		return fmt.Errorf("unknown kind: %s", kind)
	}

	w := bufio.NewWriter(out)
	for _, s := range ids {
		fmt.Fprintln(w, s)
	}
	return w.Flush()
}

// runInspect prints the decoded views of every identifier given as an
// argument.
func runInspect(args []string, out io.Writer) error {
	if len(args) == 0 {
		return fmt.Errorf("inspect: at least one identifier is required")
	}

	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	for _, arg := range args {
		i, err := idgen.Parse(arg)
		if err != nil {
			return fmt.Errorf("inspect %q: %w", arg, err)
		}
		if err := enc.Encode(idgen.Inspect(i)); err != nil {
			return err
		}
	}
	return nil
}

func hexStrings(ids []idgen.ID) []string {
	out := make([]string, len(ids))
	for k, i := range ids {
		out[k] = i.String()
	}
	return out
}
