// FILE: main.go
package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/tally/audio"
	"github.com/lixenwraith/tally/counter"
	"github.com/lixenwraith/tally/ui"
)

func usage() {
	fmt.Fprintf(os.Stderr, `Usage: %s [flags] <path> [start]

Tally counter with file-backed storage.

Arguments:
  path   file where the counter value is stored (will be overwritten)
  start  starting value (default: value read from path, or 0)

Flags:
`, os.Args[0])
	flag.PrintDefaults()
}

func main() {
	noSync := flag.Bool("no-sync", false, "disable syncing of data to disk on every operation")
	mute := flag.Bool("mute", false, "disable click sounds")
	flag.Usage = usage
	flag.Parse()

	args := flag.Args()
	if len(args) < 1 || len(args) > 2 {
		usage()
		os.Exit(2)
	}

	opts := counter.Options{Sync: !*noSync}
	if len(args) == 2 {
		start, err := strconv.ParseInt(args[1], 10, 64)
		if err != nil {
			fmt.Fprintf(os.Stderr, "invalid start value %q\n\n", args[1])
			usage()
			os.Exit(2)
		}
		opts.Start = &start
	}

	if err := run(args[0], opts, !*mute); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// run wires everything up. Deferred teardown restores the terminal
// before main reports any error.
func run(path string, opts counter.Options, sound bool) error {
	cnt, err := counter.Open(path, opts)
	if err != nil {
		return err
	}
	defer cnt.Close()

	var click ui.Feedback
	if sound {
		clicker, err := audio.NewClicker()
		if err != nil {
			// Non-fatal, counter works without sound
			fmt.Fprintf(os.Stderr, "audio initialization failed: %v\n", err)
		}
		defer clicker.Close()
		click = clicker
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("terminal: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("terminal: %w", err)
	}
	defer screen.Fini()

	return ui.New(screen, cnt, click).Run()
}
