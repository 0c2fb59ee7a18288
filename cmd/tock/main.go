package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/five82/tock/internal/app"
	"github.com/five82/tock/internal/setup"
)

func main() {
	os.Exit(run())
}

func run() int {
	configPath := flag.String("config", "", "override config path (optional)")
	prefsPath := flag.String("prefs", "", "override prefs path (optional)")
	runSetup := flag.Bool("setup", false, "edit preferences interactively and exit")
	debug := flag.Bool("debug", false, "log at debug level")
	flag.Parse()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if *runSetup {
		if err := setup.Run(ctx, *prefsPath); err != nil {
			fmt.Fprintf(os.Stderr, "tock: %v\n", err)
			return 1
		}
		return 0
	}

	opts := app.Options{
		ConfigPath: *configPath,
		PrefsPath:  *prefsPath,
		Debug:      *debug,
	}
	if err := app.Run(ctx, opts); err != nil {
		fmt.Fprintf(os.Stderr, "tock: %v\n", err)
		return 1
	}
	return 0
}
