// Command wordlens marks the rare words of a sentence and defines them on
// demand. It runs as an HTTP API (serve), an interactive terminal (repl)
// or an MCP stdio server (mcp).
//
// Exit codes: 0 = success, 1 = error, 2 = usage.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/heartmarshall/wordlens/internal/app"
	"github.com/heartmarshall/wordlens/internal/config"
)

func main() {
	configPath := flag.String("config", "", "path to YAML config (default: $CONFIG_PATH or ./config.yaml)")
	flag.Usage = usage
	flag.Parse()

	mode := "repl"
	if flag.NArg() > 0 {
		mode = flag.Arg(0)
	}

	path := *configPath
	if path == "" {
		path = os.Getenv("CONFIG_PATH")
	}
	cfg, err := config.LoadFrom(path)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a := app.New(cfg, os.Stderr)

	switch mode {
	case "serve":
		err = a.Serve(ctx)
	case "repl":
		err = a.REPL(ctx, os.Stdout)
	case "mcp":
		err = a.MCP(ctx, os.Stdin, os.Stdout)
	default:
		usage()
		os.Exit(2)
	}

	if err != nil {
		stop()
		log.Fatalf("%s: %v", mode, err)
	}
}

func usage() {
	fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s [-config path] [serve|repl|mcp]\n\n", os.Args[0])
	flag.PrintDefaults()
}
