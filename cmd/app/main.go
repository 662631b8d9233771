package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"FinTab/internal/di"
	"FinTab/pkg/config"
)

func main() {
	configPath := flag.String("config", "config.yaml", "config file path")
	serve := flag.Bool("serve", false, "keep serving the loaded tables over HTTP after the run")
	flag.Parse()

	cfg, err := config.LoadWithEnv(*configPath)
	if err != nil {
		log.Fatalf("config load failed: %v", err)
	}

	if flag.NArg() != 1 {
		usage()
	}
	cfg.Input.Path = flag.Arg(0)
	if *serve {
		cfg.Server.Enabled = true
	}

	log.Printf("env=%s input=%s serve=%v", cfg.Environment, cfg.Input.Path, cfg.Server.Enabled)

	// Wire DI: initialize all dependencies
	app, err := di.InitializeApp(cfg)
	if err != nil {
		log.Fatalf("app initialization failed: %v", err)
	}

	// Run application (blocks until signal in serve mode)
	if err := app.Run(); err != nil {
		log.Fatalf("app error: %v", err)
	}
}

func usage() {
	fmt.Fprintf(os.Stderr, "usage: %s [flags] <input-path-or-url>\n", os.Args[0])
	flag.PrintDefaults()
	os.Exit(2)
}
