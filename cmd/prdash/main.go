package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/sufield/prdash"
	"github.com/sufield/prdash/internal/config"
)

// Version information (set via ldflags during build)
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	versionFlag := flag.Bool("version", false, "Print version information and exit")
	configPath := flag.String("config", "", "Path to an optional YAML config file (environment variables apply when empty)")
	printConfig := flag.Bool("print-config", false, "Print the effective configuration with secrets redacted and exit")
	flag.Usage = func() {
		out := flag.CommandLine.Output()
		fmt.Fprintf(out, "Usage: prdash [flags]\n\nFlags:\n")
		flag.PrintDefaults()
		fmt.Fprintln(out)
		config.Usage(out, "Environment:")
	}
	flag.Parse()

	if *versionFlag {
		fmt.Printf("prdash %s\n", version)
		fmt.Printf("  commit: %s\n", commit)
		fmt.Printf("  built:  %s\n", date)
		os.Exit(0)
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if *printConfig {
		if err := config.Dump(os.Stdout, cfg); err != nil {
			log.Fatalf("Failed to print config: %v", err)
		}
		os.Exit(0)
	}

	if err := prdash.Run(cfg); err != nil {
		log.Fatal(err)
	}
}
