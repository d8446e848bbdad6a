package main

import (
	"flag"
	"fmt"
	"os"

	"vecsh/internal/config"
	"vecsh/internal/logger"
	"vecsh/internal/shell"
	"vecsh/pkg/color"

	"github.com/charmbracelet/log"
)

// Main entry point for the vector shell.
func main() {
	var (
		help       bool
		verbose    bool
		noColor    bool
		configFile string
		prompt     string
	)

	flag.BoolVar(&help, "h", false, "Show help")
	flag.BoolVar(&verbose, "v", false, "Verbose mode")
	flag.BoolVar(&noColor, "n", false, "No color")
	flag.StringVar(&configFile, "c", "", "Config file (YAML)")
	flag.StringVar(&prompt, "p", "", "Prompt override")

	flag.Parse()

	if help {
		fmt.Printf("Usage: %s [options]\n", os.Args[0])
		fmt.Println("Options:")
		flag.PrintDefaults()
		return
	}

	cfg := config.Default()
	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			log.Fatal("Failed to load config", "file", configFile, "error", err)
		}
		cfg = loaded
	}

	// Flags override whatever the config file said.
	if verbose {
		cfg.Verbose = true
	}
	if noColor {
		cfg.NoColor = true
	}
	if prompt != "" {
		cfg.Prompt = prompt
	}

	logger.Init(cfg.Verbose, cfg.NoColor)
	if cfg.NoColor {
		color.EnableColor(false)
	}

	sh := shell.New(cfg, os.Stdin, os.Stdout)
	if err := sh.Run(); err != nil {
		log.Fatal("Session failed", "error", err)
	}
}
