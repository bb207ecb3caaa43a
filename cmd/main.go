package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/S0L15/ProyectoFinalLFC/internal/analyzer"
	"github.com/S0L15/ProyectoFinalLFC/internal/config"
	"github.com/S0L15/ProyectoFinalLFC/internal/logger"
	"github.com/S0L15/ProyectoFinalLFC/pkg/color"

	"github.com/charmbracelet/log"
)

// Main entry point for the FIRST/FOLLOW set generator.
func main() {
	options := analyzer.Analyzer{}

	flag.BoolVar(&options.Help, "h", false, "Show help")
	flag.BoolVar(&options.Verbose, "v", false, "Verbose mode")
	flag.BoolVar(&options.NoColor, "n", false, "No color")
	flag.StringVar(&options.ConfigFile, "c", "", "Optional TOML config file")
	flag.StringVar(&options.OutputFile, "o", "pr_sig.out", "Output file name")

	flag.Parse()
	args := flag.Args()

	if options.ConfigFile != "" {
		cfg, err := config.Load(options.ConfigFile)
		if err != nil {
			logger.Init(options.Verbose, options.NoColor)
			log.Fatal("Failed to load config", "file", options.ConfigFile, "error", err)
		}
		applyConfig(&options, cfg)
	}

	logger.Init(options.Verbose, options.NoColor)
	if options.Help {
		fmt.Printf("Usage: %s [options] <grammar file>\n", os.Args[0])
		fmt.Println("Options:")
		flag.PrintDefaults()
		return
	}

	if options.NoColor {
		color.EnableColor(false)
	}

	if len(args) > 0 {
		options.InputFile = args[0]
	}
	if options.InputFile == "" {
		log.Fatal("No input file provided", "help", fmt.Sprintf("%s -h", os.Args[0]))
	}

	err := options.Run()
	if err != nil {
		log.Fatal("Analysis failed", "error", err)
	}
}

// applyConfig fills options from the config file without overriding flags the
// user set explicitly.
func applyConfig(options *analyzer.Analyzer, cfg *config.Config) {
	set := map[string]bool{}
	flag.Visit(func(f *flag.Flag) { set[f.Name] = true })

	if cfg.InputFile != "" {
		options.InputFile = cfg.InputFile
	}
	if cfg.OutputFile != "" && !set["o"] {
		options.OutputFile = cfg.OutputFile
	}
	if cfg.Verbose && !set["v"] {
		options.Verbose = true
	}
	if cfg.NoColor && !set["n"] {
		options.NoColor = true
	}
}
