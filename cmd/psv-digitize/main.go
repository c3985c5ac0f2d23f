package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/jinhanxun/doppler-psv-pipeline/internal/config"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "--version", "-v", "version":
			fmt.Printf("psv-digitize %s\n", Version)
			fmt.Printf("  Build time: %s\n", BuildTime)
			fmt.Printf("  Git commit: %s\n", GitCommit)
			return
		case "--help", "-h", "help":
			fmt.Println("psv-digitize - digitize peak-systolic velocities from Doppler strip photos")
			fmt.Println()
			fmt.Println("Usage: psv-digitize [options]")
			fmt.Println()
			fmt.Println("For each image in the input directory, detects one landmark per")
			fmt.Println("cardiac cycle and writes <name>.csv plus <name>_labeled.png to the")
			fmt.Println("output directory. Calibration values come from a manifest CSV or")
			fmt.Println("from interactive prompts.")
			fmt.Println()
			fmt.Println("Options:")
			flag.CommandLine.SetOutput(os.Stdout)
			flag.PrintDefaults()
			return
		}
	}

	var (
		inDir        = flag.String("in", ".", "directory of input images (png/jpg/gif)")
		outDir       = flag.String("out", "out", "directory for results")
		configPath   = flag.String("config", "", "JSON config file (missing keys keep defaults)")
		manifestPath = flag.String("manifest", "", "CSV manifest with per-image calibration (image,y_bottom,y_top[,roi_x1,roi_y1,roi_x2,roi_y2])")
		workers      = flag.Int("workers", 1, "concurrent images in manifest mode")
		withOCR      = flag.Bool("ocr", false, "read the console banner into the report")
		withChart    = flag.Bool("chart", false, "also write a brightness-profile chart per image")
		withJSON     = flag.Bool("json", false, "also write a full JSON report per image")
		roiSpec      = flag.String("roi", "", "default region of interest as x1,y1,x2,y2 (manifest entries override)")
	)
	flag.Parse()

	logger := slog.New(slog.NewJSONHandler(os.Stderr, nil))
	slog.SetDefault(logger)

	cfg := config.Default()
	if *configPath != "" {
		var err error
		cfg, err = config.Load(*configPath)
		if err != nil {
			logger.Error("config load failed", "path", *configPath, "error", err)
			os.Exit(1)
		}
	}

	r := &runner{
		cfg:       cfg,
		log:       logger,
		inDir:     *inDir,
		outDir:    *outDir,
		workers:   *workers,
		withOCR:   *withOCR,
		withChart: *withChart,
		withJSON:  *withJSON,
	}

	if *roiSpec != "" {
		roi, err := parseROI(*roiSpec)
		if err != nil {
			logger.Error("bad -roi value", "roi", *roiSpec, "error", err)
			os.Exit(1)
		}
		r.defaultROI = roi
	}

	if err := r.run(*manifestPath); err != nil {
		logger.Error("batch failed", "error", err)
		os.Exit(1)
	}
}
