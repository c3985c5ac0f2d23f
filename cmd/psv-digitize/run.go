package main

import (
	"bufio"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"sync"

	"github.com/gocarina/gocsv"

	"github.com/jinhanxun/doppler-psv-pipeline/internal/calibrate"
	"github.com/jinhanxun/doppler-psv-pipeline/internal/config"
	"github.com/jinhanxun/doppler-psv-pipeline/internal/export"
	"github.com/jinhanxun/doppler-psv-pipeline/internal/imaging"
	"github.com/jinhanxun/doppler-psv-pipeline/internal/ocr"
	"github.com/jinhanxun/doppler-psv-pipeline/internal/pipeline"
)

// manifestEntry is one row of the calibration manifest. The ROI columns
// are optional; a zero ROI means the whole frame.
type manifestEntry struct {
	Image   string  `csv:"image"`
	YBottom float64 `csv:"y_bottom"`
	YTop    float64 `csv:"y_top"`
	imaging.ROI
}

type runner struct {
	cfg        config.Config
	log        *slog.Logger
	inDir      string
	outDir     string
	workers    int
	withOCR    bool
	withChart  bool
	withJSON   bool
	defaultROI imaging.ROI
}

type job struct {
	path  string
	scale calibrate.Scale
	roi   imaging.ROI
}

// run processes every image of the input directory. With a manifest the
// images named there are processed, concurrently when -workers allows;
// without one each image found on disk is processed serially, prompting
// for its calibration values.
func (r *runner) run(manifestPath string) error {
	if err := os.MkdirAll(r.outDir, 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	var jobs []job
	if manifestPath != "" {
		entries, err := loadManifest(manifestPath)
		if err != nil {
			return err
		}
		for _, e := range entries {
			roi := e.ROI
			if roi.Empty() {
				roi = r.defaultROI
			}
			jobs = append(jobs, job{
				path:  filepath.Join(r.inDir, e.Image),
				scale: calibrate.Scale{Bottom: e.YBottom, Top: e.YTop},
				roi:   roi,
			})
		}
		return r.runParallel(jobs)
	}

	paths, err := listImages(r.inDir)
	if err != nil {
		return err
	}
	if len(paths) == 0 {
		return fmt.Errorf("no images found in %s", r.inDir)
	}

	prompts := bufio.NewScanner(os.Stdin)
	for _, path := range paths {
		scale, err := promptScale(prompts, filepath.Base(path))
		if err != nil {
			return err
		}
		r.processOne(job{path: path, scale: scale, roi: r.defaultROI})
	}
	return nil
}

// runParallel fans the jobs out over the worker pool. Each job's outcome
// is logged individually; one bad image never stops the rest.
func (r *runner) runParallel(jobs []job) error {
	workers := r.workers
	if workers < 1 {
		workers = 1
	}
	if workers > len(jobs) {
		workers = len(jobs)
	}

	ch := make(chan job)
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := range ch {
				r.processOne(j)
			}
		}()
	}
	for _, j := range jobs {
		ch <- j
	}
	close(ch)
	wg.Wait()
	return nil
}

// processOne runs the full chain for a single image and writes its
// outputs. Failures are logged, not returned: the batch always
// continues.
func (r *runner) processOne(j job) {
	log := r.log.With("image", j.path)

	img, info, err := imaging.Info(j.path)
	if err != nil {
		log.Error("load failed", "error", err)
		return
	}

	cropped, err := imaging.CropROI(img, j.roi)
	if err != nil {
		log.Error("crop failed", "roi", j.roi, "error", err)
		return
	}

	prep, err := imaging.Prepare(cropped, imaging.PrepOptions{
		TargetWidth:     r.cfg.TargetWidth,
		UpscaleFactor:   r.cfg.UpscaleFactor,
		BrightnessFloor: r.cfg.BrightnessFloor,
	})
	if err != nil {
		log.Error("preprocess failed", "error", err)
		return
	}

	ex, err := pipeline.Process(prep.Matrix, pipeline.Options{
		Distance:           r.cfg.DistanceMin,
		ProminenceFactor:   r.cfg.ProminenceFactor,
		HeightFactor:       r.cfg.HeightFactor,
		IntensityThreshold: r.cfg.IntensityThreshold,
	})
	if err != nil {
		if errors.Is(err, pipeline.ErrInsufficientPeaks) {
			log.Warn("skipped", "reason", err)
		} else {
			log.Error("extraction failed", "error", err)
		}
		return
	}

	if j.scale.Degenerate() {
		log.Warn("degenerate calibration, all cycles will map to the same value",
			"bottom", j.scale.Bottom, "top", j.scale.Top)
	}

	rep := pipeline.Calibrated(ex, j.scale)
	rep.Image = j.path

	if r.withOCR {
		text, err := ocr.ReadBanner(img, r.cfg.OCRBand)
		switch {
		case errors.Is(err, ocr.ErrUnavailable):
			log.Warn("ocr requested but not compiled in")
		case err != nil:
			log.Warn("ocr failed", "error", err)
		default:
			rep.ScreenText = text
		}
	}

	base := strings.TrimSuffix(filepath.Base(j.path), filepath.Ext(j.path))
	out := func(suffix string) string { return filepath.Join(r.outDir, base+suffix) }

	if err := export.WriteCSV(out(".csv"), rep); err != nil {
		log.Error("csv export failed", "error", err)
		return
	}

	marks := make([]imaging.Mark, len(ex.Points))
	for i, p := range ex.Points {
		marks[i] = imaging.Mark{Label: strconv.Itoa(p.Cycle), X: p.Col, Y: p.Row}
	}
	labeled := imaging.Annotate(prep.Canvas, ex.Boundaries, marks)
	if err := export.SaveImage(out("_labeled.png"), labeled); err != nil {
		log.Error("annotated image export failed", "error", err)
	}

	if r.withChart {
		if err := export.WriteProfileChart(out("_profile.png"), ex); err != nil {
			log.Error("chart export failed", "error", err)
		}
	}
	if r.withJSON {
		if err := export.WriteJSON(out(".json"), rep); err != nil {
			log.Error("json export failed", "error", err)
		}
	}

	log.Info("done",
		"source", fmt.Sprintf("%dx%d %s", info.Width, info.Height, info.Format),
		"cycles", len(rep.Cycles),
		"mean", rep.Stats.Mean,
		"std", rep.Stats.StdDev)
}

func loadManifest(path string) ([]manifestEntry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open manifest: %w", err)
	}
	defer f.Close()

	var entries []manifestEntry
	if err := gocsv.Unmarshal(f, &entries); err != nil {
		return nil, fmt.Errorf("failed to parse manifest: %w", err)
	}
	if len(entries) == 0 {
		return nil, fmt.Errorf("manifest %s is empty", path)
	}
	return entries, nil
}

func listImages(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read input directory: %w", err)
	}

	var paths []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		switch strings.ToLower(filepath.Ext(e.Name())) {
		case ".png", ".jpg", ".jpeg", ".gif":
			paths = append(paths, filepath.Join(dir, e.Name()))
		}
	}
	sort.Strings(paths)
	return paths, nil
}

// promptScale asks the operator for the two calibration endpoints of one
// image.
func promptScale(sc *bufio.Scanner, name string) (calibrate.Scale, error) {
	bottom, err := promptFloat(sc, fmt.Sprintf("%s: value at bottom edge: ", name))
	if err != nil {
		return calibrate.Scale{}, err
	}
	top, err := promptFloat(sc, fmt.Sprintf("%s: value at top edge: ", name))
	if err != nil {
		return calibrate.Scale{}, err
	}
	return calibrate.Scale{Bottom: bottom, Top: top}, nil
}

func promptFloat(sc *bufio.Scanner, prompt string) (float64, error) {
	for {
		fmt.Fprint(os.Stderr, prompt)
		if !sc.Scan() {
			if err := sc.Err(); err != nil {
				return 0, fmt.Errorf("failed to read input: %w", err)
			}
			return 0, fmt.Errorf("input closed")
		}
		v, err := strconv.ParseFloat(strings.TrimSpace(sc.Text()), 64)
		if err == nil {
			return v, nil
		}
		fmt.Fprintf(os.Stderr, "not a number: %q\n", sc.Text())
	}
}

// parseROI parses "x1,y1,x2,y2".
func parseROI(s string) (imaging.ROI, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 4 {
		return imaging.ROI{}, fmt.Errorf("want x1,y1,x2,y2, got %q", s)
	}
	vals := make([]int, 4)
	for i, p := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return imaging.ROI{}, fmt.Errorf("bad coordinate %q: %w", p, err)
		}
		vals[i] = v
	}
	return imaging.ROI{X1: vals[0], Y1: vals[1], X2: vals[2], Y2: vals[3]}, nil
}
