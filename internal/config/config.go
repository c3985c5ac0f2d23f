// Package config holds the tunable settings of the digitizer. Settings
// are plain values passed explicitly; nothing reads them ambiently.
package config

import (
	"encoding/json"
	"fmt"
	"os"
)

// Config collects the preprocessing and detection settings. The zero
// value is not usable; start from Default.
type Config struct {
	// TargetWidth normalizes input images to this width before analysis.
	TargetWidth int `json:"target_width"`

	// UpscaleFactor multiplies the normalized image for sub-pixel
	// landmark resolution.
	UpscaleFactor int `json:"upscale_factor"`

	// BrightnessFloor zeroes intensity-matrix pixels dimmer than this.
	BrightnessFloor uint8 `json:"brightness_floor"`

	// DistanceMin is the minimum column spacing between cycle peaks.
	DistanceMin int `json:"distance_min"`

	// ProminenceFactor scales the profile standard deviation into the
	// minimum peak prominence.
	ProminenceFactor float64 `json:"prominence_factor"`

	// HeightFactor sets the minimum peak height to mean + HeightFactor
	// standard deviations of the profile.
	HeightFactor float64 `json:"height_factor"`

	// IntensityThreshold is the brightness a pixel must exceed to count
	// as trace when locating landmarks.
	IntensityThreshold uint8 `json:"intensity_threshold"`

	// OCRBand is the fraction of image height scanned for the console
	// banner when OCR is enabled.
	OCRBand float64 `json:"ocr_band"`
}

// Default returns the settings tuned against hand-photographed strips at
// normalized width 1024.
func Default() Config {
	return Config{
		TargetWidth:        1024,
		UpscaleFactor:      2,
		BrightnessFloor:    5,
		DistanceMin:        60,
		ProminenceFactor:   1.0,
		HeightFactor:       0.3,
		IntensityThreshold: 0,
		OCRBand:            0.12,
	}
}

// Load reads a JSON config file over the defaults, so a file only needs
// the keys it changes. The result is validated before being returned.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config: %w", err)
	}
	if err := json.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg.Validate()
	return cfg, nil
}

// Validate clamps out-of-range settings back to their defaults rather
// than failing, so a bad value in one key does not block a batch.
func (c *Config) Validate() {
	def := Default()

	if c.TargetWidth <= 0 {
		c.TargetWidth = def.TargetWidth
	}
	if c.UpscaleFactor < 1 {
		c.UpscaleFactor = def.UpscaleFactor
	}
	if c.DistanceMin < 1 {
		c.DistanceMin = def.DistanceMin
	}
	if c.ProminenceFactor < 0 {
		c.ProminenceFactor = def.ProminenceFactor
	}
	if c.HeightFactor < 0 {
		c.HeightFactor = def.HeightFactor
	}
	if c.OCRBand <= 0 || c.OCRBand > 1 {
		c.OCRBand = def.OCRBand
	}
}
