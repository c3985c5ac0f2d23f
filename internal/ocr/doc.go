// Package ocr reads the console banner that ultrasound machines burn
// into the top of each exported frame (patient ID, exam date, probe
// settings) so reports can carry it as metadata.
//
// Recognition uses the Tesseract engine via gosseract/v2 and is only
// available when the binary is built with CGO on Linux. Without it,
// ReadBanner returns ErrUnavailable and the pipeline proceeds normally;
// banner text is informational and never feeds calibration.
//
// # Prerequisites
//
// Tesseract must be installed on the system:
//   - Ubuntu/Debian: apt-get install tesseract-ocr tesseract-ocr-eng
//   - macOS: brew install tesseract
package ocr
