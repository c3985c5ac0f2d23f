//go:build !cgo || !linux

package ocr

// recognize is the fallback for builds without the Tesseract backend.
func recognize(string) (string, error) {
	return "", ErrUnavailable
}

// Available reports whether the OCR backend is compiled in.
func Available() bool { return false }
