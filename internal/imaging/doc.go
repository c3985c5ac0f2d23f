// Package imaging turns raw strip-chart photographs into analyzable form.
//
// This package implements the image-side half of the digitizer: loading
// and decoding frames, cropping to a region of interest, normalizing
// resolution, converting to a grayscale intensity matrix, and rendering
// the annotated overlay of detection results. All operations work with
// standard Go image.Image types and use a coordinate system where (0,0)
// is at the top-left corner, X increases rightward, and Y increases
// downward.
//
// # Coordinate System
//
// All pixel coordinates in this package are 0-based:
//   - X: horizontal position (0 = leftmost pixel)
//   - Y: vertical position (0 = topmost pixel)
//   - For regions, (x1,y1) is inclusive (top-left), (x2,y2) is exclusive
//     (bottom-right)
//
// # Thread Safety
//
// All operations are stateless and can be called concurrently on
// different images. A Matrix is only written during construction and may
// be read concurrently afterwards.
//
// # Error Handling
//
// Functions return errors for invalid inputs such as:
//   - Crop regions outside image bounds
//   - Invalid region specifications (x1 >= x2 or y1 >= y2)
//   - Empty images
//   - File I/O errors during image loading
package imaging
