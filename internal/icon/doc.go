// Package icon turns the optional addon icon into an embedded thumbnail.
//
// The image is scaled to cover a square, centre-cropped, re-encoded as PNG
// and base64 encoded. A missing file is not an error: Load reports it as
// skipped. Decode and encode failures are reported in the Result so the
// caller can log them and carry on without an icon.
package icon
