// Package qrcode renders issued tokens as QR code PNG images for
// out-of-band distribution (printed handouts, on-screen scanning).
//
// It is a thin wrapper around github.com/skip2/go-qrcode with input
// validation and a file-writing helper. Errors are package-level sentinels
// comparable with errors.Is.
package qrcode
