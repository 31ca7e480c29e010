// Package qr renders shortened URLs as QR codes.
package qr

import (
	"github.com/skip2/go-qrcode"
)

// DefaultPNGSize is the edge length in pixels of PNG codes.
const DefaultPNGSize = 256

// PNG encodes text as a PNG image of size x size pixels.
func PNG(text string, size int) ([]byte, error) {
	code, err := qrcode.New(text, qrcode.Medium)
	if err != nil {
		return nil, err
	}
	return code.PNG(size)
}

// Terminal encodes text as block characters printable to a terminal.
func Terminal(text string) (string, error) {
	code, err := qrcode.New(text, qrcode.Low)
	if err != nil {
		return "", err
	}
	return code.ToString(false), nil
}
