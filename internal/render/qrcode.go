package render

import (
	"fmt"
	"strings"

	"github.com/skip2/go-qrcode"
)

// QRCodeSVG returns an inline SVG drawing of a QR code for payload.
// Dark modules are merged into horizontal runs, one <rect> per run.
// If payload is empty, it returns ("", nil).
func QRCodeSVG(payload string) (string, error) {
	if payload == "" {
		return "", nil
	}

	qrCode, err := qrcode.New(payload, qrcode.Medium)
	if err != nil {
		return "", fmt.Errorf("qr encode: %w", err)
	}

	bitmap := qrCode.Bitmap()
	size := len(bitmap)

	var b strings.Builder
	fmt.Fprintf(&b, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %d %d" shape-rendering="crispEdges" role="img" aria-label="QR code">`, size, size)
	fmt.Fprintf(&b, `<rect width="%d" height="%d" fill="#ffffff"/>`, size, size)
	for y, row := range bitmap {
		for x := 0; x < len(row); {
			if !row[x] {
				x++
				continue
			}
			start := x
			for x < len(row) && row[x] {
				x++
			}
			fmt.Fprintf(&b, `<rect x="%d" y="%d" width="%d" height="1" fill="#000000"/>`, start, y, x-start)
		}
	}
	b.WriteString(`</svg>`)
	return b.String(), nil
}
