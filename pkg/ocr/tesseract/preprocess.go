package tesseract

import (
	"bytes"
	"fmt"
	"image/color"

	"github.com/disintegration/imaging"
)

const binarizeThreshold = 150

// preprocess runs the fixed cleanup chain for handwriting legibility:
// grayscale, mild gaussian blur for noise, contrast boost, binarization.
// The chain is not adaptive; every image gets the same treatment.
func preprocess(raw []byte) ([]byte, error) {
	img, err := imaging.Decode(bytes.NewReader(raw), imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("decode image: %w", err)
	}

	gray := imaging.Grayscale(img)
	denoised := imaging.Blur(gray, 0.6)
	contrasted := imaging.AdjustContrast(denoised, 30)

	binarized := imaging.AdjustFunc(contrasted, func(c color.NRGBA) color.NRGBA {
		if c.R >= binarizeThreshold {
			return color.NRGBA{R: 255, G: 255, B: 255, A: 255}
		}
		return color.NRGBA{R: 0, G: 0, B: 0, A: 255}
	})

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, binarized, imaging.PNG); err != nil {
		return nil, fmt.Errorf("encode image: %w", err)
	}
	return buf.Bytes(), nil
}
