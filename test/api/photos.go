/*
Copyright 2024-2025 the Unikorn Authors.
Copyright 2026 Nscale.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package api

import (
	"fmt"
	"image"
	"image/color"
	"path/filepath"

	"github.com/disintegration/imaging"
)

const (
	jpegName = "cat1.jpg"
	bmpName  = "qaz.bmp"

	jpegSize = 16
)

// WriteJPEG writes a small valid JPEG into dir and returns its path.
func WriteJPEG(dir string) (string, error) {
	img := imaging.New(jpegSize, jpegSize, color.NRGBA{B: 128, A: 255})

	for x := range jpegSize {
		for y := range jpegSize {
			img.Set(x, y, color.NRGBA{R: uint8(x * 16), G: uint8(y * 16), B: 128, A: 255})
		}
	}

	return save(img, filepath.Join(dir, jpegName), imaging.JPEGQuality(90))
}

// WriteBMP writes a 1x1 bitmap into dir and returns its path.
// The service does not advertise support for the format.
func WriteBMP(dir string) (string, error) {
	img := imaging.New(1, 1, color.NRGBA{R: 0xc0, G: 0x40, B: 0x20, A: 255})

	return save(img, filepath.Join(dir, bmpName))
}

// save encodes the image in the format implied by the path's extension.
func save(img *image.NRGBA, path string, options ...imaging.EncodeOption) (string, error) {
	if err := imaging.Save(img, path, options...); err != nil {
		return "", fmt.Errorf("writing %s: %w", filepath.Base(path), err)
	}

	return path, nil
}
