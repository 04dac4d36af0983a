/*
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

package fake

import (
	"fmt"
	"os"
	"path/filepath"
)

// PhotoFileName is the name WritePhoto gives the sample image.
const PhotoFileName = "pet.png"

// samplePhoto is a valid 1x1 PNG.
//
//nolint:gochecknoglobals
var samplePhoto = []byte{
	0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A,
	0x00, 0x00, 0x00, 0x0D, 0x49, 0x48, 0x44, 0x52,
	0x00, 0x00, 0x00, 0x01, 0x00, 0x00, 0x00, 0x01,
	0x08, 0x06, 0x00, 0x00, 0x00, 0x1F, 0x15, 0xC4, 0x89,
	0x00, 0x00, 0x00, 0x0A, 0x49, 0x44, 0x41, 0x54,
	0x78, 0x9C, 0x63, 0x00, 0x01, 0x00, 0x00, 0x05,
	0x00, 0x01, 0x0D, 0x0A, 0x2D, 0xB4,
	0x00, 0x00, 0x00, 0x00, 0x49, 0x45, 0x4E, 0x44,
	0xAE, 0x42, 0x60, 0x82,
}

// SamplePhoto returns a copy of the sample image.
func SamplePhoto() []byte {
	return append([]byte(nil), samplePhoto...)
}

// WritePhoto writes the sample image into dir and returns its path.
func WritePhoto(dir string) (string, error) {
	path := filepath.Join(dir, PhotoFileName)

	if err := os.WriteFile(path, samplePhoto, 0o600); err != nil {
		return "", fmt.Errorf("writing sample photo: %w", err)
	}

	return path, nil
}
