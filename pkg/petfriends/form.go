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

package petfriends

import (
	"bytes"
	"fmt"
	"io"
	"mime"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"net/url"
	"os"
	"path/filepath"
	"strings"
)

const (
	formFieldName       = "name"
	formFieldAnimalType = "animal_type"
	formFieldAge        = "age"
	formFieldPhoto      = "pet_photo"

	contentTypeForm = "application/x-www-form-urlencoded"
)

// field is a single form value; order is preserved on the wire.
type field struct {
	name  string
	value string
}

func petFields(name, animalType, age string) []field {
	return []field{
		{name: formFieldName, value: name},
		{name: formFieldAnimalType, value: animalType},
		{name: formFieldAge, value: age},
	}
}

// encodeForm returns a urlencoded body.
func encodeForm(fields []field) (string, io.Reader) {
	values := url.Values{}

	for _, f := range fields {
		values.Set(f.name, f.value)
	}

	return contentTypeForm, strings.NewReader(values.Encode())
}

var quoteEscaper = strings.NewReplacer("\\", "\\\\", `"`, "\\\"")

// photoMIMEType guesses the image type from the file extension, falling back
// to content sniffing.
func photoMIMEType(path string, content []byte) string {
	if t := mime.TypeByExtension(strings.ToLower(filepath.Ext(path))); t != "" {
		return t
	}

	return http.DetectContentType(content)
}

// encodeMultipart returns a multipart/form-data body with the text fields
// followed by the photo file part.
func encodeMultipart(fields []field, photoPath string) (string, io.Reader, error) {
	content, err := os.ReadFile(photoPath)
	if err != nil {
		return "", nil, fmt.Errorf("reading photo: %w", err)
	}

	body := &bytes.Buffer{}
	w := multipart.NewWriter(body)

	for _, f := range fields {
		if err := w.WriteField(f.name, f.value); err != nil {
			return "", nil, fmt.Errorf("writing form field %s: %w", f.name, err)
		}
	}

	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="%s"; filename="%s"`, formFieldPhoto, quoteEscaper.Replace(filepath.Base(photoPath))))
	h.Set("Content-Type", photoMIMEType(photoPath, content))

	part, err := w.CreatePart(h)
	if err != nil {
		return "", nil, fmt.Errorf("creating photo part: %w", err)
	}

	if _, err := part.Write(content); err != nil {
		return "", nil, fmt.Errorf("writing photo part: %w", err)
	}

	if err := w.Close(); err != nil {
		return "", nil, fmt.Errorf("closing multipart body: %w", err)
	}

	return w.FormDataContentType(), body, nil
}
