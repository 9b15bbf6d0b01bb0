package tripform

import (
	"bytes"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/textproto"
	"strings"

	"github.com/gabriel-vasile/mimetype"
)

// Encode validates the draft and writes it as the multipart body the create
// or update endpoint expects. It returns the body and its Content-Type.
func (d *Draft) Encode() (*bytes.Buffer, string, error) {
	if err := d.Validate(); err != nil {
		return nil, "", err
	}

	descriptions := make([]Description, len(d.Descriptions))
	for i, text := range d.Descriptions {
		descriptions[i] = Description{Description: text}
	}
	itineraryJSON, err := json.Marshal(d.Itineraries)
	if err != nil {
		return nil, "", fmt.Errorf("failed to encode itinerary: %w", err)
	}
	descriptionJSON, err := json.Marshal(descriptions)
	if err != nil {
		return nil, "", fmt.Errorf("failed to encode description: %w", err)
	}

	body := &bytes.Buffer{}
	w := multipart.NewWriter(body)

	fields := [][2]string{
		{"nama", d.Nama},
		{"lokasi", d.Lokasi},
		{"jenistrip", d.JenisTrip},
		{"highlight", d.Highlight},
		{"destinasi", d.Destinasi},
		{"fasilitas", d.Fasilitas},
		{"harga", d.Harga},
		{"itinerary", string(itineraryJSON)},
		{"description", string(descriptionJSON)},
	}
	if d.Mode == ModeEdit {
		kept := make([]string, len(d.Existing))
		for i, img := range d.Existing {
			kept[i] = img.ID
		}
		keptJSON, err := json.Marshal(kept)
		if err != nil {
			return nil, "", fmt.Errorf("failed to encode existing images: %w", err)
		}
		fields = append(fields, [2]string{"oldSlug", d.OldSlug}, [2]string{"existingImages", string(keptJSON)})
	}

	for _, f := range fields {
		if err := w.WriteField(f[0], f[1]); err != nil {
			return nil, "", err
		}
	}

	for i, photo := range d.Photos {
		contentType := photo.ContentType
		if contentType == "" {
			contentType = mimetype.Detect(photo.Data).String()
		}

		field := fmt.Sprintf("photos[%d]", i)
		if d.Mode == ModeEdit {
			// The edit form only sends files that are still acceptable.
			if photo.Size() > EditMaxImageSize || !strings.HasPrefix(contentType, "image/") {
				continue
			}
			field = "photos"
		}

		if err := writeFile(w, field, photo.Name, contentType, photo.Data); err != nil {
			return nil, "", err
		}
	}

	if err := w.Close(); err != nil {
		return nil, "", err
	}
	return body, w.FormDataContentType(), nil
}

var quoteEscaper = strings.NewReplacer("\\", "\\\\", `"`, "\\\"")

func writeFile(w *multipart.Writer, field, filename, contentType string, data []byte) error {
	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="%s"; filename="%s"`,
		quoteEscaper.Replace(field), quoteEscaper.Replace(filename)))
	h.Set("Content-Type", contentType)

	part, err := w.CreatePart(h)
	if err != nil {
		return err
	}
	_, err = part.Write(data)
	return err
}
