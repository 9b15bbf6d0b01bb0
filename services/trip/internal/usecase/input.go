package usecase

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"

	"trip-cms/pkg/utils"
	"trip-cms/services/trip/internal/entity"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// PostInput holds the raw form values of a create or edit submission.
// List fields are comma separated; Itinerary and Description are JSON.
type PostInput struct {
	Nama        string `validate:"required"`
	Lokasi      string `validate:"required"`
	JenisTrip   string `validate:"required"`
	Highlight   string
	Destinasi   string
	Fasilitas   string
	Harga       string
	Itinerary   string
	Description string
}

type UpdatePostInput struct {
	PostInput
	OldSlug        string
	ExistingImages string
}

// postFields is the parsed, validated shape of a submission.
type postFields struct {
	nama         string
	slug         string
	lokasi       string
	jenisTrip    entity.TripType
	highlight    []string
	destinasi    []string
	fasilitas    []string
	harga        []string
	itineraries  []entity.ItineraryDay
	descriptions []entity.Description
}

func (f *postFields) apply(post *entity.Post) {
	post.Nama = f.nama
	post.Slug = f.slug
	post.Lokasi = f.lokasi
	post.JenisTrip = f.jenisTrip
	post.Highlight = f.highlight
	post.Destinasi = f.destinasi
	post.Fasilitas = f.fasilitas
	post.Harga = f.harga
	post.Itineraries = f.itineraries
	post.Descriptions = f.descriptions
}

// checkRequired validates the scalar fields and derives the slug.
func checkRequired(in *PostInput) (string, error) {
	in.Nama = strings.TrimSpace(in.Nama)
	in.Lokasi = strings.TrimSpace(in.Lokasi)
	in.JenisTrip = strings.TrimSpace(in.JenisTrip)

	if err := validate.Struct(in); err != nil {
		return "", invalid(msgRequiredFields)
	}
	if !entity.TripType(in.JenisTrip).Valid() {
		return "", invalid(msgInvalidTripType)
	}

	slug := utils.Slugify(in.Nama)
	if slug == "" {
		return "", invalid(msgInvalidSlug)
	}
	return slug, nil
}

// parseBody splits the list fields and decodes the nested JSON structures.
func parseBody(in *PostInput, slug string) (*postFields, error) {
	f := &postFields{
		nama:      in.Nama,
		slug:      slug,
		lokasi:    in.Lokasi,
		jenisTrip: entity.TripType(in.JenisTrip),
		highlight: utils.SplitList(in.Highlight),
		destinasi: utils.SplitList(in.Destinasi),
		fasilitas: utils.SplitList(in.Fasilitas),
		harga:     utils.SplitList(in.Harga),
	}

	var perr *utils.PriceError
	if err := utils.ValidatePriceList(f.harga); errors.As(err, &perr) {
		return nil, invalid(msgInvalidPrice, perr.Token)
	}

	if err := decodeStrict(in.Itinerary, &f.itineraries); err != nil {
		return nil, invalid(msgInvalidItinerary)
	}
	if err := validate.Var(f.itineraries, "required,min=1,dive"); err != nil {
		return nil, invalid(msgInvalidItinerary)
	}

	if err := decodeStrict(in.Description, &f.descriptions); err != nil {
		return nil, invalid(msgInvalidDescription)
	}
	if err := validate.Var(f.descriptions, "required,min=1"); err != nil {
		return nil, invalid(msgInvalidDescription)
	}

	return f, nil
}

// parseExistingImages decodes the JSON array of image ids the client kept.
// An absent value means no image is kept.
func parseExistingImages(raw string) ([]string, error) {
	ids := []string{}
	if strings.TrimSpace(raw) == "" {
		return ids, nil
	}
	if err := decodeStrict(raw, &ids); err != nil {
		return nil, invalid(msgInvalidExisting)
	}
	return ids, nil
}

// decodeStrict rejects unknown fields and trailing data, so a payload whose
// shape does not match is treated the same as malformed JSON.
func decodeStrict(raw string, v interface{}) error {
	dec := json.NewDecoder(bytes.NewReader([]byte(raw)))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return err
	}
	if dec.More() {
		return errors.New("unexpected data after JSON value")
	}
	return nil
}
