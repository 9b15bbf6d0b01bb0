package usecase

import (
	"fmt"

	"trip-cms/services/trip/internal/repo/persistent"
)

// ErrPostNotFound is returned when no post matches the given id or slug.
var ErrPostNotFound = persistent.ErrPostNotFound

// ValidationError carries a message meant for the admin submitting the form.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func invalid(format string, args ...interface{}) error {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

// StorageError marks a failed object-store call on a specific key.
type StorageError struct {
	Key string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage %s: %v", e.Key, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

const (
	msgRequiredFields     = "Nama, lokasi, dan jenis trip diperlukan"
	msgInvalidTripType    = "Jenis trip tidak valid"
	msgInvalidSlug        = "Nama trip harus mengandung huruf atau angka"
	msgInvalidItinerary   = "Format itinerary tidak valid"
	msgInvalidDescription = "Format description tidak valid"
	msgInvalidExisting    = "Format existingImages tidak valid"
	msgCreateSlugTaken    = "Nama post sudah digunakan"
	msgUpdateSlugTaken    = "Nama trip sudah digunakan"
	msgNoImages           = "Minimal satu gambar diperlukan"
	msgTooManyImages      = "Anda hanya dapat mengunggah hingga 5 gambar"
	msgNotAnImage         = "File \"%s\" bukan gambar yang valid"
	msgDuplicateFile      = "File \"%s\" dipilih lebih dari sekali"
	msgInvalidPrice       = "Harga tidak valid: %s"
)
