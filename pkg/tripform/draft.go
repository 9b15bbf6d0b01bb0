// Package tripform holds the editable state of the create and edit trip
// forms and submits it to the trip service.
package tripform

import (
	"errors"
	"fmt"
	"strings"

	"trip-cms/pkg/utils"
)

const (
	MaxImages          = 5
	CreateMaxImageSize = 15 << 20
	EditMaxImageSize   = 10 << 20
)

type Mode int

const (
	ModeCreate Mode = iota
	ModeEdit
)

var (
	ErrLastDescription = errors.New("At least one description is required.")
	ErrLastDay         = errors.New("At least one day is required for the itinerary.")
	ErrLastItem        = errors.New("At least one itinerary item is required for each day.")
	ErrNoImages        = errors.New("Please select at least one image.")
	ErrOutOfRange      = errors.New("index out of range")
)

// Confirmer asks the admin before a destructive change on the edit form.
type Confirmer interface {
	Confirm(prompt string) bool
}

type ConfirmFunc func(prompt string) bool

func (f ConfirmFunc) Confirm(prompt string) bool {
	return f(prompt)
}

type alwaysConfirm struct{}

func (alwaysConfirm) Confirm(string) bool { return true }

// Photo is a file picked in the form.
type Photo struct {
	Name        string
	ContentType string
	Data        []byte
}

func (p Photo) Size() int64 {
	return int64(len(p.Data))
}

// AddResult tells the caller which picked files were not added.
type AddResult struct {
	Added    int
	Oversize []string
	Overflow []string
}

func (r AddResult) Message(maxSize int64) string {
	switch {
	case len(r.Oversize) > 0 && len(r.Overflow) > 0:
		return fmt.Sprintf("Some images exceed the maximum size of %dMB and were not added. You can only upload up to %d images.", maxSize>>20, MaxImages)
	case len(r.Oversize) > 0:
		return fmt.Sprintf("Some images exceed the maximum size of %dMB and were not added.", maxSize>>20)
	case len(r.Overflow) > 0:
		return fmt.Sprintf("You can only upload up to %d images.", MaxImages)
	}
	return ""
}

// Draft is the form state of a trip post before it is submitted. Text inputs
// are kept raw; lists are split server side.
type Draft struct {
	Mode Mode

	Nama      string
	Slug      string
	Lokasi    string
	JenisTrip string
	Highlight string
	Destinasi string
	Fasilitas string
	Harga     string

	Descriptions []string
	Itineraries  []ItineraryDay

	Photos []Photo

	// Edit form only.
	OldSlug  string
	Existing []Image

	confirm Confirmer
}

func NewCreateDraft() *Draft {
	return &Draft{
		Mode:         ModeCreate,
		Descriptions: []string{""},
		Itineraries:  []ItineraryDay{emptyDay()},
		confirm:      alwaysConfirm{},
	}
}

// NewEditDraft loads a stored post into an edit form. A nil confirmer
// accepts every removal.
func NewEditDraft(post *Post, confirm Confirmer) *Draft {
	if confirm == nil {
		confirm = alwaysConfirm{}
	}

	d := &Draft{
		Mode:      ModeEdit,
		Lokasi:    post.Lokasi,
		JenisTrip: post.JenisTrip,
		Highlight: joinList(post.Highlight),
		Destinasi: joinList(post.Destinasi),
		Fasilitas: joinList(post.Fasilitas),
		Harga:     joinList(post.Harga),
		OldSlug:   post.Slug,
		Existing:  append([]Image{}, post.Images...),
		confirm:   confirm,
	}
	d.SetNama(post.Nama)

	for _, desc := range post.Descriptions {
		d.Descriptions = append(d.Descriptions, desc.Description)
	}
	if len(d.Descriptions) == 0 {
		d.Descriptions = []string{""}
	}

	for _, day := range post.Itineraries {
		items := append([]ItineraryItem{}, day.Items...)
		if len(items) == 0 {
			items = []ItineraryItem{{}}
		}
		d.Itineraries = append(d.Itineraries, ItineraryDay{Title: day.Title, Items: items})
	}
	if len(d.Itineraries) == 0 {
		d.Itineraries = []ItineraryDay{emptyDay()}
	}

	return d
}

func emptyDay() ItineraryDay {
	return ItineraryDay{Items: []ItineraryItem{{}}}
}

// SetNama updates the name and the slug derived from it.
func (d *Draft) SetNama(nama string) {
	d.Nama = nama
	d.Slug = utils.Slugify(nama)
}

// MaxImageSize is the per-file limit of the form.
func (d *Draft) MaxImageSize() int64 {
	if d.Mode == ModeEdit {
		return EditMaxImageSize
	}
	return CreateMaxImageSize
}

// ImageCount counts kept and newly picked images.
func (d *Draft) ImageCount() int {
	return len(d.Existing) + len(d.Photos)
}

// AddPhotos drops files over the size limit, then keeps as many of the rest
// as fit under MaxImages.
func (d *Draft) AddPhotos(files ...Photo) AddResult {
	var res AddResult
	limit := d.MaxImageSize()

	valid := make([]Photo, 0, len(files))
	for _, f := range files {
		if f.Size() > limit {
			res.Oversize = append(res.Oversize, f.Name)
			continue
		}
		valid = append(valid, f)
	}

	room := MaxImages - d.ImageCount()
	if room < 0 {
		room = 0
	}
	if len(valid) > room {
		for _, f := range valid[room:] {
			res.Overflow = append(res.Overflow, f.Name)
		}
		valid = valid[:room]
	}

	d.Photos = append(d.Photos, valid...)
	res.Added = len(valid)
	return res
}

func (d *Draft) RemovePhoto(i int) (bool, error) {
	if i < 0 || i >= len(d.Photos) {
		return false, ErrOutOfRange
	}
	if !d.confirmed("Are you sure you want to remove this image?") {
		return false, nil
	}
	d.Photos = append(d.Photos[:i], d.Photos[i+1:]...)
	return true, nil
}

// RemoveExistingImage stops keeping a stored image. The image is deleted
// when the draft is submitted.
func (d *Draft) RemoveExistingImage(id string) (bool, error) {
	for i, img := range d.Existing {
		if img.ID != id {
			continue
		}
		if !d.confirmed("Are you sure you want to remove this image? This cannot be undone.") {
			return false, nil
		}
		d.Existing = append(d.Existing[:i], d.Existing[i+1:]...)
		return true, nil
	}
	return false, ErrOutOfRange
}

func (d *Draft) AddDescription() {
	d.Descriptions = append(d.Descriptions, "")
}

func (d *Draft) SetDescription(i int, text string) error {
	if i < 0 || i >= len(d.Descriptions) {
		return ErrOutOfRange
	}
	d.Descriptions[i] = text
	return nil
}

func (d *Draft) RemoveDescription(i int) (bool, error) {
	if i < 0 || i >= len(d.Descriptions) {
		return false, ErrOutOfRange
	}
	if len(d.Descriptions) <= 1 {
		return false, ErrLastDescription
	}
	if !d.confirmed("Are you sure you want to remove this description?") {
		return false, nil
	}
	d.Descriptions = append(d.Descriptions[:i], d.Descriptions[i+1:]...)
	return true, nil
}

func (d *Draft) AddDay() {
	d.Itineraries = append(d.Itineraries, emptyDay())
}

func (d *Draft) SetDayTitle(day int, title string) error {
	if day < 0 || day >= len(d.Itineraries) {
		return ErrOutOfRange
	}
	d.Itineraries[day].Title = title
	return nil
}

func (d *Draft) RemoveDay(day int) (bool, error) {
	if day < 0 || day >= len(d.Itineraries) {
		return false, ErrOutOfRange
	}
	if len(d.Itineraries) <= 1 {
		return false, ErrLastDay
	}
	if !d.confirmed("Are you sure you want to remove this day?") {
		return false, nil
	}
	d.Itineraries = append(d.Itineraries[:day], d.Itineraries[day+1:]...)
	return true, nil
}

func (d *Draft) AddItem(day int) error {
	if day < 0 || day >= len(d.Itineraries) {
		return ErrOutOfRange
	}
	d.Itineraries[day].Items = append(d.Itineraries[day].Items, ItineraryItem{})
	return nil
}

func (d *Draft) SetItem(day, i int, time, details string) error {
	if day < 0 || day >= len(d.Itineraries) {
		return ErrOutOfRange
	}
	items := d.Itineraries[day].Items
	if i < 0 || i >= len(items) {
		return ErrOutOfRange
	}
	items[i] = ItineraryItem{Time: time, Details: details}
	return nil
}

func (d *Draft) RemoveItem(day, i int) (bool, error) {
	if day < 0 || day >= len(d.Itineraries) {
		return false, ErrOutOfRange
	}
	items := d.Itineraries[day].Items
	if i < 0 || i >= len(items) {
		return false, ErrOutOfRange
	}
	if len(items) <= 1 {
		return false, ErrLastItem
	}
	if !d.confirmed("Are you sure you want to remove this itinerary item?") {
		return false, nil
	}
	d.Itineraries[day].Items = append(items[:i], items[i+1:]...)
	return true, nil
}

// Validate runs the checks that block submission.
func (d *Draft) Validate() error {
	if d.Mode == ModeCreate && len(d.Photos) == 0 {
		return ErrNoImages
	}
	return utils.ValidatePrices(d.Harga)
}

// confirmed only asks on the edit form.
func (d *Draft) confirmed(prompt string) bool {
	if d.Mode == ModeCreate {
		return true
	}
	return d.confirm.Confirm(prompt)
}

func joinList(values []string) string {
	return strings.Join(values, ", ")
}
