package tripform

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func photo(name string, size int) Photo {
	return Photo{Name: name, ContentType: "image/png", Data: bytes.Repeat([]byte{1}, size)}
}

func storedPost() *Post {
	return &Post{
		ID:           "post-1",
		Nama:         "Lombok 3D2N",
		Slug:         "lombok-3d2n",
		Lokasi:       "Lombok",
		JenisTrip:    "Open",
		Highlight:    []string{"Gili Trawangan", "Pink Beach"},
		Harga:        []string{"350", "1500"},
		Descriptions: []Description{{Description: "Tiga hari"}, {Description: "Dua malam"}},
		Itineraries: []ItineraryDay{
			{Title: "Hari 1", Items: []ItineraryItem{{Time: "08:00", Details: "Penjemputan"}}},
			{Title: "Hari 2"},
		},
		Images: []Image{
			{ID: "img-1", URL: "lombok-3d2n/a.png"},
			{ID: "img-2", URL: "lombok-3d2n/b.png"},
		},
	}
}

func TestNewCreateDraft(t *testing.T) {
	d := NewCreateDraft()

	assert.Equal(t, ModeCreate, d.Mode)
	assert.Equal(t, []string{""}, d.Descriptions)
	require.Len(t, d.Itineraries, 1)
	assert.Len(t, d.Itineraries[0].Items, 1)
	assert.Equal(t, int64(CreateMaxImageSize), d.MaxImageSize())
}

func TestNewEditDraft(t *testing.T) {
	d := NewEditDraft(storedPost(), nil)

	assert.Equal(t, ModeEdit, d.Mode)
	assert.Equal(t, "lombok-3d2n", d.OldSlug)
	assert.Equal(t, "lombok-3d2n", d.Slug)
	assert.Equal(t, "Gili Trawangan, Pink Beach", d.Highlight)
	assert.Equal(t, "350, 1500", d.Harga)
	assert.Equal(t, []string{"Tiga hari", "Dua malam"}, d.Descriptions)
	require.Len(t, d.Itineraries, 2)
	assert.Len(t, d.Itineraries[1].Items, 1, "a day without items gets an empty one")
	assert.Len(t, d.Existing, 2)
	assert.Equal(t, int64(EditMaxImageSize), d.MaxImageSize())
}

func TestSetNamaUpdatesSlug(t *testing.T) {
	d := NewCreateDraft()

	d.SetNama("Lombok Trip")
	assert.Equal(t, "lombok-trip", d.Slug)

	d.SetNama("Bali  Ubud!")
	assert.Equal(t, "bali-ubud", d.Slug)
}

func TestAddPhotos_CreateForm(t *testing.T) {
	d := NewCreateDraft()

	res := d.AddPhotos(photo("a.png", 10), photo("huge.png", CreateMaxImageSize+1), photo("b.png", 10))
	assert.Equal(t, 2, res.Added)
	assert.Equal(t, []string{"huge.png"}, res.Oversize)
	assert.Contains(t, res.Message(d.MaxImageSize()), "15MB")

	res = d.AddPhotos(photo("c.png", 1), photo("d.png", 1), photo("e.png", 1), photo("f.png", 1))
	assert.Equal(t, 3, res.Added)
	assert.Equal(t, []string{"f.png"}, res.Overflow)
	assert.Equal(t, "You can only upload up to 5 images.", res.Message(d.MaxImageSize()))
	assert.Len(t, d.Photos, MaxImages)
}

func TestAddPhotos_EditFormCountsKeptImages(t *testing.T) {
	d := NewEditDraft(storedPost(), nil)

	res := d.AddPhotos(photo("c.png", 1), photo("d.png", 1), photo("e.png", 1), photo("f.png", 1), photo("g.png", EditMaxImageSize+1))

	assert.Equal(t, 3, res.Added)
	assert.Equal(t, []string{"f.png"}, res.Overflow)
	assert.Equal(t, []string{"g.png"}, res.Oversize)
	assert.Equal(t, MaxImages, d.ImageCount())
}

func TestRemovals_CreateForm(t *testing.T) {
	d := NewCreateDraft()

	_, err := d.RemoveDescription(0)
	assert.ErrorIs(t, err, ErrLastDescription)
	_, err = d.RemoveDay(0)
	assert.ErrorIs(t, err, ErrLastDay)
	_, err = d.RemoveItem(0, 0)
	assert.ErrorIs(t, err, ErrLastItem)

	d.AddDescription()
	require.NoError(t, d.SetDescription(1, "kedua"))
	removed, err := d.RemoveDescription(0)
	require.NoError(t, err)
	assert.True(t, removed)
	assert.Equal(t, []string{"kedua"}, d.Descriptions)

	d.AddDay()
	require.NoError(t, d.SetDayTitle(1, "Hari 2"))
	require.NoError(t, d.AddItem(1))
	require.NoError(t, d.SetItem(1, 1, "10:00", "Snorkeling"))
	removed, err = d.RemoveItem(1, 0)
	require.NoError(t, err)
	assert.True(t, removed)
	assert.Equal(t, []ItineraryItem{{Time: "10:00", Details: "Snorkeling"}}, d.Itineraries[1].Items)

	removed, err = d.RemoveDay(0)
	require.NoError(t, err)
	assert.True(t, removed)
	assert.Equal(t, "Hari 2", d.Itineraries[0].Title)

	_, err = d.RemoveDay(5)
	assert.ErrorIs(t, err, ErrOutOfRange)
	assert.ErrorIs(t, d.SetItem(0, 9, "", ""), ErrOutOfRange)
}

func TestRemovals_EditFormAsksFirst(t *testing.T) {
	var prompts []string
	answer := false
	d := NewEditDraft(storedPost(), ConfirmFunc(func(prompt string) bool {
		prompts = append(prompts, prompt)
		return answer
	}))

	removed, err := d.RemoveDescription(0)
	require.NoError(t, err)
	assert.False(t, removed)
	assert.Len(t, d.Descriptions, 2)

	removed, err = d.RemoveExistingImage("img-1")
	require.NoError(t, err)
	assert.False(t, removed)

	answer = true
	removed, err = d.RemoveExistingImage("img-1")
	require.NoError(t, err)
	assert.True(t, removed)
	assert.Equal(t, []Image{{ID: "img-2", URL: "lombok-3d2n/b.png"}}, d.Existing)

	_, err = d.RemoveExistingImage("missing")
	assert.ErrorIs(t, err, ErrOutOfRange)

	d.AddPhotos(photo("c.png", 1))
	removed, err = d.RemovePhoto(0)
	require.NoError(t, err)
	assert.True(t, removed)
	assert.Empty(t, d.Photos)

	assert.Contains(t, prompts, "Are you sure you want to remove this image? This cannot be undone.")
	assert.Contains(t, prompts, "Are you sure you want to remove this description?")
}

func TestValidate(t *testing.T) {
	d := NewCreateDraft()
	d.Harga = "350, 1500"
	assert.ErrorIs(t, d.Validate(), ErrNoImages)

	d.AddPhotos(photo("a.png", 1))
	assert.NoError(t, d.Validate())

	d.Harga = "350, 1.500"
	assert.EqualError(t, d.Validate(), "Invalid price: 1.500. Please enter numbers only.")

	d.Harga = " "
	assert.EqualError(t, d.Validate(), "Please enter at least one price.")

	edit := NewEditDraft(storedPost(), nil)
	edit.Existing = nil
	assert.NoError(t, edit.Validate(), "an edit may leave the post without images")
}
