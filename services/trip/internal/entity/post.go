package entity

import "time"

type TripType string

const (
	TripTypePrivate TripType = "Private"
	TripTypeOpen    TripType = "Open"
)

func (t TripType) Valid() bool {
	return t == TripTypePrivate || t == TripTypeOpen
}

// MaxImages is the upper bound of photos attached to a post.
const MaxImages = 5

type Post struct {
	ID           string         `json:"id"`
	Nama         string         `json:"nama"`
	Slug         string         `json:"slug"`
	Lokasi       string         `json:"lokasi"`
	JenisTrip    TripType       `json:"jenistrip"`
	Highlight    []string       `json:"highlight"`
	Destinasi    []string       `json:"destinasi"`
	Fasilitas    []string       `json:"fasilitas"`
	Harga        []string       `json:"harga"`
	Descriptions []Description  `json:"descriptions"`
	Itineraries  []ItineraryDay `json:"itineraries"`
	CreatedAt    time.Time      `json:"createdAt"`
	Images       []Image        `json:"images"`
}

type Image struct {
	ID     string `json:"id"`
	URL    string `json:"url"`
	PostID string `json:"postId"`
}

type Description struct {
	Description string `json:"description"`
}

type ItineraryDay struct {
	Title string          `json:"title"`
	Items []ItineraryItem `json:"items" validate:"required,min=1,dive"`
}

type ItineraryItem struct {
	Time    string `json:"time"`
	Details string `json:"details"`
}

// ImageByID finds one of the post's images.
func (p *Post) ImageByID(id string) (Image, bool) {
	for _, img := range p.Images {
		if img.ID == id {
			return img, true
		}
	}
	return Image{}, false
}
