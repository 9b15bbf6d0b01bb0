package tripform

import "time"

// Post is a trip post as the service returns it.
type Post struct {
	ID           string         `json:"id"`
	Nama         string         `json:"nama"`
	Slug         string         `json:"slug"`
	Lokasi       string         `json:"lokasi"`
	JenisTrip    string         `json:"jenistrip"`
	Highlight    []string       `json:"highlight"`
	Destinasi    []string       `json:"destinasi"`
	Fasilitas    []string       `json:"fasilitas"`
	Harga        []string       `json:"harga"`
	Descriptions []Description  `json:"descriptions"`
	Itineraries  []ItineraryDay `json:"itineraries"`
	CreatedAt    time.Time      `json:"createdAt"`
	Tanggal      string         `json:"tanggal,omitempty"`
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
	Items []ItineraryItem `json:"items"`
}

type ItineraryItem struct {
	Time    string `json:"time"`
	Details string `json:"details"`
}
