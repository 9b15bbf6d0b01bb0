package persistent

import (
	"trip-cms/services/trip/internal/entity"
	"trip-cms/services/trip/internal/model"

	"github.com/lib/pq"
	"gorm.io/datatypes"
)

func ToPostEntity(m *model.PostModel) *entity.Post {
	if m == nil {
		return nil
	}

	post := &entity.Post{
		ID:           m.ID,
		Nama:         m.Nama,
		Slug:         m.Slug,
		Lokasi:       m.Lokasi,
		JenisTrip:    entity.TripType(m.JenisTrip),
		Highlight:    nonNil([]string(m.Highlight)),
		Destinasi:    nonNil([]string(m.Destinasi)),
		Fasilitas:    nonNil([]string(m.Fasilitas)),
		Harga:        nonNil([]string(m.Harga)),
		Descriptions: m.Descriptions.Data(),
		Itineraries:  m.Itineraries.Data(),
		CreatedAt:    m.CreatedAt,
		Images:       make([]entity.Image, len(m.Images)),
	}
	if post.Descriptions == nil {
		post.Descriptions = []entity.Description{}
	}
	if post.Itineraries == nil {
		post.Itineraries = []entity.ItineraryDay{}
	}

	for i := range m.Images {
		post.Images[i] = ToImageEntity(&m.Images[i])
	}

	return post
}

func ToPostModel(e *entity.Post) *model.PostModel {
	if e == nil {
		return nil
	}

	post := &model.PostModel{
		ID:           e.ID,
		Nama:         e.Nama,
		Slug:         e.Slug,
		Lokasi:       e.Lokasi,
		JenisTrip:    string(e.JenisTrip),
		Highlight:    pq.StringArray(nonNil(e.Highlight)),
		Destinasi:    pq.StringArray(nonNil(e.Destinasi)),
		Fasilitas:    pq.StringArray(nonNil(e.Fasilitas)),
		Harga:        pq.StringArray(nonNil(e.Harga)),
		Descriptions: datatypes.NewJSONType(e.Descriptions),
		Itineraries:  datatypes.NewJSONType(e.Itineraries),
		CreatedAt:    e.CreatedAt,
	}

	if len(e.Images) > 0 {
		post.Images = make([]model.ImageModel, len(e.Images))
		for i := range e.Images {
			post.Images[i] = *ToImageModel(&e.Images[i])
		}
	}

	return post
}

func ToImageEntity(m *model.ImageModel) entity.Image {
	if m == nil {
		return entity.Image{}
	}

	return entity.Image{
		ID:     m.ID,
		URL:    m.URL,
		PostID: m.PostID,
	}
}

func ToImageModel(e *entity.Image) *model.ImageModel {
	if e == nil {
		return nil
	}

	return &model.ImageModel{
		ID:     e.ID,
		URL:    e.URL,
		PostID: e.PostID,
	}
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
