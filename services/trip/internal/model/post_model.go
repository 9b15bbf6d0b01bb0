package model

import (
	"time"

	"trip-cms/services/trip/internal/entity"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type PostModel struct {
	ID           string                                    `gorm:"type:uuid;primary_key"`
	Nama         string                                    `gorm:"type:varchar(255);not null"`
	Slug         string                                    `gorm:"type:varchar(255);not null;uniqueIndex"`
	Lokasi       string                                    `gorm:"type:varchar(255);not null"`
	JenisTrip    string                                    `gorm:"column:jenistrip;type:varchar(20);not null"`
	Highlight    pq.StringArray                            `gorm:"type:text[]"`
	Destinasi    pq.StringArray                            `gorm:"type:text[]"`
	Fasilitas    pq.StringArray                            `gorm:"type:text[]"`
	Harga        pq.StringArray                            `gorm:"type:text[]"`
	Descriptions datatypes.JSONType[[]entity.Description]  `gorm:"type:jsonb"`
	Itineraries  datatypes.JSONType[[]entity.ItineraryDay] `gorm:"type:jsonb"`
	CreatedAt    time.Time                                 `gorm:"index"`
	Images       []ImageModel                              `gorm:"foreignKey:PostID;constraint:OnDelete:CASCADE"`
}

func (PostModel) TableName() string {
	return "posts"
}

func (p *PostModel) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	return nil
}

type ImageModel struct {
	ID     string `gorm:"type:uuid;primary_key"`
	URL    string `gorm:"type:varchar(500);not null;uniqueIndex:idx_images_post_url,priority:2"`
	PostID string `gorm:"type:uuid;not null;index;uniqueIndex:idx_images_post_url,priority:1"`
}

func (ImageModel) TableName() string {
	return "images"
}

func (i *ImageModel) BeforeCreate(tx *gorm.DB) error {
	if i.ID == "" {
		i.ID = uuid.New().String()
	}
	return nil
}
