package main

import (
	"bytes"
	"context"
	"errors"
	"flag"
	"fmt"
	"image"
	"image/color"
	"net/http"
	"time"

	"trip-cms/pkg/config"
	"trip-cms/pkg/logger"
	"trip-cms/pkg/tripform"

	"github.com/disintegration/imaging"
)

type sampleTrip struct {
	nama      string
	lokasi    string
	jenisTrip string
	highlight string
	destinasi string
	fasilitas string
	harga     string
	days      []tripform.ItineraryDay
	desc      []string
	colors    []color.NRGBA
}

var sampleTrips = []sampleTrip{
	{
		nama:      "Lombok 3D2N",
		lokasi:    "Lombok",
		jenisTrip: "Open",
		highlight: "Gili Trawangan, Pink Beach, Bukit Merese",
		destinasi: "Senggigi, Gili Trawangan, Kuta Mandalika",
		fasilitas: "Hotel, Transport, Makan 3x, Guide",
		harga:     "1500000, 2750000",
		days: []tripform.ItineraryDay{
			{Title: "Hari 1", Items: []tripform.ItineraryItem{
				{Time: "08:00", Details: "Penjemputan di bandara"},
				{Time: "13:00", Details: "Makan siang di Senggigi"},
			}},
			{Title: "Hari 2", Items: []tripform.ItineraryItem{
				{Time: "07:00", Details: "Menyeberang ke Gili Trawangan"},
			}},
			{Title: "Hari 3", Items: []tripform.ItineraryItem{
				{Time: "10:00", Details: "Pantai Kuta Mandalika dan pengantaran ke bandara"},
			}},
		},
		desc:   []string{"Tiga hari menjelajahi pantai terbaik Lombok.", "Cocok untuk rombongan kecil."},
		colors: []color.NRGBA{{0, 119, 182, 255}, {144, 224, 239, 255}, {255, 183, 3, 255}},
	},
	{
		nama:      "Bali Ubud 2D1N",
		lokasi:    "Bali",
		jenisTrip: "Private",
		highlight: "Tegallalang, Monkey Forest",
		destinasi: "Ubud",
		fasilitas: "Villa, Transport",
		harga:     "2200000",
		days: []tripform.ItineraryDay{
			{Title: "Hari 1", Items: []tripform.ItineraryItem{{Time: "09:00", Details: "Sawah Tegallalang"}}},
			{Title: "Hari 2", Items: []tripform.ItineraryItem{{Time: "08:00", Details: "Monkey Forest"}}},
		},
		desc:   []string{"Trip privat ke jantung budaya Bali."},
		colors: []color.NRGBA{{56, 102, 65, 255}, {167, 201, 87, 255}},
	},
	{
		nama:      "Labuan Bajo Sailing",
		lokasi:    "Labuan Bajo",
		jenisTrip: "Open",
		highlight: "Pulau Padar, Pink Beach, Komodo",
		destinasi: "Pulau Padar, Pulau Komodo",
		fasilitas: "Kapal phinisi, Makan, Snorkeling gear",
		harga:     "3500000, 4200000",
		days: []tripform.ItineraryDay{
			{Title: "Hari 1", Items: []tripform.ItineraryItem{{Time: "06:00", Details: "Sunrise di Pulau Padar"}}},
		},
		desc:   []string{"Berlayar di Taman Nasional Komodo."},
		colors: []color.NRGBA{{2, 48, 71, 255}},
	},
}

func main() {
	var baseURL string
	flag.StringVar(&baseURL, "url", "", "Trip service base URL (defaults to TRIP_SERVICE_URL)")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}
	if baseURL == "" {
		baseURL = cfg.TripServiceURL
	}

	log := logger.New()
	client := tripform.NewClient(baseURL, &http.Client{Timeout: 60 * time.Second})

	if err := seedTrips(context.Background(), client, log); err != nil {
		log.Error("Failed to seed trips: %v", err)
		panic(err)
	}

	log.Info("Trips seeded successfully!")
}

func seedTrips(ctx context.Context, client *tripform.Client, log *logger.Logger) error {
	for _, trip := range sampleTrips {
		draft, err := buildDraft(trip)
		if err != nil {
			return fmt.Errorf("failed to build draft %s: %w", trip.nama, err)
		}

		post, err := client.Create(ctx, draft)
		if err != nil {
			var apiErr *tripform.APIError
			if errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusBadRequest {
				log.Info("Skipping %s: %s", trip.nama, apiErr.Message)
				continue
			}
			return err
		}

		log.Info("Created trip %s with %d images", post.Slug, len(post.Images))
	}
	return nil
}

func buildDraft(trip sampleTrip) (*tripform.Draft, error) {
	d := tripform.NewCreateDraft()
	d.SetNama(trip.nama)
	d.Lokasi = trip.lokasi
	d.JenisTrip = trip.jenisTrip
	d.Highlight = trip.highlight
	d.Destinasi = trip.destinasi
	d.Fasilitas = trip.fasilitas
	d.Harga = trip.harga
	d.Descriptions = append([]string{}, trip.desc...)
	d.Itineraries = append([]tripform.ItineraryDay{}, trip.days...)

	for i, c := range trip.colors {
		data, err := placeholderPNG(c)
		if err != nil {
			return nil, err
		}
		d.AddPhotos(tripform.Photo{
			Name:        fmt.Sprintf("%s-%d.png", d.Slug, i+1),
			ContentType: "image/png",
			Data:        data,
		})
	}

	return d, d.Validate()
}

// placeholderPNG renders a plain banner with a lighter horizon band.
func placeholderPNG(c color.NRGBA) ([]byte, error) {
	img := imaging.New(640, 420, c)
	band := imaging.New(640, 120, color.NRGBA{255, 255, 255, 255})
	img = imaging.Overlay(img, band, image.Pt(0, 300), 0.35)

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.PNG); err != nil {
		return nil, fmt.Errorf("failed to encode placeholder: %w", err)
	}
	return buf.Bytes(), nil
}
