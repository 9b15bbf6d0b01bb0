package persistent

import (
	"context"
	"errors"

	"trip-cms/services/trip/internal/entity"
	"trip-cms/services/trip/internal/model"

	"gorm.io/gorm"
)

var (
	ErrPostNotFound = errors.New("post not found")
	// ErrSlugTaken is returned when the unique slug index rejects a write.
	ErrSlugTaken = errors.New("slug already taken")
)

type PostRepository interface {
	Create(ctx context.Context, post *entity.Post) error
	GetByID(ctx context.Context, id string) (*entity.Post, error)
	GetBySlug(ctx context.Context, slug string) (*entity.Post, error)
	SlugExists(ctx context.Context, slug string) (bool, error)
	List(ctx context.Context) ([]*entity.Post, error)
	UpdateWithImages(ctx context.Context, post *entity.Post, removeImageIDs []string, newImageURLs []string) (*entity.Post, error)
	Delete(ctx context.Context, id string) error
}

type postRepository struct {
	db *gorm.DB
}

func NewPostRepository(db *gorm.DB) PostRepository {
	return &postRepository{db: db}
}

func preloadImages(db *gorm.DB) *gorm.DB {
	return db.Order("images.url ASC")
}

func (r *postRepository) Create(ctx context.Context, post *entity.Post) error {
	postModel := ToPostModel(post)

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		images := postModel.Images
		postModel.Images = nil

		if err := tx.Create(postModel).Error; err != nil {
			return slugConflict(err)
		}

		for i := range images {
			images[i].PostID = postModel.ID
			if err := tx.Create(&images[i]).Error; err != nil {
				return err
			}
		}
		postModel.Images = images

		*post = *ToPostEntity(postModel)
		return nil
	})
}

func (r *postRepository) GetByID(ctx context.Context, id string) (*entity.Post, error) {
	return r.first(ctx, "id = ?", id)
}

func (r *postRepository) GetBySlug(ctx context.Context, slug string) (*entity.Post, error) {
	return r.first(ctx, "slug = ?", slug)
}

func (r *postRepository) first(ctx context.Context, query string, arg string) (*entity.Post, error) {
	var postModel model.PostModel
	err := r.db.WithContext(ctx).
		Preload("Images", preloadImages).
		Where(query, arg).
		First(&postModel).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPostNotFound
		}
		return nil, err
	}
	return ToPostEntity(&postModel), nil
}

func (r *postRepository) SlugExists(ctx context.Context, slug string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.PostModel{}).Where("slug = ?", slug).Count(&count).Error
	return count > 0, err
}

func (r *postRepository) List(ctx context.Context) ([]*entity.Post, error) {
	var postModels []model.PostModel
	if err := r.db.WithContext(ctx).
		Preload("Images", preloadImages).
		Order("created_at ASC").
		Find(&postModels).Error; err != nil {
		return nil, err
	}

	posts := make([]*entity.Post, len(postModels))
	for i := range postModels {
		posts[i] = ToPostEntity(&postModels[i])
	}
	return posts, nil
}

// UpdateWithImages drops the given image rows, inserts rows for the new
// object keys and rewrites the post fields, all in one transaction.
func (r *postRepository) UpdateWithImages(ctx context.Context, post *entity.Post, removeImageIDs []string, newImageURLs []string) (*entity.Post, error) {
	postModel := ToPostModel(post)
	postModel.Images = nil

	var updated model.PostModel
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if len(removeImageIDs) > 0 {
			if err := tx.Where("post_id = ? AND id IN ?", postModel.ID, removeImageIDs).
				Delete(&model.ImageModel{}).Error; err != nil {
				return err
			}
		}

		for _, url := range newImageURLs {
			img := model.ImageModel{URL: url, PostID: postModel.ID}
			if err := tx.Create(&img).Error; err != nil {
				return err
			}
		}

		res := tx.Model(&model.PostModel{ID: postModel.ID}).
			Select("Nama", "Slug", "Lokasi", "JenisTrip", "Highlight", "Destinasi", "Fasilitas", "Harga", "Descriptions", "Itineraries").
			Updates(postModel)
		if res.Error != nil {
			return slugConflict(res.Error)
		}
		if res.RowsAffected == 0 {
			return ErrPostNotFound
		}

		return tx.Preload("Images", preloadImages).First(&updated, "id = ?", postModel.ID).Error
	})
	if err != nil {
		return nil, err
	}
	return ToPostEntity(&updated), nil
}

// Delete removes the post and its image rows together.
func (r *postRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("post_id = ?", id).Delete(&model.ImageModel{}).Error; err != nil {
			return err
		}
		res := tx.Delete(&model.PostModel{}, "id = ?", id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrPostNotFound
		}
		return nil
	})
}

// slugConflict maps a unique violation on posts to ErrSlugTaken. It needs
// TranslateError on the gorm config.
func slugConflict(err error) error {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrSlugTaken
	}
	return err
}
