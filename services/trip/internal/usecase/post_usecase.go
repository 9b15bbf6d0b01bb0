package usecase

import (
	"context"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"path/filepath"
	"strings"

	"trip-cms/pkg/logger"
	"trip-cms/services/trip/internal/entity"
	"trip-cms/services/trip/internal/repo/persistent"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// ObjectStore is the bucket holding uploaded photos. Upload overwrites an
// existing object with the same key.
type ObjectStore interface {
	Upload(ctx context.Context, key string, body io.Reader, contentType string) (string, error)
	Delete(ctx context.Context, key string) error
}

// EventPublisher announces post lifecycle changes to other consumers.
type EventPublisher interface {
	PublishTripEvent(eventType string, payload map[string]interface{}) error
}

const (
	EventTripCreated = "trip.created"
	EventTripUpdated = "trip.updated"
	EventTripDeleted = "trip.deleted"
)

type PostUseCase interface {
	CreatePost(ctx context.Context, in PostInput, photos []*multipart.FileHeader) (*entity.Post, error)
	UpdatePost(ctx context.Context, in UpdatePostInput, photos []*multipart.FileHeader) (*entity.Post, error)
	DeletePost(ctx context.Context, id string) error
	ListPosts(ctx context.Context) ([]*entity.Post, error)
	GetPostBySlug(ctx context.Context, slug string) (*entity.Post, error)
}

type postUseCase struct {
	postRepo persistent.PostRepository
	store    ObjectStore
	events   EventPublisher
	logger   *logger.Logger
}

// NewPostUseCase wires the workflows. events may be nil.
func NewPostUseCase(
	postRepo persistent.PostRepository,
	store ObjectStore,
	events EventPublisher,
	logger *logger.Logger,
) PostUseCase {
	return &postUseCase{
		postRepo: postRepo,
		store:    store,
		events:   events,
		logger:   logger,
	}
}

func (uc *postUseCase) CreatePost(ctx context.Context, in PostInput, photos []*multipart.FileHeader) (*entity.Post, error) {
	slug, err := checkRequired(&in)
	if err != nil {
		return nil, err
	}

	fields, err := parseBody(&in, slug)
	if err != nil {
		return nil, err
	}

	exists, err := uc.postRepo.SlugExists(ctx, slug)
	if err != nil {
		return nil, fmt.Errorf("failed to check slug: %w", err)
	}
	if exists {
		return nil, invalid(msgCreateSlugTaken)
	}

	if len(photos) == 0 {
		return nil, invalid(msgNoImages)
	}
	if len(photos) > entity.MaxImages {
		return nil, invalid(msgTooManyImages)
	}
	if name := duplicateName(slug, photos); name != "" {
		return nil, invalid(msgDuplicateFile, name)
	}
	contentTypes, err := checkImages(photos)
	if err != nil {
		return nil, err
	}

	keys, err := uc.uploadAll(ctx, slug, photos, contentTypes)
	if err != nil {
		uc.compensate(keys, nil)
		return nil, err
	}

	post := &entity.Post{}
	fields.apply(post)
	post.Images = make([]entity.Image, len(keys))
	for i, key := range keys {
		post.Images[i] = entity.Image{URL: key}
	}

	if err := uc.postRepo.Create(ctx, post); err != nil {
		if errors.Is(err, persistent.ErrSlugTaken) {
			// A concurrent create won the slug and may own the same keys.
			uc.logger.Warn("Slug %s taken concurrently, leaving %d uploaded objects", slug, len(keys))
			return nil, invalid(msgCreateSlugTaken)
		}
		uc.compensate(keys, nil)
		return nil, fmt.Errorf("failed to create post: %w", err)
	}

	uc.logger.Info("Post %s created with %d images", post.Slug, len(post.Images))
	uc.publish(EventTripCreated, post)
	return post, nil
}

func (uc *postUseCase) UpdatePost(ctx context.Context, in UpdatePostInput, photos []*multipart.FileHeader) (*entity.Post, error) {
	newSlug, err := checkRequired(&in.PostInput)
	if err != nil {
		return nil, err
	}

	lookup := strings.TrimSpace(in.OldSlug)
	if lookup == "" {
		lookup = newSlug
	}
	existing, err := uc.postRepo.GetBySlug(ctx, lookup)
	if err != nil {
		return nil, err
	}

	if newSlug != existing.Slug {
		other, err := uc.postRepo.GetBySlug(ctx, newSlug)
		if err != nil && !errors.Is(err, ErrPostNotFound) {
			return nil, fmt.Errorf("failed to check slug: %w", err)
		}
		if other != nil && other.ID != existing.ID {
			return nil, invalid(msgUpdateSlugTaken)
		}
	}

	fields, err := parseBody(&in.PostInput, newSlug)
	if err != nil {
		return nil, err
	}

	keepIDs, err := parseExistingImages(in.ExistingImages)
	if err != nil {
		return nil, err
	}

	keep := make(map[string]entity.Image)
	for _, id := range keepIDs {
		if img, ok := existing.ImageByID(id); ok {
			keep[id] = img
		}
	}
	var removed []entity.Image
	var removeIDs []string
	for _, img := range existing.Images {
		if _, ok := keep[img.ID]; !ok {
			removed = append(removed, img)
			removeIDs = append(removeIDs, img.ID)
		}
	}

	keptKeys := make(map[string]bool, len(keep))
	for _, img := range keep {
		keptKeys[img.URL] = true
	}

	// A new file under a kept image's key replaces that object and reuses
	// its row.
	photos = nonEmpty(photos)
	if name := duplicateName(newSlug, photos); name != "" {
		return nil, invalid(msgDuplicateFile, name)
	}
	added := 0
	for _, fh := range photos {
		if !keptKeys[objectKey(newSlug, fh.Filename)] {
			added++
		}
	}
	if len(keep)+added > entity.MaxImages {
		return nil, invalid(msgTooManyImages)
	}
	contentTypes, err := checkImages(photos)
	if err != nil {
		return nil, err
	}

	// Until the transaction commits every stored row, removed ones included,
	// still points at its object.
	storedKeys := make(map[string]bool, len(existing.Images))
	for _, img := range existing.Images {
		storedKeys[img.URL] = true
	}

	newKeys, err := uc.uploadAll(ctx, newSlug, photos, contentTypes)
	if err != nil {
		uc.compensate(newKeys, storedKeys)
		return nil, err
	}

	insertKeys := make([]string, 0, len(newKeys))
	for _, key := range newKeys {
		if !keptKeys[key] {
			insertKeys = append(insertKeys, key)
		}
	}

	post := &entity.Post{ID: existing.ID, CreatedAt: existing.CreatedAt}
	fields.apply(post)

	updated, err := uc.postRepo.UpdateWithImages(ctx, post, removeIDs, insertKeys)
	if err != nil {
		uc.compensate(newKeys, storedKeys)
		if errors.Is(err, ErrPostNotFound) {
			return nil, err
		}
		if errors.Is(err, persistent.ErrSlugTaken) {
			return nil, invalid(msgUpdateSlugTaken)
		}
		return nil, fmt.Errorf("failed to update post: %w", err)
	}

	// Rows are committed; objects no longer referenced can go now.
	written := make(map[string]bool, len(newKeys))
	for _, key := range newKeys {
		written[key] = true
	}
	for _, img := range removed {
		if written[img.URL] || keptKeys[img.URL] {
			continue
		}
		if err := uc.store.Delete(context.Background(), img.URL); err != nil {
			uc.logger.Warn("Orphaned object %s after updating post %s: %v", img.URL, updated.Slug, err)
		}
	}

	uc.logger.Info("Post %s updated: %d kept, %d removed, %d added", updated.Slug, len(keep), len(removed), len(insertKeys))
	uc.publish(EventTripUpdated, updated)
	return updated, nil
}

func (uc *postUseCase) DeletePost(ctx context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return ErrPostNotFound
	}

	post, err := uc.postRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	for _, img := range post.Images {
		if err := uc.store.Delete(ctx, img.URL); err != nil {
			uc.logger.Error("Error deleting image: %s: %v", img.URL, err)
			return &StorageError{Key: img.URL, Err: err}
		}
	}

	if err := uc.postRepo.Delete(ctx, id); err != nil {
		return err
	}

	uc.logger.Info("Post %s deleted with %d images", post.Slug, len(post.Images))
	uc.publish(EventTripDeleted, post)
	return nil
}

func (uc *postUseCase) ListPosts(ctx context.Context) ([]*entity.Post, error) {
	return uc.postRepo.List(ctx)
}

func (uc *postUseCase) GetPostBySlug(ctx context.Context, slug string) (*entity.Post, error) {
	return uc.postRepo.GetBySlug(ctx, slug)
}

// uploadAll stores every photo under {slug}/{filename} concurrently. The
// returned slice always lists the keys that were written, also on error,
// so the caller can undo them.
func (uc *postUseCase) uploadAll(ctx context.Context, slug string, photos []*multipart.FileHeader, contentTypes []string) ([]string, error) {
	results := make([]string, len(photos))
	g, gctx := errgroup.WithContext(ctx)

	for i, fh := range photos {
		g.Go(func() error {
			src, err := fh.Open()
			if err != nil {
				return fmt.Errorf("failed to open file: %w", err)
			}
			defer src.Close()

			key := objectKey(slug, fh.Filename)
			path, err := uc.store.Upload(gctx, key, src, contentTypes[i])
			if err != nil {
				uc.logger.Error("Upload error for %s: %v", key, err)
				return fmt.Errorf("failed to upload image: %w", err)
			}
			results[i] = path
			return nil
		})
	}

	err := g.Wait()
	written := make([]string, 0, len(results))
	for _, key := range results {
		if key != "" {
			written = append(written, key)
		}
	}
	return written, err
}

// compensate deletes uploaded objects after a failed write, leaving alone
// any key still referenced by a kept image.
func (uc *postUseCase) compensate(keys []string, keep map[string]bool) {
	seen := make(map[string]bool, len(keys))
	for _, key := range keys {
		if keep[key] || seen[key] {
			continue
		}
		seen[key] = true
		if err := uc.store.Delete(context.Background(), key); err != nil {
			uc.logger.Warn("Failed to roll back upload %s: %v", key, err)
		}
	}
}

func (uc *postUseCase) publish(eventType string, post *entity.Post) {
	if uc.events == nil {
		return
	}
	payload := map[string]interface{}{
		"post_id": post.ID,
		"slug":    post.Slug,
		"nama":    post.Nama,
		"images":  len(post.Images),
	}
	if err := uc.events.PublishTripEvent(eventType, payload); err != nil {
		uc.logger.Error("Failed to publish %s for post %s: %v", eventType, post.ID, err)
	}
}

func objectKey(slug, filename string) string {
	return slug + "/" + filepath.Base(filepath.ToSlash(filename))
}

// duplicateName returns the first filename whose object key repeats within
// one submission.
func duplicateName(slug string, photos []*multipart.FileHeader) string {
	seen := make(map[string]bool, len(photos))
	for _, fh := range photos {
		key := objectKey(slug, fh.Filename)
		if seen[key] {
			return fh.Filename
		}
		seen[key] = true
	}
	return ""
}

// nonEmpty drops zero-length parts, which browsers send for an untouched
// file input.
func nonEmpty(photos []*multipart.FileHeader) []*multipart.FileHeader {
	out := make([]*multipart.FileHeader, 0, len(photos))
	for _, fh := range photos {
		if fh != nil && fh.Size > 0 {
			out = append(out, fh)
		}
	}
	return out
}

// checkImages returns the content type of each photo, or a validation error
// naming the first file that is not an image.
func checkImages(photos []*multipart.FileHeader) ([]string, error) {
	types := make([]string, len(photos))
	for i, fh := range photos {
		ct, err := contentType(fh)
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", fh.Filename, err)
		}
		if !strings.HasPrefix(ct, "image/") {
			return nil, invalid(msgNotAnImage, fh.Filename)
		}
		types[i] = ct
	}
	return types, nil
}

// contentType trusts the part header and sniffs the bytes only when the
// client sent nothing useful.
func contentType(fh *multipart.FileHeader) (string, error) {
	ct := fh.Header.Get("Content-Type")
	if ct != "" && ct != "application/octet-stream" {
		return ct, nil
	}

	src, err := fh.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	mt, err := mimetype.DetectReader(src)
	if err != nil {
		return "", err
	}
	return mt.String(), nil
}
