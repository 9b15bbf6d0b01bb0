package http

import (
	"errors"
	"mime/multipart"
	"net/http"
	"sort"
	"strconv"
	"strings"

	"trip-cms/pkg/logger"
	"trip-cms/pkg/utils"
	"trip-cms/services/trip/internal/entity"
	"trip-cms/services/trip/internal/usecase"

	"github.com/gin-gonic/gin"
)

const photosField = "photos"

type PostHandler struct {
	postUseCase    usecase.PostUseCase
	maxUploadBytes int64
	logger         *logger.Logger
}

func NewPostHandler(postUseCase usecase.PostUseCase, maxUploadBytes int64, logger *logger.Logger) *PostHandler {
	return &PostHandler{
		postUseCase:    postUseCase,
		maxUploadBytes: maxUploadBytes,
		logger:         logger,
	}
}

// PostResponse is a post as the listing pages render it.
type PostResponse struct {
	*entity.Post
	Tanggal string `json:"tanggal"`
}

func (h *PostHandler) formatPostResponse(post *entity.Post) PostResponse {
	return PostResponse{Post: post, Tanggal: utils.FormatDate(post.CreatedAt)}
}

type DeletePostRequest struct {
	ID string `json:"id"`
}

// CreatePost godoc
// @Summary      Create a trip post
// @Description  Create a trip post with 1 to 5 photos. List fields are comma separated, itinerary and description are JSON strings.
// @Tags         posts
// @Accept       multipart/form-data
// @Produce      json
// @Param        nama formData string true "Trip name"
// @Param        lokasi formData string true "Location"
// @Param        jenistrip formData string true "Trip type" Enums(Private, Open)
// @Param        highlight formData string false "Comma separated highlights"
// @Param        destinasi formData string false "Comma separated destinations"
// @Param        fasilitas formData string false "Comma separated facilities"
// @Param        harga formData string false "Comma separated prices, digits only"
// @Param        itinerary formData string true "JSON array of {title, items: [{time, details}]}"
// @Param        description formData string true "JSON array of {description}"
// @Param        photos formData file true "Photos (images only, up to 5)"
// @Success      201  {object}  entity.Post
// @Failure      400  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /create-post [post]
func (h *PostHandler) CreatePost(c *gin.Context) {
	form, ok := h.parseForm(c)
	if !ok {
		return
	}

	post, err := h.postUseCase.CreatePost(c.Request.Context(), postInput(c), collectPhotos(form))
	if err != nil {
		var verr *usecase.ValidationError
		if errors.As(err, &verr) {
			c.JSON(http.StatusBadRequest, gin.H{"message": verr.Message})
			return
		}
		h.logger.Error("Error creating post: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to create post", "error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, post)
}

// UpdatePost godoc
// @Summary      Update a trip post
// @Description  Update a trip post found by oldSlug. Images whose id is missing from existingImages are removed, new photos are added.
// @Tags         posts
// @Accept       multipart/form-data
// @Produce      json
// @Param        oldSlug formData string false "Current slug of the post"
// @Param        nama formData string true "Trip name"
// @Param        lokasi formData string true "Location"
// @Param        jenistrip formData string true "Trip type" Enums(Private, Open)
// @Param        highlight formData string false "Comma separated highlights"
// @Param        destinasi formData string false "Comma separated destinations"
// @Param        fasilitas formData string false "Comma separated facilities"
// @Param        harga formData string false "Comma separated prices, digits only"
// @Param        itinerary formData string true "JSON array of {title, items: [{time, details}]}"
// @Param        description formData string true "JSON array of {description}"
// @Param        existingImages formData string false "JSON array of image ids to keep"
// @Param        photos formData file false "New photos"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /update-post [put]
func (h *PostHandler) UpdatePost(c *gin.Context) {
	form, ok := h.parseForm(c)
	if !ok {
		return
	}

	in := usecase.UpdatePostInput{
		PostInput:      postInput(c),
		OldSlug:        c.PostForm("oldSlug"),
		ExistingImages: c.PostForm("existingImages"),
	}

	post, err := h.postUseCase.UpdatePost(c.Request.Context(), in, collectPhotos(form))
	if err != nil {
		var verr *usecase.ValidationError
		switch {
		case errors.As(err, &verr):
			c.JSON(http.StatusBadRequest, gin.H{"message": verr.Message})
		case errors.Is(err, usecase.ErrPostNotFound):
			c.JSON(http.StatusNotFound, gin.H{"message": "Post tidak ditemukan"})
		default:
			h.logger.Error("Error updating post: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Terjadi kesalahan saat mengupdate post"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Post berhasil diupdate", "post": post})
}

// DeletePost godoc
// @Summary      Delete a trip post
// @Description  Delete a post, its image rows and its stored photos
// @Tags         posts
// @Accept       json
// @Produce      json
// @Param        request body DeletePostRequest true "Post id"
// @Success      200  {object}  map[string]string
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /delete-post [delete]
func (h *PostHandler) DeletePost(c *gin.Context) {
	if c.ContentType() != "application/json" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Content-Type must be application/json"})
		return
	}

	var req DeletePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body"})
		return
	}

	err := h.postUseCase.DeletePost(c.Request.Context(), req.ID)
	if err != nil {
		var serr *usecase.StorageError
		switch {
		case errors.Is(err, usecase.ErrPostNotFound):
			c.JSON(http.StatusNotFound, gin.H{"message": "Post not found"})
		case errors.As(err, &serr):
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Error deleting image: " + serr.Key})
		default:
			h.logger.Error("Error deleting post: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to delete the post"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Post and images deleted successfully!"})
}

// ListPosts godoc
// @Summary      List trip posts
// @Description  All posts, oldest first, with their images
// @Tags         posts
// @Produce      json
// @Success      200  {array}   PostResponse
// @Failure      500  {object}  map[string]string
// @Router       /posts [get]
func (h *PostHandler) ListPosts(c *gin.Context) {
	posts, err := h.postUseCase.ListPosts(c.Request.Context())
	if err != nil {
		h.logger.Error("Failed to list posts: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch posts"})
		return
	}

	response := make([]PostResponse, len(posts))
	for i, post := range posts {
		response[i] = h.formatPostResponse(post)
	}
	c.JSON(http.StatusOK, response)
}

// GetPost godoc
// @Summary      Get a trip post
// @Tags         posts
// @Produce      json
// @Param        slug path string true "Post slug"
// @Success      200  {object}  PostResponse
// @Failure      404  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /posts/{slug} [get]
func (h *PostHandler) GetPost(c *gin.Context) {
	post, err := h.postUseCase.GetPostBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		if errors.Is(err, usecase.ErrPostNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Post not found"})
			return
		}
		h.logger.Error("Failed to get post: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch post"})
		return
	}

	c.JSON(http.StatusOK, h.formatPostResponse(post))
}

func (h *PostHandler) parseForm(c *gin.Context) (*multipart.Form, bool) {
	if h.maxUploadBytes > 0 {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.maxUploadBytes)
	}

	form, err := c.MultipartForm()
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			c.JSON(http.StatusRequestEntityTooLarge, gin.H{"message": "Ukuran upload melebihi batas"})
			return nil, false
		}
		c.JSON(http.StatusBadRequest, gin.H{"message": "Form tidak valid"})
		return nil, false
	}
	return form, true
}

func postInput(c *gin.Context) usecase.PostInput {
	return usecase.PostInput{
		Nama:        c.PostForm("nama"),
		Lokasi:      c.PostForm("lokasi"),
		JenisTrip:   c.PostForm("jenistrip"),
		Highlight:   c.PostForm("highlight"),
		Destinasi:   c.PostForm("destinasi"),
		Fasilitas:   c.PostForm("fasilitas"),
		Harga:       c.PostForm("harga"),
		Itinerary:   c.PostForm("itinerary"),
		Description: c.PostForm("description"),
	}
}

// collectPhotos returns the files sent as "photos" followed by the ones sent
// as "photos[0]", "photos[1]", ... in index order. The create form uses the
// indexed names.
func collectPhotos(form *multipart.Form) []*multipart.FileHeader {
	files := append([]*multipart.FileHeader{}, form.File[photosField]...)

	type indexed struct {
		n     int
		files []*multipart.FileHeader
	}
	var extra []indexed
	for key, fhs := range form.File {
		if !strings.HasPrefix(key, photosField+"[") || !strings.HasSuffix(key, "]") {
			continue
		}
		n, err := strconv.Atoi(key[len(photosField)+1 : len(key)-1])
		if err != nil {
			continue
		}
		extra = append(extra, indexed{n: n, files: fhs})
	}
	sort.Slice(extra, func(i, j int) bool { return extra[i].n < extra[j].n })

	for _, e := range extra {
		files = append(files, e.files...)
	}
	return files
}
