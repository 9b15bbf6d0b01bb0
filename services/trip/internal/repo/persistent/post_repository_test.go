package persistent

import (
	"context"
	"errors"
	"testing"
	"time"

	"trip-cms/services/trip/internal/entity"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

const testPostID = "0b8f7c1e-4a8e-4f49-9a55-0c7f9e1f2a10"

func setupMockDB(t *testing.T) (PostRepository, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, sqlMock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	return NewPostRepository(db), sqlMock
}

func uniqueViolation() error {
	return &pgconn.PgError{Code: "23505", Message: "duplicate key value violates unique constraint"}
}

func testPost() *entity.Post {
	return &entity.Post{
		ID:        testPostID,
		Nama:      "Lombok 3D2N",
		Slug:      "lombok-3d2n",
		Lokasi:    "Lombok",
		JenisTrip: entity.TripTypeOpen,
		Harga:     []string{"350000"},
		Descriptions: []entity.Description{
			{Description: "Tiga hari keliling Lombok"},
		},
		Itineraries: []entity.ItineraryDay{
			{Title: "Hari 1", Items: []entity.ItineraryItem{{Time: "08:00", Details: "Penjemputan"}}},
		},
	}
}

func postRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "nama", "slug", "lokasi", "jenistrip", "highlight", "destinasi",
		"fasilitas", "harga", "descriptions", "itineraries", "created_at",
	}).AddRow(
		testPostID, "Lombok 3D2N", "lombok-3d2n", "Lombok", "Open", "{}", "{}",
		"{}", "{350000}", `[{"description":"Tiga hari keliling Lombok"}]`,
		`[{"title":"Hari 1","items":[{"time":"08:00","details":"Penjemputan"}]}]`,
		time.Date(2024, 5, 1, 8, 0, 0, 0, time.UTC),
	)
}

func TestCreate_InsertsPostAndImagesInOneTransaction(t *testing.T) {
	repo, sqlMock := setupMockDB(t)
	post := testPost()
	post.Images = []entity.Image{{URL: "lombok-3d2n/a.png"}, {URL: "lombok-3d2n/b.png"}}

	sqlMock.ExpectBegin()
	sqlMock.ExpectExec(`INSERT INTO "posts"`).WillReturnResult(sqlmock.NewResult(0, 1))
	sqlMock.ExpectExec(`INSERT INTO "images"`).
		WithArgs(sqlmock.AnyArg(), "lombok-3d2n/a.png", testPostID).
		WillReturnResult(sqlmock.NewResult(0, 1))
	sqlMock.ExpectExec(`INSERT INTO "images"`).
		WithArgs(sqlmock.AnyArg(), "lombok-3d2n/b.png", testPostID).
		WillReturnResult(sqlmock.NewResult(0, 1))
	sqlMock.ExpectCommit()

	err := repo.Create(context.Background(), post)

	require.NoError(t, err)
	require.Len(t, post.Images, 2)
	assert.Equal(t, testPostID, post.Images[0].PostID)
	assert.NotEmpty(t, post.Images[0].ID)
	assert.NoError(t, sqlMock.ExpectationsWereMet())
}

func TestCreate_DuplicateSlug(t *testing.T) {
	repo, sqlMock := setupMockDB(t)

	sqlMock.ExpectBegin()
	sqlMock.ExpectExec(`INSERT INTO "posts"`).WillReturnError(uniqueViolation())
	sqlMock.ExpectRollback()

	err := repo.Create(context.Background(), testPost())

	assert.ErrorIs(t, err, ErrSlugTaken)
	assert.NoError(t, sqlMock.ExpectationsWereMet())
}

func TestCreate_ImageInsertFailureRollsBack(t *testing.T) {
	repo, sqlMock := setupMockDB(t)
	post := testPost()
	post.Images = []entity.Image{{URL: "lombok-3d2n/a.png"}}

	sqlMock.ExpectBegin()
	sqlMock.ExpectExec(`INSERT INTO "posts"`).WillReturnResult(sqlmock.NewResult(0, 1))
	sqlMock.ExpectExec(`INSERT INTO "images"`).WillReturnError(errors.New("connection reset"))
	sqlMock.ExpectRollback()

	err := repo.Create(context.Background(), post)

	assert.EqualError(t, err, "connection reset")
	assert.NoError(t, sqlMock.ExpectationsWereMet())
}

func TestUpdateWithImages_Success(t *testing.T) {
	repo, sqlMock := setupMockDB(t)

	sqlMock.ExpectBegin()
	sqlMock.ExpectExec(`DELETE FROM "images" WHERE post_id = \$1 AND id IN \(\$2\)`).
		WithArgs(testPostID, "img-2").
		WillReturnResult(sqlmock.NewResult(0, 1))
	sqlMock.ExpectExec(`INSERT INTO "images"`).
		WithArgs(sqlmock.AnyArg(), "lombok-3d2n/c.png", testPostID).
		WillReturnResult(sqlmock.NewResult(0, 1))
	sqlMock.ExpectExec(`UPDATE "posts" SET "nama"=\$1,"slug"=\$2,"lokasi"=\$3,"jenistrip"=\$4,"highlight"=\$5,"destinasi"=\$6,"fasilitas"=\$7,"harga"=\$8,"descriptions"=\$9,"itineraries"=\$10 WHERE`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	sqlMock.ExpectQuery(`SELECT \* FROM "posts" WHERE id = \$1`).
		WillReturnRows(postRows())
	sqlMock.ExpectQuery(`SELECT \* FROM "images" WHERE "images"."post_id" = \$1 ORDER BY images.url ASC`).
		WithArgs(testPostID).
		WillReturnRows(sqlmock.NewRows([]string{"id", "url", "post_id"}).
			AddRow("img-1", "lombok-3d2n/a.png", testPostID).
			AddRow("img-3", "lombok-3d2n/c.png", testPostID))
	sqlMock.ExpectCommit()

	updated, err := repo.UpdateWithImages(context.Background(), testPost(), []string{"img-2"}, []string{"lombok-3d2n/c.png"})

	require.NoError(t, err)
	assert.Equal(t, "lombok-3d2n", updated.Slug)
	assert.Equal(t, []string{"350000"}, updated.Harga)
	require.Len(t, updated.Itineraries, 1)
	assert.Equal(t, "Hari 1", updated.Itineraries[0].Title)
	require.Len(t, updated.Images, 2)
	assert.Equal(t, "lombok-3d2n/c.png", updated.Images[1].URL)
	assert.NoError(t, sqlMock.ExpectationsWereMet())
}

func TestUpdateWithImages_NotFoundRollsBack(t *testing.T) {
	repo, sqlMock := setupMockDB(t)

	sqlMock.ExpectBegin()
	sqlMock.ExpectExec(`UPDATE "posts"`).WillReturnResult(sqlmock.NewResult(0, 0))
	sqlMock.ExpectRollback()

	_, err := repo.UpdateWithImages(context.Background(), testPost(), nil, nil)

	assert.ErrorIs(t, err, ErrPostNotFound)
	assert.NoError(t, sqlMock.ExpectationsWereMet())
}

func TestUpdateWithImages_InsertFailureRollsBack(t *testing.T) {
	repo, sqlMock := setupMockDB(t)

	sqlMock.ExpectBegin()
	sqlMock.ExpectExec(`DELETE FROM "images"`).WillReturnResult(sqlmock.NewResult(0, 1))
	sqlMock.ExpectExec(`INSERT INTO "images"`).WillReturnError(uniqueViolation())
	sqlMock.ExpectRollback()

	_, err := repo.UpdateWithImages(context.Background(), testPost(), []string{"img-2"}, []string{"lombok-3d2n/a.png"})

	require.Error(t, err)
	assert.ErrorIs(t, err, gorm.ErrDuplicatedKey)
	assert.NoError(t, sqlMock.ExpectationsWereMet())
}

func TestUpdateWithImages_SlugTaken(t *testing.T) {
	repo, sqlMock := setupMockDB(t)

	sqlMock.ExpectBegin()
	sqlMock.ExpectExec(`UPDATE "posts"`).WillReturnError(uniqueViolation())
	sqlMock.ExpectRollback()

	_, err := repo.UpdateWithImages(context.Background(), testPost(), nil, nil)

	assert.ErrorIs(t, err, ErrSlugTaken)
	assert.NoError(t, sqlMock.ExpectationsWereMet())
}

func TestDelete_RemovesImagesThenPost(t *testing.T) {
	repo, sqlMock := setupMockDB(t)

	sqlMock.ExpectBegin()
	sqlMock.ExpectExec(`DELETE FROM "images" WHERE post_id = \$1`).
		WithArgs(testPostID).
		WillReturnResult(sqlmock.NewResult(0, 2))
	sqlMock.ExpectExec(`DELETE FROM "posts" WHERE id = \$1`).
		WithArgs(testPostID).
		WillReturnResult(sqlmock.NewResult(0, 1))
	sqlMock.ExpectCommit()

	err := repo.Delete(context.Background(), testPostID)

	require.NoError(t, err)
	assert.NoError(t, sqlMock.ExpectationsWereMet())
}

func TestDelete_NotFoundRollsBack(t *testing.T) {
	repo, sqlMock := setupMockDB(t)

	sqlMock.ExpectBegin()
	sqlMock.ExpectExec(`DELETE FROM "images"`).WillReturnResult(sqlmock.NewResult(0, 0))
	sqlMock.ExpectExec(`DELETE FROM "posts"`).WillReturnResult(sqlmock.NewResult(0, 0))
	sqlMock.ExpectRollback()

	err := repo.Delete(context.Background(), testPostID)

	assert.ErrorIs(t, err, ErrPostNotFound)
	assert.NoError(t, sqlMock.ExpectationsWereMet())
}
