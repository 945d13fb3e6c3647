package api

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/demosite/blogshop-backend/database"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	conn, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{
		Conn:                 conn,
		PreferSimpleProtocol: true,
	}), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	return db, mock
}

func TestGetPostInvalidID(t *testing.T) {
	h := newPostHandler(database.NewPostRepo(nil))

	r := chi.NewRouter()
	r.Get("/post/{postID}", h.getPost())

	req := httptest.NewRequest(http.MethodGet, "/post/not-a-number", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "invalid postID")
}

func TestCreatePostMissingTitle(t *testing.T) {
	h := newPostHandler(database.NewPostRepo(nil))

	r := chi.NewRouter()
	r.Post("/post", h.createPost())

	req := httptest.NewRequest(http.MethodPost, "/post", strings.NewReader(`{"content":"body","author":"alice"}`))
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "title")
}

func TestCreateTagMissingName(t *testing.T) {
	h := newTagHandler(database.NewTagRepo(nil), database.NewPostRepo(nil))

	r := chi.NewRouter()
	r.Post("/tag", h.createTag())

	req := httptest.NewRequest(http.MethodPost, "/tag", strings.NewReader(`{}`))
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "name")
}

func TestCreateOrderMissingProduct(t *testing.T) {
	h := newOrderHandler(database.NewOrderRepo(nil), database.NewProductRepo(nil))

	r := chi.NewRouter()
	r.Post("/order", h.createOrder())

	req := httptest.NewRequest(http.MethodPost, "/order", strings.NewReader(`{"customerName":"dave","total":"19.98"}`))
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "productId")
}

func TestGetProduct(t *testing.T) {
	db, mock := newMockDB(t)
	h := newProductHandler(database.NewProductRepo(db))

	mock.ExpectQuery(`SELECT \* FROM "products" WHERE "products"."id" = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "description", "price", "stock"}).
			AddRow(2, "Mug", "ceramic mug", "9.99", 10))

	r := chi.NewRouter()
	r.Get("/product/{productID}", h.getProduct())

	req := httptest.NewRequest(http.MethodGet, "/product/2", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Mug")
	assert.Contains(t, rec.Body.String(), "9.99")
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGetProductNotFound(t *testing.T) {
	db, mock := newMockDB(t)
	h := newProductHandler(database.NewProductRepo(db))

	mock.ExpectQuery(`SELECT \* FROM "products" WHERE "products"."id" = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "description", "price", "stock"}))

	r := chi.NewRouter()
	r.Get("/product/{productID}", h.getProduct())

	req := httptest.NewRequest(http.MethodGet, "/product/99", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRequestIDMiddleware(t *testing.T) {
	var seen string
	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = ctxGetRequestID(r.Context())
	})

	rec := httptest.NewRecorder()
	RequestIDMiddleware(inner).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.NotEmpty(t, seen)
	assert.Equal(t, seen, rec.Header().Get("X-Request-ID"))
}

func TestRequestIDMiddlewarePreservesHeader(t *testing.T) {
	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Request-ID", "abc-123")
	rec := httptest.NewRecorder()
	RequestIDMiddleware(inner).ServeHTTP(rec, req)

	assert.Equal(t, "abc-123", rec.Header().Get("X-Request-ID"))
}
