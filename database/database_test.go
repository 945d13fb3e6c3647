package database

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/demosite/blogshop-backend/models"
)

// newMockDB opens a GORM connection over a sqlmock connection. The default
// transaction wrap is skipped so expectations match single statements.
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

func TestDatabasePing(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectQuery(`SELECT 1`).
		WillReturnRows(sqlmock.NewRows([]string{"?column?"}).AddRow(1))

	d := New(db)
	require.NoError(t, d.Ping(context.Background()))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostRepoAdd(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPostRepo(db)

	mock.ExpectQuery(`INSERT INTO "posts"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))

	post := &models.Post{Title: "First", Content: "body", Author: "alice"}
	require.NoError(t, repo.Add(post))
	assert.Equal(t, int64(1), post.ID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostRepoDeleteIssuesSingleDelete(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPostRepo(db)

	// comments and tag associations are removed by the schema's cascade
	// rules, so the repo issues exactly one statement
	mock.ExpectExec(`DELETE FROM "posts" WHERE "posts"."id" = \$1`).
		WithArgs(int64(7)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.Delete(7))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostRepoFindPublished(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPostRepo(db)

	mock.ExpectQuery(`SELECT \* FROM "posts" WHERE is_published = \$1`).
		WithArgs(true).
		WillReturnRows(sqlmock.NewRows([]string{"id", "title", "content", "author", "is_published"}))

	posts, err := repo.FindPublished()
	require.NoError(t, err)
	assert.Empty(t, posts)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestTagRepoAdd(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewTagRepo(db)

	mock.ExpectQuery(`INSERT INTO "tags"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(3))

	tag := &models.Tag{Name: "go"}
	require.NoError(t, repo.Add(tag))
	assert.Equal(t, int64(3), tag.ID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestTagRepoAddDuplicateName(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewTagRepo(db)

	dupErr := errors.New(`ERROR: duplicate key value violates unique constraint "uni_tags_name" (SQLSTATE 23505)`)
	mock.ExpectQuery(`INSERT INTO "tags"`).WillReturnError(dupErr)

	err := repo.Add(&models.Tag{Name: "go"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate key")
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCommentRepoFindByPost(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewCommentRepo(db)

	mock.ExpectQuery(`SELECT \* FROM "comments" WHERE post_id = \$1`).
		WithArgs(int64(5)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "post_id", "author", "content"}).
			AddRow(1, 5, "bob", "nice post").
			AddRow(2, 5, "carol", "agreed"))

	comments, err := repo.FindByPost(5)
	require.NoError(t, err)
	require.Len(t, comments, 2)
	assert.Equal(t, int64(5), comments[0].PostID)
	assert.Equal(t, "bob", comments[0].Author)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestProductRepoFindByID(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewProductRepo(db)

	mock.ExpectQuery(`SELECT \* FROM "products" WHERE "products"."id" = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "description", "price", "stock"}).
			AddRow(2, "Mug", "ceramic mug", "9.99", 10))

	product, err := repo.FindByID(2)
	require.NoError(t, err)
	assert.Equal(t, "Mug", product.Name)
	assert.True(t, product.Price.Equal(decimal.RequireFromString("9.99")))
	assert.Equal(t, 10, product.Stock)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestProductRepoDeleteIssuesSingleDelete(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewProductRepo(db)

	// orders are removed by the cascade rule on their product reference
	mock.ExpectExec(`DELETE FROM "products" WHERE "products"."id" = \$1`).
		WithArgs(int64(2)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.Delete(2))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestOrderRepoAdd(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewOrderRepo(db)

	mock.ExpectQuery(`INSERT INTO "orders"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(11))

	order := &models.Order{
		CustomerName: "dave",
		Total:        decimal.RequireFromString("19.98"),
		ProductID:    2,
	}
	require.NoError(t, repo.Add(order))
	assert.Equal(t, int64(11), order.ID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestOrderRepoFindByProduct(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewOrderRepo(db)

	mock.ExpectQuery(`SELECT \* FROM "orders" WHERE product_id = \$1`).
		WithArgs(int64(2)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "customer_name", "total", "product_id"}).
			AddRow(11, "dave", "19.98", 2))

	orders, err := repo.FindByProduct(2)
	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, "dave", orders[0].CustomerName)
	require.NoError(t, mock.ExpectationsWereMet())
}
