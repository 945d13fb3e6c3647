package models

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm/schema"
)

func parseSchema(t *testing.T, model interface{}) *schema.Schema {
	t.Helper()
	s, err := schema.Parse(model, &sync.Map{}, schema.NamingStrategy{})
	require.NoError(t, err)
	return s
}

func TestPostSchema(t *testing.T) {
	s := parseSchema(t, &Post{})

	title := s.FieldsByName["Title"]
	require.NotNil(t, title)
	assert.Equal(t, "varchar(200)", string(title.DataType))
	assert.True(t, title.NotNull)

	author := s.FieldsByName["Author"]
	require.NotNil(t, author)
	assert.Equal(t, "varchar(100)", string(author.DataType))

	published := s.FieldsByName["IsPublished"]
	require.NotNil(t, published)
	assert.Equal(t, "false", published.DefaultValue)
}

func TestPostPublishedDateIsWriteOnce(t *testing.T) {
	s := parseSchema(t, &Post{})

	field := s.FieldsByName["PublishedDate"]
	require.NotNil(t, field)

	// set by the database at insert time, never touched on update
	assert.NotZero(t, field.AutoCreateTime)
	assert.True(t, field.Creatable)
	assert.False(t, field.Updatable)
	assert.True(t, field.NotNull)
}

func TestPostCommentCascade(t *testing.T) {
	s := parseSchema(t, &Post{})

	rel, ok := s.Relationships.Relations["Comments"]
	require.True(t, ok)
	assert.Equal(t, schema.HasMany, rel.Type)

	constraint := rel.ParseConstraint()
	require.NotNil(t, constraint)
	assert.Equal(t, "CASCADE", constraint.OnDelete)
}

func TestPostTagManyToMany(t *testing.T) {
	s := parseSchema(t, &Post{})

	rel, ok := s.Relationships.Relations["Tags"]
	require.True(t, ok)
	assert.Equal(t, schema.Many2Many, rel.Type)
	require.NotNil(t, rel.JoinTable)
	assert.Equal(t, "tag_posts", rel.JoinTable.Table)
}

func TestCommentPostReferenceNotNull(t *testing.T) {
	s := parseSchema(t, &Comment{})

	postID := s.FieldsByName["PostID"]
	require.NotNil(t, postID)
	assert.True(t, postID.NotNull)
}

func TestTagNameUnique(t *testing.T) {
	s := parseSchema(t, &Tag{})

	name := s.FieldsByName["Name"]
	require.NotNil(t, name)
	assert.Equal(t, "varchar(50)", string(name.DataType))
	assert.True(t, name.Unique)
	assert.True(t, name.NotNull)
}

func TestProductSchema(t *testing.T) {
	s := parseSchema(t, &Product{})

	name := s.FieldsByName["Name"]
	require.NotNil(t, name)
	assert.Equal(t, "varchar(200)", string(name.DataType))

	price := s.FieldsByName["Price"]
	require.NotNil(t, price)
	assert.Equal(t, "decimal(10,2)", string(price.DataType))
	assert.True(t, price.NotNull)

	stock := s.FieldsByName["Stock"]
	require.NotNil(t, stock)
	assert.Equal(t, "0", stock.DefaultValue)
}

func TestProductOrderCascade(t *testing.T) {
	s := parseSchema(t, &Product{})

	rel, ok := s.Relationships.Relations["Orders"]
	require.True(t, ok)
	assert.Equal(t, schema.HasMany, rel.Type)

	constraint := rel.ParseConstraint()
	require.NotNil(t, constraint)
	assert.Equal(t, "CASCADE", constraint.OnDelete)
}

func TestOrderSchema(t *testing.T) {
	s := parseSchema(t, &Order{})

	customer := s.FieldsByName["CustomerName"]
	require.NotNil(t, customer)
	assert.Equal(t, "varchar(200)", string(customer.DataType))

	total := s.FieldsByName["Total"]
	require.NotNil(t, total)
	assert.Equal(t, "decimal(10,2)", string(total.DataType))

	productID := s.FieldsByName["ProductID"]
	require.NotNil(t, productID)
	assert.True(t, productID.NotNull)
}

func TestOrderDateIsWriteOnce(t *testing.T) {
	s := parseSchema(t, &Order{})

	field := s.FieldsByName["OrderDate"]
	require.NotNil(t, field)
	assert.NotZero(t, field.AutoCreateTime)
	assert.True(t, field.Creatable)
	assert.False(t, field.Updatable)
}
