package models

// Tag represents a label shared across posts. Names are unique storage-wide;
// the post association lives in the tag_posts join table.
type Tag struct {
	ID   int64  `json:"id" db:"id" gorm:"primaryKey;autoIncrement;not null"`
	Name string `json:"name" db:"name" gorm:"type:varchar(50);not null;unique"`

	Posts []Post `json:"posts,omitempty" gorm:"many2many:tag_posts;constraint:OnDelete:CASCADE"`
}
