package models

import "time"

// Category groups products. Name doubles as a natural key: product
// creation may auto-register a category by name, and product records
// may reference a category by either its ID or its name.
type Category struct {
	ID          string    `json:"id" gorm:"primaryKey;type:varchar(36)"`
	Name        string    `json:"name" gorm:"uniqueIndex;type:varchar(100)" validate:"required"`
	Description string    `json:"description" gorm:"type:varchar(500)"`
	ParentID    string    `json:"parentId,omitempty" gorm:"type:varchar(36)"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// Matches reports whether ref identifies this category by ID or name.
func (c *Category) Matches(ref string) bool {
	return c.ID == ref || c.Name == ref
}
