package models

import "time"

// Category represents a spending category for classifying transactions.
type Category struct {
	Base
	UserID      string `gorm:"type:uuid;not null;index" json:"user_id"`
	Name        string `gorm:"not null" json:"name"`
	Description string `json:"description"`
	Color       string `json:"color"`
	Icon        string `json:"icon"`
}

// Rename sets the category name.
func (c *Category) Rename(name string) {
	c.Name = name
	c.UpdatedAt = time.Now()
}

// SetDescription sets the category description.
func (c *Category) SetDescription(description string) {
	c.Description = description
	c.UpdatedAt = time.Now()
}
