package services

import (
	apperrors "moneta/internal/errors"
	"moneta/internal/models"
	"moneta/internal/repository"
)

// categoryService handles category-related business logic.
type categoryService struct {
	categories repository.CategoryRepository
	defaults   Defaults
}

// NewCategoryService creates a new CategoryServicer.
func NewCategoryService(categories repository.CategoryRepository, defaults Defaults) CategoryServicer {
	return &categoryService{categories: categories, defaults: defaults}
}

// Create creates a new category; color and icon fall back to the configured
// defaults.
func (s *categoryService) Create(userID, name, description, color, icon string) (*models.Category, error) {
	if name == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "category name is required")
	}
	if userID == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "user ID is required")
	}

	if color == "" {
		color = s.defaults.Color
	}
	if icon == "" {
		icon = s.defaults.Icon
	}

	category := &models.Category{
		UserID:      userID,
		Name:        name,
		Description: description,
		Color:       color,
		Icon:        icon,
	}

	if err := s.categories.Create(category); err != nil {
		return nil, err
	}
	return category, nil
}

// GetByID retrieves a category by ID.
func (s *categoryService) GetByID(id string) (*models.Category, error) {
	category, err := s.categories.FindByID(id)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, apperrors.ErrResourceNotFound
	}
	return category, nil
}

// Update edits an existing category. Name and description go through the
// entity mutators so the update timestamp is refreshed.
func (s *categoryService) Update(id string, fields CategoryUpdateFields) (*models.Category, error) {
	category, err := s.categories.FindByID(id)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, apperrors.ErrResourceNotFound
	}

	if fields.Name != nil && *fields.Name != "" {
		category.Rename(*fields.Name)
	}
	if fields.Description != nil {
		category.SetDescription(*fields.Description)
	}
	if fields.Color != nil {
		category.Color = *fields.Color
	}
	if fields.Icon != nil {
		category.Icon = *fields.Icon
	}

	if err := s.categories.Update(category); err != nil {
		return nil, err
	}
	return category, nil
}

// Delete removes a category. Transactions referencing it keep their
// category_id; referential integrity is deliberately not enforced here.
func (s *categoryService) Delete(id string) error {
	category, err := s.categories.FindByID(id)
	if err != nil {
		return err
	}
	if category == nil {
		return apperrors.ErrResourceNotFound
	}
	return s.categories.Delete(id)
}

// List returns categories, scoped to a user when userID is non-empty.
func (s *categoryService) List(userID string) ([]models.Category, error) {
	if userID == "" {
		return s.categories.FindAll()
	}
	return s.categories.FindAllByUserID(userID)
}
