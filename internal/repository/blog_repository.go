package repository

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
	"seungpyo.lee/BlogBackend/internal/domain"
)

type blogRepository struct {
	db *gorm.DB
}

// NewBlogRepository creates a new BlogRepository with the given GORM DB instance.
func NewBlogRepository(db *gorm.DB) domain.BlogRepository {
	return &blogRepository{db: db}
}

// Create inserts a new blog into the database.
func (r *blogRepository) Create(blog *domain.Blog) error {
	if err := r.db.Omit("Creator").Create(blog).Error; err != nil {
		return fmt.Errorf("failed to create blog: %w", err)
	}
	return nil
}

// GetByID retrieves a blog with its creator (and the creator's blogs).
func (r *blogRepository) GetByID(id uint) (*domain.Blog, error) {
	var blog domain.Blog
	if err := r.db.Preload("Creator.Blogs").First(&blog, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrBlogNotFound
		}
		return nil, fmt.Errorf("failed to get blog: %w", err)
	}
	return &blog, nil
}

// List returns every blog with its creator.
func (r *blogRepository) List() ([]*domain.Blog, error) {
	var blogs []*domain.Blog
	if err := r.db.Preload("Creator.Blogs").Order("id").Find(&blogs).Error; err != nil {
		return nil, fmt.Errorf("failed to list blogs: %w", err)
	}
	return blogs, nil
}

// Update replaces title and body of an existing blog.
func (r *blogRepository) Update(id uint, title, body string) error {
	result := r.db.Model(&domain.Blog{}).Where("id = ?", id).Updates(map[string]interface{}{
		"title": title,
		"body":  body,
	})
	if result.Error != nil {
		return fmt.Errorf("failed to update blog: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrBlogNotFound
	}
	return nil
}

// Delete removes a blog by its ID from the database.
func (r *blogRepository) Delete(id uint) error {
	result := r.db.Delete(&domain.Blog{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete blog: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrBlogNotFound
	}
	return nil
}
