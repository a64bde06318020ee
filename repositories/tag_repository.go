package repositories

import (
	"qa-forum/models"

	"gorm.io/gorm"
)

type TagRepository interface {
	Create(tag *models.Tag) error
	GetByName(name string) (*models.Tag, error)
	GetByID(id uint) (*models.Tag, error)
	GetAll() ([]models.Tag, error)
	GetPopular(count int) ([]models.TagRating, error)
}

type tagRepository struct {
	db *gorm.DB
}

func NewTagRepository(db *gorm.DB) TagRepository {
	return &tagRepository{db: db}
}

func (r *tagRepository) Create(tag *models.Tag) error {
	return r.db.Create(tag).Error
}

// GetByName matches case-insensitively; tag name uniqueness is enforced on
// lower(name).
func (r *tagRepository) GetByName(name string) (*models.Tag, error) {
	var tag models.Tag
	err := r.db.Where("LOWER(name) = LOWER(?)", name).First(&tag).Error
	return &tag, err
}

func (r *tagRepository) GetByID(id uint) (*models.Tag, error) {
	var tag models.Tag
	err := r.db.First(&tag, id).Error
	return &tag, err
}

func (r *tagRepository) GetAll() ([]models.Tag, error) {
	var tags []models.Tag
	err := r.db.Order("name asc").Find(&tags).Error
	return tags, err
}

// GetPopular orders tags by the summed rating_total of their active questions,
// descending. Tags with no questions contribute zero and still appear.
func (r *tagRepository) GetPopular(count int) ([]models.TagRating, error) {
	var results []models.TagRating

	query := `
		SELECT
			tags.id,
			tags.name,
			tags.slug,
			tags.created_at,
			tags.updated_at,
			COALESCE(SUM(questions.rating_total), 0) AS rating_total
		FROM tags
		LEFT JOIN question_tags ON question_tags.tag_id = tags.id
		LEFT JOIN questions ON questions.id = question_tags.question_id AND questions.is_active = TRUE
		GROUP BY tags.id
		ORDER BY rating_total DESC
		LIMIT ?
	`

	err := r.db.Raw(query, count).Scan(&results).Error
	return results, err
}
