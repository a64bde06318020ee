package services

import (
	"qa-forum/models"
	"qa-forum/repositories"
)

type TagService interface {
	GetTags() ([]models.TagRating, error)
	GetTag(id uint) (*models.Tag, error)
}

type tagService struct {
	tagRepo repositories.TagRepository
}

func NewTagService(tagRepo repositories.TagRepository) TagService {
	return &tagService{tagRepo: tagRepo}
}

// GetTags lists all tags in popular-first order.
func (s *tagService) GetTags() ([]models.TagRating, error) {
	tags, err := s.tagRepo.GetAll()
	if err != nil {
		return nil, err
	}
	// reuse the popularity ordering for the full listing
	return s.tagRepo.GetPopular(len(tags))
}

func (s *tagService) GetTag(id uint) (*models.Tag, error) {
	return s.tagRepo.GetByID(id)
}
