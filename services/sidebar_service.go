package services

import (
	"time"

	"qa-forum/cache"
	"qa-forum/models"
	"qa-forum/repositories"

	"golang.org/x/sync/singleflight"
)

const (
	cacheKeyBestMembers = "best_members"
	cacheKeyPopularTags = "popular_tags"

	bestMembersCount = 5
	popularTagsCount = 10
)

// SidebarService serves the two cached global aggregates shown in shared page
// furniture. Reads go through the TTL cache; misses recompute from the
// ranking queries and repopulate. There is no write-path invalidation — the
// staleness window is accepted.
type SidebarService interface {
	BestMembers() ([]models.User, error)
	PopularTags() ([]models.TagRating, error)
}

type sidebarService struct {
	userRepo repositories.UserRepository
	tagRepo  repositories.TagRepository
	store    *cache.Store
	ttl      time.Duration
	group    singleflight.Group
}

func NewSidebarService(userRepo repositories.UserRepository, tagRepo repositories.TagRepository, store *cache.Store, ttl time.Duration) SidebarService {
	return &sidebarService{
		userRepo: userRepo,
		tagRepo:  tagRepo,
		store:    store,
		ttl:      ttl,
	}
}

func (s *sidebarService) BestMembers() ([]models.User, error) {
	if cached, ok := s.store.Get(cacheKeyBestMembers); ok {
		return cached.([]models.User), nil
	}

	// singleflight collapses concurrent misses into one recomputation
	result, err, _ := s.group.Do(cacheKeyBestMembers, func() (interface{}, error) {
		members, err := s.userRepo.GetBestMembers(bestMembersCount)
		if err != nil {
			return nil, err
		}
		s.store.Set(cacheKeyBestMembers, members, s.ttl)
		return members, nil
	})
	if err != nil {
		return nil, err
	}

	return result.([]models.User), nil
}

func (s *sidebarService) PopularTags() ([]models.TagRating, error) {
	if cached, ok := s.store.Get(cacheKeyPopularTags); ok {
		return cached.([]models.TagRating), nil
	}

	result, err, _ := s.group.Do(cacheKeyPopularTags, func() (interface{}, error) {
		tags, err := s.tagRepo.GetPopular(popularTagsCount)
		if err != nil {
			return nil, err
		}
		s.store.Set(cacheKeyPopularTags, tags, s.ttl)
		return tags, nil
	})
	if err != nil {
		return nil, err
	}

	return result.([]models.TagRating), nil
}
