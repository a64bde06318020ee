package services

import (
	"errors"
	"testing"
	"time"

	"qa-forum/cache"
	"qa-forum/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSidebarBestMembersReadThrough(t *testing.T) {
	userRepo := &fakeUserRepo{bestMembers: []models.User{{ID: 1}, {ID: 2}}}
	tagRepo := &fakeTagRepo{}
	svc := NewSidebarService(userRepo, tagRepo, cache.New(), time.Hour)

	first, err := svc.BestMembers()
	require.NoError(t, err)
	assert.Len(t, first, 2)
	assert.Equal(t, 1, userRepo.bestCalls)

	// second read is served from cache
	second, err := svc.BestMembers()
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Equal(t, 1, userRepo.bestCalls)
}

func TestSidebarPopularTagsReadThrough(t *testing.T) {
	userRepo := &fakeUserRepo{}
	tagRepo := &fakeTagRepo{popular: []models.TagRating{
		{Tag: models.Tag{ID: 1, Name: "rust"}, RatingTotal: 20},
		{Tag: models.Tag{ID: 2, Name: "python"}, RatingTotal: 8},
	}}
	svc := NewSidebarService(userRepo, tagRepo, cache.New(), time.Hour)

	tags, err := svc.PopularTags()
	require.NoError(t, err)
	require.Len(t, tags, 2)
	assert.Equal(t, "rust", tags[0].Name)

	_, err = svc.PopularTags()
	require.NoError(t, err)
	assert.Equal(t, 1, tagRepo.popularCalls)
}

func TestSidebarComputeFailureIsNotCached(t *testing.T) {
	userRepo := &fakeUserRepo{bestErr: errors.New("db down")}
	tagRepo := &fakeTagRepo{}
	svc := NewSidebarService(userRepo, tagRepo, cache.New(), time.Hour)

	_, err := svc.BestMembers()
	assert.Error(t, err)

	// recovery: next read recomputes instead of serving a cached failure
	userRepo.bestErr = nil
	userRepo.bestMembers = []models.User{{ID: 3}}

	members, err := svc.BestMembers()
	require.NoError(t, err)
	assert.Len(t, members, 1)
	assert.Equal(t, 2, userRepo.bestCalls)
}

func TestSidebarExpiredEntryRecomputes(t *testing.T) {
	userRepo := &fakeUserRepo{bestMembers: []models.User{{ID: 1}}}
	tagRepo := &fakeTagRepo{}
	svc := NewSidebarService(userRepo, tagRepo, cache.New(), -time.Second)

	_, err := svc.BestMembers()
	require.NoError(t, err)
	_, err = svc.BestMembers()
	require.NoError(t, err)

	assert.Equal(t, 2, userRepo.bestCalls, "an already-expired entry recomputes on every read")
}
