package services

import (
	"testing"

	"qa-forum/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func settingsFixture() (*fakeUserRepo, *fakeActivityRepo) {
	userRepo := &fakeUserRepo{users: map[uint]*models.User{
		1: {ID: 1, Login: "heavy", Profile: &models.UserProfile{
			UserID:      1,
			DisplayName: "Heavy",
			Avatar:      "old.png",
		}},
	}}
	return userRepo, &fakeActivityRepo{}
}

func TestUpdateSettingsNameChangeRecordsActivity(t *testing.T) {
	userRepo, activityRepo := settingsFixture()
	svc := NewUserService(userRepo, activityRepo)

	profile, err := svc.UpdateSettings(1, models.UpdateSettingsRequest{
		DisplayName: strPtr("Mikhail"),
	})

	require.NoError(t, err)
	assert.Equal(t, "Mikhail", profile.DisplayName)
	require.Len(t, activityRepo.created, 1)
	assert.Equal(t, models.ActivityUserChangedName, activityRepo.created[0].Type)
	assert.Equal(t, uint(1), activityRepo.created[0].UserID)
	assert.Equal(t, models.TargetUser, activityRepo.created[0].TargetType)
}

func TestUpdateSettingsAvatarChangeRecordsActivity(t *testing.T) {
	userRepo, activityRepo := settingsFixture()
	svc := NewUserService(userRepo, activityRepo)

	_, err := svc.UpdateSettings(1, models.UpdateSettingsRequest{
		Avatar: strPtr("new.png"),
	})

	require.NoError(t, err)
	require.Len(t, activityRepo.created, 1)
	assert.Equal(t, models.ActivityUserChangedAvatar, activityRepo.created[0].Type)
}

func TestUpdateSettingsSameValueIsNotAChange(t *testing.T) {
	userRepo, activityRepo := settingsFixture()
	svc := NewUserService(userRepo, activityRepo)

	_, err := svc.UpdateSettings(1, models.UpdateSettingsRequest{
		DisplayName: strPtr("Heavy"),
		Avatar:      strPtr("old.png"),
	})

	require.NoError(t, err)
	assert.Empty(t, activityRepo.created, "re-submitting current values produces no feed entries")
}

func TestUpdateSettingsPageSizePreferencePersists(t *testing.T) {
	userRepo, activityRepo := settingsFixture()
	svc := NewUserService(userRepo, activityRepo)

	pref := 25
	profile, err := svc.UpdateSettings(1, models.UpdateSettingsRequest{
		PageSizePreference: &pref,
	})

	require.NoError(t, err)
	require.NotNil(t, profile.PageSizePreference)
	assert.Equal(t, 25, *profile.PageSizePreference)
	require.Len(t, userRepo.savedProfiles, 1)
	require.NotNil(t, userRepo.savedProfiles[0].PageSizePreference)
	assert.Equal(t, 25, *userRepo.savedProfiles[0].PageSizePreference)
	assert.Empty(t, activityRepo.created, "page-size preference is not a feed event")
}

func TestUpdateSettingsBuildsProfileWhenMissing(t *testing.T) {
	userRepo := &fakeUserRepo{users: map[uint]*models.User{
		2: {ID: 2, Login: "medic"},
	}}
	svc := NewUserService(userRepo, &fakeActivityRepo{})

	profile, err := svc.UpdateSettings(2, models.UpdateSettingsRequest{
		DisplayName: strPtr("Medic"),
	})

	require.NoError(t, err)
	assert.Equal(t, uint(2), profile.UserID)
	assert.Equal(t, "Medic", profile.DisplayName)
}
