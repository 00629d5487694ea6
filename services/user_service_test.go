package services

import (
	"context"
	"testing"

	"github.com/ankit-0705/Macrology/models"
	"github.com/ankit-0705/Macrology/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func seedUser(t *testing.T, db *gorm.DB, name, email, pnum string) *models.User {
	t.Helper()
	hash, err := utils.HashPassword("Str0ng!pass")
	require.NoError(t, err)
	user := &models.User{Name: name, Email: email, Pnum: pnum, Password: hash}
	require.NoError(t, db.Create(user).Error)
	return user
}

func TestGetByID_NotFound(t *testing.T) {
	svc := NewUserService(newTestDB(t), nil)

	_, err := svc.GetByID(context.Background(), 12345)
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestUpdateProfile_PartialFieldsOnly(t *testing.T) {
	db := newTestDB(t)
	svc := NewUserService(db, nil)
	user := seedUser(t, db, "Ankit", "ankit@example.com", "9876543210")

	updated, err := svc.UpdateProfile(context.Background(), user.ID, ProfileUpdate{Name: "Ankit Kumar"})
	require.NoError(t, err)

	assert.Equal(t, "Ankit Kumar", updated.Name)
	assert.Equal(t, "ankit@example.com", updated.Email, "absent fields must not be cleared")
	assert.Equal(t, "9876543210", updated.Pnum)
}

func TestUpdateProfile_ValidatesSuppliedFields(t *testing.T) {
	db := newTestDB(t)
	svc := NewUserService(db, nil)
	user := seedUser(t, db, "Ankit", "ankit@example.com", "9876543210")

	_, err := svc.UpdateProfile(context.Background(), user.ID, ProfileUpdate{
		Name:  "ab",
		Email: "broken",
		Pnum:  "12",
	})

	var verrs utils.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Len(t, verrs, 3)

	var fresh models.User
	require.NoError(t, db.First(&fresh, user.ID).Error)
	assert.Equal(t, "Ankit", fresh.Name, "rejected update must not write")
}

func TestUpdateProfile_UniqueFieldConflicts(t *testing.T) {
	db := newTestDB(t)
	svc := NewUserService(db, nil)
	seedUser(t, db, "First", "first@example.com", "1111111111")
	second := seedUser(t, db, "Second", "second@example.com", "2222222222")

	_, err := svc.UpdateProfile(context.Background(), second.ID, ProfileUpdate{Email: "first@example.com"})
	assert.ErrorIs(t, err, ErrEmailTaken)

	_, err = svc.UpdateProfile(context.Background(), second.ID, ProfileUpdate{Pnum: "1111111111"})
	assert.ErrorIs(t, err, ErrPhoneTaken)
}

func TestUpdateProfile_MissingUser(t *testing.T) {
	svc := NewUserService(newTestDB(t), nil)

	_, err := svc.UpdateProfile(context.Background(), 999, ProfileUpdate{Name: "Ghost"})
	assert.ErrorIs(t, err, ErrUserNotFound)
}
