package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/ankit-0705/Macrology/models"
	"github.com/ankit-0705/Macrology/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testSecret = []byte("test-secret")

func newAuthService(t *testing.T) *AuthService {
	t.Helper()
	return NewAuthService(newTestDB(t), testSecret, time.Hour, nil)
}

func validRegistration() RegisterInput {
	return RegisterInput{
		Name:     "Ankit",
		Email:    "ankit@example.com",
		Password: "Str0ng!pass",
		Pnum:     "9876543210",
	}
}

func TestRegister_ValidationAggregatesAndWritesNothing(t *testing.T) {
	svc := newAuthService(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, RegisterInput{
		Name:     "ab",          // too short
		Email:    "not-an-email",
		Password: "weak",
		Pnum:     "123",
	})
	require.Error(t, err)

	var verrs utils.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Len(t, verrs, 4)

	var count int64
	require.NoError(t, svc.db.Model(&models.User{}).Count(&count).Error)
	assert.Zero(t, count, "failed registration must not write")
}

func TestRegister_SuccessIssuesTokenForNewUser(t *testing.T) {
	svc := newAuthService(t)
	ctx := context.Background()

	token, err := svc.Register(ctx, validRegistration())
	require.NoError(t, err)

	var user models.User
	require.NoError(t, svc.db.First(&user, "email = ?", "ankit@example.com").Error)

	userID, err := utils.ParseJWT(token, testSecret)
	require.NoError(t, err)
	assert.Equal(t, user.ID, userID)

	assert.NotEqual(t, "Str0ng!pass", user.Password, "password must be stored hashed")
	assert.True(t, utils.CheckPasswordHash("Str0ng!pass", user.Password))
}

func TestRegister_DuplicateEmailConflict(t *testing.T) {
	svc := newAuthService(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, validRegistration())
	require.NoError(t, err)

	second := validRegistration()
	second.Name = "Someone Else"
	second.Pnum = "9876543211"
	_, err = svc.Register(ctx, second)
	assert.ErrorIs(t, err, ErrEmailTaken)

	var user models.User
	require.NoError(t, svc.db.First(&user, "email = ?", "ankit@example.com").Error)
	assert.Equal(t, "Ankit", user.Name, "first account must remain unchanged")
}

func TestLogin_ByEmailAndByPhone(t *testing.T) {
	svc := newAuthService(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, validRegistration())
	require.NoError(t, err)

	var user models.User
	require.NoError(t, svc.db.First(&user, "email = ?", "ankit@example.com").Error)

	for _, ident := range []string{"ankit@example.com", "9876543210"} {
		token, err := svc.Login(ctx, ident, "Str0ng!pass")
		require.NoError(t, err, "login with %q", ident)

		userID, err := utils.ParseJWT(token, testSecret)
		require.NoError(t, err)
		assert.Equal(t, user.ID, userID)
	}
}

func TestLogin_WrongPasswordAndUnknownUserIndistinguishable(t *testing.T) {
	svc := newAuthService(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, validRegistration())
	require.NoError(t, err)

	_, errWrongPass := svc.Login(ctx, "ankit@example.com", "Wr0ng!pass1")
	_, errNoUser := svc.Login(ctx, "ghost@example.com", "Str0ng!pass")

	require.Error(t, errWrongPass)
	require.Error(t, errNoUser)
	assert.Equal(t, errWrongPass, errNoUser, "credential failures must be indistinguishable")
	assert.True(t, errors.Is(errWrongPass, ErrInvalidCredentials))
}

func TestLogin_MalformedIdentifier(t *testing.T) {
	svc := newAuthService(t)

	_, err := svc.Login(context.Background(), "neither-email-nor-phone", "Str0ng!pass")

	var verrs utils.ValidationErrors
	require.ErrorAs(t, err, &verrs)
}
