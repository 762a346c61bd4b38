package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/elite-arena/apiserver/internal/store"
	"github.com/elite-arena/apiserver/types"
)

type fakeUserRepo struct {
	nextID int
	users  map[int]types.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{nextID: 1, users: make(map[int]types.User)}
}

func (f *fakeUserRepo) GetByID(_ context.Context, id int) (types.User, error) {
	user, ok := f.users[id]
	if !ok {
		return types.User{}, store.ErrNotFound
	}
	return user, nil
}

func (f *fakeUserRepo) GetByEmail(_ context.Context, email string) (types.User, error) {
	for _, user := range f.users {
		if user.Email == email {
			return user, nil
		}
	}
	return types.User{}, store.ErrNotFound
}

func (f *fakeUserRepo) Create(_ context.Context, user types.User) (types.User, error) {
	user.ID = f.nextID
	f.nextID++
	now := time.Now()
	user.CreatedAt = now
	user.UpdatedAt = now
	f.users[user.ID] = user
	return user, nil
}

func TestUserService_RegisterNormalizesEmail(t *testing.T) {
	svc := NewUserService(newFakeUserRepo())

	user, err := svc.Register(context.Background(), "Jo", "JO@X.COM", "hunter22")
	require.NoError(t, err)

	assert.Equal(t, "jo@x.com", user.Email)
	assert.NotEmpty(t, user.PasswordHash)
	assert.NotEqual(t, "hunter22", user.PasswordHash)
}

func TestUserService_RegisterDuplicateEmailAnyCasing(t *testing.T) {
	svc := NewUserService(newFakeUserRepo())

	_, err := svc.Register(context.Background(), "Jo", "jo@x.com", "hunter22")
	require.NoError(t, err)

	_, err = svc.Register(context.Background(), "Other", "Jo@X.Com", "different-password")
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestUserService_RegisterThenAuthenticate(t *testing.T) {
	svc := NewUserService(newFakeUserRepo())

	registered, err := svc.Register(context.Background(), "Jo", "jo@x.com", "hunter22")
	require.NoError(t, err)

	// Any casing variant of the email resolves to the same user.
	user, err := svc.Authenticate(context.Background(), "JO@x.CoM", "hunter22")
	require.NoError(t, err)
	assert.Equal(t, registered.ID, user.ID)
	assert.Equal(t, registered.Email, user.Email)
	assert.Equal(t, registered.Name, user.Name)
}

func TestUserService_AuthenticateEnumerationResistance(t *testing.T) {
	svc := NewUserService(newFakeUserRepo())

	_, err := svc.Register(context.Background(), "Jo", "jo@x.com", "hunter22")
	require.NoError(t, err)

	_, unknownErr := svc.Authenticate(context.Background(), "nobody@x.com", "hunter22")
	_, wrongPassErr := svc.Authenticate(context.Background(), "jo@x.com", "wrong")

	// Unknown email and wrong password are indistinguishable.
	assert.ErrorIs(t, unknownErr, ErrInvalidCredentials)
	assert.ErrorIs(t, wrongPassErr, ErrInvalidCredentials)
	assert.Equal(t, unknownErr.Error(), wrongPassErr.Error())
}
