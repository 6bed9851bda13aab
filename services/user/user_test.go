package user

import (
	"context"
	"testing"
	"time"

	"homefix/database/repository/repotest"
	"homefix/models"
	"homefix/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mapCache struct {
	entries map[string]models.Identity
	err     error
}

func newMapCache() *mapCache { return &mapCache{entries: map[string]models.Identity{}} }

func (c *mapCache) Get(_ context.Context, userID string) (models.Identity, bool, error) {
	if c.err != nil {
		return models.Identity{}, false, c.err
	}
	id, ok := c.entries[userID]
	return id, ok, nil
}

func (c *mapCache) Set(_ context.Context, id models.Identity) error {
	if c.err != nil {
		return c.err
	}
	c.entries[id.UserID] = id
	return nil
}

func (c *mapCache) Delete(_ context.Context, userID string) error {
	delete(c.entries, userID)
	return c.err
}

func newService(t *testing.T) (*DefaultUserService, *repotest.Users, *mapCache) {
	t.Helper()
	repo := repotest.NewUsers()
	cache := newMapCache()
	return NewUserService(repo, utils.NewTokenManager("test-secret", time.Hour), cache), repo, cache
}

func register(t *testing.T, svc *DefaultUserService, email string) *AuthResponse {
	t.Helper()
	resp, err := svc.Register(context.Background(), RegisterInput{
		Name: "Asha", Email: email, Phone: "9999999999", Password: "secret1",
	})
	require.NoError(t, err)
	return resp
}

func TestRegisterNormalizesEmail(t *testing.T) {
	svc, repo, _ := newService(t)

	resp := register(t, svc, "  Asha@Example.COM ")
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, "asha@example.com", resp.User.Email)
	assert.Equal(t, models.RoleUser, resp.User.Role)

	stored, err := repo.GetByEmail(context.Background(), "asha@example.com")
	require.NoError(t, err)
	assert.NotEqual(t, "secret1", stored.PasswordHash)
	assert.Empty(t, stored.SubscribedPlans)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc, _, _ := newService(t)
	register(t, svc, "asha@example.com")

	_, err := svc.Register(context.Background(), RegisterInput{
		Name: "Other", Email: "ASHA@example.com", Phone: "1", Password: "secret1",
	})
	assert.Equal(t, utils.KindConflict, utils.KindOf(err))
}

func TestRegisterValidation(t *testing.T) {
	svc, _, _ := newService(t)
	cases := []RegisterInput{
		{Name: "", Email: "a@example.com", Phone: "1", Password: "secret1"},
		{Name: "A", Email: "not-an-email", Phone: "1", Password: "secret1"},
		{Name: "A", Email: "a@example.com", Phone: "", Password: "secret1"},
		{Name: "A", Email: "a@example.com", Phone: "1", Password: "short"},
	}
	for _, in := range cases {
		_, err := svc.Register(context.Background(), in)
		assert.Equal(t, utils.KindValidation, utils.KindOf(err), "%+v", in)
	}
}

func TestAuthenticate(t *testing.T) {
	svc, _, _ := newService(t)
	register(t, svc, "asha@example.com")
	ctx := context.Background()

	resp, err := svc.Authenticate(ctx, "ASHA@example.com", "secret1")
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)

	_, err = svc.Authenticate(ctx, "asha@example.com", "wrong-pass")
	assert.Equal(t, utils.KindUnauthorized, utils.KindOf(err))

	_, err = svc.Authenticate(ctx, "nobody@example.com", "secret1")
	assert.Equal(t, utils.KindUnauthorized, utils.KindOf(err))
}

func TestResolveTokenUsesCacheThenRepository(t *testing.T) {
	svc, _, cache := newService(t)
	resp := register(t, svc, "asha@example.com")
	ctx := context.Background()

	id, err := svc.ResolveToken(ctx, resp.Token)
	require.NoError(t, err)
	assert.Equal(t, resp.User.ID, id.UserID)
	assert.Equal(t, models.RoleUser, id.Role)

	delete(cache.entries, resp.User.ID)
	id, err = svc.ResolveToken(ctx, resp.Token)
	require.NoError(t, err)
	assert.Equal(t, resp.User.ID, id.UserID)
	assert.Contains(t, cache.entries, resp.User.ID)
}

func TestResolveTokenFallsBackWhenCacheFails(t *testing.T) {
	svc, _, cache := newService(t)
	resp := register(t, svc, "asha@example.com")
	cache.err = assert.AnError

	id, err := svc.ResolveToken(context.Background(), resp.Token)
	require.NoError(t, err)
	assert.Equal(t, resp.User.ID, id.UserID)
}

func TestResolveTokenRejectsBadTokens(t *testing.T) {
	svc, _, _ := newService(t)
	ctx := context.Background()

	_, err := svc.ResolveToken(ctx, "garbage")
	assert.Equal(t, utils.KindUnauthorized, utils.KindOf(err))

	foreign, err := utils.NewTokenManager("other-secret", time.Hour).GenerateToken("u1", "a@example.com", "user")
	require.NoError(t, err)
	_, err = svc.ResolveToken(ctx, foreign)
	assert.Equal(t, utils.KindUnauthorized, utils.KindOf(err))

	orphan, err := svc.Tokens.GenerateToken("ghost", "ghost@example.com", "admin")
	require.NoError(t, err)
	_, err = svc.ResolveToken(ctx, orphan)
	assert.Equal(t, utils.KindUnauthorized, utils.KindOf(err))
}

func TestUpdateRoleEvictsCachedIdentity(t *testing.T) {
	svc, _, cache := newService(t)
	resp := register(t, svc, "asha@example.com")
	ctx := context.Background()
	require.Contains(t, cache.entries, resp.User.ID)

	u, err := svc.UpdateRole(ctx, resp.User.ID, models.RoleTechnician)
	require.NoError(t, err)
	assert.Equal(t, models.RoleTechnician, u.Role)
	assert.NotContains(t, cache.entries, resp.User.ID)

	id, err := svc.ResolveToken(ctx, resp.Token)
	require.NoError(t, err)
	assert.Equal(t, models.RoleTechnician, id.Role)

	_, err = svc.UpdateRole(ctx, resp.User.ID, "superuser")
	assert.Equal(t, utils.KindValidation, utils.KindOf(err))
	_, err = svc.UpdateRole(ctx, "ghost", models.RoleAdmin)
	assert.Equal(t, utils.KindNotFound, utils.KindOf(err))
}

func TestUpdateProfile(t *testing.T) {
	svc, _, _ := newService(t)
	resp := register(t, svc, "asha@example.com")
	ctx := context.Background()

	addr := "12 MG Road"
	u, err := svc.UpdateProfile(ctx, resp.User.ID, ProfileInput{Address: &addr})
	require.NoError(t, err)
	assert.Equal(t, addr, u.Address)
	assert.Equal(t, "Asha", u.Name)

	blank := " "
	_, err = svc.UpdateProfile(ctx, resp.User.ID, ProfileInput{Name: &blank})
	assert.Equal(t, utils.KindValidation, utils.KindOf(err))
}
