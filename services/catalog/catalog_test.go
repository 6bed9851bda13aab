package catalog

import (
	"context"
	"io"
	"strings"
	"testing"

	catalogRepo "homefix/database/repository/catalog"
	"homefix/database/repository/repotest"
	"homefix/models"
	"homefix/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeStorage struct {
	folder, name string
	err          error
}

func (f *fakeStorage) Upload(_ context.Context, folder, name string, r io.Reader) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	f.folder, f.name = folder, name
	_, _ = io.ReadAll(r)
	return "https://cdn.example.com/" + name, nil
}

func TestCreateServiceDefaultsAvailable(t *testing.T) {
	svc := NewCatalogService(repotest.NewCatalog(), nil)
	ctx := context.Background()

	s, err := svc.CreateService(ctx, ServiceInput{Name: " Fan repair ", Category: models.CategoryElectrical, Price: 499})
	require.NoError(t, err)
	assert.True(t, s.IsAvailable)
	assert.Equal(t, "Fan repair", s.Name)

	off := false
	s, err = svc.CreateService(ctx, ServiceInput{Name: "Geyser", Category: models.CategoryPlumbing, Price: 799, IsAvailable: &off})
	require.NoError(t, err)
	assert.False(t, s.IsAvailable)

	available, err := svc.ListServices(ctx, catalogRepo.ServiceFilter{OnlyAvailable: true})
	require.NoError(t, err)
	assert.Len(t, available, 1)

	plumbing, err := svc.ListServices(ctx, catalogRepo.ServiceFilter{Category: models.CategoryPlumbing})
	require.NoError(t, err)
	assert.Len(t, plumbing, 1)
}

func TestServiceValidation(t *testing.T) {
	svc := NewCatalogService(repotest.NewCatalog(), nil)
	ctx := context.Background()
	cases := []ServiceInput{
		{Name: "", Category: models.CategoryElectrical, Price: 1},
		{Name: "x", Category: "gardening", Price: 1},
		{Name: "x", Category: models.CategoryElectrical, Price: 0},
	}
	for _, in := range cases {
		_, err := svc.CreateService(ctx, in)
		assert.Equal(t, utils.KindValidation, utils.KindOf(err), "%+v", in)
	}

	_, err := svc.ListServices(ctx, catalogRepo.ServiceFilter{Category: "gardening"})
	assert.Equal(t, utils.KindValidation, utils.KindOf(err))
}

func TestUpdateAndDeleteService(t *testing.T) {
	repo := repotest.NewCatalog().WithServices(models.Service{ID: "s1", Name: "Fan", Category: models.CategoryElectrical, Price: 400, IsAvailable: true})
	svc := NewCatalogService(repo, nil)
	ctx := context.Background()

	price := 450.0
	s, err := svc.UpdateService(ctx, "s1", ServicePatch{Price: &price})
	require.NoError(t, err)
	assert.Equal(t, 450.0, s.Price)
	assert.Equal(t, "Fan", s.Name)

	negative := -1.0
	_, err = svc.UpdateService(ctx, "s1", ServicePatch{Price: &negative})
	assert.Equal(t, utils.KindValidation, utils.KindOf(err))

	_, err = svc.UpdateService(ctx, "missing", ServicePatch{Price: &price})
	assert.Equal(t, utils.KindNotFound, utils.KindOf(err))

	require.NoError(t, svc.DeleteService(ctx, "s1"))
	_, err = svc.GetService(ctx, "s1")
	assert.Equal(t, utils.KindNotFound, utils.KindOf(err))
}

func TestSetServiceImage(t *testing.T) {
	repo := repotest.NewCatalog().WithServices(models.Service{ID: "s1", Name: "Fan", Category: models.CategoryElectrical, Price: 400})
	store := &fakeStorage{}
	svc := NewCatalogService(repo, store)
	ctx := context.Background()

	s, err := svc.SetServiceImage(ctx, "s1", "fan.png", strings.NewReader("png"))
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/s1-fan.png", s.Image)

	_, err = svc.SetServiceImage(ctx, "missing", "fan.png", strings.NewReader("png"))
	assert.Equal(t, utils.KindNotFound, utils.KindOf(err))

	store.err = assert.AnError
	_, err = svc.SetServiceImage(ctx, "s1", "fan.png", strings.NewReader("png"))
	assert.Equal(t, utils.KindDependency, utils.KindOf(err))
}

func TestSetServiceImageWithoutStorage(t *testing.T) {
	repo := repotest.NewCatalog().WithServices(models.Service{ID: "s1", Name: "Fan", Category: models.CategoryElectrical, Price: 400})
	svc := NewCatalogService(repo, nil)

	_, err := svc.SetServiceImage(context.Background(), "s1", "fan.png", strings.NewReader("png"))
	assert.Equal(t, utils.KindValidation, utils.KindOf(err))
}

func TestPlans(t *testing.T) {
	svc := NewCatalogService(repotest.NewCatalog(), nil)
	ctx := context.Background()

	_, err := svc.CreatePlan(ctx, PlanInput{Name: "Premium", Price: 22000, Duration: models.DurationYearly})
	require.NoError(t, err)
	basic, err := svc.CreatePlan(ctx, PlanInput{Name: "Basic", Price: 2500, Duration: models.DurationMonthly})
	require.NoError(t, err)
	assert.NotNil(t, basic.Services)

	plans, err := svc.ListPlans(ctx)
	require.NoError(t, err)
	require.Len(t, plans, 2)
	assert.Equal(t, "Basic", plans[0].Name)

	_, err = svc.CreatePlan(ctx, PlanInput{Name: "Weekly", Price: 100, Duration: "weekly"})
	assert.Equal(t, utils.KindValidation, utils.KindOf(err))
	_, err = svc.CreatePlan(ctx, PlanInput{Name: "Free", Price: 0, Duration: models.DurationMonthly})
	assert.Equal(t, utils.KindValidation, utils.KindOf(err))

	require.NoError(t, svc.DeletePlan(ctx, basic.ID))
	_, err = svc.GetPlan(ctx, basic.ID)
	assert.Equal(t, utils.KindNotFound, utils.KindOf(err))
}
