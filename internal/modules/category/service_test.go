package category

import (
	"testing"

	"connecthub/internal/database"
	"connecthub/internal/domain"
	"connecthub/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func sample() []domain.Category {
	return []domain.Category{
		{ID: 1, Name: "Plumbing", Slug: "plumbing", Type: domain.CategoryService, Active: true, Featured: false},
		{ID: 2, Name: "Electrical", Slug: "electrical", Type: domain.CategoryService, Active: true, Featured: true},
		{ID: 3, Name: "Gardening", Slug: "gardening", Type: domain.CategoryService, Active: false, Featured: true},
		{ID: 4, Name: "Cleaning", Slug: "cleaning", Description: "home and office", Type: domain.CategoryService, Active: false, Featured: false},
	}
}

func ids(cats []domain.Category) []int64 {
	out := make([]int64, 0, len(cats))
	for _, c := range cats {
		out = append(out, c.ID)
	}
	return out
}

func TestFilterSearchTerm(t *testing.T) {
	got := Filter(sample(), "plumb", StatusAll)
	require.Len(t, got, 1)
	assert.Equal(t, "Plumbing", got[0].Name)

	// matches description too
	got = Filter(sample(), "office", StatusAll)
	require.Len(t, got, 1)
	assert.Equal(t, "Cleaning", got[0].Name)

	assert.Empty(t, Filter(sample(), "nonexistent", StatusAll))
}

func TestFilterStatus(t *testing.T) {
	assert.Equal(t, []int64{1, 2}, ids(Filter(sample(), "", StatusActive)))
	assert.Equal(t, []int64{3, 4}, ids(Filter(sample(), "", StatusInactive)))
	// Featured is independent of Active: id 3 is inactive but featured
	assert.Equal(t, []int64{2, 3}, ids(Filter(sample(), "", StatusFeatured)))
	assert.Equal(t, []int64{1, 2, 3, 4}, ids(Filter(sample(), "", StatusAll)))
}

func TestFilterIsIdempotent(t *testing.T) {
	once := Filter(sample(), "e", StatusActive)
	twice := Filter(once, "e", StatusActive)
	assert.Equal(t, once, twice)
}

func TestFilterComposesWithAND(t *testing.T) {
	// search and status must both hold
	got := Filter(sample(), "g", StatusFeatured)
	require.Len(t, got, 1)
	assert.Equal(t, "Gardening", got[0].Name)
}

func TestFilterDoesNotMutateInput(t *testing.T) {
	in := sample()
	Filter(in, "plumb", StatusActive)
	assert.Equal(t, sample(), in)
}

func TestSlugify(t *testing.T) {
	assert.Equal(t, "home-cleaning", Slugify("Home Cleaning"))
	assert.Equal(t, "ac-repair", Slugify("  AC / Repair!  "))
}

func setupService(t *testing.T) (*Service, *gorm.DB) {
	t.Helper()
	db, err := database.Connect(":memory:")
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&domain.Category{}, &domain.Listing{}))
	return NewService(repository.NewCategoryRepository(db)), db
}

func TestCreateRejectsDuplicateSlug(t *testing.T) {
	svc, _ := setupService(t)
	ctx := t.Context()

	_, err := svc.Create(ctx, CreateRequest{Name: "Plumbing", Type: "SERVICE"})
	require.NoError(t, err)

	_, err = svc.Create(ctx, CreateRequest{Name: "Plumbing", Type: "SERVICE"})
	assert.ErrorIs(t, err, ErrSlugTaken)
}

func TestDeleteRefusedWithListings(t *testing.T) {
	svc, db := setupService(t)
	ctx := t.Context()

	cat, err := svc.Create(ctx, CreateRequest{Name: "Plumbing", Type: "SERVICE"})
	require.NoError(t, err)

	listing := domain.Listing{Title: "Pipe fix", VendorID: 1, CategoryID: cat.ID}
	require.NoError(t, db.Create(&listing).Error)

	err = svc.Delete(ctx, cat.ID)
	assert.ErrorIs(t, err, ErrHasListings)
}

func TestListAppliesFilters(t *testing.T) {
	svc, _ := setupService(t)
	ctx := t.Context()

	_, err := svc.Create(ctx, CreateRequest{Name: "Plumbing", Type: "SERVICE"})
	require.NoError(t, err)
	inactive := false
	_, err = svc.Create(ctx, CreateRequest{Name: "Gardening", Type: "SERVICE", Active: &inactive})
	require.NoError(t, err)

	got, err := svc.List(ctx, "", true, "", StatusActive)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Plumbing", got[0].Name)

	// excluded at the query level before the pure filter runs
	got, err = svc.List(ctx, "", false, "", StatusAll)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Plumbing", got[0].Name)
}
