package service

import (
	"context"
	"sort"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/MelEUsher/Recipe-Manager/internal/dto"
	"github.com/MelEUsher/Recipe-Manager/internal/model"
)

// ── In-memory CategoryRepository stub ────────────────────────────────────────

type stubCategoryRepo struct {
	categories map[uint]*model.Category
	nextID     uint
}

func newStubCategoryRepo() *stubCategoryRepo {
	return &stubCategoryRepo{categories: make(map[uint]*model.Category), nextID: 1}
}

func (r *stubCategoryRepo) Create(_ context.Context, c *model.Category) error {
	for _, existing := range r.categories {
		if existing.Name == c.Name {
			return gorm.ErrDuplicatedKey
		}
	}
	c.ID = r.nextID
	r.nextID++
	c.CreatedAt = time.Now()
	c.UpdatedAt = c.CreatedAt
	r.categories[c.ID] = c
	return nil
}

func (r *stubCategoryRepo) List(_ context.Context, skip, limit int) ([]model.Category, error) {
	result := make([]model.Category, 0, len(r.categories))
	for _, c := range r.categories {
		result = append(result, *c)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Name < result[j].Name })
	if skip > len(result) {
		skip = len(result)
	}
	result = result[skip:]
	if limit < len(result) {
		result = result[:limit]
	}
	return result, nil
}

func (r *stubCategoryRepo) FindByID(_ context.Context, id uint) (*model.Category, error) {
	c, ok := r.categories[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return c, nil
}

func (r *stubCategoryRepo) FindByName(_ context.Context, name string) (*model.Category, error) {
	for _, c := range r.categories {
		if c.Name == name {
			return c, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubCategoryRepo) Update(_ context.Context, c *model.Category) error {
	c.UpdatedAt = time.Now()
	r.categories[c.ID] = c
	return nil
}

func (r *stubCategoryRepo) Delete(_ context.Context, id uint) error {
	delete(r.categories, id)
	return nil
}

// ── Tests ────────────────────────────────────────────────────────────────────

func TestCategoryCreateAndGet(t *testing.T) {
	svc := NewCategoryService(newStubCategoryRepo())

	desc := "Sweet things"
	created, err := svc.Create(context.Background(), dto.CreateCategoryRequest{
		Name:        "Dessert",
		Description: &desc,
	})
	require.NoError(t, err)
	assert.NotZero(t, created.ID)
	assert.Equal(t, "Dessert", created.Name)
	require.NotNil(t, created.Description)
	assert.Equal(t, desc, *created.Description)

	got, err := svc.Get(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)
}

func TestCategoryCreateDuplicateName(t *testing.T) {
	svc := NewCategoryService(newStubCategoryRepo())

	_, err := svc.Create(context.Background(), dto.CreateCategoryRequest{Name: "Dessert"})
	require.NoError(t, err)

	_, err = svc.Create(context.Background(), dto.CreateCategoryRequest{Name: "Dessert"})
	assert.ErrorIs(t, err, ErrDuplicateName)

	list, err := svc.List(context.Background(), 0, 100)
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestCategoryCreateNameMatchIsExact(t *testing.T) {
	svc := NewCategoryService(newStubCategoryRepo())

	_, err := svc.Create(context.Background(), dto.CreateCategoryRequest{Name: "Dessert"})
	require.NoError(t, err)

	// The unique index is case-sensitive; a differently-cased name is a
	// distinct category and must not trip the duplicate pre-check.
	_, err = svc.Create(context.Background(), dto.CreateCategoryRequest{Name: "dessert"})
	require.NoError(t, err)

	list, err := svc.List(context.Background(), 0, 100)
	require.NoError(t, err)
	assert.Len(t, list, 2)
}

func TestCategoryUpdatePartial(t *testing.T) {
	svc := NewCategoryService(newStubCategoryRepo())

	desc := "Sweet things"
	created, err := svc.Create(context.Background(), dto.CreateCategoryRequest{
		Name:        "Dessert",
		Description: &desc,
	})
	require.NoError(t, err)

	// Only the name is present in the payload; description must survive.
	newName := "Desserts"
	updated, err := svc.Update(context.Background(), created.ID, dto.UpdateCategoryRequest{Name: &newName})
	require.NoError(t, err)
	assert.Equal(t, "Desserts", updated.Name)
	require.NotNil(t, updated.Description)
	assert.Equal(t, desc, *updated.Description)
}

func TestCategoryUpdateDuplicateName(t *testing.T) {
	svc := NewCategoryService(newStubCategoryRepo())

	_, err := svc.Create(context.Background(), dto.CreateCategoryRequest{Name: "Dessert"})
	require.NoError(t, err)
	second, err := svc.Create(context.Background(), dto.CreateCategoryRequest{Name: "Breakfast"})
	require.NoError(t, err)

	taken := "Dessert"
	_, err = svc.Update(context.Background(), second.ID, dto.UpdateCategoryRequest{Name: &taken})
	assert.ErrorIs(t, err, ErrDuplicateName)
}

func TestCategoryNotFound(t *testing.T) {
	svc := NewCategoryService(newStubCategoryRepo())

	_, err := svc.Get(context.Background(), 42)
	assert.ErrorIs(t, err, ErrNotFound)

	name := "X"
	_, err = svc.Update(context.Background(), 42, dto.UpdateCategoryRequest{Name: &name})
	assert.ErrorIs(t, err, ErrNotFound)

	assert.ErrorIs(t, svc.Delete(context.Background(), 42), ErrNotFound)
}

func TestCategoryListOrderedByName(t *testing.T) {
	svc := NewCategoryService(newStubCategoryRepo())

	for _, name := range []string{"Soups", "Breakfast", "Mains"} {
		_, err := svc.Create(context.Background(), dto.CreateCategoryRequest{Name: name})
		require.NoError(t, err)
	}

	list, err := svc.List(context.Background(), 0, 100)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, "Breakfast", list[0].Name)
	assert.Equal(t, "Mains", list[1].Name)
	assert.Equal(t, "Soups", list[2].Name)
}
