package service

import (
	"context"
	"sort"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/MelEUsher/Recipe-Manager/internal/dto"
	"github.com/MelEUsher/Recipe-Manager/internal/model"
)

// ── In-memory RecipeRepository stub ──────────────────────────────────────────

type stubRecipeRepo struct {
	recipes          map[uint]*model.Recipe
	categories       *stubCategoryRepo
	nextRecipeID     uint
	nextIngredientID uint
}

func newStubRecipeRepo(categories *stubCategoryRepo) *stubRecipeRepo {
	return &stubRecipeRepo{
		recipes:          make(map[uint]*model.Recipe),
		categories:       categories,
		nextRecipeID:     1,
		nextIngredientID: 1,
	}
}

func (r *stubRecipeRepo) DB() *gorm.DB { return nil }

func (r *stubRecipeRepo) Create(_ context.Context, _ *gorm.DB, rec *model.Recipe) error {
	rec.ID = r.nextRecipeID
	r.nextRecipeID++
	rec.CreatedAt = time.Now()
	rec.UpdatedAt = rec.CreatedAt
	for i := range rec.Ingredients {
		rec.Ingredients[i].ID = r.nextIngredientID
		r.nextIngredientID++
		rec.Ingredients[i].RecipeID = rec.ID
	}
	stored := *rec
	r.recipes[rec.ID] = &stored
	return nil
}

func (r *stubRecipeRepo) FindByID(_ context.Context, id uint) (*model.Recipe, error) {
	rec, ok := r.recipes[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	out := *rec
	if out.CategoryID != nil {
		if c, ok := r.categories.categories[*out.CategoryID]; ok {
			cc := *c
			out.Category = &cc
		}
	}
	return &out, nil
}

func (r *stubRecipeRepo) List(_ context.Context, filter dto.RecipeFilter) ([]model.Recipe, error) {
	var result []model.Recipe
	for _, rec := range r.recipes {
		if filter.CategoryID != nil && (rec.CategoryID == nil || *rec.CategoryID != *filter.CategoryID) {
			continue
		}
		if filter.Search != "" && !strings.Contains(strings.ToLower(rec.Title), strings.ToLower(filter.Search)) {
			continue
		}
		result = append(result, *rec)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].CreatedAt.After(result[j].CreatedAt) })
	if filter.Skip > len(result) {
		filter.Skip = len(result)
	}
	result = result[filter.Skip:]
	if filter.Limit > 0 && filter.Limit < len(result) {
		result = result[:filter.Limit]
	}
	return result, nil
}

func (r *stubRecipeRepo) Update(_ context.Context, _ *gorm.DB, rec *model.Recipe) error {
	existing, ok := r.recipes[rec.ID]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	rec.UpdatedAt = time.Now()
	updated := *rec
	updated.Ingredients = existing.Ingredients
	r.recipes[rec.ID] = &updated
	return nil
}

func (r *stubRecipeRepo) ReplaceIngredients(_ context.Context, _ *gorm.DB, recipeID uint, ingredients []model.Ingredient) error {
	rec, ok := r.recipes[recipeID]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	replaced := make([]model.Ingredient, 0, len(ingredients))
	for _, in := range ingredients {
		in.ID = r.nextIngredientID
		r.nextIngredientID++
		in.RecipeID = recipeID
		replaced = append(replaced, in)
	}
	rec.Ingredients = replaced
	return nil
}

func (r *stubRecipeRepo) Delete(_ context.Context, id uint) error {
	delete(r.recipes, id)
	return nil
}

func newRecipeServiceForTest() (RecipeService, *stubCategoryRepo, *stubRecipeRepo) {
	categories := newStubCategoryRepo()
	recipes := newStubRecipeRepo(categories)
	return NewRecipeService(recipes, categories), categories, recipes
}

func mustCreateCategory(t *testing.T, repo *stubCategoryRepo, name string) *model.Category {
	t.Helper()
	c := &model.Category{Name: name}
	require.NoError(t, repo.Create(context.Background(), c))
	return c
}

// ── Tests ────────────────────────────────────────────────────────────────────

func TestRecipeCreateWithIngredients(t *testing.T) {
	svc, _, _ := newRecipeServiceForTest()

	amount := decimal.NewFromFloat(2.5)
	unit := "cups"
	created, err := svc.Create(context.Background(), dto.CreateRecipeRequest{
		Title:        "Cake",
		Instructions: "Mix and bake.",
		Ingredients: []dto.IngredientInput{
			{Name: "Flour", Amount: &amount, Unit: &unit},
			{Name: "Sugar"},
			{Name: "Eggs"},
		},
	})
	require.NoError(t, err)
	assert.NotZero(t, created.ID)
	require.Len(t, created.Ingredients, 3)
	for _, in := range created.Ingredients {
		assert.NotZero(t, in.ID)
		assert.Equal(t, created.ID, in.RecipeID)
	}

	// Fetch immediately after: same ingredient set.
	got, err := svc.Get(context.Background(), created.ID)
	require.NoError(t, err)
	assert.ElementsMatch(t, created.Ingredients, got.Ingredients)
}

func TestRecipeCreateInvalidCategory(t *testing.T) {
	svc, _, repo := newRecipeServiceForTest()

	missing := uint(99)
	_, err := svc.Create(context.Background(), dto.CreateRecipeRequest{
		Title:        "Cake",
		Instructions: "Mix and bake.",
		CategoryID:   &missing,
	})
	assert.ErrorIs(t, err, ErrInvalidReference)
	assert.Empty(t, repo.recipes)
}

func TestRecipeUpdateReplacesIngredients(t *testing.T) {
	svc, _, _ := newRecipeServiceForTest()

	created, err := svc.Create(context.Background(), dto.CreateRecipeRequest{
		Title:        "Cake",
		Instructions: "Mix and bake.",
		Ingredients:  []dto.IngredientInput{{Name: "Flour"}, {Name: "Sugar"}},
	})
	require.NoError(t, err)

	oldIDs := make(map[uint]bool)
	for _, in := range created.Ingredients {
		oldIDs[in.ID] = true
	}

	// New set overlaps in name with the old one; rows must still be new.
	replacement := []dto.IngredientInput{{Name: "Flour"}, {Name: "Butter"}}
	updated, err := svc.Update(context.Background(), created.ID, dto.UpdateRecipeRequest{
		Ingredients: &replacement,
	})
	require.NoError(t, err)
	require.Len(t, updated.Ingredients, 2)
	for _, in := range updated.Ingredients {
		assert.False(t, oldIDs[in.ID], "old ingredient row survived the replace")
	}
}

func TestRecipeUpdateEmptyIngredientListClears(t *testing.T) {
	svc, _, _ := newRecipeServiceForTest()

	created, err := svc.Create(context.Background(), dto.CreateRecipeRequest{
		Title:        "Cake",
		Instructions: "Mix and bake.",
		Ingredients:  []dto.IngredientInput{{Name: "Flour"}},
	})
	require.NoError(t, err)

	empty := []dto.IngredientInput{}
	updated, err := svc.Update(context.Background(), created.ID, dto.UpdateRecipeRequest{
		Ingredients: &empty,
	})
	require.NoError(t, err)
	assert.Empty(t, updated.Ingredients)
}

func TestRecipeUpdateWithoutIngredientsLeavesThem(t *testing.T) {
	svc, _, _ := newRecipeServiceForTest()

	created, err := svc.Create(context.Background(), dto.CreateRecipeRequest{
		Title:        "Cake",
		Instructions: "Mix and bake.",
		Ingredients:  []dto.IngredientInput{{Name: "Flour"}, {Name: "Sugar"}},
	})
	require.NoError(t, err)

	newTitle := "Chocolate Cake"
	updated, err := svc.Update(context.Background(), created.ID, dto.UpdateRecipeRequest{
		Title: &newTitle,
	})
	require.NoError(t, err)
	assert.Equal(t, "Chocolate Cake", updated.Title)
	assert.ElementsMatch(t, created.Ingredients, updated.Ingredients)
}

func TestRecipeUpdatePartialFields(t *testing.T) {
	svc, categories, _ := newRecipeServiceForTest()
	cat := mustCreateCategory(t, categories, "Dessert")

	prep := 15
	created, err := svc.Create(context.Background(), dto.CreateRecipeRequest{
		Title:        "Cake",
		Instructions: "Mix and bake.",
		PrepTime:     &prep,
	})
	require.NoError(t, err)

	updated, err := svc.Update(context.Background(), created.ID, dto.UpdateRecipeRequest{
		CategoryID: &cat.ID,
	})
	require.NoError(t, err)
	require.NotNil(t, updated.CategoryID)
	assert.Equal(t, cat.ID, *updated.CategoryID)
	// Untouched fields survive.
	assert.Equal(t, "Cake", updated.Title)
	require.NotNil(t, updated.PrepTime)
	assert.Equal(t, prep, *updated.PrepTime)
}

func TestRecipeDelete(t *testing.T) {
	svc, _, repo := newRecipeServiceForTest()

	created, err := svc.Create(context.Background(), dto.CreateRecipeRequest{
		Title:        "Cake",
		Instructions: "Mix and bake.",
		Ingredients:  []dto.IngredientInput{{Name: "Flour"}},
	})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(context.Background(), created.ID))

	_, err = svc.Get(context.Background(), created.ID)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, svc.Delete(context.Background(), created.ID), ErrNotFound)
	assert.Empty(t, repo.recipes)
}

func TestRecipeListFilters(t *testing.T) {
	svc, categories, _ := newRecipeServiceForTest()
	dessert := mustCreateCategory(t, categories, "Dessert")
	soup := mustCreateCategory(t, categories, "Soup")

	for _, rc := range []struct {
		title string
		cat   *uint
	}{
		{"Chocolate Cake", &dessert.ID},
		{"Carrot Cake", &dessert.ID},
		{"Tomato Soup", &soup.ID},
	} {
		_, err := svc.Create(context.Background(), dto.CreateRecipeRequest{
			Title:        rc.title,
			Instructions: "Cook.",
			CategoryID:   rc.cat,
		})
		require.NoError(t, err)
	}

	byCategory, err := svc.List(context.Background(), dto.RecipeFilter{CategoryID: &dessert.ID, Limit: 100})
	require.NoError(t, err)
	assert.Len(t, byCategory, 2)

	bySearch, err := svc.List(context.Background(), dto.RecipeFilter{Search: "cake", Limit: 100})
	require.NoError(t, err)
	assert.Len(t, bySearch, 2)

	both, err := svc.List(context.Background(), dto.RecipeFilter{CategoryID: &soup.ID, Search: "cake", Limit: 100})
	require.NoError(t, err)
	assert.Empty(t, both)
}
