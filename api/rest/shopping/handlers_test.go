package shopping

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsb2092/fashion-coordinator-sub000/internal/advisor"
	"github.com/jsb2092/fashion-coordinator-sub000/internal/gencache"
	"github.com/jsb2092/fashion-coordinator-sub000/internal/people"
	"github.com/jsb2092/fashion-coordinator-sub000/internal/throttle"
	"github.com/jsb2092/fashion-coordinator-sub000/internal/wardrobe"
)

const testPersonID = "cccccccc-cccc-4ccc-8ccc-cccccccccccc"

var baseTime = time.Date(2025, time.June, 15, 12, 0, 0, 0, time.UTC)

type fakePeople struct {
	person *people.Person
}

func (f *fakePeople) FindByID(ctx context.Context, personID string) (*people.Person, error) {
	return f.person, nil
}

type fakeItems struct {
	items []wardrobe.Item
}

func (f *fakeItems) ListActive(ctx context.Context, personID string, limit int) ([]wardrobe.Item, error) {
	return f.items, nil
}

type fakeCache struct {
	entry      *gencache.Entry
	puts       int
	gets       int
	clickCount int
}

func (f *fakeCache) Get(ctx context.Context, key gencache.Key) (*gencache.Entry, error) {
	f.gets++
	return f.entry, nil
}

func (f *fakeCache) Put(ctx context.Context, key gencache.Key, payload json.RawMessage, generatedAgainst time.Time) (*gencache.Entry, error) {
	f.puts++
	return &gencache.Entry{Key: key, Payload: payload, GeneratedAgainst: generatedAgainst}, nil
}

func (f *fakeCache) RegisterClick(ctx context.Context, key gencache.Key) (int, error) {
	f.clickCount++
	return f.clickCount, nil
}

type fakeAdvisor struct {
	recommendations *advisor.ShoppingRecommendations
	raw             json.RawMessage
	err             error
	calls           int
}

func (f *fakeAdvisor) ShoppingRecommendations(ctx context.Context, items []wardrobe.Item) (*advisor.ShoppingRecommendations, json.RawMessage, error) {
	f.calls++

	if f.err != nil {
		return nil, nil, f.err
	}

	return f.recommendations, f.raw, nil
}

func wardrobeOf(n int) []wardrobe.Item {
	items := make([]wardrobe.Item, n)
	for i := range items {
		items[i] = wardrobe.Item{Name: "item", Category: "tops", Status: wardrobe.StatusActive}
	}
	return items
}

func freshRecommendations(n int) (*advisor.ShoppingRecommendations, json.RawMessage) {
	recommendations := &advisor.ShoppingRecommendations{Items: make([]advisor.RecommendedItem, n)}
	for i := range recommendations.Items {
		recommendations.Items[i] = advisor.RecommendedItem{Name: "white shirt", Category: "tops"}
	}

	raw, _ := json.Marshal(recommendations)

	return recommendations, raw
}

func cachedEntry(n int, age time.Duration, generatedAgainst time.Time, clicks int) *gencache.Entry {
	_, raw := freshRecommendations(n)

	return &gencache.Entry{
		Payload:          raw,
		GeneratedAgainst: generatedAgainst,
		UpdatedAt:        baseTime.Add(-age),
		ClickCount:       clicks,
	}
}

func baseShoppingDeps(itemCount int) (Deps, *fakeCache, *fakeAdvisor) {
	recommendations, raw := freshRecommendations(3)

	cache := &fakeCache{}
	adv := &fakeAdvisor{recommendations: recommendations, raw: raw}

	deps := Deps{
		People: &fakePeople{person: &people.Person{
			ID:                   testPersonID,
			WardrobeLastModified: baseTime.Add(-30 * 24 * time.Hour),
		}},
		Items:   &fakeItems{items: wardrobeOf(itemCount)},
		Cache:   cache,
		Advisor: adv,
		Now:     func() time.Time { return baseTime },
	}

	return deps, cache, adv
}

func getRecommendations(deps Deps) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.GET("/shopping/recommendations", func(c *gin.Context) {
		c.Set("user_id", testPersonID)
	}, RecommendationsHandler(deps))

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/shopping/recommendations", nil))

	return w
}

func TestRecommendations_ThinWardrobeShortCircuits(t *testing.T) {
	deps, cache, adv := baseShoppingDeps(throttle.MinWardrobeSize - 1)

	w := getRecommendations(deps)

	require.Equal(t, http.StatusOK, w.Code)

	var resp Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Empty(t, resp.Items)
	assert.NotEmpty(t, resp.Reason)

	assert.Equal(t, 0, cache.gets)
	assert.Equal(t, 0, adv.calls)
}

func TestRecommendations_ProTierGetsEmptySet(t *testing.T) {
	deps, cache, adv := baseShoppingDeps(10)
	deps.People = &fakePeople{person: &people.Person{
		ID:                 testPersonID,
		SubscriptionTier:   people.TierPro,
		SubscriptionStatus: people.StatusActive,
	}}

	w := getRecommendations(deps)

	require.Equal(t, http.StatusOK, w.Code)

	var resp Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Empty(t, resp.Items)

	assert.Equal(t, 0, cache.gets)
	assert.Equal(t, 0, adv.calls)
}

func TestRecommendations_FirstRequestGeneratesAndCaches(t *testing.T) {
	deps, cache, adv := baseShoppingDeps(10)

	w := getRecommendations(deps)

	require.Equal(t, http.StatusOK, w.Code)

	var resp Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.Cached)
	assert.Len(t, resp.Items, 3)

	assert.Equal(t, 1, adv.calls)
	assert.Equal(t, 1, cache.puts)
}

func TestRecommendations_FreshCacheServed(t *testing.T) {
	deps, cache, adv := baseShoppingDeps(10)

	// 2 days old, wardrobe untouched since generation, nothing clicked
	cache.entry = cachedEntry(3, 48*time.Hour, baseTime.Add(-48*time.Hour), 0)

	w := getRecommendations(deps)

	require.Equal(t, http.StatusOK, w.Code)

	var resp Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Cached)

	assert.Equal(t, 0, adv.calls)
	assert.Equal(t, 0, cache.puts)
}

func TestRecommendations_AllClickedPastCooldownRegenerates(t *testing.T) {
	deps, cache, adv := baseShoppingDeps(10)

	cache.entry = cachedEntry(3, 48*time.Hour, baseTime.Add(-48*time.Hour), 3)

	w := getRecommendations(deps)

	require.Equal(t, http.StatusOK, w.Code)

	var resp Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.Cached)
	assert.Equal(t, 1, adv.calls)
}

func TestRecommendations_StaleWardrobeRegenerates(t *testing.T) {
	deps, cache, adv := baseShoppingDeps(10)

	// wardrobe modified after the set was generated
	deps.People = &fakePeople{person: &people.Person{
		ID:                   testPersonID,
		WardrobeLastModified: baseTime.Add(-time.Hour),
	}}
	cache.entry = cachedEntry(3, 48*time.Hour, baseTime.Add(-48*time.Hour), 0)

	w := getRecommendations(deps)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 1, adv.calls)
}

func TestRecommendations_AIFailureServesStaleSet(t *testing.T) {
	deps, cache, adv := baseShoppingDeps(10)

	adv.err = advisor.ErrMalformedResponse
	// old enough that the throttle wants a refresh
	cache.entry = cachedEntry(3, 10*24*time.Hour, baseTime.Add(-10*24*time.Hour), 0)

	w := getRecommendations(deps)

	require.Equal(t, http.StatusOK, w.Code)

	var resp Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Cached)
	assert.Len(t, resp.Items, 3)

	// failed refresh must not overwrite the stored set
	assert.Equal(t, 0, cache.puts)
}

func TestRecommendations_AIFailureWithoutCacheIs502(t *testing.T) {
	deps, cache, adv := baseShoppingDeps(10)
	adv.err = errors.New("provider down")

	w := getRecommendations(deps)

	assert.Equal(t, http.StatusBadGateway, w.Code)
	assert.Equal(t, 0, cache.puts)
}

func TestRecommendations_EmptyCachedSetServed(t *testing.T) {
	// zero recommendations cached: served as-is, never treated as all-clicked
	deps, cache, adv := baseShoppingDeps(10)
	cache.entry = cachedEntry(0, 48*time.Hour, baseTime.Add(-48*time.Hour), 0)

	w := getRecommendations(deps)

	require.Equal(t, http.StatusOK, w.Code)

	var resp Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Cached)
	assert.Equal(t, 0, adv.calls)
}

func TestClick(t *testing.T) {
	deps, _, _ := baseShoppingDeps(10)

	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.POST("/shopping/recommendations/click", func(c *gin.Context) {
		c.Set("user_id", testPersonID)
	}, ClickHandler(deps))

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/shopping/recommendations/click", nil))

	require.Equal(t, http.StatusOK, w.Code)

	var resp ClickResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 1, resp.ClickCount)
}
