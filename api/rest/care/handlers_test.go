package care

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsb2092/fashion-coordinator-sub000/internal/advisor"
	"github.com/jsb2092/fashion-coordinator-sub000/internal/entitlement"
	"github.com/jsb2092/fashion-coordinator-sub000/internal/gencache"
	"github.com/jsb2092/fashion-coordinator-sub000/internal/people"
	"github.com/jsb2092/fashion-coordinator-sub000/internal/supplies"
	"github.com/jsb2092/fashion-coordinator-sub000/internal/wardrobe"
)

const (
	testPersonID = "aaaaaaaa-aaaa-4aaa-8aaa-aaaaaaaaaaaa"
	testItemID   = "bbbbbbbb-bbbb-4bbb-8bbb-bbbbbbbbbbbb"
)

var baseTime = time.Date(2025, time.June, 15, 12, 0, 0, 0, time.UTC)

type fakePeople struct {
	person *people.Person
}

func (f *fakePeople) FindByID(ctx context.Context, personID string) (*people.Person, error) {
	if f.person == nil {
		return nil, errors.New("no rows")
	}
	return f.person, nil
}

type fakeItems struct {
	item *wardrobe.Item
}

func (f *fakeItems) Get(ctx context.Context, itemID, personID string) (*wardrobe.Item, error) {
	if f.item == nil {
		return nil, errors.New("no rows")
	}
	return f.item, nil
}

type fakeShelf struct {
	shelf []supplies.Supply
}

func (f *fakeShelf) List(ctx context.Context, personID string) ([]supplies.Supply, error) {
	return f.shelf, nil
}

type fakeCache struct {
	entry *gencache.Entry
	puts  []json.RawMessage
}

func (f *fakeCache) Get(ctx context.Context, key gencache.Key) (*gencache.Entry, error) {
	return f.entry, nil
}

func (f *fakeCache) Put(ctx context.Context, key gencache.Key, payload json.RawMessage, generatedAgainst time.Time) (*gencache.Entry, error) {
	f.puts = append(f.puts, payload)
	return &gencache.Entry{Key: key, Payload: payload, GeneratedAgainst: generatedAgainst}, nil
}

type fakeAdvisor struct {
	instructions *advisor.CareInstructions
	raw          json.RawMessage
	err          error
	calls        int
}

func (f *fakeAdvisor) CareInstructions(ctx context.Context, item wardrobe.Item, shelf []supplies.Supply, careType string) (*advisor.CareInstructions, json.RawMessage, error) {
	f.calls++

	if f.err != nil {
		return nil, nil, f.err
	}

	return f.instructions, f.raw, nil
}

type fakeAccess struct {
	decision entitlement.Decision
	calls    int
}

func (f *fakeAccess) CheckAccess(ctx context.Context, person *people.Person, feature entitlement.Feature) (entitlement.Decision, error) {
	f.calls++
	return f.decision, nil
}

type fakeQuota struct {
	increments int
}

func (f *fakeQuota) Increment(ctx context.Context, person *people.Person) error {
	f.increments++
	person.ShoeCareUsage++
	return nil
}

func freePerson() *people.Person {
	return &people.Person{
		ID:                   testPersonID,
		SubscriptionTier:     people.TierFree,
		SubscriptionStatus:   people.StatusInactive,
		UsageResetDate:       baseTime,
		SuppliesLastModified: baseTime,
	}
}

func generatedInstructions() (*advisor.CareInstructions, json.RawMessage) {
	instructions := &advisor.CareInstructions{
		Steps:     []string{"brush off dirt", "apply conditioner"},
		Frequency: "monthly",
	}

	raw, _ := json.Marshal(instructions)

	return instructions, raw
}

// wires the handler into a router with the person pre-authenticated
func performRequest(deps Deps, body string) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.POST("/care/items/:id/instructions", func(c *gin.Context) {
		c.Set("user_id", testPersonID)
	}, InstructionsHandler(deps))

	req := httptest.NewRequest(http.MethodPost, "/care/items/"+testItemID+"/instructions", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	return w
}

func baseDeps(person *people.Person) (Deps, *fakeCache, *fakeAdvisor, *fakeAccess, *fakeQuota) {
	instructions, raw := generatedInstructions()

	cache := &fakeCache{}
	adv := &fakeAdvisor{instructions: instructions, raw: raw}
	access := &fakeAccess{decision: entitlement.Decision{
		Allowed: true,
		Usage:   &entitlement.UsageInfo{Used: 1, Limit: entitlement.FreeCareInstructionLimit},
	}}
	quota := &fakeQuota{}

	deps := Deps{
		People:  &fakePeople{person: person},
		Items:   &fakeItems{item: &wardrobe.Item{ID: testItemID, PersonID: testPersonID, Name: "leather boots", Category: "shoes"}},
		Shelf:   &fakeShelf{},
		Cache:   cache,
		Advisor: adv,
		Access:  access,
		Quota:   quota,
	}

	return deps, cache, adv, access, quota
}

func TestInstructions_CacheMissGeneratesAndCounts(t *testing.T) {
	person := freePerson()
	deps, cache, adv, _, quota := baseDeps(person)

	w := performRequest(deps, `{"care_type": "conditioning"}`)

	require.Equal(t, http.StatusOK, w.Code)

	var resp Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.Cached)
	assert.Equal(t, "monthly", resp.Instructions.Frequency)

	assert.Equal(t, 1, adv.calls)
	assert.Len(t, cache.puts, 1)
	assert.Equal(t, 1, quota.increments)
}

func TestInstructions_FreshCacheSkipsEverything(t *testing.T) {
	person := freePerson()
	deps, cache, adv, access, quota := baseDeps(person)

	_, raw := generatedInstructions()
	cache.entry = &gencache.Entry{
		Payload:          raw,
		GeneratedAgainst: person.SuppliesLastModified,
		UpdatedAt:        baseTime,
	}

	w := performRequest(deps, `{"care_type": "conditioning"}`)

	require.Equal(t, http.StatusOK, w.Code)

	var resp Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Cached)

	// cache hit short-circuits before the gate: no AI call, no quota
	assert.Equal(t, 0, adv.calls)
	assert.Equal(t, 0, access.calls)
	assert.Equal(t, 0, quota.increments)
}

func TestInstructions_ExhaustedQuotaStillReadsCache(t *testing.T) {
	// quota exhausted, but a valid cached guide exists: rereads stay free
	person := freePerson()
	person.ShoeCareUsage = entitlement.FreeCareInstructionLimit

	deps, cache, _, access, _ := baseDeps(person)
	access.decision = entitlement.Decision{Allowed: false, Reason: "quota exhausted"}

	_, raw := generatedInstructions()
	cache.entry = &gencache.Entry{
		Payload:          raw,
		GeneratedAgainst: person.SuppliesLastModified,
		UpdatedAt:        baseTime,
	}

	w := performRequest(deps, `{"care_type": "conditioning"}`)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 0, access.calls)
}

func TestInstructions_StaleCacheRegenerates(t *testing.T) {
	// shelf changed after the guide was generated
	person := freePerson()
	deps, cache, adv, _, _ := baseDeps(person)

	_, raw := generatedInstructions()
	cache.entry = &gencache.Entry{
		Payload:          raw,
		GeneratedAgainst: person.SuppliesLastModified.Add(-time.Hour),
		UpdatedAt:        baseTime,
	}

	w := performRequest(deps, `{"care_type": "conditioning"}`)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 1, adv.calls)
	assert.Len(t, cache.puts, 1)
}

func TestInstructions_DeniedWithoutCache(t *testing.T) {
	person := freePerson()
	person.ShoeCareUsage = entitlement.FreeCareInstructionLimit

	deps, _, adv, access, quota := baseDeps(person)
	access.decision = entitlement.Decision{
		Allowed: false,
		Reason:  "quota exhausted",
		Usage:   &entitlement.UsageInfo{Used: 3, Limit: 3},
	}

	w := performRequest(deps, `{"care_type": "cleaning"}`)

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), "not_entitled")
	assert.Contains(t, w.Body.String(), `"used":3`)
	assert.Equal(t, 0, adv.calls)
	assert.Equal(t, 0, quota.increments)
}

func TestInstructions_AIFailureCachesNothingCountsNothing(t *testing.T) {
	person := freePerson()
	deps, cache, adv, _, quota := baseDeps(person)
	adv.err = advisor.ErrMalformedResponse

	w := performRequest(deps, `{"care_type": "cleaning"}`)

	assert.Equal(t, http.StatusBadGateway, w.Code)
	assert.Contains(t, w.Body.String(), "ai_unavailable")
	assert.Empty(t, cache.puts)
	assert.Equal(t, 0, quota.increments)
}

func TestInstructions_ProNeverCounts(t *testing.T) {
	person := freePerson()
	person.SubscriptionTier = people.TierPro
	person.SubscriptionStatus = people.StatusActive

	deps, _, _, access, quota := baseDeps(person)
	access.decision = entitlement.Decision{Allowed: true}

	w := performRequest(deps, `{"care_type": "polishing"}`)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 0, quota.increments)
}

func TestInstructions_RejectsUnknownCareType(t *testing.T) {
	deps, _, adv, _, _ := baseDeps(freePerson())

	w := performRequest(deps, `{"care_type": "ironing"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, 0, adv.calls)
}

func TestInstructions_RejectsMissingBody(t *testing.T) {
	deps, _, _, _, _ := baseDeps(freePerson())

	w := performRequest(deps, `{}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
