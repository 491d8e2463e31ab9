package api

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"property-search/catalogue"
	"property-search/models"
	"property-search/services"
	"property-search/storage"
	"property-search/utils"
)

type testClient struct {
	t      *testing.T
	router http.Handler
	cookie *http.Cookie
}

func newTestClient(t *testing.T) *testClient {
	logger := utils.NewLogger()
	h := NewHandler(
		services.NewSearchController(catalogue.Default(), logger),
		services.NewSessionRegistry(storage.NewMemoryStore(), logger),
		logger,
	)
	return &testClient{t: t, router: NewRouter(h, logger)}
}

// do sends a request, keeping the session cookie between calls.
func (c *testClient) do(method, path, body string) *httptest.ResponseRecorder {
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, r)
	if c.cookie != nil {
		req.AddCookie(c.cookie)
	}
	rec := httptest.NewRecorder()
	c.router.ServeHTTP(rec, req)

	for _, ck := range rec.Result().Cookies() {
		if ck.Name == SessionCookie {
			c.cookie = ck
		}
	}
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	if err := json.Unmarshal(rec.Body.Bytes(), &v); err != nil {
		t.Fatalf("decode %s: %v", rec.Body.String(), err)
	}
	return v
}

func propertyIDs(props []models.Property) []int {
	out := make([]int, len(props))
	for i, p := range props {
		out[i] = p.ID
	}
	return out
}

func TestSearchProperties(t *testing.T) {
	c := newTestClient(t)

	rec := c.do(http.MethodGet, "/api/v1/properties?propertyType=house&sort=price-low", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d, want 200", rec.Code)
	}
	if rec.Header().Get(TraceHeader) == "" {
		t.Error("missing trace id header")
	}

	resp := decode[SearchResponse](t, rec)
	got := propertyIDs(resp.Properties)
	if len(got) != 2 || got[0] != 4 || got[1] != 1 {
		t.Errorf("properties: got %v, want [4 1]", got)
	}
	if resp.Label != "2 properties found" {
		t.Errorf("label: got %q", resp.Label)
	}
	if resp.Query != "propertyType=house&sort=price-low" {
		t.Errorf("query: got %q", resp.Query)
	}
}

func TestSearchPropertiesReportsIgnoredValues(t *testing.T) {
	c := newTestClient(t)

	resp := decode[SearchResponse](t, c.do(http.MethodGet, "/api/v1/properties?priceRange=1000000-2000000&bedrooms=lots", ""))
	if got := propertyIDs(resp.Properties); len(got) != 1 || got[0] != 2 {
		t.Errorf("properties: got %v, want [2]", got)
	}
	if len(resp.Ignored) != 1 {
		t.Errorf("ignored: got %v, want one entry", resp.Ignored)
	}
}

func TestGetProperty(t *testing.T) {
	c := newTestClient(t)

	tests := []struct {
		path string
		code int
	}{
		{"/api/v1/properties/2", http.StatusOK},
		{"/api/v1/properties/99", http.StatusNotFound},
		{"/api/v1/properties/abc", http.StatusBadRequest},
		{"/api/v1/properties/0", http.StatusBadRequest},
	}
	for _, tt := range tests {
		if rec := c.do(http.MethodGet, tt.path, ""); rec.Code != tt.code {
			t.Errorf("GET %s: got %d, want %d", tt.path, rec.Code, tt.code)
		}
	}

	p := decode[models.Property](t, c.do(http.MethodGet, "/api/v1/properties/2", ""))
	if p.Title != "Downtown Penthouse" {
		t.Errorf("title: got %q", p.Title)
	}
}

func TestKeywordSearchAndSuggestions(t *testing.T) {
	c := newTestClient(t)

	resp := decode[SearchResponse](t, c.do(http.MethodGet, "/api/v1/search?q=luxury", ""))
	if got := propertyIDs(resp.Properties); len(got) != 3 {
		t.Errorf("search luxury: got %v, want 3 matches", got)
	}
	if rec := c.do(http.MethodGet, "/api/v1/search?q=", ""); rec.Code != http.StatusBadRequest {
		t.Errorf("empty q: got %d, want 400", rec.Code)
	}

	suggestions := decode[[]string](t, c.do(http.MethodGet, "/api/v1/suggestions?q=man", ""))
	if len(suggestions) != 1 || suggestions[0] != "Manhattan, New York" {
		t.Errorf("suggestions: got %v", suggestions)
	}
	if short := decode[[]string](t, c.do(http.MethodGet, "/api/v1/suggestions?q=ma", "")); len(short) != 0 {
		t.Errorf("short query suggestions: got %v, want none", short)
	}
}

func TestComparisonFlow(t *testing.T) {
	c := newTestClient(t)

	want := []struct {
		id   string
		kind models.OutcomeKind
	}{
		{"1", models.OutcomeAdded},
		{"2", models.OutcomeAdded},
		{"3", models.OutcomeAdded},
		{"4", models.OutcomeRejected},
		{"2", models.OutcomeRemoved},
		{"4", models.OutcomeAdded},
	}
	for _, step := range want {
		rec := c.do(http.MethodPost, "/api/v1/comparison/"+step.id, "")
		if rec.Code != http.StatusOK {
			t.Fatalf("toggle %s: status %d", step.id, rec.Code)
		}
		out := decode[models.Outcome](t, rec)
		if out.Kind != step.kind {
			t.Errorf("toggle %s: got %s, want %s", step.id, out.Kind, step.kind)
		}
		if out.Kind == models.OutcomeRejected && out.Reason != models.ReasonMaxReached {
			t.Errorf("toggle %s: reason %q, want max_reached", step.id, out.Reason)
		}
	}

	sel := decode[SelectionResponse](t, c.do(http.MethodGet, "/api/v1/selection", ""))
	if got := propertyIDs(sel.ComparisonProperties); len(got) != 3 || got[0] != 1 || got[1] != 3 || got[2] != 4 {
		t.Errorf("comparison properties: got %v, want [1 3 4]", got)
	}

	if out := decode[models.Outcome](t, c.do(http.MethodDelete, "/api/v1/comparison", "")); out.Count != 0 {
		t.Errorf("clear: count %d, want 0", out.Count)
	}
}

func TestFavoritesAreScopedToSession(t *testing.T) {
	alice := newTestClient(t)
	alice.do(http.MethodPost, "/api/v1/favorites/5", "")
	if alice.cookie == nil {
		t.Fatal("no session cookie was issued")
	}

	sel := decode[SelectionResponse](t, alice.do(http.MethodGet, "/api/v1/selection", ""))
	if len(sel.Favorites) != 1 || sel.Favorites[0] != 5 {
		t.Errorf("alice favorites: got %v, want [5]", sel.Favorites)
	}

	bob := &testClient{t: t, router: alice.router}
	sel = decode[SelectionResponse](t, bob.do(http.MethodGet, "/api/v1/selection", ""))
	if len(sel.Favorites) != 0 {
		t.Errorf("bob favorites: got %v, want none", sel.Favorites)
	}

	if rec := alice.do(http.MethodPost, "/api/v1/favorites/42", ""); rec.Code != http.StatusNotFound {
		t.Errorf("unknown property: got %d, want 404", rec.Code)
	}
}

func TestSetViewMode(t *testing.T) {
	c := newTestClient(t)

	if rec := c.do(http.MethodPut, "/api/v1/view-mode", `{"view_mode":"list"}`); rec.Code != http.StatusOK {
		t.Fatalf("list: got %d, want 200", rec.Code)
	}
	if rec := c.do(http.MethodPut, "/api/v1/view-mode", `{"view_mode":"carousel"}`); rec.Code != http.StatusBadRequest {
		t.Errorf("carousel: got %d, want 400", rec.Code)
	}
	if rec := c.do(http.MethodPut, "/api/v1/view-mode", `not json`); rec.Code != http.StatusBadRequest {
		t.Errorf("bad body: got %d, want 400", rec.Code)
	}

	sel := decode[SelectionResponse](t, c.do(http.MethodGet, "/api/v1/selection", ""))
	if sel.ViewMode != models.ViewList {
		t.Errorf("view mode: got %q, want list", sel.ViewMode)
	}
}

func TestCreateInquiry(t *testing.T) {
	c := newTestClient(t)

	tests := []struct {
		name string
		body string
		code int
	}{
		{"valid", `{"property_id":1,"name":"Dana","email":"dana@example.com","message":"Viewing?"}`, http.StatusAccepted},
		{"invalid fields", `{"property_id":1,"name":"","email":"nope","message":"hi"}`, http.StatusUnprocessableEntity},
		{"unknown property", `{"property_id":77,"name":"Dana","email":"dana@example.com","message":"hi"}`, http.StatusNotFound},
		{"bad body", `{`, http.StatusBadRequest},
	}
	for _, tt := range tests {
		if rec := c.do(http.MethodPost, "/api/v1/inquiries", tt.body); rec.Code != tt.code {
			t.Errorf("%s: got %d, want %d (%s)", tt.name, rec.Code, tt.code, rec.Body.String())
		}
	}
}

func TestRecovererHandlesPanics(t *testing.T) {
	c := newTestClient(t)
	// a nil registry makes the selection routes panic
	c.router = NewRouter(NewHandler(services.NewSearchController(catalogue.Default(), utils.NewLogger()), nil, utils.NewLogger()), utils.NewLogger())

	if rec := c.do(http.MethodGet, "/api/v1/selection", ""); rec.Code != http.StatusInternalServerError {
		t.Errorf("panic: got %d, want 500", rec.Code)
	}
}
