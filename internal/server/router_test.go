package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MarcoPoloResearchLab/onematch/backend/internal/auth"
	"github.com/MarcoPoloResearchLab/onematch/backend/internal/interests"
	"github.com/MarcoPoloResearchLab/onematch/backend/internal/matches"
	"github.com/MarcoPoloResearchLab/onematch/backend/internal/profiles"
	"github.com/MarcoPoloResearchLab/onematch/backend/internal/users"
	"github.com/gin-gonic/gin"
)

func newTestHandler(t *testing.T) (http.Handler, *auth.SessionIssuer) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store := users.NewStore(users.StoreConfig{})
	catalog := interests.NewCatalog(interests.CatalogConfig{Seed: interests.DefaultInterests()})
	profileService, err := profiles.NewService(profiles.ServiceConfig{Store: store, Catalog: catalog})
	if err != nil {
		t.Fatalf("failed to create profile service: %v", err)
	}
	sessions := auth.NewSessionIssuer(auth.SessionIssuerConfig{
		SigningSecret: []byte("test-secret"),
		Issuer:        "onematch-auth",
		Audience:      "onematch-api",
		SessionTTL:    time.Hour,
	})

	handler, err := NewHTTPHandler(Dependencies{
		Store:          store,
		Catalog:        catalog,
		ProfileService: profileService,
		MatchProvider:  matches.NewProvider(),
		SessionManager: sessions,
	})
	if err != nil {
		t.Fatalf("failed to create handler: %v", err)
	}
	return handler, sessions
}

func performJSON(t *testing.T, handler http.Handler, method, path string, body any, mutate func(*http.Request)) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("failed to encode body: %v", err)
		}
		reader = bytes.NewReader(encoded)
	} else {
		reader = bytes.NewReader(nil)
	}

	request := httptest.NewRequest(method, path, reader)
	request.Header.Set("Content-Type", "application/json")
	if mutate != nil {
		mutate(request)
	}
	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, request)
	return recorder
}

func decodeEnvelope(t *testing.T, recorder *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var envelope map[string]any
	if err := json.Unmarshal(recorder.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("failed to decode response %q: %v", recorder.Body.String(), err)
	}
	return envelope
}

func TestNewHTTPHandlerRequiresDependencies(t *testing.T) {
	gin.SetMode(gin.TestMode)
	if _, err := NewHTTPHandler(Dependencies{}); err == nil {
		t.Fatalf("expected dependency validation to fail")
	}
}

func TestLoginRejectsMissingUsername(t *testing.T) {
	handler, _ := newTestHandler(t)

	recorder := performJSON(t, handler, http.MethodPost, "/api/auth/login", map[string]string{}, nil)
	if recorder.Code != http.StatusBadRequest {
		t.Fatalf("unexpected status: got %d, want %d", recorder.Code, http.StatusBadRequest)
	}
	envelope := decodeEnvelope(t, recorder)
	if envelope["message"] != "username is required" {
		t.Fatalf("unexpected message: %v", envelope["message"])
	}

	recorder = performJSON(t, handler, http.MethodPost, "/api/auth/login", map[string]string{"username": "   "}, nil)
	if recorder.Code != http.StatusBadRequest {
		t.Fatalf("blank username must be rejected, got %d", recorder.Code)
	}
}

func TestLoginWithEmployeeID(t *testing.T) {
	handler, sessions := newTestHandler(t)

	recorder := performJSON(t, handler, http.MethodPost, "/api/auth/login", map[string]string{"username": "EAB123"}, nil)
	if recorder.Code != http.StatusOK {
		t.Fatalf("unexpected status: got %d, body %s", recorder.Code, recorder.Body.String())
	}
	envelope := decodeEnvelope(t, recorder)
	data, ok := envelope["data"].(map[string]any)
	if !ok {
		t.Fatalf("missing data in response: %v", envelope)
	}
	if data["userId"] != "EAB123" {
		t.Fatalf("unexpected user id: %v", data["userId"])
	}
	if data["username"] != "eab123" {
		t.Fatalf("unexpected username: %v", data["username"])
	}
	if data["profile"] != nil {
		t.Fatalf("expected null profile before onboarding, got %v", data["profile"])
	}

	token, _ := data["token"].(string)
	if token == "" {
		t.Fatalf("expected session token in login response")
	}
	subject, err := sessions.ValidateToken(token)
	if err != nil {
		t.Fatalf("issued token failed validation: %v", err)
	}
	if subject != "EAB123" {
		t.Fatalf("token subject mismatch: %q", subject)
	}
}

func TestLoginIsIdempotentForFreeFormNames(t *testing.T) {
	handler, _ := newTestHandler(t)

	first := decodeEnvelope(t, performJSON(t, handler, http.MethodPost, "/api/auth/login", map[string]string{"username": "Jordan Doe"}, nil))
	second := decodeEnvelope(t, performJSON(t, handler, http.MethodPost, "/api/auth/login", map[string]string{"username": " jordan doe "}, nil))

	firstID := first["data"].(map[string]any)["userId"]
	secondID := second["data"].(map[string]any)["userId"]
	if firstID != secondID {
		t.Fatalf("expected the same canonical user across logins, got %v vs %v", firstID, secondID)
	}
}

func TestProtectedRoutesRejectMissingIdentity(t *testing.T) {
	handler, _ := newTestHandler(t)

	paths := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/api/users/me/profile"},
		{http.MethodGet, "/api/matches/users"},
		{http.MethodGet, "/api/matches/communities"},
		{http.MethodGet, "/api/network/ENA487"},
	}
	for _, route := range paths {
		recorder := performJSON(t, handler, route.method, route.path, nil, nil)
		if recorder.Code != http.StatusUnauthorized {
			t.Fatalf("%s %s: got %d, want %d", route.method, route.path, recorder.Code, http.StatusUnauthorized)
		}
	}
}

func TestIdentityFromBearerToken(t *testing.T) {
	handler, sessions := newTestHandler(t)

	token, _, err := sessions.IssueSessionToken("EAB123")
	if err != nil {
		t.Fatalf("failed to issue token: %v", err)
	}

	recorder := performJSON(t, handler, http.MethodGet, "/api/users/me/profile", nil, func(r *http.Request) {
		r.Header.Set("Authorization", "Bearer "+token)
	})
	if recorder.Code != http.StatusOK {
		t.Fatalf("unexpected status: got %d, body %s", recorder.Code, recorder.Body.String())
	}
}

func TestIdentityRejectsInvalidBearerToken(t *testing.T) {
	handler, _ := newTestHandler(t)

	recorder := performJSON(t, handler, http.MethodGet, "/api/users/me/profile", nil, func(r *http.Request) {
		r.Header.Set("Authorization", "Bearer not-a-token")
	})
	if recorder.Code != http.StatusUnauthorized {
		t.Fatalf("unexpected status: got %d", recorder.Code)
	}
}

func TestGetProfileBeforeOnboarding(t *testing.T) {
	handler, _ := newTestHandler(t)

	recorder := performJSON(t, handler, http.MethodGet, "/api/users/me/profile", nil, func(r *http.Request) {
		r.Header.Set("X-User-Id", "EAB123")
	})
	if recorder.Code != http.StatusOK {
		t.Fatalf("unexpected status: got %d", recorder.Code)
	}
	data := decodeEnvelope(t, recorder)["data"].(map[string]any)
	if data["profile"] != nil {
		t.Fatalf("expected null profile, got %v", data["profile"])
	}
	if data["onboarded"] != false {
		t.Fatalf("expected onboarded=false, got %v", data["onboarded"])
	}
}

func TestSaveProfileThenReadBack(t *testing.T) {
	handler, _ := newTestHandler(t)
	asUser := func(r *http.Request) { r.Header.Set("X-User-Id", "EAB123") }

	recorder := performJSON(t, handler, http.MethodPut, "/api/users/me/profile", map[string]any{
		"fullName":     "Jordan Doe",
		"location":     "McLean, VA",
		"org":          "Card Tech",
		"workspace":    "HQ1",
		"interestIds":  []string{"interest-uuid-2"},
		"newInterests": []string{"hackathons", "Chess"},
	}, asUser)
	if recorder.Code != http.StatusOK {
		t.Fatalf("save failed: %d %s", recorder.Code, recorder.Body.String())
	}
	saved := decodeEnvelope(t, recorder)["data"].(map[string]any)
	savedInterests := saved["interests"].([]any)
	if len(savedInterests) != 2 {
		t.Fatalf("expected deduplicated interests, got %v", savedInterests)
	}

	recorder = performJSON(t, handler, http.MethodGet, "/api/users/me/profile", nil, asUser)
	data := decodeEnvelope(t, recorder)["data"].(map[string]any)
	profile, ok := data["profile"].(map[string]any)
	if !ok {
		t.Fatalf("expected stored profile, got %v", data["profile"])
	}
	if profile["fullName"] != "Jordan Doe" {
		t.Fatalf("unexpected full name: %v", profile["fullName"])
	}
	if data["onboarded"] != true {
		t.Fatalf("expected onboarded=true after full save")
	}
}

func TestSavePartialUpdateKeepsPreviousValues(t *testing.T) {
	handler, _ := newTestHandler(t)
	asUser := func(r *http.Request) { r.Header.Set("X-User-Id", "EAB123") }

	performJSON(t, handler, http.MethodPut, "/api/users/me/profile", map[string]any{
		"fullName":    "Jordan Doe",
		"location":    "McLean, VA",
		"org":         "Card Tech",
		"workspace":   "HQ1",
		"interestIds": []string{"interest-uuid-1"},
	}, asUser)

	recorder := performJSON(t, handler, http.MethodPut, "/api/users/me/profile", map[string]any{
		"org":         "Cloud Platform",
		"interestIds": []string{"interest-uuid-1"},
	}, asUser)
	profile := decodeEnvelope(t, recorder)["data"].(map[string]any)
	if profile["org"] != "Cloud Platform" {
		t.Fatalf("expected new org, got %v", profile["org"])
	}
	if profile["location"] != "McLean, VA" {
		t.Fatalf("omitted location must keep previous value, got %v", profile["location"])
	}
}

func TestListInterestsIsPublic(t *testing.T) {
	handler, _ := newTestHandler(t)

	recorder := performJSON(t, handler, http.MethodGet, "/api/interests", nil, nil)
	if recorder.Code != http.StatusOK {
		t.Fatalf("unexpected status: got %d", recorder.Code)
	}
	data := decodeEnvelope(t, recorder)["data"].([]any)
	if len(data) != len(interests.DefaultInterests()) {
		t.Fatalf("expected default catalog, got %d entries", len(data))
	}
}

func TestMatchesAndNetworkEndpoints(t *testing.T) {
	handler, _ := newTestHandler(t)
	asUser := func(r *http.Request) { r.Header.Set("X-User-Id", "ENA487") }

	recorder := performJSON(t, handler, http.MethodGet, "/api/matches/users", nil, asUser)
	if recorder.Code != http.StatusOK {
		t.Fatalf("user matches failed: %d", recorder.Code)
	}
	if data := decodeEnvelope(t, recorder)["data"].([]any); len(data) == 0 {
		t.Fatalf("expected user matches")
	}

	recorder = performJSON(t, handler, http.MethodGet, "/api/matches/communities", nil, asUser)
	if recorder.Code != http.StatusOK {
		t.Fatalf("community matches failed: %d", recorder.Code)
	}

	recorder = performJSON(t, handler, http.MethodGet, "/api/network/ENA487", nil, asUser)
	if recorder.Code != http.StatusOK {
		t.Fatalf("network failed: %d", recorder.Code)
	}
	graph := decodeEnvelope(t, recorder)["data"].(map[string]any)
	if nodes := graph["nodes"].([]any); len(nodes) == 0 {
		t.Fatalf("expected network nodes")
	}
}

func TestActionsValidateRequiredFields(t *testing.T) {
	handler, _ := newTestHandler(t)
	asUser := func(r *http.Request) { r.Header.Set("X-User-Id", "ENA487") }

	recorder := performJSON(t, handler, http.MethodPost, "/api/actions/schedule-chat", map[string]string{}, asUser)
	if recorder.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for missing inviteeUserId, got %d", recorder.Code)
	}

	recorder = performJSON(t, handler, http.MethodPost, "/api/actions/schedule-chat", map[string]string{"inviteeUserId": "ENA492"}, asUser)
	if recorder.Code != http.StatusOK {
		t.Fatalf("schedule chat failed: %d", recorder.Code)
	}

	recorder = performJSON(t, handler, http.MethodPost, "/api/actions/join-community", map[string]string{}, asUser)
	if recorder.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for missing communityId, got %d", recorder.Code)
	}

	recorder = performJSON(t, handler, http.MethodPost, "/api/actions/join-community", map[string]string{"communityId": "comm-uuid-1"}, asUser)
	if recorder.Code != http.StatusOK {
		t.Fatalf("join community failed: %d", recorder.Code)
	}
	data := decodeEnvelope(t, recorder)["data"].(map[string]any)
	if data["slackUrl"] == "" {
		t.Fatalf("expected slack deep link in response")
	}
}

func TestLogoutAlwaysSucceeds(t *testing.T) {
	handler, _ := newTestHandler(t)

	recorder := performJSON(t, handler, http.MethodPost, "/api/auth/logout", nil, nil)
	if recorder.Code != http.StatusOK {
		t.Fatalf("unexpected status: got %d", recorder.Code)
	}
}

func TestHealthAndMetricsEndpoints(t *testing.T) {
	handler, _ := newTestHandler(t)

	recorder := performJSON(t, handler, http.MethodGet, "/healthz", nil, nil)
	if recorder.Code != http.StatusOK {
		t.Fatalf("healthz failed: %d", recorder.Code)
	}

	recorder = performJSON(t, handler, http.MethodGet, "/metrics", nil, nil)
	if recorder.Code != http.StatusOK {
		t.Fatalf("metrics failed: %d", recorder.Code)
	}
}
