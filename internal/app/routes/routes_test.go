package routes_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/engbowl/engbowl/internal/bootstrap"
	"github.com/engbowl/engbowl/internal/config"
)

const testCookieName = "engbowl_session"

func newTestHandler(t *testing.T) http.Handler {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{}
	cfg.Server.Mode = gin.TestMode
	cfg.Session.TTL = "1h"
	cfg.Session.CookieName = testCookieName

	deps, err := bootstrap.BuildDependencies(context.Background(), cfg)
	require.NoError(t, err)
	return deps.Handler
}

func doJSON(handler http.Handler, method, path string, body any, cookie *http.Cookie) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if cookie != nil {
		req.AddCookie(cookie)
	}
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	out := map[string]any{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func sessionCookie(t *testing.T, w *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()
	for _, c := range w.Result().Cookies() {
		if c.Name == testCookieName && c.Value != "" {
			return c
		}
	}
	t.Fatal("session cookie not set")
	return nil
}

func register(t *testing.T, handler http.Handler, username, email string) (map[string]any, *http.Cookie) {
	t.Helper()
	w := doJSON(handler, http.MethodPost, "/api/register", map[string]any{
		"username":        username,
		"password":        "supersecret",
		"passwordConfirm": "supersecret",
		"email":           email,
		"displayName":     "Test " + username,
	}, nil)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	return decode(t, w), sessionCookie(t, w)
}

func TestHealthEndpoint(t *testing.T) {
	handler := newTestHandler(t)

	w := doJSON(handler, http.MethodGet, "/api/health", nil, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "ok", decode(t, w)["status"])
}

func TestRegisterAndLogin(t *testing.T) {
	handler := newTestHandler(t)

	user, cookie := register(t, handler, "alice", "alice@mit.edu")
	assert.NotContains(t, user, "password")
	assert.Equal(t, "alice", user["username"])

	// Session from registration is live
	w := doJSON(handler, http.MethodGet, "/api/user", nil, cookie)
	assert.Equal(t, http.StatusOK, w.Code)

	// Duplicate registration conflicts
	w = doJSON(handler, http.MethodPost, "/api/register", map[string]any{
		"username":        "ALICE",
		"password":        "supersecret",
		"passwordConfirm": "supersecret",
		"email":           "other@mit.edu",
		"displayName":     "Alice Again",
	}, nil)
	assert.Equal(t, http.StatusConflict, w.Code)

	// Non-university email is rejected
	w = doJSON(handler, http.MethodPost, "/api/register", map[string]any{
		"username":        "mallory",
		"password":        "supersecret",
		"passwordConfirm": "supersecret",
		"email":           "mallory@gmail.com",
		"displayName":     "Mallory",
	}, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Wrong password and unknown user are indistinguishable
	wrong := doJSON(handler, http.MethodPost, "/api/login", map[string]any{
		"username": "alice", "password": "wrongpass",
	}, nil)
	unknown := doJSON(handler, http.MethodPost, "/api/login", map[string]any{
		"username": "nobody", "password": "supersecret",
	}, nil)
	assert.Equal(t, http.StatusUnauthorized, wrong.Code)
	assert.Equal(t, http.StatusUnauthorized, unknown.Code)
	assert.JSONEq(t, stripTimestamp(t, wrong.Body.Bytes()), stripTimestamp(t, unknown.Body.Bytes()))

	w = doJSON(handler, http.MethodPost, "/api/login", map[string]any{
		"username": "alice", "password": "supersecret",
	}, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotContains(t, decode(t, w), "password")
}

// stripTimestamp drops the envelope timestamp so two error bodies can
// be compared for identical content.
func stripTimestamp(t *testing.T, body []byte) string {
	t.Helper()
	out := map[string]any{}
	require.NoError(t, json.Unmarshal(body, &out))
	delete(out, "timestamp")
	cleaned, err := json.Marshal(out)
	require.NoError(t, err)
	return string(cleaned)
}

func TestLogout(t *testing.T) {
	handler := newTestHandler(t)
	_, cookie := register(t, handler, "alice", "alice@mit.edu")

	w := doJSON(handler, http.MethodPost, "/api/logout", nil, cookie)
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(handler, http.MethodGet, "/api/user", nil, cookie)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// Logging out without a session still succeeds
	w = doJSON(handler, http.MethodPost, "/api/logout", nil, nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAuthRequired(t *testing.T) {
	handler := newTestHandler(t)

	protected := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/api/user"},
		{http.MethodPatch, "/api/user"},
		{http.MethodPost, "/api/resources"},
		{http.MethodPost, "/api/discussion-bowls"},
		{http.MethodPost, "/api/jobs"},
		{http.MethodPost, "/api/mentors"},
		{http.MethodGet, "/api/messages/1"},
		{http.MethodPost, "/api/messages"},
		{http.MethodPatch, "/api/messages/1/read"},
	}
	for _, route := range protected {
		w := doJSON(handler, route.method, route.path, map[string]any{}, nil)
		assert.Equal(t, http.StatusUnauthorized, w.Code, "%s %s", route.method, route.path)
	}
}

func TestBearerTokenAccepted(t *testing.T) {
	handler := newTestHandler(t)
	_, cookie := register(t, handler, "alice", "alice@mit.edu")

	req := httptest.NewRequest(http.MethodGet, "/api/user", nil)
	req.Header.Set("Authorization", "Bearer "+cookie.Value)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestResourceFilters(t *testing.T) {
	handler := newTestHandler(t)

	w := doJSON(handler, http.MethodGet, "/api/resources", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var all []map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &all))
	assert.Len(t, all, 3)

	// Discipline wins when both filters are present: the only
	// Electrical Engineering seed resource is intermediate.
	w = doJSON(handler, http.MethodGet, "/api/resources?discipline=Electrical+Engineering&skillLevel=beginner", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var filtered []map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &filtered))
	require.Len(t, filtered, 1)
	assert.Equal(t, "intermediate", filtered[0]["skillLevel"])

	w = doJSON(handler, http.MethodGet, "/api/resources/9999", nil, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDiscussionTopics(t *testing.T) {
	handler := newTestHandler(t)
	_, cookie := register(t, handler, "alice", "alice@mit.edu")

	w := doJSON(handler, http.MethodPost, "/api/discussion-bowls/1/topics", map[string]any{
		"title": "Best intro textbook?", "content": "Looking for recommendations.",
	}, cookie)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	topic := decode(t, w)
	assert.Equal(t, float64(1), topic["bowlId"])

	// The bowl's post counter moved
	w = doJSON(handler, http.MethodGet, "/api/discussion-bowls/1", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, float64(1), decode(t, w)["postCount"])

	w = doJSON(handler, http.MethodGet, "/api/discussion-bowls/1/topics", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var topics []map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &topics))
	assert.Len(t, topics, 1)

	// Unknown bowl
	w = doJSON(handler, http.MethodPost, "/api/discussion-bowls/9999/topics", map[string]any{
		"title": "t", "content": "c",
	}, cookie)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestMessagingFlow(t *testing.T) {
	handler := newTestHandler(t)
	alice, aliceCookie := register(t, handler, "alice", "alice@mit.edu")
	bob, bobCookie := register(t, handler, "bob", "bob@mit.edu")
	bobID := int64(bob["id"].(float64))

	w := doJSON(handler, http.MethodPost, "/api/messages", map[string]any{
		"receiverId": bobID, "content": "Hey, saw your robotics post",
	}, aliceCookie)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	sent := decode(t, w)
	assert.Equal(t, alice["id"], sent["senderId"])
	assert.Equal(t, false, sent["isRead"])

	// Bob sees the conversation from his side
	w = doJSON(handler, http.MethodGet, fmt.Sprintf("/api/messages/%v", alice["id"]), nil, bobCookie)
	require.Equal(t, http.StatusOK, w.Code)
	var conversation []map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &conversation))
	require.Len(t, conversation, 1)

	// Missing fields
	w = doJSON(handler, http.MethodPost, "/api/messages", map[string]any{"receiverId": bobID}, aliceCookie)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	w = doJSON(handler, http.MethodPost, "/api/messages", map[string]any{"content": "orphan"}, aliceCookie)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// A receiver that does not exist is a 404, not a stored message
	w = doJSON(handler, http.MethodPost, "/api/messages", map[string]any{
		"receiverId": 9999, "content": "into the void",
	}, aliceCookie)
	assert.Equal(t, http.StatusNotFound, w.Code)

	// Mark read
	w = doJSON(handler, http.MethodPatch, fmt.Sprintf("/api/messages/%v/read", sent["id"]), nil, bobCookie)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, true, decode(t, w)["isRead"])

	w = doJSON(handler, http.MethodPatch, "/api/messages/9999/read", nil, bobCookie)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestMentorDirectory(t *testing.T) {
	handler := newTestHandler(t)
	alice, cookie := register(t, handler, "alice", "alice@mit.edu")

	w := doJSON(handler, http.MethodPost, "/api/mentors", map[string]any{
		"company":           "TechCorp",
		"position":          "Staff Engineer",
		"yearsOfExperience": 8,
		"expertise":         []string{"Machine Learning", "Career Advice"},
	}, cookie)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	created := decode(t, w)
	assert.Equal(t, alice["id"], created["userId"])

	w = doJSON(handler, http.MethodGet, "/api/mentors?expertise=machine", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var mentors []map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &mentors))
	require.Len(t, mentors, 1)

	// User profile rides along
	user, ok := mentors[0]["user"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "alice", user["username"])
	assert.NotContains(t, user, "password")
}

func TestMentorWithZeroExperience(t *testing.T) {
	handler := newTestHandler(t)
	_, cookie := register(t, handler, "alice", "alice@mit.edu")

	// A brand-new graduate mentoring freshmen has zero years
	w := doJSON(handler, http.MethodPost, "/api/mentors", map[string]any{
		"company":           "TechCorp",
		"position":          "Junior Engineer",
		"yearsOfExperience": 0,
		"expertise":         []string{"Internship Applications"},
	}, cookie)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	assert.Equal(t, float64(0), decode(t, w)["yearsOfExperience"])
}

func TestBindingErrorsUseJSONFieldNames(t *testing.T) {
	handler := newTestHandler(t)
	_, cookie := register(t, handler, "alice", "alice@mit.edu")

	w := doJSON(handler, http.MethodPost, "/api/mentors", map[string]any{
		"position":          "Staff Engineer",
		"yearsOfExperience": 5,
		"expertise":         []string{"Machine Learning"},
	}, cookie)
	require.Equal(t, http.StatusBadRequest, w.Code)

	body := decode(t, w)
	detail, ok := body["error"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "company", detail["field"])
}

func TestProfileUpdate(t *testing.T) {
	handler := newTestHandler(t)
	_, cookie := register(t, handler, "alice", "alice@mit.edu")

	w := doJSON(handler, http.MethodPatch, "/api/user", map[string]any{
		"bio":        "Robotics club president",
		"discipline": "Mechanical Engineering",
	}, cookie)
	require.Equal(t, http.StatusOK, w.Code)
	updated := decode(t, w)
	assert.Equal(t, "Robotics club president", updated["bio"])
	assert.Equal(t, "Mechanical Engineering", updated["discipline"])
	// Identity fields are untouched
	assert.Equal(t, "alice", updated["username"])
}
