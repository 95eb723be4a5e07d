package handlers_test

import (
	"net/http"
	"testing"
	"time"

	"github.com/benson/poolbuilder/internal/daily"
	"github.com/benson/poolbuilder/internal/domain"
	"github.com/benson/poolbuilder/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type loginResponse struct {
	Token string `json:"token"`
}

type featureResponse struct {
	Meta domain.DayMeta `json:"meta"`
}

func submitOne(t *testing.T, ts *testutil.TestServer, fingerprint string) string {
	t.Helper()
	resp := ts.PostJSON(t, "/submit", testutil.ValidDeck(fingerprint), "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var result submitResponse
	testutil.DecodeJSON(t, resp, &result)
	return result.ID
}

func TestAdminFeature(t *testing.T) {
	ts := testutil.NewTestServer(t)
	today := daily.Date(time.Now())
	id := submitOne(t, ts, "fp-1")

	feature := map[string]any{"date": today, "submissionId": id, "featured": true}

	resp := ts.PostJSON(t, "/admin/feature", feature, testutil.AdminSecret)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var result featureResponse
	testutil.DecodeJSON(t, resp, &result)
	assert.Equal(t, []string{id}, result.Meta.Featured)

	// Featuring twice is a no-op.
	resp = ts.PostJSON(t, "/admin/feature", feature, testutil.AdminSecret)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	testutil.DecodeJSON(t, resp, &result)
	assert.Equal(t, []string{id}, result.Meta.Featured)

	// Unfeature removes it.
	feature["featured"] = false
	resp = ts.PostJSON(t, "/admin/feature", feature, testutil.AdminSecret)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	testutil.DecodeJSON(t, resp, &result)
	assert.Empty(t, result.Meta.Featured)
}

func TestAdminFeature_Unauthorized(t *testing.T) {
	ts := testutil.NewTestServer(t)
	today := daily.Date(time.Now())
	feature := map[string]any{"date": today, "submissionId": "abc12345", "featured": true}

	tests := []struct {
		name   string
		bearer string
	}{
		{"no credential", ""},
		{"wrong secret", "not-the-secret"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := ts.PostJSON(t, "/admin/feature", feature, tt.bearer)
			defer resp.Body.Close()
			assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
		})
	}
}

func TestAdminLogin(t *testing.T) {
	ts := testutil.NewTestServer(t)
	today := daily.Date(time.Now())
	id := submitOne(t, ts, "fp-1")

	resp := ts.PostJSON(t, "/admin/login", map[string]string{"secret": "wrong"}, "")
	resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	resp = ts.PostJSON(t, "/admin/login", map[string]string{"secret": testutil.AdminSecret}, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var login loginResponse
	testutil.DecodeJSON(t, resp, &login)
	require.NotEmpty(t, login.Token)

	// The issued token works as a bearer credential.
	feature := map[string]any{"date": today, "submissionId": id, "featured": true}
	resp = ts.PostJSON(t, "/admin/feature", feature, login.Token)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var result featureResponse
	testutil.DecodeJSON(t, resp, &result)
	assert.Equal(t, []string{id}, result.Meta.Featured)
}
