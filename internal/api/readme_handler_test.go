package api_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/phrazzld/readme-api/internal/api"
	"github.com/phrazzld/readme-api/internal/api/shared"
	"github.com/phrazzld/readme-api/internal/domain"
	"github.com/phrazzld/readme-api/internal/generation"
	"github.com/phrazzld/readme-api/internal/mocks"
	"github.com/phrazzld/readme-api/internal/platform/logger"
	"github.com/phrazzld/readme-api/internal/readme"
	"github.com/phrazzld/readme-api/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type handlerFixture struct {
	handler   *api.ReadmeHandler
	generator *mocks.MockGenerator
	fetcher   *mocks.MockRepoFetcher
	tracker   *service.AvailabilityTracker
}

func newHandlerFixture(t *testing.T, gen *mocks.MockGenerator, maxInputChars int) *handlerFixture {
	t.Helper()

	log, _ := logger.GetTestLogger(t)
	f := &handlerFixture{
		generator: gen,
		fetcher:   &mocks.MockRepoFetcher{},
		tracker:   service.NewAvailabilityTracker(10 * time.Minute),
	}

	var g generation.Generator
	if gen != nil {
		g = gen
	}
	svc, err := service.NewReadmeService(g, f.fetcher, f.tracker, nil, log)
	require.NoError(t, err)

	f.handler = api.NewReadmeHandler(svc, maxInputChars, log)
	return f
}

func postGenerate(t *testing.T, h *api.ReadmeHandler, body string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, "/api/generate-readme", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req = req.WithContext(shared.WithTraceID(req.Context(), "trace-abc"))
	w := httptest.NewRecorder()
	h.GenerateReadme(w, req)
	return w
}

func decodeResponse(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()

	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func TestGenerateReadmeGemini(t *testing.T) {
	t.Parallel()

	f := newHandlerFixture(t, mocks.NewMockGeneratorWithReadme("# From Gemini\n"), 0)

	w := postGenerate(t, f.handler, `{"input":"A Go CLI for notes"}`)
	require.Equal(t, http.StatusOK, w.Code)

	body := decodeResponse(t, w)
	assert.Equal(t, map[string]interface{}{
		"readme": "# From Gemini\n",
		"source": "gemini",
	}, body)
	assert.Equal(t, "A Go CLI for notes", f.generator.LastRequest().Description)
}

func TestGenerateReadmeFallbackContract(t *testing.T) {
	t.Parallel()

	input := "Todo app\n- Offline mode\n- Sync\nBuilt with React and Firebase"

	t.Run("useGemini false", func(t *testing.T) {
		t.Parallel()
		f := newHandlerFixture(t, mocks.NewMockGeneratorWithReadme("unused"), 0)

		payload, err := json.Marshal(map[string]interface{}{"input": input, "useGemini": false})
		require.NoError(t, err)
		w := postGenerate(t, f.handler, string(payload))
		require.Equal(t, http.StatusOK, w.Code)

		body := decodeResponse(t, w)
		assert.Equal(t, map[string]interface{}{
			"readme": readme.Synthesize(input),
			"source": "fallback",
		}, body)
		assert.Zero(t, f.generator.CallCount())
	})

	t.Run("missing API key", func(t *testing.T) {
		t.Parallel()
		f := newHandlerFixture(t, nil, 0)

		w := postGenerate(t, f.handler, `{"input":"Tiny"}`)
		require.Equal(t, http.StatusOK, w.Code)

		body := decodeResponse(t, w)
		assert.Equal(t, "fallback", body["source"])
		assert.Equal(t, service.WarningAPIKeyMissing, body["warning"])
		assert.Equal(t, "api_key_missing", body["errorType"])
		assert.NotContains(t, body, "error")
	})

	t.Run("upstream quota error", func(t *testing.T) {
		t.Parallel()
		f := newHandlerFixture(t, mocks.NewMockGeneratorWithError(
			generation.NewUpstreamError("You exceeded your current quota", 429)), 0)

		w := postGenerate(t, f.handler, `{"input":"Tiny"}`)
		require.Equal(t, http.StatusOK, w.Code)

		body := decodeResponse(t, w)
		assert.Equal(t, "fallback", body["source"])
		assert.Equal(t, "You exceeded your current quota", body["error"])
		assert.Equal(t, "quota_exceeded", body["errorType"])
		assert.Equal(t, readme.Synthesize("Tiny"), body["readme"])
		assert.True(t, f.tracker.Degraded())
	})
}

func TestGenerateReadmeInvalidRequests(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name           string
		body           string
		expectedStatus int
		expectedError  string
	}{
		{"empty body", ``, http.StatusBadRequest, api.InvalidBodyMessage},
		{"malformed JSON", `{"input":`, http.StatusBadRequest, api.InvalidBodyMessage},
		{"not an object", `"just a string"`, http.StatusBadRequest, api.InvalidBodyMessage},
		{"missing input", `{}`, http.StatusBadRequest, api.InvalidBodyMessage},
		{"empty input", `{"input":""}`, http.StatusBadRequest, api.InvalidBodyMessage},
		{"non-string input", `{"input":42}`, http.StatusBadRequest, api.InvalidBodyMessage},
		{"null body", `null`, http.StatusBadRequest, api.InvalidBodyMessage},
		{"invalid repoUrl", `{"input":"x","repoUrl":"not a url"}`, http.StatusBadRequest, "Invalid repoUrl: invalid URL"},
		{"non-GitHub repoUrl", `{"repoUrl":"https://gitlab.com/a/b"}`, http.StatusBadRequest, "Invalid repository URL. Expected https://github.com/{owner}/{repo}."},
		{"too long", `{"input":"` + strings.Repeat("é", 11) + `"}`, http.StatusBadRequest, "Project description is too long. Maximum length is 10 characters."},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			f := newHandlerFixture(t, mocks.NewMockGeneratorWithReadme("unused"), 10)

			w := postGenerate(t, f.handler, tc.body)
			assert.Equal(t, tc.expectedStatus, w.Code)

			var body shared.ErrorResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			assert.Equal(t, tc.expectedError, body.Error)
			assert.Equal(t, "trace-abc", body.TraceID)
			assert.Zero(t, f.generator.CallCount())
		})
	}
}

func TestGenerateReadmeInputAtLimit(t *testing.T) {
	t.Parallel()

	f := newHandlerFixture(t, mocks.NewMockGeneratorWithReadme("ok"), 10)
	w := postGenerate(t, f.handler, `{"input":"`+strings.Repeat("é", 10)+`"}`)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestGenerateReadmeBodyTooLarge(t *testing.T) {
	t.Parallel()

	f := newHandlerFixture(t, mocks.NewMockGeneratorWithReadme("unused"), 10)

	var buf bytes.Buffer
	buf.WriteString(`{"input":"`)
	buf.WriteString(strings.Repeat("a", 10000))
	buf.WriteString(`"}`)

	w := postGenerate(t, f.handler, buf.String())
	assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
}

func TestGenerateReadmeWithRepository(t *testing.T) {
	t.Parallel()

	t.Run("repository only", func(t *testing.T) {
		t.Parallel()
		f := newHandlerFixture(t, mocks.NewMockGeneratorWithReadme("# Demo\n"), 0)
		f.fetcher.Repository = &domain.Repository{
			Ref:         domain.RepoRef{Owner: "octo", Name: "demo"},
			Description: "Demo project",
			HTMLURL:     "https://github.com/octo/demo",
			Stars:       42,
			Topics:      []string{"cli"},
		}

		w := postGenerate(t, f.handler, `{"repoUrl":"https://github.com/octo/demo"}`)
		require.Equal(t, http.StatusOK, w.Code)

		body := decodeResponse(t, w)
		assert.Equal(t, "gemini", body["source"])
		repo, ok := body["repository"].(map[string]interface{})
		require.True(t, ok)
		assert.Equal(t, "octo/demo", repo["fullName"])
		assert.Equal(t, float64(42), repo["stars"])
		assert.Equal(t, "octo/demo", f.generator.LastRequest().RepositoryName)
	})

	t.Run("repository unavailable without input", func(t *testing.T) {
		t.Parallel()
		f := newHandlerFixture(t, mocks.NewMockGeneratorWithReadme("unused"), 0)
		f.fetcher.Err = errors.New("github: 500")

		w := postGenerate(t, f.handler, `{"repoUrl":"https://github.com/octo/demo"}`)
		assert.Equal(t, http.StatusBadGateway, w.Code)
	})

	t.Run("repository unavailable with input", func(t *testing.T) {
		t.Parallel()
		f := newHandlerFixture(t, mocks.NewMockGeneratorWithReadme("# Doc\n"), 0)
		f.fetcher.Err = errors.New("github: 500")

		w := postGenerate(t, f.handler, `{"input":"notes","repoUrl":"https://github.com/octo/demo"}`)
		require.Equal(t, http.StatusOK, w.Code)
		body := decodeResponse(t, w)
		assert.Equal(t, service.WarningRepoUnavailable, body["warning"])
		assert.NotContains(t, body, "repository")
	})
}

func TestStatus(t *testing.T) {
	t.Parallel()

	f := newHandlerFixture(t, mocks.NewMockGeneratorWithReadme("x"), 0)

	get := func() api.StatusResponse {
		w := httptest.NewRecorder()
		f.handler.Status(w, httptest.NewRequest(http.MethodGet, "/api/status", nil))
		require.Equal(t, http.StatusOK, w.Code)
		var resp api.StatusResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		return resp
	}

	resp := get()
	assert.True(t, resp.Gemini.Configured)
	assert.False(t, resp.Gemini.Degraded)
	assert.Nil(t, resp.Gemini.DegradedUntil)

	f.tracker.MarkDegraded("quota_exceeded")
	resp = get()
	assert.True(t, resp.Gemini.Degraded)
	assert.Equal(t, "quota_exceeded", resp.Gemini.Reason)
	require.NotNil(t, resp.Gemini.DegradedUntil)
	assert.True(t, resp.Gemini.DegradedUntil.After(time.Now()))
}
