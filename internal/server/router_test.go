package server

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"member-qa/internal/domain"
	"member-qa/internal/integrations/openai"
	"member-qa/internal/usecase"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type stubFetcher struct {
	data  domain.MessagesResponse
	err   error
	calls int
}

func (s *stubFetcher) FetchMessages(_ context.Context) (domain.MessagesResponse, error) {
	s.calls++
	return s.data, s.err
}

type stubLLM struct {
	answer string
	err    error
	calls  int
}

func (s *stubLLM) Chat(_ context.Context, _ string, _ []domain.ChatMessage) (string, error) {
	s.calls++
	return s.answer, s.err
}

func strPtr(s string) *string { return &s }

func newTestRouter(t *testing.T, fetcher *stubFetcher, llm *stubLLM) *gin.Engine {
	t.Helper()
	svc, err := usecase.NewAskService(fetcher, llm, "gpt-3.5-turbo")
	require.NoError(t, err)
	return NewRouter(svc)
}

func doRequest(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestHealth(t *testing.T) {
	r := newTestRouter(t, &stubFetcher{}, &stubLLM{})
	w := doRequest(r, http.MethodGet, "/health", "")

	require.Equal(t, http.StatusOK, w.Code)
	require.JSONEq(t, `{"status":"healthy","service":"Member QA (Clean)"}`, w.Body.String())
}

func TestRoot_Descriptor(t *testing.T) {
	r := newTestRouter(t, &stubFetcher{}, &stubLLM{})
	w := doRequest(r, http.MethodGet, "/", "")

	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), `"service":"Member QA (Clean)"`)
	require.Contains(t, w.Body.String(), `"health":"/health"`)
	require.Contains(t, w.Body.String(), `"ask":"/ask"`)
}

func TestAsk_HappyPath(t *testing.T) {
	fetcher := &stubFetcher{data: domain.MessagesResponse{Items: []domain.MessageItem{
		{UserName: strPtr("Layla"), Message: "Flying to London on June 2", Timestamp: "2024-05-01"},
	}}}
	llm := &stubLLM{answer: "Layla is flying to London on June 2."}
	r := newTestRouter(t, fetcher, llm)

	w := doRequest(r, http.MethodPost, "/ask", `{"question":"When is Layla planning her trip to London?"}`)
	require.Equal(t, http.StatusOK, w.Code)
	require.JSONEq(t, `{"answer":"Layla is flying to London on June 2."}`, w.Body.String())
	require.Equal(t, 1, fetcher.calls)
	require.Equal(t, 1, llm.calls)
}

func TestAsk_EmptyQuestion(t *testing.T) {
	fetcher := &stubFetcher{}
	llm := &stubLLM{answer: "ok"}
	r := newTestRouter(t, fetcher, llm)

	for _, body := range []string{`{"question":""}`, `{"question":"   "}`, `{}`} {
		w := doRequest(r, http.MethodPost, "/ask", body)
		require.Equal(t, http.StatusBadRequest, w.Code, "body=%s", body)
		require.JSONEq(t, `{"detail":"Question cannot be empty"}`, w.Body.String())
	}
	require.Zero(t, fetcher.calls, "validation failures must not reach the upstream")
	require.Zero(t, llm.calls)
}

func TestAsk_MalformedBody(t *testing.T) {
	r := newTestRouter(t, &stubFetcher{}, &stubLLM{})
	w := doRequest(r, http.MethodPost, "/ask", `not-json`)

	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Contains(t, w.Body.String(), "detail")
}

func TestAsk_UpstreamFailure(t *testing.T) {
	fetcher := &stubFetcher{err: errors.New("dial tcp: connection refused")}
	r := newTestRouter(t, fetcher, &stubLLM{answer: "ok"})

	w := doRequest(r, http.MethodPost, "/ask", `{"question":"anything?"}`)
	require.Equal(t, http.StatusBadGateway, w.Code)
	require.Contains(t, w.Body.String(), "Upstream messages API error")
}

func TestAsk_MissingCredential(t *testing.T) {
	llm := &stubLLM{err: openai.ErrAPIKeyNotConfigured}
	r := newTestRouter(t, &stubFetcher{}, llm)

	w := doRequest(r, http.MethodPost, "/ask", `{"question":"anything?"}`)
	require.Equal(t, http.StatusInternalServerError, w.Code)
	require.Contains(t, w.Body.String(), usecase.AuthErrorDetail)
}

func TestAsk_LLMFailure(t *testing.T) {
	llm := &stubLLM{err: &openai.HTTPStatusError{StatusCode: http.StatusInternalServerError, Body: "boom"}}
	r := newTestRouter(t, &stubFetcher{}, llm)

	w := doRequest(r, http.MethodPost, "/ask", `{"question":"anything?"}`)
	require.Equal(t, http.StatusInternalServerError, w.Code)
	require.Contains(t, w.Body.String(), "LLM error")
}

func TestCorrelationID_Generated(t *testing.T) {
	r := newTestRouter(t, &stubFetcher{}, &stubLLM{answer: "ok"})
	w := doRequest(r, http.MethodGet, "/health", "")

	require.NotEmpty(t, w.Header().Get("X-Correlation-Id"))
}

func TestCorrelationID_EchoedCaseInsensitive(t *testing.T) {
	r := newTestRouter(t, &stubFetcher{}, &stubLLM{answer: "ok"})

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("x-correlation-id", "corr-123")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, "corr-123", w.Header().Get("X-Correlation-Id"))
}
