package http_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	gw2http "github.com/fivetwenty-io/gw2api/internal/http"
)

// MockLogger for testing.
type MockLogger struct {
	mu   sync.Mutex
	logs []map[string]interface{}
}

func (l *MockLogger) record(level, msg string, fields map[string]interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.logs = append(l.logs, map[string]interface{}{"level": level, "msg": msg, "fields": fields})
}

func (l *MockLogger) Debug(msg string, fields map[string]interface{}) { l.record("debug", msg, fields) }

func (l *MockLogger) Info(msg string, fields map[string]interface{}) { l.record("info", msg, fields) }

func (l *MockLogger) Warn(msg string, fields map[string]interface{}) { l.record("warn", msg, fields) }

func (l *MockLogger) Error(msg string, fields map[string]interface{}) { l.record("error", msg, fields) }

func (l *MockLogger) messages() []string {
	l.mu.Lock()
	defer l.mu.Unlock()

	msgs := make([]string, 0, len(l.logs))
	for _, entry := range l.logs {
		msgs = append(msgs, entry["msg"].(string))
	}

	return msgs
}

//nolint:funlen // Test functions can be longer for comprehensive testing
func TestClient_Do(t *testing.T) {
	t.Parallel()
	t.Run("successful request", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "/v2/build", request.URL.Path)
			assert.Equal(t, "GET", request.Method)
			assert.Equal(t, "application/json", request.Header.Get("Accept"))
			assert.Equal(t, "gw2api-go", request.Header.Get("User-Agent"))

			_ = json.NewEncoder(writer).Encode(map[string]int{"id": 115267})
		}))
		defer server.Close()

		client := gw2http.NewClient()

		resp, err := client.Do(context.Background(), &gw2http.Request{URL: server.URL + "/v2/build"})
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)

		var result map[string]int

		err = json.Unmarshal(resp.Body, &result)
		require.NoError(t, err)
		assert.Equal(t, 115267, result["id"])
	})

	t.Run("raw query is sent untouched", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "/v2/worlds", request.URL.Path)
			assert.Equal(t, "ids=1001,1002", request.URL.RawQuery)
			writer.WriteHeader(http.StatusPartialContent)
		}))
		defer server.Close()

		resp, err := gw2http.NewClient().Get(context.Background(), server.URL+"/v2/worlds?ids=1001,1002", nil)
		require.NoError(t, err)
		assert.Equal(t, 206, resp.StatusCode)
	})

	t.Run("error status is not an error", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			writer.WriteHeader(http.StatusNotFound)
			_, _ = writer.Write([]byte(`{"text":"no such id"}`))
		}))
		defer server.Close()

		resp, err := gw2http.NewClient().Get(context.Background(), server.URL+"/v2/worlds", nil)
		require.NoError(t, err)
		assert.Equal(t, 404, resp.StatusCode)
		assert.JSONEq(t, `{"text":"no such id"}`, string(resp.Body))
	})

	t.Run("custom headers", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "de", request.Header.Get("Accept-Language"))
			assert.Equal(t, "Bearer KEY", request.Header.Get("Authorization"))
			assert.Equal(t, "custom-agent", request.Header.Get("User-Agent"))
			writer.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		client := gw2http.NewClient(gw2http.WithUserAgent("custom-agent"))

		resp, err := client.Do(context.Background(), &gw2http.Request{
			URL: server.URL + "/v2/tokeninfo",
			Headers: map[string]string{
				"Accept-Language": "de",
				"Authorization":   "Bearer KEY",
			},
		})
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)
	})

	t.Run("with debug logging", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			writer.WriteHeader(http.StatusOK)
			_ = json.NewEncoder(writer).Encode(map[string]string{"result": "ok"})
		}))
		defer server.Close()

		logger := &MockLogger{}
		client := gw2http.NewClient(gw2http.WithLogger(logger), gw2http.WithDebug(true))

		_, err := client.Get(context.Background(), server.URL+"/v2/build", map[string]string{"Authorization": "Bearer SECRET"})
		require.NoError(t, err)

		msgs := logger.messages()
		require.NotEmpty(t, msgs)
		assert.Equal(t, "HTTP Request", msgs[0])
		assert.Equal(t, "HTTP Response", msgs[len(msgs)-1])

		for _, entry := range logger.logs {
			assert.NotContains(t, fmt.Sprint(entry["fields"]), "SECRET")
		}
	})

	t.Run("without debug nothing is logged", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			writer.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		logger := &MockLogger{}

		_, err := gw2http.NewClient(gw2http.WithLogger(logger)).Get(context.Background(), server.URL, nil)
		require.NoError(t, err)
		assert.Empty(t, logger.messages())
	})
}

//nolint:funlen // Test functions can be longer for comprehensive testing
func TestClient_SingleAttempt(t *testing.T) {
	t.Parallel()

	for _, status := range []int{http.StatusInternalServerError, http.StatusServiceUnavailable, http.StatusTooManyRequests, http.StatusRequestTimeout} {
		t.Run(http.StatusText(status), func(t *testing.T) {
			t.Parallel()

			var attempts atomic.Int32

			server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
				attempts.Add(1)
				writer.WriteHeader(status)
			}))
			defer server.Close()

			resp, err := gw2http.NewClient().Get(context.Background(), server.URL+"/test", nil)
			require.NoError(t, err)
			assert.Equal(t, status, resp.StatusCode)
			assert.Equal(t, int32(1), attempts.Load())
		})
	}

	t.Run("transport failure is returned", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {}))
		url := server.URL
		server.Close()

		resp, err := gw2http.NewClient().Get(context.Background(), url+"/test", nil)
		require.Error(t, err)
		assert.Nil(t, resp)
	})

	t.Run("context deadline is honored", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			select {
			case <-request.Context().Done():
			case <-time.After(2 * time.Second):
			}
		}))
		defer server.Close()

		ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
		defer cancel()

		_, err := gw2http.NewClient().Get(ctx, server.URL+"/slow", nil)
		require.Error(t, err)
		require.ErrorIs(t, err, context.DeadlineExceeded)
	})
}

func TestClient_WithHTTPClient(t *testing.T) {
	t.Parallel()

	var used atomic.Bool

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		writer.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	httpClient := &http.Client{Transport: roundTripFunc(func(req *http.Request) (*http.Response, error) {
		used.Store(true)

		return http.DefaultTransport.RoundTrip(req)
	})}

	_, err := gw2http.NewClient(gw2http.WithHTTPClient(httpClient)).Get(context.Background(), server.URL, nil)
	require.NoError(t, err)
	assert.True(t, used.Load())
}

type roundTripFunc func(*http.Request) (*http.Response, error)

func (f roundTripFunc) RoundTrip(req *http.Request) (*http.Response, error) {
	return f(req)
}
