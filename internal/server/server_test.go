package server

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tartampluch/go-addressbook/internal/config"
)

// -----------------------------------------------------------------------------
// Unit Tests (White-Box Testing of Handler Logic)
// -----------------------------------------------------------------------------

func TestHandler_ServingContent(t *testing.T) {
	srv := NewFeedServer("0") // Port irrelevant for handler tests
	expectedICS := []byte("BEGIN:VCALENDAR\r\nVERSION:2.0\r\nEND:VCALENDAR")
	srv.Update(expectedICS)

	req := httptest.NewRequest(http.MethodGet, config.RouteFeed, nil)
	w := httptest.NewRecorder()
	srv.handleFeedRequest(w, req)

	resp := w.Result()
	defer func() { _ = resp.Body.Close() }()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, config.MimeTextCalendar, resp.Header.Get(config.HeaderContentType))
	assert.Equal(t, config.MimeNoSniff, resp.Header.Get(config.HeaderXContentType))
	assert.NotEmpty(t, resp.Header.Get(config.HeaderETag))

	body, _ := io.ReadAll(resp.Body)
	assert.Equal(t, expectedICS, body)
}

func TestHandler_NotReady(t *testing.T) {
	srv := NewFeedServer("0")

	req := httptest.NewRequest(http.MethodGet, config.RouteFeed, nil)
	w := httptest.NewRecorder()
	srv.handleFeedRequest(w, req)

	resp := w.Result()
	defer func() { _ = resp.Body.Close() }()

	// No snapshot yet: clients are told to retry instead of getting garbage.
	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
	assert.Equal(t, config.RetryAfterSeconds, resp.Header.Get(config.HeaderRetryAfter))
}

func TestHandler_MethodNotAllowed(t *testing.T) {
	srv := NewFeedServer("0")
	srv.Update([]byte("data"))

	req := httptest.NewRequest(http.MethodPost, config.RouteFeed, nil)
	w := httptest.NewRecorder()
	srv.handleFeedRequest(w, req)

	resp := w.Result()
	defer func() { _ = resp.Body.Close() }()

	assert.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)
	assert.Equal(t, config.AllowedMethods, resp.Header.Get(config.HeaderAllow))
}

func TestHandler_ETagNotModified(t *testing.T) {
	srv := NewFeedServer("0")
	srv.Update([]byte("feed-body"))

	// First request captures the ETag.
	req := httptest.NewRequest(http.MethodGet, config.RouteFeed, nil)
	w := httptest.NewRecorder()
	srv.handleFeedRequest(w, req)
	etag := w.Result().Header.Get(config.HeaderETag)
	require.NotEmpty(t, etag)

	// Second request with If-None-Match gets a 304 without a body.
	req = httptest.NewRequest(http.MethodGet, config.RouteFeed, nil)
	req.Header.Set(config.HeaderIfNoneMatch, etag)
	w = httptest.NewRecorder()
	srv.handleFeedRequest(w, req)

	resp := w.Result()
	defer func() { _ = resp.Body.Close() }()
	assert.Equal(t, http.StatusNotModified, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	assert.Empty(t, body)
}

func TestHandler_HeadOmitsBody(t *testing.T) {
	srv := NewFeedServer("0")
	srv.Update([]byte("feed-body"))

	req := httptest.NewRequest(http.MethodHead, config.RouteFeed, nil)
	w := httptest.NewRecorder()
	srv.handleFeedRequest(w, req)

	resp := w.Result()
	defer func() { _ = resp.Body.Close() }()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.Empty(t, body)
}

func TestUpdate_ReplacesSnapshot(t *testing.T) {
	srv := NewFeedServer("0")
	srv.Update([]byte("first"))
	firstETag := srv.feed.Load().etag

	srv.Update([]byte("second"))
	assert.Equal(t, []byte("second"), srv.feed.Load().data)
	assert.NotEqual(t, firstETag, srv.feed.Load().etag, "Different bodies must produce different ETags")
}

func TestStart_RequiresPort(t *testing.T) {
	srv := NewFeedServer("")
	err := srv.Start(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), config.ErrPortRequired)
}

func TestStart_ShutsDownOnCancel(t *testing.T) {
	srv := NewFeedServer("0")
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() { done <- srv.Start(ctx) }()

	// Give the listener a moment, then cancel and expect a clean return.
	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(config.ShutdownTimeout + time.Second):
		t.Fatal("server did not shut down after context cancellation")
	}
}
