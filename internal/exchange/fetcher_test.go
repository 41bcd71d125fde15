package exchange_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tartampluch/go-addressbook/internal/config"
	"github.com/tartampluch/go-addressbook/internal/exchange"
)

func TestHTTPFetcher_Fetch(t *testing.T) {
	const body = "BEGIN:VCARD\r\nVERSION:4.0\r\nFN:Remote\r\nEND:VCARD\r\n"

	var gotUA string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUA = r.Header.Get(config.HeaderUserAgent)
		_, _ = w.Write([]byte(body))
	}))
	defer srv.Close()

	f := exchange.NewHTTPFetcher()
	rc, err := f.Fetch(context.Background(), srv.URL)
	require.NoError(t, err)
	defer func() { _ = rc.Close() }()

	data, err := io.ReadAll(rc)
	require.NoError(t, err)
	assert.Equal(t, body, string(data))
	assert.Equal(t, config.UserAgent, gotUA, "Requests must identify the client")
}

func TestHTTPFetcher_Fetch_RejectsScheme(t *testing.T) {
	f := exchange.NewHTTPFetcher()

	_, err := f.Fetch(context.Background(), "ftp://example.com/contacts.vcf")
	require.Error(t, err)
	assert.Contains(t, err.Error(), config.ErrProtocol)
}

func TestHTTPFetcher_Fetch_ErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gone", http.StatusNotFound)
	}))
	defer srv.Close()

	f := exchange.NewHTTPFetcher()
	_, err := f.Fetch(context.Background(), srv.URL)
	require.Error(t, err)
	assert.Contains(t, err.Error(), config.ErrFetchStatus)
}
