package extract

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rickgao/energy-billing/internal/source"
	"github.com/rickgao/energy-billing/internal/testutil"
)

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func serveFile(t *testing.T, path string) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.ServeFile(w, r, path)
	}))
	t.Cleanup(server.Close)
	return server
}

func TestRun_PrintsTenRowsAndColumns(t *testing.T) {
	server := serveFile(t, testutil.WriteBillingParquet(t, 40))
	tmp := t.TempDir()

	var out bytes.Buffer
	err := Run(context.Background(), Options{
		URL:         server.URL + "/billing.parquet",
		PreviewRows: 10,
		Logger:      quietLogger(),
		TempDir:     tmp,
	}, &out)
	require.NoError(t, err)

	text := out.String()
	assert.Equal(t, 10, strings.Count(text, "CUST-"), "exactly ten data rows:\n%s", text)
	assert.Contains(t, text, "CUST-0009")
	assert.NotContains(t, text, "CUST-0010")
	assert.Contains(t, text, "[40 rows x 6 columns]")

	idx := strings.Index(text, "Columns (6):")
	require.GreaterOrEqual(t, idx, 0)
	for _, name := range testutil.BillingColumns {
		assert.Contains(t, text[idx:], "  "+name)
	}

	entries, err := os.ReadDir(tmp)
	require.NoError(t, err)
	assert.Empty(t, entries, "temp file should be removed")
}

func TestRun_Idempotent(t *testing.T) {
	server := serveFile(t, testutil.WriteBillingParquet(t, 15))
	opts := Options{
		URL:         server.URL,
		PreviewRows: 10,
		Logger:      quietLogger(),
		TempDir:     t.TempDir(),
	}

	var first, second bytes.Buffer
	require.NoError(t, Run(context.Background(), opts, &first))
	require.NoError(t, Run(context.Background(), opts, &second))
	assert.Equal(t, first.String(), second.String())
}

func TestRun_UnreachableWritesNothing(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	url := server.URL
	server.Close()

	var out bytes.Buffer
	err := Run(context.Background(), Options{
		URL:         url,
		PreviewRows: 10,
		Logger:      quietLogger(),
		TempDir:     t.TempDir(),
	}, &out)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "download dataset")
	assert.Zero(t, out.Len())
}

func TestRun_HTTPErrorWritesNothing(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	var out bytes.Buffer
	err := Run(context.Background(), Options{
		URL:         server.URL,
		PreviewRows: 10,
		Client:      source.NewClient(source.WithLogger(quietLogger())),
		Logger:      quietLogger(),
		TempDir:     t.TempDir(),
	}, &out)
	require.Error(t, err)

	var httpErr *source.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusNotFound, httpErr.StatusCode)
	assert.Zero(t, out.Len())
}

func TestRun_InvalidParquetWritesNothing(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("this is not parquet"))
	}))
	defer server.Close()

	var out bytes.Buffer
	err := Run(context.Background(), Options{
		URL:         server.URL,
		PreviewRows: 10,
		Logger:      quietLogger(),
		TempDir:     t.TempDir(),
	}, &out)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse dataset")
	assert.Zero(t, out.Len())
}

func TestRun_ValidatesOptions(t *testing.T) {
	var out bytes.Buffer
	require.Error(t, Run(context.Background(), Options{PreviewRows: 10}, &out))
	require.Error(t, Run(context.Background(), Options{URL: "http://x"}, &out))
	assert.Zero(t, out.Len())
}
