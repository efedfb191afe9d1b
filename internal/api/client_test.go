package api

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dkolesn/jobtrack/internal/common"
	"github.com/dkolesn/jobtrack/internal/logging"
)

func testClient(t *testing.T, h http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	return New(srv.URL, 5*time.Second, logging.NewText(io.Discard, false))
}

func TestGet_DecodesJSON(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodGet, r.Method)
		require.Equal(t, "/jobs/", r.URL.Path)
		require.NotEmpty(t, r.Header.Get("X-Request-Id"))
		w.Header().Set("Content-Type", "application/json")
		io.WriteString(w, `[{"id":1,"company_name":"Google"}]`)
	})

	var out []map[string]any
	require.NoError(t, c.Get(context.Background(), "/jobs/", &out))
	require.Len(t, out, 1)
	assert.Equal(t, "Google", out[0]["company_name"])
}

func TestGet_NotFoundMatchesSentinel(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"detail":"Job not found"}`, http.StatusNotFound)
	})

	err := c.Get(context.Background(), "/jobs/99", nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, common.ErrNotFound))

	var se *StatusError
	require.True(t, errors.As(err, &se))
	assert.Equal(t, http.StatusNotFound, se.Code)
}

func TestGet_ServerErrorKeepsBody(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	})

	err := c.Get(context.Background(), "/jobs/", nil)
	var se *StatusError
	require.True(t, errors.As(err, &se))
	assert.Equal(t, 500, se.Code)
	assert.Contains(t, se.Error(), "boom")
	assert.False(t, errors.Is(err, common.ErrNotFound))
}

func TestPostMultipart_FieldsAndFile(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseMultipartForm(1<<20))
		assert.Equal(t, "Google", r.FormValue("company_name"))
		assert.Equal(t, "Applied", r.FormValue("status"))

		file, hdr, err := r.FormFile("resume")
		require.NoError(t, err)
		defer file.Close()
		assert.Equal(t, "cv.pdf", hdr.Filename)
		content, _ := io.ReadAll(file)
		assert.Equal(t, "%PDF-1.4 data", string(content))

		w.Header().Set("Content-Type", "application/json")
		io.WriteString(w, `{"id":7}`)
	})

	form := NewForm().
		Set("company_name", "Google").
		Set("status", "Applied").
		File("resume", "cv.pdf", []byte("%PDF-1.4 data"))

	var out struct {
		ID int `json:"id"`
	}
	require.NoError(t, c.PostMultipart(context.Background(), "/jobs/", form, &out))
	assert.Equal(t, 7, out.ID)
}

func TestPut_QueryOnly(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "Offer", r.URL.Query().Get("status"))
		w.Header().Set("Content-Type", "application/json")
		io.WriteString(w, `{"id":3,"status":"Offer"}`)
	})

	var out struct {
		Status string `json:"status"`
	}
	require.NoError(t, c.Put(context.Background(), "/jobs/3/status?status=Offer", &out))
	assert.Equal(t, "Offer", out.Status)
}

func TestDo_ContextCancellation(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- c.Get(ctx, "/jobs/", nil) }()
	cancel()

	select {
	case err := <-done:
		require.Error(t, err)
		assert.True(t, errors.Is(err, context.Canceled))
	case <-time.After(2 * time.Second):
		t.Fatal("request did not abort after cancellation")
	}
}

func TestFetch_RelativeAndAbsolute(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/resume/cv.pdf", r.URL.Path)
		io.WriteString(w, "%PDF-1.4")
	})

	content, err := c.Fetch(context.Background(), "resume/cv.pdf")
	require.NoError(t, err)
	assert.Equal(t, "%PDF-1.4", string(content))

	other := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, "hosted")
	}))
	defer other.Close()

	content, err = c.Fetch(context.Background(), other.URL+"/raw/cv.pdf")
	require.NoError(t, err)
	assert.Equal(t, "hosted", string(content))
}
