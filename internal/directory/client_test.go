package directory

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/abcdental/chat-platform/pkg/logger"
)

func newClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(srv.URL, 2*time.Second, logger.NewNop())
}

func TestFetchDoctorsReturnsNames(t *testing.T) {
	c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/doctors/", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{"id":1,"name":"Dr. Adams"},{"id":2,"name":"Dr. Baker"}]`))
	})

	names := c.FetchDoctors(context.Background())
	assert.Equal(t, []string{"Dr. Adams", "Dr. Baker"}, names)
}

func TestFetchDoctorsFallbackOnServerError(t *testing.T) {
	c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	assert.Equal(t, FallbackDoctors, c.FetchDoctors(context.Background()))
}

func TestFetchDoctorsFallbackOnMalformedBody(t *testing.T) {
	c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"not":"an array"}`))
	})

	assert.Equal(t, FallbackDoctors, c.FetchDoctors(context.Background()))
}

func TestFetchDoctorsFallbackOnEmptyResult(t *testing.T) {
	c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[]`))
	})

	assert.Equal(t, FallbackDoctors, c.FetchDoctors(context.Background()))
}

func TestFetchDoctorsFallbackOnUnreachable(t *testing.T) {
	c := NewClient("http://127.0.0.1:1", 200*time.Millisecond, logger.NewNop())
	assert.Equal(t, FallbackDoctors, c.FetchDoctors(context.Background()))
}
