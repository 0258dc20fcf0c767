package webhook

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/khoahotran/portfolio-api/internal/application/service"
)

func TestRevalidateClient_PostsEvent(t *testing.T) {
	var got service.ContentEvent
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	c, err := NewRevalidateClient(srv.URL)
	require.NoError(t, err)

	evt := service.ContentEvent{Resource: "project", Action: service.ActionDeleted, ID: "p1"}
	require.NoError(t, c.Revalidate(context.Background(), evt))
	assert.Equal(t, evt.Resource, got.Resource)
	assert.Equal(t, evt.Action, got.Action)
	assert.Equal(t, evt.ID, got.ID)
}

func TestRevalidateClient_ErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	c, err := NewRevalidateClient(srv.URL)
	require.NoError(t, err)
	assert.Error(t, c.Revalidate(context.Background(), service.ContentEvent{Resource: "project", Action: "created"}))
}

func TestNewRevalidateClient_RequiresURL(t *testing.T) {
	_, err := NewRevalidateClient("")
	assert.Error(t, err)
}
