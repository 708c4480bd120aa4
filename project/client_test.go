package project

import (
	"context"
	"errors"
	"github.com/dummyhome/controller/inventory"
	"github.com/dummyhome/controller/schema"
	"github.com/stretchr/testify/assert"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestClient_Fetch(t *testing.T) {
	t.Run("fetches the project file by id", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodGet, r.Method)
			assert.Equal(t, "/project/983399104480051190/json", r.URL.Path)

			w.Write([]byte(`{"projectRooms":{"rooms":[]}}`))
		}))
		defer srv.Close()

		c := &Client{BaseURL: srv.URL, ProjectID: "983399104480051190"}

		body, err := c.Fetch(context.Background())
		assert.NoError(t, err)
		assert.JSONEq(t, `{"projectRooms":{"rooms":[]}}`, string(body))
	})

	t.Run("errors on a non-200 status", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "boom", http.StatusInternalServerError)
		}))
		defer srv.Close()

		c := &Client{BaseURL: srv.URL, ProjectID: "1"}

		_, err := c.Fetch(context.Background())
		assert.True(t, errors.Is(err, ErrUnexpectedStatus))
	})
}

func TestClient_Put(t *testing.T) {
	t.Run("uploads the project file and accepts code OK", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPut, r.Method)
			assert.Equal(t, "/project/983399104480051190", r.URL.Path)
			assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

			w.Write([]byte(`{"code":"OK"}`))
		}))
		defer srv.Close()

		c := &Client{BaseURL: srv.URL, ProjectID: "983399104480051190"}

		err := c.Put(context.Background(), schema.EncodeEmpty(inventory.DefaultRooms(), "983399104480051190", "Dummy Home"))
		assert.NoError(t, err)
	})

	t.Run("errors when the endpoint replies with another code", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"code":"REJECTED"}`))
		}))
		defer srv.Close()

		c := &Client{BaseURL: srv.URL, ProjectID: "1"}

		err := c.Put(context.Background(), schema.ProjectFile{})
		assert.True(t, errors.Is(err, ErrRemoteRejected))
	})

	t.Run("errors when the reply is not json", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`<html>`))
		}))
		defer srv.Close()

		c := &Client{BaseURL: srv.URL, ProjectID: "1"}

		err := c.Put(context.Background(), schema.ProjectFile{})
		assert.Error(t, err)
	})
}
