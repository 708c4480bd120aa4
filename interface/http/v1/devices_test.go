package v1

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/dummyhome/controller/inventory"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
)

func deviceRouter(store *inventory.Store) http.Handler {
	controller := deviceController{store: store}

	router := mux.NewRouter()
	router.HandleFunc("/rooms/{identifier}/devices/{device}/count", controller.changeCount).Methods("PUT")
	router.HandleFunc("/rooms/{identifier}/devices/{device}/subitems/{index}", controller.updateSubItem).Methods("PATCH")

	return router
}

func countPath(roomID int, device string) string {
	return fmt.Sprintf("/rooms/%d/devices/%s/count", roomID, url.PathEscape(device))
}

func subItemPath(roomID int, device string, index int) string {
	return fmt.Sprintf("/rooms/%d/devices/%s/subitems/%d", roomID, url.PathEscape(device), index)
}

func Test_deviceController_changeCount(t *testing.T) {
	t.Run("changes the count and materialises sub items", func(t *testing.T) {
		store := inventory.NewStore(nil)

		req, err := http.NewRequest("PUT", countPath(1, "Dimmable lights"), strings.NewReader(`{"Count":3}`))
		if err != nil {
			t.Fatal(err)
		}

		rr := httptest.NewRecorder()
		deviceRouter(store).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusNoContent, rr.Code)

		room, _ := store.Room(1)
		for _, device := range room.Devices {
			if device.Name == "Dimmable lights" {
				assert.Equal(t, 3, device.Count)
				assert.Len(t, device.SubItems, 3)
				assert.Equal(t, "Dimmable lights 1", device.SubItems[0].Name)
			}
		}
	})

	t.Run("returns a 400 with the reason when a ceiling is hit", func(t *testing.T) {
		store := inventory.NewStore(nil)

		req, err := http.NewRequest("PUT", countPath(1, "Garage door"), strings.NewReader(`{"Count":2}`))
		if err != nil {
			t.Fatal(err)
		}

		rr := httptest.NewRecorder()
		deviceRouter(store).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Contains(t, rr.Body.String(), "maximum 1 garage door")
	})

	t.Run("returns a 404 for an unknown device", func(t *testing.T) {
		store := inventory.NewStore(nil)

		req, err := http.NewRequest("PUT", countPath(1, "Toaster"), strings.NewReader(`{"Count":1}`))
		if err != nil {
			t.Fatal(err)
		}

		rr := httptest.NewRecorder()
		deviceRouter(store).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
}

func Test_deviceController_updateSubItem(t *testing.T) {
	t.Run("renames a sub item", func(t *testing.T) {
		store := inventory.NewStore(nil)
		assert.NoError(t, store.ChangeCount(1, "Smart lock", 2))

		req, err := http.NewRequest("PATCH", subItemPath(1, "Smart lock", 1), strings.NewReader(`{"Name":"Back door"}`))
		if err != nil {
			t.Fatal(err)
		}

		rr := httptest.NewRecorder()
		deviceRouter(store).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusNoContent, rr.Code)

		room, _ := store.Room(1)
		for _, device := range room.Devices {
			if device.Name == "Smart lock" {
				assert.Equal(t, "Back door", device.SubItems[1].Name)
			}
		}
	})

	t.Run("checks a sub item and enforces the doorbell ceiling", func(t *testing.T) {
		store := inventory.NewStore(nil)
		assert.NoError(t, store.ChangeCount(1, "Smart lock", 2))

		req, err := http.NewRequest("PATCH", subItemPath(1, "Smart lock", 0), strings.NewReader(`{"Checked":true}`))
		if err != nil {
			t.Fatal(err)
		}

		rr := httptest.NewRecorder()
		deviceRouter(store).ServeHTTP(rr, req)
		assert.Equal(t, http.StatusNoContent, rr.Code)

		req, err = http.NewRequest("PATCH", subItemPath(1, "Smart lock", 1), strings.NewReader(`{"Checked":true}`))
		if err != nil {
			t.Fatal(err)
		}

		rr = httptest.NewRecorder()
		deviceRouter(store).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Contains(t, rr.Body.String(), "doorbell")
	})

	t.Run("returns a 404 for an out of range index", func(t *testing.T) {
		store := inventory.NewStore(nil)

		req, err := http.NewRequest("PATCH", subItemPath(1, "Smart lock", 5), strings.NewReader(`{"Name":"x"}`))
		if err != nil {
			t.Fatal(err)
		}

		rr := httptest.NewRecorder()
		deviceRouter(store).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
}
