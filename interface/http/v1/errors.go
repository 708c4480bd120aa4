package v1

import (
	"errors"
	"net/http"

	"github.com/dummyhome/controller/inventory"
	"github.com/dummyhome/controller/project"
)

// writeStoreError maps inventory errors onto HTTP status codes, missing
// identifiers become 404s and validation rejections surface their
// user visible text as a 400.
func writeStoreError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, inventory.ErrRoomNotFound),
		errors.Is(err, inventory.ErrDeviceNotFound),
		errors.Is(err, inventory.ErrSubItemNotFound):
		http.NotFound(w, r)
	default:
		var invErr inventory.InventoryError
		if errors.As(err, &invErr) {
			http.Error(w, invErr.Error(), http.StatusBadRequest)
			return
		}

		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
	}
}

func writeProjectError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, project.ErrSubmitInFlight):
		http.Error(w, err.Error(), http.StatusConflict)
	default:
		http.Error(w, err.Error(), http.StatusBadGateway)
	}
}
