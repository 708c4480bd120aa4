package v1

import (
	"encoding/json"
	"io"
	"net/http"
	"strconv"

	"github.com/dummyhome/controller/inventory"
	"github.com/gorilla/mux"
)

type deviceController struct {
	store *inventory.Store
}

type changeCountRequest struct {
	Count int
}

func (c *deviceController) changeCount(w http.ResponseWriter, r *http.Request) {
	roomID, deviceName, ok := deviceIdentifiers(w, r)
	if !ok {
		return
	}

	request := changeCountRequest{}

	data, err := io.ReadAll(r.Body)
	if err != nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	if err = json.Unmarshal(data, &request); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	if err = c.store.ChangeCount(roomID, deviceName, request.Count); err != nil {
		writeStoreError(w, r, err)
		return
	}

	http.Error(w, http.StatusText(http.StatusNoContent), http.StatusNoContent)
}

type updateSubItemRequest struct {
	Name    *string
	Checked *bool
}

func (c *deviceController) updateSubItem(w http.ResponseWriter, r *http.Request) {
	roomID, deviceName, ok := deviceIdentifiers(w, r)
	if !ok {
		return
	}

	params := mux.Vars(r)

	index, err := strconv.Atoi(params["index"])
	if err != nil {
		http.NotFound(w, r)
		return
	}

	request := updateSubItemRequest{}

	data, err := io.ReadAll(r.Body)
	if err != nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	if err = json.Unmarshal(data, &request); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	if request.Name != nil {
		if err := c.store.RenameSubItem(roomID, deviceName, index, *request.Name); err != nil {
			writeStoreError(w, r, err)
			return
		}
	}

	if request.Checked != nil {
		if err := c.store.ToggleCheckbox(roomID, deviceName, index, *request.Checked); err != nil {
			writeStoreError(w, r, err)
			return
		}
	}

	http.Error(w, http.StatusText(http.StatusNoContent), http.StatusNoContent)
}

func deviceIdentifiers(w http.ResponseWriter, r *http.Request) (int, string, bool) {
	params := mux.Vars(r)

	rawRoom, ok := params["identifier"]
	if !ok {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return 0, "", false
	}

	roomID, err := strconv.Atoi(rawRoom)
	if err != nil {
		http.NotFound(w, r)
		return 0, "", false
	}

	deviceName, ok := params["device"]
	if !ok {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return 0, "", false
	}

	return roomID, deviceName, true
}
