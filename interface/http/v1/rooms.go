package v1

import (
	"encoding/json"
	"io"
	"net/http"
	"strconv"

	"github.com/dummyhome/controller/inventory"
	"github.com/gorilla/mux"
)

type roomController struct {
	store *inventory.Store
}

func (c *roomController) listRooms(w http.ResponseWriter, r *http.Request) {
	apiRooms := make([]ExportedRoom, 0)

	for _, room := range c.store.Rooms() {
		apiRooms = append(apiRooms, exportRoom(room))
	}

	data, err := json.Marshal(apiRooms)
	if err != nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Add("content-type", "application/json")
	w.Write(data)
}

type createRoomRequest struct {
	Name string
}

func (c *roomController) createRoom(w http.ResponseWriter, r *http.Request) {
	request := createRoomRequest{}

	data, err := io.ReadAll(r.Body)
	if err != nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	if err = json.Unmarshal(data, &request); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	room, err := c.store.AddRoom(request.Name)
	if err != nil {
		writeStoreError(w, r, err)
		return
	}

	body, err := json.Marshal(exportRoom(room))
	if err != nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Add("content-type", "application/json")
	w.WriteHeader(http.StatusCreated)
	w.Write(body)
}

func (c *roomController) getRoom(w http.ResponseWriter, r *http.Request) {
	id, ok := roomIdentifier(w, r)
	if !ok {
		return
	}

	room, found := c.store.Room(id)
	if !found {
		http.NotFound(w, r)
		return
	}

	data, err := json.Marshal(exportRoom(room))
	if err != nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Add("content-type", "application/json")
	w.Write(data)
}

func (c *roomController) getCurrentRoom(w http.ResponseWriter, r *http.Request) {
	room := c.store.CurrentRoom()

	data, err := json.Marshal(exportRoom(room))
	if err != nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Add("content-type", "application/json")
	w.Write(data)
}

type selectRoomRequest struct {
	ID int
}

func (c *roomController) selectCurrentRoom(w http.ResponseWriter, r *http.Request) {
	request := selectRoomRequest{}

	data, err := io.ReadAll(r.Body)
	if err != nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	if err = json.Unmarshal(data, &request); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	if err = c.store.SetCurrentRoom(request.ID); err != nil {
		writeStoreError(w, r, err)
		return
	}

	http.Error(w, http.StatusText(http.StatusNoContent), http.StatusNoContent)
}

type updateRoomRequest struct {
	Name *string
}

func (c *roomController) updateRoom(w http.ResponseWriter, r *http.Request) {
	id, ok := roomIdentifier(w, r)
	if !ok {
		return
	}

	request := updateRoomRequest{}

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
		if err := c.store.RenameRoom(id, *request.Name); err != nil {
			writeStoreError(w, r, err)
			return
		}
	}

	http.Error(w, http.StatusText(http.StatusNoContent), http.StatusNoContent)
}

func (c *roomController) deleteRoom(w http.ResponseWriter, r *http.Request) {
	id, ok := roomIdentifier(w, r)
	if !ok {
		return
	}

	if err := c.store.DeleteRoom(id); err != nil {
		writeStoreError(w, r, err)
		return
	}

	http.Error(w, http.StatusText(http.StatusNoContent), http.StatusNoContent)
}

func roomIdentifier(w http.ResponseWriter, r *http.Request) (int, bool) {
	params := mux.Vars(r)

	raw, ok := params["identifier"]
	if !ok {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return 0, false
	}

	id, err := strconv.Atoi(raw)
	if err != nil {
		http.NotFound(w, r)
		return 0, false
	}

	return id, true
}
