package v1

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/dummyhome/controller/inventory"
)

type ProjectService interface {
	Submit(ctx context.Context) error
	ClearAll(ctx context.Context) error
	Submitting() bool
}

type projectController struct {
	store   *inventory.Store
	service ProjectService
}

func (c *projectController) status(w http.ResponseWriter, r *http.Request) {
	payload := ProjectStatus{
		Dirty:      c.store.IsDirty(),
		Submitting: c.service.Submitting(),
	}

	data, err := json.Marshal(payload)
	if err != nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Add("content-type", "application/json")
	w.Write(data)
}

func (c *projectController) submit(w http.ResponseWriter, r *http.Request) {
	if err := c.service.Submit(r.Context()); err != nil {
		writeProjectError(w, err)
		return
	}

	http.Error(w, http.StatusText(http.StatusNoContent), http.StatusNoContent)
}

func (c *projectController) clear(w http.ResponseWriter, r *http.Request) {
	if err := c.service.ClearAll(r.Context()); err != nil {
		writeProjectError(w, err)
		return
	}

	http.Error(w, http.StatusText(http.StatusNoContent), http.StatusNoContent)
}
