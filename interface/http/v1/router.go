package v1

import (
	"net/http"

	"github.com/dummyhome/controller/interface/http/auth"
	"github.com/dummyhome/controller/inventory"
	"github.com/gorilla/mux"
	"github.com/shimmeringbee/logwrap"
)

func ConstructRouter(store *inventory.Store, service ProjectService, l logwrap.Logger, ap auth.AuthenticationProvider, eventbus inventory.EventSubscriber) http.Handler {
	protected := mux.NewRouter()

	rc := roomController{
		store: store,
	}

	dc := deviceController{
		store: store,
	}

	pc := projectController{
		store:   store,
		service: service,
	}

	ec := eventsController{
		store:       store,
		eventbus:    eventbus,
		eventMapper: eventMapper{},
		logger:      l,
	}

	protected.HandleFunc("/rooms", rc.listRooms).Methods("GET")
	protected.HandleFunc("/rooms", rc.createRoom).Methods("POST")
	protected.HandleFunc("/rooms/current", rc.getCurrentRoom).Methods("GET")
	protected.HandleFunc("/rooms/current", rc.selectCurrentRoom).Methods("PUT")
	protected.HandleFunc("/rooms/{identifier}", rc.getRoom).Methods("GET")
	protected.HandleFunc("/rooms/{identifier}", rc.updateRoom).Methods("PATCH")
	protected.HandleFunc("/rooms/{identifier}", rc.deleteRoom).Methods("DELETE")

	protected.HandleFunc("/rooms/{identifier}/devices/{device}/count", dc.changeCount).Methods("PUT")
	protected.HandleFunc("/rooms/{identifier}/devices/{device}/subitems/{index}", dc.updateSubItem).Methods("PATCH")

	protected.HandleFunc("/project/status", pc.status).Methods("GET")
	protected.HandleFunc("/project/submit", pc.submit).Methods("POST")
	protected.HandleFunc("/project/clear", pc.clear).Methods("POST")

	protected.HandleFunc("/events", ec.serveServerSideEvent).Methods("GET")
	protected.HandleFunc("/websocket", ec.serveWebsocket).Methods("GET")

	apiRoot := mux.NewRouter()
	apiRoot.Handle("/auth/type", authenticationType(ap)).Methods("GET")
	apiRoot.Handle("/auth/check", ap.AuthenticationMiddleware(http.HandlerFunc(authenticationCheck))).Methods("GET")
	apiRoot.PathPrefix("/auth").Handler(ap.AuthenticationRouter())
	apiRoot.PathPrefix("/").Handler(ap.AuthenticationMiddleware(protected))

	return apiRoot
}
