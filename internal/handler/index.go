package handler

import "net/http"

// apiDescription is served from the root path so the API is explorable
// without external documentation.
type apiDescription struct {
	Name      string            `json:"name"`
	Version   string            `json:"version"`
	Endpoints map[string]string `json:"endpoints"`
}

// Index handles GET / - API description and endpoint listing
func Index(w http.ResponseWriter, r *http.Request) {
	WriteJSON(w, http.StatusOK, apiDescription{
		Name:    "Carte API",
		Version: "v1",
		Endpoints: map[string]string{
			"GET /api/menu-items":         "list all menu items, newest first",
			"POST /api/menu-items":        "create a menu item from {\"name\": string}",
			"GET /api/menu-items/{id}":    "fetch a single menu item",
			"PUT /api/menu-items/{id}":    "replace a menu item's name",
			"DELETE /api/menu-items/{id}": "delete a menu item",
			"GET /api/search":             "search item names (?q=&limit=&offset=)",
			"GET /health":                 "liveness probe",
		},
	})
}

// Health handles GET /health - liveness probe
func Health(w http.ResponseWriter, r *http.Request) {
	WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
