package handlers

import (
	"net/http"

	"github.com/swaggo/swag"
)

// HandleOpenAPIDoc serves the OpenAPI document registered with swag (see internal/docs)
func HandleOpenAPIDoc(w http.ResponseWriter, r *http.Request) {
	doc, err := swag.ReadDoc()
	if err != nil {
		http.Error(w, "API documentation is not available", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(doc))
}
