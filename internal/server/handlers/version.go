package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/information-sharing-networks/crypto-api/internal/version"
)

// ServiceName is reported by /version
const ServiceName = "crypto-api"

// HandleVersion godoc
//
//	@Summary		Get version information
//	@Description	Returns the version and build information for the service
//	@Tags			Common
//	@Produce		json
//	@Success		200	{object}	VersionResponse	"Version information"
//	@Router			/version [get]
func HandleVersion(info version.Info) http.HandlerFunc {
	// the build information doesn't change so the response is created once
	response := VersionResponse{
		Version:   info.Version,
		BuildDate: info.BuildDate,
		GitCommit: info.GitCommit,
		Service:   ServiceName,
	}

	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(response); err != nil {
			http.Error(w, "Failed to encode version", http.StatusInternalServerError)
			return
		}
	}
}

type VersionResponse struct {
	Version   string `json:"version" example:"1.0.0"`
	BuildDate string `json:"build_date" example:"2024-01-28T10:00:00Z"`
	GitCommit string `json:"git_commit" example:"a1b2c3d"`
	Service   string `json:"service" example:"crypto-api"`
}
