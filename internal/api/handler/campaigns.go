package handler

import (
	"encoding/json"
	"net/http"

	"github.com/vfg2006/campaign-diagnostics-api/internal/usecases/reporting"
	"github.com/vfg2006/campaign-diagnostics-api/pkg/log"
)

func ListCampaigns(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())
		logger.Info("campaigns: listing known campaigns")

		campaigns, err := service.ListCampaigns()
		if err != nil {
			logger.WithError(err).Error("campaigns: failed to list campaigns")
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(campaigns); err != nil {
			logger.WithError(err).Error("campaigns: failed to encode response")
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})
}

func GetDatasetSummary(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())
		logger.Info("campaigns: building dataset summary")

		summary, err := service.DatasetSummary()
		if err != nil {
			logger.WithError(err).Error("campaigns: failed to build dataset summary")
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(summary); err != nil {
			logger.WithError(err).Error("campaigns: failed to encode response")
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})
}
