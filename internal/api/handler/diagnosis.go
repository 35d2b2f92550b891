package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/julienschmidt/httprouter"
	"github.com/pkg/errors"
	"github.com/vfg2006/campaign-diagnostics-api/internal/domain"
	"github.com/vfg2006/campaign-diagnostics-api/internal/usecases/reporting"
	"github.com/vfg2006/campaign-diagnostics-api/pkg/apiErrors"
	"github.com/vfg2006/campaign-diagnostics-api/pkg/log"
	"github.com/vfg2006/campaign-diagnostics-api/pkg/utils"
)

// LatestDiagnosisResponse agrupa o resultado persistido da última análise
type LatestDiagnosisResponse struct {
	CampaignName string                      `json:"campaign_name"`
	Hypotheses   []domain.EnrichedHypothesis `json:"hypotheses"`
	Suggestions  []domain.CreativeSuggestion `json:"suggestions"`
}

// DiagnoseCampaign roda o pipeline de diagnóstico sob demanda sobre os
// snapshots persistidos, com filtro opcional de start_date/end_date
func DiagnoseCampaign(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		name := httprouter.ParamsFromContext(r.Context()).ByName("name")
		logger.WithField("campaign", name).Info("diagnosis: running campaign diagnosis")

		startDate, err := parseOptionalDate(r.URL.Query().Get("start_date"))
		if err != nil {
			logger.WithFields(log.Fields{
				"campaign":   name,
				"start_date": r.URL.Query().Get("start_date"),
				"error":      err.Error(),
			}).Warn("diagnosis: invalid start_date parameter")

			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "start_date inválido, use o formato YYYY-MM-DD", nil)
			return
		}

		endDate, err := parseOptionalDate(r.URL.Query().Get("end_date"))
		if err != nil {
			logger.WithFields(log.Fields{
				"campaign": name,
				"end_date": r.URL.Query().Get("end_date"),
				"error":    err.Error(),
			}).Warn("diagnosis: invalid end_date parameter")

			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "end_date inválido, use o formato YYYY-MM-DD", nil)
			return
		}

		analysis, err := service.DiagnoseCampaign(name, startDate, endDate)
		if err != nil {
			if errors.Is(err, reporting.ErrCampaignNotFound) {
				apiErrors.WriteError(w, apiErrors.ErrCampaignNotFound, "Campanha não encontrada", nil)
				return
			}

			logger.WithFields(log.Fields{
				"campaign": name,
				"error":    err.Error(),
			}).Error("diagnosis: failed to diagnose campaign")

			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}

		logger.WithFields(log.Fields{
			"campaign":      name,
			"series_points": analysis.Telemetry.SeriesPoints,
			"primary_issue": analysis.Telemetry.PrimaryIssueID,
		}).Info("diagnosis: campaign diagnosis completed")

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(analysis); err != nil {
			logger.WithError(err).Error("diagnosis: failed to encode response")
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})
}

// GetLatestDiagnosis retorna as hipóteses e sugestões persistidas da última
// execução do agendador para a campanha
func GetLatestDiagnosis(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		name := httprouter.ParamsFromContext(r.Context()).ByName("name")
		logger.WithField("campaign", name).Info("diagnosis: fetching latest stored diagnosis")

		hypotheses, suggestions, err := service.LatestDiagnosis(name)
		if err != nil {
			if errors.Is(err, reporting.ErrCampaignNotFound) {
				apiErrors.WriteError(w, apiErrors.ErrCampaignNotFound, "Nenhum diagnóstico persistido para a campanha", nil)
				return
			}

			logger.WithFields(log.Fields{
				"campaign": name,
				"error":    err.Error(),
			}).Error("diagnosis: failed to fetch latest diagnosis")

			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		response := LatestDiagnosisResponse{
			CampaignName: name,
			Hypotheses:   hypotheses,
			Suggestions:  suggestions,
		}
		if err := json.NewEncoder(w).Encode(response); err != nil {
			logger.WithError(err).Error("diagnosis: failed to encode response")
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})
}

// parseOptionalDate interpreta o parâmetro de data quando presente; ausência
// não é erro
func parseOptionalDate(raw string) (*time.Time, error) {
	if raw == "" {
		return nil, nil
	}
	return utils.ParseDate(raw)
}
