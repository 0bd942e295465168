package cli

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/iqrbr/iqr/pkg/refs"
	"github.com/iqrbr/iqr/pkg/scoring"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to encode JSON response", "error", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

func scoreAPIHandler(w http.ResponseWriter, r *http.Request) {
	var p scoring.DonorProfile
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		writeError(w, http.StatusBadRequest, "invalid donor profile payload")
		return
	}

	if err := validateProfile(p); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, makeAssessmentView(p))
}

func classifyAPIHandler(w http.ResponseWriter, r *http.Request) {
	pct, err := strconv.ParseFloat(r.URL.Query().Get("p"), 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "query parameter p must be a number")
		return
	}

	if err := validatePercentage(pct); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	band := scoring.Classify(pct)
	writeJSON(w, http.StatusOK, &bandView{
		Percentage: pct,
		Band:       band,
		Advisory:   band.Advisory(),
	})
}

func referencesAPIHandler(w http.ResponseWriter, _ *http.Request) {
	list, err := refs.List()
	if err != nil {
		slog.Error("failed to load references", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to load references")
		return
	}
	writeJSON(w, http.StatusOK, list)
}
