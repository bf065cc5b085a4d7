package api

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"
)

type queryRequest struct {
	Query    string `json:"query"`
	Language string `json:"language"`
}

type queryResponse struct {
	Success          bool             `json:"success"`
	Query            string           `json:"query"`
	DetectedLanguage string           `json:"detected_language"`
	Response         string           `json:"response"`
	SQLQuery         string           `json:"sql_query"`
	Data             []map[string]any `json:"data"`
	ResultCount      int              `json:"result_count"`
	Error            string           `json:"error,omitempty"`
	Timestamp        string           `json:"timestamp"`
}

func handleQuery(deps Dependencies, w http.ResponseWriter, r *http.Request) {
	if deps.Agent == nil {
		writeError(r.Context(), w, http.StatusServiceUnavailable, "AGENT_NOT_CONFIGURED", "query agent is not configured", true, nil)
		return
	}

	var request queryRequest
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&request); err != nil {
		writeError(r.Context(), w, http.StatusBadRequest, "INVALID_JSON", "invalid query request body", false, map[string]any{"details": err.Error()})
		return
	}

	processQuestion(deps, w, r, request)
}

// handleQueryGet accepts ?q= for quick manual testing; it shares the
// response shape with the POST route.
func handleQueryGet(deps Dependencies, w http.ResponseWriter, r *http.Request) {
	if deps.Agent == nil {
		writeError(r.Context(), w, http.StatusServiceUnavailable, "AGENT_NOT_CONFIGURED", "query agent is not configured", true, nil)
		return
	}
	request := queryRequest{
		Query:    r.URL.Query().Get("q"),
		Language: r.URL.Query().Get("lang"),
	}
	processQuestion(deps, w, r, request)
}

func processQuestion(deps Dependencies, w http.ResponseWriter, r *http.Request, request queryRequest) {
	question := strings.TrimSpace(request.Query)
	if question == "" {
		writeError(r.Context(), w, http.StatusBadRequest, "QUERY_REQUIRED", "query is required", false, nil)
		return
	}

	ctx := r.Context()
	if deps.QueryTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, deps.QueryTimeout)
		defer cancel()
	}
	result := deps.Agent.ProcessQuery(ctx, question)

	language := result.Language
	if forced := strings.TrimSpace(request.Language); forced == "en" || forced == "ar" {
		language = forced
	}

	data := result.Data
	if data == nil {
		data = []map[string]any{}
	}

	writeJSON(w, http.StatusOK, queryResponse{
		Success:          result.Success,
		Query:            question,
		DetectedLanguage: language,
		Response:         result.Response,
		SQLQuery:         result.SQL,
		Data:             data,
		ResultCount:      len(data),
		Error:            result.Error,
		Timestamp:        time.Now().UTC().Format(time.RFC3339),
	})
}
