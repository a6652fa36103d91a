package http

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/mvillar/fastfeet-front/internal/model"
)

// readBody reads and parses a JSON request body into T.
func readBody[T any](r *http.Request) (T, error) {
	var body T

	bodyBytes, err := io.ReadAll(r.Body)
	if err != nil {
		return body, fmt.Errorf("failed to read request body: %w", err)
	}
	defer r.Body.Close()

	if err := json.Unmarshal(bodyBytes, &body); err != nil {
		return body, fmt.Errorf("failed to parse request body: %w", err)
	}

	return body, nil
}

// writeJSON writes data as a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, lg *zap.SugaredLogger, data interface{}, statusCode int) {
	response, err := json.Marshal(data)
	if err != nil {
		lg.Errorf("failed to marshal response body: %v", err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	w.Write(response)
}

// writeError writes an APIError in the upstream's {code, details} error
// shape, e.g. 401 -> {"code": "UNAUTHORIZED", "details": "..."}.
func writeError(w http.ResponseWriter, lg *zap.SugaredLogger, apiErr *model.APIError) {
	body := struct {
		Code    string `json:"code"`
		Details string `json:"details"`
	}{
		Code:    wireCode(apiErr.Code),
		Details: apiErr.Message,
	}

	writeJSON(w, lg, body, apiErr.Code)
}

func wireCode(statusCode int) string {
	text := http.StatusText(statusCode)
	if text == "" {
		return "UNKNOWN"
	}

	return strings.ToUpper(strings.ReplaceAll(text, " ", "_"))
}

// queryInt reads an integer query parameter, falling back to def when the
// parameter is absent or not a number.
func queryInt(r *http.Request, name string, def int) int {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return def
	}

	value, err := strconv.Atoi(raw)
	if err != nil {
		return def
	}

	return value
}
