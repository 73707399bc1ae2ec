package server

import (
	"bytes"
	"encoding/json"
	"net/http"

	"go.uber.org/zap"
)

// errorResponse повторяет формат {"detail": "..."}, который ждёт фронтенд.
type errorResponse struct {
	Detail string `json:"detail"`
}

// Заранее сериализованный ответ на случай ошибки кодирования.
var fallbackErrorResponse = []byte(`{"detail":"Internal server error"}` + "\n")

// writeJSONResponse кодирует ответ до записи заголовков, чтобы не отдать 200 с битым телом.
func writeJSONResponse(w http.ResponseWriter, logger *zap.SugaredLogger, statusCode int, response any) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	data := fallbackErrorResponse
	if err := enc.Encode(response); err != nil {
		logger.Errorw("failed to marshal JSON response", "error", err)
		statusCode = http.StatusInternalServerError
	} else {
		data = buf.Bytes()
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if _, err := w.Write(data); err != nil {
		logger.Warnw("failed to write JSON response", "error", err)
	}
}

func writeError(w http.ResponseWriter, logger *zap.SugaredLogger, statusCode int, detail string) {
	writeJSONResponse(w, logger, statusCode, errorResponse{Detail: detail})
}

func methodNotAllowed(w http.ResponseWriter, logger *zap.SugaredLogger, allow string) {
	w.Header().Set("Allow", allow)
	writeError(w, logger, http.StatusMethodNotAllowed, "Method Not Allowed")
}
