package server

import (
	"StoryTutor/internal/ai"
	"StoryTutor/internal/story"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"
)

// Тело запроса ограничено: рассказ и оценка занимают килобайты.
const maxBodyBytes = 1 << 20

type generateStoryRequest struct {
	LastRating *string `json:"last_rating"`
}

type generateStoryResponse struct {
	Story string `json:"story"`
}

type historyResponse struct {
	History []story.Entry `json:"history"`
}

type speakRequest struct {
	Text string `json:"text"`
}

// decodeOptionalJSON допускает пустое тело.
func decodeOptionalJSON(r *http.Request, v any) error {
	err := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes)).Decode(v)
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}

func (s *Server) handleGenerateStory(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		methodNotAllowed(w, s.logger, http.MethodPost)
		return
	}
	defer r.Body.Close()

	var req generateStoryRequest
	if err := decodeOptionalJSON(r, &req); err != nil {
		s.logger.Warnw("generate_story: failed to decode JSON", "error", err)
		writeError(w, s.logger, http.StatusUnprocessableEntity, "Invalid JSON body")
		return
	}
	rating := ""
	if req.LastRating != nil {
		rating = *req.LastRating
	}

	text, err := s.stories.Generate(r.Context(), rating)
	if err != nil {
		s.logger.Errorw("generate_story failed", "rating", rating, "error", err)
		writeError(w, s.logger, http.StatusInternalServerError, generationErrorDetail(err))
		return
	}
	writeJSONResponse(w, s.logger, http.StatusOK, generateStoryResponse{Story: text})
}

func (s *Server) handleHistory(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w, s.logger, http.MethodGet)
		return
	}
	entries := s.stories.History()
	if entries == nil {
		entries = []story.Entry{}
	}
	writeJSONResponse(w, s.logger, http.StatusOK, historyResponse{History: entries})
}

func (s *Server) handleSpeak(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		methodNotAllowed(w, s.logger, http.MethodPost)
		return
	}
	defer r.Body.Close()

	var req speakRequest
	if err := decodeOptionalJSON(r, &req); err != nil {
		s.logger.Warnw("speak: failed to decode JSON", "error", err)
		writeError(w, s.logger, http.StatusUnprocessableEntity, "Invalid JSON body")
		return
	}
	if strings.TrimSpace(req.Text) == "" {
		writeError(w, s.logger, http.StatusBadRequest, "text is required")
		return
	}

	audio, err := s.speech.Synthesize(r.Context(), req.Text)
	if err != nil {
		s.logger.Errorw("speak failed", "error", err)
		writeError(w, s.logger, http.StatusInternalServerError, "Speech synthesis failed")
		return
	}
	w.Header().Set("Content-Type", "audio/mpeg")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(audio); err != nil {
		s.logger.Warnw("speak: failed to write audio", "error", err)
	}
}

func generationErrorDetail(err error) string {
	switch {
	case !ai.IsUpstream(err):
		return "Internal server error"
	case errors.Is(err, ai.ErrMalformedResponse):
		return "Malformed generation response"
	default:
		return "Generation API error"
	}
}
