package web

import (
	"errors"
	"net/http"
	"strings"

	"github.com/rs/zerolog"
	assistantx "github.com/tanpawarit/ShopBot/agent/assistant"
)

const queryField = "q"

func (s *Server) indexHandler(w http.ResponseWriter, r *http.Request) {
	logger := zerolog.Ctx(r.Context())
	query := r.FormValue(queryField)

	if strings.TrimSpace(query) == "" {
		s.render(w, r, http.StatusOK, "index", map[string]any{"query": query})
		return
	}

	if s.limiter != nil && !s.limiter.Allow() {
		logger.Warn().Msg("question rejected by rate limit")
		renderHTTPError(w, r, errors.New("too many questions"), http.StatusTooManyRequests)
		return
	}

	answer, err := s.assistant.Answer(r.Context(), query)
	if err != nil {
		if errors.Is(err, assistantx.ErrEmptyQuery) {
			s.render(w, r, http.StatusOK, "index", map[string]any{"query": query})
			return
		}
		renderHTTPError(w, r, err, http.StatusInternalServerError)
		return
	}

	s.render(w, r, http.StatusOK, "index", map[string]any{
		"query":  query,
		"answer": answer,
	})
}

func (s *Server) render(w http.ResponseWriter, r *http.Request, code int, name string, data map[string]any) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(code)
	if err := templates.ExecuteTemplate(w, name, data); err != nil {
		zerolog.Ctx(r.Context()).Error().Err(err).Str("template", name).Msg("render failed")
	}
}

func renderHTTPError(w http.ResponseWriter, r *http.Request, err error, code int) {
	logger := zerolog.Ctx(r.Context())
	logger.Error().Err(err).Int("status", code).Msg("request error")

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(code)
	if templateErr := templates.ExecuteTemplate(w, "error", map[string]any{
		"query":       r.FormValue(queryField),
		"status_code": code,
		"status":      http.StatusText(code),
		"request_id":  w.Header().Get(requestIDHeader),
	}); templateErr != nil {
		logger.Error().Err(templateErr).Msg("render error page failed")
	}
}
