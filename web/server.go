package web

import (
	"context"
	"embed"
	"errors"
	"html/template"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog/log"
	contractx "github.com/tanpawarit/ShopBot/agent/contract"
	"golang.org/x/time/rate"
)

//go:embed templates/*.html
var templateFS embed.FS

var templates = template.Must(template.New("").ParseFS(templateFS, "templates/*.html"))

type Config struct {
	Addr              string        `envconfig:"ADDR" split_words:"true" default:":8501"`
	ReadHeaderTimeout time.Duration `envconfig:"READ_HEADER_TIMEOUT" split_words:"true" default:"10s"`
	ShutdownTimeout   time.Duration `envconfig:"SHUTDOWN_TIMEOUT" split_words:"true" default:"15s"`
	// RateLimit is the sustained number of questions per second; 0 disables it.
	RateLimit float64 `envconfig:"RATE_LIMIT" split_words:"true" default:"0"`
	RateBurst int     `envconfig:"RATE_BURST" split_words:"true" default:"5"`
}

type Server struct {
	assistant contractx.Assistant
	limiter   *rate.Limiter
	cfg       Config
}

func NewServer(assistant contractx.Assistant, cfg Config) (*Server, error) {
	if assistant == nil {
		return nil, errors.New("assistant is required")
	}
	if cfg.RateLimit < 0 {
		return nil, errors.New("rate limit must be >= 0")
	}

	s := &Server{
		assistant: assistant,
		cfg:       cfg,
	}
	if cfg.RateLimit > 0 {
		burst := cfg.RateBurst
		if burst <= 0 {
			burst = 1
		}
		s.limiter = rate.NewLimiter(rate.Limit(cfg.RateLimit), burst)
	}
	return s, nil
}

func (s *Server) Handler() http.Handler {
	r := mux.NewRouter()
	r.Use(requestContext)
	r.HandleFunc("/", s.indexHandler).Methods(http.MethodGet, http.MethodPost)
	return r
}

// ListenAndServe serves until ctx is cancelled, then drains in-flight requests.
func (s *Server) ListenAndServe(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.cfg.Addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: s.cfg.ReadHeaderTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("addr", s.cfg.Addr).Msg("shopbot listening")
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	return nil
}
