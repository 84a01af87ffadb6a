package main

import (
	"bitbucket.org/sotavant/voice-skill/internal/logger"
	"bitbucket.org/sotavant/voice-skill/internal/skill"
	"bitbucket.org/sotavant/voice-skill/internal/store"
	"bitbucket.org/sotavant/voice-skill/internal/webhook"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
	"net/http"
	"strings"
)

func main() {
	parseFlags()
	if err := run(); err != nil {
		panic(err)
	}
}

func gzipMiddleware(h http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ow := w

		acceptEncoding := r.Header.Get("Accept-Encoding")
		supportGzip := strings.Contains(acceptEncoding, "gzip")

		if supportGzip {
			cw := newCompressWriter(w)
			ow = cw
			defer func(cw *compressWriter) {
				if err := cw.Close(); err != nil {
					logger.Log.Debug("compressWriterError", zap.Error(err))
				}
			}(cw)
		}

		contentEncoding := r.Header.Get("Content-Encoding")

		sendsGzip := strings.Contains(contentEncoding, "gzip")
		if sendsGzip {
			cr, err := newCompressReader(r.Body)
			if err != nil {
				logger.Log.Debug("newCompressReaderError", zap.Error(err))
				ow.WriteHeader(http.StatusInternalServerError)
				return
			}
			r.Body = cr
			defer func(cr *compressReader) {
				if err := cr.Close(); err != nil {
					logger.Log.Debug("closeCompressReaderError", zap.Error(err))
				}
			}(cr)
		}

		h.ServeHTTP(ow, r)
	})
}

func newRouter(sk *skill.Skill) chi.Router {
	r := chi.NewRouter()
	r.Use(logger.RequestLogger, gzipMiddleware)
	r.Method(http.MethodPost, "/", webhook.New(sk, logger.Log))
	return r
}

func newStore(recipients map[string]string) *store.Memory {
	s := store.NewMemory()
	for name, userID := range recipients {
		s.Register(name, userID)
	}
	return s
}

func run() error {
	if err := logger.Initialize(flagLogLevel); err != nil {
		return err
	}

	cfg := skillConfig()
	recipients := parseRecipients(flagRecipients)
	a := newApp(newStore(recipients))

	logger.Log.Info("Running server",
		zap.String("address", flagRunAddr),
		zap.String("version", cfg.Version),
		zap.Bool("validate", cfg.Validate),
		zap.Int("recipients", len(recipients)),
	)

	return http.ListenAndServe(flagRunAddr, newRouter(a.skill(cfg)))
}
