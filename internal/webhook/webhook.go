// Package webhook adapts a skill to net/http.
package webhook

//go:generate mockgen -destination=mock/dispatcher.go -package=mock bitbucket.org/sotavant/voice-skill/internal/webhook Dispatcher

import (
	"bitbucket.org/sotavant/voice-skill/internal/models"
	"bitbucket.org/sotavant/voice-skill/internal/skill"
	"context"
	"encoding/json"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"io"
	"net/http"
)

// MaxBodySize caps the envelope size read from the platform.
const MaxBodySize = 1 << 20

type Dispatcher interface {
	Parse(body []byte, header http.Header) (models.Request, error)
	Dispatch(ctx context.Context, req models.Request) (*models.Response, error)
}

type Handler struct {
	skill Dispatcher
	log   *zap.Logger
}

func New(d Dispatcher, log *zap.Logger) *Handler {
	if log == nil {
		log = zap.NewNop()
	}
	return &Handler{skill: d, log: log}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, MaxBodySize))
	if err != nil {
		h.log.Debug("cannot read request body", zap.Error(err))
		h.fail(w, err)
		return
	}

	req, err := h.skill.Parse(body, r.Header)
	if err != nil {
		h.log.Debug("cannot parse request", zap.Error(err))
		h.fail(w, err)
		return
	}

	resp, err := h.skill.Dispatch(r.Context(), req)
	if err != nil {
		h.log.Debug("dispatch failed",
			zap.String("type", req.Type()),
			zap.String("request_id", req.Common().RequestID),
			zap.Error(err),
		)
		h.fail(w, err)
		return
	}
	if resp == nil {
		resp = models.NewResponse(req)
	}

	out, err := json.Marshal(resp)
	if err != nil {
		h.log.Debug("error encoding response", zap.Error(err))
		h.fail(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(out); err != nil {
		h.log.Debug("error writing response", zap.Error(err))
		return
	}
	h.log.Debug("sending HTTP 200 response",
		zap.String("type", req.Type()),
		zap.Bool("end_session", resp.Ended()),
	)
}

// fail replies with the error text, except on 403 where the configured
// application id must not reach the caller.
func (h *Handler) fail(w http.ResponseWriter, err error) {
	code := StatusCode(err)
	msg := err.Error()
	if code == http.StatusForbidden {
		msg = skill.ErrInvalidApplication.Error()
	}
	http.Error(w, msg, code)
}

// StatusCode maps a skill error to the HTTP status returned to the platform.
func StatusCode(err error) int {
	switch {
	case errors.Is(err, skill.ErrInvalidApplication):
		return http.StatusForbidden
	case errors.Is(err, skill.ErrUnhandled):
		return http.StatusNotFound
	}
	return http.StatusInternalServerError
}
