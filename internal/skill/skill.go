// Package skill routes parsed requests to the handlers registered for them.
//
// Handlers are registered once during setup. The registry is read-only
// afterwards, so Dispatch may be called from concurrent HTTP requests as long
// as each call works on its own parsed request.
package skill

import (
	"bitbucket.org/sotavant/voice-skill/internal/models"
	"context"
	"fmt"
	"github.com/pkg/errors"
	"net/http"
)

const DefaultVersion = "0.0.0"

var (
	ErrInvalidApplication = errors.New("application is not allowed to access this skill")
	ErrUnhandled          = errors.New("unhandled request")
)

type Config struct {
	// Validate enables the application id check.
	Validate bool
	AppID    string
	// Version is echoed as the "version" of every response.
	Version string
}

func DefaultConfig() Config {
	return Config{Validate: true, Version: DefaultVersion}
}

type (
	LaunchFunc       func(ctx context.Context, req *models.LaunchRequest) (*models.Response, error)
	IntentFunc       func(ctx context.Context, req *models.IntentRequest) (*models.Response, error)
	SessionEndedFunc func(ctx context.Context, req *models.SessionEndedRequest) (*models.Response, error)
)

type Skill struct {
	cfg      Config
	onLaunch LaunchFunc
	onEnd    SessionEndedFunc
	intents  map[string]IntentFunc
}

func New(cfg Config) *Skill {
	if cfg.Version == "" {
		cfg.Version = DefaultVersion
	}
	return &Skill{
		cfg:     cfg,
		intents: make(map[string]IntentFunc),
	}
}

func (s *Skill) Config() Config {
	return s.cfg
}

func (s *Skill) OnLaunch(h LaunchFunc) {
	s.onLaunch = h
}

func (s *Skill) OnSessionEnded(h SessionEndedFunc) {
	s.onEnd = h
}

// OnIntent binds h to every given intent name. A later binding for the same
// name replaces the earlier one.
func (s *Skill) OnIntent(h IntentFunc, names ...string) {
	for _, name := range names {
		s.intents[name] = h
	}
}

// Parse decodes the envelope and attaches the transport headers and the
// configured skill version to the request.
func (s *Skill) Parse(body []byte, header http.Header) (models.Request, error) {
	req, err := models.Parse(body)
	if err != nil {
		return nil, err
	}
	base := req.Common()
	for k, v := range header {
		base.Headers[k] = append([]string(nil), v...)
	}
	base.SkillVersion = s.cfg.Version
	return req, nil
}

func (s *Skill) ValidateOrigin(req models.Request) error {
	if !s.cfg.Validate || s.cfg.AppID == "" {
		return nil
	}
	appID := ""
	if sess := req.Common().Session; sess != nil {
		appID = sess.ApplicationID
	}
	if appID != s.cfg.AppID {
		return errors.Wrapf(ErrInvalidApplication, "app id %q does not match configured value %q", appID, s.cfg.AppID)
	}
	return nil
}

// Dispatch validates the request origin and runs the matching handler.
func (s *Skill) Dispatch(ctx context.Context, req models.Request) (*models.Response, error) {
	if err := s.ValidateOrigin(req); err != nil {
		return nil, err
	}

	switch r := req.(type) {
	case *models.LaunchRequest:
		if s.onLaunch == nil {
			return nil, unhandled("LaunchRequest has no handler")
		}
		return s.onLaunch(ctx, r)
	case *models.IntentRequest:
		h, ok := s.intents[r.Intent.Name]
		if !ok {
			return nil, unhandled(fmt.Sprintf("IntentRequest %s has no handler", r.Intent.Name))
		}
		return h(ctx, r)
	case *models.SessionEndedRequest:
		if s.onEnd == nil {
			return nil, unhandled("SessionEndedRequest has no handler")
		}
		return s.onEnd(ctx, r)
	}
	return nil, errors.Wrapf(models.ErrInvalidRequest, "unsupported request %T", req)
}

type unhandledError struct {
	msg string
}

func unhandled(msg string) error {
	return &unhandledError{msg: msg}
}

func (e *unhandledError) Error() string {
	return e.msg
}

func (e *unhandledError) Is(target error) bool {
	return target == ErrUnhandled
}
