package models

import (
	"github.com/pkg/errors"
	"github.com/tidwall/gjson"
	"net/http"
	"time"
)

const (
	TypeLaunch       = "LaunchRequest"
	TypeIntent       = "IntentRequest"
	TypeSessionEnded = "SessionEndedRequest"
)

type EndReason string

const (
	ReasonUserInitiated        EndReason = "USER_INITIATED"
	ReasonError                EndReason = "ERROR"
	ReasonExceededMaxReprompts EndReason = "EXCEEDED_MAX_REPROMPTS"
)

// Request is one of *LaunchRequest, *IntentRequest or *SessionEndedRequest.
type Request interface {
	Type() string
	Common() *Base
	sealed()
}

// Base carries the fields shared by every request variant.
type Base struct {
	RequestID string
	Timestamp time.Time
	// Version is the protocol version sent by the platform.
	Version string
	// SkillVersion is echoed as the outbound "version"; set by the dispatcher.
	SkillVersion string
	Session      *Session
	Headers      http.Header
}

func (b *Base) Common() *Base { return b }
func (b *Base) sealed()       {}

type LaunchRequest struct {
	Base
}

func (r *LaunchRequest) Type() string { return TypeLaunch }

type IntentRequest struct {
	Base
	Intent *Intent
}

func (r *IntentRequest) Type() string { return TypeIntent }

type SessionEndedRequest struct {
	Base
	Reason EndReason
}

func (r *SessionEndedRequest) Type() string { return TypeSessionEnded }

// Parse decodes an inbound envelope into its request variant.
func Parse(body []byte) (Request, error) {
	if !gjson.ValidBytes(body) {
		return nil, errors.WithMessage(ErrInvalidRequest, "malformed JSON")
	}
	envelope := gjson.ParseBytes(body)

	req := envelope.Get("request")
	if !req.IsObject() {
		return nil, errors.WithMessage(ErrInvalidRequest, "missing request object")
	}
	kind := req.Get("type")
	if kind.Type != gjson.String {
		return nil, errors.WithMessage(ErrInvalidRequest, "missing request type")
	}
	switch kind.Str {
	case TypeLaunch, TypeIntent, TypeSessionEnded:
	default:
		return nil, errors.Wrapf(ErrInvalidRequest, "unknown request type %q", kind.Str)
	}

	base, err := parseBase(envelope, req)
	if err != nil {
		return nil, err
	}

	switch kind.Str {
	case TypeLaunch:
		return &LaunchRequest{Base: base}, nil
	case TypeIntent:
		intent, err := parseIntent(req.Get("intent"))
		if err != nil {
			return nil, err
		}
		return &IntentRequest{Base: base, Intent: intent}, nil
	default:
		return &SessionEndedRequest{Base: base, Reason: EndReason(req.Get("reason").String())}, nil
	}
}

func parseBase(envelope, req gjson.Result) (Base, error) {
	ts, err := parseTimestamp(req.Get("timestamp"))
	if err != nil {
		return Base{}, err
	}
	return Base{
		RequestID: req.Get("requestId").String(),
		Timestamp: ts,
		Version:   envelope.Get("version").String(),
		Session:   newSession(envelope.Get("session")),
		Headers:   http.Header{},
	}, nil
}

var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05Z0700",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05Z07:00",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// parseTimestamp accepts the ISO-8601 forms the platform is known to send.
// A missing timestamp yields the zero time.
func parseTimestamp(r gjson.Result) (time.Time, error) {
	if !r.Exists() || r.Type == gjson.Null {
		return time.Time{}, nil
	}
	if r.Type != gjson.String {
		return time.Time{}, errors.Wrapf(ErrInvalidTimestamp, "%s", r.Raw)
	}
	for _, layout := range timestampLayouts {
		if ts, err := time.Parse(layout, r.Str); err == nil {
			return ts, nil
		}
	}
	return time.Time{}, errors.Wrapf(ErrInvalidTimestamp, "%q", r.Str)
}
