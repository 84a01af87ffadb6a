package models

import "encoding/json"

const (
	CardSimple = "Simple"

	speechPlain  = "PlainText"
	speechMarkup = "SSML"
)

type SpeechFormat int

const (
	FormatPlain SpeechFormat = iota
	FormatMarkup
)

// Fragment is one piece of the outbound "response" object. Fragments write
// disjoint keys, so the order they are added in does not matter.
type Fragment interface {
	Pack() map[string]any
}

type Speech struct {
	Text   string
	Format SpeechFormat
}

func Say(text string) Speech {
	return Speech{Text: text, Format: FormatPlain}
}

func Markup(ssml string) Speech {
	return Speech{Text: ssml, Format: FormatMarkup}
}

func (s Speech) Pack() map[string]any {
	return map[string]any{"outputSpeech": s.payload()}
}

func (s Speech) payload() map[string]any {
	if s.Format == FormatMarkup {
		return map[string]any{"type": speechMarkup, "ssml": s.Text}
	}
	return map[string]any{"type": speechPlain, "text": s.Text}
}

// PlainText lets a bare string be passed where a speech fragment is expected.
type PlainText string

func (t PlainText) Pack() map[string]any {
	return Say(string(t)).Pack()
}

type Reprompt struct {
	Speech Speech
}

func RepromptText(text string) Reprompt {
	return Reprompt{Speech: Say(text)}
}

func (r Reprompt) Pack() map[string]any {
	return map[string]any{"reprompt": r.Speech.Pack()}
}

type Card struct {
	Title   string
	Content string
	Type    string
}

func SimpleCard(title, content string) Card {
	return Card{Title: title, Content: content, Type: CardSimple}
}

func (c Card) Pack() map[string]any {
	kind := c.Type
	if kind == "" {
		kind = CardSimple
	}
	return map[string]any{
		"card": map[string]any{
			"type":    kind,
			"title":   c.Title,
			"content": c.Content,
		},
	}
}

type noFragment struct{}

func (noFragment) Pack() map[string]any { return nil }

// NoFragment marks an optional fragment that was not produced.
var NoFragment Fragment = noFragment{}

// Response is the outbound document for one request.
type Response struct {
	request   Request
	fragments []Fragment
	end       bool
}

func NewResponse(req Request, fragments ...Fragment) *Response {
	return &Response{request: req, fragments: fragments}
}

func (r *Response) Add(fragments ...Fragment) *Response {
	r.fragments = append(r.fragments, fragments...)
	return r
}

func (r *Response) EndSession(end bool) *Response {
	r.end = end
	return r
}

func (r *Response) Ended() bool {
	return r.end
}

// Pack builds the document. Session attributes are read at call time, so
// handler changes made after NewResponse are included.
func (r *Response) Pack() map[string]any {
	body := map[string]any{"shouldEndSession": r.end}
	for _, f := range r.fragments {
		if f == nil {
			continue
		}
		for k, v := range f.Pack() {
			body[k] = v
		}
	}

	version := ""
	attrs := Attributes{}
	if r.request != nil {
		base := r.request.Common()
		version = base.SkillVersion
		if version == "" {
			version = base.Version
		}
		if base.Session != nil && base.Session.Attributes != nil {
			attrs = base.Session.Attributes
		}
	}

	return map[string]any{
		"version":           version,
		"sessionAttributes": attrs,
		"response":          body,
	}
}

func (r *Response) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.Pack())
}
