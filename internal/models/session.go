package models

import (
	"github.com/pkg/errors"
	"github.com/tidwall/gjson"
	"sort"
)

type Session struct {
	ID            string
	New           bool
	ApplicationID string
	UserID        string
	Attributes    Attributes
}

type Item struct {
	Key   string
	Value Value
}

func newSession(r gjson.Result) *Session {
	return &Session{
		ID:            r.Get("sessionId").String(),
		New:           r.Get("new").Bool(),
		ApplicationID: r.Get("application.applicationId").String(),
		UserID:        r.Get("user.userId").String(),
		Attributes:    decodeAttributes(r.Get("attributes")),
	}
}

// Get returns the attribute stored under key, or null.
func (s *Session) Get(key string) Value {
	return s.Attributes[key]
}

func (s *Session) Lookup(key string) (Value, bool) {
	v, ok := s.Attributes[key]
	return v, ok
}

func (s *Session) Set(key string, v Value) {
	if s.Attributes == nil {
		s.Attributes = Attributes{}
	}
	s.Attributes[key] = v
}

func (s *Session) Delete(key string) error {
	if _, ok := s.Attributes[key]; !ok {
		return errors.Wrapf(ErrKeyNotFound, "session attribute %q", key)
	}
	delete(s.Attributes, key)
	return nil
}

func (s *Session) Contains(key string) bool {
	_, ok := s.Attributes[key]
	return ok
}

// Items lists the attributes ordered by key.
func (s *Session) Items() []Item {
	items := make([]Item, 0, len(s.Attributes))
	for k, v := range s.Attributes {
		items = append(items, Item{Key: k, Value: v})
	}
	sort.Slice(items, func(i, j int) bool { return items[i].Key < items[j].Key })
	return items
}
