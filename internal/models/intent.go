package models

import (
	"github.com/pkg/errors"
	"github.com/tidwall/gjson"
)

type Intent struct {
	Name  string
	Slots Attributes
}

func parseIntent(r gjson.Result) (*Intent, error) {
	if !r.IsObject() {
		return nil, errors.WithMessage(ErrInvalidRequest, "missing intent object")
	}
	name := r.Get("name").String()
	if name == "" {
		return nil, errors.WithMessage(ErrInvalidRequest, "missing intent name")
	}
	return &Intent{
		Name:  name,
		Slots: decodeAttributes(r.Get("slots")),
	}, nil
}

// Slot returns the slot value, or null when the slot is absent or unresolved.
func (i *Intent) Slot(name string) Value {
	return i.Slots[name]
}

// Merged returns the session attributes overlaid with the intent slots.
// Neither source is modified.
func (r *IntentRequest) Merged() Attributes {
	out := r.Session.Attributes.Clone()
	for k, v := range r.Intent.Slots {
		out[k] = v
	}
	return out
}

// PersistSlots copies slots into the session attributes. With no names every
// slot is copied; otherwise all names must exist before anything is written.
func (r *IntentRequest) PersistSlots(names ...string) error {
	if len(names) == 0 {
		for k, v := range r.Intent.Slots {
			r.Session.Set(k, v)
		}
		return nil
	}
	for _, name := range names {
		if _, ok := r.Intent.Slots[name]; !ok {
			return errors.Wrapf(ErrKeyNotFound, "intent %s slot %q", r.Intent.Name, name)
		}
	}
	for _, name := range names {
		r.Session.Set(name, r.Intent.Slots[name])
	}
	return nil
}
