// Package ssml builds speech markup strings for markup speech output.
package ssml

import (
	"html"
	"sort"
	"strings"
)

const (
	TagSpeak     = "speak"
	TagParagraph = "p"
	TagSentence  = "s"
	TagBreak     = "break"
	TagSayAs     = "say-as"
	TagPhoneme   = "phoneme"
	TagWord      = "w"
)

type Attrs map[string]string

// Part is one markup element. A Part without contents renders self-closed.
type Part struct {
	Tag      string
	Contents *string
	Attrs    Attrs
}

func New(tag, contents string, attrs Attrs) Part {
	return Part{Tag: tag, Contents: &contents, Attrs: attrs}
}

func (p Part) String() string {
	var b strings.Builder
	b.WriteByte('<')
	b.WriteString(p.Tag)

	keys := make([]string, 0, len(p.Attrs))
	for k, v := range p.Attrs {
		if v != "" {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	for _, k := range keys {
		b.WriteString(" " + k + `="` + html.EscapeString(p.Attrs[k]) + `"`)
	}

	if p.Contents == nil {
		b.WriteString("/>")
		return b.String()
	}
	b.WriteByte('>')
	b.WriteString(*p.Contents)
	b.WriteString("</" + p.Tag + ">")
	return b.String()
}

// Text escapes plain text for embedding between tags.
func Text(s string) string {
	return html.EscapeString(s)
}

// Join concatenates rendered parts and strings.
func Join(parts ...any) string {
	var b strings.Builder
	for _, p := range parts {
		switch v := p.(type) {
		case Part:
			b.WriteString(v.String())
		case string:
			b.WriteString(v)
		}
	}
	return b.String()
}

func Speak(parts ...any) Part {
	return New(TagSpeak, Join(parts...), nil)
}

func Paragraph(text string) Part {
	return New(TagParagraph, text, nil)
}

func Sentence(text string) Part {
	return New(TagSentence, text, nil)
}

// Break renders a pause; strength and time may be empty.
func Break(strength, time string) Part {
	return Part{Tag: TagBreak, Attrs: Attrs{"strength": strength, "time": time}}
}

func SayAs(text, interpretAs, format string) Part {
	return New(TagSayAs, text, Attrs{"interpret-as": interpretAs, "format": format})
}

func Phoneme(text, alphabet, ph string) Part {
	return New(TagPhoneme, text, Attrs{"alphabet": alphabet, "ph": ph})
}

func Word(text, role string) Part {
	return New(TagWord, text, Attrs{"role": role})
}
