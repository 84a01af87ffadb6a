package ssml

import (
	"github.com/stretchr/testify/assert"
	"testing"
)

func TestParts(t *testing.T) {
	testCases := []struct {
		name string
		part Part
		want string
	}{
		{name: "paragraph", part: Paragraph("hello"), want: "<p>hello</p>"},
		{name: "sentence", part: Sentence("hi there"), want: "<s>hi there</s>"},
		{name: "break_empty", part: Break("", ""), want: "<break/>"},
		{name: "break_time", part: Break("strong", "3s"), want: `<break strength="strong" time="3s"/>`},
		{name: "say_as", part: SayAs("12345", "digits", ""), want: `<say-as interpret-as="digits">12345</say-as>`},
		{name: "phoneme", part: Phoneme("pecan", "ipa", "pɪˈkɑːn"), want: `<phoneme alphabet="ipa" ph="pɪˈkɑːn">pecan</phoneme>`},
		{name: "word", part: Word("read", "ivona:VBD"), want: `<w role="ivona:VBD">read</w>`},
		{name: "escaped_attr", part: Word("x", `a"b`), want: `<w role="a&#34;b">x</w>`},
		{name: "empty_contents", part: Paragraph(""), want: "<p></p>"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.part.String())
		})
	}
}

func TestSpeak(t *testing.T) {
	got := Speak(Sentence("one"), Break("", "1s"), Text("a & b"), 42).String()
	assert.Equal(t, `<speak><s>one</s><break time="1s"/>a &amp; b</speak>`, got)
}
