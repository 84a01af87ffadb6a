package models

import (
	"encoding/json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"testing"
)

func testRequest() *IntentRequest {
	return &IntentRequest{
		Base: Base{
			Version:      "1.0",
			SkillVersion: "2.1.0",
			Session:      &Session{ID: "s1", Attributes: Attributes{"step": Number(1)}},
		},
		Intent: &Intent{Name: "Greet", Slots: Attributes{}},
	}
}

func TestResponseFragmentOrder(t *testing.T) {
	req := testRequest()

	a, err := json.Marshal(NewResponse(req, Say("Hi"), SimpleCard("T", "C")))
	require.NoError(t, err)
	b, err := json.Marshal(NewResponse(req, SimpleCard("T", "C"), Say("Hi")))
	require.NoError(t, err)

	assert.Equal(t, string(a), string(b))
	assert.JSONEq(t, `{
		"version": "2.1.0",
		"sessionAttributes": {"step": 1},
		"response": {
			"shouldEndSession": false,
			"outputSpeech": {"type": "PlainText", "text": "Hi"},
			"card": {"type": "Simple", "title": "T", "content": "C"}
		}
	}`, string(a))
}

func TestResponseFragments(t *testing.T) {
	testCases := []struct {
		name      string
		fragments []Fragment
		end       bool
		want      string
	}{
		{
			name: "empty",
			want: `{"shouldEndSession": false}`,
		},
		{
			name:      "absent_fragments_skipped",
			fragments: []Fragment{NoFragment, nil},
			end:       true,
			want:      `{"shouldEndSession": true}`,
		},
		{
			name:      "plain_text_sugar",
			fragments: []Fragment{PlainText("hello")},
			want:      `{"shouldEndSession": false, "outputSpeech": {"type": "PlainText", "text": "hello"}}`,
		},
		{
			name:      "reprompt_from_string",
			fragments: []Fragment{RepromptText("still there?")},
			want:      `{"shouldEndSession": false, "reprompt": {"outputSpeech": {"type": "PlainText", "text": "still there?"}}}`,
		},
		{
			name:      "markup_speech",
			fragments: []Fragment{Markup("<speak>hi</speak>")},
			want:      `{"shouldEndSession": false, "outputSpeech": {"type": "SSML", "ssml": "<speak>hi</speak>"}}`,
		},
		{
			name:      "card_default_type",
			fragments: []Fragment{Card{Title: "T", Content: "C"}},
			want:      `{"shouldEndSession": false, "card": {"type": "Simple", "title": "T", "content": "C"}}`,
		},
		{
			name:      "all_fragments",
			fragments: []Fragment{Say("a"), RepromptText("b"), SimpleCard("c", "d")},
			end:       true,
			want: `{
				"shouldEndSession": true,
				"outputSpeech": {"type": "PlainText", "text": "a"},
				"reprompt": {"outputSpeech": {"type": "PlainText", "text": "b"}},
				"card": {"type": "Simple", "title": "c", "content": "d"}
			}`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			resp := NewResponse(testRequest(), tc.fragments...).EndSession(tc.end)
			b, err := json.Marshal(resp.Pack()["response"])
			require.NoError(t, err)
			assert.JSONEq(t, tc.want, string(b))
		})
	}
}

func TestResponseReadsAttributesAtPack(t *testing.T) {
	req := testRequest()
	resp := NewResponse(req, Say("ok"))
	req.Session.Set("step", Number(2))
	req.Session.Set("name", String("Ann"))

	b, err := json.Marshal(resp)
	require.NoError(t, err)
	assert.JSONEq(t, `{"step": 2, "name": "Ann"}`, string(mustField(t, b, "sessionAttributes")))
}

func TestResponseAdd(t *testing.T) {
	resp := NewResponse(testRequest(), Say("first"))
	assert.False(t, resp.Ended())

	resp.Add(SimpleCard("T", "C"), NoFragment).EndSession(true)
	assert.True(t, resp.Ended())

	b, err := json.Marshal(resp)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"shouldEndSession": true,
		"outputSpeech": {"type": "PlainText", "text": "first"},
		"card": {"type": "Simple", "title": "T", "content": "C"}
	}`, string(mustField(t, b, "response")))
}

func TestResponseVersionFallback(t *testing.T) {
	req := testRequest()
	req.SkillVersion = ""

	b, err := json.Marshal(NewResponse(req))
	require.NoError(t, err)
	assert.JSONEq(t, `"1.0"`, string(mustField(t, b, "version")))
}

func mustField(t *testing.T, doc []byte, key string) json.RawMessage {
	t.Helper()
	var fields map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(doc, &fields))
	return fields[key]
}
