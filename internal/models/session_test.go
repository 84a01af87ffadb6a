package models

import (
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"testing"
)

func TestSession(t *testing.T) {
	s := &Session{Attributes: Attributes{"city": String("Paris")}}

	assert.Equal(t, String("Paris"), s.Get("city"))
	assert.True(t, s.Get("missing").IsNull())
	assert.True(t, s.Contains("city"))
	assert.False(t, s.Contains("missing"))

	s.Set("count", Number(2))
	v, ok := s.Lookup("count")
	assert.True(t, ok)
	n, _ := v.Num()
	assert.Equal(t, 2.0, n)

	assert.Equal(t, []Item{
		{Key: "city", Value: String("Paris")},
		{Key: "count", Value: Number(2)},
	}, s.Items())

	require.NoError(t, s.Delete("city"))
	assert.False(t, s.Contains("city"))

	err := s.Delete("city")
	assert.True(t, errors.Is(err, ErrKeyNotFound))
}

func TestSessionSetOnEmpty(t *testing.T) {
	s := &Session{}
	s.Set("k", Bool(false))
	assert.Equal(t, Bool(false), s.Get("k"))
}

func TestValueKind(t *testing.T) {
	assert.Equal(t, KindNull, Value{}.Kind())
	assert.Equal(t, KindString, String("a").Kind())
	assert.Equal(t, KindNumber, Number(1).Kind())
	assert.Equal(t, KindBool, Bool(false).Kind())

	_, ok := String("a").Num()
	assert.False(t, ok)
}

func TestValueString(t *testing.T) {
	assert.Equal(t, "Ann", String("Ann").String())
	assert.Equal(t, "3.5", Number(3.5).String())
	assert.Equal(t, "true", Bool(true).String())
	assert.Equal(t, "", Null().String())
}

func TestValueJSON(t *testing.T) {
	var v Value
	require.NoError(t, v.UnmarshalJSON([]byte(`"x"`)))
	assert.Equal(t, String("x"), v)
	require.NoError(t, v.UnmarshalJSON([]byte(`null`)))
	assert.True(t, v.IsNull())

	b, err := Number(7).MarshalJSON()
	require.NoError(t, err)
	assert.Equal(t, "7", string(b))
	b, err = Null().MarshalJSON()
	require.NoError(t, err)
	assert.Equal(t, "null", string(b))
}
