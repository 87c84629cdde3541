package inter

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestInitialEventJSON(t *testing.T) {
	require := require.New(t)

	e := NewInitialEvent(4, 17)
	raw, err := json.Marshal(e)
	require.NoError(err)
	require.JSONEq(`{"kind":"initial","timestamp":17,"peer":4}`, string(raw))

	decoded, err := EventFromJSON(raw)
	require.NoError(err)
	require.Equal(e, decoded)
}

func TestDefaultEventJSON(t *testing.T) {
	require := require.New(t)

	e := NewDefaultEvent(5, []byte{0xab, 0xcd}, fakeHash(0x11), fakeHash(0x22))
	raw, err := json.Marshal(e)
	require.NoError(err)

	s := string(raw)
	require.Contains(s, `"kind":"default"`)
	require.Contains(s, `"timestamp":5`)
	require.Contains(s, `"transactions":"abcd"`)
	require.Contains(s, `"self_parent":"`+strings.Repeat("11", 32)+`"`)
	require.Contains(s, `"other_parent":"`+strings.Repeat("22", 32)+`"`)
	// hex is never 0x-prefixed
	require.NotContains(s, "0x")

	decoded, err := EventFromJSON(raw)
	require.NoError(err)
	require.Equal(e, decoded)
}

func TestEventFromJSONErrors(t *testing.T) {
	require := require.New(t)

	_, err := EventFromJSON([]byte(`{"kind":"mystery"}`))
	require.Error(err)

	_, err = EventFromJSON([]byte(`{`))
	require.Error(err)

	// short hash strings are rejected
	_, err = EventFromJSON([]byte(`{"kind":"default","timestamp":1,"transactions":"","self_parent":"ab","other_parent":"cd"}`))
	require.Error(err)
}
