package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseState(t *testing.T) {
	for _, state := range []string{"ALL", "CURRENT", "PAST", "FUTURE", "WAITING", "REJECTED"} {
		mode, err := ParseState(state)
		assert.Nil(t, err)
		assert.Equal(t, StateMode(state), mode)
	}
}

func TestParseStateUnknown(t *testing.T) {
	for _, state := range []string{"", "all", "SOMETHING", "CANCELED"} {
		_, err := ParseState(state)
		assert.NotNil(t, err)
		assert.Equal(t, "Unknown state: "+state, err.Error())
	}
}
