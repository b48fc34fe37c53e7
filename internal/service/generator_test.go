package service

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var joinURLPattern = regexp.MustCompile(`^https://zoom\.us/j/\d{10}$`)

func TestGenerator_MeetingJoinURL(t *testing.T) {
	gen := NewGenerator()

	// Токен всегда ровно 10 цифр
	for i := 0; i < 100; i++ {
		url := gen.MeetingJoinURL()
		require.Regexp(t, joinURLPattern, url)
	}
}

func TestGenerator_NewID(t *testing.T) {
	gen := NewGenerator()

	a := gen.NewID()
	b := gen.NewID()

	assert.NotEmpty(t, a)
	assert.NotEqual(t, a, b)
}
