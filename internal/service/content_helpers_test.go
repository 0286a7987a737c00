package service

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateSlug(t *testing.T) {
	for _, slug := range []string{"spa", "private-aviation", "a1", "x-2-y"} {
		assert.NoError(t, validateSlug(slug), slug)
	}
	for _, slug := range []string{"", "Spa", "spa_day", "-spa", "spa-", "spa day", "spa--day", "café"} {
		assert.Error(t, validateSlug(slug), slug)
	}
}

func TestValidateCtaURL(t *testing.T) {
	assert.NoError(t, validateCtaURL("ctaUrl", ""))
	assert.NoError(t, validateCtaURL("ctaUrl", "https://example.com/offers"))
	assert.NoError(t, validateCtaURL("ctaUrl", "http://example.com"))

	for _, raw := range []string{
		"javascript:alert(1)",
		"JAVASCRIPT:alert(1)",
		"data:text/html,hi",
		"ftp://example.com/file",
		"not a url",
	} {
		err := validateCtaURL("ctaUrl", raw)
		require.Error(t, err, raw)
		var verr ValidationError
		assert.True(t, errors.As(err, &verr), "must surface as a validation error")
	}
}

func TestValidateWebURL(t *testing.T) {
	assert.NoError(t, validateWebURL("imageUrl", ""))
	assert.NoError(t, validateWebURL("imageUrl", "https://cdn.example.com/a.jpg"))
	assert.Error(t, validateWebURL("imageUrl", "not a url"))
}

func TestOptional(t *testing.T) {
	assert.Nil(t, optional(""))
	assert.Nil(t, optional("   "))
	require.NotNil(t, optional(" hi "))
	assert.Equal(t, "hi", *optional(" hi "))
}

func TestBoolOrDefault(t *testing.T) {
	yes, no := true, false
	assert.True(t, boolOrDefault(nil, true))
	assert.False(t, boolOrDefault(nil, false))
	assert.True(t, boolOrDefault(&yes, false))
	assert.False(t, boolOrDefault(&no, true))
}
