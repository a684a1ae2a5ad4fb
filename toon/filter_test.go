package toon

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFilterAndEncodeDropsTopLevelField(t *testing.T) {
	out, err := FilterAndEncode(`{"etag":"xyz","name":"Alice"}`, []string{"etag"})
	require.NoError(t, err)
	assert.Equal(t, "name: Alice", out)
}

func TestFilterAndEncodeWildcardPropagatesAtEveryDepth(t *testing.T) {
	out, err := FilterAndEncode(
		`{"etag":"top","child":{"etag":"nested","grandchild":{"etag":"deep","keep":1}}}`,
		[]string{"*.etag"},
	)
	require.NoError(t, err)
	back, err := Decode(out)
	require.NoError(t, err)
	assert.JSONEq(t, `{"etag":"top","child":{"grandchild":{"keep":1}}}`, back)
}

func TestFilterAndEncodeIsTransparentAcrossArrays(t *testing.T) {
	out, err := FilterAndEncode(
		`{"items":[{"etag":"a","id":1},{"etag":"b","id":2}]}`,
		[]string{"*.etag"},
	)
	require.NoError(t, err)
	back, err := Decode(out)
	require.NoError(t, err)
	assert.JSONEq(t, `{"items":[{"id":1},{"id":2}]}`, back)
}

func TestFilterAndEncodeIntermediateSegmentDescends(t *testing.T) {
	out, err := FilterAndEncode(
		`{"reminders":{"useDefault":true,"overrides":[1,2]}}`,
		[]string{"reminders.useDefault"},
	)
	require.NoError(t, err)
	back, err := Decode(out)
	require.NoError(t, err)
	assert.JSONEq(t, `{"reminders":{"overrides":[1,2]}}`, back)
}

func TestFilterAndEncodeRejectsEmptyPatternSegment(t *testing.T) {
	_, err := FilterAndEncode(`{"a":1}`, []string{"a..b"})
	require.Error(t, err)
	var toonErr *Error
	require.ErrorAs(t, err, &toonErr)
	assert.Equal(t, InputParse, toonErr.Kind)
}

func TestFilterAndEncodeRejectsLeadingOrTrailingDot(t *testing.T) {
	_, err := FilterAndEncode(`{"a":1}`, []string{".a"})
	require.Error(t, err)

	_, err = FilterAndEncode(`{"a":1}`, []string{"a."})
	require.Error(t, err)
}
