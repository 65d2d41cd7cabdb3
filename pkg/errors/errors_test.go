package errors

import (
	stdErrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseErrorWrapsUnderlying(t *testing.T) {
	t.Parallel()

	underlying := fmt.Errorf("unexpected token")
	err := NewParseError("config.yaml", 12, underlying)

	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
	require.Equal(t, "config.yaml", parseErr.Path)
	require.Equal(t, 12, parseErr.Line)
	require.True(t, stdErrors.Is(err, underlying))
	require.Equal(t, "parse error: config.yaml:12: unexpected token", err.Error())
}

func TestParseErrorWithoutLine(t *testing.T) {
	t.Parallel()

	err := NewParseError("config.yaml", 0, stdErrors.New("permission denied"))
	require.Equal(t, "parse error: config.yaml: permission denied", err.Error())
}

func TestValidationErrorIncludesField(t *testing.T) {
	t.Parallel()

	err := NewValidationError("defaults.tone", "must be one of fun professional minimal adventurous", nil)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	require.Equal(t, "defaults.tone", validationErr.Field)
	require.Contains(t, err.Error(), "defaults.tone")

	bare := NewValidationError("", "configuration is nil", nil)
	require.Equal(t, "validation error: configuration is nil", bare.Error())
}

func TestCompositionErrorIncludesStage(t *testing.T) {
	t.Parallel()

	underlying := stdErrors.New("empty list")
	err := NewCompositionError("intro", underlying)

	var compositionErr *CompositionError
	require.ErrorAs(t, err, &compositionErr)
	require.Equal(t, "intro", compositionErr.Stage)
	require.True(t, stdErrors.Is(err, underlying))
	require.Contains(t, err.Error(), "intro")
}

func TestClipboardErrorIncludesBackend(t *testing.T) {
	t.Parallel()

	underlying := stdErrors.New("no clipboard utilities available")
	err := NewClipboardError("system", underlying)

	var clipboardErr *ClipboardError
	require.ErrorAs(t, err, &clipboardErr)
	require.Equal(t, "system", clipboardErr.Backend)
	require.True(t, stdErrors.Is(err, underlying))
	require.Equal(t, "clipboard error [system]: no clipboard utilities available", err.Error())
}

func TestNilReceivers(t *testing.T) {
	t.Parallel()

	var parseErr *ParseError
	var validationErr *ValidationError
	var compositionErr *CompositionError
	var clipboardErr *ClipboardError

	require.Empty(t, parseErr.Error())
	require.Empty(t, validationErr.Error())
	require.Empty(t, compositionErr.Error())
	require.Empty(t, clipboardErr.Error())
	require.Nil(t, parseErr.Unwrap())
	require.Nil(t, clipboardErr.Unwrap())
}
