package components

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSelectorRendersEveryOption(t *testing.T) {
	view := NewSelector("Tone", []Option{
		{Label: "Fun", Selected: true},
		{Label: "Professional"},
	}, false).View()

	require.Contains(t, view, "Tone")
	require.Contains(t, view, "Fun")
	require.Contains(t, view, "Professional")
	require.True(t, strings.HasPrefix(view, "  "))
}

func TestSelectorMarksFocus(t *testing.T) {
	view := NewSelector("Holiday", []Option{{Label: "None", Selected: true}}, true).View()
	require.True(t, strings.HasPrefix(view, "› "))
}
