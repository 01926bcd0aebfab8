package asteroids

import (
	"testing"

	"github.com/oliverbestmann/byke/bykebiten/color"
	"github.com/stretchr/testify/require"
)

func TestRenderModeToggleIsAnInvolution(t *testing.T) {
	var mode RenderMode
	require.False(t, mode.Wireframe)

	mode.Toggle()
	require.True(t, mode.Wireframe)

	mode.Toggle()
	require.False(t, mode.Wireframe)
}

func TestFillColorFor(t *testing.T) {
	fill := color.RGB(1, 1, 0.3)

	require.Equal(t, fill, fillColorFor(RenderMode{}, fill))
	require.Equal(t, color.Transparent, fillColorFor(RenderMode{Wireframe: true}, fill))

	// toggling twice restores the original fill
	mode := RenderMode{}
	mode.Toggle()
	mode.Toggle()
	require.Equal(t, fill, fillColorFor(mode, fill))
}
