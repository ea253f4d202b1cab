package gallery

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNavigator_NextCyclesBackToStart(t *testing.T) {
	for n := 1; n <= 7; n++ {
		for start := 0; start < n; start++ {
			nav := New(n)
			require.True(t, nav.JumpTo(start))
			for i := 0; i < n; i++ {
				require.True(t, nav.Next())
			}
			assert.Equal(t, start, nav.Index(), "n=%d start=%d", n, start)
		}
	}
}

func TestNavigator_PreviousInvertsNext(t *testing.T) {
	for n := 1; n <= 7; n++ {
		for start := 0; start < n; start++ {
			nav := New(n)
			require.True(t, nav.JumpTo(start))

			nav.Next()
			nav.Previous()
			assert.Equal(t, start, nav.Index())

			nav.Previous()
			nav.Next()
			assert.Equal(t, start, nav.Index())
		}
	}
}

func TestNavigator_JumpToRejectsOutOfRange(t *testing.T) {
	nav := New(3)
	require.True(t, nav.JumpTo(1))

	for _, i := range []int{-1, 3, 4, 100} {
		assert.False(t, nav.JumpTo(i), "i=%d", i)
		assert.Equal(t, 1, nav.Index())
	}

	assert.True(t, nav.JumpTo(2))
	assert.Equal(t, 2, nav.Index())
}

func TestNavigator_ResetClearsState(t *testing.T) {
	nav := New(5)
	nav.JumpTo(3)
	nav.ToggleFullscreen()
	require.True(t, nav.Fullscreen())

	nav.Reset(2)
	assert.Equal(t, 0, nav.Index())
	assert.False(t, nav.Fullscreen())
	assert.Equal(t, 2, nav.Len())

	nav.Reset(0)
	assert.Equal(t, 0, nav.Index())
	assert.False(t, nav.Fullscreen())
}

func TestNavigator_ThreeImageScenario(t *testing.T) {
	images := []string{"A", "B", "C"}
	nav := New(len(images))
	require.True(t, nav.JumpTo(2))
	assert.Equal(t, "C", nav.Current(images))

	nav.Next()
	assert.Equal(t, 0, nav.Index())
	assert.Equal(t, "A", nav.Current(images))

	nav.Previous()
	assert.Equal(t, 2, nav.Index())
	assert.Equal(t, "C", nav.Current(images))
}

func TestNavigator_EmptyIsUnavailable(t *testing.T) {
	var nav Navigator

	assert.False(t, nav.Available())
	assert.False(t, nav.Next())
	assert.False(t, nav.Previous())
	assert.False(t, nav.JumpTo(0))
	assert.False(t, nav.ToggleFullscreen())
	assert.Equal(t, 0, nav.Index())
	assert.False(t, nav.Fullscreen())
	assert.Equal(t, "", nav.Current(nil))

	neg := New(-3)
	assert.Equal(t, 0, neg.Len())
}

func TestNavigator_ToggleFullscreen(t *testing.T) {
	nav := New(1)
	assert.True(t, nav.ToggleFullscreen())
	assert.True(t, nav.Fullscreen())
	assert.True(t, nav.ToggleFullscreen())
	assert.False(t, nav.Fullscreen())
	assert.False(t, nav.ExitFullscreen())
}

func TestNavigator_HandleKey(t *testing.T) {
	tests := []struct {
		name       string
		keys       []string
		wantIndex  int
		wantFull   bool
		wantLastOK bool
	}{
		{name: "arrow right", keys: []string{"ArrowRight"}, wantIndex: 1, wantLastOK: true},
		{name: "terminal left wraps", keys: []string{"left"}, wantIndex: 3, wantLastOK: true},
		{name: "fullscreen on", keys: []string{"f"}, wantFull: true, wantLastOK: true},
		{name: "escape leaves fullscreen", keys: []string{"f", "Escape"}, wantLastOK: true},
		{name: "escape without fullscreen", keys: []string{"esc"}, wantLastOK: false},
		{name: "digit jump", keys: []string{"3"}, wantIndex: 2, wantLastOK: true},
		{name: "digit out of range", keys: []string{"9"}, wantLastOK: false},
		{name: "end then home", keys: []string{"End", "home"}, wantIndex: 0, wantLastOK: true},
		{name: "end", keys: []string{"end"}, wantIndex: 3, wantLastOK: true},
		{name: "unknown key", keys: []string{"q"}, wantLastOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			nav := New(4)
			var ok bool
			for _, k := range tt.keys {
				ok = nav.HandleKey(k)
			}
			assert.Equal(t, tt.wantLastOK, ok)
			assert.Equal(t, tt.wantIndex, nav.Index())
			assert.Equal(t, tt.wantFull, nav.Fullscreen())
		})
	}
}

func TestNavigator_HandleKeyWithoutImages(t *testing.T) {
	nav := New(0)
	for _, k := range []string{"ArrowRight", "ArrowLeft", "f", "Escape", "1", "End"} {
		assert.False(t, nav.HandleKey(k), k)
	}
	assert.Equal(t, 0, nav.Index())
}
