package slider

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDrag_MoveAwayAndBack(t *testing.T) {
	s, _ := newTestSlider(t, func(c *Config) { c.InitialValue = []float64{50} })
	r := record(s)

	require.True(t, s.PointerDown(HandleMax, 50))
	assert.True(t, s.Dragging())

	s.PointerMove(70)
	s.PointerMove(50)
	s.PointerUp()

	assert.False(t, s.Dragging())
	assert.Equal(t, []EventKind{EventStartChange, EventChange, EventChange, EventStopChange}, r.kinds())
	assert.Equal(t, 50.0, r.events[0].value.Float(), "start carries the value before the change")
	assert.Equal(t, 70.0, r.events[1].value.Float())
	assert.Equal(t, 50.0, r.events[3].value.Float(), "stop carries the final value")
}

func TestDrag_WithoutChangeIsSilent(t *testing.T) {
	s, _ := newTestSlider(t, func(c *Config) { c.InitialValue = []float64{50} })
	r := record(s)

	require.True(t, s.PointerDown(HandleMax, 50))
	s.PointerMove(50.3)
	s.PointerMove(49.8)
	s.PointerUp()

	assert.Empty(t, r.events)
	assert.Equal(t, 50.0, s.Value().Float())
}

func TestDrag_KeepsPressOffset(t *testing.T) {
	s, _ := newTestSlider(t, func(c *Config) { c.InitialValue = []float64{50} })

	// Grabbing the handle off-centre must not make it jump to the pointer.
	require.True(t, s.PointerDown(HandleMax, 53))
	s.PointerMove(53)
	assert.Equal(t, 50.0, s.Value().Float())

	s.PointerMove(63)
	assert.Equal(t, 60.0, s.Value().Float())
	s.PointerUp()
}

func TestDrag_ScalesWithTrackWidth(t *testing.T) {
	s, surface := newTestSlider(t, func(c *Config) {
		c.Max = 10
		c.InitialValue = []float64{5}
	})
	surface.SetTrackWidth(40)

	require.True(t, s.PointerDown(HandleMax, 20))
	s.PointerMove(32)
	assert.Equal(t, 8.0, s.Value().Float())
	s.PointerUp()
}

func TestDrag_ClampsOutsideTrack(t *testing.T) {
	s, _ := newTestSlider(t, func(c *Config) { c.InitialValue = []float64{50} })

	require.True(t, s.PointerDown(HandleMax, 50))
	s.PointerMove(500)
	assert.Equal(t, 100.0, s.Value().Float())
	s.PointerMove(-500)
	assert.Equal(t, 0.0, s.Value().Float())
	s.PointerUp()
}

func TestDrag_RangeHandlesBlockEachOther(t *testing.T) {
	t.Run("min handle stops one step below max", func(t *testing.T) {
		s, _ := newTestSlider(t, func(c *Config) {
			c.IsRange = true
			c.InitialValue = []float64{20, 60}
		})
		r := record(s)

		require.True(t, s.PointerDown(HandleMin, 22))
		s.PointerMove(92)
		s.PointerUp()

		assert.Equal(t, Pair{59, 60}, s.Pair())
		require.NotEmpty(t, r.events)
		assert.Equal(t, Value{Pair: Pair{20, 60}, IsRange: true}, r.events[0].value)
	})

	t.Run("max handle stops one step above min", func(t *testing.T) {
		s, _ := newTestSlider(t, func(c *Config) {
			c.IsRange = true
			c.InitialValue = []float64{20, 60}
		})

		require.True(t, s.PointerDown(HandleMax, 60))
		s.PointerMove(10)
		s.PointerUp()

		assert.Equal(t, Pair{20, 21}, s.Pair())
	})
}

func TestDrag_Rejected(t *testing.T) {
	t.Run("disabled", func(t *testing.T) {
		s, _ := newTestSlider(t, func(c *Config) {
			c.Disabled = true
			c.InitialValue = []float64{50}
		})
		r := record(s)

		assert.False(t, s.PointerDown(HandleMax, 50))
		s.PointerMove(80)
		s.PointerUp()

		assert.Empty(t, r.events)
		assert.Equal(t, 50.0, s.Value().Float())
	})

	t.Run("zero-width track", func(t *testing.T) {
		s, surface := newTestSlider(t, nil)
		surface.SetTrackWidth(0)

		assert.False(t, s.PointerDown(HandleMax, 0))
		assert.False(t, s.Dragging())
	})

	t.Run("second press while dragging", func(t *testing.T) {
		s, _ := newTestSlider(t, func(c *Config) { c.IsRange = true })

		require.True(t, s.PointerDown(HandleMax, 1))
		assert.False(t, s.PointerDown(HandleMin, 0))
		h, ok := s.Interacting()
		assert.True(t, ok)
		assert.Equal(t, HandleMax, h)
	})
}

func TestDrag_MoveWithoutPressIsIgnored(t *testing.T) {
	s, _ := newTestSlider(t, func(c *Config) { c.InitialValue = []float64{50} })
	r := record(s)

	s.PointerMove(80)
	s.PointerUp()

	assert.Empty(t, r.events)
}

func TestEndInteraction_EndsDrag(t *testing.T) {
	s, _ := newTestSlider(t, func(c *Config) { c.InitialValue = []float64{50} })
	r := record(s)

	require.True(t, s.PointerDown(HandleMax, 50))
	s.PointerMove(60)
	s.EndInteraction()

	assert.False(t, s.Dragging())
	assert.Equal(t, []EventKind{EventStartChange, EventChange, EventStopChange}, r.kinds())

	// A late move after the session ended does nothing.
	s.PointerMove(90)
	assert.Equal(t, 60.0, s.Value().Float())
}

func TestDrag_BlocksKeyboard(t *testing.T) {
	s, _ := newTestSlider(t, func(c *Config) { c.InitialValue = []float64{50} })

	require.True(t, s.PointerDown(HandleMax, 50))
	assert.False(t, s.KeyDown(HandleMax, KeyIncrease))
	assert.Equal(t, 50.0, s.Value().Float())
	assert.True(t, s.Dragging())
}

func TestDrag_DisabledAtRuntime(t *testing.T) {
	t.Run("ends the open drag", func(t *testing.T) {
		s, surface := newTestSlider(t, func(c *Config) { c.InitialValue = []float64{50} })
		r := record(s)

		require.True(t, s.PointerDown(HandleMax, 50))
		s.PointerMove(60)
		require.NoError(t, s.SetSetting(SettingDisabled, true))

		assert.False(t, s.Dragging())
		s.PointerMove(80)
		s.PointerUp()

		assert.Equal(t, 60.0, s.Value().Float())
		assert.Equal(t, []EventKind{EventStartChange, EventChange, EventStopChange}, r.kinds())
		assert.Equal(t, "-1", attr(t, surface, HandleMax, AttrTabIndex))
	})

	t.Run("rejects a later press", func(t *testing.T) {
		s, _ := newTestSlider(t, func(c *Config) { c.InitialValue = []float64{50} })
		r := record(s)

		require.NoError(t, s.SetSetting(SettingDisabled, true))
		assert.False(t, s.PointerDown(HandleMax, 50))
		s.PointerMove(80)
		s.PointerUp()

		assert.Empty(t, r.events)
		assert.Equal(t, 50.0, s.Value().Float())

		require.NoError(t, s.SetSetting(SettingDisabled, false))
		assert.True(t, s.PointerDown(HandleMax, 50))
	})
}

func TestDrag_MinHandleNeedsRange(t *testing.T) {
	s, _ := newTestSlider(t, func(c *Config) { c.InitialValue = []float64{50} })
	r := record(s)

	assert.False(t, s.PointerDown(HandleMin, 0))
	s.PointerMove(30)
	s.PointerUp()

	assert.False(t, s.Dragging())
	assert.Empty(t, r.events)
	assert.Equal(t, Pair{0, 50}, s.Pair())
}
