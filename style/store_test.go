package style

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewStoreDefaults(t *testing.T) {
	s := NewStore()
	got := s.Get()

	assert.Equal(t, "#ff0000", got.Color)
	assert.Equal(t, "transparent", got.Fill)
	assert.Equal(t, 2.0, got.StrokeWidth)
	assert.Equal(t, 16.0, got.FontSize)
	assert.Equal(t, "Arial, sans-serif", got.FontFamily)
	assert.Equal(t, "single", got.ArrowStyle)
	assert.False(t, got.ShadowEnabled)
}

func TestGetReturnsCopy(t *testing.T) {
	s := NewStore()
	got := s.Get()
	got.Color = "#123456"

	assert.Equal(t, "#ff0000", s.Get().Color, "mutating the copy must not affect the store")
}

func TestSetStrokeWidthClampsToMinimum(t *testing.T) {
	s := NewStore()

	var fired int
	s.Subscribe(func(st Style) { fired++ })

	s.SetStrokeWidth(0)

	assert.Equal(t, MinStrokeWidth, s.Get().StrokeWidth)
	assert.Equal(t, 1, fired, "clamped change should notify exactly once")

	// Setting the same clamped value again changes nothing.
	s.SetStrokeWidth(0.2)
	assert.Equal(t, MinStrokeWidth, s.Get().StrokeWidth)
	assert.Equal(t, 1, fired, "no-op update must not notify")
}

func TestSetFontSizeClampsToMinimum(t *testing.T) {
	s := NewStore()
	s.SetFontSize(3)
	assert.Equal(t, MinFontSize, s.Get().FontSize)

	s.SetFontSize(24)
	assert.Equal(t, 24.0, s.Get().FontSize)
}

func TestUpdateNotifiesOncePerEffectiveChange(t *testing.T) {
	s := NewStore()

	var fired int
	s.Subscribe(func(st Style) { fired++ })

	c := "#00ff00"
	w := 4.0
	s.Update(Partial{Color: &c, StrokeWidth: &w})
	assert.Equal(t, 1, fired, "multi-field update notifies once")

	s.Update(Partial{Color: &c, StrokeWidth: &w})
	assert.Equal(t, 1, fired, "identical update must not notify")
}

func TestListenerReceivesNewStyle(t *testing.T) {
	s := NewStore()

	var got Style
	s.Subscribe(func(st Style) { got = st })

	s.SetColor("#0000ff")
	assert.Equal(t, "#0000ff", got.Color)
}

func TestUnsubscribe(t *testing.T) {
	s := NewStore()

	var a, b int
	subA := s.Subscribe(func(Style) { a++ })
	s.Subscribe(func(Style) { b++ })

	s.SetColor("#111111")
	subA.Unsubscribe()
	s.SetColor("#222222")

	assert.Equal(t, 1, a)
	assert.Equal(t, 2, b)

	// Idempotent.
	subA.Unsubscribe()
	s.SetColor("#333333")
	assert.Equal(t, 1, a)
	assert.Equal(t, 3, b)
}

func TestSubscribeNilListener(t *testing.T) {
	s := NewStore()
	sub := s.Subscribe(nil)
	require.NotNil(t, sub)
	sub.Unsubscribe()

	// Store still works.
	s.SetColor("#444444")
	assert.Equal(t, "#444444", s.Get().Color)
}

func TestPanickingListenerDoesNotStopOthers(t *testing.T) {
	s := NewStore()

	var after int
	s.Subscribe(func(Style) { panic("listener boom") })
	s.Subscribe(func(Style) { after++ })

	assert.NotPanics(t, func() { s.SetColor("#555555") })
	assert.Equal(t, 1, after, "listener after the panicking one still fires")
}

func TestSetShadow(t *testing.T) {
	s := NewStore()

	enabled := true
	blur := 10.0
	s.SetShadow(ShadowPartial{Enabled: &enabled, Blur: &blur})

	got := s.Get()
	assert.True(t, got.ShadowEnabled)
	assert.Equal(t, 10.0, got.ShadowBlur)
	assert.Equal(t, DefaultStyle.ShadowColor, got.ShadowColor, "unset shadow fields keep defaults")

	// Negative blur clamps to zero.
	neg := -5.0
	s.SetShadow(ShadowPartial{Blur: &neg})
	assert.Equal(t, 0.0, s.Get().ShadowBlur)
}

func TestReset(t *testing.T) {
	s := NewStore()
	s.SetColor("#999999")
	s.SetStrokeWidth(9)

	var fired int
	s.Subscribe(func(Style) { fired++ })

	s.Reset()
	assert.Equal(t, DefaultStyle, s.Get())
	assert.Equal(t, 1, fired, "reset notifies listeners")
}

func TestDestroy(t *testing.T) {
	s := NewStore()

	var fired int
	s.Subscribe(func(Style) { fired++ })

	s.Destroy()
	s.SetColor("#abcdef")
	s.Reset()

	assert.Equal(t, 0, fired, "destroyed store never notifies")
	assert.Equal(t, DefaultStyle.Color, s.Get().Color, "destroyed store ignores updates")

	// Subscribing after destroy hands back an inert subscription.
	sub := s.Subscribe(func(Style) { fired++ })
	require.NotNil(t, sub)
	sub.Unsubscribe()
}

func TestListenersFireInRegistrationOrder(t *testing.T) {
	s := NewStore()

	var order []int
	for i := 0; i < 5; i++ {
		i := i
		s.Subscribe(func(Style) { order = append(order, i) })
	}

	s.SetColor("#fedcba")
	assert.Equal(t, []int{0, 1, 2, 3, 4}, order)
}
