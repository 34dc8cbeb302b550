//go:build !ebiten

package ui

// Banner is a no-op placeholder used when the ebiten build tag is absent.
type Banner struct{}

// NewBanner constructs a stub banner.
func NewBanner() *Banner { return &Banner{} }

// Draw is a no-op placeholder.
func (b *Banner) Draw(any, string, int, int) {}
