package dashboard

// Overlay is the two-state visibility machine for the metrics overlay:
// Hidden or Shown. Initial state is Hidden.
type Overlay struct {
	shown bool
}

// Visible reports whether the overlay is shown.
func (o Overlay) Visible() bool {
	return o.shown
}

// Toggle flips between Hidden and Shown.
func (o Overlay) Toggle() Overlay {
	return Overlay{shown: !o.shown}
}

// Close sets the overlay to Hidden from any state.
func (o Overlay) Close() Overlay {
	return Overlay{}
}
