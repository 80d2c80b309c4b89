package ports

// BellView renders the bell. Implementations may animate toward the
// values they receive.
type BellView interface {
	// SetImageAlpha sets the bell image opacity in [0, 1]
	SetImageAlpha(alpha float64)

	// SetInfoText sets the prompt text and whether it is shown
	SetInfoText(text string, visible bool)

	// SetInfoTransform turns the prompt 180 degrees when flipped
	SetInfoTransform(flipped bool)
}
