package ports

// OrientationSensor reports how the device is being held
type OrientationSensor interface {
	// UpsideDown reports whether the device is held upside-down
	UpsideDown() bool
}
