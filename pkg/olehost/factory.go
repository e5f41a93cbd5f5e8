package olehost

// NewFactory returns the platform [Factory]. On platforms without an
// automation host, every Launch fails with
// [vbaerrors.ErrHostUnavailable].
//
//nolint:ireturn // Platform-selected implementation.
func NewFactory() Factory {
	return newPlatformFactory()
}
