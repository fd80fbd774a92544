package hostid

import "log/slog"

// PlatformResolver queries the operating system's machine identity store.
//
// Resolve never fails: every OS-level error is absorbed and reported as
// [Absent]. Each call acquires and releases its own OS handles, so a single
// resolver may be used from many goroutines at once.
type PlatformResolver interface {
	Resolve() Outcome
}

// ResolverFunc adapts an ordinary function to [PlatformResolver].
type ResolverFunc func() Outcome

// Resolve calls f.
func (f ResolverFunc) Resolve() Outcome {
	return f()
}

// PlatformResolverFor returns the resolver compiled for the current target
// OS. A nil logger disables logging.
func PlatformResolverFor(logger *slog.Logger) PlatformResolver {
	return newPlatformResolver(logger)
}

// unsupportedResolver is used on targets without a known machine ID store.
type unsupportedResolver struct {
	logger *slog.Logger
}

func (r *unsupportedResolver) Resolve() Outcome {
	logDebug(r.logger, "machine ID unavailable", "error", ErrNotSupported)

	return Absent
}

// logDebug logs at debug level if a logger is configured.
func logDebug(logger *slog.Logger, msg string, args ...any) {
	if logger != nil {
		logger.Debug(msg, args...)
	}
}

// logInfo logs at info level if a logger is configured.
func logInfo(logger *slog.Logger, msg string, args ...any) {
	if logger != nil {
		logger.Info(msg, args...)
	}
}

// logWarn logs at warn level if a logger is configured.
func logWarn(logger *slog.Logger, msg string, args ...any) {
	if logger != nil {
		logger.Warn(msg, args...)
	}
}
