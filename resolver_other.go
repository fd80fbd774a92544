//go:build !darwin && !linux && !windows

package hostid

import "log/slog"

func newPlatformResolver(logger *slog.Logger) PlatformResolver {
	return &unsupportedResolver{logger: logger}
}
