//go:build linux

package hostid

import "log/slog"

func newPlatformResolver(logger *slog.Logger) PlatformResolver {
	return newFileResolver(logger)
}
