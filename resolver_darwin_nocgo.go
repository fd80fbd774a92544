//go:build darwin && !cgo

package hostid

import "log/slog"

func newPlatformResolver(logger *slog.Logger) PlatformResolver {
	return &ioregResolver{
		logger:   logger,
		executor: &defaultCommandExecutor{Timeout: defaultTimeout},
	}
}
