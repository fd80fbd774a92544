package hostid

import "log/slog"

// IOKit names used to locate the platform UUID.
const (
	ioServiceRootPath     = "IOService:/"
	platformUUIDProperty  = "IOPlatformUUID"
	platformExpertClass   = "IOPlatformExpertDevice"
	platformUUIDBufferLen = 128
)

// ioEntry is an IOKit registry entry handle. Zero is the null handle.
type ioEntry uint32

// ioRegistry is the subset of IOKit used to read the platform UUID.
type ioRegistry interface {
	// RootEntry returns the entry at IOService:/, or 0.
	RootEntry() ioEntry
	// StringProperty copies a CFString property of entry as UTF-8. The
	// property object is released before it returns.
	StringProperty(entry ioEntry, key string) (string, bool)
	// Release releases an entry returned by RootEntry.
	Release(entry ioEntry)
}

// ioRegistryResolver reads IOPlatformUUID from the root of the IOKit
// registry.
type ioRegistryResolver struct {
	logger   *slog.Logger
	registry ioRegistry
}

// Resolve implements [PlatformResolver].
func (r *ioRegistryResolver) Resolve() Outcome {
	root := r.registry.RootEntry()
	if root == 0 {
		logDebug(r.logger, "cannot open IOKit registry root", "path", ioServiceRootPath)

		return Absent
	}
	defer r.registry.Release(root)

	id, ok := r.registry.StringProperty(root, platformUUIDProperty)
	if !ok {
		logDebug(r.logger, "IOKit property unavailable", "property", platformUUIDProperty)

		return Absent
	}

	return Found(id)
}
