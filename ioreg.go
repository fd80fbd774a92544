package hostid

import (
	"context"
	"log/slog"
	"os/exec"

	"howett.net/plist"
)

// ioregFallbackPath is used when ioreg is not on PATH; some service
// environments do not include /usr/sbin.
const ioregFallbackPath = "/usr/sbin/ioreg"

// ioregEntry is the part of an `ioreg -a` plist entry we care about.
type ioregEntry struct {
	IOPlatformUUID string `plist:"IOPlatformUUID"`
}

// ioregResolver reads the platform UUID by running ioreg. It backs the
// Apple variant when the binary is built without cgo.
type ioregResolver struct {
	logger   *slog.Logger
	executor CommandExecutor
}

// Resolve implements [PlatformResolver].
func (r *ioregResolver) Resolve() Outcome {
	output, err := executeCommand(context.Background(), r.executor, ioregPath(),
		"-a", "-rd1", "-c", platformExpertClass)
	if err != nil {
		logDebug(r.logger, "cannot query IOKit registry", "error", err)

		return Absent
	}

	id, err := parseIORegPlatformUUID(output)
	if err != nil {
		logDebug(r.logger, "IOKit property unavailable", "property", platformUUIDProperty, "error", err)

		return Absent
	}

	return Found(id)
}

func ioregPath() string {
	if path, err := exec.LookPath("ioreg"); err == nil {
		return path
	}

	return ioregFallbackPath
}

// parseIORegPlatformUUID extracts the first non-empty IOPlatformUUID from
// `ioreg -a` plist output.
func parseIORegPlatformUUID(output []byte) (string, error) {
	var entries []ioregEntry
	if _, err := plist.Unmarshal(output, &entries); err != nil {
		return "", &ParseError{Source: "ioreg plist", Err: err}
	}

	for _, entry := range entries {
		if entry.IOPlatformUUID != "" {
			return entry.IOPlatformUUID, nil
		}
	}

	return "", ErrNotFound
}
