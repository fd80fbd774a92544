package hostid

import (
	"bufio"
	"errors"
	"io"
	"log/slog"
	"os"
	"strings"
)

// Well-known locations of the systemd / D-Bus machine ID.
const (
	dbusMachineIDPath = "/var/lib/dbus/machine-id"
	etcMachineIDPath  = "/etc/machine-id"
)

// machineIDCutset is the whitespace trimmed from file-based identifiers.
const machineIDCutset = " \t\r\n"

// fileResolver reads the machine ID from a primary file, falling back to a
// second file when the primary yields nothing.
type fileResolver struct {
	logger   *slog.Logger
	primary  string
	fallback string
}

func newFileResolver(logger *slog.Logger) *fileResolver {
	return &fileResolver{
		logger:   logger,
		primary:  dbusMachineIDPath,
		fallback: etcMachineIDPath,
	}
}

// Resolve implements [PlatformResolver].
// The fallback is consulted only when the primary's first line is empty
// before trimming; trimming is applied once, to whichever line was used.
func (r *fileResolver) Resolve() Outcome {
	line := readFirstLine(r.primary, r.logger)
	if line == "" {
		logDebug(r.logger, "primary machine ID file empty, trying fallback",
			"primary", r.primary, "fallback", r.fallback)

		line = readFirstLine(r.fallback, r.logger)
	}

	id := strings.Trim(line, machineIDCutset)
	if id == "" {
		logDebug(r.logger, "machine ID unavailable", "error", ErrNotFound)

		return Absent
	}

	return Found(id)
}

// readFirstLine returns the first line of path without its line terminator.
// Failing to open or read the file yields an empty line; a permission error
// is indistinguishable from a missing file.
func readFirstLine(path string, logger *slog.Logger) string {
	f, err := os.Open(path)
	if err != nil {
		logDebug(logger, "cannot open machine ID file", "path", path, "error", err)

		return ""
	}
	defer f.Close()

	line, err := bufio.NewReader(f).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		logDebug(logger, "cannot read machine ID file", "path", path, "error", err)

		return ""
	}

	return strings.TrimSuffix(line, "\n")
}
