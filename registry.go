package hostid

import (
	"log/slog"
	"unicode/utf16"
)

// Location of the Windows machine GUID, always read through the 64-bit view.
const (
	cryptographyKeyPath = `SOFTWARE\Microsoft\Cryptography`
	machineGUIDValue    = "MachineGuid"
)

// registryKey is an open, read-only registry key.
type registryKey interface {
	// StringValue returns the raw UTF-16 data of the named value and whether
	// the value is of a text type.
	StringValue(name string) (data []uint16, text bool, err error)
	Close() error
}

// registryResolver reads the machine GUID from the registry.
type registryResolver struct {
	logger *slog.Logger
	open   func() (registryKey, error)
}

// Resolve implements [PlatformResolver].
func (r *registryResolver) Resolve() Outcome {
	key, err := r.open()
	if err != nil {
		logDebug(r.logger, "cannot open registry key", "key", cryptographyKeyPath, "error", err)

		return Absent
	}
	defer key.Close()

	data, text, err := key.StringValue(machineGUIDValue)
	switch {
	case err != nil:
		logDebug(r.logger, "cannot query registry value", "value", machineGUIDValue, "error", err)

		return Absent
	case !text:
		logDebug(r.logger, "registry value is not a string", "value", machineGUIDValue)

		return Absent
	case len(data) == 0:
		logDebug(r.logger, "registry value is empty", "value", machineGUIDValue)

		return Absent
	}

	return Found(decodeRegistryString(data))
}

// decodeRegistryString drops exactly one trailing NUL terminator, if present,
// and decodes the rest. Registry strings are not guaranteed to be terminated.
func decodeRegistryString(data []uint16) string {
	if n := len(data); n > 0 && data[n-1] == 0 {
		data = data[:n-1]
	}

	return string(utf16.Decode(data))
}
