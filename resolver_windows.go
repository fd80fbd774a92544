//go:build windows

package hostid

import (
	"encoding/binary"
	"errors"
	"log/slog"

	"golang.org/x/sys/windows/registry"
)

func newPlatformResolver(logger *slog.Logger) PlatformResolver {
	return &registryResolver{
		logger: logger,
		open:   openCryptographyKey,
	}
}

// openCryptographyKey opens HKLM\SOFTWARE\Microsoft\Cryptography read-only,
// through the 64-bit registry view regardless of the process architecture.
func openCryptographyKey() (registryKey, error) {
	k, err := registry.OpenKey(registry.LOCAL_MACHINE, cryptographyKeyPath,
		registry.QUERY_VALUE|registry.WOW64_64KEY)
	if err != nil {
		return nil, err
	}

	return windowsKey{key: k}, nil
}

type windowsKey struct {
	key registry.Key
}

func (k windowsKey) StringValue(name string) ([]uint16, bool, error) {
	size, valType, err := k.key.GetValue(name, nil)
	if err != nil && !errors.Is(err, registry.ErrShortBuffer) {
		return nil, false, err
	}

	if valType != registry.SZ && valType != registry.EXPAND_SZ {
		return nil, false, nil
	}

	if size == 0 {
		return nil, true, nil
	}

	buf := make([]byte, size)
	n, valType, err := k.key.GetValue(name, buf)
	if err != nil {
		return nil, false, err
	}

	if valType != registry.SZ && valType != registry.EXPAND_SZ {
		return nil, false, nil
	}

	data := make([]uint16, n/2)
	for i := range data {
		data[i] = binary.LittleEndian.Uint16(buf[2*i:])
	}

	return data, true, nil
}

func (k windowsKey) Close() error {
	return k.key.Close()
}
