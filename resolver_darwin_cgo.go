//go:build darwin && cgo

package hostid

// #cgo LDFLAGS: -framework CoreFoundation -framework IOKit
// #include <stdlib.h>
// #include <CoreFoundation/CoreFoundation.h>
// #include <IOKit/IOKitLib.h>
//
// static io_registry_entry_t rootEntry(const char *path) {
//     // 0 is both kIOMainPortDefault and kIOMasterPortDefault.
//     return IORegistryEntryFromPath(0, path);
// }
//
// static int copyStringProperty(io_registry_entry_t entry, const char *key, char *buf, CFIndex len) {
//     CFStringRef cfKey = CFStringCreateWithCString(kCFAllocatorDefault, key, kCFStringEncodingUTF8);
//     if (cfKey == NULL) {
//         return 0;
//     }
//     CFTypeRef prop = IORegistryEntryCreateCFProperty(entry, cfKey, kCFAllocatorDefault, 0);
//     CFRelease(cfKey);
//     if (prop == NULL) {
//         return 0;
//     }
//     int ok = CFGetTypeID(prop) == CFStringGetTypeID() &&
//         CFStringGetCString((CFStringRef)prop, buf, len, kCFStringEncodingUTF8);
//     CFRelease(prop);
//     return ok;
// }
import "C"

import (
	"bytes"
	"log/slog"
	"unsafe"
)

func newPlatformResolver(logger *slog.Logger) PlatformResolver {
	return &ioRegistryResolver{
		logger:   logger,
		registry: iokit{},
	}
}

// iokit talks to IOKit directly through cgo.
type iokit struct{}

func (iokit) RootEntry() ioEntry {
	path := C.CString(ioServiceRootPath)
	defer C.free(unsafe.Pointer(path))

	return ioEntry(C.rootEntry(path))
}

func (iokit) StringProperty(entry ioEntry, key string) (string, bool) {
	ckey := C.CString(key)
	defer C.free(unsafe.Pointer(ckey))

	buf := make([]byte, platformUUIDBufferLen)
	ok := C.copyStringProperty(C.io_registry_entry_t(entry), ckey,
		(*C.char)(unsafe.Pointer(&buf[0])), C.CFIndex(len(buf)))
	if ok == 0 {
		return "", false
	}

	if i := bytes.IndexByte(buf, 0); i >= 0 {
		buf = buf[:i]
	}

	return string(buf), true
}

func (iokit) Release(entry ioEntry) {
	C.IOObjectRelease(C.io_object_t(entry))
}
