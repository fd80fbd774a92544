// Package hostid reads the machine identifier that the host operating system
// itself maintains. The value is stable across reboots and is returned exactly
// as the OS stores it, making it suitable as an input for device
// fingerprinting and licensing checks.
//
// # Overview
//
// One lookup strategy is compiled per target OS:
//
//   - macOS: the IOPlatformUUID property at the root of the IOKit registry
//     (IOService:/). Without cgo, the same property is read from
//     `ioreg -a` plist output.
//   - Linux: the first line of /var/lib/dbus/machine-id, falling back to
//     /etc/machine-id, with surrounding whitespace trimmed.
//   - Windows: HKLM\SOFTWARE\Microsoft\Cryptography\MachineGuid, read through
//     the 64-bit registry view.
//   - Anything else: no identifier.
//
// Every OS-level failure (missing file, denied registry access, missing
// property) is reported as absence rather than as an error.
//
// # Quick Start
//
//	id, ok := hostid.GetMachineID()
//	if !ok {
//		// no machine ID on this host
//	}
//
// # Asynchronous Lookup
//
// [GetMachineIDAsync] and [Provider.IDAsync] perform the lookup on a worker
// goroutine and invoke a [Completion] exactly once:
//
//	err := hostid.GetMachineIDAsync(func(outcome hostid.Outcome, err error) {
//		if err != nil {
//			// the worker faulted; errors.Is(err, hostid.ErrInternalFault)
//			return
//		}
//		id, ok := outcome.Value()
//		_, _ = id, ok
//	})
//
// A nil callback is rejected synchronously with [ErrInvalidArgument].
//
// By default the callback runs on the worker goroutine. To have it run on a
// goroutine you own, configure a [Loop] and drain it:
//
//	loop := hostid.NewLoop()
//	provider := hostid.New().WithDispatcher(loop)
//	_ = provider.IDAsync(handle)
//	_ = loop.RunOnce(ctx)
//
// # Logging
//
// [Provider.WithLogger] accepts any [*slog.Logger]. Reasons for absence are
// logged at debug level.
//
// # Thread Safety
//
// Lookups share no mutable state. Each call opens and releases its own file,
// registry or IOKit handles.
//
// # CLI Tool
//
// A command-line tool is provided in cmd/hostid:
//
//	hostid
//	hostid get --json
//	hostid validate <id>
//	hostid bench --iterations 100
package hostid
