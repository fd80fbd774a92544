package hostid

import (
	"log/slog"
	"runtime"
	"sync"
)

// Provider resolves the machine ID of the current host.
// Every call performs one fresh OS query; nothing is cached.
// Provider methods are safe for concurrent use after configuration is complete.
type Provider struct {
	resolver   PlatformResolver
	dispatcher Dispatcher
	logger     *slog.Logger

	runnerOnce sync.Once
	runner     *AsyncRunner
}

// New creates a Provider backed by the resolver compiled for the current
// platform. Asynchronous results are delivered with [Immediate] unless
// [Provider.WithDispatcher] is used.
func New() *Provider {
	return &Provider{}
}

// WithResolver replaces the platform resolver.
func (p *Provider) WithResolver(resolver PlatformResolver) *Provider {
	p.resolver = resolver

	return p
}

// WithDispatcher sets where asynchronous completions run, typically a [Loop]
// owned by the caller.
func (p *Provider) WithDispatcher(dispatcher Dispatcher) *Provider {
	p.dispatcher = dispatcher

	return p
}

// WithLogger sets an optional [*slog.Logger] for observability.
// When set, the provider logs each lookup and, at debug level, the reason a
// lookup produced no identifier. A nil logger (the default) disables all
// logging.
func (p *Provider) WithLogger(logger *slog.Logger) *Provider {
	p.logger = logger

	return p
}

// Resolve performs one synchronous lookup on the calling goroutine.
func (p *Provider) Resolve() Outcome {
	outcome := p.platform().Resolve()

	logInfo(p.logger, "machine ID resolved",
		"platform", runtime.GOOS,
		"found", outcome.Found,
	)

	return outcome
}

// ID returns the machine ID and whether one was found.
func (p *Provider) ID() (string, bool) {
	return p.Resolve().Value()
}

// IDAsync schedules a lookup on a worker goroutine and returns immediately.
// done is invoked exactly once through the configured dispatcher. A nil done
// returns [ErrInvalidArgument] and schedules nothing.
func (p *Provider) IDAsync(done Completion) error {
	return p.asyncRunner().Run(done)
}

// Wait blocks until all lookups scheduled with [Provider.IDAsync] have been
// handed to the dispatcher.
func (p *Provider) Wait() {
	p.asyncRunner().Wait()
}

func (p *Provider) asyncRunner() *AsyncRunner {
	p.runnerOnce.Do(func() {
		p.runner = NewAsyncRunner(ResolverFunc(p.Resolve), p.dispatcher, p.logger)
	})

	return p.runner
}

func (p *Provider) platform() PlatformResolver {
	if p.resolver != nil {
		return p.resolver
	}

	return newPlatformResolver(p.logger)
}

var defaultProvider = New()

// GetMachineID returns the host's machine ID, or false when it is
// unavailable or the platform is unsupported.
func GetMachineID() (string, bool) {
	return defaultProvider.ID()
}

// GetMachineIDSync is identical to [GetMachineID].
func GetMachineIDSync() (string, bool) {
	return defaultProvider.ID()
}

// GetMachineIDAsync resolves the machine ID on a worker goroutine and calls
// done exactly once with the outcome. It returns [ErrInvalidArgument] when
// done is nil.
func GetMachineIDAsync(done Completion) error {
	return defaultProvider.IDAsync(done)
}
