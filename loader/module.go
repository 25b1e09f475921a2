package loader

import (
	"context"

	wasmarchive "github.com/wippyai/wasm-archive"
)

// Module is a module loaded out of an archive. It wraps the handle produced
// by the ModuleLoader capability together with the synthetic location it was
// loaded from. Module values are immutable after construction.
type Module struct {
	handle     wasmarchive.LoadedModule
	location   string
	hasSymbols bool
}

func newModule(handle wasmarchive.LoadedModule, location string, hasSymbols bool) *Module {
	return &Module{
		handle:     handle,
		location:   location,
		hasSymbols: hasSymbols,
	}
}

// Location returns the synthetic "archivePath::entryName" identifier. It is
// not a filesystem path and must not be stat'ed or opened.
func (m *Module) Location() string {
	return m.location
}

// HasSymbols reports whether debug symbols were passed to the loader.
func (m *Module) HasSymbols() bool {
	return m.hasSymbols
}

// Handle returns the underlying loaded module produced by the capability.
func (m *Module) Handle() wasmarchive.LoadedModule {
	return m.handle
}

// Exports returns the names of the module's exported functions.
func (m *Module) Exports() []string {
	return m.handle.Exports()
}

// Close releases the underlying loaded module.
func (m *Module) Close(ctx context.Context) error {
	return m.handle.Close(ctx)
}
