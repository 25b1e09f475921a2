package wasmarchive

import "context"

// ModuleLoader turns raw module bytes into a loaded module. It is the
// external loading capability consumed by the loader package; implementations
// must treat both byte slices as read-only.
type ModuleLoader interface {
	// Load compiles or otherwise prepares the module. symbols carries the
	// raw debug-symbol payload and may be nil.
	Load(ctx context.Context, module []byte, symbols []byte) (LoadedModule, error)
}

// LoadedModule is the object a ModuleLoader produces.
type LoadedModule interface {
	// Exports returns the names of the module's exported functions.
	Exports() []string

	// Close releases resources held by the loaded module.
	Close(ctx context.Context) error
}
