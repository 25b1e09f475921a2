package engine

import (
	"context"
	"fmt"
	"sort"

	"github.com/tetratelabs/wazero"
	"github.com/tetratelabs/wazero/api"
	"go.uber.org/zap"

	wasmarchive "github.com/wippyai/wasm-archive"
)

// WazeroLoader implements wasmarchive.ModuleLoader using a wazero runtime.
// Safe for concurrent use.
type WazeroLoader struct {
	runtime wazero.Runtime
}

// Config holds configuration for loader creation
type Config struct {
	// MemoryLimitPages sets the maximum memory per instance in pages
	// (64KB each). 0 means the wazero default (65536 pages = 4GB).
	MemoryLimitPages uint32
}

// NewWazeroLoader creates a new wazero-based module loader
func NewWazeroLoader(ctx context.Context) (*WazeroLoader, error) {
	return NewWazeroLoaderWithConfig(ctx, nil)
}

// NewWazeroLoaderWithConfig creates a new loader with custom configuration
func NewWazeroLoaderWithConfig(ctx context.Context, cfg *Config) (*WazeroLoader, error) {
	runtimeCfg := wazero.NewRuntimeConfig()
	if cfg != nil && cfg.MemoryLimitPages > 0 {
		runtimeCfg = runtimeCfg.WithMemoryLimitPages(cfg.MemoryLimitPages)
	}

	runtime := wazero.NewRuntimeWithConfig(ctx, runtimeCfg)
	return &WazeroLoader{runtime: runtime}, nil
}

// Load compiles module bytes and returns the compiled module. symbols may be
// nil; when present the payload is retained on the result untouched.
func (l *WazeroLoader) Load(ctx context.Context, module []byte, symbols []byte) (wasmarchive.LoadedModule, error) {
	compiled, err := l.runtime.CompileModule(ctx, module)
	if err != nil {
		return nil, fmt.Errorf("compile failed: %w", err)
	}

	Logger().Debug("module compiled",
		zap.Int("module_bytes", len(module)),
		zap.Int("symbol_bytes", len(symbols)))

	return &CompiledModule{
		runtime:  l.runtime,
		compiled: compiled,
		symbols:  symbols,
	}, nil
}

// Close releases the underlying wazero runtime and every module compiled
// with it.
func (l *WazeroLoader) Close(ctx context.Context) error {
	return l.runtime.Close(ctx)
}

// CompiledModule is a compiled WASM module plus its retained symbol payload
type CompiledModule struct {
	runtime  wazero.Runtime
	compiled wazero.CompiledModule
	symbols  []byte
}

// Exports returns the names of all exported functions, sorted.
func (m *CompiledModule) Exports() []string {
	defs := m.compiled.ExportedFunctions()
	if len(defs) == 0 {
		return nil
	}
	names := make([]string, 0, len(defs))
	for name := range defs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Symbols returns the raw debug-symbol payload handed to Load, or nil.
func (m *CompiledModule) Symbols() []byte {
	return m.symbols
}

// Instantiate creates a running instance of the module. Instances share the
// loader's runtime; each must be closed independently.
func (m *CompiledModule) Instantiate(ctx context.Context) (api.Module, error) {
	return m.runtime.InstantiateModule(ctx, m.compiled, wazero.NewModuleConfig().WithName(""))
}

// Close releases the compiled module.
func (m *CompiledModule) Close(ctx context.Context) error {
	return m.compiled.Close(ctx)
}
