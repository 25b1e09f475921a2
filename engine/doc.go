// Package engine provides the wazero-backed module-loading capability.
//
// WazeroLoader implements the root package's ModuleLoader interface: it
// compiles raw module bytes with a shared wazero runtime and returns a
// CompiledModule. Debug-symbol bytes handed to Load are retained verbatim
// and exposed via CompiledModule.Symbols; wazero reads DWARF embedded in the
// module itself, so a split symbol payload is kept for callers that want to
// post-process it (source maps, external symbolizers).
//
// One WazeroLoader can serve many loads; close it only after every module
// it produced has been closed.
package engine
