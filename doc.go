// Package wasmarchive loads WebAssembly modules out of zip archives.
//
// A module and its optional debug-symbol companion are located inside the
// archive by name, read into memory, and handed to a ModuleLoader. The
// resulting module reports a synthetic location (archive path plus in-archive
// entry name), never a real filesystem path.
//
// # Architecture Overview
//
// The library is organized into a few packages with distinct responsibilities:
//
//	wasmarchive/     Root package with the ModuleLoader capability interfaces
//	├── loader/      High-level API: validate, locate, load, stamp location
//	├── archive/     Case-insensitive entry lookup inside a zip.Reader
//	├── engine/      wazero-backed default ModuleLoader
//	└── errors/      Structured error types
//
// # Quick Start
//
// Load a module and its symbols from an archive:
//
//	eng, err := engine.NewWazeroLoader(ctx)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer eng.Close(ctx)
//
//	ld, err := loader.New(eng)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	mod, err := ld.LoadFromArchive(ctx, "plugins.zip", "greeter.wasm", true)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer mod.Close(ctx)
//
//	fmt.Println(mod.Location()) // "plugins.zip::greeter.wasm"
//
// # Symbol Loading
//
// Symbols are looked up under the module name with its ".wasm" suffix
// replaced by ".map". When loadSymbols is true a missing symbol entry is an
// error; with loader.WithOpportunisticSymbols() the lookup is attempted on
// every load and a miss silently degrades to loading without symbols.
//
// # Resource Model
//
// Each call opens its own archive handle and closes it before returning,
// on success and on every failure path. Nothing is cached between calls.
// Loaded modules must be closed when no longer needed.
package wasmarchive
