// Package loader provides the high-level API for loading WebAssembly modules
// out of zip archives.
//
// # Quick Start
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
//	mod, err := ld.LoadFromArchive(ctx, "plugins.zip", "greeter.wasm", false)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer mod.Close(ctx)
//
// # Validation
//
// LoadFromArchive rejects bad arguments before touching the archive: the
// archive path must name an existing file and the module name must end with
// ".wasm". The suffix check guarantees that the derived symbol name (".wasm"
// swapped for ".map") is well-defined.
//
// # Symbol Policy
//
// When loadSymbols is true, a missing symbol entry fails the load with
// SymbolsNotFound. A Loader built with WithOpportunisticSymbols() also
// attempts the symbol lookup on every call, but a miss there degrades
// silently to loading the module without symbols.
//
// # Locations
//
// The returned Module reports a synthetic location of the form
// "archivePath::entryName", using the entry's canonical in-archive spelling.
// The location is an identifier, not a path: it must never be handed to the
// filesystem.
package loader
