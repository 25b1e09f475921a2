package engine

import (
	"context"
	"testing"
)

// Minimal valid WASM module (no exports)
var minimalWASM = []byte{
	0x00, 0x61, 0x73, 0x6d, // magic
	0x01, 0x00, 0x00, 0x00, // version
}

// WASM with add function export
var addWASM = []byte{
	0x00, 0x61, 0x73, 0x6d, // magic
	0x01, 0x00, 0x00, 0x00, // version
	// Type section: (i32, i32) -> i32
	0x01, 0x07, 0x01, 0x60, 0x02, 0x7f, 0x7f, 0x01, 0x7f,
	// Function section: func 0 uses type 0
	0x03, 0x02, 0x01, 0x00,
	// Export section: "add" -> func 0
	0x07, 0x07, 0x01, 0x03, 0x61, 0x64, 0x64, 0x00, 0x00,
	// Code section: local.get 0 + local.get 1 = i32.add
	0x0a, 0x09, 0x01, 0x07, 0x00, 0x20, 0x00, 0x20, 0x01, 0x6a, 0x0b,
}

func TestWazeroLoader_Load(t *testing.T) {
	ctx := context.Background()

	l, err := NewWazeroLoader(ctx)
	if err != nil {
		t.Fatalf("NewWazeroLoader error: %v", err)
	}
	defer l.Close(ctx)

	mod, err := l.Load(ctx, addWASM, []byte("symbol payload"))
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	defer mod.Close(ctx)

	exports := mod.Exports()
	if len(exports) != 1 || exports[0] != "add" {
		t.Errorf("Exports() = %v, want [add]", exports)
	}

	compiled, ok := mod.(*CompiledModule)
	if !ok {
		t.Fatalf("Load returned %T, want *CompiledModule", mod)
	}
	if string(compiled.Symbols()) != "symbol payload" {
		t.Errorf("Symbols() = %q, want symbol payload", compiled.Symbols())
	}
}

func TestWazeroLoader_LoadNoExports(t *testing.T) {
	ctx := context.Background()

	l, err := NewWazeroLoader(ctx)
	if err != nil {
		t.Fatalf("NewWazeroLoader error: %v", err)
	}
	defer l.Close(ctx)

	mod, err := l.Load(ctx, minimalWASM, nil)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	defer mod.Close(ctx)

	if exports := mod.Exports(); exports != nil {
		t.Errorf("Exports() = %v, want nil", exports)
	}
	if mod.(*CompiledModule).Symbols() != nil {
		t.Error("Symbols() should be nil when none were provided")
	}
}

func TestWazeroLoader_LoadInvalidBytes(t *testing.T) {
	ctx := context.Background()

	l, err := NewWazeroLoader(ctx)
	if err != nil {
		t.Fatalf("NewWazeroLoader error: %v", err)
	}
	defer l.Close(ctx)

	if _, err := l.Load(ctx, []byte("not wasm"), nil); err == nil {
		t.Error("expected error for invalid module bytes")
	}
}

func TestCompiledModule_Instantiate(t *testing.T) {
	ctx := context.Background()

	l, err := NewWazeroLoaderWithConfig(ctx, &Config{MemoryLimitPages: 256})
	if err != nil {
		t.Fatalf("NewWazeroLoaderWithConfig error: %v", err)
	}
	defer l.Close(ctx)

	mod, err := l.Load(ctx, addWASM, nil)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}

	inst, err := mod.(*CompiledModule).Instantiate(ctx)
	if err != nil {
		t.Fatalf("Instantiate error: %v", err)
	}
	defer inst.Close(ctx)

	results, err := inst.ExportedFunction("add").Call(ctx, 2, 3)
	if err != nil {
		t.Fatalf("Call error: %v", err)
	}
	if len(results) != 1 || results[0] != 5 {
		t.Errorf("add(2, 3) = %v, want [5]", results)
	}
}
