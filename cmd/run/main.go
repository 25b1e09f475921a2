package main

import (
	"archive/zip"
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/wippyai/wasm-archive/engine"
	"github.com/wippyai/wasm-archive/loader"
)

func main() {
	var (
		archivePath   = flag.String("archive", "", "Path to zip archive holding .wasm modules")
		moduleName    = flag.String("module", "", "In-archive module entry name (e.g. greeter.wasm)")
		loadSymbols   = flag.Bool("symbols", false, "Require the .map symbol companion")
		opportunistic = flag.Bool("opportunistic", false, "Pick up symbols when present, ignore when missing")
		list          = flag.Bool("list", false, "List module entries in the archive and exit")
		interactive   = flag.Bool("i", false, "Interactive mode with TUI")
	)
	flag.Parse()

	if *archivePath == "" {
		fmt.Fprintln(os.Stderr, "Usage: run -archive <file.zip> -module <name.wasm> [-symbols] [-opportunistic]")
		fmt.Fprintln(os.Stderr, "       run -archive <file.zip> -list")
		fmt.Fprintln(os.Stderr, "       run -archive <file.zip> -i  (interactive mode)")
		os.Exit(1)
	}

	if *interactive {
		if !term.IsTerminal(int(os.Stdout.Fd())) {
			fmt.Fprintln(os.Stderr, "Error: interactive mode requires a terminal")
			os.Exit(1)
		}
		if err := runInteractive(*archivePath, *opportunistic); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if err := run(*archivePath, *moduleName, *loadSymbols, *opportunistic, *list); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(archivePath, moduleName string, loadSymbols, opportunistic, listOnly bool) error {
	if listOnly {
		return listModules(archivePath)
	}
	if moduleName == "" {
		return fmt.Errorf("-module is required (or use -list / -i)")
	}

	ctx := context.Background()

	eng, err := engine.NewWazeroLoader(ctx)
	if err != nil {
		return fmt.Errorf("create engine: %w", err)
	}
	defer eng.Close(ctx)

	var opts []loader.Option
	if opportunistic {
		opts = append(opts, loader.WithOpportunisticSymbols())
	}
	ld, err := loader.New(eng, opts...)
	if err != nil {
		return fmt.Errorf("create loader: %w", err)
	}

	mod, err := ld.LoadFromArchive(ctx, archivePath, moduleName, loadSymbols)
	if err != nil {
		return err
	}
	defer mod.Close(ctx)

	fmt.Printf("Location: %s\n", mod.Location())
	fmt.Printf("Symbols:  %v\n", mod.HasSymbols())

	exports := mod.Exports()
	fmt.Printf("\nExported functions: %d\n", len(exports))
	for _, name := range exports {
		fmt.Printf("  %s\n", name)
	}

	return nil
}

func listModules(archivePath string) error {
	r, err := zip.OpenReader(archivePath)
	if err != nil {
		return fmt.Errorf("open archive: %w", err)
	}
	defer r.Close()

	fmt.Printf("Modules in %s:\n", archivePath)
	for _, f := range r.File {
		if !strings.HasSuffix(strings.ToLower(f.Name), loader.ModuleExt) {
			continue
		}
		fmt.Printf("  %s (%d bytes)\n", f.Name, f.UncompressedSize64)
	}
	return nil
}
