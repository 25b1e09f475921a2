package loader

import (
	"archive/zip"
	"context"
	"os"
	"strings"

	"go.uber.org/zap"

	wasmarchive "github.com/wippyai/wasm-archive"
	"github.com/wippyai/wasm-archive/archive"
	"github.com/wippyai/wasm-archive/errors"
)

const (
	// ModuleExt is the required suffix of a loadable module entry.
	ModuleExt = ".wasm"

	// SymbolsExt replaces ModuleExt when deriving the symbol entry name.
	SymbolsExt = ".map"

	// LocationSeparator joins the archive path and the canonical entry name
	// in a Module's synthetic location.
	LocationSeparator = "::"
)

// Loader loads modules out of zip archives through an injected ModuleLoader.
// It holds no per-call state and is safe for concurrent use.
type Loader struct {
	capability    wasmarchive.ModuleLoader
	log           *zap.Logger
	opportunistic bool
}

// Option configures a Loader.
type Option func(*Loader)

// WithOpportunisticSymbols makes every load attempt the symbol lookup even
// when the caller did not request symbols. A miss on such an attempt is
// tolerated: the module loads without symbols.
func WithOpportunisticSymbols() Option {
	return func(l *Loader) {
		l.opportunistic = true
	}
}

// WithLogger sets the logger used for debug-level tracing.
func WithLogger(log *zap.Logger) Option {
	return func(l *Loader) {
		l.log = log
	}
}

// New creates a Loader delegating to the given module-loading capability.
func New(capability wasmarchive.ModuleLoader, opts ...Option) (*Loader, error) {
	if capability == nil {
		return nil, errors.NotInitialized("module loader capability")
	}

	l := &Loader{
		capability: capability,
		log:        zap.NewNop(),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l, nil
}

// LoadFromArchive locates moduleName inside the zip archive at archivePath,
// reads it (and, per policy, its symbol companion) into memory, delegates to
// the module-loading capability, and returns the loaded module stamped with
// its synthetic location.
//
// The archive handle lives only for the duration of this call and is closed
// on every exit path. Zip and capability failures propagate unmodified.
func (l *Loader) LoadFromArchive(ctx context.Context, archivePath, moduleName string, loadSymbols bool) (*Module, error) {
	if err := validateArgs(archivePath, moduleName); err != nil {
		return nil, err
	}

	symbolName := strings.TrimSuffix(moduleName, ModuleExt) + SymbolsExt
	attemptSymbols := loadSymbols || l.opportunistic

	module, symbols, err := l.extract(archivePath, moduleName, symbolName, attemptSymbols)
	if err != nil {
		return nil, err
	}

	if !module.Found {
		return nil, errors.ModuleNotFound(moduleName)
	}
	if loadSymbols && !symbols.Found {
		return nil, errors.SymbolsNotFound(symbolName)
	}

	var symbolBytes []byte
	if attemptSymbols && symbols.Found {
		symbolBytes = symbols.Bytes
	}

	handle, err := l.capability.Load(ctx, module.Bytes, symbolBytes)
	if err != nil {
		return nil, err
	}

	location := archivePath + LocationSeparator + module.Name
	l.log.Debug("module loaded from archive",
		zap.String("location", location),
		zap.Bool("symbols", symbolBytes != nil))

	return newModule(handle, location, symbolBytes != nil), nil
}

// extract performs the archive-scoped portion of a load: open, locate the
// module entry, optionally locate the symbol entry, close.
func (l *Loader) extract(archivePath, moduleName, symbolName string, attemptSymbols bool) (module, symbols archive.Result, err error) {
	r, err := zip.OpenReader(archivePath)
	if err != nil {
		return archive.Result{}, archive.Result{}, err
	}
	defer r.Close()

	module, err = archive.Locate(moduleName, &r.Reader)
	if err != nil {
		return archive.Result{}, archive.Result{}, err
	}

	if attemptSymbols {
		symbols, err = archive.Locate(symbolName, &r.Reader)
		if err != nil {
			return archive.Result{}, archive.Result{}, err
		}
	}

	return module, symbols, nil
}

// validateArgs enforces the pre-I/O rejection conditions, in order.
func validateArgs(archivePath, moduleName string) error {
	if strings.TrimSpace(archivePath) == "" {
		return errors.InvalidArgument("archivePath", "must not be empty")
	}
	if _, err := os.Stat(archivePath); err != nil {
		return errors.InvalidArgument("archivePath", "archive %q does not exist", archivePath)
	}
	if strings.TrimSpace(moduleName) == "" {
		return errors.InvalidArgument("moduleName", "must not be empty")
	}
	if !strings.HasSuffix(moduleName, ModuleExt) {
		return errors.InvalidArgument("moduleName", "must end with %q", ModuleExt)
	}
	return nil
}
