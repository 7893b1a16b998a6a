package mathmark

import (
	"fmt"
	"strings"
)

// Backend selects the engine that renders delimited formulas.
type Backend int

const (
	// BackendFallback renders the supported formulas with pattern rules.
	BackendFallback Backend = iota
	// BackendNative would hand formulas to a full typesetting engine.
	BackendNative
)

// nativeBackendWired reports whether a native typesetting engine is compiled
// in. No such engine exists in this module.
const nativeBackendWired = false

// Backend names accepted by ParseBackend.
const (
	BackendNameAuto     = "auto"
	BackendNameFallback = "fallback"
	BackendNameNative   = "native"
)

func (b Backend) String() string {
	switch b {
	case BackendFallback:
		return BackendNameFallback
	case BackendNative:
		return BackendNameNative
	default:
		return fmt.Sprintf("Backend(%d)", int(b))
	}
}

// ProbeBackend returns the best backend available in this build. The result
// never changes during the life of the process.
func ProbeBackend() Backend {
	if nativeBackendWired {
		return BackendNative
	}
	return BackendFallback
}

// ParseBackend maps a configured backend name to a Backend. Empty and "auto"
// resolve through ProbeBackend. Names are case-insensitive.
func ParseBackend(name string) (Backend, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", BackendNameAuto:
		return ProbeBackend(), nil
	case BackendNameFallback:
		return BackendFallback, nil
	case BackendNameNative:
		return BackendNative, nil
	default:
		return 0, fmt.Errorf("%w: %q (must be one of %s, %s, %s)",
			ErrUnknownBackend, name, BackendNameAuto, BackendNameFallback, BackendNameNative)
	}
}
