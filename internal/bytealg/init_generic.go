//go:build !amd64 && !arm64

package bytealg

// Imported for its init registration.
import (
	_ "github.com/cwbudde/algo-strbuf/internal/bytealg/arch/generic"
)
