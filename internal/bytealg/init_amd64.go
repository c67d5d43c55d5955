//go:build amd64

package bytealg

// Imported for their init registrations.
import (
	_ "github.com/cwbudde/algo-strbuf/internal/bytealg/arch/generic"
	_ "github.com/cwbudde/algo-strbuf/internal/bytealg/arch/native"
)
