//go:build amd64 && !purego

package native

import (
	"github.com/cwbudde/algo-strbuf/internal/bytealg/registry"
	"github.com/cwbudde/algo-strbuf/internal/cpu"
)

// Priority: 10
func init() {
	registry.Global.Register(registry.OpEntry{
		Name:      "native",
		SIMDLevel: cpu.SIMDSSE2,
		Priority:  10,

		Compare:   Compare,
		Equal:     Equal,
		Index:     Index,
		IndexByte: IndexByte,
		Move:      Move,
	})
}
