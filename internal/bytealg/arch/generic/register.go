package generic

import (
	"github.com/cwbudde/algo-strbuf/internal/bytealg/registry"
	"github.com/cwbudde/algo-strbuf/internal/cpu"
)

// init registers the portable kernels. They are the fallback on every
// architecture and the only choice under ForceGeneric.
//
// Priority: 0
func init() {
	registry.Global.Register(registry.OpEntry{
		Name:      "generic",
		SIMDLevel: cpu.SIMDNone,
		Priority:  0,

		Compare:   Compare,
		Equal:     Equal,
		Index:     Index,
		IndexByte: IndexByte,
		Move:      Move,
	})
}
