package pyprof

import (
	_ "embed"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/gpustack/pyprof-go/util/json"
	"github.com/gpustack/pyprof-go/util/stringx"
)

// OpKind is the role of a kernel within a linear layer.
type OpKind string

// OpKind constants.
const (
	// OpKindLinear is the matrix multiply itself, including its split-K reductions.
	OpKindLinear OpKind = "linear"
	// OpKindBias is the broadcast add (forward) or the reduction (backward) of the bias.
	OpKindBias OpKind = "bias"
)

// Types for KernelTaxonomy.
type (
	// KernelPattern maps the kernels whose name contains Pattern to Kind.
	KernelPattern struct {
		Pattern string `json:"pattern"`
		Kind    OpKind `json:"kind"`
	}

	// KernelTaxonomy is a table of KernelPattern.
	KernelTaxonomy []KernelPattern
)

//go:embed kernel_taxonomy.json
var _KernelTaxonomyJSON []byte

// _DefaultKernelTaxonomy is loaded from kernel_taxonomy.json at initialization.
var _DefaultKernelTaxonomy = func() KernelTaxonomy {
	t, err := ParseKernelTaxonomy(_KernelTaxonomyJSON)
	if err != nil {
		panic(fmt.Errorf("load default kernel taxonomy: %w", err))
	}
	return t
}()

// DefaultKernelTaxonomy returns a copy of the built-in KernelTaxonomy.
func DefaultKernelTaxonomy() KernelTaxonomy {
	return append(KernelTaxonomy(nil), _DefaultKernelTaxonomy...)
}

// ParseKernelTaxonomy parses a JSON array of KernelPattern,
// and validates the result.
func ParseKernelTaxonomy(data []byte) (KernelTaxonomy, error) {
	var t KernelTaxonomy
	if err := json.UnmarshalStrict(data, &t); err != nil {
		return nil, fmt.Errorf("parse kernel taxonomy: %w", err)
	}
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return t, nil
}

// Validate returns an error if the KernelTaxonomy is empty,
// has a pattern that is empty or of an unknown kind,
// or has a pattern listed under both kinds.
func (t KernelTaxonomy) Validate() error {
	if len(t) == 0 {
		return errors.New("invalid kernel taxonomy: no patterns")
	}
	seen := make(map[string]OpKind, len(t))
	for i, p := range t {
		if p.Pattern == "" {
			return fmt.Errorf("invalid kernel taxonomy: pattern %d is empty", i)
		}
		switch p.Kind {
		case OpKindLinear, OpKindBias:
		default:
			return fmt.Errorf("invalid kernel taxonomy: pattern %q has unknown kind %q", p.Pattern, p.Kind)
		}
		if k, ok := seen[p.Pattern]; ok && k != p.Kind {
			return fmt.Errorf("invalid kernel taxonomy: pattern %q is both %q and %q", p.Pattern, k, p.Kind)
		}
		seen[p.Pattern] = p.Kind
	}
	return nil
}

// Patterns returns the patterns of the given kind, in table order.
func (t KernelTaxonomy) Patterns(kind OpKind) []string {
	var ps []string
	for i := range t {
		if t[i].Kind == kind {
			ps = append(ps, t[i].Pattern)
		}
	}
	return ps
}

// Classify returns the OpKind of the given kernel name.
//
// GEMM patterns take precedence,
// a kernel matching both a GEMM and a bias pattern is OpKindLinear.
// The result is false if no pattern matches.
func (t KernelTaxonomy) Classify(name string) (OpKind, bool) {
	for _, k := range []OpKind{OpKindLinear, OpKindBias} {
		if stringx.ContainsAny(name, t.Patterns(k)...) {
			return k, true
		}
	}
	return "", false
}

// classify is the same as Classify,
// but warns and returns ErrUnknownKernel if no pattern matches.
func (t KernelTaxonomy) classify(logger zerolog.Logger, tm TraceMarker) (OpKind, error) {
	k, ok := t.Classify(tm.Name)
	if !ok {
		logger.Warn().
			Str("kernel", tm.Name).
			Str("dir", string(tm.Dir)).
			Msg("unknown kernel encountered")
		return "", fmt.Errorf("%w: %q", ErrUnknownKernel, tm.Name)
	}
	return k, nil
}

// _TensorCorePatterns are the name patterns of the GEMM kernels running on tensor cores.
var _TensorCorePatterns = []string{
	"h884", "s884", "h1688", "s1688", "c1688", "hmma", "i8816", "16816",
	"xmma_gemm", "xmma_sparse_gemm", "xmma_implicit_gemm", "xmma_warp_specialized_implicit_gemm",
}

// TensorCore returns whether the kernel is a GEMM running on tensor cores,
// which is always false for a bias kernel.
func (l *Linear) TensorCore() bool {
	return l.op == OpKindLinear && stringx.ContainsAny(l.Name, _TensorCorePatterns...)
}
