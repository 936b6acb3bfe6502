package pyprof

import (
	"fmt"

	"github.com/gpustack/pyprof-go/util/mathx"
	"github.com/gpustack/pyprof-go/util/slicex"
)

// Linear represents one kernel of a profiled torch.nn.functional.linear call,
// y = x·wᵀ + b, with its analytic cost.
//
// The matrix multiply is seen as (m × k)·(k × n),
// where m is the output features, k is the input features,
// and n is the leading dimensions of x.
type Linear struct {
	/* Basic */

	// Name is the kernel name.
	Name string `json:"name"`
	// Dir is the pass of the kernel.
	Dir Direction `json:"dir"`
	// Sub is the index of the kernel within the call.
	Sub string `json:"sub,omitempty"`

	/* Shape */

	// X is the shape of the input.
	X []uint64 `json:"x"`
	// W is the shape of the weight, [out features, in features].
	W []uint64 `json:"w"`
	// B is the shape of the bias, nil if there is no bias.
	B []uint64 `json:"b,omitempty"`
	// DType is the element type shared by the input and the weight.
	DType TorchDType `json:"dtype"`
	// M is the number of output features.
	M uint64 `json:"m"`
	// N is the leading dimensions of the input,
	// whose product is the effective batch size.
	N []uint64 `json:"n"`
	// K is the contracted dimension.
	K uint64 `json:"k"`

	/* Cost */

	op    OpKind
	bytes BytesScalar
	flops FLOPSScalar
}

// ParseLinear parses the given TraceMarker as a kernel of a linear layer,
// and estimates its cost.
//
// The returned error wraps ErrMarkerFormat, ErrShapeMismatch or ErrUnknownKernel.
func ParseLinear(tm TraceMarker, opts ...LinearOption) (l *Linear, err error) {
	var o _LinearOptions
	for _, opt := range opts {
		opt(&o)
	}
	if o.KernelTaxonomy == nil {
		o.KernelTaxonomy = _DefaultKernelTaxonomy
	}
	logger := o.logger()

	if o.Metrics != nil {
		defer func() {
			o.Metrics.observe(l, err)
		}()
	}

	m, err := DecodeMarker(tm, o.MarkerCodec)
	if err != nil {
		return nil, err
	}

	l = &Linear{
		Name: tm.Name,
		Dir:  tm.Dir,
		Sub:  tm.Sub,
	}
	if err = l.setXWBMNK(m.Args); err != nil {
		return nil, err
	}

	l.op, err = o.KernelTaxonomy.classify(logger, tm)
	if err != nil {
		return nil, err
	}
	l.bytes, l.flops = l.bytesFlops()

	if o.Debug {
		logger.Debug().
			Str("kernel", l.Name).
			Str("dir", string(l.Dir)).
			Str("op", string(l.op)).
			Stringer("dtype", l.DType).
			Uint64("m", l.M).
			Uints64("n", l.N).
			Uint64("k", l.K).
			Uint64("bytes", uint64(l.bytes)).
			Uint64("flops", uint64(l.flops)).
			Msg("parsed linear")
	}
	return l, nil
}

// setXWBMNK binds x, w and the optional b from the given arguments,
// checks them against the algebra of a linear layer,
// and derives m, n and k.
func (l *Linear) setXWBMNK(args []Argument) error {
	var x, w, b *Argument
	switch len(args) {
	case 2:
		x, w = &args[0], &args[1]
	case 3:
		x, w, b = &args[0], &args[1], &args[2]
	default:
		// DecodeMarker admits 2 or 3 arguments only.
		panic(fmt.Errorf("invalid arguments count: %d", len(args)))
	}

	if !x.IsTensor() || !w.IsTensor() {
		return fmt.Errorf("%w: want tensor input and weight, got %s and %s", ErrShapeMismatch, x, w)
	}
	if b != nil {
		switch b.Kind() {
		case ArgumentKindTensor:
			if len(b.Shape) != 1 {
				return fmt.Errorf("%w: want 1-D bias, got %s", ErrShapeMismatch, b)
			}
		case ArgumentKindNone:
			if b.Value != nil {
				return fmt.Errorf("%w: None bias carries value %v", ErrShapeMismatch, b.Value)
			}
			b = nil
		default:
			return fmt.Errorf("%w: want tensor or None bias, got %s", ErrShapeMismatch, b)
		}
	}

	if len(w.Shape) != 2 {
		return fmt.Errorf("%w: want 2-D weight, got %s", ErrShapeMismatch, w)
	}
	if len(x.Shape) == 0 {
		return fmt.Errorf("%w: want at least 1-D input, got %s", ErrShapeMismatch, x)
	}
	k1 := x.Shape[len(x.Shape)-1]
	outFeatures, k2 := w.Shape[0], w.Shape[1]
	if k1 != k2 {
		return fmt.Errorf("%w: inner dimension mismatch, input %s, weight %s", ErrShapeMismatch, x, w)
	}
	if b != nil && b.Shape[0] != outFeatures {
		return fmt.Errorf("%w: bias length mismatch, want %d, got %s", ErrShapeMismatch, outFeatures, b)
	}
	t1, _ := x.TorchDType()
	t2, _ := w.TorchDType()
	if t1 != t2 {
		return fmt.Errorf("%w: dtype mismatch, input %s, weight %s", ErrShapeMismatch, t1, t2)
	}

	l.X = slicex.Clone(x.Shape)
	l.W = slicex.Clone(w.Shape)
	if b != nil {
		l.B = slicex.Clone(b.Shape)
	}
	l.DType = t1

	n, k := l.X[:len(l.X)-1], l.X[len(l.X)-1]
	m, kw := l.W[0], l.W[1]
	if k != kw {
		panic(fmt.Errorf("contracted dimension diverged: input %d, weight %d", k, kw))
	}
	l.M, l.N, l.K = m, slicex.Clone(n), k

	for _, op := range []OpKind{OpKindLinear, OpKindBias} {
		if _, _, ok := l.costOf(op); !ok {
			return fmt.Errorf("%w: %s cost of input %s, weight %s overflows", ErrShapeMismatch, op, x, w)
		}
	}
	return nil
}

// bytesFlops returns the bytes moved and the floating point operations of the kernel.
//
// The GEMM reads x and w and writes y once, without modeling tiling or reuse,
// and counts a multiply-add as 2 operations.
// The bias kernel reads and writes every output element once,
// which is applied to both the forward broadcast add and the backward reduction.
func (l *Linear) bytesFlops() (BytesScalar, FLOPSScalar) {
	switch l.op {
	case OpKindLinear, OpKindBias:
	default:
		panic(fmt.Errorf("invalid op: %q", l.op))
	}

	b, f, ok := l.costOf(l.op)
	if !ok {
		// setXWBMNK rejects the shapes whose cost overflows.
		panic(fmt.Errorf("%s cost overflows", l.op))
	}
	return b, f
}

// costOf returns the cost of the kernel as the given op,
// the result is false if any term overflows uint64.
func (l *Linear) costOf(op OpKind) (b BytesScalar, f FLOPSScalar, ok bool) {
	n, ok := mathx.Mul(l.N...)
	if !ok {
		return 0, 0, false
	}
	m, k, ts := l.M, l.K, l.DType.Size()

	var bs, fs uint64
	switch op {
	case OpKindLinear:
		mn, ok1 := mathx.Mul(m, n)
		mk, ok2 := mathx.Mul(m, k)
		nk, ok3 := mathx.Mul(n, k)
		es, ok4 := mathx.Add(mn, mk, nk)
		bs, ok = mathx.Mul(es, ts)
		ok = ok && ok1 && ok2 && ok3 && ok4
		fs, ok1 = mathx.Mul(2, m, n, k)
		ok = ok && ok1
	case OpKindBias:
		bs, ok = mathx.Mul(2, m, n, ts)
		var ok1 bool
		fs, ok1 = mathx.Mul(m, n)
		ok = ok && ok1
	default:
		return 0, 0, false
	}
	if !ok {
		return 0, 0, false
	}
	return BytesScalar(bs), FLOPSScalar(fs), true
}

// Op returns the role of the kernel.
func (l *Linear) Op() OpKind {
	return l.op
}

// Bytes returns the bytes moved by the kernel.
func (l *Linear) Bytes() BytesScalar {
	return l.bytes
}

// Flops returns the floating point operations of the kernel.
func (l *Linear) Flops() FLOPSScalar {
	return l.flops
}

// BytesFlops returns both Bytes and Flops.
func (l *Linear) BytesFlops() (BytesScalar, FLOPSScalar) {
	return l.bytes, l.flops
}

// ArithmeticIntensity returns the floating point operations per byte moved,
// which is 0 if no byte is moved.
func (l *Linear) ArithmeticIntensity() IntensityScalar {
	if l.bytes == 0 {
		return 0
	}
	return IntensityScalar(float64(l.flops) / float64(l.bytes))
}
