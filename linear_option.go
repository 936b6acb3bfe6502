package pyprof

import (
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type (
	_LinearOptions struct {
		Debug          bool
		Logger         *zerolog.Logger
		KernelTaxonomy KernelTaxonomy
		MarkerCodec    MarkerCodec
		Metrics        *LinearMetrics
	}
	LinearOption func(o *_LinearOptions)
)

// logger returns the configured logger,
// or the global logger of zerolog/log.
func (o *_LinearOptions) logger() zerolog.Logger {
	if o.Logger != nil {
		return *o.Logger
	}
	return log.Logger
}

// UseDebug logs the parsed result of each record at debug level.
func UseDebug() LinearOption {
	return func(o *_LinearOptions) {
		o.Debug = true
	}
}

// UseLogger uses the given logger instead of the global logger of zerolog/log.
func UseLogger(logger zerolog.Logger) LinearOption {
	return func(o *_LinearOptions) {
		o.Logger = &logger
	}
}

// UseKernelTaxonomy classifies kernels with the given KernelTaxonomy,
// instead of the built-in one.
//
// The given KernelTaxonomy is expected to be valid,
// see KernelTaxonomy.Validate.
func UseKernelTaxonomy(t KernelTaxonomy) LinearOption {
	return func(o *_LinearOptions) {
		o.KernelTaxonomy = t
	}
}

// UseMarkerCodec decodes the argument marker with the given MarkerCodec,
// default is JSONMarkerCodec.
func UseMarkerCodec(c MarkerCodec) LinearOption {
	return func(o *_LinearOptions) {
		o.MarkerCodec = c
	}
}

// UseMetrics counts every parsed or rejected record in the given LinearMetrics,
// default is not counting.
func UseMetrics(m *LinearMetrics) LinearOption {
	return func(o *_LinearOptions) {
		o.Metrics = m
	}
}
