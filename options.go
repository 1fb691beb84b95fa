package byteops

type options struct {
	batch  Batch
	pinned bool
	logger *Logger
}

// Option configures a Scanner.
type Option func(*options)

// WithBatch pins the batch a Scanner uses instead of the one selected at
// start-up. Mostly useful for tests and benchmarks; results are identical
// for every batch.
//
// An unknown batch leaves the default in place.
func WithBatch(b Batch) Option {
	return func(o *options) {
		if !b.Valid() {
			return
		}
		o.batch = b
		o.pinned = true
	}
}

// WithLogger configures the logger used by the Scanner.
//
// If nil is passed, logging is disabled.
func WithLogger(l *Logger) Option {
	return func(o *options) {
		if l == nil {
			l = NoopLogger()
		}
		o.logger = l
	}
}

func defaultOptions() options {
	return options{
		batch:  ActiveBatch(),
		logger: NoopLogger(),
	}
}
