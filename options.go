package uni

import "fmt"

// Option configures Parse and Decoder.
type Option func(*options) error

type options struct {
	maxDepth int
}

// MaxDepth returns an Option that sets the maximum nesting depth of
// elements. This prevents stack overflows on deeply nested documents.
//
// The depth n must be a positive integer.
func MaxDepth(n int) Option {
	return func(o *options) error {
		if n <= 0 {
			return fmt.Errorf("uni: max depth must be a positive integer")
		}
		o.maxDepth = n
		return nil
	}
}
