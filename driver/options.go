package driver

import "github.com/gogpu/colorful"

// Option configures a Driver during creation.
type Option func(*driverOptions)

type driverOptions struct {
	clock    Clock
	animOpts []colorful.Option
}

func defaultOptions() driverOptions {
	return driverOptions{clock: systemClock{}}
}

// WithClock replaces the wall clock, mostly for tests and offline rendering.
func WithClock(c Clock) Option {
	return func(o *driverOptions) {
		if c != nil {
			o.clock = c
		}
	}
}

// WithAnimatorOptions passes options through to the underlying Animator.
func WithAnimatorOptions(opts ...colorful.Option) Option {
	return func(o *driverOptions) {
		o.animOpts = append(o.animOpts, opts...)
	}
}
