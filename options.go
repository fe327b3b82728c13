package steffen

import (
	"fmt"
	"strings"
)

// Policy decides what happens to queries outside the interval spanned by the
// sample abscissas.
type Policy int

const (
	// Strict reports an ErrOutOfDomain error.
	Strict Policy = iota
	// Clamp evaluates at the nearest end of the domain.
	Clamp
	// Extrapolate continues the boundary polynomial.
	Extrapolate
)

var policyNames = map[Policy]string{
	Strict:      "strict",
	Clamp:       "clamp",
	Extrapolate: "extrapolate",
}

func (p Policy) String() string {
	if name, ok := policyNames[p]; ok {
		return name
	}
	return fmt.Sprintf("Policy(%d)", int(p))
}

// ParsePolicy converts a policy name ("strict", "clamp", "extrapolate") into
// a Policy. Matching is case-insensitive.
func ParsePolicy(s string) (Policy, error) {
	for p, name := range policyNames {
		if strings.EqualFold(s, name) {
			return p, nil
		}
	}
	return Strict, fmt.Errorf("unrecognized policy '%s': %w", s, ErrPolicy)
}

// Method selects the interpolation scheme.
type Method int

const (
	// MethodSteffen is the monotonicity-preserving cubic.
	MethodSteffen Method = iota
	// MethodCubic is the natural cubic spline. It needs at least three
	// samples.
	MethodCubic
	// MethodLinear is piecewise linear interpolation.
	MethodLinear
)

var methodNames = map[Method]string{
	MethodSteffen: "steffen",
	MethodCubic:   "cubic",
	MethodLinear:  "linear",
}

func (m Method) String() string {
	if name, ok := methodNames[m]; ok {
		return name
	}
	return fmt.Sprintf("Method(%d)", int(m))
}

// ParseMethod converts a method name ("steffen", "cubic", "linear") into a
// Method. Matching is case-insensitive.
func ParseMethod(s string) (Method, error) {
	for m, name := range methodNames {
		if strings.EqualFold(s, name) {
			return m, nil
		}
	}
	return MethodSteffen, fmt.Errorf("unrecognized method '%s': %w", s, ErrMethod)
}

type Options struct {
	policy Policy
	method Method
}

type Option func(o *Options)

func optionNew(option ...Option) *Options {
	opts := &Options{policy: Strict, method: MethodSteffen}
	for _, o := range option {
		o(opts)
	}

	return opts
}

// WithPolicy sets the out-of-domain policy. The default is Strict.
func WithPolicy(p Policy) Option {
	return func(o *Options) {
		o.policy = p
	}
}

// WithMethod sets the interpolation method. The default is MethodSteffen.
func WithMethod(m Method) Option {
	return func(o *Options) {
		o.method = m
	}
}
