package sim

import (
	"math/rand/v2"

	"gonum.org/v1/gonum/stat/distuv"
)

// DistSpec declares a stationary-process duration distribution by family
// name plus parameters, the shape a YAML scenario file carries. Build
// binds it to a random source at engine construction, so the spec itself
// stays a plain value that can be compared, logged, and re-used across
// runs.
type DistSpec struct {
	Family string  `yaml:"family"`
	Rate   float64 `yaml:"rate,omitempty"`  // exponential
	Shape  float64 `yaml:"shape,omitempty"` // gamma, weibull
	Scale  float64 `yaml:"scale,omitempty"` // gamma, weibull
	Mu     float64 `yaml:"mu,omitempty"`    // lognormal, normal
	Sigma  float64 `yaml:"sigma,omitempty"` // lognormal, normal
	Min    float64 `yaml:"min,omitempty"`   // uniform
	Max    float64 `yaml:"max,omitempty"`   // uniform
}

// Build constructs the gonum distribution the spec describes, drawing from
// src. Returns InvalidParameterError for unknown families or out-of-range
// parameters.
func (d DistSpec) Build(src rand.Source) (Distribution, error) {
	switch d.Family {
	case "exponential":
		if d.Rate <= 0 {
			return nil, invalidParam("rate", "exponential rate must be > 0, got %v", d.Rate)
		}
		return distuv.Exponential{Rate: d.Rate, Src: src}, nil
	case "gamma":
		if d.Shape <= 0 || d.Scale <= 0 {
			return nil, invalidParam("shape/scale", "gamma shape and scale must be > 0, got %v and %v", d.Shape, d.Scale)
		}
		// distuv parameterizes Gamma by rate; Beta = 1/scale.
		return distuv.Gamma{Alpha: d.Shape, Beta: 1 / d.Scale, Src: src}, nil
	case "weibull":
		if d.Shape <= 0 || d.Scale <= 0 {
			return nil, invalidParam("shape/scale", "weibull shape and scale must be > 0, got %v and %v", d.Shape, d.Scale)
		}
		return distuv.Weibull{K: d.Shape, Lambda: d.Scale, Src: src}, nil
	case "lognormal":
		if d.Sigma <= 0 {
			return nil, invalidParam("sigma", "lognormal sigma must be > 0, got %v", d.Sigma)
		}
		return distuv.LogNormal{Mu: d.Mu, Sigma: d.Sigma, Src: src}, nil
	case "normal":
		if d.Sigma <= 0 {
			return nil, invalidParam("sigma", "normal sigma must be > 0, got %v", d.Sigma)
		}
		return distuv.Normal{Mu: d.Mu, Sigma: d.Sigma, Src: src}, nil
	case "uniform":
		if d.Min > d.Max {
			return nil, invalidParam("min/max", "uniform needs min <= max, got %v > %v", d.Min, d.Max)
		}
		return distuv.Uniform{Min: d.Min, Max: d.Max, Src: src}, nil
	case "":
		return nil, invalidParam("family", "distribution family is required")
	}
	return nil, invalidParam("family", "unknown distribution family %q", d.Family)
}

// Exponential is shorthand for the most common process spec.
func Exponential(rate float64) DistSpec {
	return DistSpec{Family: "exponential", Rate: rate}
}

// Constant is a degenerate uniform pinned to a single value. Mostly useful
// for making event times exactly predictable in tests and demos.
func Constant(v float64) DistSpec {
	return DistSpec{Family: "uniform", Min: v, Max: v}
}
