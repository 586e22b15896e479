// Package zipf fits a Zipfian exponent s to a vector of relative type
// proportions by bracketed grid search (§4.I): the source has no
// closed-form estimator for s, so it narrows a bracket around the best
// of 32 equally-spaced candidates, eight times over, minimising mean
// squared error against the normalised theoretical distribution
// i^-s / Σ j^-s.
package zipf
