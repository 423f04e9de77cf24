package srs

import "math"

// Params defines all configurable parameters for the SRS algorithm
type Params struct {
	// Initial state
	InitialEase float64

	// Core limits
	MinEase float64
	MaxEase float64

	// Ease adjustments per grading outcome
	CorrectEaseBonus float64
	WrongEasePenalty float64

	// Fixed intervals, in days
	FirstInterval   float64 // after the first correct review
	SecondInterval  float64 // after the second consecutive correct review
	RelearnInterval float64 // after a wrong review, deliberately sub-day

	// Upper bound for any interval, in days
	MaxInterval float64
}

// ParamsConfig allows overriding the default parameters when creating a new Params instance
type ParamsConfig struct {
	InitialEase float64

	MinEase float64
	MaxEase float64

	CorrectEaseBonus float64
	WrongEasePenalty float64

	FirstInterval   float64
	SecondInterval  float64
	RelearnInterval float64
	MaxInterval     float64
}

// NewDefaultParams creates a new Params instance with default values
func NewDefaultParams() *Params {
	return &Params{
		InitialEase: 2.5,

		MinEase: 1.3,
		MaxEase: 3.0,

		CorrectEaseBonus: 0.05,
		WrongEasePenalty: 0.2,

		FirstInterval:   1,
		SecondInterval:  3,
		RelearnInterval: 0.01, // ~15 minutes

		MaxInterval: 36500, // 100 years
	}
}

// NewParams creates a new Params instance with custom configuration.
// Zero fields in config keep their default values.
func NewParams(config ParamsConfig) *Params {
	params := NewDefaultParams()

	if config.InitialEase > 0 {
		params.InitialEase = config.InitialEase
	}
	if config.MinEase > 0 {
		params.MinEase = config.MinEase
	}
	if config.MaxEase > 0 {
		params.MaxEase = config.MaxEase
	}
	if config.CorrectEaseBonus > 0 {
		params.CorrectEaseBonus = config.CorrectEaseBonus
	}
	if config.WrongEasePenalty > 0 {
		params.WrongEasePenalty = config.WrongEasePenalty
	}
	if config.FirstInterval > 0 {
		params.FirstInterval = config.FirstInterval
	}
	if config.SecondInterval > 0 {
		params.SecondInterval = config.SecondInterval
	}
	if config.RelearnInterval > 0 {
		params.RelearnInterval = config.RelearnInterval
	}
	if config.MaxInterval > 0 {
		params.MaxInterval = config.MaxInterval
	}

	return params
}

// ClampEase limits ease to [MinEase, MaxEase].
func (p *Params) ClampEase(ease float64) float64 {
	if ease < p.MinEase {
		return p.MinEase
	}
	if ease > p.MaxEase {
		return p.MaxEase
	}
	return ease
}

// ClampInterval limits an interval to [0, MaxInterval]. NaN counts as zero.
func (p *Params) ClampInterval(days float64) float64 {
	switch {
	case math.IsNaN(days), days < 0:
		return 0
	case days > p.MaxInterval:
		return p.MaxInterval
	}
	return days
}
