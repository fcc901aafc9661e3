// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package optim provides first-order optimizers for scalar parameters.
//
// # Overview
//
// This package contains:
//   - SGD: Stochastic Gradient Descent with momentum
//   - Adam: Adaptive Moment Estimation with bias correction
//   - Optimizer interface for custom optimizers
//
// # Training Loop Pattern
//
// Number data never changes after creation, so each iteration builds its
// graph on a new tape from the values returned by the previous Step:
//
//	opt := optim.NewAdam(optim.AdamConfig{LR: 0.05})
//	values := []float64{0, 0}
//
//	for range steps {
//	    tape := autodiff.NewTape()
//	    params := tape.Leaves(values...)
//
//	    loss := buildLoss(tape, params)
//	    if err := loss.Backward(); err != nil {
//	        return err
//	    }
//
//	    values, err = opt.Step(params)
//	    if err != nil {
//	        return err
//	    }
//	}
package optim

import "github.com/born-ml/scalar/internal/optim"

// Optimizer interface defines the common interface for all optimizers.
type Optimizer = optim.Optimizer

// Config represents the base configuration for optimizers.
type Config = optim.Config

// SGD represents the SGD optimizer with optional momentum.
type SGD = optim.SGD

// SGDConfig contains configuration for SGD optimizer.
type SGDConfig = optim.SGDConfig

// NewSGD creates a new SGD optimizer.
//
// Example:
//
//	opt := optim.NewSGD(optim.SGDConfig{LR: 0.01, Momentum: 0.9})
func NewSGD(config SGDConfig) *SGD {
	return optim.NewSGD(config)
}

// Adam represents the Adam optimizer.
type Adam = optim.Adam

// AdamConfig contains configuration for Adam optimizer.
type AdamConfig = optim.AdamConfig

// NewAdam creates a new Adam optimizer.
//
// Example:
//
//	opt := optim.NewAdam(optim.AdamConfig{LR: 0.001})
func NewAdam(config AdamConfig) *Adam {
	return optim.NewAdam(config)
}

// ErrParamCount is returned when the number of parameters changes between steps.
var ErrParamCount = optim.ErrParamCount
