// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// Package plan loads collection plans written in HCL and applies them to a
// registry.
//
// A plan declares experiment setups and sample points, and for each point the
// setups it should be step- or wide-scanned with:
//
//	variable "detector_z" {
//	  default = 49
//	}
//
//	setup "A" {
//	  detector_pos_z = var.detector_z
//	  omega_start    = -10
//	  omega_end      = 10
//	  omega_step     = 0.5
//	  time_per_step  = 1
//	}
//
//	point "P1" {
//	  x         = 0.1
//	  step_scan = ["A"]
//	}
//
// Loading happens in two passes. All files are parsed first and every
// `variable` default is collected into the `var` object. Setup and point
// bodies are then decoded against that evaluation context, so a variable may
// be declared in any file of the plan.
//
// A plan is input configuration only. Registry state is never written back.
package plan
