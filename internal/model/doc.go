// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// Package model provides the in-memory data model for a diffraction
// data-collection session.
//
// # Core Concepts
//
//   - ExperimentSetup: a named detector and omega-scan configuration. It is a
//     plain value holder; callers mutate its exported fields directly.
//
//   - SamplePoint: a named position in sample space. Each point carries one
//     pair of scan flags (step scan, wide scan) for every setup registered on
//     it.
//
//   - ScanFlags: the (step, wide) pair for a single (point, setup)
//     combination.
//
// Scan flags are stored against the setup's stable identifier rather than its
// position. The ordered list of registered setups only provides index access
// for callers that work with table rows, so deleting a setup can never shift
// a flag onto the wrong column.
//
// Nothing in this package is safe for concurrent use.
package model
