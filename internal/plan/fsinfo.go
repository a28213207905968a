// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
package plan

// FSInfo links a declared item back to the file it came from, so that apply
// errors can name the offending file.
type FSInfo struct {
	FilePath string
}

// NewFSInfo creates the file metadata for a declaration.
func NewFSInfo(filePath string) *FSInfo {
	return &FSInfo{FilePath: filePath}
}
