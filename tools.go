//go:build tools
// +build tools

// Package tools declares tool dependencies for this module.
//
// mockgen is invoked through go generate on contract/ and repositories/;
// importing it here keeps it pinned in go.mod.
package care_chat

import (
	_ "go.uber.org/mock/mockgen"
)
