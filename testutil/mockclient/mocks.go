package mockclient

import (
	// Fix for: cannot find module providing package go.uber.org/mock/mockgen/model: import lookup disabled by -mod=vendor
	// More info: https://github.com/uber-go/mock/issues/83#issuecomment-1931054917
	_ "go.uber.org/mock/mockgen/model"
)

// This file declares the package of the mocks generated from the interfaces
// in pkg/client (see the go:generate directives in pkg/client/interface.go).
// Regenerate them with `go generate ./pkg/client/...` after changing an interface.
