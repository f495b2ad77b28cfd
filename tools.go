//go:build tools

package tools

// CLI tools used by this repository.
// It is not compiled into the binary.
//
// - github.com/pressly/goose/v3/cmd/goose (go.mod tool directive)
// - github.com/matryer/moq (go:generate directives next to consumer interfaces)
