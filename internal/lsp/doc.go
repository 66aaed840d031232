// Package lsp implements a Language Server Protocol server that keeps class
// lists sorted from inside an editor.
//
// The server supports full document sync, textDocument/formatting (one edit
// per unsorted class list) and publishes a diagnostic for every class list
// that is not in sorted order.
package lsp
