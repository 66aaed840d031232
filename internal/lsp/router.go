package lsp

import "go.uber.org/zap"

// route dispatches a request to its handler.
func (s *Server) route(req Request) (any, *Error) {
	switch req.Method {
	// Lifecycle
	case "initialize":
		return s.handleInitialize(req.Params)
	case "initialized":
		return s.handleInitialized()
	case "shutdown":
		return s.handleShutdown()
	case "exit":
		s.handleExit()
		return nil, nil
	}

	if !s.initialized {
		return nil, &Error{Code: CodeServerNotInitialized, Message: "server not initialized"}
	}

	switch req.Method {
	// Document synchronization
	case "textDocument/didOpen":
		return s.handleDidOpen(req.Params)
	case "textDocument/didChange":
		return s.handleDidChange(req.Params)
	case "textDocument/didClose":
		return s.handleDidClose(req.Params)
	case "textDocument/didSave":
		return s.handleDidSave(req.Params)

	// Language features
	case "textDocument/formatting":
		return s.handleFormatting(req.Params)

	default:
		s.logger.Debug("unknown method", zap.String("method", req.Method))
		return nil, &Error{Code: CodeMethodNotFound, Message: "Method not found: " + req.Method}
	}
}
