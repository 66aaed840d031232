package lsp

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"sync"

	"go.uber.org/zap"

	"github.com/grindlemire/twsort/internal/sorter"
)

// Server is the twsort language server.
type Server struct {
	// Input/output for JSON-RPC communication
	reader *bufio.Reader
	writer io.Writer
	mu     sync.Mutex // protects writer

	docs   *DocumentManager
	sorter *sorter.Sorter
	logger *zap.Logger

	// WarnUnknown adds a hint diagnostic for every unknown class.
	WarnUnknown bool

	initialized bool
	shutdown    bool
	exited      bool
	rootURI     string
}

// NewServer creates a server that communicates over the given reader and
// writer and sorts with s. A nil logger discards log output.
func NewServer(reader io.Reader, writer io.Writer, s *sorter.Sorter, logger *zap.Logger) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Server{
		reader: bufio.NewReader(reader),
		writer: writer,
		docs:   NewDocumentManager(),
		sorter: s,
		logger: logger,
	}
}

// Run serves requests until the client exits, the input is closed or ctx
// is cancelled.
func (s *Server) Run(ctx context.Context) error {
	s.logger.Info("language server starting")

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		msg, err := s.readMessage()
		if err != nil {
			if errors.Is(err, io.EOF) {
				s.logger.Info("connection closed")
				return nil
			}
			return fmt.Errorf("reading message: %w", err)
		}

		s.logger.Debug("received", zap.ByteString("message", msg))

		response, err := s.handleMessage(msg)
		if err != nil {
			s.logger.Error("handling message", zap.Error(err))
			continue
		}

		if response != nil {
			if err := s.writeMessage(response); err != nil {
				return fmt.Errorf("writing response: %w", err)
			}
		}

		if s.exited {
			s.logger.Info("server exiting")
			return nil
		}
	}
}

// readMessage reads a JSON-RPC message from the input.
// Messages are formatted as HTTP-like headers followed by content:
// Content-Length: <length>\r\n
// \r\n
// <content>
func (s *Server) readMessage() ([]byte, error) {
	var contentLength int
	for {
		line, err := s.reader.ReadString('\n')
		if err != nil {
			return nil, err
		}
		line = strings.TrimSpace(line)
		if line == "" {
			break
		}
		if value, ok := strings.CutPrefix(line, "Content-Length:"); ok {
			contentLength, err = strconv.Atoi(strings.TrimSpace(value))
			if err != nil {
				return nil, fmt.Errorf("invalid Content-Length: %w", err)
			}
		}
	}

	if contentLength == 0 {
		return nil, errors.New("missing Content-Length header")
	}

	content := make([]byte, contentLength)
	if _, err := io.ReadFull(s.reader, content); err != nil {
		return nil, fmt.Errorf("reading content: %w", err)
	}
	return content, nil
}

// writeMessage writes a JSON-RPC message to the output.
func (s *Server) writeMessage(msg []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	header := fmt.Sprintf("Content-Length: %d\r\n\r\n", len(msg))
	if _, err := io.WriteString(s.writer, header); err != nil {
		return err
	}
	if _, err := s.writer.Write(msg); err != nil {
		return err
	}

	s.logger.Debug("sent", zap.ByteString("message", msg))
	return nil
}

// sendNotification sends a notification (no response expected).
func (s *Server) sendNotification(method string, params any) error {
	data, err := json.Marshal(map[string]any{
		"jsonrpc": "2.0",
		"method":  method,
		"params":  params,
	})
	if err != nil {
		return err
	}
	return s.writeMessage(data)
}

// Request represents a JSON-RPC request.
type Request struct {
	JSONRPC string          `json:"jsonrpc"`
	ID      any             `json:"id,omitempty"` // can be number or string
	Method  string          `json:"method"`
	Params  json.RawMessage `json:"params,omitempty"`
}

// Response represents a JSON-RPC response.
type Response struct {
	JSONRPC string `json:"jsonrpc"`
	ID      any    `json:"id,omitempty"`
	Result  any    `json:"result"`
	Error   *Error `json:"error,omitempty"`
}

// Error represents a JSON-RPC error.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// JSON-RPC error codes
const (
	CodeParseError           = -32700
	CodeInvalidRequest       = -32600
	CodeMethodNotFound       = -32601
	CodeInvalidParams        = -32602
	CodeInternalError        = -32603
	CodeServerNotInitialized = -32002
)

// handleMessage processes a single JSON-RPC message and returns the encoded
// response, or nil for notifications.
func (s *Server) handleMessage(msg []byte) ([]byte, error) {
	var req Request
	if err := json.Unmarshal(msg, &req); err != nil {
		return s.errorResponse(nil, CodeParseError, "Parse error")
	}

	result, rpcErr := s.route(req)

	// Notifications don't get responses
	if req.ID == nil {
		if rpcErr != nil {
			s.logger.Warn("notification failed",
				zap.String("method", req.Method),
				zap.String("error", rpcErr.Message),
			)
		}
		return nil, nil
	}

	if rpcErr != nil {
		return s.errorResponse(req.ID, rpcErr.Code, rpcErr.Message)
	}

	return json.Marshal(Response{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result:  result,
	})
}

// errorResponse creates an error response.
func (s *Server) errorResponse(id any, code int, message string) ([]byte, error) {
	return json.Marshal(Response{
		JSONRPC: "2.0",
		ID:      id,
		Error: &Error{
			Code:    code,
			Message: message,
		},
	})
}
