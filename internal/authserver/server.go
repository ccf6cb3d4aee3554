// Package authserver captures the browser redirect that ends the Pocket
// authorization flow. It accepts exactly one connection on a loopback port,
// answers with a static page and shuts down. The request is never parsed:
// Pocket's redirect carries nothing the CLI needs.
package authserver

import (
	"context"
	"errors"
	"fmt"
	"net"
	"strconv"
	"time"
)

const readLimit = 512

const successPage = `<!DOCTYPE html>
<html lang="en">
  <head>
    <meta charset="utf-8">
    <title>Pocket CLI</title>
  </head>
  <body>
    <h1>Success!</h1>
    <p>You have successfully authorized Pocket CLI.</p>
    <p>Close this window and return to Pocket CLI in your terminal.</p>
  </body>
</html>
`

type Server struct {
	ln   net.Listener
	addr string
}

// Start binds an ephemeral port on 127.0.0.1.
func Start(ctx context.Context) (*Server, error) {
	var lc net.ListenConfig
	ln, err := lc.Listen(ctx, "tcp", "127.0.0.1:0")
	if err != nil {
		return nil, fmt.Errorf("listen for authorization callback: %w", err)
	}
	return &Server{ln: ln, addr: "http://" + ln.Addr().String()}, nil
}

// Addr is the redirect URI handed to Pocket.
func (s *Server) Addr() string { return s.addr }

// Wait blocks until one connection arrives, replies with the success page
// and releases the port. A cancelled ctx closes the listener and returns
// the context error.
func (s *Server) Wait(ctx context.Context) error {
	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
			s.ln.Close()
		case <-done:
		}
	}()

	conn, err := s.ln.Accept()
	s.ln.Close()
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		return fmt.Errorf("accept authorization callback: %w", err)
	}
	defer conn.Close()

	_ = conn.SetDeadline(time.Now().Add(5 * time.Second))
	// An empty or truncated request still completes the flow.
	_, _ = conn.Read(make([]byte, readLimit))
	resp := "HTTP/1.1 200 OK\r\n" +
		"Content-Type: text/html; charset=utf-8\r\n" +
		"Content-Length: " + strconv.Itoa(len(successPage)) + "\r\n" +
		"Connection: close\r\n\r\n" + successPage
	if _, err := conn.Write([]byte(resp)); err != nil {
		return fmt.Errorf("write authorization response: %w", err)
	}
	return nil
}

// Close releases the port without waiting for a connection.
func (s *Server) Close() error {
	err := s.ln.Close()
	if errors.Is(err, net.ErrClosed) {
		return nil
	}
	return err
}
