package authserver

import (
	"context"
	"io"
	"net"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWaitServesSuccessPageOnce(t *testing.T) {
	srv, err := Start(context.Background())
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(srv.Addr(), "http://127.0.0.1:"), srv.Addr())

	waitErr := make(chan error, 1)
	go func() { waitErr <- srv.Wait(context.Background()) }()

	resp, err := http.Get(srv.Addr() + "/?code=ignored")
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	resp.Body.Close()
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(body), "Success!")

	select {
	case err := <-waitErr:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("Wait did not return")
	}

	_, err = net.DialTimeout("tcp", strings.TrimPrefix(srv.Addr(), "http://"), time.Second)
	assert.Error(t, err, "port should be released after Wait")
}

func TestWaitToleratesEmptyRequest(t *testing.T) {
	srv, err := Start(context.Background())
	require.NoError(t, err)

	waitErr := make(chan error, 1)
	go func() { waitErr <- srv.Wait(context.Background()) }()

	conn, err := net.Dial("tcp", strings.TrimPrefix(srv.Addr(), "http://"))
	require.NoError(t, err)
	require.NoError(t, conn.(*net.TCPConn).CloseWrite())
	reply, err := io.ReadAll(conn)
	conn.Close()
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(reply), "HTTP/1.1 200 OK\r\n"))
	require.NoError(t, <-waitErr)
}

func TestWaitHonoursContext(t *testing.T) {
	srv, err := Start(context.Background())
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	err = srv.Wait(ctx)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.NoError(t, srv.Close())
}
