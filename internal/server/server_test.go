package server

import (
	"context"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/MKhiriev/go-cpf-validator/internal/config"
	"github.com/MKhiriev/go-cpf-validator/internal/handler"
	myHTTP "github.com/MKhiriev/go-cpf-validator/internal/handler/http"
	"github.com/MKhiriev/go-cpf-validator/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestHandlers() *handler.Handlers {
	return &handler.Handlers{HTTP: myHTTP.NewHandler(nil, logger.Nop())}
}

func TestNewServer(t *testing.T) {
	tests := []struct {
		name     string
		handlers *handler.Handlers
		address  string
		wantErr  error
	}{
		{name: "http", handlers: newTestHandlers(), address: "127.0.0.1:0"},
		{name: "nil handlers", handlers: nil, address: "127.0.0.1:0", wantErr: errNoServersAreCreated},
		{name: "no http handler", handlers: &handler.Handlers{}, address: "127.0.0.1:0", wantErr: errNoServersAreCreated},
		{name: "no address", handlers: newTestHandlers(), address: "", wantErr: errNoServersAreCreated},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv, err := NewServer(tt.handlers, config.Server{HTTPAddress: tt.address}, logger.Nop())
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, srv)
				return
			}
			require.NoError(t, err)
			assert.NotNil(t, srv)
		})
	}
}

func TestNewHTTPServer_AppliesConfig(t *testing.T) {
	h := http.NotFoundHandler()
	cfg := config.Server{HTTPAddress: "127.0.0.1:9999", ShutdownTimeout: 3 * time.Second}

	srv := newHTTPServer(h, cfg, logger.Nop())

	assert.Equal(t, "127.0.0.1:9999", srv.server.Addr)
	assert.Equal(t, readHeaderTimeout, srv.server.ReadHeaderTimeout)
	assert.Equal(t, 3*time.Second, srv.shutdownTimeout)
	assert.NotNil(t, srv.server.Handler)
}

func TestHTTPServer_ShutdownBeforeServe(t *testing.T) {
	srv := newHTTPServer(http.NotFoundHandler(), config.Server{
		HTTPAddress:     "127.0.0.1:0",
		ShutdownTimeout: 50 * time.Millisecond,
	}, logger.Nop())

	srv.Shutdown()

	// a shut down server refuses to start and that is not an error
	assert.NoError(t, srv.serve())
}

func TestRun_ShutsDownOnContextCancel(t *testing.T) {
	srv, err := NewServer(newTestHandlers(), config.Server{
		HTTPAddress:     "127.0.0.1:0",
		ShutdownTimeout: time.Second,
	}, logger.Nop())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- srv.(*server).run(ctx)
	}()

	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("run did not return after context cancel")
	}
}

func TestRun_AddressInUse(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer ln.Close()

	srv, err := NewServer(newTestHandlers(), config.Server{HTTPAddress: ln.Addr().String()}, logger.Nop())
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	err = srv.(*server).run(ctx)

	var opErr *net.OpError
	assert.ErrorAs(t, err, &opErr)
	assert.Contains(t, err.Error(), "ListenAndServe")
}

func TestRun_NoServer(t *testing.T) {
	s := &server{logger: logger.Nop()}
	assert.ErrorIs(t, s.run(context.Background()), errNoServersAreCreated)
}
