package ipc

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os"

	"github.com/labstack/echo/v4"
	"github.com/matjam/slidepager/internal/middleware"
)

func NewServer(manager ManagerInterface) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middleware.CharmLog())

	RegisterRoutes(e, manager)
	return e
}

// Serve listens on sockPath, replacing a stale socket file, and blocks until
// the server is shut down.
func Serve(e *echo.Echo, sockPath string) error {
	if _, err := os.Stat(sockPath); err == nil {
		_ = os.Remove(sockPath)
	}

	listener, err := net.Listen("unix", sockPath)
	if err != nil {
		return err
	}
	e.Listener = listener

	if err := e.StartServer(e.Server); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func Shutdown(ctx context.Context, e *echo.Echo, sockPath string) error {
	err := e.Shutdown(ctx)
	_ = os.Remove(sockPath)
	return err
}
