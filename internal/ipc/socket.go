package ipc

import (
	"os"
	"path/filepath"
)

// SocketPath is where the daemon listens, under XDG_RUNTIME_DIR when set.
func SocketPath() string {
	sockDir := os.Getenv("XDG_RUNTIME_DIR")
	if sockDir == "" {
		sockDir = os.TempDir()
	}
	return filepath.Join(sockDir, "slidepager.sock")
}
