//go:build !linux && !darwin

package surface

import (
	"context"
	"os"
)

type termState struct{}

func disableEcho(int) (*termState, error) {
	return nil, nil
}

func restoreState(int, *termState) error {
	return nil
}

// WatchResize is a no-op on platforms without SIGWINCH.
func WatchResize(ctx context.Context, f *os.File, fn func(width, height int)) {}
