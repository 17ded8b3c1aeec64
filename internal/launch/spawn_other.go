//go:build !windows

package launch

import "context"

func spawn(ctx context.Context, commandPath string, arguments []string) error {
	return runDirect(ctx, commandPath, arguments...)
}
