//go:build darwin

package platform

import (
	"context"
	"fmt"
	"os/exec"
)

// Notify posts to Notification Center through osascript. The drawing preview
// is dropped since AppleScript notifications carry no image.
func Notify(ctx context.Context, title, body string, opts Options) error {
	script := fmt.Sprintf("display notification %q with title %q subtitle %q", body, AppName, title)
	if out, err := exec.CommandContext(ctx, "osascript", "-e", script).CombinedOutput(); err != nil {
		return fmt.Errorf("osascript: %w: %s", err, out)
	}
	return nil
}
