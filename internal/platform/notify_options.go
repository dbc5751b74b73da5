// Package platform delivers desktop notifications through whatever service the
// host operating system provides.
package platform

import "time"

// AppName identifies the application to notification daemons.
const AppName = "vecdraw"

// DefaultTimeout bounds how long a notification stays on screen where the
// platform honours it.
const DefaultTimeout = 5 * time.Second

// Options configures how a notification is displayed on the host platform.
type Options struct {
	// IconPath points at a PNG preview of the drawing. Platforms without
	// image support ignore it.
	IconPath string
	// Category is a freedesktop category hint such as "transfer.complete".
	Category string
	// Timeout of zero means DefaultTimeout.
	Timeout time.Duration
}

func (o Options) timeout() time.Duration {
	if o.Timeout <= 0 {
		return DefaultTimeout
	}
	return o.Timeout
}
