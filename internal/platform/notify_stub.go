//go:build !linux && !darwin && !windows

package platform

import "context"

func Notify(context.Context, string, string, Options) error { return nil }
