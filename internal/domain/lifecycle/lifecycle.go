// Package lifecycle holds shared constants for component start/stop handling.
package lifecycle

import "time"

// DefaultTimeout bounds how long OnStart/OnStop hooks may block.
const DefaultTimeout = 10 * time.Second
