// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "fmt"

// ConfigError reports invalid configuration: an unknown unit, a negative
// margin, a malformed page range. It is fatal and raised before any page
// is touched.
type ConfigError struct {
	Field  string
	Reason string
}

func (e *ConfigError) Error() string {
	if e.Field == "" {
		return "config: " + e.Reason
	}
	return fmt.Sprintf("config %s: %s", e.Field, e.Reason)
}

// CapabilityError reports that the backing capability for a requested
// quality mode is missing. It is recovered by downgrading to the standard
// mode and recorded as a warning, never returned as a fatal error.
type CapabilityError struct {
	Requested QualityMode
	Missing   string
}

func (e *CapabilityError) Error() string {
	return fmt.Sprintf("quality mode %s unavailable: %s", e.Requested, e.Missing)
}

// PageError records the failure of a single page. The page is skipped and
// the run continues; collected page errors surface in the run summary.
type PageError struct {
	// Page is the 1-based source page number.
	Page int
	Err  error
}

func (e *PageError) Error() string {
	return fmt.Sprintf("page %d: %v", e.Page, e.Err)
}

func (e *PageError) Unwrap() error { return e.Err }

// OutputWriteError reports a failure writing the final document. It is
// fatal; the partial output is discarded before it is returned.
type OutputWriteError struct {
	Path string
	Err  error
}

func (e *OutputWriteError) Error() string {
	return fmt.Sprintf("writing %s: %v", e.Path, e.Err)
}

func (e *OutputWriteError) Unwrap() error { return e.Err }
