// Copyright (C) 2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package constants

import "errors"

var (
	ErrUserAborted    = errors.New("deployment aborted by user")
	ErrUnknownNetwork = errors.New("unknown network")
)
