// SPDX-License-Identifier: MIT
// Package: kuranet/params

package params

import "errors"

// ErrInvalidParams signals a parameter document that fails tag or
// cross-field validation.
var ErrInvalidParams = errors.New("params: invalid parameters")
