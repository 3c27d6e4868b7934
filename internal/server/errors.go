// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "errors"

// errNoHTTPHandler is returned by NewServer when there is nothing to serve
// or no address to serve it on.
var errNoHTTPHandler = errors.New("no http handler or address to serve")
