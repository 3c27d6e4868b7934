// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package handler

import "errors"

// errNoHandlersAreCreated is returned by NewHandlers when SERVER_ADDRESS is
// empty, leaving crrd with no transport to answer on.
var errNoHandlersAreCreated = errors.New("no handlers are created: http address is empty")
