// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
)

// notFound is registered as the router's NotFound and MethodNotAllowed
// handler. Both reply with the JSON 404 body, so an unsupported method does
// not reveal that the path exists.
func notFound(w http.ResponseWriter, r *http.Request) {
	writeError(w, r, ErrRouteNotFound)
}
