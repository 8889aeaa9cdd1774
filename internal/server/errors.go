package server

import "errors"

// errNoServersAreCreated means there is no CPF HTTP handler or no listen
// address to serve it on.
var errNoServersAreCreated = errors.New("no servers are created")
