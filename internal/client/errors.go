package client

import "errors"

// ErrNoServices is returned by NewApp when no services are given.
var ErrNoServices = errors.New("client services are required")
