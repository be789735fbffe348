// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"

	"github.com/MKhiriev/notesync/internal/adapter"
	"github.com/MKhiriev/notesync/models"
)

// errorClass is the engine's view of a failed sync.
type errorClass int

const (
	// errorClassOther covers server errors, malformed responses, timeouts and
	// local store failures. Retried with backoff.
	errorClassOther errorClass = iota
	// errorClassOffline means the service could not be reached. Retried with
	// backoff.
	errorClassOffline
	// errorClassAuth means the credentials were rejected. Not retried; the
	// host is told through an auth error event.
	errorClassAuth
)

// classifySyncError maps a transport or store error to an engine error class.
func classifySyncError(err error) errorClass {
	switch {
	case err == nil:
		return errorClassOther
	case errors.Is(err, adapter.ErrUnauthorized):
		return errorClassAuth
	case errors.Is(err, adapter.ErrOffline):
		return errorClassOffline
	}
	return errorClassOther
}

// status returns the engine status a failure of this class leads to.
func (c errorClass) status() models.EngineStatus {
	if c == errorClassOffline {
		return models.EngineStatusOffline
	}
	return models.EngineStatusError
}

// retryable reports whether the retry queue should reschedule the sync.
func (c errorClass) retryable() bool {
	return c != errorClassAuth
}

func (c errorClass) String() string {
	switch c {
	case errorClassAuth:
		return "auth"
	case errorClassOffline:
		return "offline"
	}
	return "other"
}
