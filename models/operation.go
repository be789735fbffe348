// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// OperationKindPush is the kind of operation record written around a push.
const OperationKindPush = "push"

// OperationRecord is a durable ledger entry describing an in-flight batch.
// A record without CompletedAt found at startup means the process stopped
// between sending the batch and recording its outcome.
type OperationRecord struct {
	ID             int64
	Kind           string
	EntityIDs      []string
	IdempotencyKey string
	StartedAt      time.Time
	CompletedAt    *time.Time
}

// Completed reports whether the record was closed.
func (r OperationRecord) Completed() bool {
	return r.CompletedAt != nil
}
