// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// EngineStatus is the state of the sync engine state machine.
//
// idle is the resting state. syncing is transient and reentrancy-guarded.
// offline and error are transient failure states; any of them moves back to
// syncing on the next sync attempt, so there is no terminal failure state.
type EngineStatus string

const (
	EngineStatusIdle    EngineStatus = "idle"
	EngineStatusSyncing EngineStatus = "syncing"
	EngineStatusOffline EngineStatus = "offline"
	EngineStatusError   EngineStatus = "error"
)
