// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the notesync client process lifecycle.
//
// It restores sync settings, recovers interrupted pushes, drives the sync
// engine from startup, SIGHUP and the periodic job, reacts to credential
// rejections and runs a last sync before the local store is closed.
package client
