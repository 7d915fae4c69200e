// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the headless sync client runtime.
//
// It wires the background sync job, the store change log and usage
// reporting into a single process lifecycle.
package client
