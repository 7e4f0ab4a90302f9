// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the interactive client application runtime.
//
// It ties a front end (the terminal UI) to the client storages holding the
// saved API base URL, and owns the process lifecycle: signal handling and
// closing the storages on exit.
package client
