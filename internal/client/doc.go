// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the terminal client runtime.
//
// It loads the environment, starts the inspector UI and stops it on
// SIGINT, SIGTERM or SIGQUIT.
package client
