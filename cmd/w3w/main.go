// Copyright 2025 The w3w-go-wrapper Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

/*
Package main is the w3w command: a what3words API client and a
three word address (3wa) recogniser that can also run as a MessagePack IPC
server for editors and other tools.

# Usage

Check a piece of text without touching the network:

	w3w check "deliver to ///filled.count.soap please"

List every 3wa-shaped string in some text:

	w3w find --offsets "filled.count.soap or deed.tulip.judge"

Confirm a 3wa against the API (one autosuggest request):

	W3W_API_KEY=... w3w valid filled.count.soap

Convert in either direction:

	w3w convert filled.count.soap
	w3w convert 51.520847,-0.195521

Start the IPC server on stdin/stdout, or the interactive mode:

	w3w serve
	w3w cli --lookup

# Configuration

Settings live in a TOML file, created with defaults on first run at
[UserConfigDir]/w3w/config.toml:

	[api]
	key = ""
	host = "https://api.what3words.com/v3"
	timeout_seconds = 30

	[api.headers]

	[server]
	max_input_bytes = 65536
	enable_lookups = true

	[cli]
	lookup = false
	show_offsets = false
	n_results = 3

W3W_API_KEY and W3W_HOST, from the environment or a .env file, override the
file. The --key and --host flags override both.

# IPC Protocol

See package server. Requests look like:

	{"id": "req1", "op": "find", "text": "meet at filled.count.soap"}

and are answered with:

	{"id": "req1", "ok": true, "matches": [{"w": "filled.count.soap", "s": 8, "e": 25}], "t": 9}
*/
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/what3words/w3w-go-wrapper/cmd/w3w/cmd"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := cmd.Execute(ctx)
	stop()
	if err != nil {
		os.Exit(1)
	}
}
