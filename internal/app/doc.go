// Package app provides the orchestration layer for droidcat.
//
// # Overview
//
// This package wires configuration, profiles, the record feeder and the
// terminal renderer into one rendering session. It is the composition root:
// everything is built here and then driven until the input ends.
//
// # Data Flow
//
//	┌──────────────┐
//	│   Run()      │ Initialize everything
//	└──────┬───────┘
//	       │
//	       ├─────> config.Load()        Persisted settings
//	       ├─────> profiles.Load()      Named highlight sets
//	       ├─────> TerminalOptions()    flag > config > default
//	       ├─────> terminal.New()       Renderer (fails fast on html)
//	       ├─────> startFeeder()        Decode records in the background
//	       └─────> consume()            Render one record at a time (blocks)
//
// # Concurrency
//
// The feeder goroutine only decodes. Rendering happens on the calling
// goroutine, one record at a time, so the terminal's layout state needs no
// locking. Cancelling the context stops the loop between records.
//
// # Error Handling
//
// Fatal errors (returned from Run before any output):
//   - Config or profiles file unreadable or invalid
//   - Unknown profile or cyclic extends
//   - Unknown or unsupported output format
//   - Input file cannot be opened
//
// Errors that end the stream:
//   - Input read failures
//   - Output write failures (e.g. a closed pipe)
//
// End of input and context cancellation are not errors.
package app
