// Package config loads droidcat's persisted settings and resolves options.
//
// # Configuration Discovery
//
// Load reads a TOML file:
//
//  1. If a path is explicitly provided, use it
//  2. Otherwise, use ~/.config/droidcat/config.toml
//  3. If the file doesn't exist, the Store is empty and defaults apply
//
// Every key can also be set through the environment with a DROIDCAT_ prefix,
// e.g. DROIDCAT_TERMINAL_MONOCHROME=true.
//
// # TOML Format
//
//	terminal_format = "human"
//	terminal_monochrome = false
//	terminal_hide_timestamp = false
//	terminal_no_dimm = false
//	terminal_shorten_tags = true
//	terminal_show_date = false
//	terminal_tag_width = 20
//	terminal_show_time_diff = true
//	terminal_time_diff_width = 8
//
// # Resolution Order
//
// Resolver answers "what is the value of this option" in a fixed order:
//
//  1. the command-line flag, if it was set explicitly
//  2. the persisted value, if the key is present
//  3. the built-in default
//
// # Error Handling
//
// Load returns errors for path expansion failures, unreadable files and
// TOML parse errors. A missing file is not an error.
package config
