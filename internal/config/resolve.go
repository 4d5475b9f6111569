package config

import "github.com/spf13/pflag"

// Resolver picks each option from an explicitly set flag, then the persisted
// config, then the built-in default.
type Resolver struct {
	Flags *pflag.FlagSet
	Store *Store
}

// Bool resolves a boolean option.
func (r Resolver) Bool(flag, key string, def bool) bool {
	if r.changed(flag) {
		if v, err := r.Flags.GetBool(flag); err == nil {
			return v
		}
	}
	if v, ok := r.Store.Bool(key); ok {
		return v
	}
	return def
}

// Int resolves an integer option.
func (r Resolver) Int(flag, key string, def int) int {
	if r.changed(flag) {
		if v, err := r.Flags.GetInt(flag); err == nil {
			return v
		}
	}
	if v, ok := r.Store.Int(key); ok {
		return v
	}
	return def
}

// String resolves a string option.
func (r Resolver) String(flag, key, def string) string {
	if r.changed(flag) {
		if v, err := r.Flags.GetString(flag); err == nil {
			return v
		}
	}
	if v, ok := r.Store.String(key); ok {
		return v
	}
	return def
}

func (r Resolver) changed(flag string) bool {
	return r.Flags != nil && flag != "" && r.Flags.Changed(flag)
}
