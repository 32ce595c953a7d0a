//go:build !vane_nooptions

package app

// optionsAPIEnabled reports whether this build carries the option-bundle
// composition model. Builds with the vane_nooptions tag drop it, and mixin
// registration becomes a reported no-op.
const optionsAPIEnabled = true
