//go:build vane_nooptions

package app

// optionsAPIEnabled is false in builds compiled without the option-bundle
// composition model.
const optionsAPIEnabled = false
