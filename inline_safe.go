//go:build nounsafe

package sbo

func stringView(b []byte) string { return string(b) }

func stringBytes(s string) []byte { return []byte(s) }
