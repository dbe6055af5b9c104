//go:build edn_no_sets

package edn

const setsEnabled = false
