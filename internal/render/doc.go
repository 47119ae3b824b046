// Package render writes calculator output for the terminal UI in one of
// three formats: plain text, JSON (bytedance/sonic) or YAML (goccy/go-yaml).
//
// Numbers that JSON cannot carry (±Inf, NaN) are encoded as the strings
// "inf", "-inf" and "nan".
package render
