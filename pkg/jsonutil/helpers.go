// Package jsonutil provides JSON parsing and manipulation utilities for
// mazeview.
//
// These helpers are used for splitting newline-delimited dataset files,
// pretty-printing fetched documents in the inspect command, and trimming
// long text for display.
package jsonutil

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// SplitLines splits a newline-delimited JSON document into its non-blank
// lines. Carriage returns are stripped so CRLF files parse the same as
// LF files.
func SplitLines(data []byte) []string {
	var out []string
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimRight(line, "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		out = append(out, line)
	}
	return out
}

// PrettyJSON formats a JSON string with indentation for display.
// Returns the original string if it's not valid JSON.
func PrettyJSON(s string) string {
	var obj interface{}
	if err := json.Unmarshal([]byte(s), &obj); err != nil {
		return s
	}
	pretty, err := json.MarshalIndent(obj, "", "  ")
	if err != nil {
		return s
	}
	return string(pretty)
}

// CompactJSON minifies a JSON string by removing whitespace.
func CompactJSON(s string) string {
	var buf bytes.Buffer
	if err := json.Compact(&buf, []byte(s)); err != nil {
		return s
	}
	return buf.String()
}

// MustMarshal marshals a value to JSON, panicking on error.
// Use only for values known to be marshalable (e.g., maps, slices).
func MustMarshal(v interface{}) string {
	b, err := json.Marshal(v)
	if err != nil {
		panic(fmt.Sprintf("jsonutil.MustMarshal: %v", err))
	}
	return string(b)
}

// TruncateString truncates a string to maxLen characters, adding "..."
// if truncation occurred. Used for display in the TUI.
func TruncateString(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return s[:maxLen]
	}
	return s[:maxLen-3] + "..."
}
