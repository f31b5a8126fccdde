// Package monitoring holds the diagnostic logging hook shared by the search
// session, map generator and roadmap builder.
package monitoring

import (
	"fmt"
	"log"
)

// Logf is the package-level diagnostic logger. It defaults to log.Printf but may
// be replaced by SetLogger. Tests or production code can redirect or mute it.
var Logf func(format string, v ...interface{}) = log.Printf

// SetLogger replaces the package logger. Passing nil will set a no-op logger.
func SetLogger(f func(format string, v ...interface{})) {
	if f == nil {
		Logf = func(string, ...interface{}) {}
		return
	}
	Logf = f
}

// Capture redirects Logf into the returned slice until restore is called.
func Capture() (lines *[]string, restore func()) {
	original := Logf
	var buf []string
	SetLogger(func(format string, v ...interface{}) {
		buf = append(buf, fmt.Sprintf(format, v...))
	})
	return &buf, func() { Logf = original }
}
