//go:build smoothgap_debug

package search

import "fmt"

func assertfImpl(cond bool, format string, args ...any) {
	if !cond {
		panic(fmt.Sprintf(format, args...))
	}
}
