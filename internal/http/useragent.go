package http

import (
	"fmt"
	"runtime"
	"strings"

	"github.com/loanstreet/servicing-go/pkg/servicing"
)

// defaultUserAgent reports the host runtime, the library, and the platform,
// e.g. "Go/1.25.0 servicing-go/1.1.0 linux/amd64".
func defaultUserAgent() string {
	goVersion := strings.TrimPrefix(runtime.Version(), "go")

	return fmt.Sprintf("Go/%s servicing-go/%s %s/%s",
		goVersion, servicing.Version, runtime.GOOS, runtime.GOARCH)
}
