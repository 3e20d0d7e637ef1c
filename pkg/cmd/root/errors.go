package root

import "errors"

const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

// UsageError reports bad or missing command line arguments. It is raised
// before any file is touched.
type UsageError struct {
	msg string
}

func (e *UsageError) Error() string {
	return e.msg
}

// ExitCode maps an error returned by the root command to a process exit code.
func ExitCode(err error) int {
	if err == nil {
		return exitOK
	}
	var usageErr *UsageError
	if errors.As(err, &usageErr) {
		return exitUsage
	}
	return exitError
}
