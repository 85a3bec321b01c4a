package cli

import (
	"fmt"
	"io"
	"os"
)

// openSource opens the log named by args[idx], or stdin when the argument
// is absent or "-".
func openSource(app *App, args []string, idx int) (io.ReadCloser, string, error) {
	if len(args) <= idx || args[idx] == "-" {
		return io.NopCloser(app.stdin()), "-", nil
	}

	path := args[idx]
	f, err := os.Open(path)
	if err != nil {
		return nil, "", fmt.Errorf("opening log: %w", err)
	}
	return f, path, nil
}
