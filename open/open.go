// Package open hands files and urls to an external application.
package open

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/vidkit/vidkit/constant"
)

// Command builds the command opening target with app, or with the system
// default handler when app is empty.
func Command(goos, target, app string) (*exec.Cmd, error) {
	if app != "" {
		switch goos {
		case constant.Windows:
			// start treats & as a command separator
			return exec.Command("cmd", "/C", "start", "", app, strings.ReplaceAll(target, "&", "^&")), nil
		case constant.Darwin:
			return exec.Command("open", "-a", app, target), nil
		default:
			return exec.Command(app, target), nil
		}
	}

	switch goos {
	case constant.Windows:
		rundll := filepath.Join(os.Getenv("SYSTEMROOT"), "System32", "rundll32.exe")
		return exec.Command(rundll, "url.dll,FileProtocolHandler", target), nil
	case constant.Darwin:
		return exec.Command("open", target), nil
	case constant.Linux:
		return exec.Command("xdg-open", target), nil
	case constant.Android:
		return exec.Command("termux-open", target), nil
	default:
		return nil, fmt.Errorf("no default handler on %s", goos)
	}
}

// Start opens target without waiting for the application to exit.
func Start(target, app string) error {
	cmd, err := Command(runtime.GOOS, target, app)
	if err != nil {
		return err
	}
	return cmd.Start()
}
