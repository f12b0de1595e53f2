package services

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"os/exec"
	"runtime"

	"concept-visualizer/internal/logger"
	"concept-visualizer/internal/models"
)

var ErrNoOpener = errors.New("no URL opener configured")

// URLOpener hands a URL to the system browser. fyne.App satisfies it.
type URLOpener interface {
	OpenURL(u *url.URL) error
}

// CommandOpener opens URLs with the platform's launcher command.
type CommandOpener struct {
	goos  string
	start func(name string, args ...string) error
}

func NewCommandOpener() *CommandOpener {
	return &CommandOpener{
		goos: runtime.GOOS,
		start: func(name string, args ...string) error {
			cmd := exec.Command(name, args...)
			if err := cmd.Start(); err != nil {
				return err
			}
			// reap the child without blocking the caller
			go func() { _ = cmd.Wait() }()
			return nil
		},
	}
}

// Command returns the program and arguments used to open u.
func (co *CommandOpener) Command(u *url.URL) (string, []string) {
	switch co.goos {
	case "windows":
		return "rundll32", []string{"url.dll,FileProtocolHandler", u.String()}
	case "darwin":
		return "open", []string{u.String()}
	default:
		return "xdg-open", []string{u.String()}
	}
}

func (co *CommandOpener) OpenURL(u *url.URL) error {
	name, args := co.Command(u)
	if err := co.start(name, args...); err != nil {
		return fmt.Errorf("failed to run %s: %w", name, err)
	}
	return nil
}

// LaunchService opens catalog entries in the browser.
type LaunchService struct {
	catalog *models.Catalog
	opener  URLOpener
	logger  logger.Logger
}

func NewLaunchService(catalog *models.Catalog, opener URLOpener, log logger.Logger) *LaunchService {
	return &LaunchService{
		catalog: catalog,
		opener:  opener,
		logger:  log,
	}
}

// Launch opens exactly the URL registered for name. It does not wait for
// the browser.
func (ls *LaunchService) Launch(ctx context.Context, name string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if ls.opener == nil {
		return ErrNoOpener
	}

	raw, err := ls.catalog.URL(name)
	if err != nil {
		return err
	}
	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("%w: %v", models.ErrInvalidURL, err)
	}

	ls.logger.Info("LaunchService", "opening simulation", map[string]interface{}{
		"simulation": name,
		"url":        raw,
	})

	if err := ls.opener.OpenURL(u); err != nil {
		return fmt.Errorf("failed to open %s: %w", name, err)
	}
	return nil
}
