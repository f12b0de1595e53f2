package app

import (
	"sync"

	"concept-visualizer/internal/logger"
)

type Lifecycle struct {
	app    *Application
	logger logger.Logger
	once   sync.Once
	done   bool
	mu     sync.Mutex
}

func NewLifecycle(app *Application, log logger.Logger) *Lifecycle {
	return &Lifecycle{
		app:    app,
		logger: log,
	}
}

// Shutdown runs once; later calls are no-ops.
func (l *Lifecycle) Shutdown() {
	l.once.Do(func() {
		l.logger.Info("Lifecycle", "shutdown sequence initiated", nil)

		if l.app.controller != nil {
			l.app.controller.Shutdown()
			l.logger.Debug("Lifecycle", "controller shutdown completed", nil)
		}

		l.mu.Lock()
		l.done = true
		l.mu.Unlock()

		l.logger.Info("Lifecycle", "shutdown sequence completed", nil)
	})
}

func (l *Lifecycle) IsShutdown() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.done
}
