package commands

import (
	logger "github.com/sirupsen/logrus"
)

// BestEffort runs fn and logs its error instead of returning it. It is used
// for side effects whose failure must not change the outcome of a run.
func BestEffort(action string, fn func() error) {
	if err := fn(); err != nil {
		logger.Infof("Failed to %s: %v", action, err)
	}
}
