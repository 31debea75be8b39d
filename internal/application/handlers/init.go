// Package handlers contains application use case handlers.
package handlers

import (
	"fmt"
	"os"

	"github.com/ersonp/bg3-checklist/internal/infrastructure/config"
)

// InitHandler handles checklist initialization.
type InitHandler struct{}

// NewInitHandler creates a new init handler.
func NewInitHandler() *InitHandler {
	return &InitHandler{}
}

// InitResult contains the result of initialization.
type InitResult struct {
	ConfigPath string
	DataDir    string
}

// Handle writes the default config and creates the data directory.
func (h *InitHandler) Handle(basePath string) (*InitResult, error) {
	if config.Exists(basePath) {
		return nil, fmt.Errorf("checklist already initialized in %s", basePath)
	}

	if err := config.WriteDefault(basePath); err != nil {
		return nil, fmt.Errorf("writing default config: %w", err)
	}

	cfg, err := config.Load(basePath)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	if err := os.MkdirAll(cfg.DataDir, 0755); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	return &InitResult{
		ConfigPath: config.ConfigFilePath(basePath),
		DataDir:    cfg.DataDir,
	}, nil
}
