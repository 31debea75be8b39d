package artifacts

import (
	"errors"
	"fmt"
	"os"

	"github.com/bytedance/sonic"

	"github.com/ersonp/bg3-checklist/internal/domain/entities"
)

// ParseBuildEquipment decodes and validates a build-equipment document.
func ParseBuildEquipment(data []byte) (*entities.BuildEquipment, error) {
	var builds entities.BuildEquipment
	if err := sonic.Unmarshal(data, &builds); err != nil {
		return nil, fmt.Errorf("%w: %v", entities.ErrInvalidBuildData, err)
	}
	if err := builds.Validate(); err != nil {
		return nil, err
	}
	return &builds, nil
}

// LoadBuildEquipment reads the build-equipment dataset at path.
// A missing file yields an index without builds.
func LoadBuildEquipment(path string) (*entities.BuildEquipment, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return entities.EmptyBuildEquipment(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading builds file: %w", err)
	}

	builds, err := ParseBuildEquipment(data)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return builds, nil
}
