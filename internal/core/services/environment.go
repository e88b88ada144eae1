package services

import (
	"tokenomics-lab/internal/core/domain"
	"tokenomics-lab/internal/environment"
)

// EnvironmentService exposes the devcontainer descriptor the server loaded at
// startup. The descriptor is optional; the API reports it unavailable rather
// than failing startup when the file is absent.
type EnvironmentService struct {
	descriptor *environment.Descriptor
}

func NewEnvironmentService(descriptor *environment.Descriptor) *EnvironmentService {
	return &EnvironmentService{descriptor: descriptor}
}

func (s *EnvironmentService) Describe() (*environment.Descriptor, error) {
	if s.descriptor == nil {
		return nil, domain.ErrEnvironmentNotLoaded
	}
	return s.descriptor, nil
}
