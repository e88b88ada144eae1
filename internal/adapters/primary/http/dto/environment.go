package dto

import (
	"tokenomics-lab/internal/environment"
)

type PortResponse struct {
	Number        int    `json:"port"`
	Label         string `json:"label,omitempty"`
	OnAutoForward string `json:"on_auto_forward,omitempty"`
}

type EnvironmentResponse struct {
	Name  string         `json:"name"`
	Image string         `json:"image"`
	Ports []PortResponse `json:"ports"`
}

func ToEnvironmentResponse(d *environment.Descriptor) EnvironmentResponse {
	ports := make([]PortResponse, 0, len(d.ForwardPorts))
	for _, p := range d.Ports() {
		ports = append(ports, PortResponse{
			Number:        p.Number,
			Label:         p.Label,
			OnAutoForward: p.OnAutoForward,
		})
	}

	return EnvironmentResponse{
		Name:  d.Name,
		Image: d.Image,
		Ports: ports,
	}
}
