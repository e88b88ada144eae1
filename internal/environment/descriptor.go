// Package environment loads and checks the development-environment
// descriptor (devcontainer.json) that declares the lab's container image,
// tooling features, and forwarded ports. Descriptors are JSONC, so comments
// are stripped with github.com/tidwall/jsonc before parsing.
package environment

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/tidwall/jsonc"
)

// DefaultPath is the standard descriptor location relative to the project root.
const DefaultPath = ".devcontainer/devcontainer.json"

// Descriptor mirrors the devcontainer.json fields the lab cares about.
// Fields the provisioning tool understands but the lab does not inspect are
// ignored during parsing.
type Descriptor struct {
	Name string `json:"name"`

	// Image is the base container image reference, e.g.
	// "mcr.microsoft.com/devcontainers/python:3.10".
	Image string `json:"image,omitempty"`

	// Features maps feature references to their options. Option values are
	// polymorphic in the descriptor format (object or string), so they stay
	// untyped here.
	Features map[string]interface{} `json:"features,omitempty"`

	// PostCreateCommand may be a string, an array, or an object in the
	// descriptor format. The lab's own descriptor uses the string form.
	PostCreateCommand interface{} `json:"postCreateCommand,omitempty"`

	// ForwardPorts entries decode as float64 (JSON numbers) or string.
	// Ports() normalizes both.
	ForwardPorts []interface{} `json:"forwardPorts,omitempty"`

	// PortsAttributes is keyed by the port number as a string.
	PortsAttributes map[string]PortAttribute `json:"portsAttributes,omitempty"`

	Customizations map[string]interface{} `json:"customizations,omitempty"`
}

// PortAttribute is the display metadata a descriptor attaches to one port.
type PortAttribute struct {
	Label         string `json:"label,omitempty"`
	OnAutoForward string `json:"onAutoForward,omitempty"`
}

// Port is a normalized forwarded port with its attached metadata.
type Port struct {
	Number        int    `json:"port"`
	Label         string `json:"label,omitempty"`
	OnAutoForward string `json:"on_auto_forward,omitempty"`
}

// Load reads a descriptor file, strips JSONC comments and trailing commas,
// and parses it.
func Load(path string) (*Descriptor, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("environment descriptor not found at %s: %w", path, err)
		}
		return nil, fmt.Errorf("read environment descriptor: %w", err)
	}

	var d Descriptor
	if err := json.Unmarshal(jsonc.ToJSON(data), &d); err != nil {
		return nil, fmt.Errorf("parse environment descriptor at %s: %w", path, err)
	}

	return &d, nil
}

// Find locates the descriptor under a project root, checking the standard
// locations in priority order.
func Find(root string) (string, error) {
	candidates := []string{
		filepath.Join(root, ".devcontainer", "devcontainer.json"),
		filepath.Join(root, ".devcontainer.json"),
	}

	for _, path := range candidates {
		if _, err := os.Stat(path); err == nil {
			return path, nil
		}
	}

	return "", fmt.Errorf("no devcontainer.json found under %s", root)
}

// Ports normalizes forwardPorts and portsAttributes into one list, in
// declaration order. Malformed entries are skipped rather than fatal.
func (d *Descriptor) Ports() []Port {
	ports := make([]Port, 0, len(d.ForwardPorts))

	for _, fp := range d.ForwardPorts {
		var number int
		switch v := fp.(type) {
		case float64:
			number = int(v)
		case string:
			n, err := strconv.Atoi(v)
			if err != nil {
				continue
			}
			number = n
		default:
			continue
		}

		port := Port{Number: number}
		if attr, ok := d.PortsAttributes[strconv.Itoa(number)]; ok {
			port.Label = attr.Label
			port.OnAutoForward = attr.OnAutoForward
		}
		ports = append(ports, port)
	}

	return ports
}

// nodeFeatureVersion returns the pinned version of the Node.js runtime
// feature, if the descriptor declares one.
func (d *Descriptor) nodeFeatureVersion() (string, bool) {
	for ref, raw := range d.Features {
		if !strings.Contains(ref, "node") {
			continue
		}
		opts, ok := raw.(map[string]interface{})
		if !ok {
			return "", false
		}
		version, ok := opts["version"].(string)
		return version, ok
	}
	return "", false
}
