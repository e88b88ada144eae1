package environment

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Finding is one verification failure. Verify reports all findings instead
// of stopping at the first so a drifted descriptor is diagnosed in one pass.
type Finding struct {
	Check  string `json:"check"`
	Detail string `json:"detail"`
}

// The facts the lab's descriptor must declare: a Python 3.10 base image, a
// Node.js feature pinned to a major version, and the two labeled ports.
var expectedPorts = []Port{
	{Number: 8000, Label: "FastAPI Backend", OnAutoForward: "notify"},
	{Number: 3000, Label: "React Frontend", OnAutoForward: "openBrowser"},
}

const expectedPythonTag = "3.10"

var majorVersionRe = regexp.MustCompile(`^[0-9]+$`)

// Verify checks a descriptor against the lab's expected environment facts.
// A nil return means the descriptor is clean.
func Verify(d *Descriptor) []Finding {
	var findings []Finding

	findings = append(findings, verifyImage(d)...)
	findings = append(findings, verifyNodeFeature(d)...)
	findings = append(findings, verifyPorts(d)...)

	return findings
}

func verifyImage(d *Descriptor) []Finding {
	if d.Image == "" {
		return []Finding{{Check: "image", Detail: "no base image declared"}}
	}

	tag := ""
	if idx := strings.LastIndex(d.Image, ":"); idx >= 0 {
		tag = d.Image[idx+1:]
	}

	if !strings.Contains(d.Image, "python") || !strings.HasPrefix(tag, expectedPythonTag) {
		return []Finding{{
			Check:  "image",
			Detail: fmt.Sprintf("expected a Python %s base image, got %q", expectedPythonTag, d.Image),
		}}
	}
	return nil
}

func verifyNodeFeature(d *Descriptor) []Finding {
	version, ok := d.nodeFeatureVersion()
	if !ok {
		return []Finding{{Check: "node_feature", Detail: "no Node.js feature with a version option declared"}}
	}
	if !majorVersionRe.MatchString(version) {
		return []Finding{{
			Check:  "node_feature",
			Detail: fmt.Sprintf("Node.js feature version %q is not a pinned major version", version),
		}}
	}
	return nil
}

func verifyPorts(d *Descriptor) []Finding {
	var findings []Finding

	declared := make(map[int]Port, len(d.ForwardPorts))
	for _, p := range d.Ports() {
		declared[p.Number] = p
	}

	for _, want := range expectedPorts {
		got, ok := declared[want.Number]
		if !ok {
			findings = append(findings, Finding{
				Check:  "ports",
				Detail: fmt.Sprintf("port %d is not forwarded", want.Number),
			})
			continue
		}
		if got.Label != want.Label {
			findings = append(findings, Finding{
				Check:  "ports",
				Detail: fmt.Sprintf("port %d label %q, expected %q", want.Number, got.Label, want.Label),
			})
		}
		if got.OnAutoForward != want.OnAutoForward {
			findings = append(findings, Finding{
				Check:  "ports",
				Detail: fmt.Sprintf("port %d onAutoForward %q, expected %q", want.Number, got.OnAutoForward, want.OnAutoForward),
			})
		}
	}

	// Attribute keys without a matching forwarded port are dead metadata.
	for key := range d.PortsAttributes {
		number, err := strconv.Atoi(key)
		if err != nil {
			findings = append(findings, Finding{
				Check:  "ports",
				Detail: fmt.Sprintf("portsAttributes key %q is not a port number", key),
			})
			continue
		}
		if _, ok := declared[number]; !ok {
			findings = append(findings, Finding{
				Check:  "ports",
				Detail: fmt.Sprintf("portsAttributes entry for %d has no matching forwarded port", number),
			})
		}
	}

	return findings
}
