// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package profile

import (
	"encoding/asn1"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/xeipuuv/gojsonschema"
	"gopkg.in/yaml.v3"

	"github.com/H0llyW00dzZ/x509-verify-params/src/internal/helper/gc"
	x509params "github.com/H0llyW00dzZ/x509-verify-params/src/internal/x509/params"
	x509purpose "github.com/H0llyW00dzZ/x509-verify-params/src/internal/x509/purpose"
	x509trust "github.com/H0llyW00dzZ/x509-verify-params/src/internal/x509/trust"
)

var (
	// ErrUnknownProfile is returned when neither the configuration file nor
	// the built-in presets know the requested profile name.
	ErrUnknownProfile = errors.New("profile: unknown profile")
	// ErrSchema is returned when a configuration document fails schema
	// validation.
	ErrSchema = errors.New("profile: configuration does not match schema")
)

// configFormat represents supported configuration file formats.
type configFormat int

const (
	// configFormatJSON represents JSON configuration format (.json)
	configFormatJSON configFormat = iota
	// configFormatYAML represents YAML configuration format (.yaml, .yml)
	configFormatYAML
)

// schema is the JSON schema every configuration document must satisfy.
// YAML documents are normalized to JSON before validation so both
// formats are held to the same shape.
const schema = `{
  "type": "object",
  "required": ["profiles"],
  "additionalProperties": false,
  "properties": {
    "profiles": {
      "type": "object",
      "additionalProperties": {
        "type": "object",
        "additionalProperties": false,
        "properties": {
          "inherit":   {"type": "string"},
          "purpose":   {"type": "string"},
          "trust":     {"type": "string"},
          "depth":     {"type": "integer"},
          "flags":     {"type": "array", "items": {"type": "string"}},
          "hostFlags": {"type": "array", "items": {"type": "string"}},
          "hosts":     {"type": "array", "items": {"type": "string"}},
          "email":     {"type": "string"},
          "ip":        {"type": "string"},
          "policies":  {"type": "array", "items": {"type": "string"}},
          "checkTime": {"type": "string", "format": "date-time"}
        }
      }
    }
  }
}`

// Spec describes one named profile in a configuration file. All fields
// are optional; absent fields leave the inherited base untouched.
type Spec struct {
	// Inherit names the built-in preset used as the base, "default" when empty.
	Inherit string `json:"inherit,omitempty" yaml:"inherit,omitempty"`
	// Purpose is a purpose short name such as "sslserver".
	Purpose string `json:"purpose,omitempty" yaml:"purpose,omitempty"`
	// Trust is a trust short name such as "ssl_server".
	Trust string `json:"trust,omitempty" yaml:"trust,omitempty"`
	// Depth is the maximum chain depth.
	Depth *int `json:"depth,omitempty" yaml:"depth,omitempty"`
	// Flags lists verify-flag names to turn on.
	Flags []string `json:"flags,omitempty" yaml:"flags,omitempty"`
	// HostFlags lists host-matching flag names.
	HostFlags []string `json:"hostFlags,omitempty" yaml:"hostFlags,omitempty"`
	// Hosts lists acceptable DNS names for the peer.
	Hosts []string `json:"hosts,omitempty" yaml:"hosts,omitempty"`
	// Email is the expected RFC 822 email identity.
	Email string `json:"email,omitempty" yaml:"email,omitempty"`
	// IP is the expected peer address in textual form.
	IP string `json:"ip,omitempty" yaml:"ip,omitempty"`
	// Policies lists required certificate policies as dotted OIDs.
	Policies []string `json:"policies,omitempty" yaml:"policies,omitempty"`
	// CheckTime pins the verification time, RFC 3339.
	CheckTime string `json:"checkTime,omitempty" yaml:"checkTime,omitempty"`
}

// Config is a parsed profile configuration file.
type Config struct {
	// Profiles maps profile names to their definitions.
	Profiles map[string]Spec `json:"profiles" yaml:"profiles"`
}

// detectConfigFormat determines the configuration file format based on
// file extension. It supports .json, .yaml, and .yml extensions and
// uses case-insensitive matching for cross-platform compatibility.
func detectConfigFormat(configPath string) configFormat {
	ext := strings.ToLower(filepath.Ext(configPath))
	switch ext {
	case ".yaml", ".yml":
		return configFormatYAML
	default:
		return configFormatJSON
	}
}

// Load reads, validates, and parses a profile configuration file.
// The format is detected from the file extension (.json, .yaml, .yml)
// and the document is checked against the package schema before any
// field is interpreted.
func Load(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("profile: failed to open config file: %w", err)
	}
	defer f.Close()

	data, err := gc.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("profile: failed to read config file: %w", err)
	}

	return parse(data, detectConfigFormat(path))
}

// parse validates and parses raw configuration bytes in the given
// format.
func parse(data []byte, format configFormat) (*Config, error) {
	jsonDoc := data
	if format == configFormatYAML {
		var doc any
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("profile: failed to parse YAML config file: %w", err)
		}
		var err error
		if jsonDoc, err = json.Marshal(doc); err != nil {
			return nil, fmt.Errorf("profile: failed to normalize YAML config file: %w", err)
		}
	}

	result, err := gojsonschema.Validate(
		gojsonschema.NewStringLoader(schema),
		gojsonschema.NewBytesLoader(jsonDoc),
	)
	if err != nil {
		return nil, fmt.Errorf("profile: failed to validate config file: %w", err)
	}
	if !result.Valid() {
		var details strings.Builder
		for _, desc := range result.Errors() {
			fmt.Fprintf(&details, "\n  - %s", desc)
		}
		return nil, fmt.Errorf("%w:%s", ErrSchema, details.String())
	}

	config := &Config{}
	if err := json.Unmarshal(jsonDoc, config); err != nil {
		return nil, fmt.Errorf("profile: failed to parse JSON config file: %w", err)
	}
	return config, nil
}

// Build constructs the parameter set for the named profile.
//
// Names defined in the configuration file take priority; a name the
// file does not define falls back to the built-in presets. A file
// profile starts from its inherited preset ("default" unless stated
// otherwise) and then applies its own fields on top.
func (c *Config) Build(name string) (*x509params.VerifyParam, error) {
	var spec Spec
	if c != nil {
		s, ok := c.Profiles[name]
		if !ok {
			return builtin(name)
		}
		spec = s
	} else {
		return builtin(name)
	}

	base := spec.Inherit
	if base == "" {
		base = "default"
	}
	p, err := builtin(base)
	if err != nil {
		return nil, err
	}

	if spec.Purpose != "" {
		pu := x509purpose.GetByShortName(spec.Purpose)
		if pu == nil {
			return nil, fmt.Errorf("profile: %w: %q", x509purpose.ErrUnknownPurpose, spec.Purpose)
		}
		if err := p.SetPurpose(pu.ID); err != nil {
			return nil, err
		}
	}
	if spec.Trust != "" {
		tr := x509trust.GetByShortName(spec.Trust)
		if tr == nil {
			return nil, fmt.Errorf("profile: %w: %q", x509trust.ErrUnknownTrust, spec.Trust)
		}
		if err := p.SetTrust(tr.ID); err != nil {
			return nil, err
		}
	}
	if spec.Depth != nil {
		p.SetDepth(*spec.Depth)
	}
	for _, name := range spec.Flags {
		f, err := ParseFlag(name)
		if err != nil {
			return nil, err
		}
		p.SetFlags(f)
	}
	var hostFlags x509params.HostFlag
	for _, name := range spec.HostFlags {
		f, err := ParseHostFlag(name)
		if err != nil {
			return nil, err
		}
		hostFlags |= f
	}
	if hostFlags != 0 {
		p.SetHostFlags(hostFlags)
	}
	for i, host := range spec.Hosts {
		if i == 0 {
			err = p.SetHost([]byte(host), 0)
		} else {
			err = p.AddHost([]byte(host), 0)
		}
		if err != nil {
			return nil, fmt.Errorf("profile: host %q: %w", host, err)
		}
	}
	if spec.Email != "" {
		if err := p.SetEmail([]byte(spec.Email), 0); err != nil {
			return nil, fmt.Errorf("profile: email %q: %w", spec.Email, err)
		}
	}
	if spec.IP != "" {
		if err := p.SetIPFromText(spec.IP); err != nil {
			return nil, fmt.Errorf("profile: ip %q: %w", spec.IP, err)
		}
	}
	if len(spec.Policies) > 0 {
		oids := make([]asn1.ObjectIdentifier, 0, len(spec.Policies))
		for _, s := range spec.Policies {
			oid, err := ParseOID(s)
			if err != nil {
				return nil, err
			}
			oids = append(oids, oid)
		}
		p.SetPolicies(oids)
	}
	if spec.CheckTime != "" {
		t, err := time.Parse(time.RFC3339, spec.CheckTime)
		if err != nil {
			return nil, fmt.Errorf("profile: invalid checkTime: %w", err)
		}
		p.SetTime(t)
	}

	return p, nil
}

// builtin returns an owned copy of a built-in preset.
func builtin(name string) (*x509params.VerifyParam, error) {
	preset := x509params.Lookup(name)
	if preset == nil {
		return nil, fmt.Errorf("%w: %q", ErrUnknownProfile, name)
	}
	p := x509params.New()
	if err := p.Assign(preset); err != nil {
		return nil, err
	}
	return p, nil
}
