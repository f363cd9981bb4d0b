// Package site holds the portfolio content model: profile, links, resume,
// and the form-relay endpoint. Content is embedded at build time and parsed
// from YAML, so the binary is self-contained.
package site

import (
	"embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed content/content.yaml content/resume.md
var contentFS embed.FS

// EnvRelayURL overrides the form-relay endpoint from the environment.
const EnvRelayURL = "FOLIO_RELAY_URL"

// Profile describes the site owner.
type Profile struct {
	Name     string `yaml:"name"`
	Role     string `yaml:"role"`
	Location string `yaml:"location"`
	Email    string `yaml:"email"`
	Bio      string `yaml:"bio"`
}

// Link is an external profile link (GitHub, LinkedIn, etc).
type Link struct {
	Label string `yaml:"label"`
	URL   string `yaml:"url"`
}

// Assets names the fixed-path downloadable assets the site references.
type Assets struct {
	ResumePDF string `yaml:"resume_pdf"`
	Avatar    string `yaml:"avatar"`
}

// Site is the full content model for both the TUI and serve mode.
type Site struct {
	Title    string  `yaml:"title"`
	Tagline  string  `yaml:"tagline"`
	Profile  Profile `yaml:"profile"`
	Links    []Link  `yaml:"links"`
	Assets   Assets  `yaml:"assets"`
	RelayURL string  `yaml:"relay_url"`

	// ResumeMarkdown is loaded from the embedded resume file, not YAML.
	ResumeMarkdown string `yaml:"-"`
}

// Load parses the embedded content. The relay endpoint can be overridden
// with FOLIO_RELAY_URL.
func Load() (*Site, error) {
	raw, err := contentFS.ReadFile("content/content.yaml")
	if err != nil {
		return nil, fmt.Errorf("read site content: %w", err)
	}
	var s Site
	if err := yaml.Unmarshal(raw, &s); err != nil {
		return nil, fmt.Errorf("parse site content: %w", err)
	}
	md, err := contentFS.ReadFile("content/resume.md")
	if err != nil {
		return nil, fmt.Errorf("read resume: %w", err)
	}
	s.ResumeMarkdown = string(md)

	if url := os.Getenv(EnvRelayURL); url != "" {
		s.RelayURL = url
	}
	if err := s.validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

func (s *Site) validate() error {
	if s.Title == "" {
		return fmt.Errorf("site content: title is required")
	}
	if s.Profile.Name == "" {
		return fmt.Errorf("site content: profile.name is required")
	}
	if s.RelayURL == "" {
		return fmt.Errorf("site content: relay_url is required")
	}
	return nil
}
