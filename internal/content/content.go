// Package content loads the portfolio text shown in each section.
package content

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed default.yaml
var defaultYAML []byte

// ErrNoProfile is returned when a content file has no profile name.
var ErrNoProfile = errors.New("content: profile name is required")

// Portfolio is everything the shell renders.
type Portfolio struct {
	Profile    Profile   `yaml:"profile"`
	Experience []Job     `yaml:"experience"`
	Education  []Degree  `yaml:"education"`
	Projects   []Project `yaml:"projects"`
	Contact    Contact   `yaml:"contact"`
}

// Profile backs the home and about sections. About is markdown.
type Profile struct {
	Name    string `yaml:"name"`
	Title   string `yaml:"title"`
	Tagline string `yaml:"tagline"`
	About   string `yaml:"about"`
	Links   []Link `yaml:"links"`
}

// Link is a labelled URL shown on the home section.
type Link struct {
	Label string `yaml:"label"`
	URL   string `yaml:"url"`
}

// Job is one experience entry.
type Job struct {
	Title     string   `yaml:"title"`
	Company   string   `yaml:"company"`
	StartDate string   `yaml:"start"`
	EndDate   string   `yaml:"end"`
	Bullets   []string `yaml:"bullets"`
}

// Degree is one education entry.
type Degree struct {
	Degree      string   `yaml:"degree"`
	Institution string   `yaml:"institution"`
	StartDate   string   `yaml:"start"`
	EndDate     string   `yaml:"end"`
	Bullets     []string `yaml:"bullets"`
}

// Project is one projects entry.
type Project struct {
	Name        string   `yaml:"name"`
	Description string   `yaml:"description"`
	Tech        []string `yaml:"tech"`
	URL         string   `yaml:"url"`
}

// Contact backs the contact section.
type Contact struct {
	Intro string `yaml:"intro"`
	Email string `yaml:"email"`
}

// Default returns the embedded portfolio.
func Default() Portfolio {
	p, err := Parse(defaultYAML)
	if err != nil {
		panic(fmt.Sprintf("content: embedded default is invalid: %v", err))
	}
	return p
}

// Load reads a portfolio from path. An empty path returns Default.
func Load(path string) (Portfolio, error) {
	if path == "" {
		return Default(), nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return Portfolio{}, fmt.Errorf("reading content %q: %w", path, err)
	}
	p, err := Parse(b)
	if err != nil {
		return Portfolio{}, fmt.Errorf("content %q: %w", path, err)
	}
	return p, nil
}

// Parse decodes portfolio YAML. Unknown keys are rejected.
func Parse(b []byte) (Portfolio, error) {
	var p Portfolio
	dec := yaml.NewDecoder(bytes.NewReader(b))
	dec.KnownFields(true)
	if err := dec.Decode(&p); err != nil {
		return Portfolio{}, fmt.Errorf("decoding yaml: %w", err)
	}
	if p.Profile.Name == "" {
		return Portfolio{}, ErrNoProfile
	}
	return p, nil
}
