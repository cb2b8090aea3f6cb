// Package profile loads the applicant's CV data served to the dashboard and
// used to sign generated letters.
package profile

import (
	_ "embed"
	"errors"
	"fmt"
	"log"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed profile.yml
var defaultYAML []byte

type Contact struct {
	Name     string            `yaml:"name" json:"name"`
	Headline string            `yaml:"headline" json:"headline"`
	Location string            `yaml:"location" json:"location"`
	Phone    string            `yaml:"phone" json:"phone"`
	Email    string            `yaml:"email" json:"email"`
	Websites map[string]string `yaml:"websites" json:"websites"`
}

type Skills struct {
	Top            []string `yaml:"top" json:"top"`
	Soft           []string `yaml:"soft" json:"soft"`
	Languages      []string `yaml:"languages" json:"languages"`
	Certifications []string `yaml:"certifications" json:"certifications"`
	Awards         string   `yaml:"awards" json:"awards"`
}

type Experience struct {
	Company     string `yaml:"company" json:"company"`
	Role        string `yaml:"role" json:"role"`
	Period      string `yaml:"period" json:"period"`
	Description string `yaml:"description" json:"description"`
}

type Education struct {
	School  string `yaml:"school" json:"school"`
	Program string `yaml:"program" json:"program"`
	Period  string `yaml:"period" json:"period"`
}

type Profile struct {
	Contact      Contact      `yaml:"contact" json:"contact"`
	Skills       Skills       `yaml:"skills" json:"skills"`
	Summary      string       `yaml:"summary" json:"summary"`
	Experience   []Experience `yaml:"experience" json:"experience"`
	Education    []Education  `yaml:"education" json:"education"`
	Publications []string     `yaml:"publications" json:"publications"`
}

// Default is the profile compiled into the binary.
func Default() (Profile, error) {
	return Parse(defaultYAML)
}

// Load reads a profile file; an empty path or missing file yields Default.
func Load(path string) (Profile, error) {
	if strings.TrimSpace(path) == "" {
		return Default()
	}
	b, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		log.Printf("[profile] %s not found, using built-in profile", path)
		return Default()
	}
	if err != nil {
		return Profile{}, fmt.Errorf("read profile: %w", err)
	}
	p, err := Parse(b)
	if err != nil {
		return Profile{}, fmt.Errorf("profile %s: %w", path, err)
	}
	return p, nil
}

func Parse(b []byte) (Profile, error) {
	var p Profile
	if err := yaml.Unmarshal(b, &p); err != nil {
		return Profile{}, err
	}
	p.Contact.Name = strings.TrimSpace(p.Contact.Name)
	return p, nil
}
