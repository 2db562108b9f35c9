// Package policy loads the per-repository formatting policy declared in the
// comment header of a repository's .clang-format file.
package policy

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"
)

// FileName is the policy file looked up at the repository root.
const FileName = ".clang-format"

// ToolPrefix is prepended to the declared version to name the formatter binary.
const ToolPrefix = "clang-format-"

const (
	versionDirective = "# version: "
	includeDirective = "# include: "
	excludeDirective = "# exclude: "
)

// SupportedVersions lists the formatter versions a policy may pin.
var SupportedVersions = []string{"3.3", "3.4", "3.5", "3.6", "3.7", "3.8", "3.9"}

var (
	// ErrNotConfigured is returned when a repository has no usable policy.
	// The pipeline treats it as a silent no-op.
	ErrNotConfigured = errors.New("formatting policy not configured")
	// ErrMalformed marks a policy file whose YAML body does not decode.
	ErrMalformed = errors.New("malformed policy file")
)

// Policy is the parsed formatting policy of a repository.
type Policy struct {
	Version      string   `yaml:"version"`
	Include      []string `yaml:"include"`
	Exclude      []string `yaml:"exclude"`
	BasedOnStyle string   `yaml:"based_on_style,omitempty"`

	include []*regexp.Regexp
	exclude []*regexp.Regexp
}

// Load reads the policy file from the root of dir.
func Load(dir string) (*Policy, error) {
	data, err := os.ReadFile(filepath.Join(dir, FileName))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: no %s file", ErrNotConfigured, FileName)
		}
		return nil, fmt.Errorf("failed to read %s: %w", FileName, err)
	}
	return Parse(data)
}

// Parse scans the directive lines of a policy file and validates its YAML body.
func Parse(data []byte) (*Policy, error) {
	p := &Policy{}

	scanner := bufio.NewScanner(bytes.NewReader(data))
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		switch {
		case strings.HasPrefix(line, versionDirective):
			p.Version = strings.TrimPrefix(line, versionDirective)
		case strings.HasPrefix(line, includeDirective):
			p.Include = append(p.Include, strings.TrimPrefix(line, includeDirective))
		case strings.HasPrefix(line, excludeDirective):
			p.Exclude = append(p.Exclude, strings.TrimPrefix(line, excludeDirective))
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to scan %s: %w", FileName, err)
	}

	if !slices.Contains(SupportedVersions, p.Version) {
		if p.Version == "" {
			return nil, fmt.Errorf("%w: no version directive", ErrNotConfigured)
		}
		return nil, fmt.Errorf("%w: unsupported version %q", ErrNotConfigured, p.Version)
	}

	style, err := basedOnStyle(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %w: %w", ErrNotConfigured, ErrMalformed, err)
	}
	p.BasedOnStyle = style

	if err := p.compile(); err != nil {
		return nil, fmt.Errorf("%w: %w: %w", ErrNotConfigured, ErrMalformed, err)
	}
	return p, nil
}

// basedOnStyle decodes every YAML document of the file and returns the first
// BasedOnStyle it finds. A file may hold several per-language documents.
func basedOnStyle(data []byte) (string, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	style := ""
	for {
		var doc map[string]any
		if err := dec.Decode(&doc); err != nil {
			if errors.Is(err, io.EOF) {
				return style, nil
			}
			return "", err
		}
		if s, ok := doc["BasedOnStyle"].(string); ok && style == "" {
			style = s
		}
	}
}

func (p *Policy) compile() error {
	p.include = make([]*regexp.Regexp, 0, len(p.Include))
	for _, pattern := range p.Include {
		re, err := compileGlob(pattern)
		if err != nil {
			return err
		}
		p.include = append(p.include, re)
	}
	p.exclude = make([]*regexp.Regexp, 0, len(p.Exclude))
	for _, pattern := range p.Exclude {
		re, err := compileGlob(pattern)
		if err != nil {
			return err
		}
		p.exclude = append(p.exclude, re)
	}
	return nil
}

// Tool returns the versioned formatter binary name, e.g. "clang-format-3.8".
func (p *Policy) Tool() string {
	return ToolPrefix + p.Version
}

// Matches reports whether a forward-slash relative path is in scope: it must
// match at least one include pattern and no exclude pattern.
func (p *Policy) Matches(path string) bool {
	if p.include == nil && p.exclude == nil {
		if err := p.compile(); err != nil {
			return false
		}
	}
	for _, re := range p.exclude {
		if re.MatchString(path) {
			return false
		}
	}
	for _, re := range p.include {
		if re.MatchString(path) {
			return true
		}
	}
	return false
}

// Select filters files down to the in-scope ones, preserving their order.
func (p *Policy) Select(files []string) []string {
	var selected []string
	for _, f := range files {
		if p.Matches(f) {
			selected = append(selected, f)
		}
	}
	return selected
}
