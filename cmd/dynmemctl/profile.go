package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"
	"gopkg.in/yaml.v3"
)

// Profile is a saved argument list for the pack command.
//
//	encoding: windows-1252
//	args:
//	  - -Xmx512m
//	  - -jar
//	  - app.jar
type Profile struct {
	Args     []string `yaml:"args"`
	Encoding string   `yaml:"encoding"`
}

// loadProfile reads a Profile from a YAML file. Unknown keys are an error; an
// empty file is an empty profile.
func loadProfile(path string) (*Profile, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open profile: %w", err)
	}
	defer f.Close()

	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)

	var p Profile
	if err := dec.Decode(&p); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to parse profile %s: %w", path, err)
	}
	return &p, nil
}

// lookupEncoding resolves a WHATWG encoding label such as "windows-1252" or
// "latin1". An empty name means no transcoding.
func lookupEncoding(name string) (encoding.Encoding, error) {
	if name == "" {
		return nil, nil
	}
	enc, err := htmlindex.Get(name)
	if err != nil {
		return nil, fmt.Errorf("unknown encoding %q: %w", name, err)
	}
	return enc, nil
}
