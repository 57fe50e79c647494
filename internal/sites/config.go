package sites

import (
	"fmt"
	"os"

	yaml "gopkg.in/yaml.v3"

	"github.com/haniljang/newsbrief/internal/selector"
)

// fileConfig is the YAML schema for overriding the built-in publisher tables.
// Exactly one of id/class/tag must be set per selector entry.
type fileConfig struct {
	Sites []struct {
		Domain  string         `yaml:"domain"`
		Name    string         `yaml:"name"`
		Key     string         `yaml:"key"`
		Title   []selectorSpec `yaml:"title"`
		Content []selectorSpec `yaml:"content"`
	} `yaml:"sites"`
}

type selectorSpec struct {
	ID    string `yaml:"id"`
	Class string `yaml:"class"`
	Tag   string `yaml:"tag"`
}

func (s selectorSpec) toSpec() (selector.Spec, error) {
	switch {
	case s.ID != "" && s.Class == "" && s.Tag == "":
		return selector.ByID(s.ID), nil
	case s.Class != "" && s.ID == "" && s.Tag == "":
		return selector.ByClass(s.Class), nil
	case s.Tag != "" && s.ID == "" && s.Class == "":
		return selector.ByTag(s.Tag), nil
	}
	return selector.Spec{}, fmt.Errorf("selector needs exactly one of id, class, tag: %+v", s)
}

// FromFile builds a resolver from a YAML site table, replacing the built-in
// defaults entirely. Table order in the file is lookup priority.
func FromFile(path string) (*Resolver, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read sites file: %w", err)
	}
	var fc fileConfig
	if err := yaml.Unmarshal(raw, &fc); err != nil {
		return nil, fmt.Errorf("parse sites file: %w", err)
	}
	if len(fc.Sites) == 0 {
		return nil, fmt.Errorf("sites file %s defines no sites", path)
	}
	r := &Resolver{profiles: make(map[string]*Profile)}
	for _, s := range fc.Sites {
		if s.Domain == "" {
			return nil, fmt.Errorf("sites file %s: entry without domain", path)
		}
		r.entries = append(r.entries, Entry{Domain: s.Domain, Name: s.Name})
		if s.Key == "" {
			continue
		}
		r.tokens = append(r.tokens, s.Key)
		p := &Profile{Key: s.Key}
		for _, t := range s.Title {
			sp, err := t.toSpec()
			if err != nil {
				return nil, fmt.Errorf("site %s: %w", s.Domain, err)
			}
			p.TitleSelectors = append(p.TitleSelectors, sp)
		}
		for _, c := range s.Content {
			sp, err := c.toSpec()
			if err != nil {
				return nil, fmt.Errorf("site %s: %w", s.Domain, err)
			}
			p.ContentSelectors = append(p.ContentSelectors, sp)
		}
		r.profiles[s.Key] = p
	}
	return r, nil
}
