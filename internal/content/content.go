// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package content loads the prompt catalog bundled into the binary: the
// free prompts of every theme and the premium packs.
package content

import (
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"slices"
	"strings"

	"github.com/MKhiriev/go-gambit/models"
)

//go:embed data/themes/*.json data/premium/*.json
var bundled embed.FS

const (
	themesDir  = "data/themes"
	premiumDir = "data/premium"
)

var (
	ErrMissingTheme  = errors.New("theme has no prompt file")
	ErrInvalidPrompt = errors.New("invalid prompt")
)

type themeFile struct {
	Theme   models.ThemePack `json:"theme"`
	Prompts []models.Prompt  `json:"prompts"`
}

// Library is the immutable prompt catalog.
type Library struct {
	themes map[models.ThemePack][]models.Prompt
	packs  []models.Pack
}

// Load reads the bundled catalog.
func Load() (*Library, error) {
	return LoadFS(bundled)
}

// LoadFS reads a catalog laid out like the bundled one from fsys.
// Every built-in theme must be present; premium packs are sorted by ID.
func LoadFS(fsys fs.FS) (*Library, error) {
	lib := &Library{themes: make(map[models.ThemePack][]models.Prompt)}

	themeFiles, err := fs.Glob(fsys, path.Join(themesDir, "*.json"))
	if err != nil {
		return nil, fmt.Errorf("list themes: %w", err)
	}
	for _, name := range themeFiles {
		var tf themeFile
		if err = readJSON(fsys, name, &tf); err != nil {
			return nil, err
		}
		if !tf.Theme.Valid() {
			return nil, fmt.Errorf("%s: unknown theme %q", name, tf.Theme)
		}
		if err = validatePrompts(name, tf.Prompts); err != nil {
			return nil, err
		}
		lib.themes[tf.Theme] = tf.Prompts
	}
	for _, th := range models.Themes() {
		if _, ok := lib.themes[th]; !ok {
			return nil, fmt.Errorf("%w: %s", ErrMissingTheme, th)
		}
	}

	packFiles, err := fs.Glob(fsys, path.Join(premiumDir, "*.json"))
	if err != nil {
		return nil, fmt.Errorf("list premium packs: %w", err)
	}
	for _, name := range packFiles {
		var pack models.Pack
		if err = readJSON(fsys, name, &pack); err != nil {
			return nil, err
		}
		if pack.ID == "" {
			pack.ID = strings.TrimSuffix(path.Base(name), ".json")
		}
		if err = validatePrompts(name, pack.Prompts); err != nil {
			return nil, err
		}
		for i := range pack.Prompts {
			pack.Prompts[i].Premium = true
		}
		lib.packs = append(lib.packs, pack)
	}
	slices.SortFunc(lib.packs, func(a, b models.Pack) int { return strings.Compare(a.ID, b.ID) })

	return lib, nil
}

// Theme returns a copy of the free prompts of theme.
func (l *Library) Theme(theme models.ThemePack) []models.Prompt {
	return slices.Clone(l.themes[theme])
}

// PremiumPacks returns a copy of all premium packs.
func (l *Library) PremiumPacks() []models.Pack {
	out := make([]models.Pack, len(l.packs))
	for i, p := range l.packs {
		p.Prompts = slices.Clone(p.Prompts)
		out[i] = p
	}
	return out
}

func readJSON(fsys fs.FS, name string, v any) error {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return fmt.Errorf("read %s: %w", name, err)
	}
	if err = json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("decode %s: %w", name, err)
	}
	return nil
}

func validatePrompts(file string, prompts []models.Prompt) error {
	for i, p := range prompts {
		switch {
		case strings.TrimSpace(p.Text) == "":
			return fmt.Errorf("%w: %s[%d]: empty text", ErrInvalidPrompt, file, i)
		case p.Chaos < 1 || p.Chaos > 5:
			return fmt.Errorf("%w: %s[%d]: chaos %d out of range 1..5", ErrInvalidPrompt, file, i, p.Chaos)
		case p.Timer != nil && *p.Timer <= 0:
			return fmt.Errorf("%w: %s[%d]: timer must be positive", ErrInvalidPrompt, file, i)
		}
	}
	return nil
}
