package compare

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"unicode"
	"unicode/utf8"

	"template-verifier/core/config"
)

// Plan builds the ordered task list from configuration.
// An explicit task list wins; otherwise each tier yields a template task and an
// image stream task, in tier order.
func Plan(cfg config.CompareConfig) ([]Task, error) {
	if len(cfg.Tasks) > 0 {
		return planExplicit(cfg)
	}

	tiers := cleanList(cfg.Tiers)
	if len(tiers) == 0 {
		return nil, errors.New("no tiers configured")
	}

	tasks := make([]Task, 0, len(tiers)*len(Kinds))
	for _, tier := range tiers {
		for _, kind := range Kinds {
			sub := cfg.TemplatesDir
			if kind == KindImagestream {
				sub = cfg.ImagestreamsDir
			}
			tasks = append(tasks, Task{
				Tier:        tier,
				Label:       labelFor(tier),
				Kind:        kind,
				LibraryRoot: filepath.Join(cfg.Root, cfg.LibraryDir, tier, sub),
				OnlineRoot:  filepath.Join(cfg.Root, tier, sub),
			})
		}
	}
	return tasks, nil
}

func planExplicit(cfg config.CompareConfig) ([]Task, error) {
	tasks := make([]Task, 0, len(cfg.Tasks))
	for i, tc := range cfg.Tasks {
		kind, err := KindByName(tc.Kind)
		if err != nil {
			return nil, fmt.Errorf("task %d: %w", i, err)
		}
		if tc.Tier == "" || tc.LibraryRoot == "" || tc.OnlineRoot == "" {
			return nil, fmt.Errorf("task %d: tier, library_root and online_root are required", i)
		}
		label := tc.Label
		if label == "" {
			label = labelFor(tc.Tier)
		}
		tasks = append(tasks, Task{
			Tier:        tc.Tier,
			Label:       label,
			Kind:        kind,
			LibraryRoot: resolve(cfg.Root, tc.LibraryRoot),
			OnlineRoot:  resolve(cfg.Root, tc.OnlineRoot),
		})
	}
	return tasks, nil
}

func resolve(root, p string) string {
	if filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(root, p)
}

// labelFor turns a tier directory name into its display label ("free" -> "Free").
func labelFor(tier string) string {
	r, size := utf8.DecodeRuneInString(tier)
	if r == utf8.RuneError {
		return tier
	}
	return string(unicode.ToUpper(r)) + tier[size:]
}

// cleanList trims entries and drops empty ones. Environment overrides arrive as
// a single comma separated element.
func cleanList(values []string) []string {
	var out []string
	for _, v := range values {
		for _, part := range strings.Split(v, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}
