package catalog

import (
	_ "embed"
	"fmt"
	"os"
	"time"

	"alcyxob/workout-tracker/internal/domain"

	"github.com/BurntSushi/toml"
	"go.uber.org/multierr"
)

//go:embed default_templates.toml
var defaultTemplates []byte

//
// For TOML parsing only
//

type catalogTOML struct {
	Templates []templateTOML `toml:"template"`
}

type templateTOML struct {
	Name        string                 `toml:"name"`
	Description string                 `toml:"description"`
	Type        string                 `toml:"type"`
	Difficulty  string                 `toml:"difficulty"`
	Tags        []string               `toml:"tags"`
	Periodicity domain.PeriodicitySpec `toml:"periodicity"`
	Days        []dayTOML              `toml:"day"`
}

type dayTOML struct {
	Name      string   `toml:"name"`
	Exercises []string `toml:"exercises"`
}

// Default returns the built-in templates.
func Default(now time.Time) ([]domain.Program, error) {
	return Parse(defaultTemplates, now)
}

// Load reads templates from path, or the built-in set when path is empty.
func Load(path string, now time.Time) ([]domain.Program, error) {
	if path == "" {
		return Default(now)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog %s: %w", path, err)
	}
	return Parse(data, now)
}

// Parse decodes a TOML catalog into default program templates. Every invalid
// template is reported; nothing is returned unless all of them are valid.
func Parse(data []byte, now time.Time) ([]domain.Program, error) {
	var file catalogTOML
	if _, err := toml.Decode(string(data), &file); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}

	var (
		programs []domain.Program
		errs     error
		seen     = make(map[string]bool, len(file.Templates))
	)
	for i, t := range file.Templates {
		p, err := t.toProgram(now)
		if err != nil {
			errs = multierr.Append(errs, fmt.Errorf("template %d (%q): %w", i, t.Name, err))
			continue
		}
		if seen[p.Name] {
			errs = multierr.Append(errs, fmt.Errorf("template %d: duplicate name %q", i, p.Name))
			continue
		}
		seen[p.Name] = true
		programs = append(programs, p)
	}
	if errs != nil {
		return nil, errs
	}
	return programs, nil
}

func (t templateTOML) toProgram(now time.Time) (domain.Program, error) {
	rule, err := t.Periodicity.Build()
	if err != nil {
		return domain.Program{}, err
	}
	days := make([]domain.DayTemplate, len(t.Days))
	for i, d := range t.Days {
		days[i] = domain.DayTemplate{Name: d.Name, ExerciseIDs: d.Exercises}
	}
	return domain.NewProgram(domain.ProgramParams{
		Name:               t.Name,
		Description:        t.Description,
		Type:               domain.ProgramType(t.Type),
		Difficulty:         domain.Difficulty(t.Difficulty),
		DefaultPeriodicity: rule,
		Tags:               t.Tags,
		DayTemplates:       days,
		IsDefault:          true,
		CreatedAt:          now,
	})
}
