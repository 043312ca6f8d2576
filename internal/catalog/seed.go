package catalog

import (
	"fmt"
	"io"

	"go.uber.org/multierr"
	"gopkg.in/yaml.v3"
)

// Seed is the YAML catalog file consumed by legdayctl seed.
type Seed struct {
	Programs  []Program  `yaml:"programs"`
	Splits    []Split    `yaml:"splits"`
	Bodies    []Body     `yaml:"bodies"`
	Exercises []Exercise `yaml:"exercises"`
	Trains    []Train    `yaml:"trains"`
}

func LoadSeed(r io.Reader) (*Seed, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var seed Seed
	if err := dec.Decode(&seed); err != nil {
		return nil, fmt.Errorf("decode seed: %w", err)
	}
	if err := seed.Validate(); err != nil {
		return nil, fmt.Errorf("invalid seed: %w", err)
	}
	return &seed, nil
}

func (s *Seed) Catalog() Catalog {
	return Catalog{
		Bodies:    s.Bodies,
		Exercises: s.Exercises,
		Trains:    s.Trains,
	}
}

// Validate checks ids and every reference in the seed before anything is
// written.
func (s *Seed) Validate() error {
	var err error

	programs := make(map[int]struct{}, len(s.Programs))
	for _, p := range s.Programs {
		if p.ID <= 0 {
			err = multierr.Append(err, fmt.Errorf("program [%s]: id must be positive", p.Name))
		}
		programs[p.ID] = struct{}{}
	}

	splits := make(map[int]struct{}, len(s.Splits))
	for _, sp := range s.Splits {
		if sp.ID <= 0 {
			err = multierr.Append(err, fmt.Errorf("split [%s]: id must be positive", sp.Name))
		}
		if sp.ProgramID != nil {
			if _, ok := programs[*sp.ProgramID]; !ok {
				err = multierr.Append(err, fmt.Errorf("split %d [%s] references unknown program %d", sp.ID, sp.Name, *sp.ProgramID))
			}
		}
		splits[sp.ID] = struct{}{}
	}

	for _, b := range s.Bodies {
		if b.ID <= 0 {
			err = multierr.Append(err, fmt.Errorf("body [%s]: id must be positive", b.Name))
		}
	}
	for _, e := range s.Exercises {
		if e.ID <= 0 {
			err = multierr.Append(err, fmt.Errorf("exercise [%s]: id must be positive", e.Name))
		}
		if e.SplitID != nil {
			if _, ok := splits[*e.SplitID]; !ok {
				err = multierr.Append(err, fmt.Errorf("exercise %d [%s] references unknown split %d", e.ID, e.Name, *e.SplitID))
			}
		}
	}
	for _, t := range s.Trains {
		if _, ok := splits[t.SplitID]; !ok {
			err = multierr.Append(err, fmt.Errorf("train %d references unknown split %d", t.ID, t.SplitID))
		}
	}

	return multierr.Append(err, s.Catalog().Validate())
}
