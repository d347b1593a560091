package validator

import (
	"fmt"
	"strings"

	"github.com/arcanaland/pokecard/internal"
	"github.com/arcanaland/pokecard/internal/creature"
)

type ValidationResults struct {
	Errors   []string
	Warnings []string
}

type Validator struct {
	Record  *creature.Record
	Results ValidationResults
}

func NewValidator(rec *creature.Record) *Validator {
	return &Validator{
		Record:  rec,
		Results: ValidationResults{},
	}
}

func (v *Validator) Validate() ValidationResults {
	if v.Record == nil {
		v.Results.Errors = append(v.Results.Errors, "record is nil")
		return v.Results
	}

	v.validateIdentity()
	v.validateTypes()
	v.validateStats()
	v.validateReferences()

	return v.Results
}

// Check validates rec and returns a malformed record error listing every
// validation error. Warnings never fail the check.
func Check(rec *creature.Record) error {
	results := NewValidator(rec).Validate()
	if len(results.Errors) == 0 {
		return nil
	}
	return internal.NewMalformedRecordError(strings.Join(results.Errors, "; "))
}

func (v *Validator) validateIdentity() {
	if v.Record.ID <= 0 {
		v.Results.Errors = append(v.Results.Errors,
			fmt.Sprintf("id must be positive, got %d", v.Record.ID))
	}

	name := v.Record.Name
	if name == "" {
		v.Results.Errors = append(v.Results.Errors, "name is required")
	} else if name != strings.ToLower(strings.TrimSpace(name)) {
		v.Results.Errors = append(v.Results.Errors,
			fmt.Sprintf("name %q is not a canonical lowercase name", name))
	}

	if v.Record.Height < 0 || v.Record.Weight < 0 {
		v.Results.Errors = append(v.Results.Errors, "height and weight must not be negative")
	}
}

func (v *Validator) validateTypes() {
	if len(v.Record.Types) == 0 {
		v.Results.Warnings = append(v.Results.Warnings, "no types, the default color will be used")
		return
	}

	for i, t := range v.Record.Types {
		if strings.TrimSpace(t) == "" {
			v.Results.Errors = append(v.Results.Errors, fmt.Sprintf("types[%d] is empty", i))
		}
	}
}

// validateStats checks stat keys and values
func (v *Validator) validateStats() {
	seen := make(map[string]bool, len(v.Record.Stats))
	for i, s := range v.Record.Stats {
		if s.Key == "" {
			v.Results.Errors = append(v.Results.Errors, fmt.Sprintf("stats[%d] has no name", i))
			continue
		}
		if seen[s.Key] {
			v.Results.Errors = append(v.Results.Errors, fmt.Sprintf("duplicate stat: %s", s.Key))
		}
		seen[s.Key] = true

		if s.Value < 0 {
			v.Results.Errors = append(v.Results.Errors,
				fmt.Sprintf("stat %s has negative value %d", s.Key, s.Value))
		}
	}

	missing := []string{}
	for _, key := range creature.StatOrder {
		if !seen[key] {
			missing = append(missing, key)
		}
	}
	if len(missing) > 0 {
		v.Results.Warnings = append(v.Results.Warnings,
			fmt.Sprintf("missing stats: %s", strings.Join(missing, ", ")))
	}
}

func (v *Validator) validateReferences() {
	if v.Record.SpriteURL == "" {
		v.Results.Warnings = append(v.Results.Warnings, "no sprite, the card will show a placeholder")
	}
	if v.Record.SpeciesURL == "" {
		v.Results.Warnings = append(v.Results.Warnings, "no species reference")
	}
}
