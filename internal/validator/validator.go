package validator

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/samber/lo"

	"github.com/arcanaland/idioms/internal/deck"
)

// SupportedSchemaVersion is the only deck.toml schema this validator accepts
const SupportedSchemaVersion = "1.0"

type ValidationResults struct {
	Errors   []string
	Warnings []string
}

type Validator struct {
	DeckPath string
	Results  ValidationResults

	config deck.DeckConfig
}

func NewValidator(deckPath string) *Validator {
	return &Validator{
		DeckPath: deckPath,
		Results:  ValidationResults{},
	}
}

// Validate checks the deck definition. A missing or unparsable deck.toml is
// returned as an error; everything else is collected into the results.
func (v *Validator) Validate() (ValidationResults, error) {
	if err := v.validateDeckToml(); err != nil {
		return v.Results, err
	}

	v.validateRanks()
	v.validateSuits()
	v.validateSuitValues()

	return v.Results, nil
}

func (v *Validator) errorf(format string, args ...any) {
	v.Results.Errors = append(v.Results.Errors, fmt.Sprintf(format, args...))
}

func (v *Validator) warnf(format string, args ...any) {
	v.Results.Warnings = append(v.Results.Warnings, fmt.Sprintf(format, args...))
}

func (v *Validator) validateDeckToml() error {
	deckTomlPath := filepath.Join(v.DeckPath, deck.FileName)
	if _, err := os.Stat(deckTomlPath); os.IsNotExist(err) {
		return fmt.Errorf("%s not found in %s", deck.FileName, v.DeckPath)
	}

	if _, err := toml.DecodeFile(deckTomlPath, &v.config); err != nil {
		return fmt.Errorf("error parsing %s: %w", deck.FileName, err)
	}

	meta := v.config.Deck
	if meta.ID == "" {
		v.errorf("deck.id is required in deck.toml")
	}
	if meta.Name == "" {
		v.errorf("deck.name is required in deck.toml")
	}
	if meta.Version == "" {
		v.errorf("deck.version is required in deck.toml")
	}

	if meta.SchemaVersion == "" {
		v.errorf("deck.schema_version is required in deck.toml")
	} else if meta.SchemaVersion != SupportedSchemaVersion {
		v.errorf("unsupported schema_version: %s (supported: %s)", meta.SchemaVersion, SupportedSchemaVersion)
	}

	if meta.Description == "" {
		v.warnf("deck.description is empty")
	}

	return nil
}

// validateRanks checks that ranks exist, are non-blank and unique
func (v *Validator) validateRanks() {
	v.validateNames("ranks", v.config.Ranks)
}

// validateSuits checks that suits exist, are non-blank and unique
func (v *Validator) validateSuits() {
	v.validateNames("suits", v.config.Suits)
}

func (v *Validator) validateNames(key string, names []string) {
	if len(names) == 0 {
		v.errorf("%s must list at least one entry", key)
		return
	}

	for i, name := range names {
		if strings.TrimSpace(name) == "" {
			v.errorf("%s[%d] is blank", key, i)
		}
	}

	if dups := lo.FindDuplicates(names); len(dups) > 0 {
		v.errorf("duplicate %s: %s", key, strings.Join(dups, ", "))
	}
}

// validateSuitValues checks the suit ordering used for sorting
func (v *Validator) validateSuitValues() {
	for _, suit := range v.config.Suits {
		if _, ok := v.config.SuitValues[suit]; !ok {
			v.errorf("suit_values.%s is required", suit)
		}
	}

	unknown := lo.Without(lo.Keys(v.config.SuitValues), v.config.Suits...)
	slices.Sort(unknown)
	for _, suit := range unknown {
		v.warnf("suit_values.%s does not match any suit", suit)
	}

	byValue := lo.GroupBy(lo.Keys(v.config.SuitValues), func(suit string) int {
		return v.config.SuitValues[suit]
	})
	values := lo.Keys(byValue)
	slices.Sort(values)
	for _, value := range values {
		if suits := byValue[value]; len(suits) > 1 {
			slices.Sort(suits)
			v.warnf("suits %s share value %d and will sort unpredictably", strings.Join(suits, ", "), value)
		}
	}
}
