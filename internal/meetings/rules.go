package meetings

import (
	"fmt"
	"log"
	"os"
	"sort"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	yamlv3 "gopkg.in/yaml.v3"
)

// RuleName identifies the exclusion rule that rejected an event.
type RuleName string

const (
	RuleAllDay    RuleName = "all_day"
	RuleLongEvent RuleName = "long_event"
	RuleOffHours  RuleName = "off_hours"
	RuleMealtime  RuleName = "mealtime"
	RuleBlocked   RuleName = "blocked"
	RuleSocial    RuleName = "social"
	RuleDeclined  RuleName = "declined"
	RuleSolo      RuleName = "solo"
	RuleInterview RuleName = "interview"
)

// textRules are the rules driven by a summary pattern.
var textRules = []RuleName{RuleMealtime, RuleBlocked, RuleSocial, RuleInterview}

// Rules is the tunable part of the classifier. Patterns are matched
// case-insensitively against the event summary.
type Rules struct {
	MaxHours     float64           `yaml:"max_hours" koanf:"max_hours"`
	DayStartHour int               `yaml:"day_start_hour" koanf:"day_start_hour"`
	DayEndHour   int               `yaml:"day_end_hour" koanf:"day_end_hour"`
	MealHour     int               `yaml:"meal_hour" koanf:"meal_hour"`
	Patterns     map[string]string `yaml:"patterns" koanf:"-"`
}

// DefaultRules returns the stock rule table.
func DefaultRules() Rules {
	return Rules{
		MaxHours:     3,
		DayStartHour: 8,
		DayEndHour:   20,
		MealHour:     12,
		Patterns: map[string]string{
			string(RuleMealtime):  `lunch|dinner`,
			string(RuleBlocked):   `DNB|OOO|Unavailable|personal|DNS`,
			string(RuleSocial):    `Barry's|@ HQ|drinks|meet up`,
			string(RuleInterview): `interview|phone screen|tech screen|pairing|pair programming`,
		},
	}
}

// LoadRules reads a YAML rule file on top of the defaults. Patterns missing
// from the file keep their default; unknown pattern names are ignored.
func LoadRules(path string) (Rules, error) {
	rules := DefaultRules()
	if path == "" {
		return rules, nil
	}

	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return rules, nil
		}
		return rules, fmt.Errorf("accessing rules %s: %w", path, err)
	}

	k := koanf.New(".")
	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		return rules, fmt.Errorf("reading rules %s: %w", path, err)
	}

	if err := k.Unmarshal("", &rules); err != nil {
		return rules, fmt.Errorf("unmarshalling rules: %w", err)
	}

	for name, pattern := range k.StringMap("patterns") {
		if !isTextRule(RuleName(name)) {
			log.Printf("rules: ignoring unknown pattern %q in %s", name, path)
			continue
		}
		rules.Patterns[name] = pattern
	}

	return rules, rules.Validate()
}

// Save writes the rule table to path as YAML.
func (r Rules) Save(path string) error {
	data, err := yamlv3.Marshal(r)
	if err != nil {
		return fmt.Errorf("marshalling rules: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing rules to %s: %w", path, err)
	}
	return nil
}

// Validate checks the numeric limits.
func (r Rules) Validate() error {
	if r.MaxHours <= 0 {
		return fmt.Errorf("%w: max_hours must be positive", ErrInvalidRules)
	}
	if r.DayStartHour < 0 || r.DayEndHour > 24 || r.DayStartHour >= r.DayEndHour {
		return fmt.Errorf("%w: working hours %d-%d", ErrInvalidRules, r.DayStartHour, r.DayEndHour)
	}
	if r.MealHour < 0 || r.MealHour > 23 {
		return fmt.Errorf("%w: meal_hour %d", ErrInvalidRules, r.MealHour)
	}
	return nil
}

// PatternNames returns the configured pattern names in sorted order.
func (r Rules) PatternNames() []string {
	names := make([]string, 0, len(r.Patterns))
	for name := range r.Patterns {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func isTextRule(name RuleName) bool {
	for _, r := range textRules {
		if r == name {
			return true
		}
	}
	return false
}
