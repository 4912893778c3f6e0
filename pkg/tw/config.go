package tw

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/BurntSushi/toml"
	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Config is the family table a Resolver is built from.
type Config struct {
	Rules     []Rule
	Conflicts map[FamilyID][]FamilyID
}

// DefaultConfig returns a fresh copy of the built-in family table.
func DefaultConfig() Config {
	return Config{Rules: defaultRules(), Conflicts: defaultConflicts()}
}

// Extend returns a config whose rules are extra's followed by c's, so extra
// wins when both match a token. Conflict lists are concatenated.
func (c Config) Extend(extra Config) Config {
	out := Config{
		Rules:     make([]Rule, 0, len(extra.Rules)+len(c.Rules)),
		Conflicts: make(map[FamilyID][]FamilyID, len(c.Conflicts)+len(extra.Conflicts)),
	}
	out.Rules = append(out.Rules, extra.Rules...)
	out.Rules = append(out.Rules, c.Rules...)
	for f, others := range c.Conflicts {
		out.Conflicts[f] = append(out.Conflicts[f], others...)
	}
	for f, others := range extra.Conflicts {
		out.Conflicts[f] = append(out.Conflicts[f], others...)
	}
	return out
}

type configFile struct {
	Rules     []ruleFile          `yaml:"rules" toml:"rules" validate:"dive"`
	Conflicts map[string][]string `yaml:"conflicts" toml:"conflicts" validate:"dive,keys,required,endkeys"`
}

type ruleFile struct {
	Family string   `yaml:"family" toml:"family" validate:"required"`
	Prefix string   `yaml:"prefix" toml:"prefix" validate:"required_without=Exact,tw_prefix"`
	Exact  []string `yaml:"exact" toml:"exact" validate:"required_without=Prefix,dive,required"`
	Values string   `yaml:"values" toml:"values" validate:"omitempty,oneof=any length number tshirt size shadow"`
}

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate
)

func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		// Prefixes are matched up to and including a '-'.
		_ = v.RegisterValidation("tw_prefix", func(fl validator.FieldLevel) bool {
			p := fl.Field().String()
			return p == "" || (len(p) > 1 && strings.HasSuffix(p, "-"))
		})

		validateInst = v
	})
	return validateInst
}

// LoadConfig reads extra rules from a YAML (.yaml, .yml) or TOML (.toml) file
// and returns DefaultConfig extended with them.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, newParseError(path, err)
	}

	var file configFile
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &file)
	case ".toml":
		err = toml.Unmarshal(data, &file)
	default:
		err = fmt.Errorf("unsupported config format %q", ext)
	}
	if err != nil {
		return Config{}, newParseError(path, err)
	}

	if err := validatorInstance().Struct(&file); err != nil {
		return Config{}, toValidationError(err)
	}

	return DefaultConfig().Extend(file.toConfig()), nil
}

// NewFromFile builds a resolver from LoadConfig(path).
func NewFromFile(path string) (*Resolver, error) {
	cfg, err := LoadConfig(path)
	if err != nil {
		return nil, err
	}
	return New(cfg), nil
}

func (f configFile) toConfig() Config {
	cfg := Config{Conflicts: make(map[FamilyID][]FamilyID, len(f.Conflicts))}
	for _, r := range f.Rules {
		values := ValueKind(r.Values)
		if values == "" {
			values = ValueAny
		}
		cfg.Rules = append(cfg.Rules, Rule{
			Family: FamilyID(r.Family),
			Prefix: r.Prefix,
			Exact:  r.Exact,
			Values: values,
		})
	}
	for family, others := range f.Conflicts {
		for _, o := range others {
			cfg.Conflicts[FamilyID(family)] = append(cfg.Conflicts[FamilyID(family)], FamilyID(o))
		}
	}
	return cfg
}

func toValidationError(err error) error {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		return &ValidationError{
			Field:   fe.Namespace(),
			Message: fmt.Sprintf("failed %q constraint", fe.Tag()),
			Err:     err,
		}
	}
	return &ValidationError{Message: err.Error(), Err: err}
}
