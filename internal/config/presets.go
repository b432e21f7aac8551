package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	dnderr "github.com/KirkDiggler/brawl-tournament/internal/errors"
)

// Presets are the externally supplied stats for weapons and fighters
type Presets struct {
	// DefaultWeapon is the key unknown weapon lookups fall back to
	DefaultWeapon string       `yaml:"default_weapon"`
	Candidates    []string     `yaml:"candidates"`
	Weapons       []WeaponDef  `yaml:"weapons"`
	Fighters      []FighterDef `yaml:"fighters"`
}

type WeaponDef struct {
	Key      string  `yaml:"key"`
	Name     string  `yaml:"name"`
	Min      int     `yaml:"min"`
	Max      int     `yaml:"max"`
	Accuracy float64 `yaml:"accuracy"`
}

// FighterDef leaves unset stats nil so the character defaults apply
type FighterDef struct {
	Name     string   `yaml:"name"`
	Health   *int     `yaml:"health,omitempty"`
	Armor    *int     `yaml:"armor,omitempty"`
	Dodge    *float64 `yaml:"dodge,omitempty"`
	Critical *float64 `yaml:"critical,omitempty"`
}

// LoadPresets reads a presets YAML file
func LoadPresets(path string) (*Presets, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read presets %s: %w", path, err)
	}
	return ParsePresets(b)
}

// ParsePresets decodes presets YAML and checks it references itself consistently
func ParsePresets(data []byte) (*Presets, error) {
	var p Presets
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, dnderr.Wrap(err, "decode presets")
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return &p, nil
}

// Validate checks cross references and fills in the default weapon and the
// candidate pair when omitted. Per-stat checks happen when the weapons and
// characters are constructed.
func (p *Presets) Validate() error {
	if len(p.Weapons) == 0 {
		return dnderr.Validationf("presets define no weapons")
	}

	keys := make(map[string]bool, len(p.Weapons))
	for _, w := range p.Weapons {
		if w.Key == "" {
			return dnderr.Validationf("weapon %q has no key", w.Name)
		}
		if keys[w.Key] {
			return dnderr.Validationf("weapon key %s defined twice", w.Key)
		}
		keys[w.Key] = true
	}

	if p.DefaultWeapon == "" {
		p.DefaultWeapon = p.Weapons[0].Key
	}
	if !keys[p.DefaultWeapon] {
		return dnderr.Validationf("default weapon %s is not defined", p.DefaultWeapon)
	}

	if len(p.Candidates) == 0 {
		for i := 0; i < len(p.Weapons) && i < 2; i++ {
			p.Candidates = append(p.Candidates, p.Weapons[i].Key)
		}
	}
	if len(p.Candidates) != 2 {
		return dnderr.Validationf("need exactly 2 weapon candidates, got %d", len(p.Candidates))
	}

	names := make(map[string]bool, len(p.Fighters))
	for _, f := range p.Fighters {
		if f.Name == "" {
			return dnderr.Validationf("fighter with no name")
		}
		if names[f.Name] {
			return dnderr.Validationf("fighter %s listed twice", f.Name)
		}
		names[f.Name] = true
	}

	return nil
}

func intPtr(v int) *int           { return &v }
func floatPtr(v float64) *float64 { return &v }

// DefaultPresets is the stock roster: four fighters, pepper spray and a knuckle duster
func DefaultPresets() *Presets {
	return &Presets{
		DefaultWeapon: "pepper",
		Candidates:    []string{"pepper", "knuckles"},
		Weapons: []WeaponDef{
			{Key: "pepper", Name: "pepper spray", Min: 3, Max: 6, Accuracy: 0.8},
			{Key: "knuckles", Name: "knuckle duster", Min: 2, Max: 8, Accuracy: 0.7},
		},
		Fighters: []FighterDef{
			{Name: "Punk", Health: intPtr(18), Armor: intPtr(2), Dodge: floatPtr(0.1)},
			{Name: "Nefor", Health: intPtr(15), Armor: intPtr(1), Dodge: floatPtr(0.3)},
			{Name: "Normis", Health: intPtr(16), Armor: intPtr(3), Dodge: floatPtr(0.05)},
			{Name: "Pickme", Health: intPtr(14), Armor: intPtr(2), Dodge: floatPtr(0.2)},
		},
	}
}
