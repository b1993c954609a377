package creature

import (
	"fmt"
	"path/filepath"
	"sort"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/cory-johannsen/laststand/internal/game/dice"
	"github.com/cory-johannsen/laststand/internal/game/inventory"
)

// Catalog holds every definition needed to spawn creatures.
type Catalog struct {
	Equipment *inventory.Registry
	anatomies map[string]*Anatomy
	stumbles  map[string]*StumbleSet
	templates map[string]*Template
}

// NewCatalog indexes the given definitions and checks that every template
// reference resolves.
//
// Precondition: equipment must not be nil.
// Postcondition: Returns a Catalog or an error naming the first duplicate ID
// or dangling reference.
func NewCatalog(equipment *inventory.Registry, anatomies []*Anatomy, stumbles []*StumbleSet, templates []*Template) (*Catalog, error) {
	c := &Catalog{
		Equipment: equipment,
		anatomies: make(map[string]*Anatomy, len(anatomies)),
		stumbles:  make(map[string]*StumbleSet, len(stumbles)),
		templates: make(map[string]*Template, len(templates)),
	}
	for _, a := range anatomies {
		if _, dup := c.anatomies[a.ID]; dup {
			return nil, fmt.Errorf("creature: duplicate anatomy %q", a.ID)
		}
		c.anatomies[a.ID] = a
	}
	for _, s := range stumbles {
		if _, dup := c.stumbles[s.ID]; dup {
			return nil, fmt.Errorf("creature: duplicate stumble set %q", s.ID)
		}
		c.stumbles[s.ID] = s
	}
	for _, t := range templates {
		if _, dup := c.templates[t.ID]; dup {
			return nil, fmt.Errorf("creature: duplicate template %q", t.ID)
		}
		if err := c.checkRefs(t); err != nil {
			return nil, err
		}
		c.templates[t.ID] = t
	}
	return c, nil
}

func (c *Catalog) checkRefs(t *Template) error {
	if _, ok := c.anatomies[t.Anatomy]; !ok {
		return fmt.Errorf("creature template %q: unknown anatomy %q", t.ID, t.Anatomy)
	}
	if _, ok := c.stumbles[t.Stumbles]; !ok {
		return fmt.Errorf("creature template %q: unknown stumble set %q", t.ID, t.Stumbles)
	}
	if t.Weapon == "" {
		if len(c.Equipment.WeaponIDs()) == 0 {
			return fmt.Errorf("creature template %q: random weapon requested but no weapons are loaded", t.ID)
		}
	} else if c.Equipment.Weapon(t.Weapon) == nil {
		return fmt.Errorf("creature template %q: unknown weapon %q", t.ID, t.Weapon)
	}
	if t.Armor != "" && c.Equipment.Armor(t.Armor) == nil {
		return fmt.Errorf("creature template %q: unknown armor %q", t.ID, t.Armor)
	}
	return nil
}

// Template returns the template with the given id, or nil.
func (c *Catalog) Template(id string) *Template { return c.templates[id] }

// TemplateIDs returns all template IDs in sorted order.
func (c *Catalog) TemplateIDs() []string {
	ids := make([]string, 0, len(c.templates))
	for id := range c.templates {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// LoadCatalog loads the standard content layout rooted at dir:
// verbs/, weapons/, armor/, anatomy/, stumbles/ and creatures/.
//
// Precondition: dir must contain the six subdirectories.
// Postcondition: Returns a fully cross-checked Catalog or the first error.
func LoadCatalog(dir string) (*Catalog, error) {
	equipment, err := inventory.LoadRegistry(
		filepath.Join(dir, "verbs"),
		filepath.Join(dir, "weapons"),
		filepath.Join(dir, "armor"),
	)
	if err != nil {
		return nil, err
	}
	anatomies, err := LoadAnatomies(filepath.Join(dir, "anatomy"))
	if err != nil {
		return nil, err
	}
	stumbles, err := LoadStumbleSets(filepath.Join(dir, "stumbles"))
	if err != nil {
		return nil, err
	}
	templates, err := LoadTemplates(filepath.Join(dir, "creatures"))
	if err != nil {
		return nil, err
	}
	return NewCatalog(equipment, anatomies, stumbles, templates)
}

// Spawner builds fresh, equipped creatures from catalog templates.
type Spawner struct {
	catalog *Catalog
	src     dice.Source
	logger  *zap.Logger
}

// NewSpawner creates a Spawner. src drives random weapon choice.
//
// Precondition: catalog, src and logger must be non-nil.
func NewSpawner(catalog *Catalog, src dice.Source, logger *zap.Logger) *Spawner {
	return &Spawner{catalog: catalog, src: src, logger: logger}
}

// Spawn creates a new creature from the template with the given id, at full
// health, wielding the template's weapon (or a random one) and wearing its armor.
//
// Postcondition: Returns a Creature with a unique ID or an error if the
// template is unknown or its equipment cannot be built.
func (s *Spawner) Spawn(templateID string) (*Creature, error) {
	tmpl := s.catalog.Template(templateID)
	if tmpl == nil {
		return nil, fmt.Errorf("creature: unknown template %q", templateID)
	}

	c, err := New(uuid.NewString(), Spec{
		Name:     tmpl.Name,
		Unique:   tmpl.Unique,
		Gender:   tmpl.Gender,
		Level:    tmpl.Level,
		Str:      tmpl.Str,
		Dex:      tmpl.Dex,
		Con:      tmpl.Con,
		BaseHP:   tmpl.BaseHP,
		Anatomy:  s.catalog.anatomies[tmpl.Anatomy].Parts,
		Stumbles: s.catalog.stumbles[tmpl.Stumbles].Stumbles,
	})
	if err != nil {
		return nil, err
	}

	weaponID := tmpl.Weapon
	if weaponID == "" {
		weaponID, err = dice.Choice(s.src, s.catalog.Equipment.WeaponIDs())
		if err != nil {
			return nil, fmt.Errorf("creature: choosing weapon for %q: %w", templateID, err)
		}
	}
	weapon, err := s.catalog.Equipment.NewWeapon(weaponID)
	if err != nil {
		return nil, err
	}
	c.EquipWeapon(weapon)

	if tmpl.Armor != "" {
		armor, err := s.catalog.Equipment.NewArmor(tmpl.Armor)
		if err != nil {
			return nil, err
		}
		c.EquipArmor(armor)
	}

	s.logger.Debug("creature spawned",
		zap.String("template", templateID),
		zap.String("id", c.ID),
		zap.String("weapon", weaponID),
		zap.String("armor", tmpl.Armor),
		zap.Int("max_hp", c.MaxHP()),
	)
	return c, nil
}
