package inventory

import (
	"fmt"
	"sort"
)

// Registry holds all loaded weapon, armor, and verb set definitions indexed by ID.
type Registry struct {
	weapons  map[string]*WeaponDef
	armors   map[string]*ArmorDef
	verbSets map[string]*VerbSet
}

// NewRegistry returns an empty Registry.
//
// Postcondition: all internal maps are initialised.
func NewRegistry() *Registry {
	return &Registry{
		weapons:  make(map[string]*WeaponDef),
		armors:   make(map[string]*ArmorDef),
		verbSets: make(map[string]*VerbSet),
	}
}

// RegisterWeapon adds w to the registry.
//
// Precondition:  w must not be nil.
// Postcondition: Weapon(w.ID) returns w; returns error if w.ID already registered.
func (r *Registry) RegisterWeapon(w *WeaponDef) error {
	if _, exists := r.weapons[w.ID]; exists {
		return fmt.Errorf("inventory: Registry.RegisterWeapon: weapon ID %q already registered", w.ID)
	}
	r.weapons[w.ID] = w
	return nil
}

// RegisterArmor adds a to the registry.
//
// Precondition:  a must not be nil.
// Postcondition: Armor(a.ID) returns a; returns error if a.ID already registered.
func (r *Registry) RegisterArmor(a *ArmorDef) error {
	if _, exists := r.armors[a.ID]; exists {
		return fmt.Errorf("inventory: Registry.RegisterArmor: armor ID %q already registered", a.ID)
	}
	r.armors[a.ID] = a
	return nil
}

// RegisterVerbSet adds v to the registry.
//
// Precondition:  v must not be nil.
// Postcondition: VerbSet(v.ID) returns v; returns error if v.ID already registered.
func (r *Registry) RegisterVerbSet(v *VerbSet) error {
	if _, exists := r.verbSets[v.ID]; exists {
		return fmt.Errorf("inventory: Registry.RegisterVerbSet: verb set ID %q already registered", v.ID)
	}
	r.verbSets[v.ID] = v
	return nil
}

// Weapon returns the WeaponDef for the given id, or nil if not found.
func (r *Registry) Weapon(id string) *WeaponDef {
	return r.weapons[id]
}

// Armor returns the ArmorDef for the given id, or nil if not found.
func (r *Registry) Armor(id string) *ArmorDef {
	return r.armors[id]
}

// VerbSet returns the VerbSet for the given id, or nil if not found.
func (r *Registry) VerbSet(id string) *VerbSet {
	return r.verbSets[id]
}

// WeaponIDs returns all registered weapon IDs in sorted order, so that a
// seeded random pick over them is reproducible.
func (r *Registry) WeaponIDs() []string {
	ids := make([]string, 0, len(r.weapons))
	for id := range r.weapons {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Validate checks that every weapon references a registered verb set.
//
// Postcondition: Returns nil iff all references resolve.
func (r *Registry) Validate() error {
	for _, id := range r.WeaponIDs() {
		w := r.weapons[id]
		if _, ok := r.verbSets[w.Verbs]; !ok {
			return fmt.Errorf("inventory: weapon %q references unknown verb set %q", id, w.Verbs)
		}
	}
	return nil
}

// NewWeapon builds a fresh Weapon instance for the given definition ID.
//
// Postcondition: Returns a Weapon or an error if the weapon or its verb set is unknown.
func (r *Registry) NewWeapon(id string) (*Weapon, error) {
	def, ok := r.weapons[id]
	if !ok {
		return nil, fmt.Errorf("inventory: unknown weapon %q", id)
	}
	vs, ok := r.verbSets[def.Verbs]
	if !ok {
		return nil, fmt.Errorf("inventory: weapon %q references unknown verb set %q", id, def.Verbs)
	}
	return NewWeapon(def, vs.Verbs)
}

// NewArmor builds a fresh Armor instance for the given definition ID.
//
// Postcondition: Returns an Armor or an error if the armor is unknown.
func (r *Registry) NewArmor(id string) (*Armor, error) {
	def, ok := r.armors[id]
	if !ok {
		return nil, fmt.Errorf("inventory: unknown armor %q", id)
	}
	return NewArmor(def), nil
}

// LoadRegistry loads verb sets, weapons and armor from the given directories
// and checks cross references.
//
// Postcondition: Returns a validated Registry or the first load/validation error.
func LoadRegistry(verbsDir, weaponsDir, armorDir string) (*Registry, error) {
	reg := NewRegistry()

	verbSets, err := LoadVerbSets(verbsDir)
	if err != nil {
		return nil, err
	}
	for _, v := range verbSets {
		if err := reg.RegisterVerbSet(v); err != nil {
			return nil, err
		}
	}
	weapons, err := LoadWeapons(weaponsDir)
	if err != nil {
		return nil, err
	}
	for _, w := range weapons {
		if err := reg.RegisterWeapon(w); err != nil {
			return nil, err
		}
	}
	armors, err := LoadArmors(armorDir)
	if err != nil {
		return nil, err
	}
	for _, a := range armors {
		if err := reg.RegisterArmor(a); err != nil {
			return nil, err
		}
	}
	if err := reg.Validate(); err != nil {
		return nil, err
	}
	return reg, nil
}
