package grammar

// Participant is anything that can be the subject or object of a sentence.
type Participant interface {
	Name() string
	Gender() Gender
}

// ObjectPrefix disambiguates the object's keys in a Dict.
const ObjectPrefix = "o_"

// View narrates from a viewer's perspective. The viewer is addressed as
// "you" and takes plural verb forms; with no viewer every participant is
// third person singular.
type View struct {
	viewer Participant
}

// NewView returns a View for viewer; nil means no one is addressed.
func NewView(viewer Participant) *View {
	return &View{viewer: viewer}
}

// Viewer returns the addressed participant, or nil.
func (v *View) Viewer() Participant { return v.viewer }

// isViewer compares by identity, never by name.
func (v *View) isViewer(p Participant) bool {
	return v.viewer != nil && p == v.viewer
}

// Dict binds name, possessive-name and pronoun keys for subject, and the
// same keys prefixed with "o_" for object.
func (v *View) Dict(subject, object Participant) Dict {
	d := make(Dict, 12)
	v.fill(d, subject, "")
	v.fill(d, object, ObjectPrefix)
	return d
}

func (v *View) fill(d Dict, p Participant, prefix string) {
	set, ok := pronouns[p.Gender()]
	if !ok {
		set = pronouns[Neuter]
	}
	name, pos := p.Name(), p.Name()+"'s"
	if v.isViewer(p) {
		set = pronouns[You]
		name, pos = "you", "your"
	}
	d[prefix+"himself"] = set.Reflexive
	d[prefix+"his"] = set.Possessive
	d[prefix+"him"] = set.Objective
	d[prefix+"he"] = set.Subjective
	d[prefix+"name"] = name
	d[prefix+"name_pos"] = pos
}

// Render expands template for the subject/object pair, with extra bindings
// layered over the participant dictionary.
//
// Postcondition: Returns prose or a TemplateError.
func (v *View) Render(template string, subject, object Participant, extra Dict) (string, error) {
	d := v.Dict(subject, object)
	if len(extra) > 0 {
		d = d.Merge(extra)
	}
	return Expand(template, v.isViewer(subject), v.isViewer(object), d)
}
