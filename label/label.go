// Package label manages the mission labels used to categorise focus sessions
package label

import (
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/maruel/natural"

	"github.com/ayoisaiah/focusexpress/internal/apperr"
)

const customPrefix = "custom-"

const (
	DefaultColor = "indigo"
	DefaultIcon  = "tag"
)

// Colors lists the colour names a custom label may use.
var Colors = []string{
	"red", "orange", "amber", "yellow", "lime", "green", "emerald", "teal",
	"cyan", "sky", "blue", "indigo", "violet", "purple", "fuchsia", "pink", "rose",
}

// Icons lists the icon keys a label may use.
var Icons = []string{
	"book", "briefcase", "code", "coffee", "pen", "brain", "music", "dumbbell",
	"gamepad", "cart", "camera", "calc", "heart", "globe", "zap", "tag", "palette",
}

var (
	errEmptyName = &apperr.Error{
		Message: "label name cannot be empty",
	}

	errUnknownLabel = &apperr.Error{
		Message: "unknown mission label: %s",
	}

	errUnknownSubLabel = &apperr.Error{
		Message: "%s is not a subject of %s",
	}

	errUnknownColor = &apperr.Error{
		Message: "unknown label colour: %s",
	}

	errUnknownIcon = &apperr.Error{
		Message: "unknown label icon: %s",
	}
)

// MissionLabel categorises a focus session. A label either offers a fixed
// list of SubLabels or asks for free text via CustomSubLabelPrompt.
type MissionLabel struct {
	ID                   string   `json:"id"`
	Name                 string   `json:"name"`
	Color                string   `json:"color"`
	Icon                 string   `json:"icon,omitempty"`
	CustomSubLabelPrompt string   `json:"custom_sub_label_prompt,omitempty"`
	SubLabels            []string `json:"sub_labels,omitempty"`
	IsCustom             bool     `json:"is_custom,omitempty"`
}

// HasSubLabels reports whether the label requires a choice from a fixed list.
func (l *MissionLabel) HasSubLabels() bool {
	return len(l.SubLabels) > 0
}

// HasPrompt reports whether the label requires free-text input.
func (l *MissionLabel) HasPrompt() bool {
	return !l.HasSubLabels() && strings.TrimSpace(l.CustomSubLabelPrompt) != ""
}

// Presets returns the built-in labels.
func Presets() []MissionLabel {
	return []MissionLabel{
		{
			ID:    "study",
			Name:  "Study",
			Color: "indigo",
			Icon:  "book",
			SubLabels: []string{
				"Math",
				"Physics",
				"Chemistry",
				"Biology",
				"History",
				"Literature",
				"CS",
			},
		},
		{ID: "work", Name: "Work", Color: "blue", Icon: "briefcase"},
		{
			ID:                   "reading",
			Name:                 "Reading",
			Color:                "yellow",
			Icon:                 "coffee",
			CustomSubLabelPrompt: "Book Title",
		},
		{ID: "code", Name: "Code", Color: "emerald", Icon: "code"},
		{ID: "writing", Name: "Writing", Color: "pink", Icon: "pen"},
	}
}

// Registry is the mutable set of mission labels together with the active
// selection.
type Registry struct {
	now       func() time.Time
	activeSub string
	active    string
	labels    []MissionLabel
}

// NewRegistry returns a registry seeded with the presets followed by any
// previously saved custom labels.
func NewRegistry(custom []MissionLabel) *Registry {
	r := &Registry{
		now:    time.Now,
		labels: Presets(),
	}

	for i := range custom {
		if r.indexOf(custom[i].ID) == -1 {
			r.labels = append(r.labels, custom[i])
		}
	}

	return r
}

func (r *Registry) indexOf(id string) int {
	return slices.IndexFunc(r.labels, func(l MissionLabel) bool {
		return l.ID == id
	})
}

// All returns every label in registration order.
func (r *Registry) All() []MissionLabel {
	return slices.Clone(r.labels)
}

// Custom returns only the user-created labels.
func (r *Registry) Custom() []MissionLabel {
	var out []MissionLabel

	for _, l := range r.labels {
		if l.IsCustom {
			out = append(out, l)
		}
	}

	return out
}

// Sorted returns every label ordered naturally by name.
func (r *Registry) Sorted() []MissionLabel {
	out := r.All()

	slices.SortStableFunc(out, func(a, b MissionLabel) int {
		switch {
		case natural.Less(a.Name, b.Name):
			return -1
		case natural.Less(b.Name, a.Name):
			return 1
		default:
			return 0
		}
	})

	return out
}

// Get looks up a label by id or case-insensitive name.
func (r *Registry) Get(key string) (MissionLabel, bool) {
	for _, l := range r.labels {
		if l.ID == key || strings.EqualFold(l.Name, key) {
			return l, true
		}
	}

	return MissionLabel{}, false
}

// Option customises a label created with Add.
type Option func(*MissionLabel)

// WithSubLabels gives the label a fixed list of sub-labels.
func WithSubLabels(subs ...string) Option {
	return func(l *MissionLabel) {
		for _, s := range subs {
			s = strings.TrimSpace(s)
			if s != "" && !slices.Contains(l.SubLabels, s) {
				l.SubLabels = append(l.SubLabels, s)
			}
		}
	}
}

// WithPrompt makes the label ask for a free-text sub-label.
func WithPrompt(prompt string) Option {
	return func(l *MissionLabel) {
		l.CustomSubLabelPrompt = strings.TrimSpace(prompt)
	}
}

// Add creates a custom label and makes it the active one.
func (r *Registry) Add(
	name, color, icon string,
	opts ...Option,
) (MissionLabel, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return MissionLabel{}, errEmptyName
	}

	if color == "" {
		color = DefaultColor
	}

	if !slices.Contains(Colors, color) {
		return MissionLabel{}, errUnknownColor.Fmt(color)
	}

	if icon == "" {
		icon = DefaultIcon
	}

	if !slices.Contains(Icons, icon) {
		return MissionLabel{}, errUnknownIcon.Fmt(icon)
	}

	stamp := r.now().UnixMilli()

	id := customPrefix + strconv.FormatInt(stamp, 10)
	for r.indexOf(id) != -1 {
		stamp++
		id = customPrefix + strconv.FormatInt(stamp, 10)
	}

	l := MissionLabel{
		ID:       id,
		Name:     name,
		Color:    color,
		Icon:     icon,
		IsCustom: true,
	}

	for _, opt := range opts {
		opt(&l)
	}

	r.labels = append(r.labels, l)

	r.active = l.ID
	r.activeSub = ""

	return l, nil
}

// Remove deletes a label. Removing the active label clears the active
// sub-label as well. It reports whether a label was removed.
func (r *Registry) Remove(id string) bool {
	i := r.indexOf(id)
	if i == -1 {
		return false
	}

	r.labels = slices.Delete(r.labels, i, i+1)

	if r.active == id {
		r.active = ""
		r.activeSub = ""
	}

	return true
}

// Select makes the label identified by key active and clears the sub-label.
func (r *Registry) Select(key string) error {
	l, ok := r.Get(key)
	if !ok {
		return errUnknownLabel.Fmt(key)
	}

	r.active = l.ID
	r.activeSub = ""

	return nil
}

// SelectSubLabel sets the sub-label of the active label. For labels with a
// fixed list the value must be one of them.
func (r *Registry) SelectSubLabel(sub string) error {
	l, ok := r.Active()
	if !ok {
		return errUnknownLabel.Fmt(sub)
	}

	if l.HasSubLabels() {
		i := slices.IndexFunc(l.SubLabels, func(s string) bool {
			return strings.EqualFold(s, sub)
		})
		if i == -1 {
			return errUnknownSubLabel.Fmt(sub, l.Name)
		}

		sub = l.SubLabels[i]
	}

	r.activeSub = sub

	return nil
}

// Active returns the active label, if any.
func (r *Registry) Active() (MissionLabel, bool) {
	if r.active == "" {
		return MissionLabel{}, false
	}

	i := r.indexOf(r.active)
	if i == -1 {
		return MissionLabel{}, false
	}

	return r.labels[i], true
}

// ActiveSubLabel returns the sub-label chosen for the active label.
func (r *Registry) ActiveSubLabel() string {
	return r.activeSub
}
