package formmodal

import "github.com/charmbracelet/bubbles/textinput"

// FieldType selects the widget backing a field.
type FieldType int

const (
	// FieldTypeText is a single-line text input.
	FieldTypeText FieldType = iota
	// FieldTypeToggle is an on/off switch flipped with Space or Enter.
	FieldTypeToggle
)

// FieldConfig describes one form field.
type FieldConfig struct {
	Key         string // Identifies the field in Values and error maps
	Type        FieldType
	Label       string
	Placeholder string // Text fields only
	Hint        string // Rendered dimmed under the field
	MaxLength   int    // Text fields: character limit (0 = unlimited)

	InitialValue string // Text fields
	InitialOn    bool   // Toggle fields
}

// fieldState holds runtime state for a field.
type fieldState struct {
	config    FieldConfig
	textInput textinput.Model
	on        bool
}

// newFieldState creates a fieldState from a FieldConfig.
func newFieldState(cfg FieldConfig) fieldState {
	fs := fieldState{config: cfg}

	switch cfg.Type {
	case FieldTypeText:
		ti := textinput.New()
		ti.Placeholder = cfg.Placeholder
		ti.Prompt = ""
		if cfg.MaxLength > 0 {
			ti.CharLimit = cfg.MaxLength
		}
		if cfg.InitialValue != "" {
			ti.SetValue(cfg.InitialValue)
		}
		ti.Width = 40
		fs.textInput = ti

	case FieldTypeToggle:
		fs.on = cfg.InitialOn
	}

	return fs
}

// value extracts the current value from the field state.
func (fs *fieldState) value() any {
	switch fs.config.Type {
	case FieldTypeText:
		return fs.textInput.Value()
	case FieldTypeToggle:
		return fs.on
	}
	return nil
}
