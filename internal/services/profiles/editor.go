package profiles

import (
	"context"
	"encoding/json"
	"maps"
	"reflect"
	"sync"

	"github.com/presetapp/gigboard/internal/domain/model"
)

const (
	DefaultTab    = "profile"
	DefaultSubTab = string(SectionPersonal)
)

// EditorState is the profile page state: the stored profile, the form being
// edited and the UI flags around it.
type EditorState struct {
	Profile      *model.UserProfile `json:"profile"`
	FormData     map[string]any     `json:"form_data"`
	Editing      bool               `json:"is_editing"`
	Loading      bool               `json:"loading"`
	Saving       bool               `json:"saving"`
	Error        string             `json:"error,omitempty"`
	ActiveTab    string             `json:"active_tab"`
	ActiveSubTab string             `json:"active_sub_tab"`
	ShowLocation bool               `json:"show_location"`
}

func InitialEditorState() EditorState {
	return EditorState{
		FormData:     map[string]any{},
		Loading:      true,
		ActiveTab:    DefaultTab,
		ActiveSubTab: DefaultSubTab,
		ShowLocation: true,
	}
}

// Action is a state transition understood by Reduce.
type Action interface {
	apply(EditorState) EditorState
}

type (
	SetProfile      struct{ Profile *model.UserProfile }
	SetEditing      struct{ Editing bool }
	SetFormData     struct{ Data map[string]any }
	SetLoading      struct{ Loading bool }
	SetSaving       struct{ Saving bool }
	SetError        struct{ Message string }
	SetActiveTab    struct{ Tab string }
	SetActiveSubTab struct{ SubTab string }
	SetShowLocation struct{ Show bool }
	ResetForm       struct{}
)

type UpdateField struct {
	Field string
	Value any
}

// Reduce returns the state after action. It never mutates state.
func Reduce(state EditorState, action Action) EditorState {
	if action == nil {
		return state
	}
	state.FormData = maps.Clone(state.FormData)
	return action.apply(state)
}

func (a SetProfile) apply(s EditorState) EditorState {
	s.Profile = a.Profile
	s.FormData = profileFormData(a.Profile, false)
	return s
}

func (a SetEditing) apply(s EditorState) EditorState {
	s.Editing = a.Editing
	if !a.Editing {
		s.Error = ""
		return s
	}
	if s.Profile != nil {
		s.FormData = profileFormData(s.Profile, true)
	}
	return s
}

func (a UpdateField) apply(s EditorState) EditorState {
	if s.FormData == nil {
		s.FormData = map[string]any{}
	}
	s.FormData[a.Field] = a.Value
	return s
}

func (a SetFormData) apply(s EditorState) EditorState {
	s.FormData = maps.Clone(a.Data)
	if s.FormData == nil {
		s.FormData = map[string]any{}
	}
	return s
}

func (a SetLoading) apply(s EditorState) EditorState {
	s.Loading = a.Loading
	return s
}

func (a SetSaving) apply(s EditorState) EditorState {
	s.Saving = a.Saving
	return s
}

func (a SetError) apply(s EditorState) EditorState {
	s.Error = a.Message
	return s
}

func (a SetActiveTab) apply(s EditorState) EditorState {
	s.ActiveTab = a.Tab
	return s
}

func (a SetActiveSubTab) apply(s EditorState) EditorState {
	s.ActiveSubTab = a.SubTab
	return s
}

func (a SetShowLocation) apply(s EditorState) EditorState {
	s.ShowLocation = a.Show
	return s
}

func (ResetForm) apply(s EditorState) EditorState {
	s.FormData = profileFormData(s.Profile, true)
	s.Error = ""
	return s
}

// profileFormData flattens a profile into form values keyed by json name.
// For editing, list fields the form appends to start as empty lists.
func profileFormData(p *model.UserProfile, forEditing bool) map[string]any {
	out := map[string]any{}
	if p == nil {
		return out
	}
	raw, err := json.Marshal(p)
	if err != nil {
		return out
	}
	if err := json.Unmarshal(raw, &out); err != nil {
		return map[string]any{}
	}
	if forEditing {
		for _, key := range []string{"performance_roles", "professional_skills", "style_tags", "vibe_tags"} {
			if v, ok := out[key]; !ok || v == nil {
				out[key] = []any{}
			}
		}
		if _, ok := out["clothing_sizes"]; !ok {
			out["clothing_sizes"] = nil
		}
	}
	return out
}

// SectionUpdater persists one profile section.
type SectionUpdater interface {
	UpdateSection(ctx context.Context, userID string, section Section, patch []byte) (model.UserProfile, error)
}

// Editor serializes dispatches against one EditorState.
type Editor struct {
	mu    sync.Mutex
	state EditorState
}

func NewEditor() *Editor {
	return &Editor{state: InitialEditorState()}
}

func (e *Editor) Dispatch(actions ...Action) EditorState {
	e.mu.Lock()
	defer e.mu.Unlock()
	for _, action := range actions {
		e.state = Reduce(e.state, action)
	}
	return e.snapshot()
}

func (e *Editor) State() EditorState {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.snapshot()
}

func (e *Editor) snapshot() EditorState {
	out := e.state
	out.FormData = maps.Clone(e.state.FormData)
	return out
}

// Save sends the changed form values owned by section to updater. On success the
// stored profile replaces the form and editing ends; on failure the error
// is kept in state and returned.
func (e *Editor) Save(ctx context.Context, updater SectionUpdater, userID string, section Section) error {
	state := e.Dispatch(SetSaving{Saving: true})

	stored := profileFormData(state.Profile, true)
	patch := make(map[string]any)
	for _, key := range SectionFields(section) {
		v, ok := state.FormData[key]
		if !ok || reflect.DeepEqual(v, stored[key]) {
			continue
		}
		patch[key] = v
	}
	raw, err := json.Marshal(patch)
	if err == nil {
		var updated model.UserProfile
		updated, err = updater.UpdateSection(ctx, userID, section, raw)
		if err == nil {
			e.Dispatch(SetProfile{Profile: &updated}, SetEditing{Editing: false}, SetSaving{Saving: false})
			return nil
		}
	}

	e.Dispatch(SetError{Message: err.Error()}, SetSaving{Saving: false})
	return err
}
