package teststate

import (
	"io"

	"go.trai.ch/reattach/internal/core/domain"
	"go.trai.ch/reattach/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Codec implements ports.StateDecoder for YAML encoded outcomes.
type Codec struct{}

// NewCodec creates a new Codec.
func NewCodec() *Codec {
	return &Codec{}
}

// Decode reads an outcome and moves the paths it records under its temporary root to newTmpRoot.
func (c *Codec) Decode(r io.Reader, newTmpRoot string) (ports.TestState, error) {
	var state State
	if err := yaml.NewDecoder(r).Decode(&state); err != nil {
		return nil, zerr.Wrap(err, domain.ErrStateDecodeFailed.Error())
	}
	if state.Outcome == "" {
		return nil, zerr.With(domain.ErrStateDecodeFailed, "field", "category")
	}

	state.RewriteTmpRoot(newTmpRoot)
	return &state, nil
}

// Encode writes the outcome to w.
func (c *Codec) Encode(w io.Writer, state *State) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(state); err != nil {
		return zerr.Wrap(err, domain.ErrStateEncodeFailed.Error())
	}
	if err := enc.Close(); err != nil {
		return zerr.Wrap(err, domain.ErrStateEncodeFailed.Error())
	}
	return nil
}

// FromTestState converts any outcome into its serializable form.
func FromTestState(state ports.TestState, tmpRoot string) *State {
	switch s := state.(type) {
	case *State:
		return s
	case *domain.Unrunnable:
		return &State{Outcome: s.Category(), BriefText: s.BriefText, FreeText: s.FreeText, TmpRoot: tmpRoot}
	default:
		return &State{Outcome: state.Category(), Hosts: state.ExecutionHosts(), TmpRoot: tmpRoot}
	}
}
