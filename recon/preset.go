package recon

import (
	"fmt"

	"github.com/igsio/volrecon"
)

// CodecPreset names a symbolic (lossless|minimum-size-lossy|constant-
// quality) parameter combination equivalent to the VP9 codec's
// presets, per spec.md §6. The codec itself is an out-of-scope
// collaborator; Orchestrator only tracks and exposes the selected
// combination so a downstream encoder can consume it.
type CodecPreset struct {
	Lossless    bool
	KeyframeMin int
	KeyframeMax int
	Speed       int
	RateControl RateControl
}

// RateControl mirrors the codec collaborator's rate-control mode.
type RateControl int

const (
	RateControlDefault RateControl = iota
	RateControlQ
)

var presets = map[string]CodecPreset{
	"lossless":           {Lossless: true, KeyframeMin: 10, KeyframeMax: 50},
	"minimum-size-lossy": {Lossless: false, KeyframeMin: 10, KeyframeMax: 50},
	"constant-quality":   {Lossless: false, Speed: 8, RateControl: RateControlQ},
}

// SetPreset looks up name and applies it, returning a ConfigError if
// name is not one of "lossless", "minimum-size-lossy", or
// "constant-quality".
func (o *Orchestrator) SetPreset(name string) error {
	o.mu.Lock()
	defer o.mu.Unlock()
	p, ok := presets[name]
	if !ok {
		return volrecon.NewConfigError("recon.SetPreset", fmt.Errorf("unknown preset %q", name))
	}
	o.codecPreset = p
	return nil
}

// CodecPreset returns the currently selected codec-collaborator preset.
func (o *Orchestrator) CodecPreset() CodecPreset {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.codecPreset
}
