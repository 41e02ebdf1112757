package sand

import (
	"strconv"

	"mad-sand/internal/core"
)

const maxDimension = 1024

// Parameters reports the world settings and the live material census.
func (s *Sandbox) Parameters() core.ParameterSnapshot {
	census := s.grid.Census()
	groups := []core.ParameterGroup{
		{
			Name: "World",
			Params: []core.Parameter{
				intParam("w", "Width", s.grid.Width()),
				intParam("h", "Height", s.grid.Height()),
				int64Param("seed", "Seed", s.cfg.Seed),
				floatParam("fill", "Fill", s.cfg.Fill),
				uint64Param("generation", "Generation", s.grid.Generation()),
			},
		},
		{
			Name: "Census",
			Params: []core.Parameter{
				intParam("sand", "Sand", census.Count(Sand)),
				intParam("water", "Water", census.Count(Water)),
				intParam("rock", "Rock", census.Count(Rock)),
				intParam("dead", "Empty", census.Count(Dead)),
			},
		},
	}
	return core.ParameterSnapshot{Groups: groups}
}

// ParameterControls exposes the grid dimensions to the HUD.
func (s *Sandbox) ParameterControls() []core.ParameterControl {
	return []core.ParameterControl{
		{Key: "w", Label: "Width", Type: core.ParamTypeInt, Step: 8, Min: 1, HasMin: true, Max: maxDimension, HasMax: true},
		{Key: "h", Label: "Height", Type: core.ParamTypeInt, Step: 8, Min: 1, HasMin: true, Max: maxDimension, HasMax: true},
	}
}

// SetIntParameter applies a HUD adjustment. Changing either dimension clears
// the grid.
func (s *Sandbox) SetIntParameter(key string, value int) bool {
	if value < 1 {
		value = 1
	}
	if value > maxDimension {
		value = maxDimension
	}
	switch key {
	case "w":
		s.SetWidth(value)
	case "h":
		s.SetHeight(value)
	default:
		return false
	}
	return true
}

func intParam(key, label string, value int) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.Itoa(value),
	}
}

func int64Param(key, label string, value int64) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.FormatInt(value, 10),
	}
}

func uint64Param(key, label string, value uint64) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.FormatUint(value, 10),
	}
}

func floatParam(key, label string, value float64) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeFloat,
		Value: strconv.FormatFloat(value, 'f', -1, 64),
	}
}
