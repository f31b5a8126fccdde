package driver

import "pathviz/internal/core"

// Parameters returns the tunables shown on the HUD.
func (s *Session) Parameters() core.ParameterSnapshot {
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "Run",
			Params: []core.Parameter{
				core.IntParam("steps_per_frame", "Steps/frame", s.cfg.StepsPerFrame),
				core.FloatParam("wall_prob", "Wall prob", s.cfg.WallProb),
			},
		},
		{
			Name: "PRM",
			Params: []core.Parameter{
				core.IntParam("prm_samples", "PRM samples", s.cfg.PRMSamples),
				core.IntParam("prm_k", "PRM k", s.cfg.PRMK),
			},
		},
		{
			Name: "RRT",
			Params: []core.Parameter{
				core.IntParam("rrt_max_iters", "RRT budget", s.cfg.RRTMaxIters),
			},
		},
	}}
}

// ParameterControls lists the HUD-adjustable parameters.
func (s *Session) ParameterControls() []core.ParameterControl {
	return []core.ParameterControl{
		{Key: "steps_per_frame", Label: "Steps/frame", Type: core.ParamTypeInt, Step: 1, Min: 1, Max: 200, HasMin: true, HasMax: true},
		{Key: "wall_prob", Label: "Wall prob", Type: core.ParamTypeFloat, Step: 0.02, Min: 0, Max: 0.6, HasMin: true, HasMax: true},
		{Key: "prm_samples", Label: "PRM samples", Type: core.ParamTypeInt, Step: 25, Min: 25, Max: 1000, HasMin: true, HasMax: true},
		{Key: "prm_k", Label: "PRM k", Type: core.ParamTypeInt, Step: 1, Min: 1, Max: 30, HasMin: true, HasMax: true},
		{Key: "rrt_max_iters", Label: "RRT budget", Type: core.ParamTypeInt, Step: 500, Min: 500, Max: 20000, HasMin: true, HasMax: true},
	}
}

// SetIntParameter updates an integer tunable. Engine tunables apply to the
// next run.
func (s *Session) SetIntParameter(key string, value int) bool {
	if value <= 0 {
		return false
	}
	switch key {
	case "steps_per_frame":
		s.cfg.StepsPerFrame = value
	case "prm_samples":
		s.cfg.PRMSamples = value
	case "prm_k":
		s.cfg.PRMK = value
	case "rrt_max_iters":
		s.cfg.RRTMaxIters = value
	default:
		return false
	}
	return true
}

// SetFloatParameter updates a floating point tunable. The wall probability
// applies to the next generated map.
func (s *Session) SetFloatParameter(key string, value float64) bool {
	if key != "wall_prob" || value < 0 || value >= 1 {
		return false
	}
	s.cfg.WallProb = value
	return true
}
