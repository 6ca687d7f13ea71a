package scenario

import (
	"bytes"
	"fmt"
	"os"

	"github.com/ethaniccc/float32-cube/cube"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/hopsim/game"
	"github.com/oomph-ac/hopsim/movement"
	"github.com/oomph-ac/hopsim/oerror"
	"github.com/oomph-ac/hopsim/sandbox"
	"gopkg.in/yaml.v3"
)

// defaultTickRate is the tick rate used by scenarios that do not set one.
const defaultTickRate = 60

// Scenario is a scripted run of a single mover through a sandbox world.
type Scenario struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	// Config overrides fields of the movement config the scenario is run with. Fields that are
	// not present keep their value.
	Config yaml.Node `yaml:"config"`
	// TickRate is the number of ticks per second.
	TickRate int `yaml:"tick_rate"`

	Initial State  `yaml:"initial"`
	World   World  `yaml:"world"`
	Steps   []Step `yaml:"steps"`
}

// State is the state of the mover before the first tick.
type State struct {
	Mode string `yaml:"mode"`
	// Feet is the position of the bottom of the capsule.
	Feet     mgl32.Vec3 `yaml:"feet"`
	Velocity mgl32.Vec3 `yaml:"velocity"`
	Radius   float32    `yaml:"radius"`
	Crouched bool       `yaml:"crouched"`
}

// World describes the sandbox world of a scenario.
type World struct {
	Ramps []sandbox.Ramp `yaml:"ramps"`
	Boxes []Box          `yaml:"boxes"`
	// Friction is the friction of the ground material, if the ground has one.
	Friction *float32 `yaml:"friction"`
}

// Box is an obstacle spanning Min to Max.
type Box struct {
	Min mgl32.Vec3 `yaml:"min"`
	Max mgl32.Vec3 `yaml:"max"`
}

// Step holds the same input for a number of ticks.
type Step struct {
	Ticks    int        `yaml:"ticks"`
	Accel    mgl32.Vec3 `yaml:"accel"`
	Analog   float32    `yaml:"analog"`
	Jump     bool       `yaml:"jump"`
	Crouch   bool       `yaml:"crouch"`
	ForceMax bool       `yaml:"force_max"`
	// Mode switches the movement mode before the first tick of the step.
	Mode       string `yaml:"mode"`
	CustomMode uint8  `yaml:"custom_mode"`
}

// Input returns the input held during the step.
func (s Step) Input() movement.Input {
	return movement.Input{
		Acceleration:        s.Accel,
		AnalogInputModifier: s.Analog,
		ForceMaxAccel:       s.ForceMax,
		Jump:                s.Jump,
		Crouch:              s.Crouch,
	}
}

// Parse decodes a scenario from YAML and validates it.
func Parse(data []byte) (*Scenario, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	s := &Scenario{}
	if err := dec.Decode(s); err != nil {
		return nil, fmt.Errorf("error decoding scenario: %w", err)
	}
	if s.TickRate == 0 {
		s.TickRate = defaultTickRate
	}
	if s.Initial.Mode == "" {
		s.Initial.Mode = movement.ModeWalking.String()
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

// Load reads and parses the scenario file at path.
func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading scenario: %w", err)
	}
	return Parse(data)
}

// Validate checks that the scenario can be run.
func (s *Scenario) Validate() error {
	invalid := func(reason string) error {
		return oerror.New(game.ErrorInvalidScenario, s.Name, reason)
	}
	if s.Name == "" {
		return invalid("missing name")
	}
	if s.TickRate <= 0 {
		return invalid("tick rate must be positive")
	}
	if len(s.Steps) == 0 {
		return invalid("no steps")
	}
	if s.Initial.Radius < 0 {
		return invalid("negative radius")
	}
	if _, err := movement.ParseMode(s.Initial.Mode); err != nil {
		return invalid(err.Error())
	}
	for i, step := range s.Steps {
		if step.Ticks <= 0 {
			return invalid(fmt.Sprintf("step %d has no ticks", i))
		}
		if step.Mode == "" {
			continue
		}
		if _, err := movement.ParseMode(step.Mode); err != nil {
			return invalid(fmt.Sprintf("step %d: %v", i, err))
		}
	}
	return nil
}

// MovementConfig applies the overrides of the scenario to base.
func (s *Scenario) MovementConfig(base movement.Config) (movement.Config, error) {
	cfg := base
	if s.Config.Kind != 0 {
		if err := s.Config.Decode(&cfg); err != nil {
			return base, fmt.Errorf("error decoding config of scenario %q: %w", s.Name, err)
		}
	}
	if err := cfg.Validate(); err != nil {
		return base, fmt.Errorf("scenario %q: %w", s.Name, err)
	}
	return cfg, nil
}

// TickTime returns the length of a tick in seconds.
func (s *Scenario) TickTime() float32 {
	return 1 / float32(s.TickRate)
}

// TotalTicks returns the number of ticks over all steps.
func (s *Scenario) TotalTicks() int {
	var n int
	for _, step := range s.Steps {
		n += step.Ticks
	}
	return n
}

func (w World) obstacles() []cube.BBox {
	boxes := make([]cube.BBox, 0, len(w.Boxes))
	for _, b := range w.Boxes {
		boxes = append(boxes, cube.Box(b.Min[0], b.Min[1], b.Min[2], b.Max[0], b.Max[1], b.Max[2]))
	}
	return boxes
}
