package movement

import (
	"errors"

	"github.com/oomph-ac/hopsim/game"
	"github.com/oomph-ac/hopsim/oerror"
)

// Config holds every tunable of a Mover. Speeds are in units per second, accelerations in units
// per second squared.
type Config struct {
	MaxWalkSpeed           float32 `toml:"max_walk_speed" yaml:"max_walk_speed"`
	MaxWalkSpeedCrouched   float32 `toml:"max_walk_speed_crouched" yaml:"max_walk_speed_crouched"`
	MaxSwimSpeed           float32 `toml:"max_swim_speed" yaml:"max_swim_speed"`
	MaxFlySpeed            float32 `toml:"max_fly_speed" yaml:"max_fly_speed"`
	MaxCustomMovementSpeed float32 `toml:"max_custom_movement_speed" yaml:"max_custom_movement_speed"`
	MinAnalogWalkSpeed     float32 `toml:"min_analog_walk_speed" yaml:"min_analog_walk_speed"`
	MaxAcceleration        float32 `toml:"max_acceleration" yaml:"max_acceleration"`

	GroundFriction         float32 `toml:"ground_friction" yaml:"ground_friction"`
	FallingLateralFriction float32 `toml:"falling_lateral_friction" yaml:"falling_lateral_friction"`
	FluidFriction          float32 `toml:"fluid_friction" yaml:"fluid_friction"`

	// BrakingFriction replaces the friction passed to braking when UseSeparateBrakingFriction is set.
	UseSeparateBrakingFriction bool    `toml:"use_separate_braking_friction" yaml:"use_separate_braking_friction"`
	BrakingFriction            float32 `toml:"braking_friction" yaml:"braking_friction"`
	BrakingFrictionFactor      float32 `toml:"braking_friction_factor" yaml:"braking_friction_factor"`
	// BrakingSubStepTime is clamped between 1/75 and 1/20 of a second when used.
	BrakingSubStepTime          float32 `toml:"braking_sub_step_time" yaml:"braking_sub_step_time"`
	BrakingDecelerationWalking  float32 `toml:"braking_deceleration_walking" yaml:"braking_deceleration_walking"`
	BrakingDecelerationFalling  float32 `toml:"braking_deceleration_falling" yaml:"braking_deceleration_falling"`
	BrakingDecelerationSwimming float32 `toml:"braking_deceleration_swimming" yaml:"braking_deceleration_swimming"`
	BrakingDecelerationFlying   float32 `toml:"braking_deceleration_flying" yaml:"braking_deceleration_flying"`

	GravityZ         float32 `toml:"gravity_z" yaml:"gravity_z"`
	TerminalVelocity float32 `toml:"terminal_velocity" yaml:"terminal_velocity"`
	Mass             float32 `toml:"mass" yaml:"mass"`

	JumpAllowed   bool    `toml:"jump_allowed" yaml:"jump_allowed"`
	JumpZVelocity float32 `toml:"jump_z_velocity" yaml:"jump_z_velocity"`
	// AutoBunnyhop makes a held jump input jump again as soon as the mover lands.
	AutoBunnyhop bool `toml:"auto_bunnyhop" yaml:"auto_bunnyhop"`

	// MaintainVerticalGroundVelocity converts planar speed on a slope into vertical speed when
	// the mover starts falling.
	MaintainVerticalGroundVelocity bool `toml:"maintain_vertical_ground_velocity" yaml:"maintain_vertical_ground_velocity"`
	// MaintainVerticalAirVelocity converts vertical speed into planar speed when the mover lands.
	MaintainVerticalAirVelocity bool    `toml:"maintain_vertical_air_velocity" yaml:"maintain_vertical_air_velocity"`
	EnforceMinJump              bool    `toml:"enforce_min_jump" yaml:"enforce_min_jump"`
	MinJumpScale                float32 `toml:"min_jump_scale" yaml:"min_jump_scale"`
	FastFallZVelocity           float32 `toml:"fast_fall_z_velocity" yaml:"fast_fall_z_velocity"`

	GroundAccelerationMultiplier float32 `toml:"ground_acceleration_multiplier" yaml:"ground_acceleration_multiplier"`
	AirAccelerationMultiplier    float32 `toml:"air_acceleration_multiplier" yaml:"air_acceleration_multiplier"`
	AirSpeedCap                  float32 `toml:"air_speed_cap" yaml:"air_speed_cap"`
	SlopeSpeedScale              float32 `toml:"slope_speed_scale" yaml:"slope_speed_scale"`
	HardSpeedLimit               float32 `toml:"hard_speed_limit" yaml:"hard_speed_limit"`

	MaxStepHeight      float32 `toml:"max_step_height" yaml:"max_step_height"`
	WalkableFloorAngle float32 `toml:"walkable_floor_angle" yaml:"walkable_floor_angle"`

	CanCrouch          bool    `toml:"can_crouch" yaml:"can_crouch"`
	CrouchedHalfHeight float32 `toml:"crouched_half_height" yaml:"crouched_half_height"`
	DefaultHalfHeight  float32 `toml:"default_half_height" yaml:"default_half_height"`

	MaxSimulationTimeStep   float32 `toml:"max_simulation_time_step" yaml:"max_simulation_time_step"`
	MaxSimulationIterations int     `toml:"max_simulation_iterations" yaml:"max_simulation_iterations"`

	UseAvoidance bool `toml:"use_avoidance" yaml:"use_avoidance"`
}

// DefaultConfig returns the default tuning.
func DefaultConfig() Config {
	return Config{
		MaxWalkSpeed:           600,
		MaxWalkSpeedCrouched:   300,
		MaxSwimSpeed:           300,
		MaxFlySpeed:            600,
		MaxCustomMovementSpeed: 600,
		MaxAcceleration:        2048,

		GroundFriction: 8,
		FluidFriction:  0.3,

		BrakingFrictionFactor:      2,
		BrakingSubStepTime:         1.0 / 33.0,
		BrakingDecelerationWalking: 2048,

		GravityZ:         -980,
		TerminalVelocity: 4000,
		Mass:             100,

		JumpAllowed:   true,
		JumpZVelocity: 420,
		AutoBunnyhop:  true,

		MaintainVerticalGroundVelocity: true,
		MaintainVerticalAirVelocity:    true,
		EnforceMinJump:                 true,
		MinJumpScale:                   0.625,
		FastFallZVelocity:              -700,

		GroundAccelerationMultiplier: 10,
		AirAccelerationMultiplier:    10,
		AirSpeedCap:                  57.15,
		SlopeSpeedScale:              10,
		HardSpeedLimit:               game.DefaultHardSpeedLimit,

		MaxStepHeight:      45,
		WalkableFloorAngle: 44.765,

		CanCrouch:          true,
		CrouchedHalfHeight: 40,
		DefaultHalfHeight:  88,

		MaxSimulationTimeStep:   0.05,
		MaxSimulationIterations: 8,
	}
}

// Validate returns an error describing every value of the config that cannot be simulated.
func (c Config) Validate() error {
	var errs []error
	check := func(ok bool, reason string) {
		if !ok {
			errs = append(errs, oerror.New(game.ErrorInvalidConfig, reason))
		}
	}
	check(c.MaxWalkSpeed >= 0 && c.MaxWalkSpeedCrouched >= 0 && c.MaxSwimSpeed >= 0 &&
		c.MaxFlySpeed >= 0 && c.MaxCustomMovementSpeed >= 0, "max speeds must not be negative")
	check(c.MinAnalogWalkSpeed >= 0, "min_analog_walk_speed must not be negative")
	check(c.MaxAcceleration >= 0, "max_acceleration must not be negative")
	check(c.BrakingSubStepTime > 0, "braking_sub_step_time must be positive")
	check(c.MinJumpScale <= 1, "min_jump_scale must not exceed 1")
	check(c.FastFallZVelocity <= 0, "fast_fall_z_velocity must not be positive")
	check(c.AirSpeedCap >= 0, "air_speed_cap must not be negative")
	check(c.HardSpeedLimit > 0, "hard_speed_limit must be positive")
	check(c.Mass > 0, "mass must be positive")
	check(c.WalkableFloorAngle >= 0 && c.WalkableFloorAngle <= 90, "walkable_floor_angle must be within [0, 90]")
	check(c.MaxStepHeight >= 0, "max_step_height must not be negative")
	check(c.CrouchedHalfHeight >= 0 && c.DefaultHalfHeight > 0, "capsule half heights must be positive")
	check(c.MaxSimulationTimeStep > 0 && c.MaxSimulationIterations > 0, "simulation sub-stepping must be positive")
	return errors.Join(errs...)
}
