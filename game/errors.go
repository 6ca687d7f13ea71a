package game

const (
	ErrorInvalidConfig     = "invalid movement config: %s"
	ErrorUnknownScenario   = "unknown scenario %q"
	ErrorInvalidScenario   = "invalid scenario %q: %s"
	ErrorUnknownMode       = "unknown movement mode %q"
	ErrorUnknownDebugMode  = "unknown debug mode %q"
	ErrorMissingCollisions = "mover requires a world and a body"
)
