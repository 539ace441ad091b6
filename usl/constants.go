package usl

import "github.com/ieml-core/ieml/script"

// Role names the syntagmatic slot an Actant or IndependantQuality fills.
// The eight process-level roles plus the two quality roles are exactly
// those named in spec.md §4.3's process validation rule.
type Role string

// MaxNodesInSentence bounds the number of addressed entries FromList may
// assemble into a single SyntagmaticFunction. spec.md §7 names a
// too-many-nodes structural error without pinning a number; this value
// keeps a single sentence from growing past what the two fixed quality
// roles and eight process roles can meaningfully nest (see DESIGN.md).
const MaxNodesInSentence = 64

const (
	RoleInitiator   Role = "INITIATOR"
	RoleInteractant Role = "INTERACTANT"
	RoleRecipient   Role = "RECIPIENT"
	RoleTime        Role = "TIME"
	RoleLocation    Role = "LOCATION"
	RoleManner      Role = "MANNER"
	RoleCause       Role = "CAUSE"
	RoleIntention   Role = "INTENTION"

	RoleDependantQuality   Role = "DEPENDANT_QUALITY"
	RoleIndependantQuality Role = "INDEPENDANT_QUALITY"
)

// processRoles lists the eight direct actant roles of a Process, in the
// fixed order spec.md §4.3 names them.
var processRoles = []Role{
	RoleInitiator, RoleInteractant, RoleRecipient,
	RoleTime, RoleLocation, RoleManner, RoleCause, RoleIntention,
}

// motorRoles are the actant roles that count toward process valence.
var motorRoles = map[Role]bool{
	RoleInitiator:   true,
	RoleInteractant: true,
	RoleRecipient:   true,
}

// processValenceByMotorCount is supplemented feature #5: the motor-actant
// count → valence script lookup the source's
// ADDRESS_PROCESS_VALENCE_SCRIPTS table encodes. A process with zero
// motor actants (pure stative) still gets a valence script so that
// Process.Actor is always defined.
var processValenceByMotorCount = map[int]string{
	0: "E:E:.",
	1: "E:U:.",
	2: "E:A:.",
	3: "E:S:.",
}

func valenceScriptFor(motorCount int) (*script.Script, error) {
	text, ok := processValenceByMotorCount[motorCount]
	if !ok {
		text = processValenceByMotorCount[3]
	}
	return script.Parse(text)
}
