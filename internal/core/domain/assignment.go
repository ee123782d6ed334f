package domain

import "time"

// Arm labels an experiment arm.
type Arm string

const (
	ArmControl   Arm = "control"
	ArmTreatment Arm = "treatment"
	ArmVariantA  Arm = "variant_a"
	ArmVariantB  Arm = "variant_b"
)

// Assignment is one campaign send to one targeted user: the initial send or
// a follow-up at a fixed week offset. Immutable after creation.
type Assignment struct {
	ID     string
	UserID string
	Arm    Arm
	// Applied is the simulated outcome of this send.
	Applied bool
	// Week is 0 for the initial send, otherwise the follow-up week offset.
	Week   int
	SentAt time.Time
}
