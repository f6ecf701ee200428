package scheduler

// Built-in scoring weights for committee selection and room suitability
const (
	// DefaultSupervisorScore is the fixed score of the mandatory
	// supervisor seat. Supervisors join by role, not ranking, so this
	// marks guaranteed inclusion rather than comparative merit.
	DefaultSupervisorScore = 0.9

	// DefaultCommitteeWeight is the share of the combined placement score
	// contributed by the committee's mean selection score.
	DefaultCommitteeWeight = 0.7

	// DefaultRoomWeight is the share contributed by room suitability.
	DefaultRoomWeight = 0.3

	// DefaultRoomCapacityWeight scores how much of the expected seat
	// count the room covers.
	DefaultRoomCapacityWeight = 0.5

	// DefaultRoomQualityWeight scores the room's quality rating.
	DefaultRoomQualityWeight = 0.3

	// DefaultRoomFacilityWeight scores how well-equipped the room is.
	DefaultRoomFacilityWeight = 0.2

	// DefaultCapacityBaseline is the seat count a fully-scored room holds.
	DefaultCapacityBaseline = 10

	// facilityBaseline caps the facility factor at this many facilities
	facilityBaseline = 10

	// ratingScale is the upper bound of the 1-5 rating fields
	ratingScale = 5
)

// Options carries the allocator scoring knobs. Any zero field falls back to
// its default, so the zero Options behaves like DefaultOptions().
type Options struct {
	SupervisorScore    float64
	CommitteeWeight    float64
	RoomWeight         float64
	RoomCapacityWeight float64
	RoomQualityWeight  float64
	RoomFacilityWeight float64
	CapacityBaseline   int
}

// DefaultOptions returns the conventional scoring knobs.
func DefaultOptions() Options {
	return Options{
		SupervisorScore:    DefaultSupervisorScore,
		CommitteeWeight:    DefaultCommitteeWeight,
		RoomWeight:         DefaultRoomWeight,
		RoomCapacityWeight: DefaultRoomCapacityWeight,
		RoomQualityWeight:  DefaultRoomQualityWeight,
		RoomFacilityWeight: DefaultRoomFacilityWeight,
		CapacityBaseline:   DefaultCapacityBaseline,
	}
}

func (o Options) withDefaults() Options {
	def := DefaultOptions()
	if o.SupervisorScore == 0 {
		o.SupervisorScore = def.SupervisorScore
	}
	if o.CommitteeWeight == 0 {
		o.CommitteeWeight = def.CommitteeWeight
	}
	if o.RoomWeight == 0 {
		o.RoomWeight = def.RoomWeight
	}
	if o.RoomCapacityWeight == 0 {
		o.RoomCapacityWeight = def.RoomCapacityWeight
	}
	if o.RoomQualityWeight == 0 {
		o.RoomQualityWeight = def.RoomQualityWeight
	}
	if o.RoomFacilityWeight == 0 {
		o.RoomFacilityWeight = def.RoomFacilityWeight
	}
	if o.CapacityBaseline == 0 {
		o.CapacityBaseline = def.CapacityBaseline
	}
	return o
}
