package health

// Category is the closed set of health metric kinds the statistics surface can query.
type Category int

const (
	StepCount Category = iota + 1
	ActiveEnergyBurned
	ExerciseTime
)

// Request labels accepted on the query surface. Matching is exact and case-sensitive.
const (
	LabelSteps              = "STEPS"
	LabelActiveEnergyBurned = "ACTIVE_ENERGY_BURNED"
	LabelExerciseTime       = "EXERCISE_TIME"
)

// Oracle-side quantity type identifiers.
const (
	IdentifierStepCount          = "HKQuantityTypeIdentifierStepCount"
	IdentifierActiveEnergyBurned = "HKQuantityTypeIdentifierActiveEnergyBurned"
	IdentifierExerciseTime       = "HKQuantityTypeIdentifierAppleExerciseTime"
)

// Categories lists every supported category in label order.
var Categories = []Category{StepCount, ActiveEnergyBurned, ExerciseTime}

// CategoryForLabel resolves a request label to its category.
// There is no fallback: anything other than an exact label match returns false.
func CategoryForLabel(label string) (Category, bool) {
	switch label {
	case LabelSteps:
		return StepCount, true
	case LabelActiveEnergyBurned:
		return ActiveEnergyBurned, true
	case LabelExerciseTime:
		return ExerciseTime, true
	default:
		return 0, false
	}
}

// Label returns the request label for c, or "" for an unknown category.
func (c Category) Label() string {
	switch c {
	case StepCount:
		return LabelSteps
	case ActiveEnergyBurned:
		return LabelActiveEnergyBurned
	case ExerciseTime:
		return LabelExerciseTime
	default:
		return ""
	}
}

// Identifier returns the oracle quantity type identifier for c.
func (c Category) Identifier() string {
	switch c {
	case StepCount:
		return IdentifierStepCount
	case ActiveEnergyBurned:
		return IdentifierActiveEnergyBurned
	case ExerciseTime:
		return IdentifierExerciseTime
	default:
		return ""
	}
}

// CanonicalUnit returns the unit every result for c is expressed in.
// ok is false for a category without a known unit.
func (c Category) CanonicalUnit() (Unit, bool) {
	switch c {
	case StepCount:
		return Count, true
	case ActiveEnergyBurned:
		return Kilocalorie, true
	case ExerciseTime:
		return Minute, true
	default:
		return Unit{}, false
	}
}

func (c Category) String() string {
	if l := c.Label(); l != "" {
		return l
	}
	return "UNKNOWN"
}
