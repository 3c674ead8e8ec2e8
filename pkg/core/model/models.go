package model

// Scope identifies an organizational level
type Scope string

const (
	ScopePost      Scope = "post"
	ScopeCentre    Scope = "centre"
	ScopeDirection Scope = "direction"
	ScopeNation    Scope = "nation"
)

func (s Scope) IsValid() bool {
	return s == ScopePost || s == ScopeCentre || s == ScopeDirection || s == ScopeNation
}

// LaborCategory distinguishes direct labor (task-costed) from indirect labor
// (counted at actual headcount)
type LaborCategory string

const (
	LaborMOD LaborCategory = "MOD"
	LaborMOI LaborCategory = "MOI"
)

func (c LaborCategory) IsValid() bool {
	return c == LaborMOD || c == LaborMOI
}

// Period is the time scope of a volume quantity
type Period string

const (
	PeriodDaily  Period = "daily"
	PeriodAnnual Period = "annual"
)

// Task is one entry of the task-time referential. Reference data: loaded
// once per simulation, never mutated by the engine.
type Task struct {
	Code            string  `yaml:"code" json:"code" validate:"required"`
	Name            string  `yaml:"name" json:"name"`
	Family          string  `yaml:"family" json:"family"`
	Product         string  `yaml:"product" json:"product"`
	UnitTimeMinutes float64 `yaml:"unitTimeMinutes" json:"unit_time_minutes" validate:"gte=0"`
	Unit            string  `yaml:"unit" json:"unit"`
}

// VolumeRecord is one raw operational volume supplied by the caller for a
// post or centre. The engine never fabricates volumes.
type VolumeRecord struct {
	OwnerID  string  `json:"owner_id" validate:"required"`
	TaskCode string  `json:"task_code" validate:"required"`
	Quantity float64 `json:"quantity" validate:"gte=0"`
	Period   Period  `json:"period,omitempty"`
}

// Post represents a workstation within a centre
type Post struct {
	ID             string        `json:"id"`
	Label          string        `json:"label"`
	Category       LaborCategory `json:"category"`
	CentreID       string        `json:"centre_id"`
	EffectifActuel int           `json:"effectif_actuel"`
	TaskCodes      []string      `json:"task_codes,omitempty"`
}

// Centre groups posts under a direction
type Centre struct {
	ID          string `json:"id"`
	Label       string `json:"label"`
	Classe      Classe `json:"classe"` // current nominal class
	DirectionID string `json:"direction_id"`
}

// Direction groups centres under the national level
type Direction struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

// Hierarchy is the organizational tree a simulation runs over
type Hierarchy struct {
	Posts      []Post      `json:"posts"`
	Centres    []Centre    `json:"centres"`
	Directions []Direction `json:"directions"`
}

// Decision is the qualitative staffing verdict derived from the load ratio.
// It is independent of the raw ecart sign and must never be collapsed into it.
type Decision string

const (
	DecisionRecruter   Decision = "Recruter"
	DecisionSurveiller Decision = "Surveiller"
	DecisionOptimiser  Decision = "Optimiser"
	DecisionMaintenir  Decision = "Maintenir"
)

// SimulationResult holds the sizing figures for one owner (post, centre,
// direction or nation). Undefined marks a ZeroCapacity owner whose
// etp_calcule could not be derived; such a result is never coerced to 0.
type SimulationResult struct {
	OwnerID        string        `json:"owner_id"`
	Label          string        `json:"label"`
	Scope          Scope         `json:"scope"`
	Categorie      LaborCategory `json:"categorie,omitempty"`
	TotalHeures    float64       `json:"total_heures"`
	EtpCalcule     float64       `json:"etp_calcule"`
	EtpArrondi     int           `json:"etp_arrondi"`
	EffectifActuel int           `json:"effectif_actuel"`
	Ecart          int           `json:"ecart"`
	Decision       Decision      `json:"decision"`
	Ratio          *float64      `json:"ratio,omitempty"` // nil when effectif_actuel is 0
	Undefined      bool          `json:"undefined,omitempty"`
}
