// Package instance - configuration and assembled-record types.
package instance

import "github.com/slslab/slsgen/sampling"

// Traffic directions assigned to ships by the prefix split.
const (
	// Downstream is the direction of ships with index below the split.
	Downstream = 1
	// Upstream is the direction of ships with index at or above the split.
	Upstream = -1
)

// DefaultHorizonMinutes is the fixed planning horizon: a full day.
const DefaultHorizonMinutes = 1440

// segmentUnitDivisorCM converts a lock footprint (centimeters) into the
// segment axis unit (meters) when spacing consecutive segments.
const segmentUnitDivisorCM = 100

// Config holds every generation parameter. It is a plain value, never
// mutated by the pipeline; build one with DefaultConfig and adjust fields.
//
// Counts must satisfy NLocks ≥ 1, ShipCount ≥ 1, ChambersPerLock ≥ 1
// (checked by Validate before any draw). Ranges are NOT validated here:
// a range with Lo > Hi surfaces as sampling.ErrInvalidRange from the first
// stage that consumes it.
type Config struct {
	// Mode flags echoed into the instance record for the consumer.
	IsMaster        bool
	IsExtObj        bool
	IsSophisticated bool
	IsFCFS          bool

	// Topology.
	NLocks          int
	ChambersPerLock int

	// Segment geometry (meters).
	SegmentLengthMRange sampling.Range

	// Ships (centimeters).
	ShipCount             int
	ShipDistributionRange sampling.Range
	ShipLengthCMRange     sampling.Range
	ShipWidthCMRange      sampling.Range

	// Chambers (usable dimensions, centimeters).
	ChamberLengthCMRange sampling.Range
	ChamberWidthCMRange  sampling.Range
	// AutoScaleChambers ratchets chamber dimensions up until every ship
	// fits into every chamber of every lock.
	AutoScaleChambers bool

	// Lock operations (minutes).
	FillTimeRange  sampling.Range
	EmptyTimeRange sampling.Range

	// Segment transit (speeds in km/h, durations in minutes).
	SpeedUpRange   sampling.Range
	SpeedDownRange sampling.Range
	DurationFactor int

	// Misc.
	BufferTimeMin      int
	SecurityDistanceCM int
	// EtaRange is the interval between consecutive arrivals from the same side.
	EtaRange    sampling.Range
	DelayWeight int
	WaitWeight  int
	// AdaptiveHorizon derives the horizon from the synthesized durations
	// instead of the fixed DefaultHorizonMinutes constant.
	AdaptiveHorizon bool
	Seed            int64
}

// DefaultConfig returns the reference parameter set: two locks with two
// chambers each, six ships split evenly over both directions, and the
// standard geometry/timing ranges.
func DefaultConfig() Config {
	return Config{
		IsMaster:        true,
		IsExtObj:        false,
		IsSophisticated: true,
		IsFCFS:          false,

		NLocks:          2,
		ChambersPerLock: 2,

		SegmentLengthMRange: sampling.NewRange(12000, 30000),

		ShipCount:             6,
		ShipDistributionRange: sampling.NewRange(50, 50),
		ShipLengthCMRange:     sampling.NewRange(7000, 11000), // 70-110 m
		ShipWidthCMRange:      sampling.NewRange(950, 1700),   // 9.5-17.0 m

		ChamberLengthCMRange: sampling.NewRange(9000, 14000),
		ChamberWidthCMRange:  sampling.NewRange(1100, 2400),
		AutoScaleChambers:    true,

		FillTimeRange:  sampling.NewRange(8, 14),
		EmptyTimeRange: sampling.NewRange(8, 14),

		SpeedUpRange:   sampling.NewRange(8, 12),
		SpeedDownRange: sampling.NewRange(15, 20),
		DurationFactor: 2,

		BufferTimeMin:      3,
		SecurityDistanceCM: 200,
		EtaRange:           sampling.NewRange(5, 10),
		DelayWeight:        1000,
		WaitWeight:         10,
		AdaptiveHorizon:    false,
		Seed:               42,
	}
}

// NSegments returns the segment count, always NLocks+1.
func (c Config) NSegments() int {
	return c.NLocks + 1
}

// Validate rejects count parameters the pipeline cannot work with.
// Called by Generate before any randomness is consumed, so an invalid
// Config never produces a partial instance.
func (c Config) Validate() error {
	if c.NLocks < 1 {
		return ErrNoLocks
	}
	if c.ShipCount < 1 {
		return ErrNoShips
	}
	if c.ChambersPerLock < 1 {
		return ErrNoChambers
	}
	return nil
}

// Chambers holds per-lock chamber geometry and timing. All four matrices
// have shape [NLocks][ChambersPerLock]. LockLengths has NLocks+1 entries:
// LockLengths[l] is lock l's footprint (max chamber length within it), and
// the final entry is the zero-length pseudo-lock after the last segment.
type Chambers struct {
	Lengths     [][]int
	Widths      [][]int
	FillTimes   [][]int
	EmptyTimes  [][]int
	LockLengths []int
}

// Segments holds the left/right boundary of every navigable segment along
// the shared axis, NLocks+1 entries each, in meters.
type Segments struct {
	Left  []int
	Right []int
}

// Enum wraps a name as the single-field tagged record {"e": name} the
// consuming scheduler expects for its enumerated name lists.
type Enum struct {
	E string `json:"e"`
}

// Instance is the fully assembled problem record. Field order matches the
// output schema; the struct is immutable once returned by Generate.
//
// Shapes the consumer depends on: chamber matrices have NLocks outer
// entries, segment-indexed arrays NLocks+1, ship-indexed arrays ShipCount.
type Instance struct {
	IsMaster        bool `json:"isMaster"`
	IsSophisticated bool `json:"isSophisticated"`
	IsFCFS          bool `json:"isFCFS"`
	IsExtObj        bool `json:"isExtObj"`
	IsLaTeX         bool `json:"isLaTeX"`
	IsJSON          bool `json:"isJSON"`

	RawMaxHorizon       int `json:"rawMaxHorizon"`
	RawBufferTime       int `json:"rawBufferTime"`
	RawSecurityDistance int `json:"rawSecurityDistance"`

	Locations         []Enum `json:"locations"`
	Segments          []Enum `json:"segments"`
	RawLeftPositions  []int  `json:"rawLeftPositions"`
	RawRightPositions []int  `json:"rawRightPositions"`

	Locks                []Enum  `json:"locks"`
	NumOfChambers        int     `json:"numOfChambers"`
	MaxNumOfLockings     int     `json:"maxNumOfLockings"`
	RawLengthsOfChambers [][]int `json:"rawLengthsOfChambers"`
	RawWidthsOfChambers  [][]int `json:"rawWidthsOfChambers"`
	RawTimesForFilling   [][]int `json:"rawTimesForFilling"`
	RawTimesForEmptying  [][]int `json:"rawTimesForEmptying"`

	Ships                   []Enum         `json:"ships"`
	Directions              []int          `json:"directions"`
	RawLengthsOfShips       []int          `json:"rawLengthsOfShips"`
	RawWidthsOfShips        []int          `json:"rawWidthsOfShips"`
	RawDurationsForEntering [][]int        `json:"rawDurationsForEntering"`
	RawDurationsForLeaving  [][]int        `json:"rawDurationsForLeaving"`
	RawEtas                 []int          `json:"rawEtas"`
	EtaRange                sampling.Range `json:"etaRange"`
	RawMinDurs              [][]int        `json:"rawMinDurs"`
	RawMaxDurs              [][]int        `json:"rawMaxDurs"`

	MaxDelayWeight       int `json:"maxDelayWeight"`
	MaxWaitingTimeWeight int `json:"maxWaitingTimeWeight"`

	ShipDistributionRange sampling.Range `json:"shipDistributionRange"`
	ShipLengthCMRange     sampling.Range `json:"shipLengthCMRange"`
	ShipWidthCMRange      sampling.Range `json:"shipWidthCMRange"`
	Seed                  int64          `json:"seed"`
}
