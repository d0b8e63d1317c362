package instance_test

import (
	"encoding/json"
	"testing"

	"github.com/slslab/slsgen/compactjson"
	"github.com/slslab/slsgen/instance"
	"github.com/slslab/slsgen/sampling"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestGenerate_ConfigValidation rejects bad counts before any generation.
func TestGenerate_ConfigValidation(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*instance.Config)
		want   error
	}{
		{"no locks", func(c *instance.Config) { c.NLocks = 0 }, instance.ErrNoLocks},
		{"no ships", func(c *instance.Config) { c.ShipCount = 0 }, instance.ErrNoShips},
		{"no chambers", func(c *instance.Config) { c.ChambersPerLock = 0 }, instance.ErrNoChambers},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := instance.DefaultConfig()
			tc.mutate(&cfg)
			inst, err := instance.Generate(cfg)
			assert.ErrorIs(t, err, tc.want)
			assert.Nil(t, inst, "no partial instance on error")
		})
	}
}

// TestGenerate_MalformedRangeSurfacesLazily confirms ranges are not
// validated up front: generation starts and fails at the consuming stage.
func TestGenerate_MalformedRangeSurfacesLazily(t *testing.T) {
	cfg := scenarioConfig()
	cfg.ShipLengthCMRange = sampling.NewRange(11000, 7000)

	inst, err := instance.Generate(cfg)
	assert.ErrorIs(t, err, sampling.ErrInvalidRange)
	assert.Nil(t, inst)
}

// TestGenerate_Shapes verifies every consumer-visible array shape.
func TestGenerate_Shapes(t *testing.T) {
	cfg := scenarioConfig()

	inst, err := instance.Generate(cfg)
	require.NoError(t, err)

	assert.Len(t, inst.Locations, 2)
	assert.Len(t, inst.Locks, cfg.NLocks)
	assert.Len(t, inst.Segments, cfg.NSegments())
	assert.Len(t, inst.Ships, cfg.ShipCount)
	assert.Equal(t, instance.Enum{E: "LOCK-1"}, inst.Locks[0])
	assert.Equal(t, instance.Enum{E: "SEG-3"}, inst.Segments[2])
	assert.Equal(t, instance.Enum{E: "SHIP-1"}, inst.Ships[0])

	assert.Len(t, inst.RawLeftPositions, cfg.NSegments())
	assert.Len(t, inst.RawRightPositions, cfg.NSegments())

	require.Len(t, inst.RawLengthsOfChambers, cfg.NLocks)
	for l := range inst.RawLengthsOfChambers {
		assert.Len(t, inst.RawLengthsOfChambers[l], cfg.ChambersPerLock)
		assert.Len(t, inst.RawWidthsOfChambers[l], cfg.ChambersPerLock)
		assert.Len(t, inst.RawTimesForFilling[l], cfg.ChambersPerLock)
		assert.Len(t, inst.RawTimesForEmptying[l], cfg.ChambersPerLock)
	}

	assert.Len(t, inst.Directions, cfg.ShipCount)
	assert.Len(t, inst.RawLengthsOfShips, cfg.ShipCount)
	assert.Len(t, inst.RawWidthsOfShips, cfg.ShipCount)
	assert.Len(t, inst.RawEtas, cfg.ShipCount)
	require.Len(t, inst.RawDurationsForEntering, cfg.ShipCount)
	require.Len(t, inst.RawMinDurs, cfg.ShipCount)
	for s := 0; s < cfg.ShipCount; s++ {
		assert.Len(t, inst.RawDurationsForEntering[s], cfg.NLocks)
		assert.Len(t, inst.RawDurationsForLeaving[s], cfg.NLocks)
		assert.Len(t, inst.RawMinDurs[s], cfg.NSegments())
		assert.Len(t, inst.RawMaxDurs[s], cfg.NSegments())
	}

	assert.Equal(t, cfg.ChambersPerLock, inst.NumOfChambers)
	assert.Equal(t, cfg.ShipCount+5, inst.MaxNumOfLockings)
	assert.Equal(t, cfg.EtaRange, inst.EtaRange)
	assert.Equal(t, cfg.ShipDistributionRange, inst.ShipDistributionRange)
	assert.Equal(t, cfg.Seed, inst.Seed)
	assert.False(t, inst.IsLaTeX)
	assert.True(t, inst.IsJSON)
}

// TestGenerate_AutoScaleFitsEveryShip checks invariant 1 end to end.
func TestGenerate_AutoScaleFitsEveryShip(t *testing.T) {
	cfg := scenarioConfig()
	// Chambers sampled smaller than any ship, forcing the ratchet.
	cfg.ChamberLengthCMRange = sampling.NewRange(1000, 2000)
	cfg.ChamberWidthCMRange = sampling.NewRange(100, 200)

	inst, err := instance.Generate(cfg)
	require.NoError(t, err)

	for l := 0; l < cfg.NLocks; l++ {
		for c := 0; c < cfg.ChambersPerLock; c++ {
			for s := 0; s < cfg.ShipCount; s++ {
				assert.GreaterOrEqual(t, inst.RawLengthsOfChambers[l][c],
					inst.RawLengthsOfShips[s]+cfg.SecurityDistanceCM)
				assert.GreaterOrEqual(t, inst.RawWidthsOfChambers[l][c],
					inst.RawWidthsOfShips[s])
			}
		}
	}
}

// TestGenerate_HorizonFixed pins the default horizon to 1440 regardless of
// ship count, durations, or seed.
func TestGenerate_HorizonFixed(t *testing.T) {
	for _, seed := range []int64{1, 42, 123, 999} {
		cfg := instance.DefaultConfig()
		cfg.Seed = seed
		cfg.ShipCount = int(seed%7) + 1

		inst, err := instance.Generate(cfg)
		require.NoError(t, err)
		assert.Equal(t, instance.DefaultHorizonMinutes, inst.RawMaxHorizon)
	}
}

// TestGenerate_AdaptiveHorizon exercises the alternative policy: the
// horizon must cover the latest arrival, the longest route, and the
// per-lock overhead, and exceed zero slack.
func TestGenerate_AdaptiveHorizon(t *testing.T) {
	cfg := scenarioConfig()
	cfg.AdaptiveHorizon = true

	inst, err := instance.Generate(cfg)
	require.NoError(t, err)

	var longestRoute int
	for _, row := range inst.RawMaxDurs {
		total := 0
		for _, d := range row {
			total += d
		}
		if total > longestRoute {
			longestRoute = total
		}
	}
	for _, eta := range inst.RawEtas {
		assert.Greater(t, inst.RawMaxHorizon, eta+longestRoute)
	}
	assert.Greater(t, inst.RawMaxHorizon, 120)
}

// TestGenerate_Deterministic runs the full pipeline twice with one Config
// and requires bit-identical instances.
func TestGenerate_Deterministic(t *testing.T) {
	cfg := scenarioConfig()

	a, err := instance.Generate(cfg)
	require.NoError(t, err)
	b, err := instance.Generate(cfg)
	require.NoError(t, err)

	assert.Equal(t, a, b)

	// And the serialized bytes match too.
	ja, err := compactjson.Marshal(a)
	require.NoError(t, err)
	jb, err := compactjson.Marshal(b)
	require.NoError(t, err)
	assert.Equal(t, ja, jb)
}

// TestGenerate_ScenarioReproducible is the reference scenario: locks=2,
// chambers=2, ships=3, seed=123 reproduces the same ship lengths, split,
// and horizon across repeated runs.
func TestGenerate_ScenarioReproducible(t *testing.T) {
	cfg := scenarioConfig()

	first, err := instance.Generate(cfg)
	require.NoError(t, err)

	split, err := sampling.SplitIndex(cfg.ShipDistributionRange, cfg.ShipCount)
	require.NoError(t, err)

	for i := 0; i < 5; i++ {
		inst, err := instance.Generate(cfg)
		require.NoError(t, err)

		assert.Equal(t, first.RawLengthsOfShips, inst.RawLengthsOfShips)
		assert.Equal(t, first.Directions, inst.Directions)
		down := 0
		for _, d := range inst.Directions {
			if d == instance.Downstream {
				down++
			}
		}
		assert.Equal(t, split, down)
		assert.Equal(t, instance.DefaultHorizonMinutes, inst.RawMaxHorizon)
	}
}

// TestInstance_SerializationRoundTrip serializes through the formatter and
// parses back: every value must survive exactly.
func TestInstance_SerializationRoundTrip(t *testing.T) {
	cfg := scenarioConfig()

	inst, err := instance.Generate(cfg)
	require.NoError(t, err)

	out, err := compactjson.Marshal(inst)
	require.NoError(t, err)

	var back instance.Instance
	require.NoError(t, json.Unmarshal(out, &back))
	assert.Equal(t, *inst, back)
}

// TestInstance_FieldNames pins the wire names the consumer depends on.
func TestInstance_FieldNames(t *testing.T) {
	cfg := scenarioConfig()

	inst, err := instance.Generate(cfg)
	require.NoError(t, err)

	raw, err := json.Marshal(inst)
	require.NoError(t, err)

	var fields map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(raw, &fields))

	for _, name := range []string{
		"isMaster", "isSophisticated", "isFCFS", "isExtObj", "isLaTeX", "isJSON",
		"rawMaxHorizon", "rawBufferTime", "rawSecurityDistance",
		"locations", "segments", "rawLeftPositions", "rawRightPositions",
		"locks", "numOfChambers", "maxNumOfLockings",
		"rawLengthsOfChambers", "rawWidthsOfChambers",
		"rawTimesForFilling", "rawTimesForEmptying",
		"ships", "directions", "rawLengthsOfShips", "rawWidthsOfShips",
		"rawDurationsForEntering", "rawDurationsForLeaving",
		"rawEtas", "etaRange", "rawMinDurs", "rawMaxDurs",
		"maxDelayWeight", "maxWaitingTimeWeight",
		"shipDistributionRange", "shipLengthCMRange", "shipWidthCMRange", "seed",
	} {
		assert.Contains(t, fields, name)
	}
	assert.Len(t, fields, 36)
}
