package engine_test

import (
	"errors"
	"testing"

	"dronefleet/internal/core/application/engine"
	"dronefleet/internal/core/domain/model/drone"
	"dronefleet/internal/core/domain/model/mission"
	"dronefleet/internal/core/ports"
	"dronefleet/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func droneRecord(id int, model string, maxPayload float64) ports.ScenarioRecord {
	return ports.ScenarioRecord{Kind: ports.DroneRecord, ID: id, Model: model, MaxPayload: maxPayload}
}

func parcelRecord(id int, weight float64, destination string) ports.ScenarioRecord {
	return ports.ScenarioRecord{Kind: ports.ParcelRecord, ID: id, Weight: weight, Destination: destination}
}

func newLoadedEngine(t *testing.T, records ...ports.ScenarioRecord) *engine.Engine {
	t.Helper()
	for i := range records {
		records[i].Line = i + 1
	}
	e := engine.New(engine.DefaultPolicy(), nil)
	_, err := e.Load(records)
	require.NoError(t, err)
	return e
}

func drainNotifications(e *engine.Engine) []string {
	var out []string
	for {
		message, ok := e.PopNotification()
		if !ok {
			return out
		}
		out = append(out, message)
	}
}

func assertInvariants(t *testing.T, e *engine.Engine) {
	t.Helper()
	for _, d := range e.Drones() {
		require.NoError(t, d.Validate())
		cargo := d.Cargo()
		if d.Status() == drone.Flying {
			require.NotNil(t, cargo)
			assert.False(t, cargo.Weight.Exceeds(d.MaxPayload()))
		} else {
			assert.Nil(t, cargo)
		}
	}
	for _, m := range e.ActiveMissions() {
		assert.NotEqual(t, mission.Completed, m.Status())
	}
	for _, m := range e.CompletedMissions() {
		assert.Equal(t, mission.Completed, m.Status())
	}
}

func TestEngine_Load(t *testing.T) {
	t.Run("should build fleet, queue and archive in record order", func(t *testing.T) {
		e := engine.New(engine.DefaultPolicy(), nil)
		before := e.Generation()

		report, err := e.Load([]ports.ScenarioRecord{
			droneRecord(1, "Falcon", 2.0),
			parcelRecord(10, 1.0, "12 Main St"),
			droneRecord(2, "Hawk", 5.0),
			parcelRecord(11, 0.5, "3 Oak Ave"),
		})

		require.NoError(t, err)
		assert.Equal(t, 2, report.Drones)
		assert.Equal(t, 2, report.Parcels)
		assert.False(t, report.Generation.IsEqual(before))
		assert.True(t, report.Generation.IsEqual(e.Generation()))
		assert.Equal(t, "Scenario loaded: 2 drones and 2 packages", report.String())

		drones := e.Drones()
		require.Len(t, drones, 2)
		assert.Equal(t, 1, drones[0].ID().Value())
		assert.Equal(t, 2, drones[1].ID().Value())

		pending := e.Pending()
		require.Len(t, pending, 2)
		assert.Equal(t, 10, pending[0].ID().Value())
		assert.Equal(t, 11, pending[1].ID().Value())
	})

	t.Run("should replace the previous scenario entirely", func(t *testing.T) {
		e := newLoadedEngine(t, droneRecord(1, "Falcon", 2.0), parcelRecord(10, 1.0, "A"))
		e.PlanMissions()
		e.LaunchNextMission()
		e.CompleteCurrentMission()

		_, err := e.Load([]ports.ScenarioRecord{droneRecord(7, "Kite", 1.0)})

		require.NoError(t, err)
		assert.Len(t, e.Drones(), 1)
		assert.Empty(t, e.Pending())
		assert.Empty(t, e.ActiveMissions())
		assert.Empty(t, e.CompletedMissions())
		_, err = e.LookupPackage(10)
		require.ErrorIs(t, err, errs.ErrObjectNotFound)
	})

	t.Run("should keep notifications across loads", func(t *testing.T) {
		e := newLoadedEngine(t, parcelRecord(10, 1.0, "A"))
		e.PlanMissions()

		_, err := e.Load(nil)

		require.NoError(t, err)
		message, ok := e.PopNotification()
		assert.True(t, ok)
		assert.Equal(t, "No drone available for package #10", message)
	})

	t.Run("should reject a malformed record and keep the previous scenario", func(t *testing.T) {
		e := newLoadedEngine(t, droneRecord(1, "Falcon", 2.0))
		generation := e.Generation()

		_, err := e.Load([]ports.ScenarioRecord{
			{Kind: ports.DroneRecord, Line: 1, ID: 2, Model: "Hawk", MaxPayload: 3.0},
			{Kind: ports.ParcelRecord, Line: 4, ID: 3, Weight: 0, Destination: "X"},
		})

		require.ErrorIs(t, err, engine.ErrMalformedRecord)
		assert.Contains(t, err.Error(), "line 4")
		assert.True(t, generation.IsEqual(e.Generation()))
		require.Len(t, e.Drones(), 1)
		assert.Equal(t, 1, e.Drones()[0].ID().Value())
	})

	t.Run("should reject records of unknown kind", func(t *testing.T) {
		e := engine.New(engine.DefaultPolicy(), nil)

		_, err := e.Load([]ports.ScenarioRecord{{Line: 1, ID: 1}})

		require.ErrorIs(t, err, engine.ErrMalformedRecord)
	})

	t.Run("should reject a blank destination", func(t *testing.T) {
		e := engine.New(engine.DefaultPolicy(), nil)

		_, err := e.Load([]ports.ScenarioRecord{parcelRecord(1, 1.0, "  ")})

		require.ErrorIs(t, err, engine.ErrMalformedRecord)
	})
}

func TestEngine_PlanMissions(t *testing.T) {
	t.Run("should skip oversized parcels and keep planning", func(t *testing.T) {
		e := newLoadedEngine(t,
			droneRecord(1, "Falcon", 2.0),
			parcelRecord(10, 3.0, "A"),
			parcelRecord(11, 1.0, "B"),
		)

		report := e.PlanMissions()

		assert.Equal(t, engine.PlanReport{PendingBefore: 2, Planned: 1, Rejected: 1, PendingAfter: 0}, report)
		assert.Empty(t, e.Pending())
		active := e.ActiveMissions()
		require.Len(t, active, 1)
		assert.Equal(t, 1, active[0].DroneID().Value())
		assert.Equal(t, 11, active[0].ParcelID().Value())
		assert.Equal(t, mission.Planned, active[0].Status())
		assert.Equal(t, []string{
			"Mission planned for package #11",
			"Package #10 too heavy (> 2.0 kg)",
		}, drainNotifications(e))
		assertInvariants(t, e)
	})

	t.Run("should stop at the first parcel no drone can take", func(t *testing.T) {
		e := newLoadedEngine(t,
			droneRecord(1, "Falcon", 1.0),
			parcelRecord(10, 1.5, "A"),
			parcelRecord(11, 0.5, "B"),
		)

		report := e.PlanMissions()

		assert.Equal(t, engine.PlanReport{PendingBefore: 2, Planned: 0, Rejected: 0, PendingAfter: 2}, report)
		assert.Empty(t, e.ActiveMissions())
		pending := e.Pending()
		require.Len(t, pending, 2)
		assert.Equal(t, 10, pending[0].ID().Value())
		assert.Equal(t, []string{"No drone available for package #10"}, drainNotifications(e))
		assert.True(t, e.Drones()[0].IsAvailable())
	})

	t.Run("should stop when every drone is flying", func(t *testing.T) {
		e := newLoadedEngine(t,
			droneRecord(1, "Falcon", 2.0),
			parcelRecord(10, 1.0, "A"),
			parcelRecord(11, 1.0, "B"),
			parcelRecord(12, 9.0, "C"),
		)

		report := e.PlanMissions()

		assert.Equal(t, 1, report.Planned)
		assert.Equal(t, 0, report.Rejected, "oversized parcels behind the blocked one are not examined")
		assert.Equal(t, 2, report.PendingAfter)
	})

	t.Run("should assign the first fitting drone in fleet order", func(t *testing.T) {
		e := newLoadedEngine(t,
			droneRecord(1, "Small", 0.5),
			droneRecord(2, "Medium", 2.0),
			droneRecord(3, "Large", 2.0),
			parcelRecord(10, 1.0, "A"),
			parcelRecord(11, 0.4, "B"),
		)

		e.PlanMissions()

		active := e.ActiveMissions()
		require.Len(t, active, 2)
		assert.Equal(t, 2, active[0].DroneID().Value())
		assert.Equal(t, 1, active[1].DroneID().Value())
		assertInvariants(t, e)
	})

	t.Run("should use the configured ceiling", func(t *testing.T) {
		policy, err := engine.NewPolicy(5.0)
		require.NoError(t, err)
		e := engine.New(policy, nil)
		_, err = e.Load([]ports.ScenarioRecord{droneRecord(1, "Heavy", 10.0), parcelRecord(10, 4.0, "A")})
		require.NoError(t, err)

		report := e.PlanMissions()

		assert.Equal(t, 1, report.Planned)
	})

	t.Run("should accept a parcel exactly at the ceiling", func(t *testing.T) {
		e := newLoadedEngine(t, droneRecord(1, "Falcon", 2.0), parcelRecord(10, 2.0, "A"))

		report := e.PlanMissions()

		assert.Equal(t, 1, report.Planned)
	})

	t.Run("should do nothing on an empty queue", func(t *testing.T) {
		e := newLoadedEngine(t, droneRecord(1, "Falcon", 2.0))

		report := e.PlanMissions()

		assert.Equal(t, engine.PlanReport{}, report)
		assert.Empty(t, drainNotifications(e))
	})
}

func TestEngine_LaunchNextMission(t *testing.T) {
	t.Run("should report when nothing is planned", func(t *testing.T) {
		e := newLoadedEngine(t, droneRecord(1, "Falcon", 2.0))

		outcome := e.LaunchNextMission()

		assert.False(t, outcome.Applied)
		assert.Equal(t, "No planned mission to launch.", outcome.Message)
		assert.Equal(t, []string{"No planned mission to launch."}, drainNotifications(e))
	})

	t.Run("should launch only the first planned mission", func(t *testing.T) {
		e := newLoadedEngine(t,
			droneRecord(1, "Falcon", 2.0),
			droneRecord(2, "Hawk", 2.0),
			parcelRecord(10, 1.5, "A"),
			parcelRecord(11, 0.5, "B"),
		)
		e.PlanMissions()
		drainNotifications(e)

		outcome := e.LaunchNextMission()

		assert.True(t, outcome.Applied)
		assert.Equal(t, "Mission launched: drone D1 assigned to package C10 (1.5 kg)", outcome.Message)
		assert.Equal(t, "Mission launched: [Drone #1 → Package #10] State: IN PROGRESS", outcome.Notification)
		active := e.ActiveMissions()
		assert.Equal(t, mission.InProgress, active[0].Status())
		assert.Equal(t, mission.Planned, active[1].Status())

		e.LaunchNextMission()
		assert.Equal(t, mission.InProgress, e.ActiveMissions()[1].Status())
		assert.False(t, e.LaunchNextMission().Applied)
	})
}

func TestEngine_CompleteCurrentMission(t *testing.T) {
	t.Run("should report when nothing is in progress", func(t *testing.T) {
		e := newLoadedEngine(t, droneRecord(1, "Falcon", 2.0), parcelRecord(10, 1.0, "A"))
		e.PlanMissions()
		drainNotifications(e)

		outcome := e.CompleteCurrentMission()

		assert.False(t, outcome.Applied)
		assert.Equal(t, "No mission in progress to complete", outcome.Message)
		require.Len(t, e.ActiveMissions(), 1)
		assert.Equal(t, mission.Planned, e.ActiveMissions()[0].Status())
	})

	t.Run("should deliver and free the drone on round trip", func(t *testing.T) {
		e := newLoadedEngine(t, droneRecord(1, "Falcon", 2.0), parcelRecord(10, 1.0, "A"))

		e.PlanMissions()
		e.LaunchNextMission()
		outcome := e.CompleteCurrentMission()

		assert.True(t, outcome.Applied)
		assert.Equal(t, "Mission completed by drone D1", outcome.Message)
		d := e.Drones()[0]
		assert.True(t, d.IsAvailable())
		assert.Nil(t, d.Cargo())
		assert.Empty(t, e.ActiveMissions())
		completed := e.CompletedMissions()
		require.Len(t, completed, 1)
		assert.Equal(t, mission.Completed, completed[0].Status())
		assert.Equal(t, 10, completed[0].ParcelID().Value())
		assertInvariants(t, e)
	})

	t.Run("should let the freed drone take the next parcel", func(t *testing.T) {
		e := newLoadedEngine(t,
			droneRecord(1, "Falcon", 2.0),
			parcelRecord(10, 1.0, "A"),
			parcelRecord(11, 1.0, "B"),
		)
		e.PlanMissions()
		e.LaunchNextMission()
		e.CompleteCurrentMission()

		report := e.PlanMissions()

		assert.Equal(t, 1, report.Planned)
		assert.Empty(t, e.Pending())
		assertInvariants(t, e)
	})
}

func TestEngine_Queries(t *testing.T) {
	t.Run("should look up archived parcels in any state", func(t *testing.T) {
		e := newLoadedEngine(t, droneRecord(1, "Falcon", 2.0), parcelRecord(10, 1.0, "12 Main St"))
		e.PlanMissions()

		p, err := e.LookupPackage(10)

		require.NoError(t, err)
		assert.Equal(t, "Package ID: 10, weight: 1kg, destination: 12 Main St", p.Description())
	})

	t.Run("should return not found for unknown ids", func(t *testing.T) {
		e := newLoadedEngine(t, parcelRecord(10, 1.0, "A"))

		for _, id := range []int{11, 0, -3} {
			_, err := e.LookupPackage(id)

			require.ErrorIs(t, err, errs.ErrObjectNotFound)
			var notFound *errs.ObjectNotFoundError
			require.True(t, errors.As(err, &notFound))
			assert.Equal(t, id, notFound.ID)
		}
	})

	t.Run("should describe the system", func(t *testing.T) {
		e := newLoadedEngine(t,
			droneRecord(1, "Falcon", 2.0),
			droneRecord(2, "Hawk", 3.5),
			parcelRecord(10, 1.5, "12 Main St"),
			parcelRecord(11, 2.5, "3 Oak Ave"),
			parcelRecord(12, 0.5, "9 Elm Rd"),
		)
		e.PlanMissions()

		description := e.DescribeSystem()

		assert.Equal(t, "Current system state:\n"+
			"drone 1, model Falcon, max payload = 2 kg, state FLYING, package: Package ID: 10, weight: 1.5kg, destination: 12 Main St\n"+
			"drone 2, model Hawk, max payload = 3.5 kg, state FLYING, package: Package ID: 12, weight: 0.5kg, destination: 9 Elm Rd\n"+
			"\nPending packages: 0\n"+
			"Planned missions: 2\n"+
			"Completed missions: 0\n", description)
	})

	t.Run("should count statistics", func(t *testing.T) {
		e := newLoadedEngine(t,
			droneRecord(1, "Falcon", 2.0),
			droneRecord(2, "Hawk", 0.5),
			parcelRecord(10, 1.5, "A"),
			parcelRecord(11, 1.0, "B"),
		)
		e.PlanMissions()
		e.LaunchNextMission()

		stats := e.Statistics()

		assert.Equal(t, engine.Statistics{
			Drones:            2,
			AvailableDrones:   1,
			FlyingDrones:      1,
			ActiveMissions:    1,
			CompletedMissions: 0,
			PendingParcels:    1,
		}, stats)
		assert.Contains(t, stats.String(), "Drones on mission: 1\n")
	})

	t.Run("should return snapshots detached from the engine", func(t *testing.T) {
		e := newLoadedEngine(t, droneRecord(1, "Falcon", 2.0), parcelRecord(10, 1.0, "A"))
		e.PlanMissions()

		e.ActiveMissions()[0].Launch()
		e.Drones()[0].Deliver()

		assert.Equal(t, mission.Planned, e.ActiveMissions()[0].Status())
		assert.False(t, e.Drones()[0].IsAvailable())
	})
}

func TestEngine_PopNotification(t *testing.T) {
	t.Run("should pop newest first and report empty", func(t *testing.T) {
		e := newLoadedEngine(t, droneRecord(1, "Falcon", 2.0), parcelRecord(10, 1.0, "A"))
		e.PlanMissions()
		e.LaunchNextMission()

		first, ok := e.PopNotification()
		require.True(t, ok)
		second, ok := e.PopNotification()
		require.True(t, ok)
		empty, ok := e.PopNotification()

		assert.Equal(t, "Mission launched: [Drone #1 → Package #10] State: IN PROGRESS", first)
		assert.Equal(t, "Mission planned for package #10", second)
		assert.False(t, ok)
		assert.Equal(t, engine.EmptyNotification, empty)
	})
}

func TestEngine_InvariantsHoldOverCommandSequences(t *testing.T) {
	e := newLoadedEngine(t,
		droneRecord(1, "Falcon", 2.0),
		droneRecord(2, "Hawk", 1.0),
		droneRecord(3, "Kite", 0.3),
		parcelRecord(10, 0.8, "A"),
		parcelRecord(11, 2.4, "B"),
		parcelRecord(12, 1.6, "C"),
		parcelRecord(13, 0.2, "D"),
		parcelRecord(14, 1.9, "E"),
		parcelRecord(15, 0.9, "F"),
	)

	commands := []func(){
		func() { e.PlanMissions() },
		func() { e.LaunchNextMission() },
		func() { e.LaunchNextMission() },
		func() { e.CompleteCurrentMission() },
		func() { e.PlanMissions() },
		func() { e.CompleteCurrentMission() },
		func() { e.LaunchNextMission() },
		func() { e.LaunchNextMission() },
		func() { e.CompleteCurrentMission() },
		func() { e.PlanMissions() },
		func() { e.CompleteCurrentMission() },
	}

	previous := 0
	for _, cmd := range commands {
		cmd()
		assertInvariants(t, e)
		completed := len(e.CompletedMissions())
		assert.GreaterOrEqual(t, completed, previous, "the completed log only grows")
		previous = completed
	}
}
