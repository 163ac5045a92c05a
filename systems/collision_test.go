package systems

import (
	"testing"

	"github.com/lixenwraith/road-fighter/components"
	"github.com/lixenwraith/road-fighter/engine"
)

// TestEnemyDestroyedByProjectile verifies an overlapping projectile scores and removes both
func TestEnemyDestroyedByProjectile(t *testing.T) {
	sim, gs := newTestSimulation(t)
	gs.Enemies = []components.Enemy{{NX: 0.5, Y: 300}}
	gs.Projectiles = []components.Projectile{{X: 400, Y: 305, NX: 0.5}}

	res := sim.Tick(1)

	if res.Score != 10 {
		t.Errorf("Expected score 10, got %d", res.Score)
	}
	if len(gs.Enemies) != 0 || len(gs.Projectiles) != 0 {
		t.Errorf("Expected both removed, got %d enemies %d projectiles", len(gs.Enemies), len(gs.Projectiles))
	}
	if hasEvent(res.Events, engine.EventEnemyDestroyed) != 1 {
		t.Errorf("Expected one EnemyDestroyed event, got %+v", res.Events)
	}
}

// TestEnemyConsumesSingleProjectile verifies only the first overlapping projectile is spent
func TestEnemyConsumesSingleProjectile(t *testing.T) {
	sim, gs := newTestSimulation(t)
	gs.Enemies = []components.Enemy{{NX: 0.5, Y: 300}}
	gs.Projectiles = []components.Projectile{
		{X: 400, Y: 305, NX: 0.5},
		{X: 400, Y: 306, NX: 0.5},
	}

	sim.Tick(1)

	if len(gs.Projectiles) != 1 {
		t.Errorf("Expected 1 projectile left, got %d", len(gs.Projectiles))
	}
	if gs.Score != 10 {
		t.Errorf("Expected score 10, got %d", gs.Score)
	}
}

// TestEnemyContactCostsOneInstance verifies formation contact removes the enemy and one instance
func TestEnemyContactCostsOneInstance(t *testing.T) {
	sim, gs := newTestSimulation(t)
	gs.Instances = 3
	gs.Enemies = []components.Enemy{{NX: 0.5, Y: 515}}

	res := sim.Tick(1)

	if res.Instances != 2 {
		t.Errorf("Expected 2 instances, got %d", res.Instances)
	}
	if len(gs.Enemies) != 0 {
		t.Error("Expected enemy removed")
	}
	if res.Score != 0 {
		t.Errorf("Contact must not score, got %d", res.Score)
	}
}

// TestShotEnemyNeverHurtsFormation verifies projectile hits take precedence over contact
func TestShotEnemyNeverHurtsFormation(t *testing.T) {
	sim, gs := newTestSimulation(t)
	gs.Enemies = []components.Enemy{{NX: 0.5, Y: 515}}
	gs.Projectiles = []components.Projectile{{X: 400, Y: 522, NX: 0.5}}

	res := sim.Tick(1)

	if res.Instances != 1 || res.Score != 10 {
		t.Errorf("Expected 1 instance and score 10, got %d and %d", res.Instances, res.Score)
	}
}

// TestBossDefeatedAfterHealthHits verifies health 3 takes three ticks and scores exactly once
func TestBossDefeatedAfterHealthHits(t *testing.T) {
	sim, gs := newTestSimulation(t)
	gs.Bosses = []components.Boss{{NX: 0.5, Y: 200, Health: 3}}
	gs.Projectiles = []components.Projectile{
		{X: 400, Y: 205, NX: 0.5},
		{X: 400, Y: 215, NX: 0.5},
		{X: 400, Y: 225, NX: 0.5},
	}

	var events []engine.Event
	for tick := 1; tick <= 3; tick++ {
		res := sim.Tick(1)
		events = append(events, res.Events...)

		if tick < 3 {
			if len(gs.Bosses) != 1 || gs.Bosses[0].Health != 3-tick {
				t.Fatalf("Tick %d: expected boss with health %d, got %+v", tick, 3-tick, gs.Bosses)
			}
			if res.Score != 0 {
				t.Fatalf("Tick %d: expected no score yet, got %d", tick, res.Score)
			}
		}
	}

	if len(gs.Bosses) != 0 {
		t.Error("Expected boss removed")
	}
	if gs.Score != 50 {
		t.Errorf("Expected score 50, got %d", gs.Score)
	}
	if hasEvent(events, engine.EventBossDestroyed) != 1 || hasEvent(events, engine.EventBossHit) != 2 {
		t.Errorf("Unexpected event mix %+v", events)
	}

	// No further score from leftovers
	sim.Tick(1)
	if gs.Score != 50 {
		t.Errorf("Expected score to stay 50, got %d", gs.Score)
	}
}

// TestBossContactCostsRemainingHealth verifies contact subtracts full health, flooring at zero
func TestBossContactCostsRemainingHealth(t *testing.T) {
	sim, gs := newTestSimulation(t)
	gs.Instances = 4
	gs.Bosses = []components.Boss{{NX: 0.5, Y: 520, Health: 10}}

	res := sim.Tick(1)

	if res.Instances != 0 {
		t.Errorf("Expected 0 instances, got %d", res.Instances)
	}
	if !res.GameOver || !gs.IsGameOver() {
		t.Error("Expected game over")
	}
	if hasEvent(res.Events, engine.EventGameOver) != 1 {
		t.Errorf("Expected exactly one GameOver event, got %+v", res.Events)
	}
}

// TestWoundedBossContact verifies a boss surviving a hit still collides with its reduced health
func TestWoundedBossContact(t *testing.T) {
	sim, gs := newTestSimulation(t)
	gs.Instances = 10
	gs.Bosses = []components.Boss{{NX: 0.5, Y: 520, Health: 4}}
	gs.Projectiles = []components.Projectile{{X: 400, Y: 527, NX: 0.5}}

	res := sim.Tick(1)

	if res.Instances != 7 {
		t.Errorf("Expected 10 - 3 = 7 instances, got %d", res.Instances)
	}
	if len(gs.Bosses) != 0 {
		t.Error("Expected boss removed after contact")
	}
}

// TestNegativePowerupKeepsOneInstance verifies a pickup never drops the formation below one
func TestNegativePowerupKeepsOneInstance(t *testing.T) {
	sim, gs := newTestSimulation(t)
	gs.Powerups = []components.Powerup{{NX: 0.5, Y: 515, Value: -5}}

	res := sim.Tick(1)

	if res.Instances != 1 {
		t.Errorf("Expected 1 instance, got %d", res.Instances)
	}
	if len(gs.Powerups) != 0 {
		t.Error("Expected powerup removed")
	}
	if res.GameOver {
		t.Error("Pickup must not end the run")
	}
}

func TestPositivePowerupGrowsFormation(t *testing.T) {
	sim, gs := newTestSimulation(t)
	gs.Powerups = []components.Powerup{{NX: 0.5, Y: 515, Value: 4}}

	res := sim.Tick(1)

	if res.Instances != 5 {
		t.Errorf("Expected 5 instances, got %d", res.Instances)
	}
	if hasEvent(res.Events, engine.EventPowerupCollected) != 1 {
		t.Errorf("Expected PowerupCollected event, got %+v", res.Events)
	}
}

// TestResolutionStopsAfterGameOver verifies later entities are not resolved once the run ends
func TestResolutionStopsAfterGameOver(t *testing.T) {
	sim, gs := newTestSimulation(t)
	gs.Bosses = []components.Boss{{NX: 0.5, Y: 520, Health: 5}}
	gs.Powerups = []components.Powerup{{NX: 0.5, Y: 515, Value: 5}}

	res := sim.Tick(1)

	if !res.GameOver || res.Instances != 0 {
		t.Fatalf("Expected game over, got %+v", res)
	}
	if len(gs.Powerups) != 1 {
		t.Error("Expected powerup left unresolved after game over")
	}
}

// TestResolverDirectCalls exercises the collection-level entry points without movement
func TestResolverDirectCalls(t *testing.T) {
	gs := engine.NewGameState(engine.DefaultConfig())
	r := NewCollisionResolver()

	gs.Projectiles = []components.Projectile{{X: 400, Y: 300, NX: 0.5}}
	gs.Enemies = []components.Enemy{{NX: 0.5, Y: 300}, {NX: 0.1, Y: 150}}
	gs.Bosses = []components.Boss{{NX: 0.9, Y: 150, Health: 2}}
	gs.Powerups = []components.Powerup{{NX: 0.5, Y: 520, Value: 2}}

	r.ResolveEnemies(gs)
	r.ResolveBosses(gs)
	r.ResolvePowerups(gs)

	if !gs.Enemies[0].Dead || gs.Enemies[1].Dead {
		t.Errorf("Unexpected enemy states %+v", gs.Enemies)
	}
	if gs.Bosses[0].Dead || gs.Bosses[0].Health != 2 {
		t.Errorf("Boss should be untouched, got %+v", gs.Bosses[0])
	}
	if !gs.Powerups[0].Dead || gs.Instances != 3 {
		t.Errorf("Expected pickup applied, got instances %d", gs.Instances)
	}
}
