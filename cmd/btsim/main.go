package main

import (
	"log"
	"math/rand"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/kasuganosora/behaviortree"
	"github.com/kasuganosora/behaviortree/config"
	"github.com/kasuganosora/behaviortree/runner"
)

func main() {
	cfgPath := "config.yaml"
	if len(os.Args) > 1 {
		cfgPath = os.Args[1]
	}

	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	// ---- Logger ----
	var logger *zap.Logger
	var logErr error
	if cfg.Sim.Debug {
		logger, logErr = zap.NewDevelopment()
	} else {
		logger, logErr = zap.NewProduction()
	}
	if logErr != nil {
		log.Fatalf("logger: %v", logErr)
	}
	defer logger.Sync()

	seed := cfg.Sim.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	cfg.Sim.Seed = seed
	logger.Info("simulation starting",
		zap.Int64("seed", seed),
		zap.Int("tick_ms", cfg.Sim.TickMs),
		zap.Int("duration_s", cfg.Sim.DurationS))

	n := &npc{
		hp:         100,
		playerX:    8,
		playerY:    3,
		sightRange: cfg.NPC.SightRange,
		fleeHP:     cfg.NPC.FleeHP,
		rng:        rand.New(rand.NewSource(seed)),
		logger:     logger,
	}

	r := runner.New(logger)
	defer r.Stop()
	r.Add("npc", buildTree(cfg, n), time.Duration(cfg.Sim.TickMs)*time.Millisecond)

	time.Sleep(time.Duration(cfg.Sim.DurationS) * time.Second)
	logger.Info("simulation finished", zap.Int("npc_hp", n.hp))
}

// buildTree assembles the demo decision tree:
//
//	Sequence
//	├─ Succeeder(world step)          advance the toy world, never gate on it
//	└─ Selector
//	   ├─ flee when hurt
//	   ├─ attack when adjacent        limited attack budget
//	   ├─ chase after an alert delay
//	   └─ patrol a shuffled route when nothing is visible
func buildTree(cfg *config.Config, n *npc) *behaviortree.Tree {
	flee := behaviortree.NewSequence(
		&behaviortree.Condition{Fn: func() bool { return n.hp < n.fleeHP }},
		&behaviortree.Action{Fn: n.flee},
	)

	attack := behaviortree.NewSequence(
		&behaviortree.Condition{Fn: n.inAttackRange},
		behaviortree.NewLimiter(&behaviortree.Action{Fn: n.attack}, cfg.NPC.AttackLimit),
	)

	chase := behaviortree.NewSequence(
		&behaviortree.Condition{Fn: n.seesPlayer},
		behaviortree.NewDelayTime(
			&behaviortree.Action{Fn: n.chase},
			time.Duration(cfg.NPC.AlertDelayMs)*time.Millisecond,
			false,
		),
	)

	stops := make([]behaviortree.Node, 0, cfg.NPC.PatrolPoints)
	for i := 0; i < cfg.NPC.PatrolPoints; i++ {
		stop := i
		stops = append(stops, &behaviortree.Action{
			Fn: func(delta time.Duration) behaviortree.Status { return n.patrolTo(stop, delta) },
		})
	}
	route := behaviortree.NewRandomSequence(stops...)
	route.Reseed(cfg.Sim.Seed + 1)
	patrol := behaviortree.NewSequence(
		behaviortree.NewInverter(&behaviortree.Condition{Fn: n.seesPlayer}),
		route,
	)

	root := behaviortree.NewSequence(
		behaviortree.NewSucceeder(&behaviortree.Action{Fn: n.worldStep}),
		behaviortree.NewSelector(flee, attack, chase, patrol),
	)
	return &behaviortree.Tree{Root: root}
}
