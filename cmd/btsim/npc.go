package main

import (
	"math/rand"
	"time"

	"go.uber.org/zap"

	"github.com/kasuganosora/behaviortree"
)

// npc is the toy actor the demo tree drives. Every field is touched only
// from the tree's own tick goroutine.
type npc struct {
	hp         int
	x, y       int
	playerX    int
	playerY    int
	sightRange int
	fleeHP     int
	rng        *rand.Rand
	logger     *zap.Logger
}

// patrolStops are the waypoints of the patrol route, indexed by stop number.
var patrolStops = [][2]int{{0, 0}, {6, 0}, {6, 6}, {0, 6}, {3, 9}, {9, 3}, {9, 9}, {3, 3}}

// worldStep advances the toy world one tick: the player wanders and the NPC
// takes occasional chip damage so the flee branch eventually fires.
func (n *npc) worldStep(time.Duration) behaviortree.Status {
	n.playerX += n.rng.Intn(3) - 1
	n.playerY += n.rng.Intn(3) - 1
	if n.hp > 0 && n.rng.Intn(20) == 0 {
		n.hp -= 5
	}
	return behaviortree.StatusSuccess
}

func (n *npc) seesPlayer() bool {
	return abs(n.playerX-n.x)+abs(n.playerY-n.y) <= n.sightRange
}

func (n *npc) inAttackRange() bool {
	return abs(n.playerX-n.x)+abs(n.playerY-n.y) <= 1
}

func (n *npc) attack(time.Duration) behaviortree.Status {
	n.logger.Debug("npc attacks",
		zap.Int("x", n.x), zap.Int("y", n.y), zap.Int("hp", n.hp))
	return behaviortree.StatusSuccess
}

// chase moves one tile toward the player per tick and keeps running until
// the player is in attack range.
func (n *npc) chase(time.Duration) behaviortree.Status {
	n.x += sign(n.playerX - n.x)
	n.y += sign(n.playerY - n.y)
	n.logger.Debug("npc chases",
		zap.Int("x", n.x), zap.Int("y", n.y),
		zap.Int("player_x", n.playerX), zap.Int("player_y", n.playerY))
	if n.inAttackRange() {
		return behaviortree.StatusSuccess
	}
	return behaviortree.StatusRunning
}

func (n *npc) flee(time.Duration) behaviortree.Status {
	n.x -= sign(n.playerX - n.x)
	n.y -= sign(n.playerY - n.y)
	n.logger.Debug("npc flees", zap.Int("x", n.x), zap.Int("y", n.y), zap.Int("hp", n.hp))
	return behaviortree.StatusSuccess
}

// patrolTo walks one tile toward the given stop per tick, running until the
// stop is reached.
func (n *npc) patrolTo(stop int, _ time.Duration) behaviortree.Status {
	target := patrolStops[stop%len(patrolStops)]
	if n.x == target[0] && n.y == target[1] {
		n.logger.Debug("npc reached patrol stop", zap.Int("stop", stop))
		return behaviortree.StatusSuccess
	}
	n.x += sign(target[0] - n.x)
	n.y += sign(target[1] - n.y)
	return behaviortree.StatusRunning
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}
