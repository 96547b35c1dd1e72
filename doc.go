// Package behaviortree is a small runtime for composing reactive decision
// logic out of reusable control-flow nodes. The owning application polls the
// root node once per simulation frame with an elapsed-time value; composites
// (Selector, Sequence and their randomized variants) iterate their children
// according to a policy and may resume a child left RUNNING on a previous
// tick, while decorators (Inverter, Succeeder, Failer, Repeater, RepeatUntil,
// Limiter, DelayTime, TimeLimit, Locker) wrap a single child and modify its
// result or timing.
//
// Evaluation is strictly sequential: one Update call performs a complete
// depth-first traversal of the live part of the tree and returns before the
// next tick. Suspension across ticks is plain data (a RUNNING status plus a
// remembered child index or elapsed-time counter), never a suspended
// goroutine, so a tree must only ever be ticked from one goroutine at a
// time. Leaf nodes are supplied by the embedding application as anything
// implementing Node; Condition and Action cover the common cases.
package behaviortree
