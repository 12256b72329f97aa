// Package model defines shared data structures.
package model

import "time"

// Bounce enables elastic overscroll per edge.
type Bounce struct {
	Top    bool
	Bottom bool
	Left   bool
	Right  bool
}

// ScrollConfig defines scroller-wide physics settings shared by both axes.
type ScrollConfig struct {
	ScrollX                bool
	ScrollY                bool
	FreeScroll             bool
	DirectionLockThreshold float64
	Momentum               bool
	MomentumLimitTime      time.Duration
	MomentumLimitDistance  float64
	Deceleration           float64
	SwipeTime              time.Duration
	SwipeBounceTime        time.Duration
	BounceTime             time.Duration
	Bounce                 Bounce
}

// PlaygroundConfig defines content and animation settings for the playground.
type PlaygroundConfig struct {
	Lines    int
	MinWords int
	MaxWords int
	Seed     int64
	File     string
	Settle   string
	FPS      int
}

// StatsConfig defines filters and options for stats output.
type StatsConfig struct {
	Since       *time.Time
	Last        int
	CurveWindow int
	Axis        string
}

// GestureStats captures a completed pointer gesture.
type GestureStats struct {
	StartedAt  time.Time
	EndedAt    time.Time
	DurationMs int64
	Momentum   bool
	Bounce     bool
	SettleMs   int64
}

// AxisStats stores per-axis results for a gesture.
type AxisStats struct {
	Axis        string
	StartPos    float64
	EndPos      float64
	Destination float64
	Distance    float64
	Direction   int
	HasScroll   bool
	Momentum    bool
}

// GestureAggregate summarizes a gesture for reporting.
type GestureAggregate struct {
	GestureID  int64
	EndedAt    time.Time
	DurationMs int64
	Momentum   bool
	Bounce     bool
	SettleMs   int64
	DistanceX  float64
	DistanceY  float64
}

// AxisAggregate aggregates axis stats across gestures.
type AxisAggregate struct {
	Axis          string
	Gestures      int
	Momentum      int
	DistanceSum   float64
	DistanceMax   float64
	TravelSum     float64
	DurationSumMs int64
}
