package entity

import "gridsnake/game/types"

// Segment is one occupied cell and the direction it will move on the next tick.
type Segment struct {
	Pos types.Point
	Dir types.Point
}

// Snake is an ordered chain of segments. Index 0 is the head.
type Snake struct {
	Segments []Segment
}

// NewSnake returns a single motionless segment at start. capacity is only a
// hint for the backing slice.
func NewSnake(start types.Point, capacity int) *Snake {
	if capacity < 1 {
		capacity = 1
	}
	s := &Snake{Segments: make([]Segment, 0, capacity)}
	s.Reset(start)
	return s
}

// Reset shrinks the snake back to one motionless segment at start.
func (s *Snake) Reset(start types.Point) {
	s.Segments = append(s.Segments[:0], Segment{Pos: start})
}

func (s *Snake) Len() int {
	return len(s.Segments)
}

func (s *Snake) Head() Segment {
	return s.Segments[0]
}

func (s *Snake) Tail() Segment {
	return s.Segments[len(s.Segments)-1]
}

// CanTurn reports whether dir may be buffered as the next head direction.
// Once the snake has a neck it may not reverse into it.
func (s *Snake) CanTurn(dir types.Point) bool {
	if len(s.Segments) < 2 {
		return true
	}
	return dir != s.Segments[0].Dir.Opposite()
}

// Step moves every segment by its own direction, hands each direction one
// segment back toward the tail and gives the head dir. It returns where the
// tail was before the move.
func (s *Snake) Step(dir types.Point) (prevTail types.Point) {
	prevTail = s.Tail().Pos

	for i := range s.Segments {
		s.Segments[i].Pos = s.Segments[i].Pos.Add(s.Segments[i].Dir)
	}
	for i := len(s.Segments) - 1; i > 0; i-- {
		s.Segments[i].Dir = s.Segments[i-1].Dir
	}
	s.Segments[0].Dir = dir

	return prevTail
}

// Grow appends a motionless segment at pos.
func (s *Snake) Grow(pos types.Point) {
	s.Segments = append(s.Segments, Segment{Pos: pos})
}

// Occupies reports whether any segment sits on p.
func (s *Snake) Occupies(p types.Point) bool {
	for _, seg := range s.Segments {
		if seg.Pos == p {
			return true
		}
	}
	return false
}

// HitsBody reports whether the head overlaps a segment from index 2 on.
// The neck can never share the head's cell under the movement rule, so it is skipped.
func (s *Snake) HitsBody() bool {
	head := s.Segments[0].Pos
	for i := 2; i < len(s.Segments); i++ {
		if s.Segments[i].Pos == head {
			return true
		}
	}
	return false
}

// Positions returns a copy of the occupied cells, head first.
func (s *Snake) Positions() []types.Point {
	out := make([]types.Point, len(s.Segments))
	for i, seg := range s.Segments {
		out[i] = seg.Pos
	}
	return out
}
