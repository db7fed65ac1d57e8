package game

// Timeline is one branch of alternate history: an append-only sequence of
// Boards, one per hand played on the branch.
type Timeline struct {
	// Parent is the index of the timeline this one forked from. Genesis
	// timelines point at 0.
	Parent int
	// StartingTime is the board position in the parent at which this
	// timeline diverged. Board i of this timeline sits at StartingTime+i.
	StartingTime int
	Boards       []*Board
}

// Current returns the board of the hand being played on this timeline.
func (tl *Timeline) Current() *Board {
	return tl.Boards[len(tl.Boards)-1]
}

// IsCurrent reports whether board index i is the hand in play.
func (tl *Timeline) IsCurrent(i int) bool {
	return i == len(tl.Boards)-1
}

func (tl *Timeline) clone() *Timeline {
	boards := make([]*Board, len(tl.Boards))
	for i, b := range tl.Boards {
		boards[i] = b.clone()
	}
	return &Timeline{
		Parent:       tl.Parent,
		StartingTime: tl.StartingTime,
		Boards:       boards,
	}
}
