package drift

// Action is the outcome of a match-table lookup: how to move from the cell
// containing the drifted coordinate to the originally recorded cell.
type Action uint8

const (
	actionNone Action = iota // table slot never populated; lookup miss

	ActionStay        // original cell is the current cell
	ActionEast        // original cell is the east neighbor
	ActionWest        // original cell is the west neighbor
	ActionSearchNorth // shift one grid unit north and re-match on the shared edge
	ActionSearchSouth // shift one grid unit south and re-match on the shared edge
)

func (a Action) String() string {
	switch a {
	case ActionStay:
		return "stay"
	case ActionEast:
		return "east"
	case ActionWest:
		return "west"
	case ActionSearchNorth:
		return "search-north"
	case ActionSearchSouth:
		return "search-south"
	default:
		return "none"
	}
}

// matchTable is the primary 9×9 dispatch, indexed [origCode][currentCode].
// Under bounded drift a position can only move into a sub-region adjacent to
// its original one, so each (orig, current) pair determines the displacement.
// Kept as data rather than control flow so all 81 entries stay auditable.
var matchTable = [10][10]Action{
	1: {1: ActionStay, 2: ActionSearchNorth, 3: ActionStay, 4: ActionSearchNorth, 5: ActionStay, 6: ActionStay, 7: ActionStay, 8: ActionStay, 9: ActionSearchNorth},
	2: {1: ActionSearchSouth, 2: ActionStay, 3: ActionWest, 4: ActionWest, 5: ActionStay, 6: ActionSearchSouth, 7: ActionStay, 8: ActionSearchSouth, 9: ActionStay},
	3: {1: ActionStay, 2: ActionEast, 3: ActionStay, 4: ActionStay, 5: ActionStay, 6: ActionEast, 7: ActionEast, 8: ActionStay, 9: ActionStay},
	4: {1: ActionSearchSouth, 2: ActionEast, 3: ActionStay, 4: ActionStay, 5: ActionStay, 6: ActionSearchSouth, 7: ActionEast, 8: ActionSearchSouth, 9: ActionStay},
	5: {1: ActionStay, 2: ActionStay, 3: ActionStay, 4: ActionStay, 5: ActionStay, 6: ActionStay, 7: ActionStay, 8: ActionStay, 9: ActionStay},
	6: {1: ActionStay, 2: ActionSearchNorth, 3: ActionWest, 4: ActionSearchNorth, 5: ActionStay, 6: ActionStay, 7: ActionStay, 8: ActionWest, 9: ActionSearchNorth},
	7: {1: ActionStay, 2: ActionStay, 3: ActionWest, 4: ActionWest, 5: ActionStay, 6: ActionStay, 7: ActionStay, 8: ActionWest, 9: ActionStay},
	8: {1: ActionStay, 2: ActionSearchNorth, 3: ActionStay, 4: ActionSearchNorth, 5: ActionStay, 6: ActionEast, 7: ActionEast, 8: ActionStay, 9: ActionSearchNorth},
	9: {1: ActionSearchSouth, 2: ActionStay, 3: ActionStay, 4: ActionStay, 5: ActionStay, 6: ActionSearchSouth, 7: ActionStay, 8: ActionSearchSouth, 9: ActionStay},
}

// northEdgeTable resolves a search-north step. The original code is one of
// the bottom-row codes {8, 1, 6}; the neighbor code is the position code of
// the shifted coordinate in the row to the north, restricted to the same
// bottom-row codes on the shared edge.
var northEdgeTable = [10][10]Action{
	8: {8: ActionStay, 1: ActionStay, 6: ActionEast},
	1: {8: ActionStay, 1: ActionStay, 6: ActionStay},
	6: {8: ActionWest, 1: ActionStay, 6: ActionStay},
}

// southEdgeTable resolves a search-south step; the mirror of northEdgeTable
// for the top-row codes {4, 9, 2}.
var southEdgeTable = [10][10]Action{
	4: {4: ActionStay, 9: ActionStay, 2: ActionEast},
	9: {4: ActionStay, 9: ActionStay, 2: ActionStay},
	2: {4: ActionWest, 9: ActionStay, 2: ActionStay},
}
