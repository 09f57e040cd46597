package gentzen

import "errors"

// ErrRanOutOfPaths is returned when the search queue empties without
// ever closing the goal sequent. It is the only failure kind the
// public API reports; every internal dead end (an empty candidate
// list, a disqualified !R shape, a stuck Dual(Value(_))) collapses
// into this outcome rather than surfacing separately.
var ErrRanOutOfPaths = errors.New("gentzen: ran out of proof paths")
