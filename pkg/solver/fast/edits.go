package fast

// setBlocked transitions cell to Blocked if Unknown; idempotent if
// already Blocked; reports false (conflict) if the cell is already a
// Light.
func (co *core) setBlocked(cell int, qNum *intQueue) bool {
	switch co.cellState[cell] {
	case stateBlocked:
		return true
	case stateLight:
		return false
	}

	co.trail = append(co.trail, cellStateAction{idx: cell, prev: co.cellState[cell]})
	co.cellState[cell] = stateBlocked

	rseg := co.rowSegID[cell]
	co.trail = append(co.trail, rowFreeAction{seg: rseg, prev: co.rowSegs[rseg].freeCnt})
	co.rowSegs[rseg].freeCnt--

	cseg := co.colSegID[cell]
	co.trail = append(co.trail, colFreeAction{seg: cseg, prev: co.colSegs[cseg].freeCnt})
	co.colSegs[cseg].freeCnt--

	for _, idx := range co.numAdjOfEmpty[cell] {
		co.trail = append(co.trail, numUnkAction{idx: idx, prev: co.numCells[idx].unk})
		co.numCells[idx].unk--
		qNum.pushBack(idx)
	}

	return true
}

// setLight transitions cell to Light if Unknown; idempotent if
// already Light; reports false if already Blocked or if doing so
// would give one of its segments a second, different light.
func (co *core) setLight(cell int, qNum *intQueue) bool {
	switch co.cellState[cell] {
	case stateLight:
		return true
	case stateBlocked:
		return false
	}

	co.trail = append(co.trail, cellStateAction{idx: cell, prev: co.cellState[cell]})
	co.cellState[cell] = stateLight

	for _, lit := range co.litList[cell] {
		co.trail = append(co.trail, litCountAction{idx: lit, prev: co.litCount[lit]})
		co.litCount[lit]++
	}

	for _, idx := range co.numAdjOfEmpty[cell] {
		co.trail = append(co.trail, numOnAction{idx: idx, prev: co.numCells[idx].on})
		co.numCells[idx].on++
		co.trail = append(co.trail, numUnkAction{idx: idx, prev: co.numCells[idx].unk})
		co.numCells[idx].unk--
		qNum.pushBack(idx)
	}

	rseg := co.rowSegID[cell]
	switch light := co.rowSegs[rseg].light; {
	case light >= 0 && light != cell:
		return false
	case light < 0:
		co.trail = append(co.trail, rowLightAction{seg: rseg, prev: -1})
		co.rowSegs[rseg].light = cell
		for _, other := range append([]int(nil), co.rowSegs[rseg].cells...) {
			if other != cell && !co.setBlocked(other, qNum) {
				return false
			}
		}
	}

	cseg := co.colSegID[cell]
	switch light := co.colSegs[cseg].light; {
	case light >= 0 && light != cell:
		return false
	case light < 0:
		co.trail = append(co.trail, colLightAction{seg: cseg, prev: -1})
		co.colSegs[cseg].light = cell
		for _, other := range append([]int(nil), co.colSegs[cseg].cells...) {
			if other != cell && !co.setBlocked(other, qNum) {
				return false
			}
		}
	}

	return true
}

// propagate runs to a fixpoint by interleaving the NumCell queue
// (enforcing I1: on <= value <= on + unk) with a coverage sweep over
// every empty cell (forcing the unique remaining candidate when a
// cell's only illumination source has size 1). Either loop can create
// work for the other, so neither may be run to fixpoint alone.
func (co *core) propagate() bool {
	qNum := newIntQueueAll(len(co.numCells))

	for {
		changed := false

		for {
			idx, ok := qNum.popFront()
			if !ok {
				break
			}
			n := co.numCells[idx]
			if n.on > n.value || n.on+n.unk < n.value {
				return false
			}
			if n.on == n.value {
				for _, cell := range append([]int(nil), n.adj...) {
					if co.cellState[cell] == stateUnknown {
						if !co.setBlocked(cell, qNum) {
							return false
						}
						changed = true
					}
				}
			} else if n.on+n.unk == n.value {
				for _, cell := range append([]int(nil), n.adj...) {
					if co.cellState[cell] == stateUnknown {
						if !co.setLight(cell, qNum) {
							return false
						}
						changed = true
					}
				}
			}
		}

		for cell := 0; cell < co.nEmpty; cell++ {
			if co.litCount[cell] > 0 {
				continue
			}
			rseg := co.rowSegID[cell]
			cseg := co.colSegID[cell]
			if co.rowSegs[rseg].light >= 0 || co.colSegs[cseg].light >= 0 {
				continue
			}

			rowFree := co.rowSegs[rseg].freeCnt
			colFree := co.colSegs[cseg].freeCnt
			selfFree := 1
			if co.cellState[cell] == stateBlocked {
				selfFree = 0
			}
			cand := rowFree + colFree - selfFree

			if cand == 0 {
				return false
			}
			if cand == 1 {
				pos, ok := co.findSingleCandidate(rseg, cseg)
				if !ok {
					return false
				}
				if !co.setLight(pos, qNum) {
					return false
				}
				changed = true
			}
		}

		if !changed && qNum.empty() {
			break
		}
	}

	return true
}

// findSingleCandidate returns the sole non-Blocked cell across rseg
// and cseg's members, or false if there is more than one (or zero).
func (co *core) findSingleCandidate(rseg, cseg int) (int, bool) {
	only := -1
	for _, cell := range co.rowSegs[rseg].cells {
		if co.cellState[cell] != stateBlocked {
			if only == -1 {
				only = cell
			} else if only != cell {
				return 0, false
			}
		}
	}
	for _, cell := range co.colSegs[cseg].cells {
		if co.cellState[cell] != stateBlocked {
			if only == -1 {
				only = cell
			} else if only != cell {
				return 0, false
			}
		}
	}
	if only == -1 {
		return 0, false
	}
	return only, true
}

func (co *core) isSolved() bool {
	for _, v := range co.litCount {
		if v == 0 {
			return false
		}
	}
	for _, n := range co.numCells {
		if n.on != n.value {
			return false
		}
	}
	return true
}

// chooseBranchCell selects an unlit, uncovered empty cell whose
// candidate-set size is minimal among those >= 2, and returns the
// deduplicated ordered candidate list (row members first, then column
// members not already listed).
func (co *core) chooseBranchCell() ([]int, bool) {
	bestCount := -1
	var bestCandidates []int

	for cell := 0; cell < co.nEmpty; cell++ {
		if co.litCount[cell] > 0 {
			continue
		}
		rseg := co.rowSegID[cell]
		cseg := co.colSegID[cell]
		if co.rowSegs[rseg].light >= 0 || co.colSegs[cseg].light >= 0 {
			continue
		}

		rowFree := co.rowSegs[rseg].freeCnt
		colFree := co.colSegs[cseg].freeCnt
		selfFree := 1
		if co.cellState[cell] == stateBlocked {
			selfFree = 0
		}
		candCount := rowFree + colFree - selfFree
		if candCount <= 1 {
			continue
		}

		var candidates []int
		inSet := make(map[int]bool)
		for _, x := range co.rowSegs[rseg].cells {
			if co.cellState[x] != stateBlocked {
				candidates = append(candidates, x)
				inSet[x] = true
			}
		}
		for _, x := range co.colSegs[cseg].cells {
			if co.cellState[x] != stateBlocked && !inSet[x] {
				candidates = append(candidates, x)
				inSet[x] = true
			}
		}

		if bestCount == -1 || candCount < bestCount {
			bestCount = candCount
			bestCandidates = candidates
		}
	}

	if bestCount == -1 {
		return nil, false
	}
	return bestCandidates, true
}

func (co *core) dfs() bool {
	if !co.propagate() {
		return false
	}
	if co.isSolved() {
		return true
	}

	candidates, ok := co.chooseBranchCell()
	if !ok {
		return false
	}

	for _, pos := range candidates {
		cp := co.checkpoint()
		q := &intQueue{}
		if co.setLight(pos, q) && co.dfs() {
			return true
		}
		co.undo(cp)
	}

	return false
}
