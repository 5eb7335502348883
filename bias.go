package hll

import "sort"

// Number of reference points averaged by estimateBias.
const biasNeighbors = 6

// Get bias estimation calculated from the empirical results in biasdata.go: the mean bias of
// the biasNeighbors raw estimates closest to e. Equal distances keep table order, so the
// lower index wins a tie.
func (h *Hll) estimateBias(e float64) float64 {
	rawEstimate := estimateMap[h.p]
	biasData := biasMap[h.p]

	distances := make([]float64, len(rawEstimate))
	indices := make([]int, len(rawEstimate))
	for i, raw := range rawEstimate {
		d := e - raw
		distances[i] = d * d
		indices[i] = i
	}
	sort.SliceStable(indices, func(a, b int) bool {
		return distances[indices[a]] < distances[indices[b]]
	})

	k := biasNeighbors
	if k > len(indices) {
		k = len(indices)
	}
	sum := float64(0)
	for _, idx := range indices[:k] {
		sum += biasData[idx]
	}
	return sum / float64(k)
}
