package topojson

import "math"

type arcEntry struct {
	Start [2]float64
	End   [2]float64
}

// unpack turns the extracted lines into arcs. A line equal to an earlier
// arc, in either direction, references that arc instead of adding one.
func (t *Topology) unpack() {
	arcIndexes := make(map[arcEntry][]int)
	raw := make([][][]float64, 0, len(t.lines))

	for _, l := range t.lines {
		coords := t.coordinates[l.arc.Start : l.arc.End+1]
		first := coords[0]
		last := coords[len(coords)-1]

		if i, ok := findArc(raw, arcIndexes[entry(first, last)], coords, false); ok {
			l.geom.LineString = []int{i}
			continue
		}
		if i, ok := findArc(raw, arcIndexes[entry(last, first)], coords, true); ok {
			l.geom.LineString = []int{^i}
			continue
		}

		index := len(raw)
		raw = append(raw, coords)
		arcIndexes[entry(first, last)] = append(arcIndexes[entry(first, last)], index)
		t.Arcs = append(t.Arcs, t.quantizeArc(coords))
		l.geom.LineString = []int{index}
	}

	t.lines = nil
	t.coordinates = nil
}

func entry(start, end []float64) arcEntry {
	return arcEntry{
		Start: [2]float64{start[0], start[1]},
		End:   [2]float64{end[0], end[1]},
	}
}

func findArc(raw [][][]float64, candidates []int, coords [][]float64, reversed bool) (int, bool) {
	for _, i := range candidates {
		if arcEquals(raw[i], coords, reversed) {
			return i, true
		}
	}
	return 0, false
}

func arcEquals(a, b [][]float64, reversed bool) bool {
	if len(a) != len(b) {
		return false
	}
	n := len(a)
	for i := 0; i < n; i++ {
		j := i
		if reversed {
			j = n - 1 - i
		}
		if !pointEquals(a[i], b[j]) {
			return false
		}
	}
	return true
}

// quantizeArc delta encodes an arc when a transform is set.
func (t *Topology) quantizeArc(coords [][]float64) [][]float64 {
	out := make([][]float64, 0, len(coords))
	if t.Transform == nil {
		for _, c := range coords {
			out = append(out, []float64{c[0], c[1]})
		}
		return out
	}

	px, py := 0.0, 0.0
	for _, c := range coords {
		q := t.quantizePoint(c)
		out = append(out, []float64{q[0] - px, q[1] - py})
		px, py = q[0], q[1]
	}
	return out
}

func (t *Topology) quantizePoint(c []float64) []float64 {
	if t.Transform == nil {
		return []float64{c[0], c[1]}
	}
	return []float64{
		math.Round((c[0] - t.Transform.Translate[0]) / t.Transform.Scale[0]),
		math.Round((c[1] - t.Transform.Translate[1]) / t.Transform.Scale[1]),
	}
}
