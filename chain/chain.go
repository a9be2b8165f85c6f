// Package chain merges vertex paths that continue each other.
package chain

func reverse(s []int64) {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}

// Reduce joins paths that share an endpoint, as long as joinable accepts
// the shared vertex. A nil joinable accepts every vertex. The input is
// not modified.
func Reduce(paths [][]int64, joinable func(v int64) bool) [][]int64 {
	if joinable == nil {
		joinable = func(int64) bool { return true }
	}

	in := make([][]int64, 0, len(paths))
	for _, p := range paths {
		in = append(in, append([]int64(nil), p...))
	}

	// Keep merging until nothing changes.
	repeat := true
	for repeat {
		repeat = false

		for i := 0; i < len(in); i++ {
			line := in[i]
			if len(line) == 0 {
				in = append(in[:i], in[i+1:]...)
				repeat = true
				break
			}

			start := line[0]
			end := line[len(line)-1]

			for j := 0; j < len(in); j++ {
				line2 := in[j]
				if i == j || len(line2) == 0 {
					continue
				}

				start2 := line2[0]
				end2 := line2[len(line2)-1]

				switch {
				case end == start2 && joinable(end):
					in[i] = append(in[i], line2[1:]...)

				// Same end? Append reversed
				case end2 == end && joinable(end):
					reverse(line2)
					in[i] = append(in[i], line2[1:]...)

				// Same start? Prepend!
				case start2 == start && joinable(start):
					reverse(line2)
					in[i] = append(line2[:len(line2)-1], in[i]...)

				default:
					continue
				}

				in = append(in[:j], in[j+1:]...)
				repeat = true
				break
			}

			if repeat {
				break
			}
		}
	}
	return in
}
