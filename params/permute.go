package params

// Permutations expands the axes into the full Cartesian product, one Tuple
// per combination. Iteration is outer-to-inner in declaration order: the
// first axis varies slowest. The result is a pure function of the input.
//
// An empty axis list yields a single empty tuple, so an element with no
// parameters still produces exactly one instance.
func Permutations(axes []Axis) ([]Tuple, error) {
	order := make([]string, len(axes))
	valueLists := make([][]float64, len(axes))
	total := 1
	for i, axis := range axes {
		values, err := axis.Range.Values()
		if err != nil {
			return nil, err
		}
		order[i] = axis.Name
		valueLists[i] = values
		total *= len(values)
	}

	tuples := make([]Tuple, 0, total)
	indices := make([]int, len(axes))
	for {
		values := make(map[string]float64, len(axes))
		for i, name := range order {
			values[name] = valueLists[i][indices[i]]
		}
		tuples = append(tuples, Tuple{Order: order, Values: values})

		// Odometer increment, last axis fastest.
		i := len(axes) - 1
		for {
			if i < 0 {
				return tuples, nil
			}
			indices[i]++
			if indices[i] < len(valueLists[i]) {
				break
			}
			indices[i] = 0
			i--
		}
	}
}

// Count returns the number of permutations the axes expand to without
// materializing them.
func Count(axes []Axis) (int, error) {
	total := 1
	for _, axis := range axes {
		values, err := axis.Range.Values()
		if err != nil {
			return 0, err
		}
		total *= len(values)
	}
	return total, nil
}
