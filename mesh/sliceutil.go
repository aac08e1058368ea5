package mesh

// removeIntFromSlice removes the first occurrence of val from *s, if present.
func removeIntFromSlice(s *[]int, val int) {
	for i, x := range *s {
		if x == val {
			*s = append((*s)[:i], (*s)[i+1:]...)
			return
		}
	}
}

// replaceIntInSlice replaces the first occurrence of old with next in s, in place.
func replaceIntInSlice(s []int, old, next int) {
	for i, x := range s {
		if x == old {
			s[i] = next
			return
		}
	}
}

func indexOfInt(s []int, val int) int {
	for i, x := range s {
		if x == val {
			return i
		}
	}
	return -1
}

// sortedPair returns {a,b} in ascending order.
func sortedPair(a, b int) []int {
	if a > b {
		return []int{b, a}
	}
	return []int{a, b}
}
