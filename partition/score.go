package partition

// CrossFlow sums the values of links whose endpoints lie in different
// clusters. Links with an endpoint outside assign are ignored.
//
// Complexity: O(E).
func CrossFlow(assign Assignment, links []Link) float64 {
	var sum float64
	n := len(assign)
	for _, l := range links {
		if l.Source < 0 || l.Target < 0 || l.Source >= n || l.Target >= n {
			continue
		}
		if assign[l.Source] != assign[l.Target] {
			sum += l.Value
		}
	}

	return sum
}

// SharedPairs counts pairs whose two nodes share a cluster.
func SharedPairs(assign Assignment, pairs [][2]int) int {
	count := 0
	for _, pr := range pairs {
		if assign[pr[0]] == assign[pr[1]] {
			count++
		}
	}

	return count
}

// ClampK limits a requested cluster count to [1, n]. For n == 0 it returns 0.
func ClampK(k, n int) int {
	if n <= 0 {
		return 0
	}
	if k < 1 {
		return 1
	}
	if k > n {
		return n
	}

	return k
}

// Sizes returns the member count of each cluster in [0, k).
func Sizes(assign Assignment, k int) []int {
	sizes := make([]int, k)
	for _, c := range assign {
		if c >= 0 && c < k {
			sizes[c]++
		}
	}

	return sizes
}
