package graph

import "math"

// Jaccard computes |intersection| / |union| over the two attribute
// collections with set semantics (duplicates collapse). It returns 0 when
// the union is empty.
func Jaccard(a, b []int) float64 {
	setA := toSet(a)
	setB := toSet(b)

	union := len(setA)
	intersection := 0
	for attr := range setB {
		if setA[attr] {
			intersection++
		} else {
			union++
		}
	}

	if union == 0 {
		return 0
	}
	return float64(intersection) / float64(union)
}

// Cosine computes the binary-presence cosine similarity: each attribute is
// a 0/1 indicator, and the result is the indicator dot product divided by
// the product of Euclidean norms. It returns 0 when either norm is 0.
func Cosine(a, b []int) float64 {
	setA := toSet(a)
	setB := toSet(b)

	dot := 0
	for attr := range setA {
		if setB[attr] {
			dot++
		}
	}

	normA := float64(len(setA))
	normB := float64(len(setB))
	if normA == 0 || normB == 0 {
		return 0
	}
	return float64(dot) / (math.Sqrt(normA) * math.Sqrt(normB))
}

// DegreeCentrality returns neighborCount / (communitySize - 1). The second
// return is false when communitySize <= 1, where the measure is undefined.
func DegreeCentrality(neighborCount, communitySize int) (float64, bool) {
	if communitySize <= 1 {
		return 0, false
	}
	return float64(neighborCount) / float64(communitySize-1), true
}

func toSet(attrs []int) map[int]bool {
	set := make(map[int]bool, len(attrs))
	for _, a := range attrs {
		set[a] = true
	}
	return set
}
