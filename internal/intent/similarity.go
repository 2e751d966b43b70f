package intent

import "math"

// cosineSimilarity returns the cosine of the angle between two vectors, or 0
// when either vector is zero-length or degenerate.
func cosineSimilarity(a, b []float32) float64 {
	if len(a) == 0 || len(a) != len(b) {
		return 0
	}

	var dot, normA, normB float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		normA += float64(a[i]) * float64(a[i])
		normB += float64(b[i]) * float64(b[i])
	}

	if normA == 0 || normB == 0 {
		return 0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}

// clusterSimilarity is the average similarity between v and every vector in
// the cluster.
func clusterSimilarity(v []float32, cluster [][]float32) float64 {
	if len(cluster) == 0 {
		return 0
	}
	var sum float64
	for _, cv := range cluster {
		sum += cosineSimilarity(v, cv)
	}
	return sum / float64(len(cluster))
}
