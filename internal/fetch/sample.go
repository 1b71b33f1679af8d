package fetch

import "math/rand"

// SamplePDFs returns up to n URLs chosen at random from urls, without
// replacement and without mutating urls. n >= len(urls) returns every URL
// in randomized order.
func SamplePDFs(urls []string, n int) []string {
	if n <= 0 || len(urls) == 0 {
		return nil
	}

	shuffled := make([]string, len(urls))
	copy(shuffled, urls)
	rand.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})

	if n > len(shuffled) {
		n = len(shuffled)
	}
	return shuffled[:n]
}
