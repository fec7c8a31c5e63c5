package lib

import (
	"fmt"
	"math/rand"
	"time"
)

// GenerateOrderNumber generates an order number in the format BR-XXXXXXXX
// where XXXXXXXX is a random 8-character alphanumeric string. Uniqueness is
// enforced by the orders table constraint; collisions surface as conflicts.
func GenerateOrderNumber() string {
	// Local rand.Source for thread safety
	src := rand.NewSource(time.Now().UnixNano())
	r := rand.New(src)

	const chars = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	const length = 8

	randomPart := make([]byte, length)
	for i := range randomPart {
		randomPart[i] = chars[r.Intn(len(chars))]
	}

	return fmt.Sprintf("BR-%s", string(randomPart))
}
