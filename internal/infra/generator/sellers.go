package generator

import (
	"fmt"

	"github.com/google/uuid"
)

func sellerID(idx int) string {
	return fmt.Sprintf("user-%d", idx)
}

func sellerName(idx int) string {
	return fmt.Sprintf("Usuario %d", idx+1)
}

func sellerAvatar(idx int) string {
	return fmt.Sprintf("https://api.dicebear.com/7.x/avataaars/svg?seed=%d", idx+100)
}

// newListingID derives a listing identity from the generator's random
// source, keeping fixed-seed runs byte-for-byte reproducible.
func (g *Generator) newListingID() string {
	id, err := uuid.NewRandomFromReader(g.rng)
	if err != nil {
		// math/rand sources never fail to produce bytes.
		panic(err)
	}

	return id.String()
}
