package registry

import (
	"strings"

	"github.com/andy/clienthub/internal/domain"
)

// ByName orders clients lexicographically by name, case-insensitive. This is
// the default view ordering; ties keep registry order via the stable sort.
func ByName(a, b domain.Client) bool {
	return strings.ToLower(a.Name().String()) < strings.ToLower(b.Name().String())
}

// ByTotalPurchase orders clients by derived total purchase, highest first.
func ByTotalPurchase(a, b domain.Client) bool {
	return a.TotalPurchase() > b.TotalPurchase()
}
