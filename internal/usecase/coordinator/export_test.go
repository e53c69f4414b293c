//go:build unit

package coordinator

import "auction-sync/internal/domain/auction"

func (c *Coordinator) Publish(s *auction.Snapshot) bool {
	return c.publish(s)
}
