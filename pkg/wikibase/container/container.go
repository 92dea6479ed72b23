// Package container provides a concurrency bounded batch loader that
// caches items and properties fetched from an entity store.
package container

import (
	"context"
	"sync"

	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
	"golang.org/x/sync/semaphore"

	"github.com/wikibase-go/rest-client/pkg/wikibase/client"
	"github.com/wikibase-go/rest-client/pkg/wikibase/types"
)

const DefaultMaxConcurrent = 10

func MaxConcurrent(limit int64) func(*EntityContainer) {
	return func(ec *EntityContainer) {
		if limit > 0 {
			ec.maxConcurrent = limit
		}
	}
}

// EntityContainer loads batches of entities into a shared cache,
// fetching at most a configured number of them concurrently. An
// entity that fails to load (a deleted or nonexistent ID, say) is
// dropped from the result set without failing the batch.
type EntityContainer struct {
	client        client.EntityStoreClient
	maxConcurrent int64

	mu         sync.RWMutex
	items      map[string]*types.Item
	properties map[string]*types.Property
}

func NewEntityContainer(c client.EntityStoreClient, options ...func(*EntityContainer)) *EntityContainer {
	ec := &EntityContainer{
		client:        c,
		maxConcurrent: DefaultMaxConcurrent,
		items:         map[string]*types.Item{},
		properties:    map[string]*types.Property{},
	}

	for _, option := range options {
		option(ec)
	}

	return ec
}

// Load fetches the entities with the given IDs into the cache,
// skipping any that are already present. Concurrent Load calls over
// overlapping ID sets may fetch the same ID twice, which is harmless
// since the fetch is a GET.
func (ec *EntityContainer) Load(ctx context.Context, ids []types.EntityID) error {
	missing := ec.missing(ids)
	if len(missing) == 0 {
		return nil
	}

	log := logging.GetFromContext(ctx)

	sem := semaphore.NewWeighted(ec.maxConcurrent)

	var wg sync.WaitGroup
	var mu sync.Mutex
	items := map[string]*types.Item{}
	properties := map[string]*types.Property{}

	for _, id := range missing {
		if err := sem.Acquire(ctx, 1); err != nil {
			wg.Wait()
			return err
		}

		wg.Add(1)
		go func(id types.EntityID) {
			defer wg.Done()
			defer sem.Release(1)

			if id.IsItem() {
				item, err := ec.client.RetrieveItem(ctx, id)
				if err != nil {
					log.Debug("dropping item from batch", "entity-id", id.String(), "err", err.Error())
					return
				}

				mu.Lock()
				items[id.String()] = item
				mu.Unlock()
				return
			}

			property, err := ec.client.RetrieveProperty(ctx, id)
			if err != nil {
				log.Debug("dropping property from batch", "entity-id", id.String(), "err", err.Error())
				return
			}

			mu.Lock()
			properties[id.String()] = property
			mu.Unlock()
		}(id)
	}

	wg.Wait()

	ec.mu.Lock()
	defer ec.mu.Unlock()

	for id, item := range items {
		ec.items[id] = item
	}
	for id, property := range properties {
		ec.properties[id] = property
	}

	return nil
}

func (ec *EntityContainer) Item(id types.EntityID) (*types.Item, bool) {
	ec.mu.RLock()
	defer ec.mu.RUnlock()

	item, ok := ec.items[id.String()]
	return item, ok
}

func (ec *EntityContainer) Property(id types.EntityID) (*types.Property, bool) {
	ec.mu.RLock()
	defer ec.mu.RUnlock()

	property, ok := ec.properties[id.String()]
	return property, ok
}

// Len returns the number of cached entities.
func (ec *EntityContainer) Len() int {
	ec.mu.RLock()
	defer ec.mu.RUnlock()

	return len(ec.items) + len(ec.properties)
}

// missing computes the set of IDs to fetch under a read view, so
// readers are not blocked while a batch is in flight.
func (ec *EntityContainer) missing(ids []types.EntityID) []types.EntityID {
	ec.mu.RLock()
	defer ec.mu.RUnlock()

	missing := make([]types.EntityID, 0, len(ids))
	seen := map[string]struct{}{}

	for _, id := range ids {
		if id.IsZero() {
			continue
		}
		if _, ok := seen[id.String()]; ok {
			continue
		}
		seen[id.String()] = struct{}{}

		if id.IsItem() {
			if _, ok := ec.items[id.String()]; ok {
				continue
			}
		} else if _, ok := ec.properties[id.String()]; ok {
			continue
		}

		missing = append(missing, id)
	}

	return missing
}
