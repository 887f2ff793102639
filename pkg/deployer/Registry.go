package deployer

import (
	"sort"

	"github.com/simplecontainer/deployer/pkg/metrics"
)

func NewRegistry() *Registry {
	return &Registry{
		containers: make(map[string]*Container),
	}
}

func (registry *Registry) Add(container *Container) error {
	registry.lock.Lock()
	defer registry.lock.Unlock()

	if registry.closed {
		return ERROR_DEPLOYER_CLOSED
	}

	if _, ok := registry.containers[container.ID]; !ok {
		metrics.LiveContainers.Add(1)
	}

	registry.containers[container.ID] = container

	return nil
}

func (registry *Registry) Remove(id string) bool {
	registry.lock.Lock()
	defer registry.lock.Unlock()

	if _, ok := registry.containers[id]; !ok {
		return false
	}

	delete(registry.containers, id)
	metrics.LiveContainers.Add(-1)

	return true
}

func (registry *Registry) Find(id string) *Container {
	registry.lock.RLock()
	defer registry.lock.RUnlock()

	return registry.containers[id]
}

func (registry *Registry) Contains(id string) bool {
	return registry.Find(id) != nil
}

func (registry *Registry) Len() int {
	registry.lock.RLock()
	defer registry.lock.RUnlock()

	return len(registry.containers)
}

func (registry *Registry) Closed() bool {
	registry.lock.RLock()
	defer registry.lock.RUnlock()

	return registry.closed
}

// Snapshot returns the registered containers ordered by id.
func (registry *Registry) Snapshot() []*Container {
	registry.lock.RLock()
	defer registry.lock.RUnlock()

	return registry.sorted()
}

// Seal refuses further Add calls and returns what is registered at that point.
func (registry *Registry) Seal() []*Container {
	registry.lock.Lock()
	defer registry.lock.Unlock()

	registry.closed = true

	return registry.sorted()
}

func (registry *Registry) sorted() []*Container {
	containers := make([]*Container, 0, len(registry.containers))

	for _, container := range registry.containers {
		containers = append(containers, container)
	}

	sort.Slice(containers, func(i, j int) bool {
		return containers[i].ID < containers[j].ID
	})

	return containers
}

// Clear drops every entry, seals the registry and returns how many were
// dropped.
func (registry *Registry) Clear() int {
	registry.lock.Lock()
	defer registry.lock.Unlock()

	registry.closed = true

	dropped := len(registry.containers)

	registry.containers = make(map[string]*Container)
	metrics.LiveContainers.Add(-float64(dropped))

	return dropped
}
