/*
shiptype.go - Ship type registration and lookup

PURPOSE:
  Provides a registry for catalog packages to register the ship types their
  cost model understands. The engine only knows the two wildcard-capable
  types (DD and SSLike); everything else is registered by the catalog.

HOW IT WORKS:
  1. Catalog packages register ShipTypeInfo on init()
  2. Loaders validate composition entries against the registry
  3. The cost model table lists types in registration order

USAGE:
  // In kancolle/shiptypes.go
  func init() {
      generic.RegisterShipType(generic.ShipTypeInfo{Type: ShipCL, Label: "CL"})
  }

  info, ok := generic.LookupShipType("CL")

SEE ALSO:
  - types.go: ShipType and Composition
  - costtable.go: Uses ListShipTypes for row order
*/
package generic

import (
	"fmt"
	"sync"
)

// Wildcard-capable ship types. Catalog packages register these too.
const (
	ShipDD     ShipType = "DD"
	ShipSSLike ShipType = "SSLike"
)

// ShipTypeInfo describes a registered ship type.
type ShipTypeInfo struct {
	Type    ShipType
	Label   string // short display label, e.g. "SS(*)"
	Members string // optional, classes folded into this type, e.g. "SS / SSV"
}

// =============================================================================
// SHIP TYPE REGISTRY
// =============================================================================

var (
	shipTypeRegistry = make(map[ShipType]ShipTypeInfo)
	shipTypeOrder    []ShipType
	registryMu       sync.RWMutex
)

// RegisterShipType adds a ship type to the global registry.
// Registering the same type twice replaces its info but keeps its position.
func RegisterShipType(info ShipTypeInfo) {
	registryMu.Lock()
	defer registryMu.Unlock()
	if _, ok := shipTypeRegistry[info.Type]; !ok {
		shipTypeOrder = append(shipTypeOrder, info.Type)
	}
	shipTypeRegistry[info.Type] = info
}

// LookupShipType finds a registered ship type.
func LookupShipType(t ShipType) (ShipTypeInfo, bool) {
	registryMu.RLock()
	defer registryMu.RUnlock()
	info, ok := shipTypeRegistry[t]
	return info, ok
}

// MustLookupShipType finds a registered ship type or panics.
// Use in tests or when you're certain the type exists.
func MustLookupShipType(t ShipType) ShipTypeInfo {
	info, ok := LookupShipType(t)
	if !ok {
		panic(fmt.Sprintf("ship type not registered: %s", t))
	}
	return info
}

// ListShipTypes returns all registered ship types in registration order.
func ListShipTypes() []ShipTypeInfo {
	registryMu.RLock()
	defer registryMu.RUnlock()
	result := make([]ShipTypeInfo, 0, len(shipTypeOrder))
	for _, t := range shipTypeOrder {
		result = append(result, shipTypeRegistry[t])
	}
	return result
}
