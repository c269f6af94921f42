/*
shiptypes.go - Ship types understood by the bundled cost model

PURPOSE:
  Registers the ship classes the bundled catalog uses in its minimum
  compositions. Several in-game classes share resupply behaviour and are
  folded into one type (CVLike, SSLike).

REGISTRATION ORDER:
  The order below is the row order of the cost model table.
*/
package kancolle

import "github.com/warp/expedition-engine/generic"

// Ship types, in cost model table order.
const (
	ShipDD     = generic.ShipDD
	ShipCL     generic.ShipType = "CL"
	ShipCVLike generic.ShipType = "CVLike"
	ShipSSLike = generic.ShipSSLike
	ShipCA     generic.ShipType = "CA"
	ShipBBV    generic.ShipType = "BBV"
	ShipAS     generic.ShipType = "AS"
	ShipCT     generic.ShipType = "CT"
	ShipAV     generic.ShipType = "AV"
)

func init() {
	for _, info := range []generic.ShipTypeInfo{
		{Type: ShipDD, Label: "DD"},
		{Type: ShipCL, Label: "CL"},
		{Type: ShipCVLike, Label: "CV(*)", Members: "CV / CVL / AV / CVB"},
		{Type: ShipSSLike, Label: "SS(*)", Members: "SS / SSV"},
		{Type: ShipCA, Label: "CA"},
		{Type: ShipBBV, Label: "BBV"},
		{Type: ShipAS, Label: "AS"},
		{Type: ShipCT, Label: "CT"},
		{Type: ShipAV, Label: "AV"},
	} {
		generic.RegisterShipType(info)
	}
}
