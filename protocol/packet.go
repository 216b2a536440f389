// Package protocol defines the types shared by every generated EO
// packet: the Packet interface itself, and the PacketFamily/PacketAction
// enumerations used to route packets to their handlers.
package protocol

import "github.com/cirras/eolib-go/data"

// Packet is implemented by every generated client or server packet. It
// identifies the packet's family and action (the two bytes that prefix
// every packet on the wire) and knows how to serialize itself.
type Packet interface {
	// Family returns the packet family associated with this packet.
	Family() PacketFamily

	// Action returns the packet action associated with this packet.
	Action() PacketAction

	// Serialize serializes this packet to the given writer.
	Serialize(writer *data.EoWriter) error
}
