package protocol

// PacketAction is the second of the two bytes that prefix every packet
// on the wire, identifying the operation being performed within a
// PacketFamily.
type PacketAction int

const (
	PacketActionUnrecognized PacketAction = -1
	PacketActionRequest      PacketAction = 1
	PacketActionAccept       PacketAction = 2
	PacketActionReply        PacketAction = 3
	PacketActionRemove       PacketAction = 4
	PacketActionAgree        PacketAction = 5
	PacketActionCreate       PacketAction = 6
	PacketActionAdd          PacketAction = 7
	PacketActionPlayer       PacketAction = 8
	PacketActionTake         PacketAction = 9
	PacketActionUse          PacketAction = 10
	PacketActionOpen         PacketAction = 12
	PacketActionClose        PacketAction = 13
	PacketActionNet3         PacketAction = 17
	PacketActionInit         PacketAction = 255
)

var packetActionNames = map[PacketAction]string{
	PacketActionRequest: "Request",
	PacketActionAccept:  "Accept",
	PacketActionReply:   "Reply",
	PacketActionRemove:  "Remove",
	PacketActionAgree:   "Agree",
	PacketActionCreate:  "Create",
	PacketActionAdd:     "Add",
	PacketActionPlayer:  "Player",
	PacketActionTake:    "Take",
	PacketActionUse:     "Use",
	PacketActionOpen:    "Open",
	PacketActionClose:   "Close",
	PacketActionNet3:    "Net3",
	PacketActionInit:    "Init",
}

// String returns the name of the packet action, or "Unrecognized" if the
// value does not match a known action.
func (a PacketAction) String() string {
	if name, ok := packetActionNames[a]; ok {
		return name
	}
	return "Unrecognized"
}
