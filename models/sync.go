package models

// SyncPacket is the compact authorization snapshot served by
// GET /api/sync and consumed by the device sync engine.
//
// Bits is a hex string, two characters per byte, least significant bit of
// byte 0 = card id 0. MaxID is the highest assigned card id; the packet
// describes exactly MaxID+1 cards.
//
// The allow/deny UID lists are optional. Historically the server emitted
// them under two key names each, so both the primary key and the
// "_uids"-suffixed alias are accepted and merged by the consumer.
type SyncPacket struct {
	MaxID     uint32   `json:"max_id"`
	Bits      string   `json:"bits"`
	Allow     []string `json:"allow,omitempty"`
	AllowUIDs []string `json:"allow_uids,omitempty"`
	Deny      []string `json:"deny,omitempty"`
	DenyUIDs  []string `json:"deny_uids,omitempty"`
}

// AllowList returns the merged allow UID list (primary key plus alias).
func (p SyncPacket) AllowList() []string {
	return mergeUIDLists(p.Allow, p.AllowUIDs)
}

// DenyList returns the merged deny UID list (primary key plus alias).
func (p SyncPacket) DenyList() []string {
	return mergeUIDLists(p.Deny, p.DenyUIDs)
}

func mergeUIDLists(primary, alias []string) []string {
	if len(alias) == 0 {
		return primary
	}
	merged := make([]string, 0, len(primary)+len(alias))
	merged = append(merged, primary...)
	merged = append(merged, alias...)
	return merged
}
