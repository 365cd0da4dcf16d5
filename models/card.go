package models

// Card is a card-registry record as stored by the server.
//
// CardID is assigned once from a monotonic counter and indexes the card's
// bit in the sync packet. A card is never deleted physically; DeletedAt
// marks it removed so its card id (and bitset position) is never reused.
type Card struct {
	UID        string `json:"uid"`
	Authorized bool   `json:"authorized"`
	AddedAt    int64  `json:"added_at"`
	DeletedAt  *int64 `json:"deleted_at,omitempty"`
	CardID     int64  `json:"card_id"`
	UIDHash    string `json:"uid_hash"`
}

// CardLookup is the response of GET /api/cards/{uid}.
//
// A missing or deleted card is reported with Exists=false (HTTP 404); the
// remaining fields are only meaningful when Exists is true. CardID is -1
// when the card exists but has not been assigned a bitset position yet.
type CardLookup struct {
	Exists     bool   `json:"exists"`
	Authorized bool   `json:"authorized,omitempty"`
	CardID     int64  `json:"card_id,omitempty"`
	UIDHash    string `json:"uid_hash,omitempty"`
}

// RegisterCardRequest is the body of POST /api/cards.
type RegisterCardRequest struct {
	UID        string `json:"uid"`
	Authorized *bool  `json:"authorized,omitempty"`
}
