package store

const (
	nextCardID = `UPDATE counter
		SET value = value + 1
		WHERE name = 'next_card_id'
		RETURNING value - 1;`

	insertCard = `INSERT INTO cards (uid, authorized, added_at, deleted_at, card_id, uid_hash)
		VALUES ($1, $2, $3, NULL, $4, $5)
		RETURNING uid, authorized, added_at, deleted_at, card_id, uid_hash;`

	reviveCard = `UPDATE cards
		SET authorized = $2, deleted_at = NULL
		WHERE uid = $1
		RETURNING uid, authorized, added_at, deleted_at, card_id, uid_hash;`

	findCardByUID = `SELECT uid, authorized, added_at, deleted_at, card_id, uid_hash
		FROM cards
		WHERE uid = $1;`

	findLiveCardByUID = `SELECT uid, authorized, added_at, deleted_at, card_id, uid_hash
		FROM cards
		WHERE uid = $1 AND deleted_at IS NULL;`

	listLiveCards = `SELECT uid, authorized, added_at, deleted_at, card_id, uid_hash
		FROM cards
		WHERE deleted_at IS NULL
		ORDER BY card_id;`

	setCardAuthorized = `UPDATE cards
		SET authorized = $2
		WHERE uid = $1 AND deleted_at IS NULL
		RETURNING uid, authorized, added_at, deleted_at, card_id, uid_hash;`

	softDeleteCard = `UPDATE cards
		SET deleted_at = $2
		WHERE uid = $1 AND deleted_at IS NULL;`

	maxAssignedCardID = `SELECT COALESCE(MAX(card_id), 0)
		FROM cards;`

	authorizedCardIDs = `SELECT card_id
		FROM cards
		WHERE deleted_at IS NULL AND authorized = TRUE
		ORDER BY card_id;`

	liveCardUIDs = `SELECT uid, authorized
		FROM cards
		WHERE deleted_at IS NULL
		ORDER BY card_id;`
)
