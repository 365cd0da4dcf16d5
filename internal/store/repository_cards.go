package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-gate-keeper/internal/logger"
	"github.com/MKhiriev/go-gate-keeper/models"
	"github.com/jackc/pgerrcode"
)

// cardRepository is the PostgreSQL-backed implementation of [CardRepository].
// It maintains the "cards" table and the monotonic card id counter that maps
// every card to a permanent bitset position.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type cardRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewCardRepository constructs a [CardRepository] backed by the provided
// database connection and logger.
func NewCardRepository(db *DB, logger *logger.Logger) CardRepository {
	logger.Debug().Msg("creating card repository")
	return &cardRepository{
		db:     db,
		logger: logger,
	}
}

// RegisterCard inserts a new card, assigning the next card id from the
// counter, or revives an existing (possibly tombstoned) card in place.
//
// The insert path runs in a transaction so a crash between the counter
// bump and the INSERT cannot leak a card id into a half-created record.
//
// Error handling:
//   - counter row missing → [ErrCardIDExhausted].
//   - PostgreSQL unique_violation (23505) on concurrent insert → retried
//     as a revive.
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *cardRepository) RegisterCard(ctx context.Context, card models.Card) (models.Card, error) {
	log := logger.FromContext(ctx)

	// fast path: the UID is already known, keep its card id and added_at
	_, err := r.findByUID(ctx, card.UID)
	switch {
	case err == nil:
		return r.revive(ctx, card)
	case !errors.Is(err, ErrCardNotFound):
		return models.Card{}, err
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "*cardRepository.RegisterCard").Msg("error: cannot begin transaction")
		return models.Card{}, fmt.Errorf("unexpected DB error: %w", err)
	}
	defer tx.Rollback()

	// assign a permanent bitset position
	var cardID int64
	if err = tx.QueryRowContext(ctx, nextCardID).Scan(&cardID); err != nil {
		log.Err(err).Str("func", "*cardRepository.RegisterCard").Msg("error: cannot advance card id counter")
		if errors.Is(err, sql.ErrNoRows) {
			return models.Card{}, ErrCardIDExhausted
		}
		return models.Card{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	var created models.Card
	row := tx.QueryRowContext(ctx, insertCard, card.UID, card.Authorized, card.AddedAt, cardID, card.UIDHash)
	if err = row.Scan(&created.UID, &created.Authorized, &created.AddedAt, &created.DeletedAt, &created.CardID, &created.UIDHash); err != nil {
		log.Err(err).Str("func", "*cardRepository.RegisterCard").Msg("error: inserting card")

		switch postgresError(err) {
		case pgerrcode.UniqueViolation:
			// lost the race: another request created the UID first
			return r.revive(ctx, card)
		default:
			return models.Card{}, fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).Str("func", "*cardRepository.RegisterCard").Msg("error: committing transaction")
		return models.Card{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return created, nil
}

// revive clears the tombstone and refreshes the authorized flag of a card
// that already holds a card id.
func (r *cardRepository) revive(ctx context.Context, card models.Card) (models.Card, error) {
	log := logger.FromContext(ctx)

	var revived models.Card
	row := r.db.QueryRowContext(ctx, reviveCard, card.UID, card.Authorized)
	if err := row.Scan(&revived.UID, &revived.Authorized, &revived.AddedAt, &revived.DeletedAt, &revived.CardID, &revived.UIDHash); err != nil {
		log.Err(err).Str("func", "*cardRepository.revive").Msg("error: reviving card")
		if errors.Is(err, sql.ErrNoRows) {
			return models.Card{}, ErrCardNotFound
		}
		return models.Card{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return revived, nil
}

// findByUID fetches a card regardless of its tombstone state.
func (r *cardRepository) findByUID(ctx context.Context, uid string) (models.Card, error) {
	log := logger.FromContext(ctx)

	var found models.Card
	row := r.db.QueryRowContext(ctx, findCardByUID, uid)
	if err := row.Scan(&found.UID, &found.Authorized, &found.AddedAt, &found.DeletedAt, &found.CardID, &found.UIDHash); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Card{}, ErrCardNotFound
		}
		log.Err(err).Str("func", "*cardRepository.findByUID").Msg("error: scanning card")
		return models.Card{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return found, nil
}

// GetCard retrieves the live card with the given UID.
//
// Error handling:
//   - no live row → [ErrCardNotFound] (tombstoned cards are invisible here).
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *cardRepository) GetCard(ctx context.Context, uid string) (models.Card, error) {
	log := logger.FromContext(ctx)

	var found models.Card
	row := r.db.QueryRowContext(ctx, findLiveCardByUID, uid)
	if err := row.Scan(&found.UID, &found.Authorized, &found.AddedAt, &found.DeletedAt, &found.CardID, &found.UIDHash); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Card{}, ErrCardNotFound
		}
		log.Err(err).Str("func", "*cardRepository.GetCard").Msg("error: scanning card")
		return models.Card{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return found, nil
}

// ListCards returns every live card ordered by its card id.
func (r *cardRepository) ListCards(ctx context.Context) ([]models.Card, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, listLiveCards)
	if err != nil {
		log.Err(err).Str("func", "*cardRepository.ListCards").Msg("error: executing query")
		return nil, fmt.Errorf("unexpected DB error: %w", err)
	}
	defer rows.Close()

	var cards []models.Card
	for rows.Next() {
		var card models.Card
		if err = rows.Scan(&card.UID, &card.Authorized, &card.AddedAt, &card.DeletedAt, &card.CardID, &card.UIDHash); err != nil {
			log.Err(err).Str("func", "*cardRepository.ListCards").Msg("error: scanning card rows")
			return nil, fmt.Errorf("unexpected DB error: %w", err)
		}
		cards = append(cards, card)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected DB error: %w", err)
	}

	return cards, nil
}

// SetAuthorized flips the authorized flag of a live card and returns the
// updated record, or [ErrCardNotFound] when the UID is unknown or deleted.
func (r *cardRepository) SetAuthorized(ctx context.Context, uid string, authorized bool) (models.Card, error) {
	log := logger.FromContext(ctx)

	var updated models.Card
	row := r.db.QueryRowContext(ctx, setCardAuthorized, uid, authorized)
	if err := row.Scan(&updated.UID, &updated.Authorized, &updated.AddedAt, &updated.DeletedAt, &updated.CardID, &updated.UIDHash); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Card{}, ErrCardNotFound
		}
		log.Err(err).Str("func", "*cardRepository.SetAuthorized").Msg("error: updating card")
		return models.Card{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return updated, nil
}

// SoftDeleteCard tombstones a live card. The card id stays reserved so the
// bitset position is never reassigned.
func (r *cardRepository) SoftDeleteCard(ctx context.Context, uid string, deletedAt int64) error {
	log := logger.FromContext(ctx)

	res, err := r.db.ExecContext(ctx, softDeleteCard, uid, deletedAt)
	if err != nil {
		log.Err(err).Str("func", "*cardRepository.SoftDeleteCard").Msg("error: executing statement")
		return fmt.Errorf("unexpected DB error: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("unexpected DB error: %w", err)
	}
	if affected == 0 {
		return ErrCardNotFound
	}

	return nil
}

// MaxCardID returns the highest card id ever assigned, including ids held
// by tombstoned cards, or 0 when no card id was ever assigned.
func (r *cardRepository) MaxCardID(ctx context.Context) (int64, error) {
	log := logger.FromContext(ctx)

	var maxID int64
	if err := r.db.QueryRowContext(ctx, maxAssignedCardID).Scan(&maxID); err != nil {
		log.Err(err).Str("func", "*cardRepository.MaxCardID").Msg("error: scanning max card id")
		return 0, fmt.Errorf("unexpected DB error: %w", err)
	}

	return maxID, nil
}

// AuthorizedCardIDs returns the card ids of every live authorized card in
// ascending order.
func (r *cardRepository) AuthorizedCardIDs(ctx context.Context) ([]int64, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, authorizedCardIDs)
	if err != nil {
		log.Err(err).Str("func", "*cardRepository.AuthorizedCardIDs").Msg("error: executing query")
		return nil, fmt.Errorf("unexpected DB error: %w", err)
	}
	defer rows.Close()

	var ids []int64
	for rows.Next() {
		var id int64
		if err = rows.Scan(&id); err != nil {
			log.Err(err).Str("func", "*cardRepository.AuthorizedCardIDs").Msg("error: scanning card id rows")
			return nil, fmt.Errorf("unexpected DB error: %w", err)
		}
		ids = append(ids, id)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected DB error: %w", err)
	}

	return ids, nil
}

// PartitionedUIDs splits the UIDs of all live cards into allow and deny
// lists by their authorized flag.
func (r *cardRepository) PartitionedUIDs(ctx context.Context) ([]string, []string, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, liveCardUIDs)
	if err != nil {
		log.Err(err).Str("func", "*cardRepository.PartitionedUIDs").Msg("error: executing query")
		return nil, nil, fmt.Errorf("unexpected DB error: %w", err)
	}
	defer rows.Close()

	var allow, deny []string
	for rows.Next() {
		var uid string
		var authorized bool
		if err = rows.Scan(&uid, &authorized); err != nil {
			log.Err(err).Str("func", "*cardRepository.PartitionedUIDs").Msg("error: scanning uid rows")
			return nil, nil, fmt.Errorf("unexpected DB error: %w", err)
		}
		if authorized {
			allow = append(allow, uid)
		} else {
			deny = append(deny, uid)
		}
	}
	if err = rows.Err(); err != nil {
		return nil, nil, fmt.Errorf("unexpected DB error: %w", err)
	}

	return allow, deny, nil
}
