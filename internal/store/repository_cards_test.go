package store

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/go-gate-keeper/internal/logger"
	"github.com/MKhiriev/go-gate-keeper/models"
)

func newTestCardRepo(t *testing.T) (*cardRepository, sqlmock.Sqlmock, *sql.DB) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	l := logger.Nop()
	repo := &cardRepository{
		db:     &DB{DB: db, logger: l},
		logger: l,
	}
	return repo, mock, db
}

func cardColumns() []string {
	return []string{"uid", "authorized", "added_at", "deleted_at", "card_id", "uid_hash"}
}

func TestRegisterCard_AssignsNextCardID(t *testing.T) {
	repo, mock, db := newTestCardRepo(t)
	defer db.Close()

	ctx := context.Background()
	card := models.Card{
		UID:        "04A1B2C3",
		Authorized: true,
		AddedAt:    1700000000,
		UIDHash:    "c551a56c77806699",
	}

	// the UID is unknown, so a fresh card id is assigned
	mock.ExpectQuery("SELECT uid, authorized, added_at").
		WithArgs(card.UID).
		WillReturnError(sql.ErrNoRows)

	mock.ExpectBegin()
	mock.ExpectQuery("UPDATE counter").
		WillReturnRows(sqlmock.NewRows([]string{"value"}).AddRow(7))
	mock.ExpectQuery("INSERT INTO cards").
		WithArgs(card.UID, card.Authorized, card.AddedAt, int64(7), card.UIDHash).
		WillReturnRows(sqlmock.NewRows(cardColumns()).
			AddRow(card.UID, card.Authorized, card.AddedAt, nil, int64(7), card.UIDHash))
	mock.ExpectCommit()

	created, err := repo.RegisterCard(ctx, card)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.CardID != 7 {
		t.Errorf("expected CardID=7, got %d", created.CardID)
	}
	if created.DeletedAt != nil {
		t.Errorf("expected live card, got tombstone %v", *created.DeletedAt)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestRegisterCard_RevivesExistingCard(t *testing.T) {
	repo, mock, db := newTestCardRepo(t)
	defer db.Close()

	ctx := context.Background()
	deletedAt := int64(1700000500)

	// the UID already holds card id 3; the tombstone is cleared in place
	mock.ExpectQuery("SELECT uid, authorized, added_at").
		WithArgs("DEADBEEF").
		WillReturnRows(sqlmock.NewRows(cardColumns()).
			AddRow("DEADBEEF", false, int64(1700000000), deletedAt, int64(3), "61c8dee34d5403d5"))
	mock.ExpectQuery("UPDATE cards").
		WithArgs("DEADBEEF", true).
		WillReturnRows(sqlmock.NewRows(cardColumns()).
			AddRow("DEADBEEF", true, int64(1700000000), nil, int64(3), "61c8dee34d5403d5"))

	revived, err := repo.RegisterCard(ctx, models.Card{UID: "DEADBEEF", Authorized: true})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if revived.CardID != 3 {
		t.Errorf("expected card id 3 to be kept, got %d", revived.CardID)
	}
	if !revived.Authorized {
		t.Error("expected revived card to be authorized")
	}
	if revived.DeletedAt != nil {
		t.Error("expected tombstone to be cleared")
	}
}

func TestRegisterCard_CounterMissing(t *testing.T) {
	repo, mock, db := newTestCardRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT uid, authorized, added_at").
		WillReturnError(sql.ErrNoRows)
	mock.ExpectBegin()
	mock.ExpectQuery("UPDATE counter").
		WillReturnError(sql.ErrNoRows)
	mock.ExpectRollback()

	_, err := repo.RegisterCard(context.Background(), models.Card{UID: "04A1B2C3"})
	if !errors.Is(err, ErrCardIDExhausted) {
		t.Fatalf("expected ErrCardIDExhausted, got %v", err)
	}
}

func TestGetCard_NotFound(t *testing.T) {
	repo, mock, db := newTestCardRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT uid, authorized, added_at").
		WithArgs("CAFEBABE1234").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetCard(context.Background(), "CAFEBABE1234")
	if !errors.Is(err, ErrCardNotFound) {
		t.Fatalf("expected ErrCardNotFound, got %v", err)
	}
}

func TestGetCard_UnexpectedDBError(t *testing.T) {
	repo, mock, db := newTestCardRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT uid, authorized, added_at").
		WillReturnError(errors.New("db network error"))

	_, err := repo.GetCard(context.Background(), "04A1B2C3")
	if err == nil || !strings.Contains(err.Error(), "unexpected DB error") {
		t.Fatalf("expected wrapped unexpected DB error, got %v", err)
	}
}

func TestSetAuthorized_NotFound(t *testing.T) {
	repo, mock, db := newTestCardRepo(t)
	defer db.Close()

	mock.ExpectQuery("UPDATE cards").
		WithArgs("04A1B2C3", false).
		WillReturnError(sql.ErrNoRows)

	_, err := repo.SetAuthorized(context.Background(), "04A1B2C3", false)
	if !errors.Is(err, ErrCardNotFound) {
		t.Fatalf("expected ErrCardNotFound, got %v", err)
	}
}

func TestSoftDeleteCard_Success(t *testing.T) {
	repo, mock, db := newTestCardRepo(t)
	defer db.Close()

	mock.ExpectExec("UPDATE cards").
		WithArgs("04A1B2C3", int64(1700001000)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.SoftDeleteCard(context.Background(), "04A1B2C3", 1700001000); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestSoftDeleteCard_AlreadyDeleted(t *testing.T) {
	repo, mock, db := newTestCardRepo(t)
	defer db.Close()

	mock.ExpectExec("UPDATE cards").
		WithArgs("04A1B2C3", int64(1700001000)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.SoftDeleteCard(context.Background(), "04A1B2C3", 1700001000)
	if !errors.Is(err, ErrCardNotFound) {
		t.Fatalf("expected ErrCardNotFound, got %v", err)
	}
}

func TestMaxCardID_EmptyRegistry(t *testing.T) {
	repo, mock, db := newTestCardRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT COALESCE").
		WillReturnRows(sqlmock.NewRows([]string{"coalesce"}).AddRow(0))

	maxID, err := repo.MaxCardID(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if maxID != 0 {
		t.Errorf("expected 0 for empty registry, got %d", maxID)
	}
}

func TestAuthorizedCardIDs(t *testing.T) {
	repo, mock, db := newTestCardRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT card_id").
		WillReturnRows(sqlmock.NewRows([]string{"card_id"}).AddRow(1).AddRow(4).AddRow(9))

	ids, err := repo.AuthorizedCardIDs(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(ids) != 3 || ids[0] != 1 || ids[1] != 4 || ids[2] != 9 {
		t.Errorf("expected [1 4 9], got %v", ids)
	}
}

func TestPartitionedUIDs(t *testing.T) {
	repo, mock, db := newTestCardRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT uid, authorized").
		WillReturnRows(sqlmock.NewRows([]string{"uid", "authorized"}).
			AddRow("04A1B2C3", true).
			AddRow("DEADBEEF", false).
			AddRow("CAFEBABE1234", true))

	allow, deny, err := repo.PartitionedUIDs(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(allow) != 2 || allow[0] != "04A1B2C3" || allow[1] != "CAFEBABE1234" {
		t.Errorf("unexpected allow list: %v", allow)
	}
	if len(deny) != 1 || deny[0] != "DEADBEEF" {
		t.Errorf("unexpected deny list: %v", deny)
	}
}
