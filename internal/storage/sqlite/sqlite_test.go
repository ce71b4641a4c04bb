package sqlite

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/splitcart/splitcart/internal/models"
	"github.com/splitcart/splitcart/internal/storage"
)

func newTestStore(t *testing.T) *SQLiteStore {
	t.Helper()

	tempDir, err := os.MkdirTemp("", "splitcart-test-*")
	if err != nil {
		t.Fatalf("Failed to create temp dir: %v", err)
	}
	t.Cleanup(func() { os.RemoveAll(tempDir) })

	store, err := New(filepath.Join(tempDir, "test.db"))
	if err != nil {
		t.Fatalf("Failed to create store: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	return store
}

func mustCreateUser(t *testing.T, store *SQLiteStore, username string) *models.User {
	t.Helper()
	user := models.NewUser(username, "", "hash")
	if err := store.CreateUser(context.Background(), user); err != nil {
		t.Fatalf("CreateUser(%s) failed: %v", username, err)
	}
	return user
}

func mustCreateList(t *testing.T, store *SQLiteStore, name, code, creatorID string) *models.List {
	t.Helper()
	list := &models.List{Name: name, Code: code, CreatedBy: creatorID}
	if err := store.CreateList(context.Background(), list); err != nil {
		t.Fatalf("CreateList(%s) failed: %v", name, err)
	}
	return list
}

func TestSQLiteStore_Users(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	t.Run("create and look up by id and username", func(t *testing.T) {
		user := mustCreateUser(t, store, "alice")

		byID, err := store.GetUserByID(ctx, user.ID)
		if err != nil {
			t.Fatalf("GetUserByID failed: %v", err)
		}
		if byID.Username != "alice" {
			t.Errorf("username = %s, want alice", byID.Username)
		}

		byName, err := store.GetUserByUsername(ctx, "alice")
		if err != nil {
			t.Fatalf("GetUserByUsername failed: %v", err)
		}
		if byName.ID != user.ID {
			t.Errorf("id = %s, want %s", byName.ID, user.ID)
		}
	})

	t.Run("missing user wraps ErrNotFound", func(t *testing.T) {
		_, err := store.GetUserByUsername(ctx, "nobody")
		if !errors.Is(err, storage.ErrNotFound) {
			t.Errorf("expected ErrNotFound, got %v", err)
		}
	})

	t.Run("duplicate username rejected", func(t *testing.T) {
		mustCreateUser(t, store, "bob")
		err := store.CreateUser(ctx, models.NewUser("bob", "", "hash"))
		if err == nil {
			t.Error("expected error for duplicate username")
		}
	})

	t.Run("empty email is not unique-constrained", func(t *testing.T) {
		// Both users have no email; NULL values must not collide.
		mustCreateUser(t, store, "carol")
		mustCreateUser(t, store, "dave")
	})
}

func TestSQLiteStore_Lists(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	alice := mustCreateUser(t, store, "alice")
	bob := mustCreateUser(t, store, "bob")

	t.Run("creator becomes first member", func(t *testing.T) {
		list := mustCreateList(t, store, "Groceries", "Abc123", alice.ID)

		members, err := store.ListMembers(ctx, list.ID)
		if err != nil {
			t.Fatalf("ListMembers failed: %v", err)
		}
		if len(members) != 1 || members[0] != alice.ID {
			t.Errorf("members = %v, want [%s]", members, alice.ID)
		}
	})

	t.Run("lookup by code is exact and case-sensitive", func(t *testing.T) {
		mustCreateList(t, store, "Trip", "XyZ789", alice.ID)

		list, err := store.GetListByCode(ctx, "XyZ789")
		if err != nil {
			t.Fatalf("GetListByCode failed: %v", err)
		}
		if list.Name != "Trip" {
			t.Errorf("name = %s, want Trip", list.Name)
		}

		if _, err := store.GetListByCode(ctx, "xyz789"); !errors.Is(err, storage.ErrNotFound) {
			t.Errorf("lowercased code should not match, got %v", err)
		}
	})

	t.Run("duplicate join code rejected", func(t *testing.T) {
		mustCreateList(t, store, "One", "SAME00", alice.ID)
		err := store.CreateList(ctx, &models.List{Name: "Two", Code: "SAME00", CreatedBy: alice.ID})
		if err == nil {
			t.Error("expected error for duplicate join code")
		}
	})

	t.Run("membership is idempotent", func(t *testing.T) {
		list := mustCreateList(t, store, "Shared", "Join01", alice.ID)

		if err := store.AddListMember(ctx, list.ID, bob.ID); err != nil {
			t.Fatalf("AddListMember failed: %v", err)
		}
		if err := store.AddListMember(ctx, list.ID, bob.ID); err != nil {
			t.Fatalf("second AddListMember failed: %v", err)
		}

		members, err := store.ListMembers(ctx, list.ID)
		if err != nil {
			t.Fatalf("ListMembers failed: %v", err)
		}
		if len(members) != 2 {
			t.Errorf("got %d members, want 2 (no duplicates)", len(members))
		}
	})

	t.Run("adding member to missing list fails", func(t *testing.T) {
		err := store.AddListMember(ctx, "no-such-list", bob.ID)
		if !errors.Is(err, storage.ErrNotFound) {
			t.Errorf("expected ErrNotFound, got %v", err)
		}
	})

	t.Run("ListsForUser reflects membership", func(t *testing.T) {
		store := newTestStore(t)
		alice := mustCreateUser(t, store, "alice")
		bob := mustCreateUser(t, store, "bob")
		mine := mustCreateList(t, store, "Mine", "Aaaaaa", alice.ID)
		mustCreateList(t, store, "Theirs", "Bbbbbb", bob.ID)

		lists, err := store.ListsForUser(ctx, alice.ID)
		if err != nil {
			t.Fatalf("ListsForUser failed: %v", err)
		}
		if len(lists) != 1 || lists[0].ID != mine.ID {
			t.Errorf("expected only alice's list, got %d lists", len(lists))
		}
	})
}

func TestSQLiteStore_Items(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	alice := mustCreateUser(t, store, "alice")
	list := mustCreateList(t, store, "Groceries", "Code01", alice.ID)

	t.Run("unpriced item round-trips with nil fields", func(t *testing.T) {
		item := &models.Item{ListID: list.ID, Name: "Milk"}
		if err := store.CreateItem(ctx, item); err != nil {
			t.Fatalf("CreateItem failed: %v", err)
		}

		got, err := store.GetItem(ctx, item.ID)
		if err != nil {
			t.Fatalf("GetItem failed: %v", err)
		}
		if got.Price != nil || got.PaidBy != nil {
			t.Errorf("expected nil price and payer, got %v / %v", got.Price, got.PaidBy)
		}
		if got.Completed {
			t.Error("new item should not be completed")
		}
	})

	t.Run("priced item keeps exact decimal", func(t *testing.T) {
		price := decimal.RequireFromString("3.99")
		item := &models.Item{ListID: list.ID, Name: "Bread", Price: &price, PaidBy: &alice.ID}
		if err := store.CreateItem(ctx, item); err != nil {
			t.Fatalf("CreateItem failed: %v", err)
		}

		got, err := store.GetItem(ctx, item.ID)
		if err != nil {
			t.Fatalf("GetItem failed: %v", err)
		}
		if got.Price == nil || !got.Price.Equal(price) {
			t.Errorf("price = %v, want 3.99", got.Price)
		}
		if got.PaidBy == nil || *got.PaidBy != alice.ID {
			t.Errorf("paidBy = %v, want %s", got.PaidBy, alice.ID)
		}
	})

	t.Run("update replaces the record", func(t *testing.T) {
		item := &models.Item{ListID: list.ID, Name: "Eggs"}
		if err := store.CreateItem(ctx, item); err != nil {
			t.Fatalf("CreateItem failed: %v", err)
		}

		price := decimal.RequireFromString("2.50")
		item.Price = &price
		item.Completed = true
		item.PaidBy = &alice.ID
		if err := store.UpdateItem(ctx, item); err != nil {
			t.Fatalf("UpdateItem failed: %v", err)
		}

		got, err := store.GetItem(ctx, item.ID)
		if err != nil {
			t.Fatalf("GetItem failed: %v", err)
		}
		if !got.Completed || got.Price == nil || !got.Price.Equal(price) {
			t.Errorf("update not applied: %+v", got)
		}
	})

	t.Run("updating a missing item fails", func(t *testing.T) {
		err := store.UpdateItem(ctx, &models.Item{ID: "no-such-item", Name: "Ghost"})
		if !errors.Is(err, storage.ErrNotFound) {
			t.Errorf("expected ErrNotFound, got %v", err)
		}
	})

	t.Run("items come back in insertion order", func(t *testing.T) {
		store := newTestStore(t)
		alice := mustCreateUser(t, store, "alice")
		list := mustCreateList(t, store, "Ordered", "Code02", alice.ID)

		for _, name := range []string{"first", "second", "third"} {
			if err := store.CreateItem(ctx, &models.Item{ListID: list.ID, Name: name}); err != nil {
				t.Fatalf("CreateItem(%s) failed: %v", name, err)
			}
		}

		items, err := store.ItemsForList(ctx, list.ID)
		if err != nil {
			t.Fatalf("ItemsForList failed: %v", err)
		}
		if len(items) != 3 {
			t.Fatalf("got %d items, want 3", len(items))
		}
		for i, want := range []string{"first", "second", "third"} {
			if items[i].Name != want {
				t.Errorf("items[%d].Name = %s, want %s", i, items[i].Name, want)
			}
		}
	})
}

func TestSQLiteStore_Debts(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	alice := mustCreateUser(t, store, "alice")
	bob := mustCreateUser(t, store, "bob")
	list := mustCreateList(t, store, "Groceries", "Code03", alice.ID)

	newDebt := func(amount string) *models.Debt {
		return &models.Debt{
			ListID:   list.ID,
			FromUser: bob.ID,
			ToUser:   alice.ID,
			Amount:   decimal.RequireFromString(amount),
		}
	}

	t.Run("create assigns id and timestamp", func(t *testing.T) {
		debt := newDebt("10")
		if err := store.CreateDebt(ctx, debt); err != nil {
			t.Fatalf("CreateDebt failed: %v", err)
		}
		if debt.ID == "" {
			t.Error("expected debt ID to be generated")
		}
		if debt.CreatedAt == 0 {
			t.Error("expected CreatedAt to be set")
		}
	})

	t.Run("settle flips once and stays settled", func(t *testing.T) {
		debt := newDebt("5.25")
		if err := store.CreateDebt(ctx, debt); err != nil {
			t.Fatalf("CreateDebt failed: %v", err)
		}

		settled, err := store.SettleDebt(ctx, debt.ID)
		if err != nil {
			t.Fatalf("SettleDebt failed: %v", err)
		}
		if !settled.Settled {
			t.Error("debt should be settled")
		}
		if !settled.Amount.Equal(debt.Amount) {
			t.Errorf("amount = %s, want %s", settled.Amount, debt.Amount)
		}

		// Settling again is a no-op, not an error.
		again, err := store.SettleDebt(ctx, debt.ID)
		if err != nil {
			t.Fatalf("second SettleDebt failed: %v", err)
		}
		if !again.Settled {
			t.Error("debt should remain settled")
		}
	})

	t.Run("settling a missing debt fails with ErrNotFound", func(t *testing.T) {
		_, err := store.SettleDebt(ctx, "no-such-debt")
		if !errors.Is(err, storage.ErrNotFound) {
			t.Errorf("expected ErrNotFound, got %v", err)
		}
	})

	t.Run("history accumulates across creates", func(t *testing.T) {
		store := newTestStore(t)
		alice := mustCreateUser(t, store, "alice")
		bob := mustCreateUser(t, store, "bob")
		list := mustCreateList(t, store, "Hist", "Code04", alice.ID)

		for i := 0; i < 3; i++ {
			debt := &models.Debt{
				ListID:   list.ID,
				FromUser: bob.ID,
				ToUser:   alice.ID,
				Amount:   decimal.RequireFromString("1"),
			}
			if err := store.CreateDebt(ctx, debt); err != nil {
				t.Fatalf("CreateDebt failed: %v", err)
			}
		}

		debts, err := store.DebtsForList(ctx, list.ID)
		if err != nil {
			t.Fatalf("DebtsForList failed: %v", err)
		}
		if len(debts) != 3 {
			t.Errorf("got %d debts, want 3", len(debts))
		}
	})
}
