package store_test

import (
	"os"
	"path/filepath"
	"testing"

	"swiftdrop/internal/domain"
	"swiftdrop/internal/store"
)

func newStore(t *testing.T) *store.FileStore {
	t.Helper()
	s, err := store.NewFileStore(filepath.Join(t.TempDir(), "customer"))
	if err != nil {
		t.Fatalf("new store: %v", err)
	}
	return s
}

func TestTokens_SaveLoad(t *testing.T) {
	s := newStore(t)

	if s.LoggedIn() {
		t.Fatal("fresh store should not be logged in")
	}
	if err := s.SaveTokens(domain.AuthTokens{Access: "acc", Refresh: "ref"}); err != nil {
		t.Fatalf("save tokens: %v", err)
	}

	tok, ok := s.Token()
	if !ok || tok != "acc" {
		t.Fatalf("Token() = %q, %v; want \"acc\", true", tok, ok)
	}
	ref, ok := s.RefreshToken()
	if !ok || ref != "ref" {
		t.Fatalf("RefreshToken() = %q, %v; want \"ref\", true", ref, ok)
	}
	if !s.LoggedIn() {
		t.Fatal("expected logged in after SaveTokens")
	}
}

func TestEmptyTokenIsNotLoggedIn(t *testing.T) {
	s := newStore(t)
	if err := s.SaveTokens(domain.AuthTokens{}); err != nil {
		t.Fatalf("save tokens: %v", err)
	}
	if s.LoggedIn() {
		t.Fatal("empty access token must not count as logged in")
	}
}

func TestUser_SaveLoadAndReplace(t *testing.T) {
	s := newStore(t)

	if _, ok := s.User(); ok {
		t.Fatal("fresh store should have no user")
	}
	u := domain.User{ID: 7, Name: "Asha", Email: "asha@example.com", Role: domain.RoleCustomer}
	if err := s.SaveUser(u); err != nil {
		t.Fatalf("save user: %v", err)
	}
	got, ok := s.User()
	if !ok || got != u {
		t.Fatalf("User() = %+v, %v; want %+v", got, ok, u)
	}

	// Replaced wholesale on next login.
	u2 := domain.User{ID: 8, Name: "Ben", Role: domain.RoleDeliveryPartner}
	if err := s.SaveUser(u2); err != nil {
		t.Fatalf("save user: %v", err)
	}
	if got, _ := s.User(); got != u2 {
		t.Fatalf("User() after replace = %+v, want %+v", got, u2)
	}
}

func TestCorruptPrefsReadsAsAbsent(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "customer")
	s, err := store.NewFileStore(dir)
	if err != nil {
		t.Fatalf("new store: %v", err)
	}
	if err := s.SaveUser(domain.User{ID: 1}); err != nil {
		t.Fatalf("save user: %v", err)
	}

	// Scribble over the sealed blob.
	if err := os.WriteFile(filepath.Join(dir, "prefs.enc"), []byte("{garbage"), 0o600); err != nil {
		t.Fatalf("corrupt prefs: %v", err)
	}

	if _, ok := s.User(); ok {
		t.Fatal("corrupt prefs must read as absent, not error")
	}
	if s.LoggedIn() {
		t.Fatal("corrupt prefs must not report logged in")
	}
}

func TestClear(t *testing.T) {
	s := newStore(t)
	if err := s.SaveTokens(domain.AuthTokens{Access: "acc"}); err != nil {
		t.Fatalf("save tokens: %v", err)
	}
	if err := s.SaveUserType(domain.RoleCustomer); err != nil {
		t.Fatalf("save user type: %v", err)
	}

	if err := s.Clear(); err != nil {
		t.Fatalf("clear: %v", err)
	}
	if s.LoggedIn() {
		t.Fatal("logged in after Clear")
	}
	if _, ok := s.UserType(); ok {
		t.Fatal("user type survived Clear")
	}

	// The store stays usable after a wipe.
	if err := s.SaveTokens(domain.AuthTokens{Access: "again"}); err != nil {
		t.Fatalf("save after clear: %v", err)
	}
	if !s.LoggedIn() {
		t.Fatal("expected logged in after re-save")
	}
}

func TestCart_PersistsWholesale(t *testing.T) {
	s := newStore(t)

	c := domain.Cart{}.Add(domain.CartItem{ProductID: 3, Name: "Bread", Price: 1.2, Quantity: 2})
	if err := s.SaveCart(c); err != nil {
		t.Fatalf("save cart: %v", err)
	}
	got := s.Cart()
	if len(got.Items) != 1 || got.Items[0].ProductID != 3 || got.Items[0].Quantity != 2 {
		t.Fatalf("Cart() = %+v, want the saved cart", got)
	}

	empty := newStore(t)
	if got := empty.Cart(); len(got.Items) != 0 {
		t.Fatalf("fresh store cart = %+v, want empty", got)
	}
}
