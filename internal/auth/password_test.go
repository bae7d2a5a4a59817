package auth

import "testing"

func TestHashAndCheckPassword(t *testing.T) {
	t.Parallel()

	hash, err := HashPassword("secret1")
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}
	if hash == "secret1" {
		t.Fatal("hash must not equal the plaintext")
	}

	if !CheckPassword("secret1", hash) {
		t.Fatal("expected matching password to verify")
	}
	if CheckPassword("secret2", hash) {
		t.Fatal("expected mismatching password to fail")
	}
}

func TestHashPassword_UniqueSalts(t *testing.T) {
	t.Parallel()

	first, err := HashPassword("secret1")
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}
	second, err := HashPassword("secret1")
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}
	if first == second {
		t.Fatal("two hashes of the same password must differ (per-hash salt)")
	}
}

func TestCheckPassword_GarbageHash(t *testing.T) {
	t.Parallel()

	if CheckPassword("secret1", "not-a-bcrypt-hash") {
		t.Fatal("expected garbage hash to fail verification")
	}
}
