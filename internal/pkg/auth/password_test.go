package auth

import "testing"

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("secret123")
	if err != nil {
		t.Fatalf("HashPassword() error = %v", err)
	}
	if hash == "secret123" {
		t.Fatal("HashPassword() returned the plaintext")
	}

	if !CheckPassword(hash, "secret123") {
		t.Error("CheckPassword() with correct password = false, want true")
	}
	if CheckPassword(hash, "wrong-password") {
		t.Error("CheckPassword() with wrong password = true, want false")
	}
}

func TestHashPasswordProducesDistinctDigests(t *testing.T) {
	first, err := HashPassword("secret123")
	if err != nil {
		t.Fatalf("HashPassword() error = %v", err)
	}
	second, err := HashPassword("secret123")
	if err != nil {
		t.Fatalf("HashPassword() error = %v", err)
	}
	if first == second {
		t.Error("two hashes of the same password are identical, want salted digests")
	}
}
