package model

import "testing"

func TestIsValidCategory(t *testing.T) {
	for _, c := range ValidCategories {
		if !IsValidCategory(c) {
			t.Errorf("kategori bawaan %q ditolak", c)
		}
	}

	for _, c := range []string{"", "general", "Makanan", "OTHER"} {
		if IsValidCategory(c) {
			t.Errorf("kategori %q seharusnya ditolak", c)
		}
	}
}

func TestValidCategoriesOrder(t *testing.T) {
	if len(ValidCategories) == 0 || ValidCategories[0] != ExpenseCategoryGeneral {
		t.Fatalf("kategori pertama = %v, want %q", ValidCategories, ExpenseCategoryGeneral)
	}
}
