package catalog

import "testing"

func TestFilterMedicinesTabs(t *testing.T) {
	tests := []struct {
		tab      string
		expected int
	}{
		{"all", 9},
		{"popular", 4},
		{"prescription", 2},
		{"otc", 7},
	}

	for _, tt := range tests {
		t.Run(tt.tab, func(t *testing.T) {
			filtered := FilterMedicines(MedicineQuery{Tab: tt.tab})

			if len(filtered) != tt.expected {
				t.Errorf("expected %d medicines for tab %s, got %d", tt.expected, tt.tab, len(filtered))
			}
		})
	}
}

func TestFilterMedicinesSearch(t *testing.T) {
	filtered := FilterMedicines(MedicineQuery{Search: "paracetamol"})

	if len(filtered) != 1 || filtered[0].ID != "1" {
		t.Fatalf("expected just Paracetamol, got %+v", filtered)
	}

	// Search also matches categories
	filtered = FilterMedicines(MedicineQuery{Search: "first aid"})

	if len(filtered) != 3 {
		t.Errorf("expected 3 first aid products, got %d", len(filtered))
	}
}

func TestFilterMedicinesCategoriesAndPrice(t *testing.T) {
	filtered := FilterMedicines(MedicineQuery{Categories: []string{"Fever & Pain Relief"}})

	if len(filtered) != 2 {
		t.Fatalf("expected 2 fever medicines, got %d", len(filtered))
	}

	filtered = FilterMedicines(MedicineQuery{MinPrice: 40, MaxPrice: 100})

	for _, medicine := range filtered {
		if medicine.Price < 40 || medicine.Price > 100 {
			t.Errorf("medicine %s outside price range: %v", medicine.Name, medicine.Price)
		}
	}
	if len(filtered) != 4 {
		t.Errorf("expected 4 medicines between 40 and 100, got %d", len(filtered))
	}
}

func TestGetMedicine(t *testing.T) {
	if medicine := GetMedicine("4"); medicine == nil || !medicine.PrescriptionRequired {
		t.Errorf("expected Amoxicillin to require a prescription, got %+v", medicine)
	}

	if medicine := GetMedicine("999"); medicine != nil {
		t.Errorf("expected no medicine for unknown id, got %+v", medicine)
	}
}

func TestFilterDoctors(t *testing.T) {
	if all := FilterDoctors(DoctorQuery{}); len(all) != 6 {
		t.Fatalf("expected 6 doctors, got %d", len(all))
	}

	cardiologists := FilterDoctors(DoctorQuery{Specialty: "Cardiologist"})

	if len(cardiologists) != 2 {
		t.Errorf("expected 2 cardiologists, got %d", len(cardiologists))
	}

	found := FilterDoctors(DoctorQuery{Search: "sharma"})

	if len(found) != 1 || found[0].ID != "2" {
		t.Errorf("expected Dr. Priya Sharma, got %+v", found)
	}

	// Specialty search matches too
	if found := FilterDoctors(DoctorQuery{Search: "pediatric"}); len(found) != 2 {
		t.Errorf("expected 2 pediatricians by search, got %d", len(found))
	}
}
