package catalog

import (
	_ "embed"
	"strings"
	"sync"

	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"
)

//go:embed data/medicines.yaml
var medicinesYAML []byte

// Medicine is one catalog entry orderable for on-train delivery.
type Medicine struct {
	ID                   string  `yaml:"id" json:"id"`
	Name                 string  `yaml:"name" json:"name"`
	Category             string  `yaml:"category" json:"category"`
	Price                float64 `yaml:"price" json:"price"`
	Image                string  `yaml:"image" json:"image"`
	Description          string  `yaml:"description" json:"description"`
	PrescriptionRequired bool    `yaml:"prescriptionRequired" json:"prescriptionRequired"`
	Popular              bool    `yaml:"popular" json:"popular"`
}

// MedicineCategories are the fixed shelves the catalog is organised into.
var MedicineCategories = []string{
	"Fever & Pain Relief",
	"Stomach Care",
	"First Aid",
	"Diabetes Care",
	"Cardiac Care",
	"Respiratory Care",
	"Skin Care",
	"Eye & Ear Care",
}

var medicines []Medicine
var loadMedicinesOnce sync.Once

func Medicines() []Medicine {
	loadMedicinesOnce.Do(func() {
		if err := yaml.Unmarshal(medicinesYAML, &medicines); err != nil {
			log.Fatal().Err(err).Msg("Failed to load medicines dataset")
		}
	})

	return medicines
}

// MedicineQuery narrows the catalog the way the medicines page filters it.
// Zero values leave a dimension unfiltered.
type MedicineQuery struct {
	Tab        string // all, popular, prescription, otc
	Search     string
	Categories []string
	MinPrice   float64
	MaxPrice   float64
}

func FilterMedicines(query MedicineQuery) []Medicine {
	filtered := []Medicine{}

	for _, medicine := range Medicines() {
		switch query.Tab {
		case "popular":
			if !medicine.Popular {
				continue
			}
		case "prescription":
			if !medicine.PrescriptionRequired {
				continue
			}
		case "otc":
			if medicine.PrescriptionRequired {
				continue
			}
		}

		if query.Search != "" {
			search := strings.ToLower(query.Search)
			if !strings.Contains(strings.ToLower(medicine.Name), search) &&
				!strings.Contains(strings.ToLower(medicine.Category), search) {
				continue
			}
		}

		if len(query.Categories) > 0 && !containsString(query.Categories, medicine.Category) {
			continue
		}

		if query.MinPrice > 0 && medicine.Price < query.MinPrice {
			continue
		}
		if query.MaxPrice > 0 && medicine.Price > query.MaxPrice {
			continue
		}

		filtered = append(filtered, medicine)
	}

	return filtered
}

func GetMedicine(id string) *Medicine {
	for _, medicine := range Medicines() {
		if medicine.ID == id {
			return &medicine
		}
	}

	return nil
}

func containsString(values []string, value string) bool {
	for _, candidate := range values {
		if candidate == value {
			return true
		}
	}

	return false
}
