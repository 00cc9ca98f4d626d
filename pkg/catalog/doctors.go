package catalog

import (
	_ "embed"
	"strings"
	"sync"

	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"
)

//go:embed data/doctors.yaml
var doctorsYAML []byte

// Doctor is a consultant available for an on-journey video or phone
// consultation.
type Doctor struct {
	ID            string  `yaml:"id" json:"id"`
	Name          string  `yaml:"name" json:"name"`
	Specialty     string  `yaml:"specialty" json:"specialty"`
	Experience    string  `yaml:"experience" json:"experience"`
	Languages     string  `yaml:"languages" json:"languages"`
	NextAvailable string  `yaml:"nextAvailable" json:"nextAvailable"`
	Rating        float64 `yaml:"rating" json:"rating"`
	Reviews       int     `yaml:"reviews" json:"reviews"`
	Image         string  `yaml:"image" json:"image"`
	Fee           float64 `yaml:"fee" json:"fee"`
}

var doctors []Doctor
var loadDoctorsOnce sync.Once

func Doctors() []Doctor {
	loadDoctorsOnce.Do(func() {
		if err := yaml.Unmarshal(doctorsYAML, &doctors); err != nil {
			log.Fatal().Err(err).Msg("Failed to load doctors dataset")
		}
	})

	return doctors
}

// DoctorQuery narrows the listing by specialty tab and free text search over
// name and specialty.
type DoctorQuery struct {
	Specialty string
	Search    string
}

func FilterDoctors(query DoctorQuery) []Doctor {
	filtered := []Doctor{}

	for _, doctor := range Doctors() {
		if query.Specialty != "" && query.Specialty != "all" && doctor.Specialty != query.Specialty {
			continue
		}

		if query.Search != "" {
			search := strings.ToLower(query.Search)
			if !strings.Contains(strings.ToLower(doctor.Name), search) &&
				!strings.Contains(strings.ToLower(doctor.Specialty), search) {
				continue
			}
		}

		filtered = append(filtered, doctor)
	}

	return filtered
}

func GetDoctor(id string) *Doctor {
	for _, doctor := range Doctors() {
		if doctor.ID == id {
			return &doctor
		}
	}

	return nil
}
