package service

import (
	"errors"

	"github.com/stemsi/registrar/internal/repository"
)

// ErrMajorNotFound is returned when a label is not in the catalog.
var ErrMajorNotFound = errors.New("major not found")

// MajorDetail describes one major and the students enrolled in it.
type MajorDetail struct {
	MajorRow
	Students []string `json:"students"`
}

// MajorService answers questions about a single major.
type MajorService struct {
	repo *repository.Repository
}

// NewMajorService creates a new MajorService.
func NewMajorService(repo *repository.Repository) *MajorService {
	return &MajorService{repo: repo}
}

// GetByLabel returns the requirements of the major and its students' ids.
func (s *MajorService) GetByLabel(label string) (*MajorDetail, error) {
	m, ok := s.repo.GetMajorByLabel(label)
	if !ok {
		return nil, ErrMajorNotFound
	}

	detail := &MajorDetail{
		MajorRow: MajorRow{
			Major:     m.Label,
			Required:  m.Required.Sorted(),
			Electives: m.Electives.Sorted(),
		},
		Students: []string{},
	}
	for _, st := range s.repo.GetAllStudents() {
		if st.Major == m {
			detail.Students = append(detail.Students, st.ID)
		}
	}
	return detail, nil
}
