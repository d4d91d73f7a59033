package services

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"vitalcare-server/internal/models"
)

// In-memory store implementations backing the service tests. Listing order
// mirrors the SQL stores: newest first.

type memPatientStore struct {
	mu       sync.RWMutex
	patients map[string]models.Patient
}

func newMemPatientStore() *memPatientStore {
	return &memPatientStore{patients: map[string]models.Patient{}}
}

func (s *memPatientStore) Get(_ context.Context, id string) (*models.Patient, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.patients[id]
	if !ok {
		return nil, fmt.Errorf("%w: patient %s", ErrNotFound, id)
	}
	copied := p
	return &copied, nil
}

func (s *memPatientStore) Create(_ context.Context, patient *models.Patient) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if patient.ID == "" {
		patient.ID = uuid.New().String()
	}
	s.patients[patient.ID] = *patient
	return nil
}

func (s *memPatientStore) Update(_ context.Context, patient *models.Patient, expectedVersion int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	current, ok := s.patients[patient.ID]
	if !ok {
		return fmt.Errorf("%w: patient %s", ErrNotFound, patient.ID)
	}
	if current.Version != expectedVersion {
		return ErrConflict
	}
	patient.Version = expectedVersion + 1
	s.patients[patient.ID] = *patient
	return nil
}

func (s *memPatientStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.patients, id)
	return nil
}

func (s *memPatientStore) ListByDoctor(_ context.Context, doctorID string) ([]models.Patient, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []models.Patient
	for _, p := range s.patients {
		if p.DoctorID == doctorID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (s *memPatientStore) ListByStatusForDoctor(_ context.Context, doctorID string, status models.PatientStatus) ([]models.Patient, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []models.Patient
	for _, p := range s.patients {
		if p.DoctorID == doctorID && p.Status == status {
			out = append(out, p)
		}
	}
	return out, nil
}

func (s *memPatientStore) CountByStatusForDoctor(_ context.Context, doctorID string) (map[models.PatientStatus]int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	counts := map[models.PatientStatus]int64{}
	for _, p := range s.patients {
		if p.DoctorID == doctorID {
			counts[p.Status]++
		}
	}
	return counts, nil
}

type memVitalStore struct {
	mu       sync.RWMutex
	readings []models.VitalReading
}

func newMemVitalStore() *memVitalStore {
	return &memVitalStore{}
}

func (s *memVitalStore) Append(_ context.Context, reading *models.VitalReading) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if reading.ID == "" {
		reading.ID = uuid.New().String()
	}
	s.readings = append(s.readings, *reading)
	return nil
}

func (s *memVitalStore) ListByPatient(_ context.Context, patientID string) ([]models.VitalReading, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []models.VitalReading
	for i := len(s.readings) - 1; i >= 0; i-- {
		if s.readings[i].PatientID == patientID {
			out = append(out, s.readings[i])
		}
	}
	return out, nil
}

type memAlertStore struct {
	mu     sync.RWMutex
	alerts map[string]models.Alert
	order  []string

	// failCreate simulates an unreachable alert collection.
	failCreate bool
}

func newMemAlertStore() *memAlertStore {
	return &memAlertStore{alerts: map[string]models.Alert{}}
}

func (s *memAlertStore) Get(_ context.Context, id string) (*models.Alert, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	a, ok := s.alerts[id]
	if !ok {
		return nil, fmt.Errorf("%w: alert %s", ErrNotFound, id)
	}
	copied := a
	return &copied, nil
}

func (s *memAlertStore) Create(_ context.Context, alert *models.Alert) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failCreate {
		return fmt.Errorf("%w: alert collection unreachable", ErrUnavailable)
	}
	if alert.ID == "" {
		alert.ID = uuid.New().String()
	}
	s.alerts[alert.ID] = *alert
	s.order = append(s.order, alert.ID)
	return nil
}

func (s *memAlertStore) UpdateStatus(_ context.Context, id string, status models.AlertStatus) (*models.Alert, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	a, ok := s.alerts[id]
	if !ok {
		return nil, fmt.Errorf("%w: alert %s", ErrNotFound, id)
	}
	a.Status = status
	s.alerts[id] = a
	copied := a
	return &copied, nil
}

func (s *memAlertStore) List(_ context.Context, filter AlertFilter) ([]models.Alert, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []models.Alert
	for i := len(s.order) - 1; i >= 0; i-- {
		a := s.alerts[s.order[i]]
		if a.DoctorID != filter.DoctorID {
			continue
		}
		if filter.PatientID != "" && a.PatientID != filter.PatientID {
			continue
		}
		if filter.Status != "" && a.Status != filter.Status {
			continue
		}
		if filter.Unresolved && a.Status == models.AlertStatusResolved {
			continue
		}
		out = append(out, a)
		if filter.Limit > 0 && len(out) == filter.Limit {
			break
		}
	}
	return out, nil
}

func (s *memAlertStore) CountByStatusForDoctor(_ context.Context, doctorID string) (map[models.AlertStatus]int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	counts := map[models.AlertStatus]int64{}
	for _, a := range s.alerts {
		if a.DoctorID == doctorID {
			counts[a.Status]++
		}
	}
	return counts, nil
}

func (s *memAlertStore) CountBySeverityForDoctor(_ context.Context, doctorID string) (map[models.Severity]int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	counts := map[models.Severity]int64{}
	for _, a := range s.alerts {
		if a.DoctorID == doctorID {
			counts[a.Severity]++
		}
	}
	return counts, nil
}
