package create_appointment

import (
	"fmt"
	"strings"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
)

// normalizeRequest приводит входные данные к каноническому виду
// Имя и телефон сохраняются и сравниваются без краевых пробелов
func normalizeRequest(req *Request) {
	req.PatientName = strings.TrimSpace(req.PatientName)
	req.Phone = strings.TrimSpace(req.Phone)
	req.SituationType = strings.TrimSpace(req.SituationType)
}

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	nameLen := len([]rune(req.PatientName))
	if nameLen < domain.MinPatientNameLength || nameLen > domain.MaxPatientNameLength {
		return fmt.Errorf("%w: patientName must be %d-%d characters",
			ErrInvalidInput, domain.MinPatientNameLength, domain.MaxPatientNameLength)
	}

	phoneLen := len(req.Phone)
	if phoneLen < domain.MinPhoneLength || phoneLen > domain.MaxPhoneLength {
		return fmt.Errorf("%w: phone must be %d-%d characters",
			ErrInvalidInput, domain.MinPhoneLength, domain.MaxPhoneLength)
	}

	if req.SituationType == "" {
		return fmt.Errorf("%w: situationType is required", ErrInvalidInput)
	}

	if req.ServiceID <= 0 {
		return fmt.Errorf("%w: serviceID must be positive", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if req.SlotTime.IsZero() {
		return fmt.Errorf("%w: time is required", ErrInvalidInput)
	}

	if err := req.SlotTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid time format: %v", ErrInvalidInput, err)
	}

	return nil
}
