package create_appointment

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	usecase "github.com/m04kA/SMC-AppointmentService/internal/usecase/create_appointment"
)

type fakeCreator struct {
	executeFn func(ctx context.Context, req *usecase.Request) (*usecase.Response, error)
}

func (f *fakeCreator) Execute(ctx context.Context, req *usecase.Request) (*usecase.Response, error) {
	if f.executeFn == nil {
		panic("Execute not configured")
	}
	return f.executeFn(ctx, req)
}

type noopLogger struct{}

func (noopLogger) Info(format string, v ...interface{})  {}
func (noopLogger) Warn(format string, v ...interface{})  {}
func (noopLogger) Error(format string, v ...interface{}) {}

func validBody() map[string]interface{} {
	return map[string]interface{}{
		"patientName":   "Ivan Petrov",
		"phone":         "+79001234567",
		"situationType": "first_visit",
		"serviceId":     1,
		"date":          "2025-10-20",
		"time":          "10:30",
	}
}

func doRequest(t *testing.T, h *Handler, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	raw, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/appointments", bytes.NewReader(raw))
	rec := httptest.NewRecorder()
	h.Handle(rec, req)
	return rec
}

func TestHandle_Created(t *testing.T) {
	creator := &fakeCreator{
		executeFn: func(_ context.Context, req *usecase.Request) (*usecase.Response, error) {
			return &usecase.Response{
				ID:            7,
				PatientName:   req.PatientName,
				Phone:         req.Phone,
				SituationType: req.SituationType,
				ServiceID:     req.ServiceID,
				ServiceName:   "General Consultation",
				Date:          req.Date,
				SlotTime:      req.SlotTime,
				Status:        "booked",
			}, nil
		},
	}

	h := NewHandler(creator, noopLogger{})
	rec := doRequest(t, h, validBody())

	require.Equal(t, http.StatusCreated, rec.Code)

	var resp CreateAppointmentResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, int64(7), resp.ID)
	assert.Equal(t, "2025-10-20", resp.Date)
	assert.Equal(t, "10:30", resp.Time)
	assert.Equal(t, "booked", resp.Status)
}

func TestHandle_ErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{name: "invalid input", err: usecase.ErrInvalidInput, wantStatus: http.StatusBadRequest},
		{name: "date not allowed", err: usecase.ErrDateNotAllowed, wantStatus: http.StatusBadRequest},
		{name: "invalid slot", err: usecase.ErrInvalidSlot, wantStatus: http.StatusBadRequest},
		{name: "service not found", err: usecase.ErrServiceNotFound, wantStatus: http.StatusNotFound},
		{name: "day full", err: usecase.ErrDayFull, wantStatus: http.StatusConflict},
		{name: "slot taken", err: usecase.ErrSlotTaken, wantStatus: http.StatusConflict},
		{name: "internal", err: usecase.ErrInternal, wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			creator := &fakeCreator{
				executeFn: func(_ context.Context, _ *usecase.Request) (*usecase.Response, error) {
					return nil, tt.err
				},
			}

			h := NewHandler(creator, noopLogger{})
			rec := doRequest(t, h, validBody())

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestHandle_BadDateFormat(t *testing.T) {
	h := NewHandler(&fakeCreator{}, noopLogger{})

	body := validBody()
	body["date"] = "20.10.2025"
	rec := doRequest(t, h, body)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandle_BadTimeFormat(t *testing.T) {
	h := NewHandler(&fakeCreator{}, noopLogger{})

	body := validBody()
	body["time"] = "10:30:00"
	rec := doRequest(t, h, body)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandle_UnknownFieldRejected(t *testing.T) {
	h := NewHandler(&fakeCreator{}, noopLogger{})

	body := validBody()
	body["unexpected"] = true
	rec := doRequest(t, h, body)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
