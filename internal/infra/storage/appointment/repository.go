package appointment

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	"github.com/m04kA/SMC-AppointmentService/pkg/dbmetrics"
	"github.com/m04kA/SMC-AppointmentService/pkg/psqlbuilder"
	"github.com/m04kA/SMC-AppointmentService/pkg/types"
)

// Код ошибки PostgreSQL unique_violation
// Ловим его на частичном уникальном индексе (service_id, appt_date, appt_time) WHERE status='booked'
const pqUniqueViolation = "23505"

// Repository репозиторий для работы с записями на прием
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория записей
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новую запись на прием
// Если в контексте передана активная транзакция (через context.Value), использует её.
// Нарушение уникальности занятого слота маппится в ErrSlotTaken -
// это страховка на уровне схемы на случай гонки вне сериализуемой транзакции.
func (r *Repository) Create(ctx context.Context, appt *domain.Appointment) (*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("appointments").
		Columns(
			"patient_name",
			"phone",
			"situation_type",
			"service_id",
			"service_name",
			"appt_date",
			"appt_time",
			"status",
		).
		Values(
			appt.PatientName,
			appt.Phone,
			appt.SituationType,
			appt.ServiceID,
			appt.ServiceName,
			appt.Date,
			appt.SlotTime,
			appt.Status,
		).
		Suffix("RETURNING id, created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&appt.ID,
		&createdAt,
	)

	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == pqUniqueViolation {
			return nil, ErrSlotTaken
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	appt.CreatedAt = createdAt.Time

	return appt, nil
}

// GetByID получает запись по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := selectAppointmentColumns().
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	appt, err := scanAppointment(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrAppointmentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan appointment: %v", ErrScanRow, err)
	}

	return appt, nil
}

// GetByPhone получает записи пациента по телефону
// Сортировка: сначала новые (дата DESC, затем время DESC)
func (r *Repository) GetByPhone(ctx context.Context, phone string) ([]*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := selectAppointmentColumns().
		Where(squirrel.Eq{"phone": phone}).
		OrderBy("appt_date DESC, appt_time DESC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByPhone - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByPhone - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanAppointments(rows)
}

// GetBookedForDay получает все активные записи на услугу и дату
// Если вызов идет внутри транзакции, добавляет FOR UPDATE - блокировка строк дня
// на время проверки вместимости и занятости слота в usecase создания записи
func (r *Repository) GetBookedForDay(ctx context.Context, serviceID int64, date time.Time) ([]*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := selectAppointmentColumns().
		Where(squirrel.Eq{
			"service_id": serviceID,
			"appt_date":  date,
			"status":     domain.StatusBooked,
		}).
		OrderBy("appt_time ASC")

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetBookedForDay - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetBookedForDay - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanAppointments(rows)
}

// BookedTimes получает занятые слоты на услугу и дату по возрастанию времени
func (r *Repository) BookedTimes(ctx context.Context, serviceID int64, date time.Time) ([]types.TimeString, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("appt_time").
		From("appointments").
		Where(squirrel.Eq{
			"service_id": serviceID,
			"appt_date":  date,
			"status":     domain.StatusBooked,
		}).
		OrderBy("appt_time ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: BookedTimes - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: BookedTimes - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	times := make([]types.TimeString, 0)
	for rows.Next() {
		var t types.TimeString
		if err := rows.Scan(&t); err != nil {
			return nil, fmt.Errorf("%w: BookedTimes - scan appt_time: %v", ErrScanRow, err)
		}
		times = append(times, t)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: BookedTimes - rows error: %v", ErrScanRow, err)
	}

	return times, nil
}

// CountBookedPerDay считает активные записи на услугу по дням в диапазоне [from, to)
// Возвращает map "YYYY-MM-DD" -> количество; дни без записей в map отсутствуют
func (r *Repository) CountBookedPerDay(ctx context.Context, serviceID int64, from, to time.Time) (map[string]int, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("appt_date", "COUNT(*)").
		From("appointments").
		Where(squirrel.Eq{
			"service_id": serviceID,
			"status":     domain.StatusBooked,
		}).
		Where(squirrel.GtOrEq{"appt_date": from}).
		Where(squirrel.Lt{"appt_date": to}).
		GroupBy("appt_date").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: CountBookedPerDay - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: CountBookedPerDay - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var day time.Time
		var count int
		if err := rows.Scan(&day, &count); err != nil {
			return nil, fmt.Errorf("%w: CountBookedPerDay - scan row: %v", ErrScanRow, err)
		}
		counts[day.Format(domain.DateFormat)] = count
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: CountBookedPerDay - rows error: %v", ErrScanRow, err)
	}

	return counts, nil
}

// UpdateStatus обновляет статус записи
func (r *Repository) UpdateStatus(ctx context.Context, id int64, status domain.AppointmentStatus) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("appointments").
		Set("status", status).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrAppointmentNotFound
	}

	return nil
}

// selectAppointmentColumns общий SELECT для всех выборок записей
func selectAppointmentColumns() squirrel.SelectBuilder {
	return psqlbuilder.Select(
		"id",
		"patient_name",
		"phone",
		"situation_type",
		"service_id",
		"service_name",
		"appt_date",
		"appt_time",
		"status",
		"created_at",
	).From("appointments")
}

// rowScanner общий интерфейс *sql.Row и *sql.Rows
type rowScanner interface {
	Scan(dest ...interface{}) error
}

// scanAppointment сканирует одну строку в запись
func scanAppointment(row rowScanner) (*domain.Appointment, error) {
	var appt domain.Appointment
	var createdAt sql.NullTime

	err := row.Scan(
		&appt.ID,
		&appt.PatientName,
		&appt.Phone,
		&appt.SituationType,
		&appt.ServiceID,
		&appt.ServiceName,
		&appt.Date,
		&appt.SlotTime,
		&appt.Status,
		&createdAt,
	)
	if err != nil {
		return nil, err
	}

	appt.CreatedAt = createdAt.Time
	return &appt, nil
}

// scanAppointments сканирует результаты запроса в слайс записей
func scanAppointments(rows *sql.Rows) ([]*domain.Appointment, error) {
	appointments := make([]*domain.Appointment, 0)

	for rows.Next() {
		appt, err := scanAppointment(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scanAppointments - scan row: %v", ErrScanRow, err)
		}
		appointments = append(appointments, appt)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanAppointments - rows error: %v", ErrScanRow, err)
	}

	return appointments, nil
}
