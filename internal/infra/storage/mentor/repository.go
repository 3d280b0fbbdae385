package mentor

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/PraveenKumar22C/mentor-connect/internal/domain"
	"github.com/PraveenKumar22C/mentor-connect/pkg/dbmetrics"
	"github.com/PraveenKumar22C/mentor-connect/pkg/psqlbuilder"
)

var mentorColumns = []string{
	"id",
	"name",
	"title",
	"specialization",
	"experience",
	"location",
	"profile_image",
	"bio",
	"languages",
	"available",
	"is_active",
	"rating",
	"total_sessions",
	"created_at",
	"updated_at",
}

// Колонки сортировки, разрешённые для листинга
var sortColumns = map[string]string{
	"rating":        "rating",
	"experience":    "experience",
	"name":          "name",
	"totalSessions": "total_sessions",
}

// Repository репозиторий каталога менторов
// Ядро бронирований читает его и инкрементирует счётчик сессий;
// запись (Create) используется только сидером
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория менторов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByID получает ментора по ID вместе со слотами и прайсингом
// Слоты возвращаются в порядке объявления (по колонке position)
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Mentor, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(mentorColumns...).
		From("mentors").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	mentor, err := scanMentor(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrMentorNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan mentor: %v", ErrScanRow, err)
	}

	if err := r.loadTimeSlots(ctx, executor, []*domain.Mentor{mentor}); err != nil {
		return nil, err
	}
	if err := r.loadPricing(ctx, executor, []*domain.Mentor{mentor}); err != nil {
		return nil, err
	}

	return mentor, nil
}

// List получает менторов под фильтром с сортировкой и пагинацией
// Мягко удалённые менторы (is_active = false) не возвращаются
func (r *Repository) List(ctx context.Context, filter domain.MentorsFilter) ([]*domain.Mentor, int64, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	applyFilter := func(b squirrel.SelectBuilder) squirrel.SelectBuilder {
		b = b.Where(squirrel.Eq{"is_active": true})

		if len(filter.Specializations) > 0 {
			or := squirrel.Or{}
			for _, s := range filter.Specializations {
				or = append(or, squirrel.ILike{"specialization": "%" + s + "%"})
			}
			b = b.Where(or)
		}

		if len(filter.Locations) > 0 {
			or := squirrel.Or{}
			for _, l := range filter.Locations {
				or = append(or, squirrel.ILike{"location": "%" + l + "%"})
			}
			b = b.Where(or)
		}

		if filter.MinExperience != nil {
			b = b.Where(squirrel.GtOrEq{"experience": *filter.MinExperience})
		}

		if filter.Available != nil {
			b = b.Where(squirrel.Eq{"available": *filter.Available})
		}

		if filter.Search != nil {
			pattern := "%" + *filter.Search + "%"
			b = b.Where(squirrel.Or{
				squirrel.ILike{"name": pattern},
				squirrel.ILike{"specialization": pattern},
				squirrel.ILike{"location": pattern},
				squirrel.ILike{"title": pattern},
			})
		}

		return b
	}

	countQuery, countArgs, err := applyFilter(psqlbuilder.Select("COUNT(*)").From("mentors")).ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("%w: List - build count query: %v", ErrBuildQuery, err)
	}

	var total int64
	if err := executor.QueryRowContext(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("%w: List - scan count: %v", ErrScanRow, err)
	}

	orderBy := buildOrderBy(filter.SortBy, filter.SortOrder)
	offset := uint64((filter.Page - 1) * filter.Limit)

	query, args, err := applyFilter(psqlbuilder.Select(mentorColumns...).From("mentors")).
		OrderBy(orderBy).
		Limit(uint64(filter.Limit)).
		Offset(offset).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	mentors, err := scanMentors(rows)
	if err != nil {
		return nil, 0, err
	}

	if err := r.loadTimeSlots(ctx, executor, mentors); err != nil {
		return nil, 0, err
	}
	if err := r.loadPricing(ctx, executor, mentors); err != nil {
		return nil, 0, err
	}

	return mentors, total, nil
}

// FilterOptions возвращает значения для фильтров каталога:
// уникальные специализации и локации активных менторов
func (r *Repository) FilterOptions(ctx context.Context) ([]string, []string, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	specializations, err := r.distinctColumn(ctx, executor, "specialization")
	if err != nil {
		return nil, nil, err
	}

	locations, err := r.distinctColumn(ctx, executor, "location")
	if err != nil {
		return nil, nil, err
	}

	return specializations, locations, nil
}

// IncrementTotalSessions атомарно увеличивает счётчик проведённых сессий ментора на 1
func (r *Repository) IncrementTotalSessions(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("mentors").
		Set("total_sessions", squirrel.Expr("total_sessions + 1")).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: IncrementTotalSessions - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: IncrementTotalSessions - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: IncrementTotalSessions - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrMentorNotFound
	}

	return nil
}

// Create создает ментора со слотами и прайсингом (используется сидером)
func (r *Repository) Create(ctx context.Context, mentor *domain.Mentor) (*domain.Mentor, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("mentors").
		Columns(
			"name",
			"title",
			"specialization",
			"experience",
			"location",
			"profile_image",
			"bio",
			"languages",
			"available",
			"is_active",
			"rating",
			"total_sessions",
		).
		Values(
			mentor.Name,
			mentor.Title,
			mentor.Specialization,
			mentor.Experience,
			mentor.Location,
			mentor.ProfileImage,
			mentor.Bio,
			pq.Array(mentor.Languages),
			mentor.Available,
			mentor.IsActive,
			mentor.Rating,
			mentor.TotalSessions,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&mentor.ID, &createdAt, &updatedAt); err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	mentor.CreatedAt = createdAt.Time
	mentor.UpdatedAt = updatedAt.Time

	for position, slot := range mentor.TimeSlots {
		query, args, err := psqlbuilder.Insert("mentor_time_slots").
			Columns("mentor_id", "name", "day", "start_time", "end_time", "available", "position").
			Values(mentor.ID, slot.Name, slot.Day, slot.StartTime, slot.EndTime, slot.Available, position).
			ToSql()
		if err != nil {
			return nil, fmt.Errorf("%w: Create - build slot insert: %v", ErrBuildQuery, err)
		}
		if _, err := executor.ExecContext(ctx, query, args...); err != nil {
			return nil, fmt.Errorf("%w: Create - insert slot: %v", ErrExecQuery, err)
		}
	}

	for _, pricing := range mentor.Pricing {
		query, args, err := psqlbuilder.Insert("mentor_pricing").
			Columns("mentor_id", "duration_minutes", "price").
			Values(mentor.ID, pricing.DurationMinutes, pricing.Price).
			ToSql()
		if err != nil {
			return nil, fmt.Errorf("%w: Create - build pricing insert: %v", ErrBuildQuery, err)
		}
		if _, err := executor.ExecContext(ctx, query, args...); err != nil {
			return nil, fmt.Errorf("%w: Create - insert pricing: %v", ErrExecQuery, err)
		}
	}

	return mentor, nil
}

// loadTimeSlots загружает слоты для набора менторов одной выборкой
func (r *Repository) loadTimeSlots(ctx context.Context, executor DBExecutor, mentors []*domain.Mentor) error {
	if len(mentors) == 0 {
		return nil
	}

	ids := mentorIDs(mentors)

	query, args, err := psqlbuilder.Select("mentor_id", "name", "day", "start_time", "end_time", "available").
		From("mentor_time_slots").
		Where(squirrel.Eq{"mentor_id": ids}).
		OrderBy("mentor_id ASC", "position ASC").
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: loadTimeSlots - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: loadTimeSlots - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	byID := mentorsByID(mentors)
	for rows.Next() {
		var mentorID int64
		var slot domain.TimeSlot
		if err := rows.Scan(&mentorID, &slot.Name, &slot.Day, &slot.StartTime, &slot.EndTime, &slot.Available); err != nil {
			return fmt.Errorf("%w: loadTimeSlots - scan row: %v", ErrScanRow, err)
		}
		if m, ok := byID[mentorID]; ok {
			m.TimeSlots = append(m.TimeSlots, slot)
		}
	}

	if err := rows.Err(); err != nil {
		return fmt.Errorf("%w: loadTimeSlots - rows error: %v", ErrScanRow, err)
	}

	return nil
}

// loadPricing загружает прайсинг для набора менторов одной выборкой
func (r *Repository) loadPricing(ctx context.Context, executor DBExecutor, mentors []*domain.Mentor) error {
	if len(mentors) == 0 {
		return nil
	}

	ids := mentorIDs(mentors)

	query, args, err := psqlbuilder.Select("mentor_id", "duration_minutes", "price").
		From("mentor_pricing").
		Where(squirrel.Eq{"mentor_id": ids}).
		OrderBy("mentor_id ASC", "duration_minutes ASC").
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: loadPricing - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: loadPricing - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	byID := mentorsByID(mentors)
	for rows.Next() {
		var mentorID int64
		var pricing domain.Pricing
		if err := rows.Scan(&mentorID, &pricing.DurationMinutes, &pricing.Price); err != nil {
			return fmt.Errorf("%w: loadPricing - scan row: %v", ErrScanRow, err)
		}
		if m, ok := byID[mentorID]; ok {
			m.Pricing = append(m.Pricing, pricing)
		}
	}

	if err := rows.Err(); err != nil {
		return fmt.Errorf("%w: loadPricing - rows error: %v", ErrScanRow, err)
	}

	return nil
}

func (r *Repository) distinctColumn(ctx context.Context, executor DBExecutor, column string) ([]string, error) {
	query, args, err := psqlbuilder.Select("DISTINCT " + column).
		From("mentors").
		Where(squirrel.Eq{"is_active": true}).
		OrderBy(column + " ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: distinctColumn - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: distinctColumn - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	values := make([]string, 0)
	for rows.Next() {
		var value string
		if err := rows.Scan(&value); err != nil {
			return nil, fmt.Errorf("%w: distinctColumn - scan row: %v", ErrScanRow, err)
		}
		values = append(values, value)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: distinctColumn - rows error: %v", ErrScanRow, err)
	}

	return values, nil
}

// rowScanner общий интерфейс *sql.Row и *sql.Rows
type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanMentor(row rowScanner) (*domain.Mentor, error) {
	var mentor domain.Mentor
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&mentor.ID,
		&mentor.Name,
		&mentor.Title,
		&mentor.Specialization,
		&mentor.Experience,
		&mentor.Location,
		&mentor.ProfileImage,
		&mentor.Bio,
		pq.Array(&mentor.Languages),
		&mentor.Available,
		&mentor.IsActive,
		&mentor.Rating,
		&mentor.TotalSessions,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	mentor.CreatedAt = createdAt.Time
	mentor.UpdatedAt = updatedAt.Time

	return &mentor, nil
}

func scanMentors(rows *sql.Rows) ([]*domain.Mentor, error) {
	mentors := make([]*domain.Mentor, 0)

	for rows.Next() {
		mentor, err := scanMentor(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scanMentors - scan row: %v", ErrScanRow, err)
		}
		mentors = append(mentors, mentor)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanMentors - rows error: %v", ErrScanRow, err)
	}

	return mentors, nil
}

func mentorIDs(mentors []*domain.Mentor) []int64 {
	ids := make([]int64, len(mentors))
	for i, m := range mentors {
		ids[i] = m.ID
	}
	return ids
}

func mentorsByID(mentors []*domain.Mentor) map[int64]*domain.Mentor {
	byID := make(map[int64]*domain.Mentor, len(mentors))
	for _, m := range mentors {
		byID[m.ID] = m
	}
	return byID
}

// buildOrderBy возвращает ORDER BY выражение для разрешённых колонок
// Неизвестные значения откатываются на сортировку по рейтингу (DESC)
func buildOrderBy(sortBy, sortOrder string) string {
	column, ok := sortColumns[sortBy]
	if !ok {
		column = "rating"
	}

	direction := "DESC"
	if sortOrder == "asc" {
		direction = "ASC"
	}

	return column + " " + direction
}
