package settings

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"

	"github.com/Masterminds/squirrel"

	"github.com/jpereira-dev/VWS-SchedulerService/internal/domain"
	"github.com/jpereira-dev/VWS-SchedulerService/pkg/dbmetrics"
	"github.com/jpereira-dev/VWS-SchedulerService/pkg/psqlbuilder"
)

// Repository репозиторий настроек мастерской (таблица ключ-значение).
// Настройки читаются на каждый запрос, без кеширования: переключение
// ночной смены должно действовать немедленно.
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория настроек
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetBool читает булеву настройку по ключу
func (r *Repository) GetBool(ctx context.Context, key string) (bool, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("value").
		From("workshop_settings").
		Where(squirrel.Eq{"key": key}).
		ToSql()

	if err != nil {
		return false, fmt.Errorf("%w: GetBool - build select query: %v", ErrBuildQuery, err)
	}

	var raw string
	err = executor.QueryRowContext(ctx, query, args...).Scan(&raw)
	if err == sql.ErrNoRows {
		return false, ErrSettingNotFound
	}
	if err != nil {
		return false, fmt.Errorf("%w: GetBool - scan setting: %v", ErrScanRow, err)
	}

	value, err := strconv.ParseBool(raw)
	if err != nil {
		return false, fmt.Errorf("%w: key=%s value=%q", ErrInvalidValue, key, raw)
	}

	return value, nil
}

// SetBool записывает булеву настройку (upsert по ключу)
func (r *Repository) SetBool(ctx context.Context, key string, value bool) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("workshop_settings").
		Columns("key", "value").
		Values(key, strconv.FormatBool(value)).
		Suffix("ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = NOW()").
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: SetBool - build upsert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: SetBool - execute upsert: %v", ErrExecQuery, err)
	}

	return nil
}

// GetNightShiftEnabled читает флаг ночной смены
func (r *Repository) GetNightShiftEnabled(ctx context.Context) (bool, error) {
	return r.GetBool(ctx, domain.SettingNightShift)
}

// SetNightShiftEnabled записывает флаг ночной смены
func (r *Repository) SetNightShiftEnabled(ctx context.Context, enabled bool) error {
	return r.SetBool(ctx, domain.SettingNightShift, enabled)
}
