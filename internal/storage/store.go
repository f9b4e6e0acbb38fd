package storage

import (
	"context"
	"encoding/json"
	"log/slog"
	"reflect"
	"time"

	"aurafolio/internal/middleware"
	"aurafolio/internal/models"
	"aurafolio/internal/realtime"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const createdAtDesc = "created_at DESC"

// record ties a model type to its table at compile time.
type record interface {
	TableName() string
}

func tableOf[T record]() string {
	var r T
	return r.TableName()
}

// Store is the domain facade over the content tables. Reads degrade to empty
// results on failure; mutations propagate errors and publish change events.
type Store struct {
	db     *gorm.DB
	broker *realtime.Broker
	log    *slog.Logger
}

// New creates a Store. broker may be nil when change events are not needed.
func New(db *gorm.DB, broker *realtime.Broker) *Store {
	return &Store{db: db, broker: broker, log: middleware.Logger}
}

func (s *Store) publish(ctx context.Context, table, kind string, rec any) {
	if s.broker == nil {
		return
	}
	middleware.ChangeEventsTotal.WithLabelValues(table, kind).Inc()
	if err := s.broker.Publish(ctx, realtime.Event{Table: table, Type: kind, Record: rec}); err != nil {
		s.log.Error("failed to publish change event",
			slog.String("table", table),
			slog.String("kind", kind),
			slog.String("error", err.Error()),
		)
	}
}

func listRows[T record](ctx context.Context, s *Store, orderBy string) ([]T, error) {
	var rows []T
	if err := s.db.WithContext(ctx).Order(orderBy).Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// listAll returns every row newest-first. Read paths must never fail the
// caller: errors are logged and an empty slice is returned.
func listAll[T record](ctx context.Context, s *Store) []T {
	return listAllBy[T](ctx, s, createdAtDesc)
}

func listAllBy[T record](ctx context.Context, s *Store, orderBy string) []T {
	rows, err := listRows[T](ctx, s, orderBy)
	if err != nil {
		s.log.Error("failed to list rows",
			slog.String("table", tableOf[T]()),
			slog.String("error", err.Error()),
		)
		return []T{}
	}
	return rows
}

// insertRow creates the row with a server-assigned ID. Any client-supplied
// ID is discarded before insert.
func insertRow[T record](ctx context.Context, s *Store, row *T) (*T, error) {
	clearID(row)
	if err := s.db.WithContext(ctx).Create(row).Error; err != nil {
		s.log.Error("failed to insert row",
			slog.String("table", tableOf[T]()),
			slog.String("error", err.Error()),
		)
		return nil, err
	}
	s.publish(ctx, tableOf[T](), realtime.EventInsert, *row)
	return row, nil
}

// updateRow applies a presentation-form patch to the row with the given ID.
// The patch is translated to column naming, stripped of identifier and
// creation fields, and stamped with a fresh updated_at.
func updateRow[T record](ctx context.Context, s *Store, id string, patch map[string]any) (*T, error) {
	cols, _ := SnakeKeys(patch).(map[string]any)
	if cols == nil {
		cols = map[string]any{}
	}
	delete(cols, "id")
	delete(cols, "created_at")
	cols["updated_at"] = time.Now().UTC()
	normalizeColumnValues(cols)

	tx := s.db.WithContext(ctx).Model(new(T)).Where("id = ?", id).Updates(cols)
	if tx.Error != nil {
		s.log.Error("failed to update row",
			slog.String("table", tableOf[T]()),
			slog.String("id", id),
			slog.String("error", tx.Error.Error()),
		)
		return nil, tx.Error
	}
	if tx.RowsAffected == 0 {
		return nil, models.NewNotFoundError(tableOf[T](), id)
	}

	var row T
	if err := s.db.WithContext(ctx).First(&row, "id = ?", id).Error; err != nil {
		return nil, err
	}
	s.publish(ctx, tableOf[T](), realtime.EventUpdate, row)
	return &row, nil
}

// deleteRow removes the row with the given ID and reports success.
func deleteRow[T record](ctx context.Context, s *Store, id string) (bool, error) {
	if err := s.db.WithContext(ctx).Delete(new(T), "id = ?", id).Error; err != nil {
		s.log.Error("failed to delete row",
			slog.String("table", tableOf[T]()),
			slog.String("id", id),
			slog.String("error", err.Error()),
		)
		return false, err
	}
	s.publish(ctx, tableOf[T](), realtime.EventDelete, map[string]string{"id": id})
	return true, nil
}

// clearID zeroes the row's ID field so the database hook assigns one.
func clearID(row any) {
	v := reflect.ValueOf(row).Elem().FieldByName("ID")
	if v.IsValid() && v.Kind() == reflect.String {
		v.SetString("")
	}
}

// normalizeColumnValues rewrites slice- and map-valued patch entries as JSON
// column values so the SQL drivers can bind them.
func normalizeColumnValues(cols map[string]any) {
	for k, v := range cols {
		switch v.(type) {
		case nil, string, bool, int, int64, float64, time.Time, datatypes.JSON, []byte:
			continue
		}
		rv := reflect.ValueOf(v)
		if rv.Kind() == reflect.Slice || rv.Kind() == reflect.Map {
			if b, err := json.Marshal(v); err == nil {
				cols[k] = datatypes.JSON(b)
			}
		}
	}
}
