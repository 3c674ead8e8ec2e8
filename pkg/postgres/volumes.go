package postgres

import (
	"context"
	"fmt"

	"effectif-engine/pkg/core/model"
)

// GetVolumes retrieves the volume records owned by posts inside the
// requested scope
func (db *DB) GetVolumes(ctx context.Context, scope model.Scope, scopeID string) ([]model.VolumeRecord, error) {
	var sql string
	var args []any

	switch scope {
	case model.ScopeNation:
		sql = `SELECT owner_id, task_code, quantity, period FROM volume_record ORDER BY id`
	case model.ScopeDirection:
		sql = `
			SELECT v.owner_id, v.task_code, v.quantity, v.period
			FROM volume_record v
			JOIN post p ON p.id = v.owner_id
			JOIN centre c ON c.id = p.centre_id
			WHERE c.direction_id = $1
			ORDER BY v.id`
		args = []any{scopeID}
	case model.ScopeCentre:
		sql = `
			SELECT v.owner_id, v.task_code, v.quantity, v.period
			FROM volume_record v
			JOIN post p ON p.id = v.owner_id
			WHERE p.centre_id = $1
			ORDER BY v.id`
		args = []any{scopeID}
	case model.ScopePost:
		sql = `SELECT owner_id, task_code, quantity, period FROM volume_record WHERE owner_id = $1 ORDER BY id`
		args = []any{scopeID}
	default:
		return nil, fmt.Errorf("invalid scope %q", scope)
	}

	rows, err := db.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query volume records: %w", err)
	}
	defer rows.Close()

	var volumes []model.VolumeRecord
	for rows.Next() {
		var vol model.VolumeRecord
		if err := rows.Scan(&vol.OwnerID, &vol.TaskCode, &vol.Quantity, &vol.Period); err != nil {
			return nil, fmt.Errorf("failed to scan volume record: %w", err)
		}
		volumes = append(volumes, vol)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating volume records: %w", err)
	}

	return volumes, nil
}

// InsertVolumes inserts a batch of volume records in one transaction
func (db *DB) InsertVolumes(ctx context.Context, volumes []model.VolumeRecord) error {
	if len(volumes) == 0 {
		return nil
	}

	tx, err := db.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	for _, vol := range volumes {
		period := vol.Period
		if period == "" {
			period = model.PeriodDaily
		}
		_, err := tx.Exec(ctx, `
			INSERT INTO volume_record (owner_id, task_code, quantity, period)
			VALUES ($1, $2, $3, $4)
		`, vol.OwnerID, vol.TaskCode, vol.Quantity, period)
		if err != nil {
			return fmt.Errorf("failed to insert volume record: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}
