package postgres

import (
	"context"
	"fmt"

	"effectif-engine/pkg/core/model"
)

// GetTasks retrieves the task referential in load order
func (db *DB) GetTasks(ctx context.Context) ([]model.Task, error) {
	rows, err := db.pool.Query(ctx, `
		SELECT code, name, family, product, unit_time_minutes, unit
		FROM task_referential
		ORDER BY position, code
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query task referential: %w", err)
	}
	defer rows.Close()

	var tasks []model.Task
	for rows.Next() {
		var task model.Task
		if err := rows.Scan(&task.Code, &task.Name, &task.Family, &task.Product, &task.UnitTimeMinutes, &task.Unit); err != nil {
			return nil, fmt.Errorf("failed to scan task: %w", err)
		}
		tasks = append(tasks, task)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating tasks: %w", err)
	}

	return tasks, nil
}

// ReplaceTasks atomically replaces the whole task referential
func (db *DB) ReplaceTasks(ctx context.Context, tasks []model.Task) error {
	tx, err := db.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `DELETE FROM task_referential`); err != nil {
		return fmt.Errorf("failed to clear task referential: %w", err)
	}

	for i, task := range tasks {
		_, err := tx.Exec(ctx, `
			INSERT INTO task_referential (code, name, family, product, unit_time_minutes, unit, position)
			VALUES ($1, $2, $3, $4, $5, $6, $7)
		`, task.Code, task.Name, task.Family, task.Product, task.UnitTimeMinutes, task.Unit, i)
		if err != nil {
			return fmt.Errorf("failed to insert task %s: %w", task.Code, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}
