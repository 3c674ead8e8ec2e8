package postgres

import (
	"context"
	"fmt"

	"effectif-engine/pkg/core/model"
)

// GetHierarchy retrieves the organizational tree visible from the
// requested scope: the matching node plus everything below it.
func (db *DB) GetHierarchy(ctx context.Context, scope model.Scope, scopeID string) (model.Hierarchy, error) {
	var directionSQL, centreSQL, postSQL string
	var args []any

	switch scope {
	case model.ScopeNation:
		directionSQL = `SELECT id, label FROM direction ORDER BY id`
		centreSQL = `SELECT id, label, classe, direction_id FROM centre ORDER BY id`
		postSQL = `SELECT id, label, category, centre_id, effectif_actuel FROM post ORDER BY id`
	case model.ScopeDirection:
		directionSQL = `SELECT id, label FROM direction WHERE id = $1 ORDER BY id`
		centreSQL = `SELECT id, label, classe, direction_id FROM centre WHERE direction_id = $1 ORDER BY id`
		postSQL = `
			SELECT p.id, p.label, p.category, p.centre_id, p.effectif_actuel
			FROM post p
			JOIN centre c ON c.id = p.centre_id
			WHERE c.direction_id = $1
			ORDER BY p.id`
		args = []any{scopeID}
	case model.ScopeCentre:
		centreSQL = `SELECT id, label, classe, direction_id FROM centre WHERE id = $1 ORDER BY id`
		postSQL = `SELECT id, label, category, centre_id, effectif_actuel FROM post WHERE centre_id = $1 ORDER BY id`
		args = []any{scopeID}
	case model.ScopePost:
		postSQL = `SELECT id, label, category, centre_id, effectif_actuel FROM post WHERE id = $1 ORDER BY id`
		args = []any{scopeID}
	default:
		return model.Hierarchy{}, fmt.Errorf("invalid scope %q", scope)
	}

	var hierarchy model.Hierarchy

	if directionSQL != "" {
		rows, err := db.pool.Query(ctx, directionSQL, args...)
		if err != nil {
			return model.Hierarchy{}, fmt.Errorf("failed to query directions: %w", err)
		}
		for rows.Next() {
			var direction model.Direction
			if err := rows.Scan(&direction.ID, &direction.Label); err != nil {
				rows.Close()
				return model.Hierarchy{}, fmt.Errorf("failed to scan direction: %w", err)
			}
			hierarchy.Directions = append(hierarchy.Directions, direction)
		}
		rows.Close()
		if err := rows.Err(); err != nil {
			return model.Hierarchy{}, fmt.Errorf("error iterating directions: %w", err)
		}
	}

	if centreSQL != "" {
		rows, err := db.pool.Query(ctx, centreSQL, args...)
		if err != nil {
			return model.Hierarchy{}, fmt.Errorf("failed to query centres: %w", err)
		}
		for rows.Next() {
			var centre model.Centre
			if err := rows.Scan(&centre.ID, &centre.Label, &centre.Classe, &centre.DirectionID); err != nil {
				rows.Close()
				return model.Hierarchy{}, fmt.Errorf("failed to scan centre: %w", err)
			}
			hierarchy.Centres = append(hierarchy.Centres, centre)
		}
		rows.Close()
		if err := rows.Err(); err != nil {
			return model.Hierarchy{}, fmt.Errorf("error iterating centres: %w", err)
		}
	}

	rows, err := db.pool.Query(ctx, postSQL, args...)
	if err != nil {
		return model.Hierarchy{}, fmt.Errorf("failed to query posts: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var post model.Post
		if err := rows.Scan(&post.ID, &post.Label, &post.Category, &post.CentreID, &post.EffectifActuel); err != nil {
			return model.Hierarchy{}, fmt.Errorf("failed to scan post: %w", err)
		}
		hierarchy.Posts = append(hierarchy.Posts, post)
	}
	if err := rows.Err(); err != nil {
		return model.Hierarchy{}, fmt.Errorf("error iterating posts: %w", err)
	}

	if err := checkScopeFound(hierarchy, scope, scopeID); err != nil {
		return model.Hierarchy{}, err
	}

	return hierarchy, nil
}

func checkScopeFound(hierarchy model.Hierarchy, scope model.Scope, scopeID string) error {
	switch scope {
	case model.ScopeDirection:
		if len(hierarchy.Directions) == 0 {
			return fmt.Errorf("direction %q not found", scopeID)
		}
	case model.ScopeCentre:
		if len(hierarchy.Centres) == 0 {
			return fmt.Errorf("centre %q not found", scopeID)
		}
	case model.ScopePost:
		if len(hierarchy.Posts) == 0 {
			return fmt.Errorf("post %q not found", scopeID)
		}
	}
	return nil
}
